package main

import (
	"context"
	"fmt"
	"os"

	"storefront/internal/checkout"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/payment"

	"github.com/pkg/errors"
)

func handleLogin(ctx context.Context, flags *shopFlags) error {
	if err := flags.Login.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}
	if *flags.Login.email == "" || *flags.Login.password == "" {
		return errors.New("-email and -password are required")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.users.Login(ctx, repository.LoginInput{
		Email:    *flags.Login.email,
		Password: *flags.Login.password,
	}); err != nil {
		return err
	}

	state := a.users.State()
	fmt.Printf("%s\n", state.Status.Success)
	if state.User != nil {
		fmt.Printf("Signed in as %s <%s>\n", state.User.FullName(), state.User.Email)
	}

	return nil
}

func handleLogout(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.users.Logout(ctx); err != nil {
		return err
	}
	if err := a.session.Purge(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out")

	return nil
}

func handleRegister(ctx context.Context, flags *shopFlags) error {
	if err := flags.Register.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse register flags")
	}
	if *flags.Register.email == "" || *flags.Register.password == "" {
		return errors.New("-email and -password are required")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.users.Register(ctx, repository.RegisterInput{
		Email:     *flags.Register.email,
		Password:  *flags.Register.password,
		FirstName: *flags.Register.firstName,
		LastName:  *flags.Register.lastName,
	}); err != nil {
		return err
	}
	fmt.Printf("%s\n", a.users.State().Status.Success)

	return nil
}

func handleProducts(ctx context.Context, flags *shopFlags) error {
	if err := flags.Products.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse products flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	filters := repository.ProductFilters{Search: *flags.Products.search}
	if *flags.Products.category > 0 {
		filters.CategoryIDs = []int{*flags.Products.category}
	}
	if *flags.Products.featured {
		featured := true
		filters.IsFeatured = &featured
	}

	if err := a.products.FetchProducts(ctx, filters, repository.ListOptions{
		Page:    *flags.Products.page,
		PerPage: *flags.Products.perPage,
	}); err != nil {
		return err
	}

	state := a.products.State()
	for _, p := range state.Products {
		fmt.Printf("%6d  %-40s  %8.2f  %s\n", p.ID, p.Name, p.DisplayPrice, p.Slug)
	}
	fmt.Printf("\nPage %d of %d (%d products)\n", state.Page, state.TotalPages, state.Count)

	return nil
}

func handleProduct(ctx context.Context, flags *shopFlags) error {
	if err := flags.Product.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse product flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	switch {
	case *flags.Product.slug != "":
		err = a.products.FetchProductBySlug(ctx, *flags.Product.slug)
	case *flags.Product.id > 0:
		err = a.products.FetchProduct(ctx, *flags.Product.id)
	default:
		return errors.New("-id or -slug is required")
	}
	if err != nil {
		return err
	}

	p := a.products.State().Product
	if p == nil {
		return errors.New("product not found")
	}
	fmt.Printf("%s (#%d)\n%s\n\nPrice: %.2f  Rating: %.1f  Stock: %.0f\n",
		p.Name, p.ID, p.Description, p.DisplayPrice, p.AverageRating, p.TotalStock)
	for _, v := range p.Variants {
		fmt.Printf("  variant %d: %-30s %8.2f (stock %d)\n", v.ID, v.Name, v.Price, v.Stock)
	}

	return nil
}

func handleCategories(ctx context.Context, flags *shopFlags) error {
	if err := flags.Categories.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse categories flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if *flags.Categories.root {
		err = a.categories.FetchRootCategories(ctx)
	} else {
		err = a.categories.FetchCategories(ctx, *flags.Categories.tree)
	}
	if err != nil {
		return err
	}

	for _, c := range a.categories.State().Categories {
		printCategory(c, "")
	}

	return nil
}

func printCategory(c entity.Category, indent string) {
	fmt.Printf("%s%4d  %s (%s)\n", indent, c.ID, c.Name, c.Slug)
	for _, sub := range c.Subcategories {
		printCategory(sub, indent+"  ")
	}
}

func handleCart(ctx context.Context, flags *shopFlags) error {
	if err := flags.Cart.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse cart flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	switch {
	case *flags.Cart.add > 0:
		input := repository.CartItemInput{
			ProductID: *flags.Cart.add,
			Quantity:  *flags.Cart.quantity,
		}
		if *flags.Cart.variant > 0 {
			input.VariantID = flags.Cart.variant
		}
		err = a.cart.AddItem(ctx, input)
	case *flags.Cart.update > 0:
		err = a.cart.UpdateItem(ctx, *flags.Cart.update, *flags.Cart.quantity)
	case *flags.Cart.remove > 0:
		err = a.cart.RemoveItem(ctx, *flags.Cart.remove)
	case *flags.Cart.clear:
		err = a.cart.ClearCart(ctx)
	default:
		err = a.cart.FetchCart(ctx)
	}
	if err != nil {
		return err
	}

	printCart(a.cart.State().Cart)

	return nil
}

func printCart(cart *entity.Cart) {
	if cart == nil || len(cart.Items) == 0 {
		fmt.Println("Cart is empty")
		return
	}
	for _, item := range cart.Items {
		name := fmt.Sprintf("product %d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		fmt.Printf("%6d  %-40s x%-3d %8.2f\n", item.ID, name, item.Quantity, item.Subtotal)
	}
	fmt.Printf("\nSubtotal: %.2f\n", cart.Subtotal)
}

func handleCheckout(ctx context.Context, flags *shopFlags) error {
	if err := flags.Checkout.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse checkout flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.cart.FetchCart(ctx); err != nil {
		return err
	}
	cart := a.cart.State().Cart
	if cart == nil || len(cart.Items) == 0 {
		return errors.New("cart is empty")
	}

	input := checkout.Input{
		Email:                 *flags.Checkout.email,
		FirstName:             *flags.Checkout.firstName,
		LastName:              *flags.Checkout.lastName,
		ShippingMethod:        *flags.Checkout.shippingMethod,
		PaymentMethod:         *flags.Checkout.paymentMethod,
		ShippingLine1:         *flags.Checkout.line1,
		ShippingCity:          *flags.Checkout.city,
		ShippingZipCode:       *flags.Checkout.zip,
		ShippingCountry:       *flags.Checkout.country,
		BillingSameAsShipping: true,
	}
	if *flags.Checkout.addressID > 0 {
		input.ShippingAddressID = flags.Checkout.addressID
	}
	if err := input.Validate(); err != nil {
		return err
	}

	summary := checkout.Summarize(cart, input.ShippingMethod)
	fmt.Printf("Subtotal: %10.2f\nTax:      %10.2f\nShipping: %10.2f\nTotal:    %10.2f\n\n",
		summary.Subtotal, summary.Tax, summary.Shipping, summary.Total)

	order, err := a.orders.CreateOrder(ctx, checkout.BuildOrderInput(input, summary))
	if err != nil {
		return err
	}
	fmt.Printf("Order #%d placed (%s)\n", order.ID, order.Status)

	if input.PaymentMethod == entity.PaymentMethodCOD || a.handoff == nil {
		return nil
	}

	request := repository.PaymentRequestInput{
		Amount:        order.Total,
		PaymentMethod: input.PaymentMethod,
	}
	if user := a.users.State().User; user != nil {
		request.UserID = &user.ID
	}

	settled, err := runPayment(ctx, a, order.ID, request, *flags.Checkout.wait)
	if err != nil {
		return err
	}
	if settled != nil {
		fmt.Printf("Payment %d is %s\n", settled.ID, settled.Status)
	}

	return nil
}

func runPayment(ctx context.Context, a *app, orderID int, input repository.PaymentRequestInput, wait bool) (*entity.Payment, error) {
	opened, err := a.handoff.Start(ctx, input)
	if err != nil {
		return nil, err
	}
	if !wait {
		return opened, nil
	}

	settled, err := a.handoff.Await(ctx, opened.ID)
	if err != nil {
		if errors.Is(err, payment.ErrTimeout) {
			fmt.Println("Payment is still pending; check back with 'shopctl orders'")
			return opened, nil
		}
		return nil, err
	}

	if settled.Status == entity.PaymentStatusPaid {
		if err := a.orders.PayOrder(ctx, orderID, repository.PayOrderInput{PaymentID: settled.ID}); err != nil {
			return settled, err
		}
	}

	return settled, nil
}

func handleOrders(ctx context.Context, flags *shopFlags) error {
	if err := flags.Orders.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse orders flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	filters := repository.OrderFilters{Status: *flags.Orders.status}
	opts := repository.ListOptions{Page: *flags.Orders.page}

	if *flags.Orders.all {
		err = a.orders.FetchAllOrders(ctx, filters, opts)
	} else {
		err = a.orders.FetchOrders(ctx, filters, opts)
	}
	if err != nil {
		return err
	}

	state := a.orders.State()
	for _, o := range state.Orders {
		fmt.Printf("%6d  %-16s %10.2f  %s\n", o.ID, o.Status, o.Total, o.CreatedAt)
	}
	fmt.Printf("\nPage %d of %d (%d orders)\n", state.Page, state.TotalPages, state.Count)

	return nil
}

func handleOrder(ctx context.Context, flags *shopFlags) error {
	if err := flags.Order.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse order flags")
	}
	if *flags.Order.id == 0 {
		return errors.New("-id is required")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if *flags.Order.cancel {
		if err := a.orders.CancelOrder(ctx, *flags.Order.id); err != nil {
			return err
		}
		fmt.Printf("%s\n", a.orders.State().Status.Success)
		return nil
	}

	if *flags.Order.setStatus != "" || *flags.Order.tracking != "" {
		if err := a.orders.AdminUpdateOrder(ctx, *flags.Order.id, repository.AdminOrderInput{
			Status:         *flags.Order.setStatus,
			TrackingNumber: *flags.Order.tracking,
		}); err != nil {
			return err
		}
		fmt.Printf("%s\n", a.orders.State().Status.Success)
		return nil
	}

	if *flags.Order.email != "" {
		err = a.orders.FetchGuestOrder(ctx, *flags.Order.id, *flags.Order.email)
	} else {
		err = a.orders.FetchOrder(ctx, *flags.Order.id)
	}
	if err != nil {
		return err
	}

	o := a.orders.State().Order
	if o == nil {
		return errors.New("order not found")
	}
	fmt.Printf("Order #%d  %s\n", o.ID, o.Status)
	for _, item := range o.Items {
		fmt.Printf("  %4dx product %-6d %10.2f\n", item.Quantity, item.ProductID, item.Subtotal)
	}
	fmt.Printf("\nSubtotal %10.2f\nTax      %10.2f\nShipping %10.2f\nTotal    %10.2f\n",
		o.Subtotal, o.Tax, o.ShippingCost, o.Total)
	if o.TrackingNumber != "" {
		fmt.Printf("Tracking: %s\n", o.TrackingNumber)
	}

	return nil
}

func handleReviews(ctx context.Context, flags *shopFlags) error {
	if err := flags.Reviews.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse reviews flags")
	}
	if *flags.Reviews.product == 0 {
		return errors.New("-product is required")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.reviews.FetchReviews(ctx,
		repository.ReviewFilters{ProductID: flags.Reviews.product},
		repository.ListOptions{Page: *flags.Reviews.page},
	); err != nil {
		return err
	}

	state := a.reviews.State()
	for _, r := range state.Reviews {
		fmt.Printf("[%d/5] %s\n%s\n\n", r.Rating, r.Title, r.Content)
	}
	fmt.Printf("Page %d of %d (%d reviews)\n", state.Page, state.TotalPages, state.Count)

	return nil
}

func handleReview(ctx context.Context, flags *shopFlags) error {
	if err := flags.Review.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse review flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	input := repository.ReviewInput{
		Rating:  *flags.Review.rating,
		Title:   *flags.Review.title,
		Content: *flags.Review.content,
	}

	switch {
	case *flags.Review.remove > 0:
		err = a.reviews.DeleteReview(ctx, *flags.Review.remove)
	case *flags.Review.update > 0:
		err = a.reviews.UpdateReview(ctx, *flags.Review.update, input)
	case *flags.Review.product > 0:
		err = a.reviews.CreateReview(ctx, *flags.Review.product, input)
	default:
		return errors.New("-product, -update or -delete is required")
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", a.reviews.State().Status.Success)

	return nil
}

func handleSubscribe(ctx context.Context, flags *shopFlags, subscribe bool) error {
	if err := flags.Subscribe.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse subscribe flags")
	}
	if *flags.Subscribe.email == "" {
		return errors.New("-email is required")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if subscribe {
		err = a.subscriptions.Subscribe(ctx, *flags.Subscribe.email)
	} else {
		err = a.subscriptions.Unsubscribe(ctx, *flags.Subscribe.email)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", a.subscriptions.State().Status.Success)

	return nil
}
