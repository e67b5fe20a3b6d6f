package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

func handleProfile(ctx context.Context, flags *shopFlags) error {
	if err := flags.Profile.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse profile flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if *flags.Profile.newPassword != "" {
		if *flags.Profile.currentPassword == "" {
			return errors.New("-current-password is required with -new-password")
		}
		if err := a.users.ChangePassword(ctx, repository.ChangePasswordInput{
			CurrentPassword: *flags.Profile.currentPassword,
			NewPassword:     *flags.Profile.newPassword,
		}); err != nil {
			return err
		}
		fmt.Printf("%s\n", a.users.State().Status.Success)
		return nil
	}

	update := repository.ProfileInput{
		FirstName:   *flags.Profile.firstName,
		LastName:    *flags.Profile.lastName,
		CountryCode: *flags.Profile.countryCode,
		PhoneNumber: *flags.Profile.phone,
	}
	if update != (repository.ProfileInput{}) {
		err = a.users.UpdateProfile(ctx, update)
	} else {
		err = a.users.FetchProfile(ctx)
	}
	if err != nil {
		return err
	}

	user := a.users.State().User
	if user == nil {
		return errors.New("not signed in")
	}
	fmt.Printf("%s <%s>\n", user.FullName(), user.Email)
	if user.PhoneNumber != "" {
		fmt.Printf("Phone: %s %s\n", user.CountryCode, user.PhoneNumber)
	}
	if user.IsAdmin {
		fmt.Println("Role: admin")
	}

	return nil
}

func handleCategory(ctx context.Context, flags *shopFlags) error {
	if err := flags.Category.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse category flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if *flags.Category.breadcrumbs {
		if *flags.Category.id == 0 {
			return errors.New("-id is required with -breadcrumbs")
		}
		if err := a.categories.FetchBreadcrumbs(ctx, *flags.Category.id); err != nil {
			return err
		}
		for _, c := range a.categories.State().Breadcrumbs {
			fmt.Printf("%d  %s\n", c.ID, c.Name)
		}
		return nil
	}

	switch {
	case *flags.Category.slug != "":
		err = a.categories.FetchCategoryBySlug(ctx, *flags.Category.slug, true)
	case *flags.Category.id > 0:
		err = a.categories.FetchCategory(ctx, *flags.Category.id, true)
	default:
		return errors.New("-id or -slug is required")
	}
	if err != nil {
		return err
	}

	c := a.categories.State().Category
	if c == nil {
		return errors.New("category not found")
	}
	printCategory(*c, "")

	return nil
}

func handleAddresses(ctx context.Context, flags *shopFlags) error {
	if err := flags.Addresses.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse addresses flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	input := repository.AddressInput{
		Type:    *flags.Addresses.typ,
		Line1:   *flags.Addresses.line1,
		Line2:   *flags.Addresses.line2,
		City:    *flags.Addresses.city,
		ZipCode: *flags.Addresses.zip,
		Country: *flags.Addresses.country,
	}

	switch {
	case *flags.Addresses.add:
		err = a.addresses.CreateAddress(ctx, input)
	case *flags.Addresses.update > 0:
		err = a.addresses.UpdateAddress(ctx, *flags.Addresses.update, input)
	case *flags.Addresses.remove > 0:
		err = a.addresses.DeleteAddress(ctx, *flags.Addresses.remove)
	default:
		err = a.addresses.FetchAddresses(ctx)
	}
	if err != nil {
		return err
	}

	for _, addr := range a.addresses.State().Addresses {
		fmt.Printf("%6d  %-8s  %s, %s %s, %s\n",
			addr.ID, addr.Type, addr.Line1, addr.City, addr.ZipCode, addr.Country)
	}

	return nil
}

func handleUsers(ctx context.Context, flags *shopFlags) error {
	if err := flags.Users.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse users flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	switch {
	case *flags.Users.remove > 0:
		if err := a.users.AdminDeleteUser(ctx, *flags.Users.remove); err != nil {
			return err
		}
		fmt.Printf("%s\n", a.users.State().Status.Success)
		return nil
	case *flags.Users.update > 0:
		input := repository.AdminUserInput{
			FirstName: *flags.Users.firstName,
			LastName:  *flags.Users.lastName,
		}
		if *flags.Users.admin != "" {
			isAdmin, err := strconv.ParseBool(*flags.Users.admin)
			if err != nil {
				return errors.Wrap(err, "invalid -admin value")
			}
			input.IsAdmin = &isAdmin
		}
		if err := a.users.AdminUpdateUser(ctx, *flags.Users.update, input); err != nil {
			return err
		}
		fmt.Printf("%s\n", a.users.State().Status.Success)
		return nil
	}

	if err := a.users.FetchUsers(ctx,
		repository.UserFilters{Search: *flags.Users.search},
		repository.ListOptions{Page: *flags.Users.page},
	); err != nil {
		return err
	}

	state := a.users.State()
	for _, u := range state.Users {
		role := ""
		if u.IsAdmin {
			role = "admin"
		}
		fmt.Printf("%6d  %-30s  %-24s  %s\n", u.ID, u.Email, u.FullName(), role)
	}
	fmt.Printf("\nPage %d of %d (%d users)\n", state.Page, state.TotalPages, state.Count)

	return nil
}

func handlePayments(ctx context.Context, flags *shopFlags) error {
	if err := flags.Payments.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse payments flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if *flags.Payments.id > 0 {
		if err := a.payments.FetchPayment(ctx, *flags.Payments.id); err != nil {
			return err
		}
		p := a.payments.State().Payment
		if p == nil {
			return errors.New("payment not found")
		}
		fmt.Printf("Payment #%d  %s %.2f  %s (%s)\n", p.ID, p.Currency, p.Amount, p.Status, p.PaymentMethod)
		if p.ReferenceID != "" {
			fmt.Printf("Reference: %s\n", p.ReferenceID)
		}
		return nil
	}

	filters := repository.PaymentFilters{
		Status:        *flags.Payments.status,
		PaymentMethod: *flags.Payments.method,
	}
	opts := repository.ListOptions{Page: *flags.Payments.page}

	if *flags.Payments.all {
		err = a.payments.FetchAllPayments(ctx, filters, opts)
	} else {
		err = a.payments.FetchPayments(ctx, filters, opts)
	}
	if err != nil {
		return err
	}

	state := a.payments.State()
	for _, p := range state.Payments {
		fmt.Printf("%6d  %s %10.2f  %-12s %s\n", p.ID, p.Currency, p.Amount, p.Status, p.PaymentMethod)
	}
	fmt.Printf("\nPage %d of %d (%d payments)\n", state.Page, state.TotalPages, state.Count)

	return nil
}

func handleAdminProduct(ctx context.Context, flags *shopFlags) error {
	if err := flags.AdminProduct.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse admin-product flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	f := &flags.AdminProduct

	switch {
	case *f.remove > 0:
		err = a.products.DeleteProduct(ctx, *f.remove)
	case *f.deleteImage > 0:
		err = a.products.DeleteImage(ctx, *f.deleteImage)
	case *f.addImage != "":
		if *f.id == 0 {
			return errors.New("-id is required with -add-image")
		}
		input := repository.ImageInput{URL: *f.addImage}
		if *f.imageVariant > 0 {
			input.VariantID = f.imageVariant
		}
		err = a.products.AddImage(ctx, *f.id, input)
	case *f.addVariant:
		if *f.id == 0 {
			return errors.New("-id is required with -add-variant")
		}
		err = a.products.CreateVariant(ctx, *f.id, buildVariantInput(f))
	case *f.updateVariant > 0:
		if *f.id == 0 {
			return errors.New("-id is required with -update-variant")
		}
		err = a.products.UpdateVariant(ctx, *f.id, *f.updateVariant, buildVariantInput(f))
	case *f.deleteVariant > 0:
		if *f.id == 0 {
			return errors.New("-id is required with -delete-variant")
		}
		err = a.products.DeleteVariant(ctx, *f.id, *f.deleteVariant)
	case *f.create:
		if *f.name == "" {
			return errors.New("-name is required with -create")
		}
		err = a.products.CreateProduct(ctx, buildProductInput(f))
	case *f.id > 0:
		err = a.products.UpdateProduct(ctx, *f.id, buildProductInput(f))
	default:
		return errors.New("-create, -id, -delete, a variant flag or an image flag is required")
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", a.products.State().Status.Success)

	return nil
}

func buildProductInput(f *adminProductFlags) repository.ProductInput {
	input := repository.ProductInput{
		Name:        *f.name,
		Slug:        *f.slug,
		Description: *f.description,
		CategoryID:  *f.category,
	}
	if *f.price >= 0 {
		input.BasePrice = f.price
	}
	if *f.salePrice >= 0 {
		input.SalePrice = f.salePrice
	}
	if *f.stock >= 0 {
		input.Stock = f.stock
	}
	if *f.featured != "" {
		featured := *f.featured == "true"
		input.IsFeatured = &featured
	}

	return input
}

func buildVariantInput(f *adminProductFlags) repository.VariantInput {
	input := repository.VariantInput{Name: *f.variantName}
	if *f.variantPrice >= 0 {
		input.BasePrice = f.variantPrice
	}
	if *f.variantStock >= 0 {
		input.Stock = f.variantStock
	}

	return input
}

func handleAdminCategory(ctx context.Context, flags *shopFlags) error {
	if err := flags.AdminCategory.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse admin-category flags")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	f := &flags.AdminCategory

	input := repository.CategoryInput{
		Name:        *f.name,
		Slug:        *f.slug,
		Description: *f.description,
	}
	if *f.parent > 0 {
		input.ParentCategoryID = f.parent
	}

	switch {
	case *f.remove > 0:
		err = a.categories.DeleteCategory(ctx, *f.remove)
	case *f.deleteImage > 0:
		if *f.id == 0 {
			return errors.New("-id is required with -delete-image")
		}
		err = a.categories.DeleteImage(ctx, *f.id, *f.deleteImage)
	case *f.addImage != "":
		if *f.id == 0 {
			return errors.New("-id is required with -add-image")
		}
		err = a.categories.AddImage(ctx, *f.id, repository.ImageInput{URL: *f.addImage})
	case *f.create:
		if *f.name == "" {
			return errors.New("-name is required with -create")
		}
		err = a.categories.CreateCategory(ctx, input)
	case *f.id > 0:
		err = a.categories.UpdateCategory(ctx, *f.id, input)
	default:
		return errors.New("-create, -id, -delete or an image flag is required")
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", a.categories.State().Status.Success)

	return nil
}
