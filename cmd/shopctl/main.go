package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - login / logout / register:      account session
// - profile:                        show or update the signed-in profile
// - products / product:             browse the catalog
// - categories / category:          browse the category tree
// - cart:                           inspect and mutate the cart
// - checkout:                       place an order and pay for it
// - orders / order:                 order history
// - reviews / review:               product reviews
// - addresses:                      saved addresses
// - subscribe / unsubscribe:        newsletter
// - users / payments:               back-office listings
// - admin-product / admin-category: back-office catalog management

func main() {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	registerCmd := flag.NewFlagSet("register", flag.ExitOnError)
	profileCmd := flag.NewFlagSet("profile", flag.ExitOnError)
	productsCmd := flag.NewFlagSet("products", flag.ExitOnError)
	productCmd := flag.NewFlagSet("product", flag.ExitOnError)
	categoriesCmd := flag.NewFlagSet("categories", flag.ExitOnError)
	categoryCmd := flag.NewFlagSet("category", flag.ExitOnError)
	cartCmd := flag.NewFlagSet("cart", flag.ExitOnError)
	checkoutCmd := flag.NewFlagSet("checkout", flag.ExitOnError)
	ordersCmd := flag.NewFlagSet("orders", flag.ExitOnError)
	orderCmd := flag.NewFlagSet("order", flag.ExitOnError)
	reviewsCmd := flag.NewFlagSet("reviews", flag.ExitOnError)
	reviewCmd := flag.NewFlagSet("review", flag.ExitOnError)
	addressesCmd := flag.NewFlagSet("addresses", flag.ExitOnError)
	subscribeCmd := flag.NewFlagSet("subscribe", flag.ExitOnError)
	usersCmd := flag.NewFlagSet("users", flag.ExitOnError)
	paymentsCmd := flag.NewFlagSet("payments", flag.ExitOnError)
	adminProductCmd := flag.NewFlagSet("admin-product", flag.ExitOnError)
	adminCategoryCmd := flag.NewFlagSet("admin-category", flag.ExitOnError)

	flags := shopFlags{
		Login: loginFlags{
			cmd:      loginCmd,
			email:    loginCmd.String("email", "", "Account email"),
			password: loginCmd.String("password", "", "Account password"),
		},
		Register: registerFlags{
			cmd:       registerCmd,
			email:     registerCmd.String("email", "", "Account email"),
			password:  registerCmd.String("password", "", "Account password"),
			firstName: registerCmd.String("first-name", "", "First name"),
			lastName:  registerCmd.String("last-name", "", "Last name"),
		},
		Products: productsFlags{
			cmd:      productsCmd,
			search:   productsCmd.String("search", "", "Search term"),
			category: productsCmd.Int("category", 0, "Filter by category ID"),
			featured: productsCmd.Bool("featured", false, "Only featured products"),
			page:     productsCmd.Int("page", 1, "Page number"),
			perPage:  productsCmd.Int("per-page", 20, "Items per page"),
		},
		Product: productFlags{
			cmd:  productCmd,
			id:   productCmd.Int("id", 0, "Product ID"),
			slug: productCmd.String("slug", "", "Product slug"),
		},
		Profile: profileFlags{
			cmd:             profileCmd,
			firstName:       profileCmd.String("first-name", "", "New first name"),
			lastName:        profileCmd.String("last-name", "", "New last name"),
			countryCode:     profileCmd.String("country-code", "", "New dialing prefix"),
			phone:           profileCmd.String("phone", "", "New phone number"),
			currentPassword: profileCmd.String("current-password", "", "Current password (with -new-password)"),
			newPassword:     profileCmd.String("new-password", "", "New password"),
		},
		Categories: categoriesFlags{
			cmd:  categoriesCmd,
			tree: categoriesCmd.Bool("tree", false, "Nest subcategories"),
			root: categoriesCmd.Bool("root", false, "Only top-level categories"),
		},
		Category: categoryFlags{
			cmd:         categoryCmd,
			id:          categoryCmd.Int("id", 0, "Category ID"),
			slug:        categoryCmd.String("slug", "", "Category slug"),
			breadcrumbs: categoryCmd.Bool("breadcrumbs", false, "Show the breadcrumb trail"),
		},
		Cart: cartFlags{
			cmd:      cartCmd,
			add:      cartCmd.Int("add", 0, "Product ID to add"),
			variant:  cartCmd.Int("variant", 0, "Variant ID for -add"),
			quantity: cartCmd.Int("quantity", 1, "Quantity for -add or -update"),
			update:   cartCmd.Int("update", 0, "Cart item ID to change"),
			remove:   cartCmd.Int("remove", 0, "Cart item ID to remove"),
			clear:    cartCmd.Bool("clear", false, "Empty the cart"),
		},
		Checkout: checkoutFlags{
			cmd:            checkoutCmd,
			email:          checkoutCmd.String("email", "", "Contact email"),
			firstName:      checkoutCmd.String("first-name", "", "First name"),
			lastName:       checkoutCmd.String("last-name", "", "Last name"),
			addressID:      checkoutCmd.Int("address-id", 0, "Saved shipping address ID"),
			line1:          checkoutCmd.String("line1", "", "Shipping address line 1"),
			city:           checkoutCmd.String("city", "", "Shipping city"),
			zip:            checkoutCmd.String("zip", "", "Shipping zip code"),
			country:        checkoutCmd.String("country", "", "Shipping country"),
			shippingMethod: checkoutCmd.String("shipping", "standard", "Shipping method (standard, express)"),
			paymentMethod:  checkoutCmd.String("payment", "credit_card", "Payment method"),
			wait:           checkoutCmd.Bool("wait", true, "Wait for the payment to settle"),
		},
		Orders: ordersFlags{
			cmd:    ordersCmd,
			status: ordersCmd.String("status", "", "Filter by status"),
			page:   ordersCmd.Int("page", 1, "Page number"),
			all:    ordersCmd.Bool("all", false, "Every order (admin)"),
		},
		Order: orderFlags{
			cmd:       orderCmd,
			id:        orderCmd.Int("id", 0, "Order ID"),
			email:     orderCmd.String("email", "", "Checkout email for guest lookup"),
			cancel:    orderCmd.Bool("cancel", false, "Cancel the order"),
			setStatus: orderCmd.String("set-status", "", "New status (admin)"),
			tracking:  orderCmd.String("tracking", "", "Tracking number (admin)"),
		},
		Reviews: reviewsFlags{
			cmd:     reviewsCmd,
			product: reviewsCmd.Int("product", 0, "Product ID"),
			page:    reviewsCmd.Int("page", 1, "Page number"),
		},
		Review: reviewFlags{
			cmd:     reviewCmd,
			product: reviewCmd.Int("product", 0, "Product ID"),
			rating:  reviewCmd.Int("rating", 5, "Rating 1-5"),
			title:   reviewCmd.String("title", "", "Review title"),
			content: reviewCmd.String("content", "", "Review body"),
			update:  reviewCmd.Int("update", 0, "Review ID to edit"),
			remove:  reviewCmd.Int("delete", 0, "Review ID to delete"),
		},
		Addresses: addressesFlags{
			cmd:     addressesCmd,
			add:     addressesCmd.Bool("add", false, "Save a new address"),
			update:  addressesCmd.Int("update", 0, "Address ID to change"),
			remove:  addressesCmd.Int("delete", 0, "Address ID to delete"),
			typ:     addressesCmd.String("type", "shipping", "Address type (shipping, billing)"),
			line1:   addressesCmd.String("line1", "", "Street address"),
			line2:   addressesCmd.String("line2", "", "Apartment, suite, unit"),
			city:    addressesCmd.String("city", "", "City"),
			zip:     addressesCmd.String("zip", "", "Zip code"),
			country: addressesCmd.String("country", "", "Country"),
		},
		Subscribe: subscribeFlags{
			cmd:   subscribeCmd,
			email: subscribeCmd.String("email", "", "Email address"),
		},
		Users: usersFlags{
			cmd:       usersCmd,
			search:    usersCmd.String("search", "", "Search term"),
			page:      usersCmd.Int("page", 1, "Page number"),
			update:    usersCmd.Int("update", 0, "User ID to change"),
			remove:    usersCmd.Int("delete", 0, "User ID to delete"),
			firstName: usersCmd.String("first-name", "", "New first name"),
			lastName:  usersCmd.String("last-name", "", "New last name"),
			admin:     usersCmd.String("admin", "", "Grant or revoke admin (true, false)"),
		},
		Payments: paymentsFlags{
			cmd:    paymentsCmd,
			id:     paymentsCmd.Int("id", 0, "Payment ID"),
			all:    paymentsCmd.Bool("all", false, "Every payment (admin)"),
			status: paymentsCmd.String("status", "", "Filter by status"),
			method: paymentsCmd.String("method", "", "Filter by payment method"),
			page:   paymentsCmd.Int("page", 1, "Page number"),
		},
		AdminProduct: adminProductFlags{
			cmd:           adminProductCmd,
			create:        adminProductCmd.Bool("create", false, "Create a product"),
			id:            adminProductCmd.Int("id", 0, "Product ID to change"),
			remove:        adminProductCmd.Int("delete", 0, "Product ID to delete"),
			name:          adminProductCmd.String("name", "", "Product name"),
			slug:          adminProductCmd.String("slug", "", "URL slug"),
			description:   adminProductCmd.String("description", "", "Description"),
			category:      adminProductCmd.Int("category", 0, "Category ID"),
			price:         adminProductCmd.Float64("price", -1, "Base price"),
			salePrice:     adminProductCmd.Float64("sale-price", -1, "Sale price"),
			stock:         adminProductCmd.Int("stock", -1, "Stock level"),
			featured:      adminProductCmd.String("featured", "", "Feature flag (true, false)"),
			addVariant:    adminProductCmd.Bool("add-variant", false, "Add a variant to -id"),
			updateVariant: adminProductCmd.Int("update-variant", 0, "Variant ID to change on -id"),
			deleteVariant: adminProductCmd.Int("delete-variant", 0, "Variant ID to delete from -id"),
			variantName:   adminProductCmd.String("variant-name", "", "Variant name"),
			variantPrice:  adminProductCmd.Float64("variant-price", -1, "Variant base price"),
			variantStock:  adminProductCmd.Int("variant-stock", -1, "Variant stock level"),
			addImage:      adminProductCmd.String("add-image", "", "Image URL to attach to -id"),
			imageVariant:  adminProductCmd.Int("image-variant", 0, "Variant ID for -add-image"),
			deleteImage:   adminProductCmd.Int("delete-image", 0, "Image ID to delete"),
		},
		AdminCategory: adminCategoryFlags{
			cmd:         adminCategoryCmd,
			create:      adminCategoryCmd.Bool("create", false, "Create a category"),
			id:          adminCategoryCmd.Int("id", 0, "Category ID to change"),
			remove:      adminCategoryCmd.Int("delete", 0, "Category ID to delete"),
			name:        adminCategoryCmd.String("name", "", "Category name"),
			slug:        adminCategoryCmd.String("slug", "", "URL slug"),
			description: adminCategoryCmd.String("description", "", "Description"),
			parent:      adminCategoryCmd.Int("parent", 0, "Parent category ID"),
			addImage:    adminCategoryCmd.String("add-image", "", "Image URL to attach to -id"),
			deleteImage: adminCategoryCmd.Int("delete-image", 0, "Image ID to delete from -id"),
		},
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type shopFlags struct {
	Login         loginFlags
	Register      registerFlags
	Profile       profileFlags
	Products      productsFlags
	Product       productFlags
	Categories    categoriesFlags
	Category      categoryFlags
	Cart          cartFlags
	Checkout      checkoutFlags
	Orders        ordersFlags
	Order         orderFlags
	Reviews       reviewsFlags
	Review        reviewFlags
	Addresses     addressesFlags
	Subscribe     subscribeFlags
	Users         usersFlags
	Payments      paymentsFlags
	AdminProduct  adminProductFlags
	AdminCategory adminCategoryFlags
}

type loginFlags struct {
	cmd      *flag.FlagSet
	email    *string
	password *string
}

type registerFlags struct {
	cmd       *flag.FlagSet
	email     *string
	password  *string
	firstName *string
	lastName  *string
}

type productsFlags struct {
	cmd      *flag.FlagSet
	search   *string
	category *int
	featured *bool
	page     *int
	perPage  *int
}

type productFlags struct {
	cmd  *flag.FlagSet
	id   *int
	slug *string
}

type profileFlags struct {
	cmd             *flag.FlagSet
	firstName       *string
	lastName        *string
	countryCode     *string
	phone           *string
	currentPassword *string
	newPassword     *string
}

type categoriesFlags struct {
	cmd  *flag.FlagSet
	tree *bool
	root *bool
}

type categoryFlags struct {
	cmd         *flag.FlagSet
	id          *int
	slug        *string
	breadcrumbs *bool
}

type cartFlags struct {
	cmd      *flag.FlagSet
	add      *int
	variant  *int
	quantity *int
	update   *int
	remove   *int
	clear    *bool
}

type checkoutFlags struct {
	cmd            *flag.FlagSet
	email          *string
	firstName      *string
	lastName       *string
	addressID      *int
	line1          *string
	city           *string
	zip            *string
	country        *string
	shippingMethod *string
	paymentMethod  *string
	wait           *bool
}

type ordersFlags struct {
	cmd    *flag.FlagSet
	status *string
	page   *int
	all    *bool
}

type orderFlags struct {
	cmd       *flag.FlagSet
	id        *int
	email     *string
	cancel    *bool
	setStatus *string
	tracking  *string
}

type reviewsFlags struct {
	cmd     *flag.FlagSet
	product *int
	page    *int
}

type reviewFlags struct {
	cmd     *flag.FlagSet
	product *int
	rating  *int
	title   *string
	content *string
	update  *int
	remove  *int
}

type addressesFlags struct {
	cmd     *flag.FlagSet
	add     *bool
	update  *int
	remove  *int
	typ     *string
	line1   *string
	line2   *string
	city    *string
	zip     *string
	country *string
}

type subscribeFlags struct {
	cmd   *flag.FlagSet
	email *string
}

type usersFlags struct {
	cmd       *flag.FlagSet
	search    *string
	page      *int
	update    *int
	remove    *int
	firstName *string
	lastName  *string
	admin     *string
}

type paymentsFlags struct {
	cmd    *flag.FlagSet
	id     *int
	all    *bool
	status *string
	method *string
	page   *int
}

type adminProductFlags struct {
	cmd           *flag.FlagSet
	create        *bool
	id            *int
	remove        *int
	name          *string
	slug          *string
	description   *string
	category      *int
	price         *float64
	salePrice     *float64
	stock         *int
	featured      *string
	addVariant    *bool
	updateVariant *int
	deleteVariant *int
	variantName   *string
	variantPrice  *float64
	variantStock  *int
	addImage      *string
	imageVariant  *int
	deleteImage   *int
}

type adminCategoryFlags struct {
	cmd         *flag.FlagSet
	create      *bool
	id          *int
	remove      *int
	name        *string
	slug        *string
	description *string
	parent      *int
	addImage    *string
	deleteImage *int
}

func runSubcommand(ctx context.Context, flags *shopFlags) error {
	switch os.Args[1] {
	case "login":
		return handleLogin(ctx, flags)
	case "logout":
		return handleLogout(ctx)
	case "register":
		return handleRegister(ctx, flags)
	case "profile":
		return handleProfile(ctx, flags)
	case "products":
		return handleProducts(ctx, flags)
	case "product":
		return handleProduct(ctx, flags)
	case "categories":
		return handleCategories(ctx, flags)
	case "category":
		return handleCategory(ctx, flags)
	case "cart":
		return handleCart(ctx, flags)
	case "checkout":
		return handleCheckout(ctx, flags)
	case "orders":
		return handleOrders(ctx, flags)
	case "order":
		return handleOrder(ctx, flags)
	case "reviews":
		return handleReviews(ctx, flags)
	case "review":
		return handleReview(ctx, flags)
	case "addresses":
		return handleAddresses(ctx, flags)
	case "subscribe":
		return handleSubscribe(ctx, flags, true)
	case "unsubscribe":
		return handleSubscribe(ctx, flags, false)
	case "users":
		return handleUsers(ctx, flags)
	case "payments":
		return handlePayments(ctx, flags)
	case "admin-product":
		return handleAdminProduct(ctx, flags)
	case "admin-category":
		return handleAdminCategory(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func printUsage() {
	fmt.Println("Usage: shopctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  login           Sign in")
	fmt.Println("  logout          Sign out")
	fmt.Println("  register        Create an account")
	fmt.Println("  profile         Show or update your profile")
	fmt.Println("  products        List or search the catalog")
	fmt.Println("  product         Show one product")
	fmt.Println("  categories      List categories")
	fmt.Println("  category        Show one category")
	fmt.Println("  cart            Show or change the cart")
	fmt.Println("  checkout        Place an order and pay")
	fmt.Println("  orders          List your orders")
	fmt.Println("  order           Show, cancel or update one order")
	fmt.Println("  reviews         List reviews for a product")
	fmt.Println("  review          Submit, edit or delete a review")
	fmt.Println("  addresses       Manage saved addresses")
	fmt.Println("  subscribe       Join the newsletter")
	fmt.Println("  unsubscribe     Leave the newsletter")
	fmt.Println("  users           Manage accounts (admin)")
	fmt.Println("  payments        List payments (admin)")
	fmt.Println("  admin-product   Manage catalog products (admin)")
	fmt.Println("  admin-category  Manage categories (admin)")
	fmt.Println("")
	fmt.Println("Use 'shopctl <command> -h' for more information about a command.")
}
