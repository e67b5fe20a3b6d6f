package entity

// Order statuses in their display progression. Cancelled is a terminal
// branch reachable from the pre-shipment statuses.
const (
	OrderStatusAwaitingPayment = "awaiting_payment"
	OrderStatusProcessing      = "processing"
	OrderStatusShipped         = "shipped"
	OrderStatusDelivered       = "delivered"
	OrderStatusCompleted       = "completed"
	OrderStatusCancelled       = "cancelled"
)

// Shipping methods accepted at checkout.
const (
	ShippingMethodStandard = "standard"
	ShippingMethodExpress  = "express"
)

// orderStatusRank orders the linear statuses for the progress display.
var orderStatusRank = map[string]int{
	OrderStatusAwaitingPayment: 0,
	OrderStatusProcessing:      1,
	OrderStatusShipped:         2,
	OrderStatusDelivered:       3,
	OrderStatusCompleted:       4,
}

// OrderStatusStep returns the order's position on the linear status
// progression, and false for the terminal cancelled branch.
func OrderStatusStep(status string) (int, bool) {
	rank, ok := orderStatusRank[status]

	return rank, ok
}

// Order is a placed order with its items, addresses and payment.
type Order struct {
	ID                int    `json:"id"`
	UserID            int    `json:"user_id"` // Zero for guest orders.
	ShippingAddressID int    `json:"shipping_address_id"`
	BillingAddressID  int    `json:"billing_address_id"`
	PaymentID         int    `json:"payment_id"`
	Status            string `json:"status"`
	ShippingMethod    string `json:"shipping_method"`

	Total          float64 `json:"total"`
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	ShippingCost   float64 `json:"shipping_cost"`
	Discount       float64 `json:"discount"`
	TrackingNumber string  `json:"tracking_number"`

	Items           []OrderItem `json:"items"`
	User            *User       `json:"user"`
	ShippingAddress *Address    `json:"shipping_address"`
	BillingAddress  *Address    `json:"billing_address"`
	Payment         *Payment    `json:"payment"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// OrderItem is one line of an order, priced at purchase time.
type OrderItem struct {
	ID        int     `json:"id"`
	OrderID   int     `json:"order_id"`
	ProductID int     `json:"product_id"`
	VariantID int     `json:"variant_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`

	Product *Product        `json:"product"`
	Variant *ProductVariant `json:"variant"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}
