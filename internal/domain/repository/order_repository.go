package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderFilters narrows an order listing by status.
type OrderFilters struct {
	Status string
}

// CreateOrderInput is the checkout submission. Saved addresses are
// referenced by ID; otherwise the inline fields describe new ones.
// Tax and shipping cost are the client's checkout estimates; the
// server is expected to re-derive them.
type CreateOrderInput struct {
	ShippingAddressID *int `json:"shipping_address_id"`
	BillingAddressID  *int `json:"billing_address_id"`

	ShippingLine1   string `json:"shipping_line_1,omitempty"`
	ShippingLine2   string `json:"shipping_line_2,omitempty"`
	ShippingCity    string `json:"shipping_city,omitempty"`
	ShippingZipCode string `json:"shipping_zip_code,omitempty"`
	ShippingCountry string `json:"shipping_country,omitempty"`

	BillingLine1   string `json:"billing_line_1,omitempty"`
	BillingLine2   string `json:"billing_line_2,omitempty"`
	BillingCity    string `json:"billing_city,omitempty"`
	BillingZipCode string `json:"billing_zip_code,omitempty"`
	BillingCountry string `json:"billing_country,omitempty"`

	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CountryCode string `json:"country_code"`
	PhoneNumber string `json:"phone_number"`

	ShippingMethod string  `json:"shipping_method"`
	Tax            float64 `json:"tax"`
	ShippingCost   float64 `json:"shipping_cost"`
}

// PayOrderInput links a completed payment to its order.
type PayOrderInput struct {
	PaymentID int `json:"payment_id"`
}

// AdminOrderInput is the back-office order update.
type AdminOrderInput struct {
	Status         string `json:"status,omitempty"`
	TrackingNumber string `json:"tracking_number,omitempty"`
}

// OrderRepository covers customer orders, guest lookups and the admin
// order management surface.
type OrderRepository interface {
	ListMine(ctx context.Context, filters OrderFilters, opts ListOptions) (Page[entity.Order], error)
	ListAll(ctx context.Context, filters OrderFilters, opts ListOptions) (Page[entity.Order], error)
	Get(ctx context.Context, id int) (*entity.Order, error)
	GetGuest(ctx context.Context, id int, email string) (*entity.Order, error)
	Create(ctx context.Context, input CreateOrderInput) (Result[entity.Order], error)
	Cancel(ctx context.Context, id int) (Result[entity.Order], error)
	Pay(ctx context.Context, id int, input PayOrderInput) (Result[entity.Order], error)
	AdminUpdate(ctx context.Context, id int, input AdminOrderInput) (Result[entity.Order], error)
}
