package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// PaymentFilters narrows a payment listing.
type PaymentFilters struct {
	UserID        *int
	Status        string
	PaymentMethod string
}

// PaymentRequestInput opens a provider payment session for an order
// total. Card collection then happens out-of-band against the session.
type PaymentRequestInput struct {
	UserID        *int    `json:"user_id"`
	Currency      string  `json:"currency"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

// PaymentRequest is the opened provider session: the payment record,
// the provider's next-action payload (e.g. a hosted checkout URL) and
// its raw status.
type PaymentRequest struct {
	Payment      entity.Payment
	Actions      map[string]any
	XenditStatus string
	Message      string
}

// PaymentStatus is a point-in-time provider status check.
type PaymentStatus struct {
	Payment      entity.Payment
	XenditStatus string
	Message      string
}

// PaymentRepository covers payment history and the provider hand-off.
type PaymentRepository interface {
	ListAll(ctx context.Context, filters PaymentFilters, opts ListOptions) (Page[entity.Payment], error)
	ListMine(ctx context.Context, filters PaymentFilters, opts ListOptions) (Page[entity.Payment], error)
	Get(ctx context.Context, id int) (*entity.Payment, error)
	CreateRequest(ctx context.Context, input PaymentRequestInput) (PaymentRequest, error)
	CheckStatus(ctx context.Context, id int) (PaymentStatus, error)
}
