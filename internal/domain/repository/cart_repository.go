package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartItemInput adds a product (optionally a specific variant) to the
// cart.
type CartItemInput struct {
	ProductID int  `json:"product_id"`
	VariantID *int `json:"variant_id,omitempty"`
	Quantity  int  `json:"quantity"`
}

// CartRepository is the server-owned cart. Every mutation returns the
// full recomputed cart; quantity and pricing math never happen
// client-side.
type CartRepository interface {
	Get(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, input CartItemInput) (*entity.Cart, error)
	UpdateItem(ctx context.Context, itemID, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, itemID int) (*entity.Cart, error)
	Clear(ctx context.Context) (*entity.Cart, error)
}
