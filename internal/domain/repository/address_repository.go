package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddressInput is the create/update payload for a saved address.
type AddressInput struct {
	Type    string `json:"type,omitempty"`
	Line1   string `json:"line_1,omitempty"`
	Line2   string `json:"line_2,omitempty"`
	City    string `json:"city,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

// AddressRepository covers the signed-in user's saved addresses. The
// listing is not paginated.
type AddressRepository interface {
	List(ctx context.Context) ([]entity.Address, error)
	Create(ctx context.Context, input AddressInput) (Result[entity.Address], error)
	Update(ctx context.Context, id int, input AddressInput) (Result[entity.Address], error)
	Delete(ctx context.Context, id int) (Deleted, error)
}
