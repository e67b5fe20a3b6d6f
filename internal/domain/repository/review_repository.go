package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReviewFilters narrows a review listing to a product or an author.
type ReviewFilters struct {
	ProductID *int
	UserID    *int
}

// ReviewInput is the create/update payload for a review. Moderation
// flags are server-side only and never submitted.
type ReviewInput struct {
	Rating  int    `json:"rating,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// ReviewRepository covers product reviews.
type ReviewRepository interface {
	List(ctx context.Context, filters ReviewFilters, opts ListOptions) (Page[entity.Review], error)
	Get(ctx context.Context, id int) (*entity.Review, error)
	Create(ctx context.Context, productID int, input ReviewInput) (Result[entity.Review], error)
	Update(ctx context.Context, id int, input ReviewInput) (Result[entity.Review], error)
	Delete(ctx context.Context, id int) (Deleted, error)
}
