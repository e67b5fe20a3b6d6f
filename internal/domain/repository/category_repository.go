package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CategoryInput is the create/update payload for a category.
type CategoryInput struct {
	Name             string `json:"name,omitempty"`
	Slug             string `json:"slug,omitempty"`
	Description      string `json:"description,omitempty"`
	ParentCategoryID *int   `json:"parent_category_id,omitempty"`
}

// CategoryRepository covers the category tree. Listings are not
// paginated; the tree flag asks for nested subcategories.
type CategoryRepository interface {
	List(ctx context.Context, tree bool) ([]entity.Category, error)
	ListRoot(ctx context.Context) ([]entity.Category, error)
	Get(ctx context.Context, id int, includeSubcategories bool) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string, includeSubcategories bool) (*entity.Category, error)
	Breadcrumbs(ctx context.Context, id int) ([]entity.Category, error)
	Create(ctx context.Context, input CategoryInput) (Result[entity.Category], error)
	Update(ctx context.Context, id int, input CategoryInput) (Result[entity.Category], error)
	Delete(ctx context.Context, id int) (Deleted, error)

	AddImage(ctx context.Context, categoryID int, input ImageInput) (Result[entity.Category], error)
	DeleteImage(ctx context.Context, categoryID, imageID int) (Result[entity.Category], error)
}
