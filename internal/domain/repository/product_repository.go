package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductFilters narrows a product listing. Zero values are omitted from
// the query.
type ProductFilters struct {
	Search      string
	CategoryIDs []int
	IsFeatured  *bool
	IsActive    *bool
}

// ProductInput is the create/update payload for a product. Pointer
// fields distinguish "leave unchanged" from an explicit zero.
type ProductInput struct {
	Name            string   `json:"name,omitempty"`
	Slug            string   `json:"slug,omitempty"`
	Description     string   `json:"description,omitempty"`
	Benefits        string   `json:"benefits,omitempty"`
	Ingredients     string   `json:"ingredients,omitempty"`
	Instructions    string   `json:"instructions,omitempty"`
	CategoryID      int      `json:"category_id,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
	IsFeatured      *bool    `json:"is_featured,omitempty"`
	MetaTitle       string   `json:"meta_title,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
	Width           *float64 `json:"width,omitempty"`
	Height          *float64 `json:"height,omitempty"`
	Length          *float64 `json:"length,omitempty"`
	Option1Name     string   `json:"option1_name,omitempty"`
	Option2Name     string   `json:"option2_name,omitempty"`
	Option3Name     string   `json:"option3_name,omitempty"`
	BasePrice       *float64 `json:"base_price,omitempty"`
	SalePrice       *float64 `json:"sale_price,omitempty"`
	Stock           *int     `json:"stock,omitempty"`
}

// VariantInput is the create/update payload for a product variant.
type VariantInput struct {
	Name         string   `json:"name,omitempty"`
	BasePrice    *float64 `json:"base_price,omitempty"`
	SalePrice    *float64 `json:"sale_price,omitempty"`
	Stock        *int     `json:"stock,omitempty"`
	Option1Value string   `json:"option1_value,omitempty"`
	Option2Value string   `json:"option2_value,omitempty"`
	Option3Value string   `json:"option3_value,omitempty"`
}

// ImageInput attaches an already-hosted image by URL.
type ImageInput struct {
	URL       string `json:"url"`
	VariantID *int   `json:"variant_id,omitempty"`
}

// VariantResult is a variant mutation response. The server returns the
// owning product re-serialized so list rows can be refreshed in place.
type VariantResult struct {
	Variant entity.ProductVariant
	Product entity.Product
	Message string
}

// VariantDeleted reports a variant removal plus the refreshed product.
type VariantDeleted struct {
	ID      int
	Product entity.Product
	Message string
}

// ProductRepository covers the catalog's product surface, including the
// admin variant and image management operations.
type ProductRepository interface {
	List(ctx context.Context, filters ProductFilters, opts ListOptions) (Page[entity.Product], error)
	Get(ctx context.Context, id int) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Create(ctx context.Context, input ProductInput) (Result[entity.Product], error)
	Update(ctx context.Context, id int, input ProductInput) (Result[entity.Product], error)
	Delete(ctx context.Context, id int) (Deleted, error)

	CreateVariant(ctx context.Context, productID int, input VariantInput) (VariantResult, error)
	UpdateVariant(ctx context.Context, productID, variantID int, input VariantInput) (VariantResult, error)
	DeleteVariant(ctx context.Context, productID, variantID int) (VariantDeleted, error)

	AddImage(ctx context.Context, productID int, input ImageInput) (Result[entity.Product], error)
	DeleteImage(ctx context.Context, imageID int) (Result[entity.Product], error)
}
