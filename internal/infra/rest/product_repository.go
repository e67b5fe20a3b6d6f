package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type productRepository struct {
	client *Client
}

// NewProductRepository builds the REST-backed product repository.
func NewProductRepository(client *Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) List(ctx context.Context, filters repository.ProductFilters, opts repository.ListOptions) (repository.Page[entity.Product], error) {
	query := listQuery(opts)
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if len(filters.CategoryIDs) > 0 {
		ids := make([]string, 0, len(filters.CategoryIDs))
		for _, id := range filters.CategoryIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		query.Set("category_ids", strings.Join(ids, ","))
	}
	if filters.IsFeatured != nil {
		query.Set("is_featured", strconv.FormatBool(*filters.IsFeatured))
	}
	if filters.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*filters.IsActive))
	}

	var out struct {
		Products   []entity.Product `json:"products"`
		Count      int              `json:"count"`
		TotalPages int              `json:"total_pages"`
		Page       int              `json:"page"`
	}
	if err := r.client.get(ctx, "/products/", query, &out); err != nil {
		return repository.Page[entity.Product]{}, err
	}

	return repository.Page[entity.Product]{
		Items:      out.Products,
		Count:      out.Count,
		TotalPages: out.TotalPages,
		Page:       out.Page,
	}, nil
}

func (r *productRepository) Get(ctx context.Context, id int) (*entity.Product, error) {
	var out struct {
		Product entity.Product `json:"product"`
	}
	if err := r.client.get(ctx, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out.Product, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var out struct {
		Product entity.Product `json:"product"`
	}
	if err := r.client.get(ctx, "/products/slug/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}

	return &out.Product, nil
}

func (r *productRepository) Create(ctx context.Context, input repository.ProductInput) (repository.Result[entity.Product], error) {
	var out struct {
		Product entity.Product `json:"product"`
		Message string         `json:"message"`
	}
	if err := r.client.post(ctx, "/products/", input, &out); err != nil {
		return repository.Result[entity.Product]{}, err
	}

	return repository.Result[entity.Product]{Resource: out.Product, Message: out.Message}, nil
}

func (r *productRepository) Update(ctx context.Context, id int, input repository.ProductInput) (repository.Result[entity.Product], error) {
	var out struct {
		Product entity.Product `json:"product"`
		Message string         `json:"message"`
	}
	if err := r.client.put(ctx, fmt.Sprintf("/products/%d", id), input, &out); err != nil {
		return repository.Result[entity.Product]{}, err
	}

	return repository.Result[entity.Product]{Resource: out.Product, Message: out.Message}, nil
}

func (r *productRepository) Delete(ctx context.Context, id int) (repository.Deleted, error) {
	var out struct {
		ID      int    `json:"id"`
		Message string `json:"message"`
	}
	if err := r.client.delete(ctx, fmt.Sprintf("/products/%d", id), &out); err != nil {
		return repository.Deleted{}, err
	}

	return repository.Deleted{ID: out.ID, Message: out.Message}, nil
}

func (r *productRepository) CreateVariant(ctx context.Context, productID int, input repository.VariantInput) (repository.VariantResult, error) {
	var out struct {
		Variant entity.ProductVariant `json:"variant"`
		Product entity.Product        `json:"product"`
		Message string                `json:"message"`
	}
	if err := r.client.post(ctx, fmt.Sprintf("/products/%d/variants", productID), input, &out); err != nil {
		return repository.VariantResult{}, err
	}

	return repository.VariantResult{Variant: out.Variant, Product: out.Product, Message: out.Message}, nil
}

func (r *productRepository) UpdateVariant(ctx context.Context, productID, variantID int, input repository.VariantInput) (repository.VariantResult, error) {
	var out struct {
		Variant entity.ProductVariant `json:"variant"`
		Product entity.Product        `json:"product"`
		Message string                `json:"message"`
	}
	if err := r.client.put(ctx, fmt.Sprintf("/products/%d/variants/%d", productID, variantID), input, &out); err != nil {
		return repository.VariantResult{}, err
	}

	return repository.VariantResult{Variant: out.Variant, Product: out.Product, Message: out.Message}, nil
}

func (r *productRepository) DeleteVariant(ctx context.Context, productID, variantID int) (repository.VariantDeleted, error) {
	var out struct {
		ID      int            `json:"id"`
		Product entity.Product `json:"product"`
		Message string         `json:"message"`
	}
	if err := r.client.delete(ctx, fmt.Sprintf("/products/%d/variants/%d", productID, variantID), &out); err != nil {
		return repository.VariantDeleted{}, err
	}

	return repository.VariantDeleted{ID: out.ID, Product: out.Product, Message: out.Message}, nil
}

func (r *productRepository) AddImage(ctx context.Context, productID int, input repository.ImageInput) (repository.Result[entity.Product], error) {
	var out struct {
		Product entity.Product `json:"product"`
		Message string         `json:"message"`
	}
	if err := r.client.post(ctx, fmt.Sprintf("/products/%d/images", productID), input, &out); err != nil {
		return repository.Result[entity.Product]{}, err
	}

	return repository.Result[entity.Product]{Resource: out.Product, Message: out.Message}, nil
}

func (r *productRepository) DeleteImage(ctx context.Context, imageID int) (repository.Result[entity.Product], error) {
	var out struct {
		Product entity.Product `json:"product"`
		Message string         `json:"message"`
	}
	if err := r.client.delete(ctx, fmt.Sprintf("/products/images/%d", imageID), &out); err != nil {
		return repository.Result[entity.Product]{}, err
	}

	return repository.Result[entity.Product]{Resource: out.Product, Message: out.Message}, nil
}
