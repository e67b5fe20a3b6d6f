package rest

import (
	"context"
	"fmt"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type categoryRepository struct {
	client *Client
}

// NewCategoryRepository builds the REST-backed category repository.
func NewCategoryRepository(client *Client) repository.CategoryRepository {
	return &categoryRepository{client: client}
}

func (r *categoryRepository) List(ctx context.Context, tree bool) ([]entity.Category, error) {
	query := url.Values{}
	if tree {
		query.Set("tree", "true")
	}

	var out struct {
		Categories []entity.Category `json:"categories"`
	}
	if err := r.client.get(ctx, "/categories/", query, &out); err != nil {
		return nil, err
	}

	return out.Categories, nil
}

func (r *categoryRepository) ListRoot(ctx context.Context) ([]entity.Category, error) {
	var out struct {
		Categories []entity.Category `json:"categories"`
	}
	if err := r.client.get(ctx, "/categories/root", nil, &out); err != nil {
		return nil, err
	}

	return out.Categories, nil
}

func (r *categoryRepository) Get(ctx context.Context, id int, includeSubcategories bool) (*entity.Category, error) {
	query := url.Values{}
	if includeSubcategories {
		query.Set("include_subcategories", "true")
	}

	var out struct {
		Category entity.Category `json:"category"`
	}
	if err := r.client.get(ctx, fmt.Sprintf("/categories/%d", id), query, &out); err != nil {
		return nil, err
	}

	return &out.Category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string, includeSubcategories bool) (*entity.Category, error) {
	query := url.Values{}
	if includeSubcategories {
		query.Set("include_subcategories", "true")
	}

	var out struct {
		Category entity.Category `json:"category"`
	}
	if err := r.client.get(ctx, "/categories/slug/"+url.PathEscape(slug), query, &out); err != nil {
		return nil, err
	}

	return &out.Category, nil
}

func (r *categoryRepository) Breadcrumbs(ctx context.Context, id int) ([]entity.Category, error) {
	var out struct {
		Breadcrumbs []entity.Category `json:"breadcrumbs"`
	}
	if err := r.client.get(ctx, fmt.Sprintf("/categories/%d/breadcrumbs", id), nil, &out); err != nil {
		return nil, err
	}

	return out.Breadcrumbs, nil
}

func (r *categoryRepository) Create(ctx context.Context, input repository.CategoryInput) (repository.Result[entity.Category], error) {
	var out struct {
		Category entity.Category `json:"category"`
		Message  string          `json:"message"`
	}
	if err := r.client.post(ctx, "/categories/", input, &out); err != nil {
		return repository.Result[entity.Category]{}, err
	}

	return repository.Result[entity.Category]{Resource: out.Category, Message: out.Message}, nil
}

func (r *categoryRepository) Update(ctx context.Context, id int, input repository.CategoryInput) (repository.Result[entity.Category], error) {
	var out struct {
		Category entity.Category `json:"category"`
		Message  string          `json:"message"`
	}
	if err := r.client.put(ctx, fmt.Sprintf("/categories/%d", id), input, &out); err != nil {
		return repository.Result[entity.Category]{}, err
	}

	return repository.Result[entity.Category]{Resource: out.Category, Message: out.Message}, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int) (repository.Deleted, error) {
	var out struct {
		ID      int    `json:"id"`
		Message string `json:"message"`
	}
	if err := r.client.delete(ctx, fmt.Sprintf("/categories/%d", id), &out); err != nil {
		return repository.Deleted{}, err
	}

	return repository.Deleted{ID: out.ID, Message: out.Message}, nil
}

func (r *categoryRepository) AddImage(ctx context.Context, categoryID int, input repository.ImageInput) (repository.Result[entity.Category], error) {
	var out struct {
		Category entity.Category `json:"category"`
		Message  string          `json:"message"`
	}
	if err := r.client.post(ctx, fmt.Sprintf("/categories/%d/images", categoryID), input, &out); err != nil {
		return repository.Result[entity.Category]{}, err
	}

	return repository.Result[entity.Category]{Resource: out.Category, Message: out.Message}, nil
}

func (r *categoryRepository) DeleteImage(ctx context.Context, categoryID, imageID int) (repository.Result[entity.Category], error) {
	var out struct {
		Category entity.Category `json:"category"`
		Message  string          `json:"message"`
	}
	if err := r.client.delete(ctx, fmt.Sprintf("/categories/%d/images/%d", categoryID, imageID), &out); err != nil {
		return repository.Result[entity.Category]{}, err
	}

	return repository.Result[entity.Category]{Resource: out.Category, Message: out.Message}, nil
}
