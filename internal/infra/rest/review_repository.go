package rest

import (
	"context"
	"fmt"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type reviewRepository struct {
	client *Client
}

// NewReviewRepository builds the REST-backed review repository.
func NewReviewRepository(client *Client) repository.ReviewRepository {
	return &reviewRepository{client: client}
}

func (r *reviewRepository) List(ctx context.Context, filters repository.ReviewFilters, opts repository.ListOptions) (repository.Page[entity.Review], error) {
	query := listQuery(opts)
	if filters.ProductID != nil {
		query.Set("product_id", strconv.Itoa(*filters.ProductID))
	}
	if filters.UserID != nil {
		query.Set("user_id", strconv.Itoa(*filters.UserID))
	}

	var out struct {
		Reviews    []entity.Review `json:"reviews"`
		Count      int             `json:"count"`
		TotalPages int             `json:"total_pages"`
		Page       int             `json:"page"`
	}
	if err := r.client.get(ctx, "/reviews/", query, &out); err != nil {
		return repository.Page[entity.Review]{}, err
	}

	return repository.Page[entity.Review]{
		Items:      out.Reviews,
		Count:      out.Count,
		TotalPages: out.TotalPages,
		Page:       out.Page,
	}, nil
}

func (r *reviewRepository) Get(ctx context.Context, id int) (*entity.Review, error) {
	var out struct {
		Review entity.Review `json:"review"`
	}
	if err := r.client.get(ctx, fmt.Sprintf("/reviews/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out.Review, nil
}

func (r *reviewRepository) Create(ctx context.Context, productID int, input repository.ReviewInput) (repository.Result[entity.Review], error) {
	var out struct {
		Review  entity.Review `json:"review"`
		Message string        `json:"message"`
	}
	if err := r.client.post(ctx, fmt.Sprintf("/reviews/product/%d", productID), input, &out); err != nil {
		return repository.Result[entity.Review]{}, err
	}

	return repository.Result[entity.Review]{Resource: out.Review, Message: out.Message}, nil
}

func (r *reviewRepository) Update(ctx context.Context, id int, input repository.ReviewInput) (repository.Result[entity.Review], error) {
	var out struct {
		Review  entity.Review `json:"review"`
		Message string        `json:"message"`
	}
	if err := r.client.put(ctx, fmt.Sprintf("/reviews/%d", id), input, &out); err != nil {
		return repository.Result[entity.Review]{}, err
	}

	return repository.Result[entity.Review]{Resource: out.Review, Message: out.Message}, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int) (repository.Deleted, error) {
	var out struct {
		ID      int    `json:"id"`
		Message string `json:"message"`
	}
	if err := r.client.delete(ctx, fmt.Sprintf("/reviews/%d", id), &out); err != nil {
		return repository.Deleted{}, err
	}

	return repository.Deleted{ID: out.ID, Message: out.Message}, nil
}
