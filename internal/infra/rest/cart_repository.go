package rest

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type cartRepository struct {
	client *Client
}

// NewCartRepository builds the REST-backed cart repository. The cart is
// entirely server-owned: every call hands back the recomputed cart.
func NewCartRepository(client *Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func (r *cartRepository) Get(ctx context.Context) (*entity.Cart, error) {
	var out entity.Cart
	if err := r.client.get(ctx, "/cart/", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *cartRepository) AddItem(ctx context.Context, input repository.CartItemInput) (*entity.Cart, error) {
	var out entity.Cart
	if err := r.client.post(ctx, "/cart/", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *cartRepository) UpdateItem(ctx context.Context, itemID, quantity int) (*entity.Cart, error) {
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}

	var out entity.Cart
	if err := r.client.put(ctx, fmt.Sprintf("/cart/%d", itemID), body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, itemID int) (*entity.Cart, error) {
	var out entity.Cart
	if err := r.client.delete(ctx, fmt.Sprintf("/cart/%d", itemID), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *cartRepository) Clear(ctx context.Context) (*entity.Cart, error) {
	var out entity.Cart
	if err := r.client.delete(ctx, "/cart/clear", &out); err != nil {
		return nil, err
	}

	return &out, nil
}
