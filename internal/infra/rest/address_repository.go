package rest

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type addressRepository struct {
	client *Client
}

// NewAddressRepository builds the REST-backed address repository.
func NewAddressRepository(client *Client) repository.AddressRepository {
	return &addressRepository{client: client}
}

func (r *addressRepository) List(ctx context.Context) ([]entity.Address, error) {
	var out struct {
		Addresses []entity.Address `json:"addresses"`
	}
	if err := r.client.get(ctx, "/addresses/", nil, &out); err != nil {
		return nil, err
	}

	return out.Addresses, nil
}

func (r *addressRepository) Create(ctx context.Context, input repository.AddressInput) (repository.Result[entity.Address], error) {
	var out struct {
		Address entity.Address `json:"address"`
		Message string         `json:"message"`
	}
	if err := r.client.post(ctx, "/addresses/", input, &out); err != nil {
		return repository.Result[entity.Address]{}, err
	}

	return repository.Result[entity.Address]{Resource: out.Address, Message: out.Message}, nil
}

func (r *addressRepository) Update(ctx context.Context, id int, input repository.AddressInput) (repository.Result[entity.Address], error) {
	var out struct {
		Address entity.Address `json:"address"`
		Message string         `json:"message"`
	}
	if err := r.client.put(ctx, fmt.Sprintf("/addresses/%d", id), input, &out); err != nil {
		return repository.Result[entity.Address]{}, err
	}

	return repository.Result[entity.Address]{Resource: out.Address, Message: out.Message}, nil
}

func (r *addressRepository) Delete(ctx context.Context, id int) (repository.Deleted, error) {
	var out struct {
		ID      int    `json:"id"`
		Message string `json:"message"`
	}
	if err := r.client.delete(ctx, fmt.Sprintf("/addresses/%d", id), &out); err != nil {
		return repository.Deleted{}, err
	}

	return repository.Deleted{ID: out.ID, Message: out.Message}, nil
}
