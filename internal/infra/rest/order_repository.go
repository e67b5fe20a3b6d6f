package rest

import (
	"context"
	"fmt"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type orderRepository struct {
	client *Client
}

// NewOrderRepository builds the REST-backed order repository.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) listOrders(ctx context.Context, path string, filters repository.OrderFilters, opts repository.ListOptions) (repository.Page[entity.Order], error) {
	query := listQuery(opts)
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}

	var out struct {
		Orders     []entity.Order `json:"orders"`
		Count      int            `json:"count"`
		TotalPages int            `json:"total_pages"`
		Page       int            `json:"page"`
	}
	if err := r.client.get(ctx, path, query, &out); err != nil {
		return repository.Page[entity.Order]{}, err
	}

	return repository.Page[entity.Order]{
		Items:      out.Orders,
		Count:      out.Count,
		TotalPages: out.TotalPages,
		Page:       out.Page,
	}, nil
}

func (r *orderRepository) ListMine(ctx context.Context, filters repository.OrderFilters, opts repository.ListOptions) (repository.Page[entity.Order], error) {
	return r.listOrders(ctx, "/orders/", filters, opts)
}

func (r *orderRepository) ListAll(ctx context.Context, filters repository.OrderFilters, opts repository.ListOptions) (repository.Page[entity.Order], error) {
	return r.listOrders(ctx, "/orders/admin", filters, opts)
}

func (r *orderRepository) Get(ctx context.Context, id int) (*entity.Order, error) {
	var out struct {
		Order entity.Order `json:"order"`
	}
	if err := r.client.get(ctx, fmt.Sprintf("/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out.Order, nil
}

func (r *orderRepository) GetGuest(ctx context.Context, id int, email string) (*entity.Order, error) {
	query := url.Values{}
	query.Set("email", email)

	var out struct {
		Order entity.Order `json:"order"`
	}
	if err := r.client.get(ctx, fmt.Sprintf("/orders/guest/%d", id), query, &out); err != nil {
		return nil, err
	}

	return &out.Order, nil
}

func (r *orderRepository) Create(ctx context.Context, input repository.CreateOrderInput) (repository.Result[entity.Order], error) {
	var out struct {
		Order   entity.Order `json:"order"`
		Message string       `json:"message"`
	}
	if err := r.client.post(ctx, "/orders/", input, &out); err != nil {
		return repository.Result[entity.Order]{}, err
	}

	return repository.Result[entity.Order]{Resource: out.Order, Message: out.Message}, nil
}

func (r *orderRepository) Cancel(ctx context.Context, id int) (repository.Result[entity.Order], error) {
	var out struct {
		Order   entity.Order `json:"order"`
		Message string       `json:"message"`
	}
	if err := r.client.post(ctx, fmt.Sprintf("/orders/%d/cancel", id), nil, &out); err != nil {
		return repository.Result[entity.Order]{}, err
	}

	return repository.Result[entity.Order]{Resource: out.Order, Message: out.Message}, nil
}

func (r *orderRepository) Pay(ctx context.Context, id int, input repository.PayOrderInput) (repository.Result[entity.Order], error) {
	var out struct {
		Order   entity.Order `json:"order"`
		Message string       `json:"message"`
	}
	if err := r.client.put(ctx, fmt.Sprintf("/orders/%d/pay", id), input, &out); err != nil {
		return repository.Result[entity.Order]{}, err
	}

	return repository.Result[entity.Order]{Resource: out.Order, Message: out.Message}, nil
}

func (r *orderRepository) AdminUpdate(ctx context.Context, id int, input repository.AdminOrderInput) (repository.Result[entity.Order], error) {
	var out struct {
		Order   entity.Order `json:"order"`
		Message string       `json:"message"`
	}
	if err := r.client.put(ctx, fmt.Sprintf("/orders/admin/%d", id), input, &out); err != nil {
		return repository.Result[entity.Order]{}, err
	}

	return repository.Result[entity.Order]{Resource: out.Order, Message: out.Message}, nil
}
