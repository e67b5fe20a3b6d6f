package rest

import (
	"context"
	"fmt"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type paymentRepository struct {
	client *Client
}

// NewPaymentRepository builds the REST-backed payment repository.
func NewPaymentRepository(client *Client) repository.PaymentRepository {
	return &paymentRepository{client: client}
}

func (r *paymentRepository) listPayments(ctx context.Context, path string, filters repository.PaymentFilters, opts repository.ListOptions) (repository.Page[entity.Payment], error) {
	query := listQuery(opts)
	if filters.UserID != nil {
		query.Set("user_id", strconv.Itoa(*filters.UserID))
	}
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.PaymentMethod != "" {
		query.Set("payment_method", filters.PaymentMethod)
	}

	var out struct {
		Payments   []entity.Payment `json:"payments"`
		Count      int              `json:"count"`
		TotalPages int              `json:"total_pages"`
		Page       int              `json:"page"`
	}
	if err := r.client.get(ctx, path, query, &out); err != nil {
		return repository.Page[entity.Payment]{}, err
	}

	return repository.Page[entity.Payment]{
		Items:      out.Payments,
		Count:      out.Count,
		TotalPages: out.TotalPages,
		Page:       out.Page,
	}, nil
}

func (r *paymentRepository) ListAll(ctx context.Context, filters repository.PaymentFilters, opts repository.ListOptions) (repository.Page[entity.Payment], error) {
	return r.listPayments(ctx, "/payments/admin", filters, opts)
}

func (r *paymentRepository) ListMine(ctx context.Context, filters repository.PaymentFilters, opts repository.ListOptions) (repository.Page[entity.Payment], error) {
	return r.listPayments(ctx, "/payments/my-payments", filters, opts)
}

func (r *paymentRepository) Get(ctx context.Context, id int) (*entity.Payment, error) {
	var out struct {
		Payment entity.Payment `json:"payment"`
	}
	if err := r.client.get(ctx, fmt.Sprintf("/payments/%d", id), nil, &out); err != nil {
		return nil, err
	}

	return &out.Payment, nil
}

func (r *paymentRepository) CreateRequest(ctx context.Context, input repository.PaymentRequestInput) (repository.PaymentRequest, error) {
	var out struct {
		Payment      entity.Payment `json:"payment"`
		Actions      map[string]any `json:"actions"`
		XenditStatus string         `json:"xendit_status"`
		Message      string         `json:"message"`
	}
	if err := r.client.post(ctx, "/payments/create-payment-request", input, &out); err != nil {
		return repository.PaymentRequest{}, err
	}

	return repository.PaymentRequest{
		Payment:      out.Payment,
		Actions:      out.Actions,
		XenditStatus: out.XenditStatus,
		Message:      out.Message,
	}, nil
}

func (r *paymentRepository) CheckStatus(ctx context.Context, id int) (repository.PaymentStatus, error) {
	var out struct {
		Payment      entity.Payment `json:"payment"`
		XenditStatus string         `json:"xendit_status"`
		Message      string         `json:"message"`
	}
	if err := r.client.get(ctx, fmt.Sprintf("/payments/status/%d", id), nil, &out); err != nil {
		return repository.PaymentStatus{}, err
	}

	return repository.PaymentStatus{
		Payment:      out.Payment,
		XenditStatus: out.XenditStatus,
		Message:      out.Message,
	}, nil
}
