package rest

import (
	"context"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type subscriptionRepository struct {
	client *Client
}

// NewSubscriptionRepository builds the REST-backed newsletter
// subscription repository.
func NewSubscriptionRepository(client *Client) repository.SubscriptionRepository {
	return &subscriptionRepository{client: client}
}

func (r *subscriptionRepository) List(ctx context.Context) ([]entity.Subscription, error) {
	var out struct {
		Subscriptions []entity.Subscription `json:"subscriptions"`
	}
	if err := r.client.get(ctx, "/subscriptions/", nil, &out); err != nil {
		return nil, err
	}

	return out.Subscriptions, nil
}

func (r *subscriptionRepository) Get(ctx context.Context, email string) (*entity.Subscription, error) {
	var out struct {
		Subscription entity.Subscription `json:"subscription"`
	}
	if err := r.client.get(ctx, "/subscriptions/"+url.PathEscape(email), nil, &out); err != nil {
		return nil, err
	}

	return &out.Subscription, nil
}

func (r *subscriptionRepository) Subscribe(ctx context.Context, email string) (repository.Result[entity.Subscription], error) {
	body := struct {
		Email string `json:"email"`
	}{Email: email}

	var out struct {
		Subscription entity.Subscription `json:"subscription"`
		Message      string              `json:"message"`
	}
	if err := r.client.post(ctx, "/subscriptions/subscribe", body, &out); err != nil {
		return repository.Result[entity.Subscription]{}, err
	}

	return repository.Result[entity.Subscription]{Resource: out.Subscription, Message: out.Message}, nil
}

func (r *subscriptionRepository) Unsubscribe(ctx context.Context, email string) (repository.Result[entity.Subscription], error) {
	body := struct {
		Email string `json:"email"`
	}{Email: email}

	var out struct {
		Subscription entity.Subscription `json:"subscription"`
		Message      string              `json:"message"`
	}
	if err := r.client.post(ctx, "/subscriptions/unsubscribe", body, &out); err != nil {
		return repository.Result[entity.Subscription]{}, err
	}

	return repository.Result[entity.Subscription]{Resource: out.Subscription, Message: out.Message}, nil
}
