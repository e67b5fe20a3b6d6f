package store

import (
	"context"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// SubscriptionState is a point-in-time snapshot of the newsletter
// state.
type SubscriptionState struct {
	Subscription  *entity.Subscription
	Subscriptions []entity.Subscription
	Status        Status
}

// SubscriptionStore covers the newsletter: the guest-facing subscribe
// and unsubscribe flows plus the admin listing.
type SubscriptionStore struct {
	lifecycle
	repo repository.SubscriptionRepository

	subscription  *entity.Subscription
	subscriptions []entity.Subscription
}

func NewSubscriptionStore(repo repository.SubscriptionRepository, events *Dispatcher) *SubscriptionStore {
	s := &SubscriptionStore{repo: repo}
	s.name = StoreSubscription
	s.events = events

	return s
}

func (s *SubscriptionStore) State() SubscriptionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SubscriptionState{
		Subscription:  s.subscription,
		Subscriptions: slices.Clone(s.subscriptions),
		Status:        s.status,
	}
}

// FetchSubscriptions loads every subscription, the admin listing.
func (s *SubscriptionStore) FetchSubscriptions(ctx context.Context) error {
	gen := s.begin()

	subscriptions, err := s.repo.List(ctx)
	s.finish("fetch subscriptions", gen, err, "Subscriptions loaded", func() {
		s.subscriptions = subscriptions
	})

	return err
}

// FetchSubscription looks up the subscription for an email.
func (s *SubscriptionStore) FetchSubscription(ctx context.Context, email string) error {
	gen := s.begin()

	subscription, err := s.repo.Get(ctx, email)
	s.finish("fetch subscription", gen, err, "Subscription loaded", func() {
		s.subscription = subscription
	})

	return err
}

// Subscribe signs an email up for the newsletter.
func (s *SubscriptionStore) Subscribe(ctx context.Context, email string) error {
	gen := s.begin()

	result, err := s.repo.Subscribe(ctx, email)
	s.finish("subscribe", gen, err, orDefault(result.Message, "Subscribed"), func() {
		s.subscription = &result.Resource
	})

	return err
}

// Unsubscribe removes an email from the newsletter.
func (s *SubscriptionStore) Unsubscribe(ctx context.Context, email string) error {
	gen := s.begin()

	result, err := s.repo.Unsubscribe(ctx, email)
	s.finish("unsubscribe", gen, err, orDefault(result.Message, "Unsubscribed"), func() {
		s.subscription = nil
		s.subscriptions = slices.DeleteFunc(s.subscriptions, func(sub entity.Subscription) bool {
			return sub.Email == email
		})
	})

	return err
}
