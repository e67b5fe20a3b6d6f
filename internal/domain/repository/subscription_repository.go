package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SubscriptionRepository covers newsletter subscriptions. Subscribe and
// unsubscribe are keyed by email so guests can use them too.
type SubscriptionRepository interface {
	List(ctx context.Context) ([]entity.Subscription, error)
	Get(ctx context.Context, email string) (*entity.Subscription, error)
	Subscribe(ctx context.Context, email string) (Result[entity.Subscription], error)
	Unsubscribe(ctx context.Context, email string) (Result[entity.Subscription], error)
}
