package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/rest"
	"storefront/internal/infra/session"
	"storefront/internal/payment"
	"storefront/internal/store"

	"github.com/pkg/errors"
)

const refreshMargin = 2 * time.Minute

// app is the hand-wired object graph for one CLI invocation. The
// daemon builds the same graph through fx; the CLI is short-lived and
// wires it directly.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	session   *session.Manager
	events    *store.Dispatcher
	persistor *store.Persistor

	products      *store.ProductStore
	categories    *store.CategoryStore
	cart          *store.CartStore
	orders        *store.OrderStore
	payments      *store.PaymentStore
	reviews       *store.ReviewStore
	addresses     *store.AddressStore
	users         *store.UserStore
	subscriptions *store.SubscriptionStore

	handoff *payment.Handoff
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	client, err := rest.NewClient(cfg, logger)
	if err != nil {
		return nil, errors.Wrap(err, "build api client")
	}

	sessionCfg := cfg.Session
	if sessionCfg == nil {
		sessionCfg = &config.SessionConfig{
			BucketURL: "file://./data/session",
			Key:       "storefront/session.json",
		}
	}
	manager, err := session.New(ctx, sessionCfg, logger)
	if err != nil {
		return nil, errors.Wrap(err, "open session store")
	}

	events := store.NewDispatcher()

	a := &app{
		cfg:     cfg,
		logger:  logger,
		session: manager,
		events:  events,

		products:      store.NewProductStore(rest.NewProductRepository(client), events),
		categories:    store.NewCategoryStore(rest.NewCategoryRepository(client), events),
		cart:          store.NewCartStore(rest.NewCartRepository(client), events),
		orders:        store.NewOrderStore(rest.NewOrderRepository(client), events),
		payments:      store.NewPaymentStore(rest.NewPaymentRepository(client), events),
		reviews:       store.NewReviewStore(rest.NewReviewRepository(client), events),
		addresses:     store.NewAddressStore(rest.NewAddressRepository(client), events),
		users:         store.NewUserStore(rest.NewUserRepository(client), events),
		subscriptions: store.NewSubscriptionStore(rest.NewSubscriptionRepository(client), events),
	}

	a.persistor = store.NewPersistor(manager, a.users, a.addresses, client, logger)
	a.persistor.Attach(events)

	interceptor := store.NewAuthInterceptor(manager, a.users, func(path string) {
		logger.Info("session expired", slog.String("next", path))
	}, logger)
	interceptor.Attach(events)

	if cfg.Payment != nil {
		a.handoff = payment.NewHandoff(a.payments, cfg.Payment, os.Stdout, logger)
	}

	if err := a.persistor.Restore(ctx); err != nil {
		return nil, errors.Wrap(err, "restore session")
	}
	a.refreshIfNeeded(ctx, client)

	return a, nil
}

// refreshIfNeeded rotates the access token when the restored one is
// close to expiring, so the first real request does not land on a 401.
func (a *app) refreshIfNeeded(ctx context.Context, client *rest.Client) {
	cookie := client.Cookie(rest.AccessTokenCookieName)
	if cookie == nil {
		return
	}
	if !session.NeedsRefresh(cookie.Value, refreshMargin) {
		return
	}
	if err := a.users.RefreshToken(ctx); err != nil {
		a.logger.Warn("refresh access token", slog.Any("error", err))
	}
}

func (a *app) close() {
	if err := a.session.Close(); err != nil {
		a.logger.Warn("close session store", slog.Any("error", err))
	}
}
