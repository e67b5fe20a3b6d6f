package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/callback"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/rest"
	"storefront/internal/infra/session"
	"storefront/internal/payment"
	"storefront/internal/store"

	"go.uber.org/fx"
)

type startParams struct {
	fx.In
	fx.Lifecycle

	Logger      *slog.Logger
	Persistor   *store.Persistor
	Interceptor *store.AuthInterceptor
	Dispatcher  *store.Dispatcher
	Deliveries  []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectStore(),
		injectDelivery(),
		fx.Invoke(
			start,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		rest.NewClient,
		newSessionManager,
		func(client *rest.Client) store.CookieCarrier { return client },
	)
}

func newSessionManager(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*session.Manager, error) {
	sessionCfg := cfg.Session
	if sessionCfg == nil {
		// No bucket configured; the session lives only as long as
		// the process.
		sessionCfg = &config.SessionConfig{
			BucketURL: "mem://",
			Key:       "storefront/session.json",
		}
	}

	return session.New(ctx, sessionCfg, logger)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rest.NewProductRepository,
			rest.NewCategoryRepository,
			rest.NewCartRepository,
			rest.NewOrderRepository,
			rest.NewPaymentRepository,
			rest.NewReviewRepository,
			rest.NewAddressRepository,
			rest.NewUserRepository,
			rest.NewSubscriptionRepository,
		),
	)
}

func injectStore() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewDispatcher,
			store.NewProductStore,
			store.NewCategoryStore,
			store.NewCartStore,
			store.NewOrderStore,
			store.NewPaymentStore,
			store.NewReviewStore,
			store.NewAddressStore,
			store.NewUserStore,
			store.NewSubscriptionStore,
			store.NewPersistor,
			newAuthInterceptor,
			newHandoff,
		),
	)
}

func newAuthInterceptor(manager *session.Manager, users *store.UserStore, logger *slog.Logger) *store.AuthInterceptor {
	redirect := func(path string) {
		logger.Info("navigating", slog.String("path", path))
	}

	return store.NewAuthInterceptor(manager, users, redirect, logger)
}

func newHandoff(payments *store.PaymentStore, cfg *config.Config, logger *slog.Logger) (*payment.Handoff, error) {
	if cfg.Payment == nil {
		return nil, nil // payments are optional
	}

	return payment.NewHandoff(payments, cfg.Payment, os.Stdout, logger), nil
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(callback.NewServer),
		fx.Provide(
			fx.Annotate(
				func(server *callback.Server) delivery.Delivery { return server },
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func start(ctx context.Context, params startParams) error {
	params.Interceptor.Attach(params.Dispatcher)
	params.Persistor.Attach(params.Dispatcher)

	if err := params.Persistor.Restore(ctx); err != nil {
		return err
	}

	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}

	return nil
}
