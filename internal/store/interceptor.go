package store

import (
	"context"
	"log/slog"

	"storefront/internal/domain/apierror"
)

// LoginPath is where the interceptor sends the navigator after an auth
// failure.
const LoginPath = "/login"

type sessionPurger interface {
	Purge(ctx context.Context) error
}

// AuthInterceptor watches every store event for authentication
// failures. When any operation comes back 401 the session is over:
// the persisted snapshot is purged, the local identity is dropped and
// the navigator is pointed at the sign-in page. Login and register
// failures are exempt; a wrong password is a form error, not a session
// expiry.
type AuthInterceptor struct {
	session  sessionPurger
	users    *UserStore
	redirect func(path string)
	logger   *slog.Logger
}

func NewAuthInterceptor(session sessionPurger, users *UserStore, redirect func(path string), logger *slog.Logger) *AuthInterceptor {
	return &AuthInterceptor{
		session:  session,
		users:    users,
		redirect: redirect,
		logger:   logger,
	}
}

// Attach subscribes the interceptor to the dispatcher.
func (i *AuthInterceptor) Attach(events *Dispatcher) {
	events.Subscribe(i.Handle)
}

// Handle inspects one store event. Stale completions still arrive here,
// so an expired session is caught even when its state update was
// discarded.
func (i *AuthInterceptor) Handle(event Event) {
	if event.Err == nil || !apierror.IsAuthFailure(event.Err) {
		return
	}
	if event.Store == StoreUser && (event.Operation == OpLogin || event.Operation == OpRegister) {
		return
	}

	i.logger.Info("session expired, signing out",
		slog.String("store", event.Store),
		slog.String("operation", event.Operation),
	)

	if err := i.session.Purge(context.Background()); err != nil {
		i.logger.Warn("purge session snapshot", slog.Any("error", err))
	}
	i.users.ClearIdentity()
	if i.redirect != nil {
		i.redirect(LoginPath)
	}
}
