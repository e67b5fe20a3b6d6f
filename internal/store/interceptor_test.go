package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/apierror"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	purged bool
}

func (f *fakePurger) Purge(ctx context.Context) error {
	f.purged = true
	return nil
}

type fakeUserRepo struct {
	repository.UserRepository

	user *entity.User
	err  error
}

func (f *fakeUserRepo) Login(ctx context.Context, _ repository.LoginInput) (repository.Result[entity.User], error) {
	if f.err != nil {
		return repository.Result[entity.User]{}, f.err
	}
	return repository.Result[entity.User]{Resource: *f.user}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authedUserStore(t *testing.T, events *Dispatcher) *UserStore {
	t.Helper()

	users := NewUserStore(&fakeUserRepo{user: &entity.User{ID: 1, Email: "a@b.c"}}, events)
	require.NoError(t, users.Login(context.Background(), repository.LoginInput{Email: "a@b.c", Password: "pw"}))
	require.True(t, users.IsAuthenticated())

	return users
}

func TestAuthInterceptor_UnauthorizedAnywherePurgesAndRedirects(t *testing.T) {
	events := NewDispatcher()
	users := authedUserStore(t, events)

	purger := &fakePurger{}
	var redirected string
	interceptor := NewAuthInterceptor(purger, users, func(path string) { redirected = path }, quietLogger())
	interceptor.Attach(events)

	// A 401 from an unrelated store ends the session.
	productRepo := &fakeProductRepo{err: apierror.FromStatus(401, "token expired")}
	products := NewProductStore(productRepo, events)
	_ = products.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{})

	assert.True(t, purger.purged)
	assert.False(t, users.IsAuthenticated())
	assert.Equal(t, LoginPath, redirected)
}

func TestAuthInterceptor_MessageSubstringCountsAsAuthFailure(t *testing.T) {
	events := NewDispatcher()
	users := authedUserStore(t, events)

	purger := &fakePurger{}
	interceptor := NewAuthInterceptor(purger, users, nil, quietLogger())
	interceptor.Attach(events)

	// No structured status; only the message betrays the 401.
	productRepo := &fakeProductRepo{err: apierror.Network(assertableErr("got 401 from upstream"))}
	products := NewProductStore(productRepo, events)
	_ = products.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{})

	assert.True(t, purger.purged)
}

func TestAuthInterceptor_LoginFailureIsNotASessionExpiry(t *testing.T) {
	events := NewDispatcher()
	users := NewUserStore(&fakeUserRepo{err: apierror.FromStatus(401, "invalid credentials")}, events)

	purger := &fakePurger{}
	var redirected string
	interceptor := NewAuthInterceptor(purger, users, func(path string) { redirected = path }, quietLogger())
	interceptor.Attach(events)

	err := users.Login(context.Background(), repository.LoginInput{Email: "a@b.c", Password: "wrong"})
	require.Error(t, err)

	assert.False(t, purger.purged)
	assert.Empty(t, redirected)
	assert.Equal(t, "invalid credentials", users.Status().Error)
}

func TestAuthInterceptor_OtherFailuresIgnored(t *testing.T) {
	events := NewDispatcher()
	users := authedUserStore(t, events)

	purger := &fakePurger{}
	interceptor := NewAuthInterceptor(purger, users, nil, quietLogger())
	interceptor.Attach(events)

	productRepo := &fakeProductRepo{err: apierror.FromStatus(500, "server error")}
	products := NewProductStore(productRepo, events)
	_ = products.FetchProducts(context.Background(), repository.ProductFilters{}, repository.ListOptions{})

	assert.False(t, purger.purged)
	assert.True(t, users.IsAuthenticated())
}

type assertableErr string

func (e assertableErr) Error() string { return string(e) }
