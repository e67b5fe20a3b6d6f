package store

import (
	"context"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedUserRepo struct {
	repository.UserRepository

	loginStarted chan struct{}
	loginRelease chan struct{}
	logoutErr    error
}

func (f *scriptedUserRepo) Login(ctx context.Context, input repository.LoginInput) (repository.Result[entity.User], error) {
	if f.loginStarted != nil {
		close(f.loginStarted)
		<-f.loginRelease
	}

	return repository.Result[entity.User]{
		Resource: entity.User{ID: 1, Email: input.Email},
		Message:  "Login successful",
	}, nil
}

func (f *scriptedUserRepo) Logout(ctx context.Context) (string, error) {
	return "", f.logoutErr
}

func TestUserStore_LoginAdoptsIdentity(t *testing.T) {
	users := NewUserStore(&scriptedUserRepo{}, NewDispatcher())

	require.NoError(t, users.Login(context.Background(), repository.LoginInput{Email: "ada@shop.test"}))

	state := users.State()
	require.NotNil(t, state.User)
	assert.Equal(t, "ada@shop.test", state.User.Email)
	assert.Equal(t, "Login successful", state.Status.Success)
	assert.True(t, users.IsAuthenticated())
}

func TestUserStore_LogoutDropsIdentityEvenOnServerError(t *testing.T) {
	repo := &scriptedUserRepo{logoutErr: errors.New("connection reset")}
	users := NewUserStore(repo, NewDispatcher())
	require.NoError(t, users.Login(context.Background(), repository.LoginInput{Email: "a@b.c"}))

	err := users.Logout(context.Background())
	require.Error(t, err)
	assert.False(t, users.IsAuthenticated())
}

func TestUserStore_ClearIdentityStalesInFlightLogin(t *testing.T) {
	repo := &scriptedUserRepo{
		loginStarted: make(chan struct{}),
		loginRelease: make(chan struct{}),
	}
	users := NewUserStore(repo, NewDispatcher())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = users.Login(context.Background(), repository.LoginInput{Email: "a@b.c"})
	}()
	<-repo.loginStarted

	// The session ends while the login response is still in flight;
	// the late success must not resurrect it.
	users.ClearIdentity()
	close(repo.loginRelease)
	wg.Wait()

	assert.False(t, users.IsAuthenticated())
	assert.Equal(t, Status{}, users.Status())
}
