package store

import (
	"context"
	"net/http"
	"testing"

	"gocloud.dev/blob/memblob"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAddressRepo struct {
	repository.AddressRepository

	addresses []entity.Address
}

func (f *fakeAddressRepo) List(ctx context.Context) ([]entity.Address, error) {
	return f.addresses, nil
}

func memSession(t *testing.T) *session.Manager {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return session.NewWithBucket(bucket, "session.json", quietLogger())
}

func TestPersistor_SavesIdentityAndAddresses(t *testing.T) {
	ctx := context.Background()
	manager := memSession(t)
	events := NewDispatcher()

	users := NewUserStore(&fakeUserRepo{user: &entity.User{ID: 8, Email: "ada@shop.test"}}, events)
	addresses := NewAddressStore(&fakeAddressRepo{addresses: []entity.Address{{ID: 2, City: "Springfield"}}}, events)

	persistor := NewPersistor(manager, users, addresses, nil, quietLogger())
	persistor.Attach(events)
	require.NoError(t, persistor.Restore(ctx))
	require.NotEmpty(t, persistor.GuestSessionID())

	require.NoError(t, users.Login(ctx, repository.LoginInput{Email: "ada@shop.test", Password: "pw"}))
	require.NoError(t, addresses.FetchAddresses(ctx))

	saved, err := manager.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, saved.User)
	assert.Equal(t, 8, saved.User.ID)
	require.Len(t, saved.Addresses, 1)
	assert.Equal(t, "Springfield", saved.Addresses[0].City)
	assert.Equal(t, persistor.GuestSessionID(), saved.GuestSessionID)
}

func TestPersistor_IgnoresOtherStoresAndFailures(t *testing.T) {
	ctx := context.Background()
	manager := memSession(t)
	events := NewDispatcher()

	users := NewUserStore(&fakeUserRepo{user: &entity.User{ID: 8}}, events)
	addresses := NewAddressStore(&fakeAddressRepo{}, events)

	persistor := NewPersistor(manager, users, addresses, nil, quietLogger())
	persistor.Attach(events)
	require.NoError(t, persistor.Restore(ctx))

	// A catalog fetch is not session state.
	products := NewProductStore(&fakeProductRepo{page: productPage(1)}, events)
	require.NoError(t, products.FetchProducts(ctx, repository.ProductFilters{}, repository.ListOptions{}))

	saved, err := manager.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, saved.User)
	assert.True(t, saved.SavedAt.IsZero())
}

type fakeCookieCarrier struct {
	cookies []*http.Cookie
}

func (f *fakeCookieCarrier) Cookies() []*http.Cookie { return f.cookies }

// SetCookies merges by name, like a real jar.
func (f *fakeCookieCarrier) SetCookies(cookies []*http.Cookie) {
	for _, cookie := range cookies {
		replaced := false
		for i, have := range f.cookies {
			if have.Name == cookie.Name {
				f.cookies[i] = cookie
				replaced = true
			}
		}
		if !replaced {
			f.cookies = append(f.cookies, cookie)
		}
	}
}

func (f *fakeCookieCarrier) cookie(name string) *http.Cookie {
	for _, c := range f.cookies {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func TestPersistor_CookiesSurviveRestart(t *testing.T) {
	ctx := context.Background()
	manager := memSession(t)
	events := NewDispatcher()

	users := NewUserStore(&fakeUserRepo{user: &entity.User{ID: 8}}, events)
	addresses := NewAddressStore(&fakeAddressRepo{}, events)
	carrier := &fakeCookieCarrier{cookies: []*http.Cookie{{Name: "access_token_cookie", Value: "tok"}}}

	persistor := NewPersistor(manager, users, addresses, carrier, quietLogger())
	persistor.Attach(events)
	require.NoError(t, persistor.Restore(ctx))
	require.NoError(t, users.Login(ctx, repository.LoginInput{Email: "a@b.c", Password: "pw"}))

	// A fresh process with an empty jar picks the cookies back up.
	restarted := &fakeCookieCarrier{}
	again := NewPersistor(manager, users, addresses, restarted, quietLogger())
	require.NoError(t, again.Restore(ctx))

	token := restarted.cookie("access_token_cookie")
	require.NotNil(t, token)
	assert.Equal(t, "tok", token.Value)
}

func TestPersistor_SeedsGuestCartCookie(t *testing.T) {
	ctx := context.Background()
	manager := memSession(t)
	events := NewDispatcher()

	users := NewUserStore(&fakeUserRepo{user: &entity.User{ID: 8}}, events)
	addresses := NewAddressStore(&fakeAddressRepo{}, events)
	carrier := &fakeCookieCarrier{}

	persistor := NewPersistor(manager, users, addresses, carrier, quietLogger())
	persistor.Attach(events)
	require.NoError(t, persistor.Restore(ctx))

	// An empty jar gets the minted guest identity.
	seeded := carrier.cookie(GuestCartCookieName)
	require.NotNil(t, seeded)
	assert.Equal(t, persistor.GuestSessionID(), seeded.Value)

	// After a save, a fresh process carries the same guest cart.
	require.NoError(t, users.Login(ctx, repository.LoginInput{Email: "a@b.c", Password: "pw"}))
	restarted := &fakeCookieCarrier{}
	again := NewPersistor(manager, users, addresses, restarted, quietLogger())
	require.NoError(t, again.Restore(ctx))

	reseeded := restarted.cookie(GuestCartCookieName)
	require.NotNil(t, reseeded)
	assert.Equal(t, seeded.Value, reseeded.Value)
}

func TestPersistor_AdoptsServerGuestCookie(t *testing.T) {
	ctx := context.Background()
	manager := memSession(t)
	events := NewDispatcher()

	users := NewUserStore(&fakeUserRepo{}, events)
	addresses := NewAddressStore(&fakeAddressRepo{}, events)
	carrier := &fakeCookieCarrier{cookies: []*http.Cookie{{Name: GuestCartCookieName, Value: "srv-minted"}}}

	persistor := NewPersistor(manager, users, addresses, carrier, quietLogger())
	require.NoError(t, persistor.Restore(ctx))

	// The server-set identity wins over the locally minted one.
	assert.Equal(t, "srv-minted", persistor.GuestSessionID())
	assert.Equal(t, "srv-minted", carrier.cookie(GuestCartCookieName).Value)
	assert.Len(t, carrier.cookies, 1)
}

func TestPersistor_RestoreSeedsStores(t *testing.T) {
	ctx := context.Background()
	manager := memSession(t)
	require.NoError(t, manager.Save(ctx, &session.State{
		User:           &entity.User{ID: 3, Email: "back@shop.test"},
		Addresses:      []entity.Address{{ID: 1}},
		GuestSessionID: "guest-42",
	}))

	events := NewDispatcher()
	users := NewUserStore(&fakeUserRepo{}, events)
	addresses := NewAddressStore(&fakeAddressRepo{}, events)

	persistor := NewPersistor(manager, users, addresses, nil, quietLogger())
	require.NoError(t, persistor.Restore(ctx))

	assert.True(t, users.IsAuthenticated())
	assert.Len(t, addresses.State().Addresses, 1)
	assert.Equal(t, "guest-42", persistor.GuestSessionID())
}
