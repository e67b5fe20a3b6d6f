package store

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartRepo struct {
	cart *entity.Cart
	err  error
}

func (f *fakeCartRepo) Get(ctx context.Context) (*entity.Cart, error) { return f.cart, f.err }

func (f *fakeCartRepo) AddItem(ctx context.Context, _ repository.CartItemInput) (*entity.Cart, error) {
	return f.cart, f.err
}

func (f *fakeCartRepo) UpdateItem(ctx context.Context, _, _ int) (*entity.Cart, error) {
	return f.cart, f.err
}

func (f *fakeCartRepo) RemoveItem(ctx context.Context, _ int) (*entity.Cart, error) {
	return f.cart, f.err
}

func (f *fakeCartRepo) Clear(ctx context.Context) (*entity.Cart, error) { return f.cart, f.err }

func TestCartStore_MutationsTakeServerCartVerbatim(t *testing.T) {
	// The server's cart disagrees with any local arithmetic on
	// purpose: one item, quantity 3, subtotal that matches nothing
	// the client could derive.
	serverCart := &entity.Cart{
		ID:       11,
		Subtotal: 123.45,
		Items: []entity.CartItem{
			{ID: 5, ProductID: 7, Quantity: 3, Price: 10, Subtotal: 99.99},
		},
	}
	repo := &fakeCartRepo{cart: serverCart}
	store := NewCartStore(repo, NewDispatcher())

	require.NoError(t, store.AddItem(context.Background(), repository.CartItemInput{ProductID: 7, Quantity: 1}))

	state := store.State()
	require.NotNil(t, state.Cart)
	assert.Equal(t, 123.45, state.Cart.Subtotal)
	require.Len(t, state.Cart.Items, 1)
	assert.Equal(t, 3, state.Cart.Items[0].Quantity)
	assert.Equal(t, 99.99, state.Cart.Items[0].Subtotal)

	// An update swaps in the next server copy wholesale.
	repo.cart = &entity.Cart{ID: 11, Subtotal: 0, Items: nil}
	require.NoError(t, store.UpdateItem(context.Background(), 5, 2))

	state = store.State()
	require.NotNil(t, state.Cart)
	assert.Empty(t, state.Cart.Items)
	assert.Zero(t, state.Cart.Subtotal)
}

func TestCartStore_ItemCount(t *testing.T) {
	repo := &fakeCartRepo{cart: &entity.Cart{
		Items: []entity.CartItem{
			{ID: 1, Quantity: 2},
			{ID: 2, Quantity: 3},
		},
	}}
	store := NewCartStore(repo, NewDispatcher())

	assert.Zero(t, store.ItemCount())
	require.NoError(t, store.FetchCart(context.Background()))
	assert.Equal(t, 5, store.ItemCount())
}

func TestCartStore_Reset(t *testing.T) {
	repo := &fakeCartRepo{cart: &entity.Cart{ID: 1, Items: []entity.CartItem{{ID: 1, Quantity: 1}}}}
	store := NewCartStore(repo, NewDispatcher())
	require.NoError(t, store.FetchCart(context.Background()))

	store.Reset()

	state := store.State()
	assert.Nil(t, state.Cart)
	assert.Equal(t, Status{}, state.Status)
}
