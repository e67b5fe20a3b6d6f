package store

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// CartState is a point-in-time snapshot of the cart.
type CartState struct {
	Cart   *entity.Cart
	Status Status
}

// CartStore mirrors the server-owned cart. Every mutation replaces the
// whole cart with the server's recomputed copy; item rows, quantities
// and the subtotal are never edited locally.
type CartStore struct {
	lifecycle
	repo repository.CartRepository

	cart *entity.Cart
}

func NewCartStore(repo repository.CartRepository, events *Dispatcher) *CartStore {
	s := &CartStore{repo: repo}
	s.name = StoreCart
	s.events = events

	return s
}

func (s *CartStore) State() CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return CartState{Cart: s.cart, Status: s.status}
}

// ItemCount sums the quantities across the cart, the badge number.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart == nil {
		return 0
	}

	total := 0
	for _, item := range s.cart.Items {
		total += item.Quantity
	}

	return total
}

// FetchCart loads the current cart.
func (s *CartStore) FetchCart(ctx context.Context) error {
	gen := s.begin()

	cart, err := s.repo.Get(ctx)
	s.finish("fetch cart", gen, err, "Cart loaded", func() {
		s.cart = cart
	})

	return err
}

// AddItem puts a product, optionally a specific variant, in the cart.
func (s *CartStore) AddItem(ctx context.Context, input repository.CartItemInput) error {
	gen := s.begin()

	cart, err := s.repo.AddItem(ctx, input)
	s.finish("add cart item", gen, err, "Item added to cart", func() {
		s.cart = cart
	})

	return err
}

// UpdateItem changes a line's quantity.
func (s *CartStore) UpdateItem(ctx context.Context, itemID, quantity int) error {
	gen := s.begin()

	cart, err := s.repo.UpdateItem(ctx, itemID, quantity)
	s.finish("update cart item", gen, err, "Cart updated", func() {
		s.cart = cart
	})

	return err
}

// RemoveItem deletes a line from the cart.
func (s *CartStore) RemoveItem(ctx context.Context, itemID int) error {
	gen := s.begin()

	cart, err := s.repo.RemoveItem(ctx, itemID)
	s.finish("remove cart item", gen, err, "Item removed", func() {
		s.cart = cart
	})

	return err
}

// ClearCart empties the cart server-side.
func (s *CartStore) ClearCart(ctx context.Context) error {
	gen := s.begin()

	cart, err := s.repo.Clear(ctx)
	s.finish("clear cart", gen, err, "Cart cleared", func() {
		s.cart = cart
	})

	return err
}

// Reset drops local cart state without a server call, used when the
// session ends. In-flight operations become stale.
func (s *CartStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.cart = nil
	s.status = Status{}
}
