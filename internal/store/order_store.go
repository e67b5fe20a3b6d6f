package store

import (
	"context"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// OrderState is a point-in-time snapshot of the order state.
type OrderState struct {
	Order      *entity.Order
	Orders     []entity.Order
	Count      int
	TotalPages int
	Page       int
	Status     Status
}

// OrderStore holds the order history listing and the currently viewed
// order.
type OrderStore struct {
	lifecycle
	repo repository.OrderRepository

	order      *entity.Order
	orders     []entity.Order
	count      int
	totalPages int
	page       int
}

func NewOrderStore(repo repository.OrderRepository, events *Dispatcher) *OrderStore {
	s := &OrderStore{repo: repo}
	s.name = StoreOrder
	s.events = events

	return s
}

func (s *OrderStore) State() OrderState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return OrderState{
		Order:      s.order,
		Orders:     slices.Clone(s.orders),
		Count:      s.count,
		TotalPages: s.totalPages,
		Page:       s.page,
		Status:     s.status,
	}
}

func (s *OrderStore) applyPage(page repository.Page[entity.Order]) {
	s.orders = page.Items
	s.count = page.Count
	s.totalPages = page.TotalPages
	s.page = page.Page
}

// FetchOrders loads one page of the signed-in user's order history.
func (s *OrderStore) FetchOrders(ctx context.Context, filters repository.OrderFilters, opts repository.ListOptions) error {
	gen := s.begin()

	page, err := s.repo.ListMine(ctx, filters, opts)
	s.finish("fetch orders", gen, err, "Orders loaded", func() {
		s.applyPage(page)
	})

	return err
}

// FetchAllOrders loads one page of every order, the admin listing.
func (s *OrderStore) FetchAllOrders(ctx context.Context, filters repository.OrderFilters, opts repository.ListOptions) error {
	gen := s.begin()

	page, err := s.repo.ListAll(ctx, filters, opts)
	s.finish("fetch all orders", gen, err, "Orders loaded", func() {
		s.applyPage(page)
	})

	return err
}

// FetchOrder loads a single order.
func (s *OrderStore) FetchOrder(ctx context.Context, id int) error {
	gen := s.begin()

	order, err := s.repo.Get(ctx, id)
	s.finish("fetch order", gen, err, "Order loaded", func() {
		s.order = order
	})

	return err
}

// FetchGuestOrder loads an order for a guest, verified by the email
// used at checkout.
func (s *OrderStore) FetchGuestOrder(ctx context.Context, id int, email string) error {
	gen := s.begin()

	order, err := s.repo.GetGuest(ctx, id, email)
	s.finish("fetch guest order", gen, err, "Order loaded", func() {
		s.order = order
	})

	return err
}

// CreateOrder submits the checkout. The created order becomes the
// current one so the confirmation page can render it.
func (s *OrderStore) CreateOrder(ctx context.Context, input repository.CreateOrderInput) (*entity.Order, error) {
	gen := s.begin()

	result, err := s.repo.Create(ctx, input)
	s.finish("create order", gen, err, orDefault(result.Message, "Order placed"), func() {
		s.order = &result.Resource
		s.orders = append(s.orders, result.Resource)
		s.count++
	})
	if err != nil {
		return nil, err
	}

	return &result.Resource, nil
}

// CancelOrder cancels an order that has not shipped.
func (s *OrderStore) CancelOrder(ctx context.Context, id int) error {
	gen := s.begin()

	result, err := s.repo.Cancel(ctx, id)
	s.finish("cancel order", gen, err, orDefault(result.Message, "Order cancelled"), func() {
		s.adoptOrder(result.Resource)
	})

	return err
}

// PayOrder links a completed payment to its order.
func (s *OrderStore) PayOrder(ctx context.Context, id int, input repository.PayOrderInput) error {
	gen := s.begin()

	result, err := s.repo.Pay(ctx, id, input)
	s.finish("pay order", gen, err, orDefault(result.Message, "Order paid"), func() {
		s.adoptOrder(result.Resource)
	})

	return err
}

// AdminUpdateOrder applies a back-office status or tracking update.
func (s *OrderStore) AdminUpdateOrder(ctx context.Context, id int, input repository.AdminOrderInput) error {
	gen := s.begin()

	result, err := s.repo.AdminUpdate(ctx, id, input)
	s.finish("admin update order", gen, err, orDefault(result.Message, "Order updated"), func() {
		s.adoptOrder(result.Resource)
	})

	return err
}

func (s *OrderStore) adoptOrder(order entity.Order) {
	s.order = &order
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = order
			return
		}
	}
}
