package store

import (
	"context"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// PaymentState is a point-in-time snapshot of the payment state.
type PaymentState struct {
	Payment    *entity.Payment
	Payments   []entity.Payment
	Actions    map[string]any
	Count      int
	TotalPages int
	Page       int
	Status     Status
}

// PaymentStore holds payment history plus the in-flight provider
// session opened at checkout.
type PaymentStore struct {
	lifecycle
	repo repository.PaymentRepository

	payment    *entity.Payment
	payments   []entity.Payment
	actions    map[string]any
	count      int
	totalPages int
	page       int
}

func NewPaymentStore(repo repository.PaymentRepository, events *Dispatcher) *PaymentStore {
	s := &PaymentStore{repo: repo}
	s.name = StorePayment
	s.events = events

	return s
}

func (s *PaymentStore) State() PaymentState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return PaymentState{
		Payment:    s.payment,
		Payments:   slices.Clone(s.payments),
		Actions:    s.actions,
		Count:      s.count,
		TotalPages: s.totalPages,
		Page:       s.page,
		Status:     s.status,
	}
}

func (s *PaymentStore) applyPage(page repository.Page[entity.Payment]) {
	s.payments = page.Items
	s.count = page.Count
	s.totalPages = page.TotalPages
	s.page = page.Page
}

// FetchPayments loads one page of the signed-in user's payments.
func (s *PaymentStore) FetchPayments(ctx context.Context, filters repository.PaymentFilters, opts repository.ListOptions) error {
	gen := s.begin()

	page, err := s.repo.ListMine(ctx, filters, opts)
	s.finish("fetch payments", gen, err, "Payments loaded", func() {
		s.applyPage(page)
	})

	return err
}

// FetchAllPayments loads one page of every payment, the admin listing.
func (s *PaymentStore) FetchAllPayments(ctx context.Context, filters repository.PaymentFilters, opts repository.ListOptions) error {
	gen := s.begin()

	page, err := s.repo.ListAll(ctx, filters, opts)
	s.finish("fetch all payments", gen, err, "Payments loaded", func() {
		s.applyPage(page)
	})

	return err
}

// FetchPayment loads a single payment.
func (s *PaymentStore) FetchPayment(ctx context.Context, id int) error {
	gen := s.begin()

	payment, err := s.repo.Get(ctx, id)
	s.finish("fetch payment", gen, err, "Payment loaded", func() {
		s.payment = payment
	})

	return err
}

// CreatePaymentRequest opens a provider session for the order total and
// keeps the provider's next-action payload for the hand-off.
func (s *PaymentStore) CreatePaymentRequest(ctx context.Context, input repository.PaymentRequestInput) (repository.PaymentRequest, error) {
	gen := s.begin()

	request, err := s.repo.CreateRequest(ctx, input)
	s.finish("create payment request", gen, err, orDefault(request.Message, "Payment session opened"), func() {
		s.payment = &request.Payment
		s.actions = request.Actions
	})

	return request, err
}

// CheckPaymentStatus refreshes the provider's view of a payment. The
// checkout poller calls this until the payment reaches a terminal
// status.
func (s *PaymentStore) CheckPaymentStatus(ctx context.Context, id int) (repository.PaymentStatus, error) {
	gen := s.begin()

	status, err := s.repo.CheckStatus(ctx, id)
	s.finish("check payment status", gen, err, orDefault(status.Message, "Payment status refreshed"), func() {
		s.payment = &status.Payment
	})

	return status, err
}
