package store

import (
	"context"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// AddressState is a point-in-time snapshot of the saved addresses.
type AddressState struct {
	Addresses []entity.Address
	Status    Status
}

// AddressStore holds the signed-in user's saved addresses. The listing
// is small and unpaginated, and it is part of the persisted session.
type AddressStore struct {
	lifecycle
	repo repository.AddressRepository

	addresses []entity.Address
}

func NewAddressStore(repo repository.AddressRepository, events *Dispatcher) *AddressStore {
	s := &AddressStore{repo: repo}
	s.name = StoreAddress
	s.events = events

	return s
}

func (s *AddressStore) State() AddressState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return AddressState{Addresses: slices.Clone(s.addresses), Status: s.status}
}

// Restore seeds the listing from a persisted session snapshot without
// running an operation lifecycle.
func (s *AddressStore) Restore(addresses []entity.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addresses = slices.Clone(addresses)
}

// Clear drops the listing when the session ends. In-flight operations
// become stale.
func (s *AddressStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.addresses = nil
	s.status = Status{}
}

// FetchAddresses loads the saved addresses.
func (s *AddressStore) FetchAddresses(ctx context.Context) error {
	gen := s.begin()

	addresses, err := s.repo.List(ctx)
	s.finish("fetch addresses", gen, err, "Addresses loaded", func() {
		s.addresses = addresses
	})

	return err
}

// CreateAddress saves a new address.
func (s *AddressStore) CreateAddress(ctx context.Context, input repository.AddressInput) error {
	gen := s.begin()

	result, err := s.repo.Create(ctx, input)
	s.finish("create address", gen, err, orDefault(result.Message, "Address saved"), func() {
		s.addresses = append(s.addresses, result.Resource)
	})

	return err
}

// UpdateAddress saves changes to an address.
func (s *AddressStore) UpdateAddress(ctx context.Context, id int, input repository.AddressInput) error {
	gen := s.begin()

	result, err := s.repo.Update(ctx, id, input)
	s.finish("update address", gen, err, orDefault(result.Message, "Address updated"), func() {
		for i := range s.addresses {
			if s.addresses[i].ID == result.Resource.ID {
				s.addresses[i] = result.Resource
				break
			}
		}
	})

	return err
}

// DeleteAddress removes an address.
func (s *AddressStore) DeleteAddress(ctx context.Context, id int) error {
	gen := s.begin()

	deleted, err := s.repo.Delete(ctx, id)
	s.finish("delete address", gen, err, orDefault(deleted.Message, "Address deleted"), func() {
		s.addresses = slices.DeleteFunc(s.addresses, func(a entity.Address) bool {
			return a.ID == id
		})
	})

	return err
}
