package store

import (
	"context"
	"slices"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// Operations on the user store that establish a session rather than use
// one. Auth failures from these are ordinary form errors and must not
// trigger the global logout path.
const (
	OpLogin    = "login"
	OpRegister = "register"
)

// UserState is a point-in-time snapshot of the identity state.
type UserState struct {
	User       *entity.User
	Users      []entity.User
	Count      int
	TotalPages int
	Page       int
	Status     Status
}

// UserStore holds the signed-in identity and the admin user listing.
// The identity is part of the persisted session.
type UserStore struct {
	lifecycle
	repo repository.UserRepository

	user       *entity.User
	users      []entity.User
	count      int
	totalPages int
	page       int
}

func NewUserStore(repo repository.UserRepository, events *Dispatcher) *UserStore {
	s := &UserStore{repo: repo}
	s.name = StoreUser
	s.events = events

	return s
}

func (s *UserStore) State() UserState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return UserState{
		User:       s.user,
		Users:      slices.Clone(s.users),
		Count:      s.count,
		TotalPages: s.totalPages,
		Page:       s.page,
		Status:     s.status,
	}
}

// IsAuthenticated reports whether an identity is present.
func (s *UserStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user != nil
}

// Restore seeds the identity from a persisted session snapshot without
// running an operation lifecycle.
func (s *UserStore) Restore(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
}

// ClearIdentity drops the identity and admin listing, the local half of
// a logout. In-flight operations become stale so a late response cannot
// resurrect the session.
func (s *UserStore) ClearIdentity() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.dropIdentity()
	s.status = Status{}
}

// dropIdentity clears the identity fields. Callers hold s.mu.
func (s *UserStore) dropIdentity() {
	s.user = nil
	s.users = nil
	s.count = 0
	s.totalPages = 0
	s.page = 0
}

// Register creates an account. The server signs the new user in, so the
// identity is adopted immediately.
func (s *UserStore) Register(ctx context.Context, input repository.RegisterInput) error {
	gen := s.begin()

	result, err := s.repo.Register(ctx, input)
	s.finish(OpRegister, gen, err, orDefault(result.Message, "Account created"), func() {
		s.user = &result.Resource
	})

	return err
}

// Login authenticates and adopts the returned identity. The session
// cookies land in the HTTP client's jar.
func (s *UserStore) Login(ctx context.Context, input repository.LoginInput) error {
	gen := s.begin()

	result, err := s.repo.Login(ctx, input)
	s.finish(OpLogin, gen, err, orDefault(result.Message, "Signed in"), func() {
		s.user = &result.Resource
	})

	return err
}

// Logout ends the server session, then drops the local identity even if
// the server call failed.
func (s *UserStore) Logout(ctx context.Context) error {
	gen := s.begin()

	message, err := s.repo.Logout(ctx)
	s.finish("logout", gen, err, orDefault(message, "Signed out"), func() {
		s.dropIdentity()
	})
	if err != nil {
		// The server call failed but the session is over locally
		// either way.
		s.mu.Lock()
		s.dropIdentity()
		s.mu.Unlock()
	}

	return err
}

// FetchProfile loads the signed-in user's profile.
func (s *UserStore) FetchProfile(ctx context.Context) error {
	gen := s.begin()

	user, err := s.repo.Profile(ctx)
	s.finish("fetch profile", gen, err, "Profile loaded", func() {
		s.user = user
	})

	return err
}

// UpdateProfile saves profile changes.
func (s *UserStore) UpdateProfile(ctx context.Context, input repository.ProfileInput) error {
	gen := s.begin()

	result, err := s.repo.UpdateProfile(ctx, input)
	s.finish("update profile", gen, err, orDefault(result.Message, "Profile updated"), func() {
		s.user = &result.Resource
	})

	return err
}

// ChangePassword rotates the password.
func (s *UserStore) ChangePassword(ctx context.Context, input repository.ChangePasswordInput) error {
	gen := s.begin()

	message, err := s.repo.ChangePassword(ctx, input)
	s.finish("change password", gen, err, orDefault(message, "Password changed"), nil)

	return err
}

// RefreshToken rotates the access token cookie.
func (s *UserStore) RefreshToken(ctx context.Context) error {
	gen := s.begin()

	message, err := s.repo.RefreshToken(ctx)
	s.finish("refresh token", gen, err, orDefault(message, "Session refreshed"), nil)

	return err
}

// FetchUsers loads one page of the admin user listing.
func (s *UserStore) FetchUsers(ctx context.Context, filters repository.UserFilters, opts repository.ListOptions) error {
	gen := s.begin()

	page, err := s.repo.ListUsers(ctx, filters, opts)
	s.finish("fetch users", gen, err, "Users loaded", func() {
		s.users = page.Items
		s.count = page.Count
		s.totalPages = page.TotalPages
		s.page = page.Page
	})

	return err
}

// AdminUpdateUser applies a back-office user update.
func (s *UserStore) AdminUpdateUser(ctx context.Context, id int, input repository.AdminUserInput) error {
	gen := s.begin()

	result, err := s.repo.AdminUpdate(ctx, id, input)
	s.finish("admin update user", gen, err, orDefault(result.Message, "User updated"), func() {
		for i := range s.users {
			if s.users[i].ID == result.Resource.ID {
				s.users[i] = result.Resource
				break
			}
		}
	})

	return err
}

// AdminDeleteUser removes an account.
func (s *UserStore) AdminDeleteUser(ctx context.Context, id int) error {
	gen := s.begin()

	deleted, err := s.repo.AdminDelete(ctx, id)
	s.finish("admin delete user", gen, err, orDefault(deleted.Message, "User deleted"), func() {
		s.users = slices.DeleteFunc(s.users, func(u entity.User) bool {
			return u.ID == id
		})
		if s.count > 0 {
			s.count--
		}
	})

	return err
}
