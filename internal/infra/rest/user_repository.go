package rest

import (
	"context"
	"fmt"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type userRepository struct {
	client *Client
}

// NewUserRepository builds the REST-backed user repository. Session
// cookies set by login and refresh live in the client's cookie jar.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) Register(ctx context.Context, input repository.RegisterInput) (repository.Result[entity.User], error) {
	var out struct {
		User    entity.User `json:"user"`
		Message string      `json:"message"`
	}
	if err := r.client.post(ctx, "/users/register", input, &out); err != nil {
		return repository.Result[entity.User]{}, err
	}

	return repository.Result[entity.User]{Resource: out.User, Message: out.Message}, nil
}

func (r *userRepository) Login(ctx context.Context, input repository.LoginInput) (repository.Result[entity.User], error) {
	var out struct {
		User    entity.User `json:"user"`
		Message string      `json:"message"`
	}
	if err := r.client.post(ctx, "/users/login", input, &out); err != nil {
		return repository.Result[entity.User]{}, err
	}

	return repository.Result[entity.User]{Resource: out.User, Message: out.Message}, nil
}

func (r *userRepository) Logout(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := r.client.post(ctx, "/users/logout", nil, &out); err != nil {
		return "", err
	}
	r.client.ClearCookies()

	return out.Message, nil
}

func (r *userRepository) Profile(ctx context.Context) (*entity.User, error) {
	var out struct {
		User entity.User `json:"user"`
	}
	if err := r.client.get(ctx, "/users/profile", nil, &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, input repository.ProfileInput) (repository.Result[entity.User], error) {
	var out struct {
		User    entity.User `json:"user"`
		Message string      `json:"message"`
	}
	if err := r.client.put(ctx, "/users/profile", input, &out); err != nil {
		return repository.Result[entity.User]{}, err
	}

	return repository.Result[entity.User]{Resource: out.User, Message: out.Message}, nil
}

func (r *userRepository) ChangePassword(ctx context.Context, input repository.ChangePasswordInput) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := r.client.post(ctx, "/users/change-password", input, &out); err != nil {
		return "", err
	}

	return out.Message, nil
}

func (r *userRepository) RefreshToken(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := r.client.post(ctx, "/users/refresh", nil, &out); err != nil {
		return "", err
	}

	return out.Message, nil
}

func (r *userRepository) ListUsers(ctx context.Context, filters repository.UserFilters, opts repository.ListOptions) (repository.Page[entity.User], error) {
	query := listQuery(opts)
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.IsAdmin != nil {
		query.Set("is_admin", strconv.FormatBool(*filters.IsAdmin))
	}

	var out struct {
		Users      []entity.User `json:"users"`
		Count      int           `json:"count"`
		TotalPages int           `json:"total_pages"`
		Page       int           `json:"page"`
	}
	if err := r.client.get(ctx, "/users/admin/all", query, &out); err != nil {
		return repository.Page[entity.User]{}, err
	}

	return repository.Page[entity.User]{
		Items:      out.Users,
		Count:      out.Count,
		TotalPages: out.TotalPages,
		Page:       out.Page,
	}, nil
}

func (r *userRepository) AdminUpdate(ctx context.Context, id int, input repository.AdminUserInput) (repository.Result[entity.User], error) {
	var out struct {
		User    entity.User `json:"user"`
		Message string      `json:"message"`
	}
	if err := r.client.put(ctx, fmt.Sprintf("/users/admin/%d", id), input, &out); err != nil {
		return repository.Result[entity.User]{}, err
	}

	return repository.Result[entity.User]{Resource: out.User, Message: out.Message}, nil
}

func (r *userRepository) AdminDelete(ctx context.Context, id int) (repository.Deleted, error) {
	var out struct {
		ID      int    `json:"id"`
		Message string `json:"message"`
	}
	if err := r.client.delete(ctx, fmt.Sprintf("/users/admin/%d", id), &out); err != nil {
		return repository.Deleted{}, err
	}

	return repository.Deleted{ID: out.ID, Message: out.Message}, nil
}
