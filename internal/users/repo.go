package users

import (
	"context"

	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/pagination"
)

const usernameIndex = "username-index"

// Repository handles user persistence.
type Repository struct {
	store *dynamo.Client
}

// NewRepository binds the store client to user operations.
func NewRepository(store *dynamo.Client) *Repository {
	return &Repository{store: store}
}

// Create persists a new user record.
func (r *Repository) Create(ctx context.Context, user *User) error {
	return r.store.Put(ctx, config.TableUsers, user)
}

// Save overwrites the user record.
func (r *Repository) Save(ctx context.Context, user *User) error {
	return r.store.Put(ctx, config.TableUsers, user)
}

// FindByID loads a user by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	var user User
	if err := r.store.Get(ctx, config.TableUsers, id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername resolves a user through the username GSI.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var matches []User
	if _, err := r.store.QueryByIndex(ctx, config.TableUsers, usernameIndex, "username", username, pagination.Params{Limit: 1}, &matches); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, dynamo.ErrNotFound
	}
	return &matches[0], nil
}

// List scans the users table one page at a time.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]User, pagination.Cursor, error) {
	var users []User
	cursor, err := r.store.List(ctx, config.TableUsers, params, &users)
	if err != nil {
		return nil, nil, err
	}
	return users, cursor, nil
}
