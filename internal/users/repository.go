package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/indexadmin/indexadmin/internal/storage"
	"github.com/samber/lo"
)

const collectionKey = "users"

type Repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{
		store: store,
	}
}

// List returns every user in the collection.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	models, err := storage.GetJSON(ctx, r.store, collectionKey, []userModel{})
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	return lo.Map(models, func(m userModel, _ int) User { return m.toDomain() }), nil
}

// GetByEmail returns the first user whose email matches, ignoring case.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	user, ok := lo.Find(users, func(u User) bool { return strings.EqualFold(u.Email, email) })
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, email)
	}

	return &user, nil
}
