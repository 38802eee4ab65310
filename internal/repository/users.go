package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/campbellos/backend/internal/domain"
)

// UserRepository stores dashboard login accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type memoryUserRepository struct {
	mu    sync.Mutex
	users []domain.User
}

// NewMemoryUserRepository builds the in-memory account store.
func NewMemoryUserRepository(seed []domain.User) UserRepository {
	return &memoryUserRepository{users: append([]domain.User{}, seed...)}
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}
