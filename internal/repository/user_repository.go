package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prperemyshlev/healthtrack-smoke/internal/domain"
)

type userRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.User
	email map[string]string
	name  map[string]string
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() UserRepository {
	return &userRepository{
		byID:  make(map[string]*domain.User),
		email: make(map[string]string),
		name:  make(map[string]string),
	}
}

// Create stores a new user, assigning ID and CreatedAt when empty
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.email[user.Email]; ok {
		return ErrDuplicateEmail
	}
	if _, ok := r.name[user.Username]; ok {
		return ErrDuplicateUsername
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	stored := *user
	r.byID[user.ID] = &stored
	r.email[user.Email] = user.ID
	r.name[user.Username] = user.ID

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.get(id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.email[email]
	if !ok {
		return nil, ErrNotFound
	}
	return r.get(id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.name[username]
	if !ok {
		return nil, ErrNotFound
	}
	return r.get(id)
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}

// get must be called with r.mu held
func (r *userRepository) get(id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}
