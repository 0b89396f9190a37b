package store

import (
	"context"
	"sync"

	"github.com/wesboland/bolandindex/internal/identity"
)

// MemoryRepo is an in-memory identity.UserRepo used by tests; nothing
// survives the process.
type MemoryRepo struct {
	mu      sync.Mutex
	users   map[string]identity.User
	session string
}

var _ identity.UserRepo = (*MemoryRepo)(nil)

// NewMemoryRepo creates an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]identity.User)}
}

func (r *MemoryRepo) Get(ctx context.Context, email string) (*identity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *MemoryRepo) Put(ctx context.Context, u *identity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.Email] = *cloneUser(*u)
	return nil
}

func (r *MemoryRepo) Session(ctx context.Context) (*identity.User, error) {
	r.mu.Lock()
	email := r.session
	r.mu.Unlock()
	if email == "" {
		return nil, nil
	}
	return r.Get(ctx, email)
}

func (r *MemoryRepo) SetSession(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = email
	return nil
}

func (r *MemoryRepo) ClearSession(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = ""
	return nil
}

// cloneUser deep-copies a user so callers never share history slices or
// score maps with the stored value.
func cloneUser(u identity.User) *identity.User {
	out := identity.User{
		Email:   u.Email,
		History: make([]identity.SavedScore, len(u.History)),
	}
	for i, h := range u.History {
		out.History[i] = identity.SavedScore{
			ID:     h.ID,
			Date:   h.Date,
			Total:  h.Total,
			Scores: h.Scores.Clone(),
		}
	}
	return &out
}
