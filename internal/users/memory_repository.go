package users

import (
	"context"

	"github.com/dmitrijs2005/credstore/internal/common"
)

// MemoryRepository keeps credential records in a plain map keyed by
// username. All state is lost when the process exits.
//
// It performs no locking: the store assumes a single synchronous caller.
// Concurrent reads are safe with each other, but mutations must be
// serialized externally. Records are copied on the way in and out, so
// callers never alias stored state.
type MemoryRepository struct {
	users map[string]User
}

// NewMemoryRepository creates a repository holding the given initial
// records. Initial records keep the ids they carry; ids assigned later by
// Create start above the highest initial id.
func NewMemoryRepository(initial ...*User) *MemoryRepository {
	r := &MemoryRepository{users: make(map[string]User, len(initial))}
	for _, u := range initial {
		r.users[u.UserName] = *u
	}
	return r
}

// Create implements Repository. The returned record is a copy carrying the
// assigned user id; the caller's argument is not modified.
func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	if _, exists := r.users[user.UserName]; exists {
		return nil, common.ErrorAlreadyExists
	}

	created := *user
	created.UserID = r.nextID()
	r.users[created.UserName] = created

	return &created, nil
}

// nextID computes 1 + the highest stored id. An id freed by Delete is handed
// out again only once no higher id remains, so insertions after a removal
// can skip numbers but never collide.
func (r *MemoryRepository) nextID() int64 {
	var maxID int64
	for _, u := range r.users {
		if u.UserID > maxID {
			maxID = u.UserID
		}
	}
	return maxID + 1
}

// GetByUserName implements Repository.
func (r *MemoryRepository) GetByUserName(ctx context.Context, userName string) (*User, error) {
	u, ok := r.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

// Delete implements Repository.
func (r *MemoryRepository) Delete(ctx context.Context, userName string) error {
	if _, ok := r.users[userName]; !ok {
		return common.ErrorNotFound
	}
	delete(r.users, userName)
	return nil
}

// Count implements Repository.
func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	return len(r.users), nil
}
