package profiles

import (
	"context"

	"github.com/dmitrijs2005/credstore/internal/common"
)

// StaticRepository is a Repository over a table that is fixed for the
// lifetime of the process.
type StaticRepository struct {
	profiles map[int64]Profile
}

// NewStaticRepository returns a repository over the built-in demo profiles,
// ids 1 (alice) and 2 (bob).
func NewStaticRepository() *StaticRepository {
	return &StaticRepository{
		profiles: map[int64]Profile{
			1: {ID: 1, Name: "alice", Email: "alice@example.com"},
			2: {ID: 2, Name: "bob", Email: "bob@example.com"},
		},
	}
}

// GetByID implements Repository. The returned profile is a copy; mutating it
// does not affect the table.
func (r *StaticRepository) GetByID(ctx context.Context, id int64) (*Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}
