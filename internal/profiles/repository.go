// Package profiles serves display profiles looked up by numeric user id.
//
// The shipped implementation is a fixed table populated at construction.
// It is deliberately independent of the credential store: adding or removing
// credential records never changes which profiles resolve here.
package profiles

import "context"

type Repository interface {
	// GetByID returns the profile for id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*Profile, error)
}
