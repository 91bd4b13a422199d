package users

import "context"

// Repository is the persistence contract of the credential store. The demo
// ships a single in-memory implementation; the interface keeps alternative
// backends possible without touching the service layer.
type Repository interface {
	// Create inserts a new record under user.UserName, assigning the next
	// user id: 1 + the highest id currently stored, or 1 for an empty
	// store. Returns common.ErrorAlreadyExists if the username is taken.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByUserName returns the record stored under the exact,
	// case-sensitive username, or common.ErrorNotFound.
	GetByUserName(ctx context.Context, userName string) (*User, error)

	// Delete removes the record stored under userName, or returns
	// common.ErrorNotFound if there is none.
	Delete(ctx context.Context, userName string) error

	// Count reports the number of stored records.
	Count(ctx context.Context) (int, error)
}
