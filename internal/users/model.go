package users

// User is a credential record. The store keys records by UserName; UserID is
// a separate numeric identity assigned at insertion time and never reused
// while a higher id exists.
type User struct {
	UserName     string
	PasswordHash string
	UserID       int64
	Email        string
}
