package users

import "github.com/dmitrijs2005/credstore/internal/cryptox"

// Passwords of the two demo accounts. A fresh store always accepts
// alice/alice123 and bob/bob456; anything added at runtime is gone after a
// restart.
const (
	seedAlicePassword = "alice123"
	seedBobPassword   = "bob456"
)

// Seed returns the records every fresh credential store starts with. Each
// call builds new values, so a repository seeded from them owns its state
// exclusively and tests never share accounts.
func Seed() []*User {
	return []*User{
		{UserName: "alice", PasswordHash: cryptox.HashPassword(seedAlicePassword), UserID: 1, Email: "alice@example.com"},
		{UserName: "bob", PasswordHash: cryptox.HashPassword(seedBobPassword), UserID: 2, Email: "bob@example.com"},
	}
}
