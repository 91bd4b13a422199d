// Package users implements the credential store: a username-keyed set of
// password hashes with add, remove, and authenticate operations, plus a
// profile lookup served from an independent table.
//
// Service is the public surface. Every operation answers with a plain bool
// or a nil-able value. Failure reasons are indistinguishable on purpose: a
// caller probing the store cannot learn whether a username exists.
package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/credstore/internal/common"
	"github.com/dmitrijs2005/credstore/internal/cryptox"
	"github.com/dmitrijs2005/credstore/internal/logging"
	"github.com/dmitrijs2005/credstore/internal/profiles"
)

// Service provides the credential-store operations:
//   - Authenticate: verify a username/password pair
//   - AddUser / RemoveUser: mutate the store
//   - GetUser: resolve a display profile by numeric id
//
// State is constructor-injected; the package holds no globals, so two
// Services built over different repositories are fully independent.
type Service struct {
	repo     Repository
	profiles profiles.Repository
	log      logging.Logger
}

// NewService constructs a Service over the given repositories. A nil logger
// is replaced with a nop logger.
func NewService(repo Repository, profileRepo profiles.Repository, log logging.Logger) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{repo: repo, profiles: profileRepo, log: log}
}

// Authenticate reports whether the username/password pair matches a stored
// record. An empty username, an empty password, an unknown username, and a
// wrong password all yield false; the caller cannot tell which condition
// failed. Both comparisons are case-sensitive. Read-only.
func (s *Service) Authenticate(ctx context.Context, userName, password string) bool {
	if userName == "" {
		return false
	}
	if password == "" {
		return false
	}

	user, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "authenticate: lookup failed", "error", err)
		}
		return false
	}

	// Plain comparison of the hex digests. No timing-attack mitigation is
	// promised here; swap in subtle.ConstantTimeCompare before exposing the
	// store to untrusted callers.
	return user.PasswordHash == cryptox.HashPassword(password)
}

// AddUser registers a new credential record and reports success. The
// username must be unused; beyond that no input is validated. The password
// is hashed at insertion time and the plaintext is not retained.
func (s *Service) AddUser(ctx context.Context, userName, password, email string) bool {
	user := &User{
		UserName:     userName,
		PasswordHash: cryptox.HashPassword(password),
		Email:        email,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if !errors.Is(err, common.ErrorAlreadyExists) {
			s.log.Error(ctx, "add user: create failed", "error", err)
		}
		return false
	}

	s.log.Debug(ctx, "user added", "username", created.UserName, "user_id", created.UserID)
	return true
}

// RemoveUser deletes the record stored under userName and reports success.
// Removing an unknown username is not an error; it simply returns false.
func (s *Service) RemoveUser(ctx context.Context, userName string) bool {
	if err := s.repo.Delete(ctx, userName); err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "remove user: delete failed", "error", err)
		}
		return false
	}

	s.log.Debug(ctx, "user removed", "username", userName)
	return true
}

// GetUser returns the display profile for id, or nil if the profile table
// has no such entry. The table is fixed at construction and AddUser or
// RemoveUser never update it, so ids assigned to new credential records do
// not resolve here.
func (s *Service) GetUser(ctx context.Context, id int64) *profiles.Profile {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "get user: profile lookup failed", "error", err)
		}
		return nil
	}
	return p
}

// Count reports the number of stored credential records.
func (s *Service) Count(ctx context.Context) int {
	n, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error(ctx, "count failed", "error", err)
		return 0
	}
	return n
}
