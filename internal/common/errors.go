// Package common defines sentinel errors and small shared utilities used
// across credstore layers. Callers should use errors.Is to match the
// sentinel values.
package common

import "errors"

var (
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
)
