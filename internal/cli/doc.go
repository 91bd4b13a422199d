// Package cli provides the interactive credstore command-line shell.
//
// It wires configuration, logging, and an in-memory credential store
// seeded with demo accounts, then runs a REPL against that store.
//
// Key features:
//   - login (check a user name and password)
//   - adduser / rmuser (manage credential records)
//   - profile (look up a user profile by id)
//   - count (number of stored records)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
