package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/credstore/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a user name and password and checks them against the
// store. Success remembers the name for the prompt. Failure prints one
// generic message, whether the account is missing or the password is wrong.
//
// The password byte slice is wiped before returning. Any I/O error is
// returned unchanged.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if !a.service.Authenticate(ctx, userName, string(password)) {
		a.log.Debug(ctx, "login rejected", "username", userName)
		printlnFn("Login failed")
		return nil
	}

	a.userName = userName
	a.log.Debug(ctx, "login accepted", "username", userName)
	printlnFn("Login successful")
	return nil
}
