package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/credstore/internal/common"
)

// AddUser prompts for a user name, email and password and stores a new
// credential record. A taken user name produces the same generic failure
// message as any other rejection.
func (a *App) AddUser(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if !a.service.AddUser(ctx, userName, string(password), email) {
		printlnFn("User was not added")
		return nil
	}

	printlnFn("Success!")
	return nil
}
