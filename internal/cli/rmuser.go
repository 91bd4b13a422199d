package cli

import (
	"context"
	"os"
)

// RemoveUser prompts for a user name and deletes its credential record.
// When the removed name is the one shown in the prompt, the prompt goes
// back to its anonymous form.
func (a *App) RemoveUser(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		return err
	}

	if !a.service.RemoveUser(ctx, userName) {
		printlnFn("User was not removed")
		return nil
	}

	if userName == a.userName {
		a.userName = ""
	}
	printlnFn("User removed")
	return nil
}
