package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Profile looks up the user profile with the given numeric id and prints it.
// The profile table is fixed at startup and independent of the credential
// records, so adding or removing users never changes the output.
func (a *App) Profile(ctx context.Context, id string) error {
	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Invalid id:", id)
		return err
	}

	p := a.service.GetUser(ctx, userID)
	if p == nil {
		printlnFn("Profile not found")
		return nil
	}

	printlnFn(fmt.Sprintf("Id: %d, Name: %s, Email: %s", p.ID, p.Name, p.Email))
	return nil
}
