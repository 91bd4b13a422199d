package cli

import (
	"context"
	"fmt"
)

// Count prints the number of stored credential records.
func (a *App) Count(ctx context.Context) error {
	printlnFn(fmt.Sprintf("Users: %d", a.service.Count(ctx)))
	return nil
}
