package collection

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"waifulist/core/errs"
	"waifulist/core/reconcile"
)

// snowflake matches inputs that look like a raw Discord user id.
var snowflake = regexp.MustCompile(`\d{6,}`)

// ResolveUser turns free-form input into a user. Inputs containing a run of at
// least six digits, such as a Discord mention, are fetched by that id. Other inputs are tried as a Discord
// username, then as an AniList handle. Lookup failures other than not-found
// are returned as is.
func ResolveUser(ctx context.Context, f Fetcher, input string) (reconcile.User, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return reconcile.User{}, fmt.Errorf("%w: empty user", errs.ErrInvalidInput)
	}

	if id := snowflake.FindString(input); id != "" {
		return f.GetUser(ctx, id)
	}

	for _, find := range []func(context.Context, string) (string, error){f.FindByDiscord, f.FindByAnilist} {
		id, err := find(ctx, input)
		if errors.Is(err, errs.ErrNotFound) {
			continue
		}
		if err != nil {
			return reconcile.User{}, err
		}
		u, err := f.GetUser(ctx, id)
		if errors.Is(err, errs.ErrNotFound) {
			continue
		}
		return u, err
	}

	return reconcile.User{}, fmt.Errorf("resolve user %q: %w", input, errs.ErrNotFound)
}
