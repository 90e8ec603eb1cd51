package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"waifulist/core/reconcile"
	"waifulist/feature/catalog"
	"waifulist/feature/collection"
)

var browseHelp = `commands:
  search <text>     filter by name or id (empty clears)
  sort date|name|id choose a sort, again to reverse
  show ` + reconcile.DisplayCapChoices() + `
  media <id>|none   compare against a media roster
  compare <user>    add a compare user
  drop <user id>    remove a compare user
  help              show this help
  quit              leave`

// userResolver resolves free-form user input.
type userResolver interface {
	Resolve(ctx context.Context, input string) (reconcile.User, error)
}

// browser is the interactive collection session.
type browser struct {
	view    *collection.View
	source  collection.Source
	users   userResolver
	catalog catalog.Catalog
	out     io.Writer
}

func (b *browser) run(ctx context.Context, in io.Reader) error {
	b.render()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(b.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(b.out)
			return scanner.Err()
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		quit, err := b.apply(ctx, cmd, arg)
		if err != nil {
			fmt.Fprintln(b.out, warnStyle.Render(err.Error()))
			continue
		}
		if quit {
			return nil
		}
	}
}

// apply runs one command. It reports true when the session should end.
func (b *browser) apply(ctx context.Context, cmd, arg string) (bool, error) {
	switch strings.ToLower(cmd) {
	case "":
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(b.out, browseHelp)
		return false, nil
	case "search":
		b.view.SetSearch(arg)
	case "sort":
		key, err := reconcile.ParseSortKey(arg)
		if err != nil {
			return false, err
		}
		b.view.ChooseSort(key)
	case "show":
		c, err := reconcile.ParseDisplayCap(arg)
		if err != nil {
			return false, err
		}
		b.view.SetCap(c)
	case "media":
		if arg == "" || strings.EqualFold(arg, "none") {
			b.view.ClearMedia()
			break
		}
		id, err := catalog.ParseMediaID(arg)
		if err != nil {
			return false, err
		}
		roster, err := b.catalog.Roster(ctx, id)
		if err != nil {
			return false, err
		}
		b.view.SetMedia(id, roster)
	case "compare":
		u, err := b.users.Resolve(ctx, arg)
		if err != nil {
			return false, err
		}
		if !b.view.AddCompare(u) {
			return false, fmt.Errorf("%s is already in the view", u.DisplayName())
		}
	case "drop":
		if !b.view.RemoveCompare(arg) {
			return false, fmt.Errorf("%s is not a compare user", arg)
		}
	default:
		return false, fmt.Errorf("unknown command %q, type help", cmd)
	}

	b.render()
	return false, nil
}

func (b *browser) render() {
	printListing(b.out, collection.Render(b.view, b.source))
}
