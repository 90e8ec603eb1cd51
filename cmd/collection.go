package cmd

import (
	"fmt"

	"waifulist/core/reconcile"
	"waifulist/feature/collection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// collectionFlags holds the selections shared by list, browse and export.
type collectionFlags struct {
	search   string
	sort     string
	reverse  bool
	show     string
	media    string
	compare  []string
	wishlist bool
	refresh  bool
	json     bool
}

var collectionOpts collectionFlags

func (f collectionFlags) params() collection.QueryParams {
	source := string(collection.SourceCollection)
	if f.wishlist {
		source = string(collection.SourceWishlist)
	}
	return collection.QueryParams{
		Search:  f.search,
		Sort:    f.sort,
		Reverse: f.reverse,
		Show:    f.show,
		Media:   f.media,
		Compare: f.compare,
		Source:  source,
		Refresh: f.refresh,
	}
}

// collectionCmd represents the collection command
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Inspect character collections",
	Long:  `Lists, browses and exports reconciled character collections.`,
}

// collectionListCmd represents the collection list command
var collectionListCmd = &cobra.Command{
	Use:   "list <user>",
	Short: "Print a reconciled collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		q, err := a.query(args[0], collectionOpts.params())
		if err != nil {
			return err
		}

		listing, err := a.service.List(cmd.Context(), q)
		if err != nil {
			return err
		}

		if collectionOpts.json {
			return writeJSON(cmd.OutOrStdout(), listing)
		}
		printListing(cmd.OutOrStdout(), listing)
		return nil
	},
}

// collectionBrowseCmd represents the collection browse command
var collectionBrowseCmd = &cobra.Command{
	Use:   "browse <user>",
	Short: "Interactively browse a collection",
	Long: `Opens an interactive session over a collection. Selections are changed
with commands such as "sort name" or "compare <user>"; type "help" for the list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		params := collectionOpts.params()
		q, err := a.query(args[0], params)
		if err != nil {
			return err
		}

		view, stale, _, err := a.service.Open(cmd.Context(), q)
		if err != nil {
			return err
		}
		if stale {
			a.logger.Warn("Browsing a snapshot, the collection service is unreachable")
		}

		b := &browser{
			view:    view,
			source:  q.Source,
			users:   a.service,
			catalog: a.catalog,
			out:     cmd.OutOrStdout(),
		}
		return b.run(cmd.Context(), cmd.InOrStdin())
	},
}

// collectionExportCmd represents the collection export command
var collectionExportCmd = &cobra.Command{
	Use:   "export <user>",
	Short: "Export a reconciled collection to object storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		q, err := a.query(args[0], collectionOpts.params())
		if err != nil {
			return err
		}

		obj, err := a.service.Export(cmd.Context(), q)
		if err != nil {
			return err
		}

		a.logger.Info("Collection exported", zap.String("bucket", obj.Bucket), zap.String("object", obj.Key))
		if collectionOpts.json {
			return writeJSON(cmd.OutOrStdout(), collection.ExportResponse{Bucket: obj.Bucket, Object: obj.Key})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "s3://%s/%s\n", obj.Bucket, obj.Key)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(collectionCmd)
	collectionCmd.AddCommand(collectionListCmd, collectionBrowseCmd, collectionExportCmd)

	for _, c := range []*cobra.Command{collectionListCmd, collectionBrowseCmd, collectionExportCmd} {
		flags := c.Flags()
		flags.StringVar(&collectionOpts.search, "search", "", "Filter by name or id (at least 2 characters)")
		flags.StringVar(&collectionOpts.sort, "sort", "", "Sort key: date, name or id")
		flags.BoolVar(&collectionOpts.reverse, "reverse", false, "Reverse the sort")
		flags.StringVar(&collectionOpts.show, "show", "", "Display cap: a positive number or one of "+reconcile.DisplayCapChoices())
		flags.StringVar(&collectionOpts.media, "media", "", "AniList media id to compare against")
		flags.StringSliceVar(&collectionOpts.compare, "compare", nil, "Users to compare with (repeatable)")
		flags.BoolVar(&collectionOpts.wishlist, "wishlist", false, "Use the wishlist instead of the collection")
		flags.BoolVar(&collectionOpts.refresh, "refresh", false, "Bypass the cached profile")
	}
	collectionListCmd.Flags().BoolVar(&collectionOpts.json, "json", false, "Output JSON")
	collectionExportCmd.Flags().BoolVar(&collectionOpts.json, "json", false, "Output JSON")

}
