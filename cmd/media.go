package cmd

import (
	"strings"

	"waifulist/feature/catalog"

	"github.com/spf13/cobra"
)

var (
	mediaCount int
	mediaJSON  bool
)

// mediaCmd represents the media command
var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Query the media catalog",
}

// mediaSearchCmd represents the media search command
var mediaSearchCmd = &cobra.Command{
	Use:   "search <title>",
	Short: "Search anime and manga by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		media, err := a.catalog.SearchMedia(cmd.Context(), strings.Join(args, " "), mediaCount)
		if err != nil {
			return err
		}
		if mediaJSON {
			return writeJSON(cmd.OutOrStdout(), media)
		}
		printMedia(cmd.OutOrStdout(), media)
		return nil
	},
}

// mediaRosterCmd represents the media roster command
var mediaRosterCmd = &cobra.Command{
	Use:   "roster <media id>",
	Short: "List every character of a media",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := catalog.ParseMediaID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		roster, err := a.catalog.Roster(cmd.Context(), id)
		if err != nil {
			return err
		}
		if mediaJSON {
			return writeJSON(cmd.OutOrStdout(), catalog.RosterResponse{MediaID: id, Characters: roster})
		}
		printRoster(cmd.OutOrStdout(), roster)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mediaCmd)
	mediaCmd.AddCommand(mediaSearchCmd, mediaRosterCmd)

	mediaSearchCmd.Flags().IntVar(&mediaCount, "count", 10, "Maximum number of results")
	mediaCmd.PersistentFlags().BoolVar(&mediaJSON, "json", false, "Output JSON")
}
