package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var healthJSON bool

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that every dependency is reachable",
	Long:  `Pings the collection service, the media catalog, object storage and the snapshot database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		report := a.checkHealth(cmd.Context())
		if healthJSON {
			if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
		} else {
			printHealth(cmd.OutOrStdout(), report)
		}

		if !report.Healthy {
			return errors.New("one or more dependencies are down")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(healthCmd)
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "Output JSON")
}
