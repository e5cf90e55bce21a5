package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fika/internal/ui/components"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show unlocked badges and the ones closest to unlock",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		a, closeApp, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp()

		st, err := a.Badges.Refresh(cmd.Context())
		if err != nil {
			a.Log.Warn("badge refresh failed", "error", err)
		}
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(st)
		}
		fmt.Fprintln(cmd.OutOrStdout(), components.BadgeBoard(st, cardWidth))
		return nil
	},
}

func init() {
	badgesCmd.Flags().Bool("json", false, "Print the badge status as JSON")
}
