package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/fika/internal/spacedrep"
	"github.com/abhisek/fika/internal/ui/theme"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List vocabulary due for review",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, closeApp, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp()

		now := time.Now()
		due := spacedrep.Due(a.Cache.Progress(), now, limit)
		if len(due) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), theme.Hint.Render("Nothing to review. Bra jobbat!"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Heading.Render("Due for review"))
		for _, rs := range due {
			line := fmt.Sprintf("%-20s stage %d", rs.Word, rs.Stage)
			if rs.Status(now) == spacedrep.ReviewOverdue {
				line = theme.Warning.Render(line + "  overdue")
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	wordsCmd.Flags().Int("limit", 20, "Maximum number of words to list (0 for all)")
}
