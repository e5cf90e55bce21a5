package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/fika/internal/store"
	"github.com/abhisek/fika/internal/ui/components"
)

var errNotSignedIn = errors.New("not signed in: run `fika login USER` first")

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show this week's XP goal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeApp, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp()

		userID := a.Cache.UserID()
		if userID == "" {
			return errNotSignedIn
		}
		g, err := a.Content().WeeklyGoal(cmd.Context(), userID, store.WeekStart(time.Now()))
		if err != nil {
			return fmt.Errorf("load weekly goal: %w", err)
		}
		if g == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No goal set for this week. Try `fika goal set --xp 500`.")
			return nil
		}
		ratio := 0.0
		if g.TargetXP > 0 {
			ratio = float64(g.XPEarned) / float64(g.TargetXP)
		}
		bar := components.NewProgressBar(fmt.Sprintf("%d/%d XP", g.XPEarned, g.TargetXP), min(ratio, 1), true, cardWidth)
		fmt.Fprintln(cmd.OutOrStdout(), bar.View())
		fmt.Fprintf(cmd.OutOrStdout(), "%d new topics this week\n", g.TopicsCompleted)
		return nil
	},
}

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set this week's XP goal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetInt("xp")
		if target <= 0 {
			return fmt.Errorf("--xp must be positive, got %d", target)
		}

		a, closeApp, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp()

		userID := a.Cache.UserID()
		if userID == "" {
			return errNotSignedIn
		}
		week := store.WeekStart(time.Now())
		if err := a.Content().SetWeeklyGoal(cmd.Context(), userID, week, target); err != nil {
			return fmt.Errorf("set weekly goal: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Goal for week of %s: %d XP\n", week.Format("2006-01-02"), target)
		return nil
	},
}

func init() {
	goalSetCmd.Flags().Int("xp", 0, "Target XP for the week")
	goalCmd.AddCommand(goalSetCmd)
}
