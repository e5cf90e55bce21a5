package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/fika/internal/app"
	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/notify"
	"github.com/abhisek/fika/internal/progress"
	"github.com/abhisek/fika/internal/ui/components"
)

const cardWidth = 48

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show XP, streak and topic scores",
	Args:  cobra.NoArgs,
	RunE:  runProgress,
}

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record today's practice for the streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withActivity(cmd, func(ctx context.Context, a *app.App) error {
			return nil
		})
	},
}

var xpCmd = &cobra.Command{
	Use:   "xp AMOUNT",
	Short: "Add bonus XP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil || amount <= 0 {
			return fmt.Errorf("invalid XP amount %q", args[0])
		}
		return withActivity(cmd, func(ctx context.Context, a *app.App) error {
			a.Cache.AddXP(ctx, amount)
			return nil
		})
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete TOPIC SCORE TOTAL",
	Short: "Record a topic attempt",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid score %q", args[1])
		}
		total, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid total %q", args[2])
		}
		if total <= 0 || score < 0 {
			return progress.ErrInvalidScore
		}
		return withActivity(cmd, func(ctx context.Context, a *app.App) error {
			if _, err := a.Cache.MarkTopicComplete(ctx, args[0], score, total); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d%% (+%d XP)\n",
				args[0], progress.Percent(score, total), score*progress.XPPerPoint)
			return nil
		})
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review WORD",
	Short: "Record a vocabulary review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wrong, _ := cmd.Flags().GetBool("wrong")
		return withActivity(cmd, func(ctx context.Context, a *app.App) error {
			s := a.Cache.RecordWordAttempt(ctx, args[0], !wrong)
			if rec, ok := s.WordHistory[args[0]]; ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d correct, %d wrong\n", args[0], rec.Correct, rec.Wrong)
			}
			return nil
		})
	},
}

func init() {
	reviewCmd.Flags().Bool("wrong", false, "Record the answer as wrong")
}

func runProgress(cmd *cobra.Command, args []string) error {
	a, closeApp, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp()
	fmt.Fprintln(cmd.OutOrStdout(), components.ProgressSummary(a.Cache.Progress(), cardWidth))
	return nil
}

// withActivity checks in for the day, runs fn, and announces any badge
// that fn unlocked. The check-in comes first so the streak sees the
// previous activity time.
func withActivity(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	a, closeApp, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp()
	ctx := cmd.Context()

	before := unlockedSet(ctx, a)
	a.Cache.IncrementStreak(ctx)
	if err := fn(ctx, a); err != nil {
		return err
	}

	st, err := a.Badges.Refresh(ctx)
	if err != nil {
		a.Log.Warn("badge refresh failed", "error", err)
	}
	announce(ctx, cmd.OutOrStdout(), a, newlyUnlocked(before, st))

	s := a.Cache.Progress()
	fmt.Fprintf(cmd.OutOrStdout(), "⭐ %d XP  🔥 %d day streak\n", s.XP, s.Streak)
	return nil
}

func unlockedSet(ctx context.Context, a *app.App) map[string]bool {
	st, err := a.Badges.Refresh(ctx)
	if err != nil {
		a.Log.Debug("initial badge refresh failed", "error", err)
	}
	set := make(map[string]bool, len(st.Unlocked))
	for _, b := range st.Unlocked {
		set[b.ID] = true
	}
	return set
}

func newlyUnlocked(before map[string]bool, st badges.Status) []badges.WithStatus {
	var out []badges.WithStatus
	for _, b := range st.Unlocked {
		if !before[b.ID] {
			out = append(out, b)
		}
	}
	return out
}

func announce(ctx context.Context, w io.Writer, a *app.App, unlocked []badges.WithStatus) {
	sink := &notify.WriterSink{W: w}
	now := time.Now()
	for _, b := range unlocked {
		if err := sink.Send(ctx, notify.FromBadge(a.Cache.UserID(), b, now)); err != nil {
			a.Log.Warn("print unlock", "badge", b.ID, "error", err)
		}
	}
}
