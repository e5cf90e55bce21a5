package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login USER",
	Short: "Attach a user and merge their cloud progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeApp, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp()

		s, err := a.Reconciler.LoadCloudProgress(cmd.Context(), args[0])
		if err != nil {
			a.Log.Warn("cloud progress unavailable", "user", args[0], "error", err)
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (offline, using local progress)\n", s.UserID)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s: %d XP, %d day streak, %d topics\n",
			s.UserID, s.XP, s.Streak, len(s.CompletedTopics))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear local progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeApp, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp()

		if a.Cache.UserID() == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
			return nil
		}
		a.Cache.SetUserID(cmd.Context(), "")
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}
