package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fika/internal/app"
	"github.com/abhisek/fika/internal/config"
	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "fika",
	Short:        "Swedish practice tracker",
	Long:         "Fika tracks Swedish practice: XP, streaks, topic scores, word reviews and badges.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProgress(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the device SQLite database (overrides FIKA_DB env var)")
	rootCmd.PersistentFlags().String("remote", "", "Remote profile database DSN (overrides FIKA_REMOTE_DSN env var)")
	rootCmd.PersistentFlags().String("env-file", "", "Load environment variables from this file (default ./.env if present)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(xpCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return cfg, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return cfg, err
	}
	cfg.DBPath = dbPath
	if dsn, _ := cmd.Flags().GetString("remote"); dsn != "" {
		cfg.RemoteDSN = dsn
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FIKA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openApp builds the App for one command. The caller must call the
// returned close function, which flushes queued remote writes.
func openApp(cmd *cobra.Command) (*app.App, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	a, err := app.New(cmd.Context(), app.Options{Config: cfg, Log: log})
	if err != nil {
		log.Sync()
		return nil, nil, err
	}
	closeFn := func() {
		if err := a.Close(); err != nil {
			log.Warn("close app", "error", err)
		}
		log.Sync()
	}
	return a, closeFn, nil
}
