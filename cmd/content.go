package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage the badge catalog and topic list",
}

var importTopicsCmd = &cobra.Command{
	Use:   "import-topics FILE",
	Short: "Import topics from an .xlsx sheet (topic_id | level | title)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := content.DefaultImportConfig()
		cfg.SheetName, _ = cmd.Flags().GetString("sheet")

		res, err := content.ImportTopics(args[0], cfg)
		if err != nil {
			return err
		}
		for _, msg := range res.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), "skipped:", msg)
		}

		a, closeApp, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp()

		n, err := a.Content().SaveTopics(cmd.Context(), res.Topics)
		if err != nil {
			return fmt.Errorf("save topics: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d topics (%d rows skipped)\n", n, res.Skipped)
		return nil
	},
}

var importBadgesCmd = &cobra.Command{
	Use:   "import-badges FILE",
	Short: "Import a JSON badge catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()

		catalog, err := content.LoadCatalog(f)
		if err != nil {
			return err
		}

		a, closeApp, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp()

		n, err := content.SaveCatalog(cmd.Context(), a.Content(), catalog)
		if err != nil {
			return err
		}
		if unknown := badges.DefaultRules().Missing(catalog); len(unknown) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: no rule for %s; these badges stay locked\n", strings.Join(unknown, ", "))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d badges\n", n)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in badge catalog and topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeApp, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp()

		nb, nt, err := content.Seed(cmd.Context(), a.Content())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d badges and %d topics\n", nb, nt)
		return nil
	},
}

func init() {
	importTopicsCmd.Flags().String("sheet", "", "Sheet name (default: first sheet)")
	contentCmd.AddCommand(importTopicsCmd)
	contentCmd.AddCommand(importBadgesCmd)
	contentCmd.AddCommand(seedCmd)
}
