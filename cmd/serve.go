package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/fika/internal/app"
	"github.com/abhisek/fika/internal/notify"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API with background badge sync",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, closeApp, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			a.Config.HTTPAddr = addr
		}

		var sinks []notify.Sink
		if addr := a.Config.Redis.Addr; addr != "" {
			rs, err := notify.NewRedisSink(ctx, addr, a.Config.Redis.Channel)
			if err != nil {
				return fmt.Errorf("connect redis: %w", err)
			}
			defer rs.Close()
			sinks = append(sinks, rs)
		}

		return a.Serve(ctx, app.ServeOptions{Version: version, Sinks: sinks})
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides FIKA_HTTP_ADDR env var)")
}
