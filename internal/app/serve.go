package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/abhisek/fika/internal/httpapi"
	"github.com/abhisek/fika/internal/notify"
)

// ServeOptions configures Serve.
type ServeOptions struct {
	Version string
	// Sinks receive unlock notifications in addition to the log.
	Sinks []notify.Sink
}

// Serve runs the JSON API, the badge watcher, the unlock announcer and the
// periodic resync until ctx is cancelled, then shuts the server down.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	sink := notify.MultiSink(append([]notify.Sink{notify.LogSink{Log: a.Log}}, opts.Sinks...))
	announcer := notify.NewAnnouncer(notify.AnnouncerOptions{
		Sink:     sink,
		Log:      a.Log.With("component", "announcer"),
		Warmup:   a.Config.Sync.Warmup,
		Debounce: a.Config.Sync.Debounce,
		User:     a.Cache.UserID,
	})
	detach := announcer.Attach(a.Changes, a.Badges)
	defer detach()
	go announcer.Run(ctx)

	a.Badges.Watch(ctx, a.Changes)

	if interval := a.Config.Sync.ResyncInterval; interval > 0 && !a.Config.Offline() {
		resync := NewResyncer(a.Cache, a.Reconciler, a.Log.With("component", "resync"))
		if err := resync.Start(ctx, interval); err != nil {
			return fmt.Errorf("schedule resync: %w", err)
		}
		defer resync.Stop()
	}

	api := httpapi.NewServer(httpapi.Deps{
		Cache:      a.Cache,
		Reconciler: a.Reconciler,
		Badges:     a.Badges,
		Log:        a.Log.With("component", "http"),
		Version:    opts.Version,
	})
	srv := &http.Server{
		Addr:              a.Config.HTTPAddr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	announcer.Settle(shutdownCtx)
	return nil
}
