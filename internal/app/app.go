// Package app wires the stores, progress cache and badge services into one
// process and runs the long-lived `fika serve` mode.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/changes"
	"github.com/abhisek/fika/internal/config"
	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/progress"
	"github.com/abhisek/fika/internal/store"
)

// Options holds the dependencies needed to build an App.
type Options struct {
	Config config.Config
	Log    *logger.Logger
	Clock  func() time.Time
}

// App owns every long-lived component of one fika process.
type App struct {
	Config     config.Config
	Log        *logger.Logger
	Device     *store.Store
	Remote     *store.Store
	Changes    *changes.Notifier
	Mirror     *progress.Mirror
	Cache      *progress.Cache
	Reconciler *progress.Reconciler
	Badges     *badges.Synchronizer

	ownsRemote bool
}

// New opens the device database and, when configured, the remote profile
// database. Without a remote DSN the device database also holds the
// profile tables, so a single machine works fully offline.
func New(ctx context.Context, opts Options) (*App, error) {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	cfg := opts.Config

	dbPath := cfg.DBPath
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		dbPath = p
	} else if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("create DB dir: %w", err)
	}

	device, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open device store: %w", err)
	}

	a := &App{
		Config:  cfg,
		Log:     log,
		Device:  device,
		Remote:  device,
		Changes: changes.New(),
	}
	if !cfg.Offline() {
		remote, err := store.Open(cfg.RemoteDSN)
		if err != nil {
			device.Close()
			return nil, fmt.Errorf("open remote store: %w", err)
		}
		a.Remote = remote
		a.ownsRemote = true
	}

	profiles := a.Remote.ProfileRepo()
	a.Mirror = progress.NewMirror(ctx, progress.DefaultMirrorQueue, log.With("component", "mirror"))
	a.Cache = progress.NewCache(ctx, progress.Options{
		Device:  device.DeviceRepo(),
		Remote:  profiles,
		Changes: a.Changes,
		Mirror:  a.Mirror,
		Clock:   opts.Clock,
		Log:     log.With("component", "progress"),
	})
	a.Reconciler = progress.NewReconciler(a.Cache, profiles, log.With("component", "reconciler"))
	a.Badges = badges.NewSynchronizer(badges.SyncOptions{
		Remote:   profiles,
		Progress: a.Cache,
		Log:      log.With("component", "badges"),
		Clock:    opts.Clock,
		NextCap:  cfg.Sync.NextBadges,
	})
	return a, nil
}

// Content returns the catalog repository of the profile database.
func (a *App) Content() store.ContentRepo {
	return a.Remote.ContentRepo()
}

// Close flushes queued remote writes and closes the databases.
func (a *App) Close() error {
	a.Mirror.Close()
	var err error
	if a.ownsRemote {
		err = a.Remote.Close()
	}
	if derr := a.Device.Close(); derr != nil && err == nil {
		err = derr
	}
	return err
}
