package main

import (
	"codeberg.org/seppun/seppun-kb/pkg/bindfile"
	"codeberg.org/seppun/seppun-kb/pkg/config"
	"codeberg.org/seppun/seppun-kb/pkg/daemonctl"
	"codeberg.org/seppun/seppun-kb/pkg/historystore/json"
	"codeberg.org/seppun/seppun-kb/pkg/historystore/memory"
	"codeberg.org/seppun/seppun-kb/pkg/historystore/sqlite"
	"codeberg.org/seppun/seppun-kb/pkg/hotkeyd"
	"codeberg.org/seppun/seppun-kb/pkg/launcher"
	"codeberg.org/seppun/seppun-kb/pkg/watch"
	"codeberg.org/seppun/seppun-kb/pkg/x11"
	"codeberg.org/seppun/seppun-kb/pkg/xkblayouts"
	"context"
	"errors"
	"fmt"
	"github.com/coreos/go-systemd/v22/daemon"
	"go.uber.org/zap"
	"sync"
	"time"
)

func runDaemon(cfg *config.Config, marker *daemonctl.Marker, log *zap.SugaredLogger) error {
	// no-op once the daemon removed it itself
	defer func() {
		_ = marker.Remove()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := x11.Connect(cfg.Display)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Close()

	registry, err := xkblayouts.ParseLayouts(cfg.EvdevXML)
	if err != nil {
		log.Warnw("failed to parse layout registry, layout names will be raw", "path", cfg.EvdevXML, "error", err)
	}

	var wg sync.WaitGroup

	opts := hotkeyd.Options{
		Events:          client,
		Keyboard:        client,
		Grabber:         client,
		Loader:          bindfile.New(cfg.Keymap, log),
		Launcher:        launcher.New(log),
		Flags:           hotkeyd.NewControlFlags(),
		Log:             log,
		Marker:          marker,
		Notifier:        systemdNotifier{log: log},
		PossibleLayouts: registry,
	}

	if cfg.History.Backend != config.BackendNone {
		store, err := openHistory(cfg.History, log)
		if err != nil {
			return fmt.Errorf("open launch history: %w", err)
		}
		opts.History = store

		if jsonStore, ok := store.(*json.LaunchStore); ok {
			// SaveLooper closes the store on return
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := jsonStore.SaveLooper(ctx)
				if err != nil && !errors.Is(err, context.Canceled) {
					log.Errorw("failed to save launch history", "error", err)
				}
			}()
		} else {
			defer store.Close()
		}
	}

	var changes <-chan struct{}
	if cfg.Watch {
		w, err := watch.New(cfg.Keymap, log)
		if err != nil {
			log.Warnw("not watching keymap for changes", "error", err)
		} else {
			defer w.Close()
			changes = w.Changes()

			wg.Add(1)
			go func() {
				defer wg.Done()
				err := w.Run(ctx)
				if err != nil && !errors.Is(err, context.Canceled) {
					log.Warnw("keymap watcher stopped", "error", err)
				}
			}()
		}
	}

	bridge := hotkeyd.NewBridge(opts.Flags, changes, log)
	d := hotkeyd.NewDaemon(opts)

	errChan := make(chan error, 2)
	wg.Add(3)

	go func() {
		defer wg.Done()
		err := d.Run(ctx)
		if err != nil {
			err = fmt.Errorf("run daemon: %w", err)
		}
		errChan <- err
	}()

	go func() {
		defer wg.Done()
		_ = bridge.Run(ctx)
	}()

	go func() {
		defer wg.Done()
		err := systemdNotifyLoop(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			errChan <- fmt.Errorf("systemd notify: %w", err)
		}
	}()

	err = <-errChan
	cancel()
	wg.Wait()

	if err != nil {
		return err
	}
	log.Info("stopped seppun-kb")
	return nil
}

type historyStore interface {
	hotkeyd.LaunchStore
	Close() error
}

func openHistory(cfg config.HistoryConfig, log *zap.SugaredLogger) (historyStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := sqlite.NewLaunchStore(cfg.Path, cfg.Retention, log)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", cfg.Path, err)
		}
		return store, nil
	case config.BackendJSON:
		store, err := json.NewLaunchStore(cfg.Path, cfg.Retention)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", cfg.Path, err)
		}
		return store, nil
	case config.BackendMemory:
		return memory.NewLaunchStore(cfg.Retention), nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.Backend)
	}
}

type systemdNotifier struct {
	log *zap.SugaredLogger
}

func (n systemdNotifier) Notify(state string) {
	_, err := daemon.SdNotify(false, state)
	if err != nil {
		n.log.Warnw("failed to notify systemd", "state", state, "error", err)
	}
}

// systemdNotifyLoop pings the systemd watchdog. Readiness is reported by the
// daemon itself once its grabs are installed.
func systemdNotifyLoop(ctx context.Context) error {
	supported, err := daemon.SdNotify(false, "STATUS=Watching the keyboard")
	if err != nil {
		return fmt.Errorf("notify systemd: %w", err)
	}
	if !supported {
		return nil
	}

	t, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("check watchdog: %w", err)
	}
	// if watchdog is not enabled, we don't need to notify it
	if t == 0 {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-time.After(t / 2):
			_, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			if err != nil {
				return fmt.Errorf("notify watchdog: %w", err)
			}
		}
	}
}
