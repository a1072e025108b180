package hotkeyd

import (
	"context"
	"go.uber.org/zap"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// ControlFlags carries reload and terminate requests from the bridge to the
// daemon loop. Requests are level triggered: several reload requests before
// the loop gets to them collapse into one reload.
type ControlFlags struct {
	reload    atomic.Bool
	terminate atomic.Bool
	wake      chan struct{}
}

func NewControlFlags() *ControlFlags {
	return &ControlFlags{wake: make(chan struct{}, 1)}
}

func (f *ControlFlags) RequestReload() {
	f.reload.Store(true)
	f.poke()
}

func (f *ControlFlags) RequestTerminate() {
	f.terminate.Store(true)
	f.poke()
}

func (f *ControlFlags) poke() {
	select {
	case f.wake <- struct{}{}:
	default:
	}
}

func (f *ControlFlags) takeReload() bool {
	return f.reload.Swap(false)
}

func (f *ControlFlags) takeTerminate() bool {
	return f.terminate.Swap(false)
}

// Bridge turns signals and keymap file changes into control requests.
type Bridge struct {
	flags   *ControlFlags
	changes <-chan struct{}
	log     *zap.SugaredLogger
}

// NewBridge creates a bridge. changes may be nil when the keymap is not
// watched.
func NewBridge(flags *ControlFlags, changes <-chan struct{}, log *zap.SugaredLogger) *Bridge {
	return &Bridge{flags: flags, changes: changes, log: log}
}

func (b *Bridge) Run(ctx context.Context) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigs)

	return b.listen(ctx, sigs)
}

func (b *Bridge) listen(ctx context.Context, sigs <-chan os.Signal) error {
	changes := b.changes
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-sigs:
			if sig == syscall.SIGHUP {
				b.log.Infow("received signal, reloading keymap", "signal", sig.String())
				b.flags.RequestReload()
				continue
			}
			b.log.Infow("received signal, shutting down", "signal", sig.String())
			b.flags.RequestTerminate()
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			b.log.Infow("keymap changed on disk, reloading")
			b.flags.RequestReload()
		}
	}
}
