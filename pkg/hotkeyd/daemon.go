// Package hotkeyd is the hotkey daemon: it keeps key grabs in sync with the
// keymap and the keyboard mapping and runs commands for matching key presses.
package hotkeyd

import (
	"codeberg.org/seppun/seppun-kb/pkg/binding"
	"codeberg.org/seppun/seppun-kb/pkg/grab"
	"codeberg.org/seppun/seppun-kb/pkg/keyboard"
	"codeberg.org/seppun/seppun-kb/pkg/keysym"
	"codeberg.org/seppun/seppun-kb/pkg/xkb"
	"codeberg.org/seppun/seppun-kb/pkg/xkblayouts"
	"context"
	"errors"
	"fmt"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/coreos/go-systemd/v22/daemon"
	"go.uber.org/zap"
	"time"
)

var ErrConnectionClosed = errors.New("x11 connection closed")

type Options struct {
	Events   EventSource
	Keyboard KeyboardSource
	Grabber  grab.Grabber
	Loader   BindingLoader
	Launcher Launcher
	Flags    *ControlFlags
	Log      *zap.SugaredLogger

	// optional
	History         LaunchStore
	Marker          Marker
	Notifier        Notifier
	PossibleLayouts *xkblayouts.XkbConfigRegistry
}

// Daemon owns the binding table, the grab set, the keyboard mapping and the
// keyboard state. All of them are only touched from the goroutine running Run.
type Daemon struct {
	events          EventSource
	keyboard        KeyboardSource
	grabs           *grab.Manager
	loader          BindingLoader
	launcher        Launcher
	flags           *ControlFlags
	history         LaunchStore
	marker          Marker
	notifier        Notifier
	possibleLayouts *xkblayouts.XkbConfigRegistry
	log             *zap.SugaredLogger

	table   binding.Table
	mapping *keyboard.Mapping
	state   *keyboard.State
	layouts []string
}

func NewDaemon(opts Options) *Daemon {
	return &Daemon{
		events:          opts.Events,
		keyboard:        opts.Keyboard,
		grabs:           grab.NewManager(opts.Grabber, opts.Log),
		loader:          opts.Loader,
		launcher:        opts.Launcher,
		flags:           opts.Flags,
		history:         opts.History,
		marker:          opts.Marker,
		notifier:        opts.Notifier,
		possibleLayouts: opts.PossibleLayouts,
		log:             opts.Log,
	}
}

type xEvent struct {
	ev  xgb.Event
	err xgb.Error
}

// Run installs the grabs and processes events until termination is requested,
// ctx is done or the connection closes.
func (d *Daemon) Run(ctx context.Context) error {
	err := d.start()
	if err != nil {
		return err
	}
	d.notify(daemon.SdNotifyReady)

	done := make(chan struct{})
	defer close(done)
	events := d.readEvents(done)

	for {
		stop, err := d.step(ctx, events)
		if stop {
			return err
		}
	}
}

func (d *Daemon) readEvents(done <-chan struct{}) <-chan xEvent {
	ch := make(chan xEvent)
	go func() {
		defer close(ch)
		for {
			ev, err := d.events.WaitForEvent()
			if ev == nil && err == nil {
				return
			}

			select {
			case ch <- xEvent{ev: ev, err: err}:
			case <-done:
				return
			}
		}
	}()
	return ch
}

func (d *Daemon) start() error {
	mapping, err := d.keyboard.KeyboardMapping()
	if err != nil {
		return fmt.Errorf("initial keyboard mapping: %w", err)
	}
	state, err := d.keyboard.KeyboardState()
	if err != nil {
		return fmt.Errorf("initial keyboard state: %w", err)
	}
	d.mapping, d.state = mapping, state

	table, err := d.loader.Load()
	if err != nil {
		d.log.Warnw("failed to load keymap, starting without bindings", "error", err)
	} else {
		d.table = table
	}

	n := d.grabs.Install(d.table, d.mapping)
	d.log.Infow("seppun-kb started",
		"bindings", d.table.Len(),
		"grabs", n,
		"device", d.state.DeviceID,
		"keycodes", fmt.Sprintf("%d-%d", d.mapping.MinKeycode(), d.mapping.MaxKeycode()),
	)
	d.refreshLayouts()

	return nil
}

// step handles pending control requests first, then at most one event.
func (d *Daemon) step(ctx context.Context, events <-chan xEvent) (bool, error) {
	if d.flags.takeTerminate() {
		return true, d.terminate()
	}
	if d.flags.takeReload() {
		d.reload()
		return false, nil
	}

	select {
	case <-ctx.Done():
		d.log.Infow("shutting down", "reason", ctx.Err())
		return true, d.terminate()
	case <-d.flags.wake:
		return false, nil
	case e, ok := <-events:
		if !ok {
			d.removeMarker()
			return true, ErrConnectionClosed
		}
		d.handle(ctx, e)
		d.events.Flush()
		return false, nil
	}
}

func (d *Daemon) handle(ctx context.Context, e xEvent) {
	if e.err != nil {
		d.log.Warnw("x11 error", "error", e.err)
	}
	if e.ev == nil {
		return
	}

	switch ev := e.ev.(type) {
	case xproto.KeyPressEvent:
		d.processKeyPress(ctx, ev)
	case xkb.StateNotifyEvent:
		d.processStateChange(ev)
	case xkb.MapNotifyEvent:
		if ev.DeviceID != d.state.DeviceID {
			d.log.Debugw("ignoring map change of another device", "device", ev.DeviceID)
			return
		}
		d.processMappingChange("xkb map notify", false)
	case xkb.NewKeyboardNotifyEvent:
		if ev.DeviceID != d.state.DeviceID && ev.OldDeviceID != d.state.DeviceID {
			d.log.Debugw("ignoring keyboard change of another device", "device", ev.DeviceID)
			return
		}
		d.processMappingChange("new keyboard", true)
	case xproto.MappingNotifyEvent:
		if ev.Request != xproto.MappingKeyboard {
			d.log.Debugw("ignoring mapping notify", "request", ev.Request)
			return
		}
		d.processMappingChange("mapping notify", false)
	default:
		d.log.Debugw("ignoring event", "event", e.ev.String())
	}
}

func (d *Daemon) processKeyPress(ctx context.Context, ev xproto.KeyPressEvent) {
	sym := d.state.Resolve(d.mapping, ev.Detail)
	matches := d.table.Match(ev.State, sym)
	if len(matches) == 0 {
		d.log.Debugw("no binding for key press",
			"keycode", ev.Detail,
			"keysym", keysym.Name(sym),
			"state", ev.State,
		)
		return
	}

	for _, b := range matches {
		d.trigger(ctx, b)
	}
}

func (d *Daemon) trigger(ctx context.Context, b binding.Binding) {
	if !b.HasCommand() {
		d.log.Infow("No command given", "keys", b.Keys())
		return
	}

	launch := Launch{Time: time.Now(), Keys: b.Keys(), Command: b.Command}
	pid, err := d.launcher.Launch(b.Command)
	if err != nil {
		d.log.Errorw("failed to run command", "keys", launch.Keys, "command", b.Command, "error", err)
		launch.Error = err.Error()
	} else {
		d.log.Infow("running command", "keys", launch.Keys, "command", b.Command, "pid", pid)
		launch.PID = pid
	}

	if d.history == nil {
		return
	}
	err = d.history.RecordLaunch(ctx, launch)
	if err != nil {
		d.log.Warnw("failed to record launch", "error", err)
	}
}

func (d *Daemon) processStateChange(ev xkb.StateNotifyEvent) {
	group := d.state.Group
	if !d.state.Apply(ev) {
		d.log.Debugw("ignoring state of another device", "device", ev.DeviceID)
		return
	}

	if d.state.Group != group {
		d.log.Infow("keyboard group changed", "group", d.state.Group, "layout", d.layoutName(int(d.state.Group)))
	}
}

func (d *Daemon) processMappingChange(reason string, refreshState bool) {
	d.grabs.Uninstall(d.table, d.mapping)

	if refreshState {
		state, err := d.keyboard.KeyboardState()
		if err != nil {
			d.log.Warnw("failed to refresh keyboard state", "error", err)
		} else {
			d.state = state
		}
	}

	mapping, err := d.keyboard.KeyboardMapping()
	if err != nil {
		d.log.Errorw("failed to refresh keyboard mapping, keeping the previous one", "error", err)
	} else {
		d.mapping = mapping
	}

	n := d.grabs.Install(d.table, d.mapping)
	d.log.Infow("keyboard mapping changed", "reason", reason, "grabs", n)
	d.refreshLayouts()
}

func (d *Daemon) reload() {
	d.notify(daemon.SdNotifyReloading)
	defer d.notify(daemon.SdNotifyReady)

	table, err := d.loader.Load()
	if err != nil {
		d.log.Errorw("failed to reload keymap, keeping current bindings", "error", err)
		return
	}

	d.grabs.Uninstall(d.table, d.mapping)
	d.table = table
	n := d.grabs.Install(d.table, d.mapping)
	d.log.Infow("reloaded keymap", "bindings", d.table.Len(), "grabs", n)
}

func (d *Daemon) terminate() error {
	d.notify(daemon.SdNotifyStopping)

	n := d.grabs.Uninstall(d.table, d.mapping)
	d.log.Infow("released key grabs", "grabs", n)
	d.removeMarker()

	return nil
}

func (d *Daemon) removeMarker() {
	if d.marker == nil {
		return
	}

	err := d.marker.Remove()
	if err != nil {
		d.log.Errorw("failed to remove pid file", "error", err)
	}
}

func (d *Daemon) notify(state string) {
	if d.notifier != nil {
		d.notifier.Notify(state)
	}
}

func (d *Daemon) refreshLayouts() {
	kb, err := d.keyboard.GetKeyboard()
	if err != nil {
		d.log.Debugw("failed to read keyboard layouts", "error", err)
		return
	}

	d.layouts = make([]string, len(kb.Layouts))
	for i, layout := range kb.Layouts {
		variant := ""
		if i < len(kb.Variants) {
			variant = kb.Variants[i]
		}
		d.layouts[i] = d.possibleLayouts.Describe(layout, variant)
	}

	options := make([]string, len(kb.Options))
	for i, option := range kb.Options {
		options[i] = d.possibleLayouts.DescribeOption(option)
	}

	d.log.Infow("keyboard layouts",
		"model", d.possibleLayouts.DescribeModel(kb.Model),
		"layouts", d.layouts,
		"options", options,
		"active", d.layoutName(int(d.state.Group)),
	)
}

func (d *Daemon) layoutName(group int) string {
	if group < 0 || group >= len(d.layouts) {
		return ""
	}
	return d.layouts[group]
}
