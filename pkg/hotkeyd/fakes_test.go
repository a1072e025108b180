package hotkeyd

import (
	"codeberg.org/seppun/seppun-kb/pkg/binding"
	"codeberg.org/seppun/seppun-kb/pkg/grab"
	"codeberg.org/seppun/seppun-kb/pkg/keyboard"
	"codeberg.org/seppun/seppun-kb/pkg/xkb"
	"context"
	"errors"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"strings"
	"sync"
	"testing"
)

// fakeX stands in for the X server connection.
type fakeX struct {
	events   chan xgb.Event
	mapping  *keyboard.Mapping
	state    *keyboard.State
	kb       Keyboard
	grabbed  map[grab.Grab]bool
	flushes  int
	mapErr   error
	stateReq int
}

func newFakeX(mapping *keyboard.Mapping) *fakeX {
	return &fakeX{
		events:  make(chan xgb.Event, 16),
		mapping: mapping,
		state:   keyboard.NewState(&xkb.GetStateReply{DeviceID: 3}),
		kb:      Keyboard{Model: "pc105", Layouts: []string{"us", "ru"}, Variants: []string{"", ""}, Options: []string{"grp:alt_shift_toggle"}},
		grabbed: make(map[grab.Grab]bool),
	}
}

func (f *fakeX) WaitForEvent() (xgb.Event, xgb.Error) {
	ev, ok := <-f.events
	if !ok {
		return nil, nil
	}
	return ev, nil
}

func (f *fakeX) Flush() { f.flushes++ }

func (f *fakeX) KeyboardMapping() (*keyboard.Mapping, error) {
	if f.mapErr != nil {
		return nil, f.mapErr
	}
	return f.mapping, nil
}

func (f *fakeX) KeyboardState() (*keyboard.State, error) {
	f.stateReq++
	s := *f.state
	return &s, nil
}

func (f *fakeX) GetKeyboard() (Keyboard, error) { return f.kb, nil }

func (f *fakeX) GrabKey(keycode xproto.Keycode, mods binding.Modifiers) error {
	f.grabbed[grab.Grab{Keycode: keycode, Mods: mods}] = true
	return nil
}

func (f *fakeX) UngrabKey(keycode xproto.Keycode, mods binding.Modifiers) error {
	delete(f.grabbed, grab.Grab{Keycode: keycode, Mods: mods})
	return nil
}

type fakeLoader struct {
	keymaps []string
	errs    []error
	calls   int
}

func (f *fakeLoader) Load() (binding.Table, error) {
	i := f.calls
	if i >= len(f.keymaps) {
		i = len(f.keymaps) - 1
	}
	f.calls++

	if i < len(f.errs) && f.errs[i] != nil {
		return binding.Table{}, f.errs[i]
	}
	table, _, err := binding.Read(strings.NewReader(f.keymaps[i]))
	return table, err
}

type fakeLauncher struct {
	mu       sync.Mutex
	launched [][]string
	err      error
	notify   chan []string
}

func (f *fakeLauncher) Launch(argv []string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.launched = append(f.launched, argv)
	if f.notify != nil {
		f.notify <- argv
	}
	return 1000 + len(f.launched), nil
}

func (f *fakeLauncher) commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, argv := range f.launched {
		out = append(out, strings.Join(argv, " "))
	}
	return out
}

type fakeHistory struct {
	launches []Launch
}

func (f *fakeHistory) RecordLaunch(_ context.Context, launch Launch) error {
	f.launches = append(f.launches, launch)
	return nil
}

func (f *fakeHistory) RecentLaunches(_ context.Context, limit int) ([]Launch, error) {
	return f.launches, nil
}

type fakeMarker struct {
	removed int
	err     error
}

func (f *fakeMarker) Remove() error {
	f.removed++
	return f.err
}

type fakeNotifier struct {
	states []string
}

func (f *fakeNotifier) Notify(state string) {
	f.states = append(f.states, state)
}

var errLoad = errors.New("keymap unreadable")

// keycodes 8..10 with two groups: t/T + Cyrillic_ie, space, Return
func testMapping() *keyboard.Mapping {
	return keyboard.NewMapping(8, 10, &xproto.GetKeyboardMappingReply{
		KeysymsPerKeycode: 4,
		Keysyms: []xproto.Keysym{
			0x74, 0x54, 0x6c5, 0x6e5,
			0x20, 0, 0, 0,
			0xff0d, 0, 0, 0,
		},
	})
}

type harness struct {
	d        *Daemon
	x        *fakeX
	loader   *fakeLoader
	launcher *fakeLauncher
	history  *fakeHistory
	marker   *fakeMarker
	notifier *fakeNotifier
	logs     *observer.ObservedLogs
	events   chan xEvent
}

func newHarness(t *testing.T, keymaps ...string) *harness {
	t.Helper()
	h := &harness{
		x:        newFakeX(testMapping()),
		loader:   &fakeLoader{keymaps: keymaps},
		launcher: &fakeLauncher{},
		history:  &fakeHistory{},
		marker:   &fakeMarker{},
		notifier: &fakeNotifier{},
		events:   make(chan xEvent, 16),
	}
	core, logs := observer.New(zapcore.DebugLevel)
	h.logs = logs
	h.d = NewDaemon(Options{
		Events:   h.x,
		Keyboard: h.x,
		Grabber:  h.x,
		Loader:   h.loader,
		Launcher: h.launcher,
		Flags:    NewControlFlags(),
		Log:      zap.New(core).Sugar(),
		History:  h.history,
		Marker:   h.marker,
		Notifier: h.notifier,
	})
	return h
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	if err := h.d.start(); err != nil {
		t.Fatal(err)
	}
}

func (h *harness) send(evs ...xgb.Event) {
	for _, ev := range evs {
		h.events <- xEvent{ev: ev}
	}
}

// drain steps the loop until every queued event is handled.
func (h *harness) drain(t *testing.T) {
	t.Helper()
	for i := 0; len(h.events) > 0; i++ {
		if i > 64 {
			t.Fatal("events not drained")
		}
		stop, err := h.d.step(context.Background(), h.events)
		if stop {
			t.Fatalf("loop stopped unexpectedly: %v", err)
		}
	}
}

func keyPress(keycode xproto.Keycode, state uint16) xproto.KeyPressEvent {
	return xproto.KeyPressEvent{Detail: keycode, State: state, Root: 1, Event: 1}
}
