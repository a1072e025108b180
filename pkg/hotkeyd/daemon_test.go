package hotkeyd

import (
	"codeberg.org/seppun/seppun-kb/pkg/grab"
	"codeberg.org/seppun/seppun-kb/pkg/keyboard"
	"codeberg.org/seppun/seppun-kb/pkg/xkb"
	"context"
	"errors"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/coreos/go-systemd/v22/daemon"
	"reflect"
	"testing"
	"time"
)

const superShift = xproto.KeyButMaskMod4 | xproto.KeyButMaskShift

func TestStartInstallsGrabs(t *testing.T) {
	h := newHarness(t, "Super+Shift+t=xterm\nctrl+space=\n")
	h.start(t)

	want := map[grab.Grab]bool{
		{Keycode: 8, Mods: xproto.ModMask4 | xproto.ModMaskShift}: true,
		{Keycode: 9, Mods: xproto.ModMaskControl}:                 true,
	}
	if !reflect.DeepEqual(h.x.grabbed, want) {
		t.Errorf("grabbed %v, want %v", h.x.grabbed, want)
	}
	if got := h.d.layouts; !reflect.DeepEqual(got, []string{"us", "ru"}) {
		t.Errorf("layouts = %v", got)
	}

	started := h.logs.FilterMessage("seppun-kb started").AllUntimed()
	if len(started) != 1 || started[0].ContextMap()["keycodes"] != "8-10" {
		t.Errorf("start entry = %v", started)
	}
	layouts := h.logs.FilterMessage("keyboard layouts").AllUntimed()
	if len(layouts) != 1 {
		t.Fatalf("logged layouts %d times, want once", len(layouts))
	}
	// without a registry options are logged by their raw names
	options := layouts[0].ContextMap()["options"]
	if !reflect.DeepEqual(options, []interface{}{"grp:alt_shift_toggle"}) {
		t.Errorf("options = %#v", options)
	}
}

func TestStartWithoutKeymap(t *testing.T) {
	h := newHarness(t, "")
	h.loader.errs = []error{errLoad}
	h.start(t)

	if h.d.table.Len() != 0 || len(h.x.grabbed) != 0 {
		t.Errorf("expected empty table and no grabs, got %d bindings and %v", h.d.table.Len(), h.x.grabbed)
	}
}

func TestStartFailsWithoutMapping(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\n")
	h.x.mapErr = errors.New("connection reset")
	if err := h.d.start(); err == nil {
		t.Fatal("expected error")
	}
}

func TestKeyPressRunsEveryMatch(t *testing.T) {
	h := newHarness(t, "Super+Shift+t=xterm\nSuper+t=urxvt\nSuper+Shift+t=notify-send hi\n")
	h.start(t)

	h.send(keyPress(8, superShift))
	h.drain(t)

	want := []string{"xterm", "notify-send hi"}
	if got := h.launcher.commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("launched %v, want %v", got, want)
	}
	if len(h.history.launches) != 2 {
		t.Fatalf("recorded %d launches, want 2", len(h.history.launches))
	}
	first := h.history.launches[0]
	if first.Keys != "Shift+Super+t" || first.PID != 1001 || first.Error != "" {
		t.Errorf("unexpected history entry %+v", first)
	}
	if h.x.flushes != 1 {
		t.Errorf("flushed %d times, want 1", h.x.flushes)
	}
}

func TestKeyPressRequiresExactState(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\n")
	h.start(t)

	h.send(
		keyPress(8, xproto.KeyButMaskMod4|xproto.KeyButMaskMod2),
		keyPress(8, 0),
		keyPress(9, xproto.KeyButMaskMod4),
	)
	h.drain(t)

	if got := h.launcher.commands(); len(got) != 0 {
		t.Errorf("launched %v, want nothing", got)
	}
}

func TestKeyPressWithoutCommand(t *testing.T) {
	h := newHarness(t, "ctrl+space=\n")
	h.start(t)

	h.send(keyPress(9, xproto.KeyButMaskControl))
	h.drain(t)

	if len(h.launcher.commands()) != 0 || len(h.history.launches) != 0 {
		t.Errorf("binding without command ran something: %v", h.launcher.commands())
	}

	entries := h.logs.FilterMessage("No command given").AllUntimed()
	if len(entries) != 1 {
		t.Fatalf("logged %q %d times, want once", "No command given", len(entries))
	}
	if keys := entries[0].ContextMap()["keys"]; keys != "Ctrl+space" {
		t.Errorf("keys = %v, want Ctrl+space", keys)
	}
}

func TestLaunchFailureIsRecorded(t *testing.T) {
	h := newHarness(t, "Super+t=missing-binary\n")
	h.launcher.err = errors.New("executable file not found")
	h.start(t)

	h.send(keyPress(8, xproto.KeyButMaskMod4))
	h.drain(t)

	if len(h.history.launches) != 1 || h.history.launches[0].Error == "" {
		t.Errorf("history = %+v, want one failed launch", h.history.launches)
	}
}

func TestGroupChangeResolvesActiveLayout(t *testing.T) {
	h := newHarness(t, "Super+Cyrillic_ie=dmenu_run\nSuper+Return=xterm\n")
	h.start(t)

	h.send(keyPress(8, xproto.KeyButMaskMod4))
	h.drain(t)
	if len(h.launcher.commands()) != 0 {
		t.Fatal("fired in the first group")
	}

	// the server reports the effective group in bits 13-14 of the event state
	inSecondGroup := uint16(xproto.KeyButMaskMod4 | 1<<13)
	h.send(
		xkb.StateNotifyEvent{DeviceID: 3, Group: 1, LockedGroup: 1},
		keyPress(8, inSecondGroup),
		keyPress(10, inSecondGroup),
	)
	h.drain(t)
	if got := h.launcher.commands(); !reflect.DeepEqual(got, []string{"dmenu_run", "xterm"}) {
		t.Errorf("launched %v after group switch", got)
	}
	if h.d.layoutName(int(h.d.state.Group)) != "ru" {
		t.Errorf("active layout = %q, want ru", h.d.layoutName(int(h.d.state.Group)))
	}
}

func TestStateOfOtherDeviceIgnored(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\n")
	h.start(t)

	h.send(xkb.StateNotifyEvent{DeviceID: 9, Group: 1})
	h.drain(t)
	if h.d.state.Group != 0 {
		t.Errorf("group = %d after foreign state event", h.d.state.Group)
	}
}

func TestReloadAppliesBeforeNextEvent(t *testing.T) {
	h := newHarness(t, "Super+t=old\n", "Super+t=new\nctrl+space=new-space\n")
	h.start(t)

	h.d.flags.RequestReload()
	h.send(keyPress(8, xproto.KeyButMaskMod4))

	if stop, _ := h.d.step(context.Background(), h.events); stop {
		t.Fatal("reload stopped the loop")
	}
	h.drain(t)

	if got := h.launcher.commands(); !reflect.DeepEqual(got, []string{"new"}) {
		t.Errorf("launched %v, want [new]", got)
	}
	if !h.x.grabbed[grab.Grab{Keycode: 9, Mods: xproto.ModMaskControl}] {
		t.Error("binding added by reload was not grabbed")
	}
	if h.loader.calls != 2 {
		t.Errorf("loader called %d times, want 2", h.loader.calls)
	}

	want := []string{daemon.SdNotifyReloading, daemon.SdNotifyReady}
	if !reflect.DeepEqual(h.notifier.states, want) {
		t.Errorf("notified %v, want %v", h.notifier.states, want)
	}
}

func TestReloadRequestsCoalesce(t *testing.T) {
	h := newHarness(t, "Super+t=a\n")
	h.start(t)

	h.d.flags.RequestReload()
	h.d.flags.RequestReload()
	h.d.flags.RequestReload()
	h.d.step(context.Background(), h.events)

	if h.loader.calls != 2 {
		t.Errorf("loader called %d times, want 2", h.loader.calls)
	}
}

func TestFailedReloadKeepsBindings(t *testing.T) {
	h := newHarness(t, "Super+t=old\n", "")
	h.loader.errs = []error{nil, errLoad}
	h.start(t)
	before := len(h.x.grabbed)

	h.d.flags.RequestReload()
	h.d.step(context.Background(), h.events)
	h.send(keyPress(8, xproto.KeyButMaskMod4))
	h.drain(t)

	if got := h.launcher.commands(); !reflect.DeepEqual(got, []string{"old"}) {
		t.Errorf("launched %v, want [old]", got)
	}
	if len(h.x.grabbed) != before {
		t.Errorf("grabs changed from %d to %d", before, len(h.x.grabbed))
	}
}

func TestMappingChangeMovesGrabs(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\n")
	h.start(t)

	// t moves from keycode 8 to keycode 10
	h.x.mapping = keyboard.NewMapping(8, 10, &xproto.GetKeyboardMappingReply{
		KeysymsPerKeycode: 1,
		Keysyms:           []xproto.Keysym{0xff0d, 0x20, 0x74},
	})
	h.send(xproto.MappingNotifyEvent{Request: xproto.MappingKeyboard, FirstKeycode: 8, Count: 3})
	h.drain(t)

	want := map[grab.Grab]bool{{Keycode: 10, Mods: xproto.ModMask4}: true}
	if !reflect.DeepEqual(h.x.grabbed, want) {
		t.Errorf("grabbed %v, want %v", h.x.grabbed, want)
	}

	h.send(keyPress(10, xproto.KeyButMaskMod4))
	h.drain(t)
	if got := h.launcher.commands(); !reflect.DeepEqual(got, []string{"xterm"}) {
		t.Errorf("launched %v after remap", got)
	}
}

func TestPointerMappingNotifyIgnored(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\n")
	h.start(t)
	h.x.mapping = keyboard.NewMapping(8, 8, &xproto.GetKeyboardMappingReply{KeysymsPerKeycode: 1, Keysyms: []xproto.Keysym{0x20}})

	h.send(xproto.MappingNotifyEvent{Request: xproto.MappingPointer})
	h.drain(t)

	if !h.x.grabbed[grab.Grab{Keycode: 8, Mods: xproto.ModMask4}] {
		t.Error("pointer mapping change touched key grabs")
	}
}

func TestNewKeyboardRefreshesState(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\n")
	h.start(t)
	requests := h.x.stateReq

	h.send(xkb.NewKeyboardNotifyEvent{DeviceID: 4, OldDeviceID: 3})
	h.drain(t)

	if h.x.stateReq != requests+1 {
		t.Errorf("state requested %d times, want %d", h.x.stateReq, requests+1)
	}
}

func TestTerminate(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\nalt+Return=rofi\n")
	h.start(t)

	h.d.flags.RequestTerminate()
	stop, err := h.d.step(context.Background(), h.events)
	if !stop || err != nil {
		t.Fatalf("step = %v, %v, want stop without error", stop, err)
	}
	if len(h.x.grabbed) != 0 {
		t.Errorf("grabs left after terminate: %v", h.x.grabbed)
	}
	if h.marker.removed != 1 {
		t.Errorf("marker removed %d times, want 1", h.marker.removed)
	}
	if last := h.notifier.states[len(h.notifier.states)-1]; last != daemon.SdNotifyStopping {
		t.Errorf("last notification %q, want stopping", last)
	}
}

func TestTerminateWinsOverReload(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\n")
	h.start(t)

	h.d.flags.RequestReload()
	h.d.flags.RequestTerminate()
	stop, _ := h.d.step(context.Background(), h.events)
	if !stop || h.loader.calls != 1 {
		t.Errorf("stop = %v, loader calls = %d", stop, h.loader.calls)
	}
}

func TestTerminateWithMarkerFailure(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\n")
	h.marker.err = errors.New("permission denied")
	h.start(t)

	h.d.flags.RequestTerminate()
	stop, err := h.d.step(context.Background(), h.events)
	if !stop || err != nil {
		t.Fatalf("step = %v, %v, want stop without error", stop, err)
	}
	if len(h.x.grabbed) != 0 {
		t.Errorf("grabs left after terminate: %v", h.x.grabbed)
	}
}

func TestContextCancelTerminates(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\n")
	h.start(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stop, err := h.d.step(ctx, h.events)
	if !stop || err != nil {
		t.Fatalf("step = %v, %v", stop, err)
	}
	if len(h.x.grabbed) != 0 || h.marker.removed != 1 {
		t.Errorf("cancel did not clean up: grabs %v, marker removed %d", h.x.grabbed, h.marker.removed)
	}
}

func TestConnectionClosed(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\n")
	h.start(t)

	close(h.events)
	stop, err := h.d.step(context.Background(), h.events)
	if !stop || !errors.Is(err, ErrConnectionClosed) {
		t.Errorf("step = %v, %v, want ErrConnectionClosed", stop, err)
	}
}

func TestRun(t *testing.T) {
	h := newHarness(t, "Super+t=xterm\n")
	h.launcher.notify = make(chan []string, 1)
	defer close(h.x.events)

	errCh := make(chan error, 1)
	go func() { errCh <- h.d.Run(context.Background()) }()

	h.x.events <- keyPress(8, xproto.KeyButMaskMod4)
	select {
	case argv := <-h.launcher.notify:
		if !reflect.DeepEqual(argv, []string{"xterm"}) {
			t.Errorf("launched %v", argv)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("key press not handled")
	}

	h.d.flags.RequestTerminate()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}
