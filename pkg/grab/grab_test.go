package grab

import (
	"codeberg.org/seppun/seppun-kb/pkg/binding"
	"codeberg.org/seppun/seppun-kb/pkg/keyboard"
	"errors"
	"github.com/BurntSushi/xgb/xproto"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"strings"
	"testing"
)

type fakeGrabber struct {
	grabbed    map[Grab]int
	failGrab   map[xproto.Keycode]bool
	ungrabs    int
	failUngrab bool
}

func newFakeGrabber() *fakeGrabber {
	return &fakeGrabber{grabbed: make(map[Grab]int), failGrab: make(map[xproto.Keycode]bool)}
}

func (f *fakeGrabber) GrabKey(keycode xproto.Keycode, mods binding.Modifiers) error {
	if f.failGrab[keycode] {
		return errors.New("BadAccess")
	}
	f.grabbed[Grab{keycode, mods}]++
	return nil
}

func (f *fakeGrabber) UngrabKey(keycode xproto.Keycode, mods binding.Modifiers) error {
	f.ungrabs++
	if f.failUngrab {
		return errors.New("BadValue")
	}
	g := Grab{keycode, mods}
	f.grabbed[g]--
	if f.grabbed[g] == 0 {
		delete(f.grabbed, g)
	}
	return nil
}

// keycodes 8..12: t, space, t (second keyboard row), Return, unbound
func testMapping() *keyboard.Mapping {
	return keyboard.NewMapping(8, 12, &xproto.GetKeyboardMappingReply{
		KeysymsPerKeycode: 2,
		Keysyms: []xproto.Keysym{
			0x74, 0x54,
			0x20, 0,
			0x74, 0x54,
			0xff0d, 0,
			0, 0,
		},
	})
}

func testTable(t *testing.T, keymap string) binding.Table {
	t.Helper()
	table, _, err := binding.Read(strings.NewReader(keymap))
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestInstallGrabsEveryMatchingKeycode(t *testing.T) {
	g := newFakeGrabber()
	m := NewManager(g, zap.NewNop().Sugar())
	table := testTable(t, "Super+Shift+t=xterm\nctrl+space=\nsuper+nosuchkey=x\n")

	n := m.Install(table, testMapping())
	if n != 3 {
		t.Fatalf("Install = %d, want 3", n)
	}

	superShift := binding.Modifiers(xproto.ModMask4 | xproto.ModMaskShift)
	for _, kc := range []xproto.Keycode{8, 10} {
		if !m.Contains(kc, superShift) {
			t.Errorf("keycode %d not grabbed with Super+Shift", kc)
		}
	}
	if !m.Contains(9, xproto.ModMaskControl) {
		t.Error("space not grabbed with Ctrl")
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	g := newFakeGrabber()
	m := NewManager(g, zap.NewNop().Sugar())
	table := testTable(t, "Super+t=xterm\nSuper+t=notify-send t\n")

	m.Install(table, testMapping())
	m.Install(table, testMapping())

	for grab, count := range g.grabbed {
		if count != 1 {
			t.Errorf("%+v grabbed %d times", grab, count)
		}
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestUninstallRestoresEmptySet(t *testing.T) {
	g := newFakeGrabber()
	m := NewManager(g, zap.NewNop().Sugar())
	table := testTable(t, "Super+Shift+t=xterm\nalt+Return=rofi\n")

	m.Install(table, testMapping())
	released := m.Uninstall(table, testMapping())

	if released != 3 {
		t.Errorf("Uninstall = %d, want 3", released)
	}
	if m.Len() != 0 || len(g.grabbed) != 0 {
		t.Errorf("grabs left: manager %v, server %v", m.Active(), g.grabbed)
	}

	// nothing installed, nothing to release
	if n := m.Uninstall(table, testMapping()); n != 0 || g.ungrabs != 3 {
		t.Errorf("second Uninstall released %d, server saw %d ungrabs", n, g.ungrabs)
	}
}

func TestPartialGrabFailure(t *testing.T) {
	g := newFakeGrabber()
	g.failGrab[8] = true
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewManager(g, zap.New(core).Sugar())
	table := testTable(t, "Super+t=xterm\n")

	if n := m.Install(table, testMapping()); n != 1 {
		t.Fatalf("Install = %d, want 1", n)
	}

	failures := logs.FilterMessage("failed to grab key").AllUntimed()
	if len(failures) != 1 {
		t.Fatalf("logged %d grab failures, want 1", len(failures))
	}
	fields := failures[0].ContextMap()
	if failures[0].Level != zapcore.WarnLevel || fields["key"] != "t" || fields["keycode"] != xproto.Keycode(8) {
		t.Errorf("unexpected grab failure entry: %v %v", failures[0].Level, fields)
	}
	if m.Contains(8, xproto.ModMask4) {
		t.Error("failed grab recorded as active")
	}

	// a failed grab must not be released
	m.Uninstall(table, testMapping())
	if g.ungrabs != 1 {
		t.Errorf("server saw %d ungrabs, want 1", g.ungrabs)
	}
}

func TestUninstallForgetsRefusedReleases(t *testing.T) {
	g := newFakeGrabber()
	m := NewManager(g, zap.NewNop().Sugar())
	table := testTable(t, "Super+t=xterm\n")

	m.Install(table, testMapping())
	g.failUngrab = true
	core, logs := observer.New(zapcore.WarnLevel)
	m.log = zap.New(core).Sugar()
	if n := m.Uninstall(table, testMapping()); n != 0 {
		t.Errorf("Uninstall = %d, want 0", n)
	}
	if n := logs.FilterMessage("failed to release key grab").Len(); n != 2 {
		t.Errorf("logged %d release failures, want 2", n)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after refused release, want 0", m.Len())
	}
}

func TestActiveIsSorted(t *testing.T) {
	m := NewManager(newFakeGrabber(), zap.NewNop().Sugar())
	m.Install(testTable(t, "alt+Return=a\nSuper+t=b\nctrl+space=c\n"), testMapping())

	active := m.Active()
	for i := 1; i < len(active); i++ {
		if active[i-1].Keycode > active[i].Keycode {
			t.Fatalf("Active() not sorted: %v", active)
		}
	}
}
