package keyboard

import (
	"codeberg.org/seppun/seppun-kb/pkg/keysym"
	"codeberg.org/seppun/seppun-kb/pkg/xkb"
	"github.com/BurntSushi/xgb/xproto"
	"testing"
)

// keycodes 8..10 with two groups: t/T + Cyrillic_ie, space, Return
func testMapping() *Mapping {
	return NewMapping(8, 10, &xproto.GetKeyboardMappingReply{
		KeysymsPerKeycode: 4,
		Keysyms: []xproto.Keysym{
			0x74, 0x54, 0x6c5, 0x6e5,
			0x20, 0, 0, 0,
			0xff0d, 0, 0, 0,
		},
	})
}

func TestMappingEachIsInclusive(t *testing.T) {
	m := testMapping()
	var seen []xproto.Keycode
	m.Each(func(kc xproto.Keycode, sym xproto.Keysym) {
		seen = append(seen, kc)
	})
	if len(seen) != 3 || seen[0] != 8 || seen[2] != 10 {
		t.Errorf("Each visited %v, want [8 9 10]", seen)
	}
}

func TestMappingEachFullRange(t *testing.T) {
	m := NewMapping(250, 255, &xproto.GetKeyboardMappingReply{KeysymsPerKeycode: 1, Keysyms: make([]xproto.Keysym, 6)})
	n := 0
	m.Each(func(xproto.Keycode, xproto.Keysym) { n++ })
	if n != 6 {
		t.Errorf("Each visited %d keycodes, want 6", n)
	}
}

func TestMappingLookup(t *testing.T) {
	m := testMapping()
	tests := []struct {
		name    string
		keycode xproto.Keycode
		group   int
		want    xproto.Keysym
	}{
		{"first group", 8, 0, 0x74},
		{"second group", 8, 1, 0x6c5},
		{"empty second group falls back", 9, 1, 0x20},
		{"third group falls back", 8, 2, 0x74},
		{"below range", 7, 0, keysym.NoSymbol},
		{"above range", 11, 0, keysym.NoSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Lookup(tt.keycode, tt.group); got != tt.want {
				t.Errorf("Lookup(%d, %d) = %#x, want %#x", tt.keycode, tt.group, got, tt.want)
			}
		})
	}
}

func TestStateApplyAndResolve(t *testing.T) {
	m := testMapping()
	s := NewState(&xkb.GetStateReply{DeviceID: 3})

	if got := s.Resolve(m, 8); got != 0x74 {
		t.Errorf("Resolve = %#x, want t", got)
	}

	if s.Apply(xkb.StateNotifyEvent{DeviceID: 4, Group: 1}) {
		t.Error("Apply accepted an event for another device")
	}
	if s.Group != 0 {
		t.Errorf("Group changed to %d by foreign event", s.Group)
	}

	if !s.Apply(xkb.StateNotifyEvent{DeviceID: 3, Group: 1, LockedGroup: 1, BaseMods: 0x40, LockedMods: 0x10}) {
		t.Fatal("Apply rejected an event for the tracked device")
	}
	if got := s.Resolve(m, 8); got != 0x6c5 {
		t.Errorf("Resolve after group switch = %#x, want Cyrillic_ie", got)
	}
	if got := s.Mods(); got != 0x50 {
		t.Errorf("Mods() = %#x, want 0x50", got)
	}
}
