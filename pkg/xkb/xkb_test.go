package xkb

import (
	"github.com/BurntSushi/xgb"
	"testing"
)

func TestEventNewDispatchesOnXkbType(t *testing.T) {
	buf := make([]byte, 32)
	buf[0] = 85
	buf[1] = StateNotify
	xgb.Put16(buf[2:], 7)
	buf[8] = 3
	buf[9] = 0x41
	buf[13] = 1
	xgb.Put16(buf[14:], 0xffff)
	buf[18] = 1
	buf[28] = 38

	ev, ok := eventNew(buf).(StateNotifyEvent)
	if !ok {
		t.Fatalf("eventNew returned %T, want StateNotifyEvent", eventNew(buf))
	}
	if ev.DeviceID != 3 || ev.Mods != 0x41 || ev.Group != 1 || ev.LockedGroup != 1 || ev.Keycode != 38 {
		t.Errorf("unexpected fields: %+v", ev)
	}
	if ev.BaseGroup != -1 {
		t.Errorf("BaseGroup = %d, want -1", ev.BaseGroup)
	}

	buf[1] = MapNotify
	if _, ok := eventNew(buf).(MapNotifyEvent); !ok {
		t.Errorf("MapNotify decoded as %T", eventNew(buf))
	}
	buf[1] = NewKeyboardNotify
	if _, ok := eventNew(buf).(NewKeyboardNotifyEvent); !ok {
		t.Errorf("NewKeyboardNotify decoded as %T", eventNew(buf))
	}
	buf[1] = 11
	if ev, ok := eventNew(buf).(UnknownEvent); !ok || ev.XkbType != 11 {
		t.Errorf("unknown xkb type decoded as %#v", eventNew(buf))
	}
}

func TestStateNotifyBytes(t *testing.T) {
	want := StateNotifyEvent{
		Sequence:     12,
		DeviceID:     3,
		BaseMods:     0x40,
		LockedMods:   0x10,
		Group:        1,
		LatchedGroup: -1,
		Keycode:      24,
		Changed:      0x20,
	}
	got := StateNotifyEventNew(want.Bytes())
	if got != want {
		t.Errorf("decoded %+v, want %+v", got, want)
	}
}

func TestGetStateReply(t *testing.T) {
	buf := make([]byte, 32)
	buf[0] = 1
	buf[1] = 3
	buf[8] = 0x44
	buf[9] = 0x40
	buf[11] = 0x04
	buf[12] = 2
	buf[13] = 2

	r := getStateReply(buf)
	if r.DeviceID != 3 || r.Mods != 0x44 || r.BaseMods != 0x40 || r.LockedMods != 0x04 || r.Group != 2 || r.LockedGroup != 2 {
		t.Errorf("unexpected reply: %+v", r)
	}
}
