package keyboard

import (
	"codeberg.org/seppun/seppun-kb/pkg/xkb"
	"github.com/BurntSushi/xgb/xproto"
)

// State tracks the XKB modifier and group state of one keyboard device.
type State struct {
	DeviceID     byte
	BaseMods     byte
	LatchedMods  byte
	LockedMods   byte
	BaseGroup    int16
	LatchedGroup int16
	LockedGroup  byte
	// Group is the effective group as computed by the server.
	Group byte
}

func NewState(reply *xkb.GetStateReply) *State {
	return &State{
		DeviceID:     reply.DeviceID,
		BaseMods:     reply.BaseMods,
		LatchedMods:  reply.LatchedMods,
		LockedMods:   reply.LockedMods,
		BaseGroup:    reply.BaseGroup,
		LatchedGroup: reply.LatchedGroup,
		LockedGroup:  reply.LockedGroup,
		Group:        reply.Group,
	}
}

// Apply folds a state notification into the state. Notifications for other
// devices are ignored and reported as false.
func (s *State) Apply(ev xkb.StateNotifyEvent) bool {
	if ev.DeviceID != s.DeviceID {
		return false
	}
	s.BaseMods = ev.BaseMods
	s.LatchedMods = ev.LatchedMods
	s.LockedMods = ev.LockedMods
	s.BaseGroup = ev.BaseGroup
	s.LatchedGroup = ev.LatchedGroup
	s.LockedGroup = ev.LockedGroup
	s.Group = ev.Group
	return true
}

func (s *State) Mods() byte {
	return s.BaseMods | s.LatchedMods | s.LockedMods
}

// Resolve returns the symbol a keycode produces in the current group at the
// first shift level. Modifiers are matched separately, so Shift+t resolves
// to "t" and not "T".
func (s *State) Resolve(m *Mapping, keycode xproto.Keycode) xproto.Keysym {
	return m.Lookup(keycode, int(s.Group))
}
