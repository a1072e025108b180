// Package keyboard holds the keycode to keysym mapping and the XKB state
// needed to resolve key events.
package keyboard

import (
	"codeberg.org/seppun/seppun-kb/pkg/keysym"
	"github.com/BurntSushi/xgb/xproto"
)

// Mapping is a snapshot of the core keyboard mapping.
type Mapping struct {
	min, max   xproto.Keycode
	perKeycode int
	syms       []xproto.Keysym
}

func NewMapping(min, max xproto.Keycode, reply *xproto.GetKeyboardMappingReply) *Mapping {
	m := &Mapping{min: min, max: max}
	if reply != nil {
		m.perKeycode = int(reply.KeysymsPerKeycode)
		m.syms = reply.Keysyms
	}
	return m
}

func (m *Mapping) MinKeycode() xproto.Keycode { return m.min }

func (m *Mapping) MaxKeycode() xproto.Keycode { return m.max }

// Keysym returns the symbol in the given column of a keycode's row, or
// NoSymbol when either is out of range.
func (m *Mapping) Keysym(keycode xproto.Keycode, column int) xproto.Keysym {
	if keycode < m.min || keycode > m.max || column < 0 || column >= m.perKeycode {
		return keysym.NoSymbol
	}
	i := int(keycode-m.min)*m.perKeycode + column
	if i >= len(m.syms) {
		return keysym.NoSymbol
	}
	return m.syms[i]
}

// Primary returns the first-group, first-level symbol of a keycode.
func (m *Mapping) Primary(keycode xproto.Keycode) xproto.Keysym {
	return m.Keysym(keycode, 0)
}

// Lookup returns the first-level symbol of a keycode in the given group.
// The core mapping only exposes the first two groups; other groups, and
// positions the group leaves empty, fall back to the first group.
func (m *Mapping) Lookup(keycode xproto.Keycode, group int) xproto.Keysym {
	if group > 0 && group < 2 {
		if sym := m.Keysym(keycode, 2*group); sym != keysym.NoSymbol {
			return sym
		}
	}
	return m.Primary(keycode)
}

// Each calls fn for every keycode in the inclusive range with its primary
// symbol.
func (m *Mapping) Each(fn func(keycode xproto.Keycode, sym xproto.Keysym)) {
	for kc := int(m.min); kc <= int(m.max); kc++ {
		fn(xproto.Keycode(kc), m.Primary(xproto.Keycode(kc)))
	}
}
