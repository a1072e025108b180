package binding

import (
	"github.com/BurntSushi/xgb/xproto"
	"strings"
)

// Modifiers is a modifier set encoded for key grab requests.
type Modifiers uint16

// StateMask is a modifier set encoded the way key events report it.
type StateMask uint16

// xkbGroupBits hold the effective XKB group in the state of a core key event
// once the client has enabled the extension. They are not modifiers.
const xkbGroupBits StateMask = 0x6000

type modifier struct {
	name  string
	mods  Modifiers
	state StateMask
}

// in display order
var modifiers = []modifier{
	{"Shift", xproto.ModMaskShift, xproto.KeyButMaskShift},
	{"Ctrl", xproto.ModMaskControl, xproto.KeyButMaskControl},
	{"Alt", xproto.ModMask1, xproto.KeyButMaskMod1},
	{"NumLock", xproto.ModMask2, xproto.KeyButMaskMod2},
	{"Mod3", xproto.ModMask3, xproto.KeyButMaskMod3},
	{"Super", xproto.ModMask4, xproto.KeyButMaskMod4},
	{"Mod5", xproto.ModMask5, xproto.KeyButMaskMod5},
}

var modifierAliases = map[string]int{
	"shift":   0,
	"control": 1,
	"ctrl":    1,
	"alt":     2,
	"mod1":    2,
	"numlock": 3,
	"mod2":    3,
	"mod3":    4,
	"super":   5,
	"mod4":    5,
	"tux":     5,
	"mod5":    6,
}

func lookupModifier(token string) (modifier, bool) {
	i, ok := modifierAliases[strings.ToLower(token)]
	if !ok {
		return modifier{}, false
	}
	return modifiers[i], true
}

func (m Modifiers) String() string {
	var names []string
	for _, mod := range modifiers {
		if m&mod.mods != 0 {
			names = append(names, mod.name)
		}
	}
	return strings.Join(names, "+")
}
