// Package keysym maps X keysym names to values and back.
package keysym

import (
	"fmt"
	"github.com/BurntSushi/xgb/xproto"
	"strconv"
	"strings"
	"unicode"
)

// NoSymbol is the keysym of an unbound position or an unknown name.
const NoSymbol xproto.Keysym = 0

const unicodeOffset = 0x01000000

type entry struct {
	name string
	sym  xproto.Keysym
}

var (
	byName = make(map[string]xproto.Keysym, len(table))
	bySym  = make(map[xproto.Keysym]string, len(table))
)

func init() {
	for _, e := range table {
		if _, ok := byName[e.name]; !ok {
			byName[e.name] = e.sym
		}
		if _, ok := bySym[e.sym]; !ok {
			bySym[e.sym] = e.name
		}
	}
}

// FromName resolves a keysym name. Lookup is case-sensitive ("t" and "T" are
// different keys). Besides the names in the table it accepts "0x" prefixed
// hex values and Unicode code points written as "U20AC" or "U+20AC".
// NoSymbol is returned for anything it cannot resolve.
func FromName(name string) xproto.Keysym {
	if sym, ok := byName[name]; ok {
		return sym
	}

	switch {
	case strings.HasPrefix(name, "U") && len(name) > 1:
		digits := strings.TrimPrefix(name[1:], "+")
		cp, err := strconv.ParseUint(digits, 16, 32)
		if err != nil || cp == 0 || cp > unicode.MaxRune {
			return NoSymbol
		}
		return Unicode(rune(cp))
	case strings.HasPrefix(name, "0x") && len(name) > 2:
		v, err := strconv.ParseUint(name[2:], 16, 32)
		if err != nil || v > 0x1fffffff {
			return NoSymbol
		}
		return xproto.Keysym(v)
	}

	return NoSymbol
}

// Unicode returns the keysym for a code point. Latin 1 characters have
// keysyms equal to their code point, everything else lives in the Unicode
// keysym range.
func Unicode(r rune) xproto.Keysym {
	if (r >= 0x20 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff) {
		return xproto.Keysym(r)
	}
	return xproto.Keysym(unicodeOffset | uint32(r))
}

// Name returns the canonical name of a keysym. Keysyms without a table entry
// are named the way FromName accepts them back.
func Name(sym xproto.Keysym) string {
	if sym == NoSymbol {
		return "NoSymbol"
	}
	if name, ok := bySym[sym]; ok {
		return name
	}
	if uint32(sym)&0xff000000 == unicodeOffset {
		return fmt.Sprintf("U%04X", uint32(sym)&0x00ffffff)
	}
	return fmt.Sprintf("0x%08x", uint32(sym))
}
