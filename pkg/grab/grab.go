// Package grab installs and removes passive key grabs for a binding table.
package grab

import (
	"codeberg.org/seppun/seppun-kb/pkg/binding"
	"codeberg.org/seppun/seppun-kb/pkg/keyboard"
	"codeberg.org/seppun/seppun-kb/pkg/keysym"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
	"go.uber.org/zap"
	"sort"
)

type Grabber interface {
	GrabKey(keycode xproto.Keycode, mods binding.Modifiers) error
	UngrabKey(keycode xproto.Keycode, mods binding.Modifiers) error
}

type Grab struct {
	Keycode xproto.Keycode
	Mods    binding.Modifiers
}

// Manager remembers which grabs it holds, so installing twice does not grab
// twice and uninstalling only releases what it installed.
type Manager struct {
	grabber Grabber
	active  map[Grab]struct{}
	log     *zap.SugaredLogger
}

func NewManager(grabber Grabber, log *zap.SugaredLogger) *Manager {
	return &Manager{
		grabber: grabber,
		active:  make(map[Grab]struct{}),
		log:     log,
	}
}

type target struct {
	Grab
	key string
}

// targets lists a grab for every keycode whose primary symbol has the same
// name as a binding's key.
func targets(table binding.Table, mapping *keyboard.Mapping) []target {
	byName := make(map[string][]xproto.Keycode)
	mapping.Each(func(keycode xproto.Keycode, sym xproto.Keysym) {
		if sym == keysym.NoSymbol {
			return
		}
		name := keysym.Name(sym)
		byName[name] = append(byName[name], keycode)
	})

	var out []target
	for _, b := range table.Bindings() {
		if !b.Valid() {
			continue
		}
		key := keysym.Name(b.Key)
		for _, keycode := range byName[key] {
			out = append(out, target{Grab: Grab{Keycode: keycode, Mods: b.Mods}, key: key})
		}
	}
	return out
}

// Install grabs every keycode bound by the table. Failures are logged and
// skipped. It returns the number of new grabs.
func (m *Manager) Install(table binding.Table, mapping *keyboard.Mapping) int {
	installed := 0
	for _, t := range targets(table, mapping) {
		if _, ok := m.active[t.Grab]; ok {
			continue
		}

		err := m.grabber.GrabKey(t.Keycode, t.Mods)
		if err != nil {
			m.log.Warnw("failed to grab key",
				"key", t.key,
				"keycode", t.Keycode,
				"mods", keybind.ModifierString(uint16(t.Mods)),
				"error", err,
			)
			continue
		}

		m.active[t.Grab] = struct{}{}
		installed++
	}
	return installed
}

// Uninstall releases the grabs Install made for the same table and mapping.
// It returns the number of released grabs.
func (m *Manager) Uninstall(table binding.Table, mapping *keyboard.Mapping) int {
	released := 0
	for _, t := range targets(table, mapping) {
		if _, ok := m.active[t.Grab]; !ok {
			continue
		}

		// the grab is forgotten even if the server refuses, a stale entry
		// would block the next Install
		delete(m.active, t.Grab)
		err := m.grabber.UngrabKey(t.Keycode, t.Mods)
		if err != nil {
			m.log.Warnw("failed to release key grab",
				"key", t.key,
				"keycode", t.Keycode,
				"mods", keybind.ModifierString(uint16(t.Mods)),
				"error", err,
			)
			continue
		}
		released++
	}
	return released
}

func (m *Manager) Len() int {
	return len(m.active)
}

func (m *Manager) Contains(keycode xproto.Keycode, mods binding.Modifiers) bool {
	_, ok := m.active[Grab{Keycode: keycode, Mods: mods}]
	return ok
}

// Active returns the held grabs ordered by keycode and modifiers.
func (m *Manager) Active() []Grab {
	out := make([]Grab, 0, len(m.active))
	for g := range m.active {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Keycode != out[j].Keycode {
			return out[i].Keycode < out[j].Keycode
		}
		return out[i].Mods < out[j].Mods
	})
	return out
}
