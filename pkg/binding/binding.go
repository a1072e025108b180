// Package binding parses keymap lines of the form "Mod+Mod+Key=command".
package binding

import (
	"codeberg.org/seppun/seppun-kb/pkg/keysym"
	"errors"
	"fmt"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/kballard/go-shellquote"
	"strings"
)

var (
	ErrMalformed    = errors.New("line must contain exactly one '='")
	ErrMultipleKeys = errors.New("binding names more than one key")
	ErrNoKey        = errors.New("binding names no known key")
)

// CommentPrefix starts a comment line in a keymap file.
const CommentPrefix = "///"

type Binding struct {
	Key   xproto.Keysym
	Mods  Modifiers
	State StateMask
	// Command is nil when the right hand side could not be split into words.
	Command []string
	Line    string
}

// Valid reports whether the binding resolved to a key.
func (b Binding) Valid() bool {
	return b.Key != keysym.NoSymbol
}

// HasCommand reports whether triggering the binding would run anything.
func (b Binding) HasCommand() bool {
	return len(b.Command) > 0
}

// Keys renders the key combination in canonical form, e.g. "Shift+Super+t".
func (b Binding) Keys() string {
	key := keysym.Name(b.Key)
	if b.Mods == 0 {
		return key
	}
	return b.Mods.String() + "+" + key
}

// IsComment reports whether a keymap line is a comment.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), CommentPrefix)
}

// Parse parses one keymap line. Key tokens that do not name a modifier or a
// known keysym are skipped, so the result may be invalid; callers check Valid.
func Parse(line string) (Binding, error) {
	if strings.Count(line, "=") != 1 {
		return Binding{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	keys, command, _ := strings.Cut(line, "=")

	b := Binding{Line: strings.TrimSpace(line)}
	for _, token := range strings.Split(keys, "+") {
		token = strings.TrimSpace(token)
		if mod, ok := lookupModifier(token); ok {
			b.Mods |= mod.mods
			b.State |= mod.state
			continue
		}

		sym := keysym.FromName(token)
		if sym == keysym.NoSymbol {
			continue
		}
		if b.Key != keysym.NoSymbol && b.Key != sym {
			return Binding{}, fmt.Errorf("%w: %s and %s", ErrMultipleKeys, keysym.Name(b.Key), token)
		}
		b.Key = sym
	}

	// an unsplittable command leaves the binding valid but inert
	words, err := shellquote.Split(command)
	if err == nil {
		b.Command = words
	}

	return b, nil
}

// Format renders a binding back into a keymap line.
func (b Binding) Format() string {
	return b.Keys() + "=" + shellquote.Join(b.Command...)
}
