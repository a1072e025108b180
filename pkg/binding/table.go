package binding

import (
	"bufio"
	"fmt"
	"github.com/BurntSushi/xgb/xproto"
	"io"
	"strings"
)

// Table is an ordered list of bindings. Duplicates are kept; every binding
// matching a key press fires.
type Table struct {
	bindings []Binding
}

func NewTable(bindings ...Binding) Table {
	return Table{bindings: bindings}
}

func (t *Table) Add(b Binding) {
	t.bindings = append(t.bindings, b)
}

func (t Table) Len() int {
	return len(t.bindings)
}

func (t Table) Bindings() []Binding {
	return t.bindings
}

// Match returns the valid bindings whose modifier state equals state exactly
// and whose key is sym, in table order. The XKB group bits of state are
// ignored; the group is already reflected in sym.
func (t Table) Match(state uint16, sym xproto.Keysym) []Binding {
	mods := StateMask(state) &^ xkbGroupBits

	var matches []Binding
	for _, b := range t.bindings {
		if b.Valid() && b.State == mods && b.Key == sym {
			matches = append(matches, b)
		}
	}
	return matches
}

// Rejection describes a keymap line that did not produce a binding.
type Rejection struct {
	Line int
	Text string
	Err  error
}

func (r Rejection) Error() string {
	return fmt.Sprintf("line %d: %v", r.Line, r.Err)
}

func (r Rejection) Unwrap() error {
	return r.Err
}

// Read parses a keymap. Comment and blank lines are skipped; lines that fail
// to parse or name no key are returned as rejections.
func Read(r io.Reader) (Table, []Rejection, error) {
	var (
		table      Table
		rejections []Rejection
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || IsComment(line) {
			continue
		}

		b, err := Parse(line)
		if err == nil && !b.Valid() {
			err = ErrNoKey
		}
		if err != nil {
			rejections = append(rejections, Rejection{Line: lineNo, Text: line, Err: err})
			continue
		}
		table.Add(b)
	}
	if err := scanner.Err(); err != nil {
		return Table{}, nil, fmt.Errorf("read keymap: %w", err)
	}

	return table, rejections, nil
}
