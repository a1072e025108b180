package x11

import (
	"codeberg.org/seppun/seppun-kb/pkg/hotkeyd"
	"fmt"
	"github.com/BurntSushi/xgbutil/xprop"
	"strings"
)

const rulesNamesAtom = "_XKB_RULES_NAMES"

// rulesNames mirrors _XKB_RULES_NAMES: rules, model, layout, variant, options.
type rulesNames struct {
	Rules   string
	Model   string
	Layout  string
	Variant string
	Options string
}

func parseRulesNames(vals []string) (rulesNames, error) {
	if len(vals) < 3 {
		return rulesNames{}, fmt.Errorf("%s has %d fields, want at least 3", rulesNamesAtom, len(vals))
	}

	field := func(i int) string {
		if i < len(vals) {
			return vals[i]
		}
		return ""
	}

	return rulesNames{
		Rules:   field(0),
		Model:   field(1),
		Layout:  field(2),
		Variant: field(3),
		Options: field(4),
	}, nil
}

func (r rulesNames) ToKeyboard() hotkeyd.Keyboard {
	layouts := strings.Split(r.Layout, ",")
	variants := strings.Split(r.Variant, ",")
	// variants may be shorter than layouts
	for len(variants) < len(layouts) {
		variants = append(variants, "")
	}

	var options []string
	if r.Options != "" {
		options = strings.Split(r.Options, ",")
	}

	return hotkeyd.Keyboard{
		Model:    r.Model,
		Layouts:  layouts,
		Variants: variants[:len(layouts)],
		Options:  options,
	}
}

// GetKeyboard reads the layout configuration the server was started with.
func (c *Client) GetKeyboard() (hotkeyd.Keyboard, error) {
	vals, err := xprop.PropValStrs(xprop.GetProperty(c.xu, c.root, rulesNamesAtom))
	if err != nil {
		return hotkeyd.Keyboard{}, fmt.Errorf("get %s: %w", rulesNamesAtom, err)
	}

	names, err := parseRulesNames(vals)
	if err != nil {
		return hotkeyd.Keyboard{}, err
	}

	return names.ToKeyboard(), nil
}
