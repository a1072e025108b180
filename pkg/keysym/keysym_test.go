package keysym

import (
	"github.com/BurntSushi/xgb/xproto"
	"strings"
	"testing"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want xproto.Keysym
	}{
		{"t", 0x74},
		{"T", 0x54},
		{"space", 0x20},
		{"Return", 0xff0d},
		{"F12", 0xffc9},
		{"Super_L", 0xffeb},
		{"XF86AudioMute", 0x1008ff12},
		{"Cyrillic_a", 0x6c1},
		{"Cyrillic_ie", 0x6c5},
		{"EuroSign", 0x20ac},
		{"hebrew_aleph", 0xce0},
		{"Arabic_alef", 0x5c7},
		{"Thai_kokai", 0xda1},
		{"Greek_alpha", 0x7e1},
		{"kana_A", 0x4b1},
		{"Hangul_Kiyeog", 0xea1},
		{"Armenian_AYB", 0x1000531},
		{"Georgian_an", 0x10010d0},
		{"XF86MonBrightnessUp", 0x1008ff02},
		{"VoidSymbol", 0xffffff},
		{"0xff0d", 0xff0d},
		{"U20AC", 0x10020ac},
		{"U+20AC", 0x10020ac},
		{"U00e9", 0xe9},
		{"return", NoSymbol},
		{"notakey", NoSymbol},
		{"", NoSymbol},
		{"U", 0x55},
		{"Uxyz", NoSymbol},
		{"0x", NoSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromName(tt.name); got != tt.want {
				t.Errorf("FromName(%q) = %#x, want %#x", tt.name, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		sym  xproto.Keysym
		want string
	}{
		{0x74, "t"},
		{0xff0d, "Return"},
		{0x27, "apostrophe"},
		{0xff23, "Henkan_Mode"},
		{0x20ac, "EuroSign"},
		{0xce0, "hebrew_aleph"},
		{NoSymbol, "NoSymbol"},
		{0x10020ac, "U20AC"},
		{0x12345678, "0x12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Name(tt.sym); got != tt.want {
				t.Errorf("Name(%#x) = %q, want %q", tt.sym, got, tt.want)
			}
		})
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, e := range table {
		sym := FromName(Name(e.sym))
		if sym != e.sym {
			t.Errorf("%s: FromName(Name(%#x)) = %#x", e.name, e.sym, sym)
		}
	}
}

func TestTableCoversScriptBlocks(t *testing.T) {
	prefixes := []string{"Arabic_", "Armenian_", "Cyrillic_", "Georgian_", "Greek_", "Hangul_", "hebrew_", "kana_", "Thai_", "XF86"}
	for _, prefix := range prefixes {
		found := 0
		for _, e := range table {
			if strings.HasPrefix(e.name, prefix) {
				found++
			}
		}
		if found < 10 {
			t.Errorf("only %d names start with %s", found, prefix)
		}
	}
}
