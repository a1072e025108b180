package x11

import (
	"reflect"
	"testing"
)

func TestParseRulesNames(t *testing.T) {
	tests := []struct {
		name     string
		vals     []string
		layouts  []string
		variants []string
		options  []string
		wantErr  bool
	}{
		{
			name:     "two layouts one variant",
			vals:     []string{"evdev", "pc105", "us,hu", "dvorak", "grp:alt_shift_toggle,caps:escape"},
			layouts:  []string{"us", "hu"},
			variants: []string{"dvorak", ""},
			options:  []string{"grp:alt_shift_toggle", "caps:escape"},
		},
		{
			name:     "trailing fields missing",
			vals:     []string{"evdev", "pc105", "de"},
			layouts:  []string{"de"},
			variants: []string{""},
		},
		{
			name:    "too short",
			vals:    []string{"evdev"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := parseRulesNames(tt.vals)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			kb := names.ToKeyboard()
			if !reflect.DeepEqual(kb.Layouts, tt.layouts) {
				t.Errorf("Layouts = %v, want %v", kb.Layouts, tt.layouts)
			}
			if !reflect.DeepEqual(kb.Variants, tt.variants) {
				t.Errorf("Variants = %v, want %v", kb.Variants, tt.variants)
			}
			if !reflect.DeepEqual(kb.Options, tt.options) {
				t.Errorf("Options = %v, want %v", kb.Options, tt.options)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	t.Setenv("DISPLAY", ":7")
	got, err := DisplayName("")
	if err != nil || got != ":7" {
		t.Errorf("DisplayName(\"\") = %q, %v", got, err)
	}

	got, err = DisplayName(":1")
	if err != nil || got != ":1" {
		t.Errorf("DisplayName(\":1\") = %q, %v", got, err)
	}

	t.Setenv("DISPLAY", "")
	if _, err := DisplayName(""); err == nil {
		t.Error("expected error without DISPLAY")
	}
}
