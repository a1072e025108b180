package xkblayouts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testRegistry = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE xkbConfigRegistry SYSTEM "xkb.dtd">
<xkbConfigRegistry version="1.1">
  <modelList>
    <model>
      <configItem>
        <name>pc105</name>
        <description>Generic 105-key PC</description>
      </configItem>
    </model>
  </modelList>
  <layoutList>
    <layout>
      <configItem>
        <name>us</name>
        <description>English (US)</description>
      </configItem>
      <variantList>
        <variant>
          <configItem>
            <name>dvorak</name>
            <description>English (Dvorak)</description>
          </configItem>
        </variant>
      </variantList>
    </layout>
    <layout>
      <configItem>
        <name>hu</name>
        <description>Hungarian</description>
      </configItem>
    </layout>
  </layoutList>
  <optionList>
    <group allowMultipleSelection="true">
      <configItem>
        <name>grp</name>
        <description>Switching to another layout</description>
      </configItem>
      <option>
        <configItem>
          <name>grp:alt_shift_toggle</name>
          <description>Alt+Shift</description>
        </configItem>
      </option>
    </group>
  </optionList>
</xkbConfigRegistry>
`

func TestDescribe(t *testing.T) {
	registry, err := Decode(strings.NewReader(testRegistry))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		layout, variant string
		want            string
	}{
		{"us", "", "English (US)"},
		{"us", "dvorak", "English (Dvorak)"},
		{"hu", "", "Hungarian"},
		{"us", "colemak", "us(colemak)"},
		{"xx", "", "xx"},
	}
	for _, tt := range tests {
		if got := registry.Describe(tt.layout, tt.variant); got != tt.want {
			t.Errorf("Describe(%q, %q) = %q, want %q", tt.layout, tt.variant, got, tt.want)
		}
	}

	if got := registry.DescribeModel("pc105"); got != "Generic 105-key PC" {
		t.Errorf("DescribeModel = %q", got)
	}
	if got := registry.DescribeOption("grp:alt_shift_toggle"); got != "Alt+Shift" {
		t.Errorf("DescribeOption = %q", got)
	}
}

func TestDescribeNilRegistry(t *testing.T) {
	var registry *XkbConfigRegistry
	if got := registry.Describe("us", "dvorak"); got != "us(dvorak)" {
		t.Errorf("Describe on nil registry = %q", got)
	}
	if got := registry.DescribeModel("pc105"); got != "pc105" {
		t.Errorf("DescribeModel on nil registry = %q", got)
	}
}

func TestParseLayouts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evdev.xml")
	if err := os.WriteFile(path, []byte(testRegistry), 0o644); err != nil {
		t.Fatal(err)
	}

	registry, err := ParseLayouts(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(registry.LayoutList.Layout) != 2 {
		t.Errorf("parsed %d layouts, want 2", len(registry.LayoutList.Layout))
	}

	if _, err := ParseLayouts(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("expected error for missing registry")
	}
}
