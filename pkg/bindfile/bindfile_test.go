package bindfile

import (
	"go.uber.org/zap"
	"os"
	"path/filepath"
	"testing"
)

func TestAppend(t *testing.T) {
	tests := []struct {
		name     string
		existing *string
		want     string
	}{
		{name: "missing file", existing: nil, want: "super+t=xterm\n"},
		{name: "empty file", existing: ptr(""), want: "super+t=xterm\n"},
		{name: "trailing newline", existing: ptr("ctrl+space=\n"), want: "ctrl+space=\nsuper+t=xterm\n"},
		{name: "no trailing newline", existing: ptr("ctrl+space="), want: "ctrl+space=\nsuper+t=xterm\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seppun", "kb")
			if tt.existing != nil {
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(path, []byte(*tt.existing), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			f := New(path, zap.NewNop().Sugar())
			if err := f.Append("super+t=xterm"); err != nil {
				t.Fatalf("Append: %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("file = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendRejectsMultipleLines(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "kb"), zap.NewNop().Sugar())
	if err := f.Append("a=b\nc=d"); err == nil {
		t.Error("expected error for multi-line binding")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb")
	content := "/// comment\nSuper+Shift+t=xterm\nbroken\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f := New(path, zap.NewNop().Sugar())
	table, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 1 {
		t.Errorf("loaded %d bindings, want 1", table.Len())
	}

	_, rejections, err := f.Read()
	if err != nil {
		t.Fatal(err)
	}
	if len(rejections) != 1 || rejections[0].Line != 3 {
		t.Errorf("rejections = %v, want line 3", rejections)
	}
}

func TestLoadMissingFile(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "missing"), zap.NewNop().Sugar())
	if _, err := f.Load(); err == nil {
		t.Error("expected error for missing keymap")
	}
}

func ptr(s string) *string {
	return &s
}
