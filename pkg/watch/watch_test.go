package watch

import (
	"context"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestShouldReload(t *testing.T) {
	path := "/home/u/.config/seppun/kb"
	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write", fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: path, Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: path, Op: fsnotify.Rename}, true},
		{"unclean name", fsnotify.Event{Name: "/home/u/.config/seppun/../seppun/kb", Op: fsnotify.Write}, true},
		{"same base elsewhere", fsnotify.Event{Name: "seppun/kb", Op: fsnotify.Create}, true},
		{"chmod", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: path, Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: "/home/u/.config/seppun/config.toml", Op: fsnotify.Write}, false},
		{"editor swap file", fsnotify.Event{Name: "/home/u/.config/seppun/.kb.swp", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldReload(path, "kb", tt.ev); got != tt.want {
				t.Errorf("shouldReload(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestWatcherCoalesces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kb")
	if err := os.WriteFile(path, []byte("super+t=xterm\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	w.Settle = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "unrelated"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("super+t=urxvt\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
	// a second burst may still be buffered; the channel must end regardless
	for range w.Changes() {
	}
}
