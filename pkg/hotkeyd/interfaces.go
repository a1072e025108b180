package hotkeyd

import (
	"codeberg.org/seppun/seppun-kb/pkg/binding"
	"codeberg.org/seppun/seppun-kb/pkg/keyboard"
	"context"
	"github.com/BurntSushi/xgb"
	"time"
)

type EventSource interface {
	WaitForEvent() (xgb.Event, xgb.Error)
	Flush()
}

type KeyboardSource interface {
	KeyboardMapping() (*keyboard.Mapping, error)
	KeyboardState() (*keyboard.State, error)
	GetKeyboard() (Keyboard, error)
}

type Keyboard struct {
	Model    string
	Layouts  []string
	Variants []string
	Options  []string
}

type BindingLoader interface {
	Load() (binding.Table, error)
}

type Launcher interface {
	Launch(argv []string) (int, error)
}

type Launch struct {
	Time    time.Time
	Keys    string
	Command []string
	PID     int
	Error   string
}

type LaunchStore interface {
	RecordLaunch(ctx context.Context, launch Launch) error
	RecentLaunches(ctx context.Context, limit int) ([]Launch, error)
}

// Marker is the on-disk identity of the running daemon.
type Marker interface {
	Remove() error
}

type Notifier interface {
	Notify(state string)
}
