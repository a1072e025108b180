package sqlite

import (
	"time"
)

type Launch struct {
	ID        int64
	StartedAt time.Time
	Keys      string
	Command   string
	Pid       int64
	Error     string
}
