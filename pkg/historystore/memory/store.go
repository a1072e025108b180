package memory

import (
	"codeberg.org/seppun/seppun-kb/pkg/hotkeyd"
	"context"
	"sync"
)

type LaunchStore struct {
	launches  []hotkeyd.Launch
	retention int
	lock      sync.Mutex
}

// NewLaunchStore keeps the last retention launches, or all of them when
// retention is not positive.
func NewLaunchStore(retention int) *LaunchStore {
	return &LaunchStore{retention: retention}
}

func (s *LaunchStore) RecordLaunch(_ context.Context, launch hotkeyd.Launch) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.launches = append(s.launches, launch)
	if s.retention > 0 && len(s.launches) > s.retention {
		s.launches = append([]hotkeyd.Launch(nil), s.launches[len(s.launches)-s.retention:]...)
	}
	return nil
}

// RecentLaunches returns up to limit launches, newest first.
func (s *LaunchStore) RecentLaunches(_ context.Context, limit int) ([]hotkeyd.Launch, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	n := len(s.launches)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]hotkeyd.Launch, 0, n)
	for i := len(s.launches) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.launches[i])
	}
	return out, nil
}

func (s *LaunchStore) Close() error {
	return nil
}
