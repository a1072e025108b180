package json

import (
	"codeberg.org/seppun/seppun-kb/pkg/hotkeyd"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

type launchRecord struct {
	Time    time.Time `json:"time"`
	Keys    string    `json:"keys"`
	Command []string  `json:"command"`
	PID     int       `json:"pid,omitempty"`
	Error   string    `json:"error,omitempty"`
}

type LaunchStore struct {
	launches  []launchRecord
	retention int
	file      *os.File
	lock      sync.Mutex
	dirty     bool

	// SaveInterval is how often SaveLooper flushes to disk.
	SaveInterval time.Duration
}

func NewLaunchStore(filename string, retention int) (*LaunchStore, error) {
	fileExists := true
	info, err := os.Stat(filename)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		fileExists = false
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	store := &LaunchStore{
		retention:    retention,
		file:         file,
		dirty:        true,
		SaveInterval: time.Minute,
	}

	if fileExists {
		err = store.load()
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("load: %w", err)
		}

		store.dirty = false
	}

	return store, nil
}

func (s *LaunchStore) Close() error {
	return s.file.Close()
}

func (s *LaunchStore) load() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, err := s.file.Seek(0, 0)
	if err != nil {
		return fmt.Errorf("seek to start of file: %w", err)
	}

	dec := json.NewDecoder(s.file)
	err = dec.Decode(&s.launches)
	if err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}

// Save writes pending launches to disk.
func (s *LaunchStore) Save() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.dirty {
		return nil
	}

	_, err := s.file.Seek(0, 0)
	if err != nil {
		return fmt.Errorf("seek to start of file: %w", err)
	}

	err = s.file.Truncate(0)
	if err != nil {
		return fmt.Errorf("truncate file: %w", err)
	}

	enc := json.NewEncoder(s.file)
	enc.SetIndent("", "  ")
	err = enc.Encode(s.launches)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	s.dirty = false

	return nil
}

// SaveLooper saves periodically until ctx is done, then saves once more and
// closes the file.
func (s *LaunchStore) SaveLooper(ctx context.Context) error {
	defer s.file.Close()

	ticker := time.NewTicker(s.SaveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			err := s.Save()
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}

			return ctx.Err()
		case <-ticker.C:
			err := s.Save()
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}
		}
	}
}

func (s *LaunchStore) RecordLaunch(_ context.Context, launch hotkeyd.Launch) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.launches = append(s.launches, launchRecord{
		Time:    launch.Time,
		Keys:    launch.Keys,
		Command: launch.Command,
		PID:     launch.PID,
		Error:   launch.Error,
	})
	if s.retention > 0 && len(s.launches) > s.retention {
		s.launches = append([]launchRecord(nil), s.launches[len(s.launches)-s.retention:]...)
	}
	s.dirty = true
	return nil
}

func (s *LaunchStore) RecentLaunches(_ context.Context, limit int) ([]hotkeyd.Launch, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var out []hotkeyd.Launch
	for i := len(s.launches) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		r := s.launches[i]
		out = append(out, hotkeyd.Launch{
			Time:    r.Time,
			Keys:    r.Keys,
			Command: r.Command,
			PID:     r.PID,
			Error:   r.Error,
		})
	}
	return out, nil
}
