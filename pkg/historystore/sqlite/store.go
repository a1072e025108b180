package sqlite

import (
	"codeberg.org/seppun/seppun-kb/pkg/historystore/sqlite/migrations"
	"codeberg.org/seppun/seppun-kb/pkg/hotkeyd"
	"context"
	"database/sql"
	"fmt"
	"github.com/kballard/go-shellquote"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type LaunchStore struct {
	db        *sql.DB
	querier   *Queries
	retention int
}

func NewLaunchStore(filename string, retention int, log *zap.SugaredLogger) (*LaunchStore, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", filename))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrations.Migrate(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &LaunchStore{
		db:        db,
		querier:   New(db),
		retention: retention,
	}, nil
}

func (s *LaunchStore) Close() error {
	return s.db.Close()
}

func (s *LaunchStore) RecordLaunch(ctx context.Context, launch hotkeyd.Launch) error {
	err := s.querier.InsertLaunch(ctx, InsertLaunchParams{
		StartedAt: launch.Time.UTC(),
		Keys:      launch.Keys,
		Command:   shellquote.Join(launch.Command...),
		Pid:       int64(launch.PID),
		Error:     launch.Error,
	})
	if err != nil {
		return fmt.Errorf("sqlite insert: %w", err)
	}

	if s.retention <= 0 {
		return nil
	}
	if err := s.querier.PruneLaunches(ctx, int64(s.retention)); err != nil {
		return fmt.Errorf("sqlite prune: %w", err)
	}

	return nil
}

func (s *LaunchStore) RecentLaunches(ctx context.Context, limit int) ([]hotkeyd.Launch, error) {
	// sqlite treats a negative limit as no limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.querier.ListRecentLaunches(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("sqlite select: %w", err)
	}

	ret := make([]hotkeyd.Launch, 0, len(rows))
	for _, row := range rows {
		command, err := shellquote.Split(row.Command)
		if err != nil {
			command = []string{row.Command}
		}

		ret = append(ret, hotkeyd.Launch{
			Time:    row.StartedAt,
			Keys:    row.Keys,
			Command: command,
			PID:     int(row.Pid),
			Error:   row.Error,
		})
	}

	return ret, nil
}
