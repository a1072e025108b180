package sqlite

import (
	"context"
	"time"
)

const dumpRest = `-- name: DumpRest :many
SELECT sql FROM sqlite_master
WHERE type != 'table' AND sql IS NOT NULL AND name NOT LIKE 'sqlite_%'
ORDER BY name
`

func (q *Queries) DumpRest(ctx context.Context) ([]*string, error) {
	rows, err := q.db.QueryContext(ctx, dumpRest)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*string
	for rows.Next() {
		var sql *string
		if err := rows.Scan(&sql); err != nil {
			return nil, err
		}
		items = append(items, sql)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const dumpTables = `-- name: DumpTables :many
SELECT sql FROM sqlite_master
WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
ORDER BY name
`

func (q *Queries) DumpTables(ctx context.Context) ([]*string, error) {
	rows, err := q.db.QueryContext(ctx, dumpTables)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*string
	for rows.Next() {
		var sql *string
		if err := rows.Scan(&sql); err != nil {
			return nil, err
		}
		items = append(items, sql)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertLaunch = `-- name: InsertLaunch :exec
INSERT INTO launches (started_at, keys, command, pid, error)
VALUES (?, ?, ?, ?, ?)
`

type InsertLaunchParams struct {
	StartedAt time.Time
	Keys      string
	Command   string
	Pid       int64
	Error     string
}

func (q *Queries) InsertLaunch(ctx context.Context, arg InsertLaunchParams) error {
	_, err := q.db.ExecContext(ctx, insertLaunch,
		arg.StartedAt,
		arg.Keys,
		arg.Command,
		arg.Pid,
		arg.Error,
	)
	return err
}

const listRecentLaunches = `-- name: ListRecentLaunches :many
SELECT id, started_at, keys, command, pid, error
FROM launches
ORDER BY started_at DESC, id DESC
LIMIT ?
`

func (q *Queries) ListRecentLaunches(ctx context.Context, limit int64) ([]Launch, error) {
	rows, err := q.db.QueryContext(ctx, listRecentLaunches, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Launch
	for rows.Next() {
		var i Launch
		if err := rows.Scan(
			&i.ID,
			&i.StartedAt,
			&i.Keys,
			&i.Command,
			&i.Pid,
			&i.Error,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const pruneLaunches = `-- name: PruneLaunches :exec
DELETE FROM launches
WHERE id NOT IN (
    SELECT id FROM launches ORDER BY started_at DESC, id DESC LIMIT ?
)
`

func (q *Queries) PruneLaunches(ctx context.Context, limit int64) error {
	_, err := q.db.ExecContext(ctx, pruneLaunches, limit)
	return err
}
