package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed *.sql
var files embed.FS

// Table records the applied schema version inside the history database.
const Table = "launch_history_migrations"

var ErrDirty = errors.New("history schema is dirty")

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{MigrationsTable: Table})
	if err != nil {
		return nil, fmt.Errorf("create migration driver: %w", err)
	}

	source, err := iofs.New(files, ".")
	if err != nil {
		return nil, fmt.Errorf("create migration source: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}

	return migrator, nil
}

func currentVersion(migrator *migrate.Migrate) (uint, bool, error) {
	version, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read schema version: %w", err)
	}
	return version, dirty, nil
}

// Version reports the schema version of db, 0 when it was never migrated.
func Version(db *sql.DB) (uint, bool, error) {
	migrator, err := newMigrator(db)
	if err != nil {
		return 0, false, err
	}
	return currentVersion(migrator)
}

// Migrate brings the history schema up to date. A database left dirty by an
// interrupted migration is refused rather than migrated further.
func Migrate(db *sql.DB, log *zap.SugaredLogger) error {
	migrator, err := newMigrator(db)
	if err != nil {
		return err
	}

	from, dirty, err := currentVersion(migrator)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("%w at version %d, repair the %s table", ErrDirty, from, Table)
	}

	err = migrator.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Debugw("history schema is up to date", "version", from)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate from version %d: %w", from, err)
	}

	to, _, err := currentVersion(migrator)
	if err != nil {
		return err
	}
	log.Infow("migrated history schema", "from", from, "to", to)

	return nil
}
