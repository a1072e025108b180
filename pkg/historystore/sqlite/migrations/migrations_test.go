package migrations

import (
	"database/sql"
	"errors"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"path/filepath"
	"testing"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "history.db")))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate(t *testing.T) {
	db := openDB(t)
	log := zap.NewNop().Sugar()

	version, dirty, err := Version(db)
	if err != nil {
		t.Fatal(err)
	}
	if version != 0 || dirty {
		t.Fatalf("fresh database at version %d (dirty %v)", version, dirty)
	}

	if err := Migrate(db, log); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// second run has nothing to do
	if err := Migrate(db, log); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	version, dirty, err = Version(db)
	if err != nil {
		t.Fatal(err)
	}
	if version != 1 || dirty {
		t.Errorf("migrated database at version %d (dirty %v), want 1", version, dirty)
	}

	var n int
	if err := db.QueryRow("SELECT count(*) FROM launches").Scan(&n); err != nil {
		t.Errorf("launches table missing: %v", err)
	}
}

func TestMigrateRefusesDirtySchema(t *testing.T) {
	db := openDB(t)
	log := zap.NewNop().Sugar()

	if err := Migrate(db, log); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("UPDATE " + Table + " SET dirty = 1"); err != nil {
		t.Fatal(err)
	}

	err := Migrate(db, log)
	if !errors.Is(err, ErrDirty) {
		t.Errorf("Migrate error = %v, want ErrDirty", err)
	}
}
