package migrate

import (
	"path/filepath"
	"runtime"
	"testing"
)

func migrationsDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot resolve caller")
	}
	return filepath.Join(filepath.Dir(file), "migrations")
}

func TestValidateShippedMigrations(t *testing.T) {
	if err := ValidateDir(migrationsDir(t)); err != nil {
		t.Fatalf("shipped migrations invalid: %v", err)
	}
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Wishlist Table!")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if filepath.Ext(path) != ".sql" {
		t.Fatalf("expected sql file, got %s", path)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("generated migration failed validation: %v", err)
	}
}

func TestCreateSQLMigrationRejectsEmptyName(t *testing.T) {
	if _, err := CreateSQLMigration(t.TempDir(), "!!!"); err == nil {
		t.Fatal("expected sanitized-empty name to fail")
	}
}
