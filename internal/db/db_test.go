package db

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-negocios/internal/config"
)

func TestOpenAndMigrate_SQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBUrl:    fmt.Sprintf("file:db_%s?mode=memory&cache=shared", uuid.NewString()),
	}

	gdb, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// idempotent
	if err := Migrate(gdb); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	for _, table := range []string{"cities", "businesses", "customers", "services", "professionals", "available_days", "appointments", "users", "audit_logs"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("table %s missing", table)
		}
	}

	var fk int
	gdb.Raw("PRAGMA foreign_keys").Scan(&fk)
	if fk != 1 {
		t.Fatalf("foreign_keys pragma = %d, want 1", fk)
	}
}
