package db

import (
	"context"
	"testing"
)

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	h, err := Open(ctx, DriverSQLite, "file:connect_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	var n int
	if err := h.QueryRowContext(ctx, `SELECT COUNT(*) FROM round_log`).Scan(&n); err != nil {
		t.Fatalf("round_log missing: %v", err)
	}
	if err := EnsureSchema(ctx, h, DriverSQLite); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "oracle", ""); err == nil {
		t.Fatal("expected error")
	}
}
