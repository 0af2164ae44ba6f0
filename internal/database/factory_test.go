package database

import (
	"bytes"
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/creational/internal/platform/errors"
)

// TestFactoryProductsShareVendor verifies connection and command come from
// the factory's vendor.
func TestFactoryProductsShareVendor(t *testing.T) {
	for _, v := range []Vendor{VendorMySQL, VendorPostgreSQL, VendorOracle, VendorSQLite} {
		t.Run(v.String(), func(t *testing.T) {
			f := NewFactory(v)
			if f.Vendor() != v {
				t.Fatalf("factory vendor = %v, want %v", f.Vendor(), v)
			}
			conn := f.CreateConnection()
			defer conn.Close()
			if conn.Vendor() != v {
				t.Fatalf("connection vendor = %v, want %v", conn.Vendor(), v)
			}
			if cmd := f.CreateCommand(); cmd.Vendor() != v {
				t.Fatalf("command vendor = %v, want %v", cmd.Vendor(), v)
			}
		})
	}
}

// TestNewFactoryFallsBackToMySQL verifies unknown vendors get the MySQL family.
func TestNewFactoryFallsBackToMySQL(t *testing.T) {
	for _, v := range []Vendor{VendorUnknown, Vendor(99)} {
		if got := NewFactory(v).Vendor(); got != VendorMySQL {
			t.Fatalf("NewFactory(%d).Vendor() = %v, want MySQL", int(v), got)
		}
	}
}

// TestSimulatedVendorConnectExecuteClose verifies the simulated lifecycle
// logs each step.
func TestSimulatedVendorConnectExecuteClose(t *testing.T) {
	var logs bytes.Buffer
	f := NewFactory(VendorOracle, WithLogger(log.New(&logs, "", 0)))
	conn := f.CreateConnection()
	cmd := f.CreateCommand()

	if err := conn.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	res, err := cmd.Execute(context.Background(), "SELECT * FROM some_table")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Vendor != VendorOracle || res.Query != "SELECT * FROM some_table" || res.Rows != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	want := "Oracle: connected\nOracle: executing \"SELECT * FROM some_table\"\nOracle: disconnected\n"
	if logs.String() != want {
		t.Fatalf("logs = %q, want %q", logs.String(), want)
	}
}

// TestExecuteBeforeConnectFails verifies commands need an open connection.
func TestExecuteBeforeConnectFails(t *testing.T) {
	for _, v := range []Vendor{VendorMySQL, VendorPostgreSQL, VendorOracle, VendorSQLite} {
		t.Run(v.String(), func(t *testing.T) {
			f := NewFactory(v)
			_, err := f.CreateCommand().Execute(context.Background(), "SELECT 1")
			if !errors.Is(err, ErrNotConnected) {
				t.Fatalf("execute error = %v, want %v", err, ErrNotConnected)
			}
		})
	}
}

// TestExecuteAfterCloseFails verifies closing ends the shared session.
func TestExecuteAfterCloseFails(t *testing.T) {
	f := NewFactory(VendorPostgreSQL)
	conn := f.CreateConnection()
	if err := conn.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := f.CreateCommand().Execute(context.Background(), "SELECT 1"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("execute error = %v, want %v", err, ErrNotConnected)
	}
}

// TestFamiliesDoNotShareSessions verifies separate factories keep separate
// sessions.
func TestFamiliesDoNotShareSessions(t *testing.T) {
	mysql := NewFactory(VendorMySQL)
	postgres := NewFactory(VendorPostgreSQL)

	if err := mysql.CreateConnection().Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := postgres.CreateCommand().Execute(context.Background(), "SELECT 1"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("execute error = %v, want %v", err, ErrNotConnected)
	}
}

// TestSQLiteFamilyRunsQueries verifies the SQLite family counts seeded rows.
func TestSQLiteFamilyRunsQueries(t *testing.T) {
	var logs bytes.Buffer
	f := NewFactory(VendorSQLite, WithLogger(log.New(&logs, "", 0)))
	conn := f.CreateConnection()
	defer conn.Close()
	if err := conn.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := conn.Connect(context.Background()); err != nil {
		t.Fatalf("reconnect should be a no-op: %v", err)
	}

	res, err := f.CreateCommand().Execute(context.Background(), "SELECT * FROM some_table")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Rows != 3 {
		t.Fatalf("rows = %d, want 3", res.Rows)
	}
	if !strings.HasPrefix(logs.String(), "SQLite: connected (session ") {
		t.Fatalf("unexpected logs %q", logs.String())
	}
}

// TestSQLiteFamilyUsesConfiguredPath verifies writes persist in the
// configured file.
func TestSQLiteFamilyUsesConfiguredPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.db")
	f := NewFactory(VendorSQLite, WithSQLitePath(path))
	conn := f.CreateConnection()
	if err := conn.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := f.CreateCommand().Execute(context.Background(), "INSERT INTO some_table (id, name, created_at) VALUES (4, 'window', 0)"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	again := NewFactory(VendorSQLite, WithSQLitePath(path))
	conn = again.CreateConnection()
	defer conn.Close()
	if err := conn.Connect(context.Background()); err != nil {
		t.Fatalf("reconnect: %v", err)
	}
	res, err := again.CreateCommand().Execute(context.Background(), "SELECT * FROM some_table")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Rows != 4 {
		t.Fatalf("rows = %d, want 4 after persisted insert", res.Rows)
	}
}

// TestSQLiteCloseBeforeConnect verifies closing an unopened connection is
// harmless.
func TestSQLiteCloseBeforeConnect(t *testing.T) {
	if err := NewFactory(VendorSQLite).CreateConnection().Close(); err != nil {
		t.Fatalf("close before connect: %v", err)
	}
}

// TestParseVendor covers vendor names and aliases.
func TestParseVendor(t *testing.T) {
	tcs := map[string]Vendor{
		"mysql":      VendorMySQL,
		"Postgres":   VendorPostgreSQL,
		"postgresql": VendorPostgreSQL,
		" ORACLE ":   VendorOracle,
		"sqlite":     VendorSQLite,
		"mariadb":    VendorUnknown,
	}
	for name, want := range tcs {
		if got := ParseVendor(name); got != want {
			t.Fatalf("ParseVendor(%q) = %v, want %v", name, got, want)
		}
	}
}

// TestDefaultVendorHasFamily guards the build-tag default.
func TestDefaultVendorHasFamily(t *testing.T) {
	if DefaultVendor == VendorUnknown {
		t.Fatal("default vendor must name a family")
	}
}

// TestSQLiteFailuresCarryCodes verifies driver failures are coded and keep
// the driver error as their cause.
func TestSQLiteFailuresCarryCodes(t *testing.T) {
	f := NewFactory(VendorSQLite)
	conn := f.CreateConnection()
	defer conn.Close()
	if err := conn.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}

	_, err := f.CreateCommand().Execute(context.Background(), "SELECT * FROM missing_table")
	if got := apperrors.GetCode(err); got != apperrors.CodeDatabaseQueryFailed {
		t.Fatalf("code = %q, want %q", got, apperrors.CodeDatabaseQueryFailed)
	}
	if errors.Unwrap(err) == nil {
		t.Fatal("expected driver cause")
	}
	if msg := apperrors.LocalizedMessage(err, "en-US"); !strings.HasPrefix(msg, "SQLite could not run the query: ") {
		t.Fatalf("localized = %q", msg)
	}

	missingDir := filepath.Join(t.TempDir(), "missing", "demo.db")
	err = NewFactory(VendorSQLite, WithSQLitePath(missingDir)).CreateConnection().Connect(context.Background())
	if got := apperrors.GetCode(err); got != apperrors.CodeDatabaseOpenFailed {
		t.Fatalf("open code = %q (%v), want %q", got, err, apperrors.CodeDatabaseOpenFailed)
	}
}
