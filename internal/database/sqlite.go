package database

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/creational/internal/database/sqlite"
	apperrors "github.com/louisbranch/creational/internal/platform/errors"
)

// sqliteSession is the state shared by the SQLite family's products.
type sqliteSession struct {
	path   string
	logger *log.Logger
	store  *sqlite.Store
}

type sqliteFactory struct {
	session *sqliteSession
}

func newSQLiteFactory(path string, logger *log.Logger) *sqliteFactory {
	return &sqliteFactory{session: &sqliteSession{path: path, logger: logger}}
}

func (f *sqliteFactory) CreateConnection() Connection {
	return &sqliteConnection{session: f.session}
}

func (f *sqliteFactory) CreateCommand() Command {
	return &sqliteCommand{session: f.session}
}

func (f *sqliteFactory) Vendor() Vendor { return VendorSQLite }

type sqliteConnection struct {
	session *sqliteSession
}

// Connect opens the database. Connecting an open session is a no-op.
func (c *sqliteConnection) Connect(ctx context.Context) (err error) {
	ctx, span := startSpan(ctx, "database.Connect", VendorSQLite)
	defer func() { endSpan(span, err) }()

	if c.session.store != nil {
		return nil
	}
	store, err := sqlite.Open(ctx, c.session.path)
	if err != nil {
		return failure(apperrors.CodeDatabaseOpenFailed, VendorSQLite, "connect", err)
	}
	c.session.store = store
	c.session.logger.Printf("%s: connected (session %s)", VendorSQLite, store.SessionID())
	return nil
}

// Close releases the database handle; safe before Connect and when repeated.
func (c *sqliteConnection) Close() error {
	if c.session.store == nil {
		return nil
	}
	err := c.session.store.Close()
	c.session.store = nil
	c.session.logger.Printf("%s: disconnected", VendorSQLite)
	return err
}

func (c *sqliteConnection) Vendor() Vendor { return VendorSQLite }

type sqliteCommand struct {
	session *sqliteSession
}

func (c *sqliteCommand) Execute(ctx context.Context, query string) (_ Result, err error) {
	ctx, span := startSpan(ctx, "database.Execute", VendorSQLite, attribute.String("db.statement", query))
	defer func() { endSpan(span, err) }()

	if c.session.store == nil {
		return Result{}, notConnected(VendorSQLite)
	}
	rows, err := c.session.store.Execute(ctx, query)
	if err != nil {
		return Result{}, failure(apperrors.CodeDatabaseQueryFailed, VendorSQLite, "execute", err)
	}
	span.SetAttributes(attribute.Int("db.rows", rows))
	return Result{Vendor: VendorSQLite, Query: query, Rows: rows}, nil
}

func (c *sqliteCommand) Vendor() Vendor { return VendorSQLite }
