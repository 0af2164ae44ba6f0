package database

import (
	"context"
	"fmt"
	"io"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/creational/internal/platform/errors"
)

const tracerName = "github.com/louisbranch/creational/internal/database"

// ErrNotConnected is returned when a command runs before its connection is open.
var ErrNotConnected = apperrors.New(apperrors.CodeDatabaseNotConnected, "command executed before connect")

// Result describes one executed command.
type Result struct {
	Vendor Vendor
	Query  string
	Rows   int
}

// Connection opens and releases a vendor session.
type Connection interface {
	Connect(ctx context.Context) error
	Close() error
	Vendor() Vendor
}

// Command executes queries over the session opened by its sibling Connection.
type Command interface {
	Execute(ctx context.Context, query string) (Result, error)
	Vendor() Vendor
}

// Factory creates one vendor's Connection and Command.
type Factory interface {
	CreateConnection() Connection
	CreateCommand() Command
	Vendor() Vendor
}

type options struct {
	logger     *log.Logger
	sqlitePath string
}

// Option configures a Factory.
type Option func(*options)

// WithLogger sets the logger simulated vendors report to.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSQLitePath sets the database file opened by the SQLite family.
// An empty path keeps the in-memory default.
func WithSQLitePath(path string) Option {
	return func(o *options) {
		o.sqlitePath = path
	}
}

// NewFactory returns the factory for v. Any vendor without a dedicated family
// falls through to the MySQL factory.
func NewFactory(v Vendor, opts ...Option) Factory {
	o := options{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(&o)
	}

	switch v {
	case VendorPostgreSQL:
		return newSimulatedFactory(VendorPostgreSQL, o.logger)
	case VendorOracle:
		return newSimulatedFactory(VendorOracle, o.logger)
	case VendorSQLite:
		return newSQLiteFactory(o.sqlitePath, o.logger)
	default:
		return newSimulatedFactory(VendorMySQL, o.logger)
	}
}

func startSpan(ctx context.Context, name string, v Vendor, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("db.system", v.system()))
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func notConnected(v Vendor) error {
	return apperrors.WithMetadata(
		apperrors.CodeDatabaseNotConnected,
		ErrNotConnected.Message,
		map[string]string{"Vendor": v.String()},
	)
}

// failure wraps a driver error under code, keeping the driver text as the
// Reason for localized messages.
func failure(code apperrors.Code, v Vendor, action string, err error) error {
	wrapped := apperrors.Wrap(code, fmt.Sprintf("%s %s: %v", action, v.system(), err), err)
	wrapped.Metadata = map[string]string{"Vendor": v.String(), "Reason": err.Error()}
	return wrapped
}
