package database

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/attribute"
)

// session is the state shared by a simulated family's products.
type session struct {
	vendor    Vendor
	logger    *log.Logger
	connected bool
}

// simulatedFactory serves the vendors without a real driver in this module.
type simulatedFactory struct {
	session *session
}

func newSimulatedFactory(v Vendor, logger *log.Logger) *simulatedFactory {
	return &simulatedFactory{session: &session{vendor: v, logger: logger}}
}

func (f *simulatedFactory) CreateConnection() Connection {
	return &simulatedConnection{session: f.session}
}

func (f *simulatedFactory) CreateCommand() Command {
	return &simulatedCommand{session: f.session}
}

func (f *simulatedFactory) Vendor() Vendor { return f.session.vendor }

type simulatedConnection struct {
	session *session
}

func (c *simulatedConnection) Connect(ctx context.Context) (err error) {
	_, span := startSpan(ctx, "database.Connect", c.session.vendor)
	defer func() { endSpan(span, err) }()

	if err := ctx.Err(); err != nil {
		return err
	}
	c.session.connected = true
	c.session.logger.Printf("%s: connected", c.session.vendor)
	return nil
}

func (c *simulatedConnection) Close() error {
	if c.session.connected {
		c.session.connected = false
		c.session.logger.Printf("%s: disconnected", c.session.vendor)
	}
	return nil
}

func (c *simulatedConnection) Vendor() Vendor { return c.session.vendor }

type simulatedCommand struct {
	session *session
}

func (c *simulatedCommand) Execute(ctx context.Context, query string) (_ Result, err error) {
	_, span := startSpan(ctx, "database.Execute", c.session.vendor, attribute.String("db.statement", query))
	defer func() { endSpan(span, err) }()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !c.session.connected {
		return Result{}, notConnected(c.session.vendor)
	}
	c.session.logger.Printf("%s: executing %q", c.session.vendor, query)
	return Result{Vendor: c.session.vendor, Query: query}, nil
}

func (c *simulatedCommand) Vendor() Vendor { return c.session.vendor }
