package driver

import (
	"context"
	"database/sql/driver"
	"log/slog"
	"time"
)

// check if connector implements all required interfaces.
var (
	_ driver.Connector = (*Connector)(nil)
)

// connAttrs holds the connection relevant attributes.
type connAttrs struct {
	logger *slog.Logger
	loc    *time.Location
}

func defaultConnAttrs() *connAttrs {
	return &connAttrs{logger: slog.Default(), loc: time.Local}
}

// A ConnectorOption sets a connector attribute.
type ConnectorOption func(*connAttrs)

// WithLogger sets the logger used by connections of this connector
// (default: slog.Default()).
func WithLogger(logger *slog.Logger) ConnectorOption {
	return func(attrs *connAttrs) { attrs.logger = logger }
}

// WithLocation sets the location used as calendar context for temporal
// parameter and column conversions (default: time.Local).
func WithLocation(loc *time.Location) ConnectorOption {
	return func(attrs *connAttrs) { attrs.loc = loc }
}

// A Connector represents the driver in a fixed configuration bound to a
// backend. A Connector can be passed to sql.OpenDB, bypassing the driver
// registry and SetDefaultBackend.
type Connector struct {
	backend Backend
	attrs   *connAttrs
}

// NewConnector returns a connector bound to backend.
func NewConnector(backend Backend, opts ...ConnectorOption) *Connector {
	attrs := defaultConnAttrs()
	for _, opt := range opts {
		opt(attrs)
	}
	return &Connector{backend: backend, attrs: attrs}
}

// Connect implements the driver.Connector interface. Opening never
// blocks: the connection is a call scope handle, not a socket.
func (c *Connector) Connect(_ context.Context) (driver.Conn, error) {
	return newConn(c.backend, c.attrs), nil
}

// Driver implements the driver.Connector interface.
func (c *Connector) Driver() driver.Driver { return stdDriver }
