package driver

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
)

// DriverVersion is the version number of the plgo driver.
const DriverVersion = "0.12.0"

// DriverName is the driver name to use with sql.Open.
const DriverName = "spi"

// DefaultDSN denotes the connection of the surrounding backend call, the
// only form of connection the driver supports.
const DefaultDSN = "default:connection"

// ErrNoBackend is the error raised if a connection is opened before the
// host environment bound a backend with SetDefaultBackend.
var ErrNoBackend = errors.New("no backend bound")

func init() {
	sql.Register(DriverName, stdDriver)
}

var stdDriver = &Driver{}

// check if driver implements all required interfaces.
var (
	_ driver.Driver        = (*Driver)(nil)
	_ driver.DriverContext = (*Driver)(nil)
)

// Driver is the go sql driver implementation for SQL execution through
// the backend's in-process call interface.
type Driver struct{}

// default backend, bound once by the host environment on process start
// before any SQL is issued.
var (
	defaultBackend Backend
	defaultOpts    []ConnectorOption
)

// SetDefaultBackend binds the process wide backend used by
// sql.Open(DriverName, DefaultDSN).
func SetDefaultBackend(backend Backend, opts ...ConnectorOption) {
	defaultBackend, defaultOpts = backend, opts
}

// Open implements the driver.Driver interface.
func (d *Driver) Open(dsn string) (driver.Conn, error) {
	connector, err := d.OpenConnector(dsn)
	if err != nil {
		return nil, err
	}
	return connector.Connect(context.Background())
}

// OpenConnector implements the driver.DriverContext interface.
func (d *Driver) OpenConnector(dsn string) (driver.Connector, error) {
	if dsn != "" && dsn != DefaultDSN {
		return nil, fmt.Errorf("unsupported dsn %q: the driver only connects to the surrounding backend call", dsn)
	}
	if defaultBackend == nil {
		return nil, ErrNoBackend
	}
	return NewConnector(defaultBackend, defaultOpts...), nil
}

// Name returns the driver name.
func (d *Driver) Name() string { return DriverName }

// Version returns the driver version.
func (d *Driver) Version() string { return DriverVersion }
