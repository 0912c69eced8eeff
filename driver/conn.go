package driver

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/url"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yazun/plgo/driver/internal/convert"
	"github.com/yazun/plgo/driver/internal/types"
	"github.com/yazun/plgo/driver/pgsql"
	"github.com/yazun/plgo/sqlrewrite"
)

// ErrTransactionControl is the error raised on commit, rollback or
// autocommit requests: code invoked by the backend already runs inside
// the surrounding transaction and must not end it.
var ErrTransactionControl = errors.New("transaction control is not available within a backend call")

// ErrInvalidSavepoint is the error raised if a savepoint has not been
// created by this driver.
var ErrInvalidSavepoint = errors.New("not a plgo savepoint")

// catalog queries.
const (
	versionQuery  = "SELECT version()"
	catalogQuery  = "SELECT pg_catalog.current_database()"
	typeNameQuery = "SELECT typname FROM pg_catalog.pg_type WHERE oid=?"
)

// check if conn implements all required interfaces.
var (
	_ driver.Conn               = (*conn)(nil)
	_ driver.ConnPrepareContext = (*conn)(nil)
	_ driver.ConnBeginTx        = (*conn)(nil)
	_ driver.QueryerContext     = (*conn)(nil)
	_ driver.ExecerContext      = (*conn)(nil)
	_ driver.NamedValueChecker  = (*conn)(nil)
	_ driver.Validator          = (*conn)(nil)
	_ Conn                      = (*conn)(nil) // plgo enhancements
)

// Conn enhances a connection with backend call scope specific functions.
// Use sql.Conn.Raw to get access to it.
type Conn interface {
	// NativeSQL rewrites client SQL to the backend's parameter syntax
	// and returns it together with the number of parameters found.
	NativeSQL(query string) (string, int)
	// ServerVersion returns the release of the backend the call scope
	// runs in.
	ServerVersion(ctx context.Context) (pgsql.Version, error)
	// Catalog returns the name of the database the call scope runs in.
	Catalog(ctx context.Context) (string, error)
	// BackendTypeName resolves a type oid to the backend type name.
	BackendTypeName(ctx context.Context, oid uint32) (string, error)
	// TypeCodeForOid resolves a type oid to its type code.
	TypeCodeForOid(ctx context.Context, oid uint32) (TypeCode, error)
	// SetSavepoint sets an anonymous savepoint.
	SetSavepoint(ctx context.Context) (*Savepoint, error)
	// SetNamedSavepoint sets a named savepoint.
	SetNamedSavepoint(ctx context.Context, name string) (*Savepoint, error)
	// ReleaseSavepoint releases sp and every savepoint set after it.
	ReleaseSavepoint(ctx context.Context, sp *Savepoint) error
	// RollbackToSavepoint rolls the transaction back to the state at
	// which sp was set.
	RollbackToSavepoint(ctx context.Context, sp *Savepoint) error
}

// unique connection number.
var connNo atomic.Uint64

type conn struct {
	backend Backend
	attrs   *connAttrs
	logger  *slog.Logger

	// server version cache: computed on first use, single assignment.
	// Call scopes never run concurrently, so no locking is needed.
	version    pgsql.Version
	hasVersion bool
}

func newConn(backend Backend, attrs *connAttrs) *conn {
	logger := attrs.logger.With(slog.Uint64("conn", connNo.Add(1)))
	return &conn{backend: backend, attrs: attrs, logger: logger}
}

// Close implements the driver.Conn interface. It is a no-op: the
// connection is scoped to the backend call and never closes.
func (c *conn) Close() error { return nil }

// IsValid implements the driver.Validator interface.
func (c *conn) IsValid() bool { return true }

// NativeSQL implements the Conn interface.
func (c *conn) NativeSQL(query string) (string, int) { return sqlrewrite.Rewrite(query) }

// PrepareContext implements the driver.ConnPrepareContext interface.
func (c *conn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	nativeQuery, numParams := sqlrewrite.Rewrite(query)
	c.logger.LogAttrs(ctx, slog.LevelDebug, "prepare",
		slog.String("sql", nativeQuery),
		slog.Int("parameters", numParams),
	)
	pq, err := c.backend.Prepare(ctx, nativeQuery, numParams)
	if err != nil {
		return nil, err
	}
	return newStmt(c, nativeQuery, numParams, pq), nil
}

// BeginTx implements the driver.ConnBeginTx interface. Transactions
// cannot be started: the backend call is already under transaction
// control.
func (c *conn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	return nil, ErrTransactionControl
}

// QueryContext implements the driver.QueryerContext interface.
func (c *conn) QueryContext(ctx context.Context, query string, nvargs []driver.NamedValue) (driver.Rows, error) {
	if len(nvargs) != 0 {
		return nil, driver.ErrSkip // fast path not possible (prepare needed)
	}
	nativeQuery, numParams := sqlrewrite.Rewrite(query)
	pq, err := c.backend.Prepare(ctx, nativeQuery, numParams)
	if err != nil {
		return nil, err
	}
	rs, err := pq.Query(ctx, nil)
	if err != nil {
		pq.Close()
		return nil, err
	}
	return &queryRows{rs: rs, pq: pq}, nil
}

// ExecContext implements the driver.ExecerContext interface.
func (c *conn) ExecContext(ctx context.Context, query string, nvargs []driver.NamedValue) (driver.Result, error) {
	if len(nvargs) != 0 {
		return nil, driver.ErrSkip // fast path not possible (prepare needed)
	}
	nativeQuery, numParams := sqlrewrite.Rewrite(query)
	pq, err := c.backend.Prepare(ctx, nativeQuery, numParams)
	if err != nil {
		return nil, err
	}
	defer pq.Close()
	numRows, err := pq.Exec(ctx, nil)
	if err != nil {
		return nil, err
	}
	return driver.RowsAffected(numRows), nil
}

// CheckNamedValue implements the driver.NamedValueChecker interface. It
// admits the driver specific argument types; everything else is left to
// the default checks.
func (c *conn) CheckNamedValue(nv *driver.NamedValue) error {
	switch nv.Value.(type) {
	case pgsql.Date, pgsql.Time, pgsql.Timestamp, pgsql.BitSet, decimal.Decimal, *big.Int, *url.URL, uuid.UUID:
		return nil
	default:
		return driver.ErrSkip
	}
}

// ServerVersion implements the Conn interface. The version is computed
// on first use and cached for the lifetime of the connection; it is
// never invalidated.
func (c *conn) ServerVersion(ctx context.Context) (pgsql.Version, error) {
	if c.hasVersion {
		return c.version, nil
	}
	s, found, err := c.queryString(ctx, versionQuery)
	if err != nil {
		return pgsql.Version{}, err
	}
	if !found {
		return pgsql.Version{}, errors.New("cannot retrieve product version number")
	}
	version, err := pgsql.ParseVersion(s)
	if err != nil {
		return pgsql.Version{}, err
	}
	c.version, c.hasVersion = version, true
	return version, nil
}

// Catalog implements the Conn interface.
func (c *conn) Catalog(ctx context.Context) (string, error) {
	name, found, err := c.queryString(ctx, catalogQuery)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.New("cannot retrieve current database name")
	}
	return name, nil
}

// BackendTypeName implements the Conn interface.
func (c *conn) BackendTypeName(ctx context.Context, oid uint32) (string, error) {
	name, found, err := c.queryString(ctx, typeNameQuery, int64(oid))
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("cannot find backend type with oid=%d", oid)
	}
	return name, nil
}

// TypeCodeForOid implements the Conn interface.
func (c *conn) TypeCodeForOid(ctx context.Context, oid uint32) (TypeCode, error) {
	name, err := c.BackendTypeName(ctx, oid)
	if err != nil {
		return types.TcOther, err
	}
	return types.ForName(name), nil
}

// queryString runs a single value catalog query and returns the first
// column of the first row coerced to string. found is false if the query
// produced no row.
func (c *conn) queryString(ctx context.Context, query string, args ...driver.Value) (s string, found bool, err error) {
	nativeQuery, numParams := sqlrewrite.Rewrite(query)
	pq, err := c.backend.Prepare(ctx, nativeQuery, numParams)
	if err != nil {
		return "", false, err
	}
	defer pq.Close()
	rs, err := pq.Query(ctx, args)
	if err != nil {
		return "", false, err
	}
	defer rs.Close()
	row, err := rs.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		return "", false, err
	}
	if len(row) < 1 {
		return "", false, fmt.Errorf("empty row for query %s", nativeQuery)
	}
	v, err := convert.Coerce(types.TcVarchar, row[0])
	if err != nil {
		return "", false, err
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("unexpected value %[1]T %[1]v for query %[2]s", row[0], nativeQuery)
	}
	return s, true, nil
}
