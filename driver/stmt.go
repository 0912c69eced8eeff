package driver

import (
	"context"
	"database/sql/driver"
	"time"

	"github.com/yazun/plgo/driver/internal/convert"
	"github.com/yazun/plgo/driver/internal/types"
)

// check if statements implements all required interfaces.
var (
	_ driver.Stmt             = (*stmt)(nil)
	_ driver.StmtExecContext  = (*stmt)(nil)
	_ driver.StmtQueryContext = (*stmt)(nil)
)

type stmt struct {
	conn      *conn
	query     string
	numParams int
	pq        PreparedQuery
}

func newStmt(conn *conn, query string, numParams int, pq PreparedQuery) *stmt {
	return &stmt{conn: conn, query: query, numParams: numParams, pq: pq}
}

// Close implements the driver.Stmt interface.
func (s *stmt) Close() error { return s.pq.Close() }

// NumInput implements the driver.Stmt interface: the number of
// placeholders found by the rewriter.
func (s *stmt) NumInput() int { return s.numParams }

// QueryContext implements the driver.StmtQueryContext interface.
func (s *stmt) QueryContext(ctx context.Context, nvargs []driver.NamedValue) (driver.Rows, error) {
	args, err := s.bindArgs(nvargs)
	if err != nil {
		return nil, err
	}
	rs, err := s.pq.Query(ctx, args)
	if err != nil {
		return nil, err
	}
	return &queryRows{rs: rs}, nil
}

// ExecContext implements the driver.StmtExecContext interface.
func (s *stmt) ExecContext(ctx context.Context, nvargs []driver.NamedValue) (driver.Result, error) {
	args, err := s.bindArgs(nvargs)
	if err != nil {
		return nil, err
	}
	numRows, err := s.pq.Exec(ctx, args)
	if err != nil {
		return nil, err
	}
	return driver.RowsAffected(numRows), nil
}

// bindArgs coerces the query arguments toward the parameter type codes
// of the execution plan.
func (s *stmt) bindArgs(nvargs []driver.NamedValue) ([]driver.Value, error) {
	if len(nvargs) == 0 {
		return nil, nil
	}
	tcs := s.pq.ParameterTypeCodes()
	args := make([]driver.Value, len(nvargs))
	for i, nv := range nvargs {
		tc := types.TcOther
		if i < len(tcs) {
			tc = tcs[i]
		}
		arg, err := bindArg(tc, nv.Value, s.conn.attrs.loc)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return args, nil
}

func bindArg(tc types.TypeCode, v any, loc *time.Location) (driver.Value, error) {
	switch {
	case tc.IsNumeric():
		return convert.CoerceNumeric(tc, v)
	case tc.IsTemporal():
		return convert.CoerceTemporal(tc, v, loc)
	case tc.IsString() || tc == types.TcDatalink:
		return convert.Coerce(tc, v)
	default:
		// parameter type unknown to the catalog: hand the value to the
		// backend as is
		return v, nil
	}
}

// check if rows implements all required interfaces.
var (
	_ driver.Rows                           = (*queryRows)(nil)
	_ driver.RowsColumnTypeDatabaseTypeName = (*queryRows)(nil)
)

// queryRows adapts a backend result set to the driver.Rows interface.
type queryRows struct {
	rs ResultSet
	pq PreparedQuery // direct queries only: the plan closes with the rows
}

// Columns implements the driver.Rows interface.
func (r *queryRows) Columns() []string { return r.rs.Columns() }

// Close implements the driver.Rows interface.
func (r *queryRows) Close() error {
	err := r.rs.Close()
	if r.pq != nil {
		if closeErr := r.pq.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}

// Next implements the driver.Rows interface.
func (r *queryRows) Next(dest []driver.Value) error {
	row, err := r.rs.Next()
	if err != nil {
		return err // io.EOF ends the stream
	}
	copy(dest, row)
	return nil
}

// ColumnTypeDatabaseTypeName implements the driver.RowsColumnTypeDatabaseTypeName interface.
func (r *queryRows) ColumnTypeDatabaseTypeName(idx int) string {
	if tcs := r.rs.ColumnTypeCodes(); idx < len(tcs) {
		return tcs[idx].String()
	}
	return types.TcOther.String()
}
