package driver

import (
	"context"
	"database/sql/driver"
)

/*
The driver executes nothing itself: a connection is a handle on the call
scope of backend invoked code, and all SQL runs through the backend's
in-process call interface. The interfaces below describe that interface;
the host environment provides the implementation and binds it via
NewConnector or SetDefaultBackend.
*/

// Executor prepares and runs SQL text already rewritten to the backend's
// native parameter syntax.
type Executor interface {
	// Prepare creates an execution plan for query. numParams is the
	// number of positional parameters the rewriter found.
	Prepare(ctx context.Context, query string, numParams int) (PreparedQuery, error)
}

// PreparedQuery is an execution plan held by the backend.
type PreparedQuery interface {
	// ParameterTypeCodes lists one type code per positional parameter of
	// the plan.
	ParameterTypeCodes() []TypeCode
	// Query runs the plan and returns its row stream.
	Query(ctx context.Context, args []driver.Value) (ResultSet, error)
	// Exec runs the plan and returns the number of affected rows.
	Exec(ctx context.Context, args []driver.Value) (int64, error)
	// Close frees the plan.
	Close() error
}

// ResultSet is the row stream produced by the backend for a query.
type ResultSet interface {
	// Columns returns the column names of the result.
	Columns() []string
	// ColumnTypeCodes lists one type code per column of the result.
	ColumnTypeCodes() []TypeCode
	// Next returns the next row or io.EOF after the last one.
	Next() ([]driver.Value, error)
	// Close releases the row stream.
	Close() error
}

// SavepointHandle is the backend savepoint primitive.
type SavepointHandle interface {
	Name() string
	Release(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Savepointer creates backend savepoints within the surrounding
// transaction.
type Savepointer interface {
	SetSavepoint(ctx context.Context, name string) (SavepointHandle, error)
}

// Invocation is one call level of backend invoked code. Call levels are
// strictly nested and never run concurrently with each other.
type Invocation interface {
	// Savepoint returns the savepoint remembered for this call level, or
	// nil if none is remembered.
	Savepoint() *Savepoint
	// SetSavepoint remembers sp for this call level; nil clears the slot.
	SetSavepoint(sp *Savepoint)
	// ClearErrorCondition resets a pending error condition of this call
	// level before the transaction is rolled back to a savepoint.
	ClearErrorCondition()
}

// InvocationStack tracks the nesting of backend invoked code.
type InvocationStack interface {
	// Current returns the innermost active invocation.
	Current() Invocation
}

// Backend bundles the backend collaborator interfaces a connection
// operates against.
type Backend interface {
	Executor
	Savepointer
	InvocationStack
}
