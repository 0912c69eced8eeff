package driver

// Scripted fakes of the backend collaborator interfaces.

import (
	"context"
	"database/sql/driver"
	"io"
	"log/slog"
	"time"
)

type testInvocation struct {
	sp            *Savepoint
	errorsCleared int
}

func (inv *testInvocation) Savepoint() *Savepoint      { return inv.sp }
func (inv *testInvocation) SetSavepoint(sp *Savepoint) { inv.sp = sp }
func (inv *testInvocation) ClearErrorCondition()       { inv.errorsCleared++ }

type testSavepointHandle struct {
	name       string
	released   bool
	rolledBack bool
}

func (h *testSavepointHandle) Name() string { return h.name }

func (h *testSavepointHandle) Release(_ context.Context) error {
	h.released = true
	return nil
}

func (h *testSavepointHandle) Rollback(_ context.Context) error {
	h.rolledBack = true
	return nil
}

// testResult is the scripted result of one query.
type testResult struct {
	columns []string
	tcs     []TypeCode
	rows    [][]driver.Value
}

type testResultSet struct {
	result *testResult
	idx    int
	closed bool
}

func (rs *testResultSet) Columns() []string           { return rs.result.columns }
func (rs *testResultSet) ColumnTypeCodes() []TypeCode { return rs.result.tcs }
func (rs *testResultSet) Close() error                { rs.closed = true; return nil }

func (rs *testResultSet) Next() ([]driver.Value, error) {
	if rs.idx >= len(rs.result.rows) {
		return nil, io.EOF
	}
	row := rs.result.rows[rs.idx]
	rs.idx++
	return row, nil
}

type testPreparedQuery struct {
	backend *testBackend
	query   string
	tcs     []TypeCode
	closed  bool
}

func (pq *testPreparedQuery) ParameterTypeCodes() []TypeCode { return pq.tcs }
func (pq *testPreparedQuery) Close() error                   { pq.closed = true; return nil }

func (pq *testPreparedQuery) Query(_ context.Context, args []driver.Value) (ResultSet, error) {
	pq.backend.args = append(pq.backend.args, args)
	result, ok := pq.backend.results[pq.query]
	if !ok {
		result = &testResult{}
	}
	return &testResultSet{result: result}, nil
}

func (pq *testPreparedQuery) Exec(_ context.Context, args []driver.Value) (int64, error) {
	pq.backend.args = append(pq.backend.args, args)
	return pq.backend.rowsAffected, nil
}

// testBackend is a scripted in-process backend.
type testBackend struct {
	invocation   *testInvocation
	results      map[string]*testResult // keyed by native query
	paramTypes   map[string][]TypeCode  // keyed by native query
	prepared     []string               // prepared native queries in order
	numParams    []int                  // reported parameter counts in order
	args         [][]driver.Value       // bound arguments in order
	rowsAffected int64
	savepoints   []*testSavepointHandle
}

func newTestBackend() *testBackend {
	return &testBackend{
		invocation: &testInvocation{},
		results:    map[string]*testResult{},
		paramTypes: map[string][]TypeCode{},
	}
}

func (b *testBackend) Prepare(_ context.Context, query string, numParams int) (PreparedQuery, error) {
	b.prepared = append(b.prepared, query)
	b.numParams = append(b.numParams, numParams)
	return &testPreparedQuery{backend: b, query: query, tcs: b.paramTypes[query]}, nil
}

func (b *testBackend) SetSavepoint(_ context.Context, name string) (SavepointHandle, error) {
	h := &testSavepointHandle{name: name}
	b.savepoints = append(b.savepoints, h)
	return h, nil
}

func (b *testBackend) Current() Invocation { return b.invocation }

// numPrepared returns how often the native query was prepared.
func (b *testBackend) numPrepared(query string) int {
	n := 0
	for _, q := range b.prepared {
		if q == query {
			n++
		}
	}
	return n
}

func newTestConn(backend *testBackend) *conn {
	connector := NewConnector(backend,
		WithLogger(slog.New(slog.DiscardHandler)),
		WithLocation(time.UTC),
	)
	c, _ := connector.Connect(context.Background())
	return c.(*conn)
}
