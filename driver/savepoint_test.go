package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSavepoint(t *testing.T) {
	backend := newTestBackend()
	c := newTestConn(backend)

	sp, err := c.SetSavepoint(context.Background())
	require.NoError(t, err)
	assert.Equal(t, anonymousSavepointName, sp.Name())

	named, err := c.SetNamedSavepoint(context.Background(), "before_update")
	require.NoError(t, err)
	assert.Equal(t, "before_update", named.Name())

	require.Len(t, backend.savepoints, 2)
}

func TestRememberFirstSavepoint(t *testing.T) {
	backend := newTestBackend()
	c := newTestConn(backend)

	first, err := c.SetNamedSavepoint(context.Background(), "first")
	require.NoError(t, err)

	// the call level remembers only its first savepoint
	_, err = c.SetNamedSavepoint(context.Background(), "second")
	require.NoError(t, err)
	assert.Same(t, first, backend.invocation.sp)
}

func TestReleaseSavepoint(t *testing.T) {
	backend := newTestBackend()
	c := newTestConn(backend)

	sp, err := c.SetNamedSavepoint(context.Background(), "before_update")
	require.NoError(t, err)
	require.Same(t, sp, backend.invocation.sp)

	require.NoError(t, c.ReleaseSavepoint(context.Background(), sp))
	assert.True(t, backend.savepoints[0].released)
	assert.Nil(t, backend.invocation.sp)
}

func TestReleaseLaterSavepoint(t *testing.T) {
	backend := newTestBackend()
	c := newTestConn(backend)

	first, err := c.SetNamedSavepoint(context.Background(), "first")
	require.NoError(t, err)
	second, err := c.SetNamedSavepoint(context.Background(), "second")
	require.NoError(t, err)

	// releasing a later savepoint leaves the remembered first one alone
	require.NoError(t, c.ReleaseSavepoint(context.Background(), second))
	assert.True(t, backend.savepoints[1].released)
	assert.Same(t, first, backend.invocation.sp)
}

func TestRollbackToSavepoint(t *testing.T) {
	backend := newTestBackend()
	c := newTestConn(backend)

	sp, err := c.SetNamedSavepoint(context.Background(), "before_update")
	require.NoError(t, err)

	require.NoError(t, c.RollbackToSavepoint(context.Background(), sp))
	assert.True(t, backend.savepoints[0].rolledBack)
	// a pending error condition is cleared before the rollback
	assert.Equal(t, 1, backend.invocation.errorsCleared)
	assert.Nil(t, backend.invocation.sp)
}

func TestInvalidSavepoint(t *testing.T) {
	c := newTestConn(newTestBackend())
	other := newTestConn(newTestBackend())

	require.ErrorIs(t, c.ReleaseSavepoint(context.Background(), nil), ErrInvalidSavepoint)
	require.ErrorIs(t, c.RollbackToSavepoint(context.Background(), nil), ErrInvalidSavepoint)

	sp, err := other.SetSavepoint(context.Background())
	require.NoError(t, err)
	// a savepoint belongs to the connection that created it
	require.ErrorIs(t, c.ReleaseSavepoint(context.Background(), sp), ErrInvalidSavepoint)
}
