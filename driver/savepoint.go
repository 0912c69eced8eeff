package driver

import (
	"context"
	"log/slog"
)

const anonymousSavepointName = "anonymous_savepoint"

// Savepoint is a named rollback point within the surrounding backend
// transaction. Savepoints originate from Conn.SetSavepoint and
// Conn.SetNamedSavepoint only.
type Savepoint struct {
	conn   *conn
	handle SavepointHandle
}

// Name returns the savepoint name.
func (sp *Savepoint) Name() string { return sp.handle.Name() }

// SetSavepoint implements the Conn interface.
func (c *conn) SetSavepoint(ctx context.Context) (*Savepoint, error) {
	return c.SetNamedSavepoint(ctx, anonymousSavepointName)
}

// SetNamedSavepoint implements the Conn interface.
func (c *conn) SetNamedSavepoint(ctx context.Context, name string) (*Savepoint, error) {
	handle, err := c.backend.SetSavepoint(ctx, name)
	if err != nil {
		return nil, err
	}
	sp := &Savepoint{conn: c, handle: handle}
	c.rememberSavepoint(sp)
	c.logger.LogAttrs(ctx, slog.LevelDebug, "set savepoint", slog.String("name", name))
	return sp, nil
}

// rememberSavepoint keeps the first savepoint of each call level so that
// it can be released when the call ends. Releasing the first savepoint
// releases all subsequent ones, so later savepoints need no bookkeeping
// of their own.
func (c *conn) rememberSavepoint(sp *Savepoint) {
	invocation := c.backend.Current()
	if invocation.Savepoint() == nil {
		invocation.SetSavepoint(sp)
	}
}

// forgetSavepoint clears the remembered slot of the current call level if
// it holds exactly sp.
func (c *conn) forgetSavepoint(sp *Savepoint) {
	invocation := c.backend.Current()
	if invocation.Savepoint() == sp {
		invocation.SetSavepoint(nil)
	}
}

func (c *conn) validateSavepoint(sp *Savepoint) error {
	if sp == nil || sp.conn != c {
		return ErrInvalidSavepoint
	}
	return nil
}

// ReleaseSavepoint implements the Conn interface.
func (c *conn) ReleaseSavepoint(ctx context.Context, sp *Savepoint) error {
	if err := c.validateSavepoint(sp); err != nil {
		return err
	}
	if err := sp.handle.Release(ctx); err != nil {
		return err
	}
	c.forgetSavepoint(sp)
	c.logger.LogAttrs(ctx, slog.LevelDebug, "release savepoint", slog.String("name", sp.Name()))
	return nil
}

// RollbackToSavepoint implements the Conn interface. A pending error
// condition of the current call level is cleared before the rollback.
func (c *conn) RollbackToSavepoint(ctx context.Context, sp *Savepoint) error {
	if err := c.validateSavepoint(sp); err != nil {
		return err
	}
	c.backend.Current().ClearErrorCondition()
	if err := sp.handle.Rollback(ctx); err != nil {
		return err
	}
	c.forgetSavepoint(sp)
	c.logger.LogAttrs(ctx, slog.LevelDebug, "rollback to savepoint", slog.String("name", sp.Name()))
	return nil
}
