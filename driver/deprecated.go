package driver

import "database/sql/driver"

// deprecated driver interface methods; the context variants are used
// instead.
func (*conn) Prepare(query string) (driver.Stmt, error)       { panic("deprecated") }
func (*conn) Begin() (driver.Tx, error)                       { panic("deprecated") }
func (*stmt) Exec(args []driver.Value) (driver.Result, error) { panic("deprecated") }
func (*stmt) Query(args []driver.Value) (driver.Rows, error)  { panic("deprecated") }
