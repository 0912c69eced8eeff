package pgsql

import "time"

// Canonical text formats of the temporal backend types.
const (
	DateFormat      = "2006-01-02"
	TimeFormat      = "15:04:05"
	TimestampFormat = "2006-01-02 15:04:05"
)

// Date, Time and Timestamp distinguish the three temporal column classes
// of the backend. All three are represented as time.Time values: a Date
// carries a midnight time of day and a Time carries the epoch date
// (1970-01-01).
type (
	Date      time.Time
	Time      time.Time
	Timestamp time.Time
)

func (d Date) String() string { return time.Time(d).Format(DateFormat) }

func (t Time) String() string { return time.Time(t).Format(TimeFormat) }

func (ts Timestamp) String() string { return time.Time(ts).Format(TimestampFormat) }
