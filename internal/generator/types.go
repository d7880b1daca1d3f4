package generator

import (
	"database/sql/driver"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day. It is written to the store as YYYY-MM-DD.
type Date struct {
	t time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time { return d.t }

func (d Date) String() string { return d.t.Format(dateLayout) }

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

type NullDate struct {
	Date  Date
	Valid bool
}

func (n NullDate) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Date.Value()
}
