package scalar

import (
	"time"
)

const (
	naiveDateLayout     = "2006-01-02"
	naiveDateTimeLayout = "2006-01-02T15:04:05"
	// Rendering keeps up to nanoseconds, parsing accepts up to milliseconds.
	naiveDateTimeRenderLayout = "2006-01-02T15:04:05.999999999"
	naiveDateTimeMillisLayout = "2006-01-02T15:04:05.999"
)

var unixEpoch = time.Unix(0, 0).UTC()

// NaiveDate is a calendar date without a time zone.
type NaiveDate struct {
	t time.Time
}

// NewNaiveDate keeps the calendar date of t as seen in t's location.
func NewNaiveDate(t time.Time) NaiveDate {
	y, m, d := t.Date()
	return NaiveDate{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Time returns the date at midnight UTC.
func (d NaiveDate) Time() time.Time { return d.t }

func (NaiveDate) Type() ValueType { return TypeNaiveDate }

func (d NaiveDate) String() string { return d.t.Format(naiveDateLayout) }

func (d NaiveDate) Equal(o Value) bool {
	e, ok := o.(NaiveDate)
	return ok && d.t.Equal(e.t)
}

func (NaiveDate) isValue() {}

// NaiveDateTime is a date and wall clock time without a time zone.
type NaiveDateTime struct {
	t time.Time
}

// NewNaiveDateTime keeps the wall clock reading of t and drops its location.
func NewNaiveDateTime(t time.Time) NaiveDateTime {
	return NaiveDateTime{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// Time returns the wall clock reading in UTC.
func (d NaiveDateTime) Time() time.Time { return d.t }

func (NaiveDateTime) Type() ValueType { return TypeNaiveDateTime }

func (d NaiveDateTime) String() string { return d.t.Format(naiveDateTimeRenderLayout) }

func (d NaiveDateTime) Equal(o Value) bool {
	e, ok := o.(NaiveDateTime)
	return ok && d.t.Equal(e.t)
}

func (NaiveDateTime) isValue() {}

// DateTime is an instant with a fixed UTC offset.
type DateTime struct {
	t time.Time
}

// NewDateTime keeps the instant of t and pins the offset t has at that instant.
func NewDateTime(t time.Time) DateTime {
	_, offset := t.Zone()
	return DateTime{t: t.In(fixedZone(offset))}
}

func (d DateTime) Time() time.Time { return d.t }

// Offset returns the UTC offset in seconds east of UTC.
func (d DateTime) Offset() int {
	_, offset := d.t.Zone()
	return offset
}

func (DateTime) Type() ValueType { return TypeDateTime }

func (d DateTime) String() string { return d.t.Format(time.RFC3339Nano) }

// Equal requires the same instant and the same offset.
func (d DateTime) Equal(o Value) bool {
	e, ok := o.(DateTime)
	return ok && d.t.Equal(e.t) && d.Offset() == e.Offset()
}

func (DateTime) isValue() {}

func fixedZone(offset int) *time.Location {
	if offset == 0 {
		return time.UTC
	}
	return time.FixedZone("", offset)
}
