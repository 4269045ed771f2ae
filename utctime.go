// Package utctime implements a minimal immutable UTC date-time value with
// second precision.
//
// A DateTime is constructed from calendar components or from the canonical
// "YYYY-MM-DD HH:MM:SS" layout, converts to 32-bit Unix seconds, and knows
// its day of the week. Construction validates; a DateTime that exists names
// a real proleptic-Gregorian UTC instant in 1970 or later.
package utctime

import "fmt"

// DateTime represents a UTC calendar instant.
//
// The zero value is not a valid instant; construct via New, Parse or
// FromTime. DateTime is comparable, and == reports equality of all six
// components.
type DateTime struct {
	year                 uint16
	month, day           uint8
	hour, minute, second uint8
}

// New returns the DateTime for the given calendar components.
//
// Components are validated in order month, day, hour, minute, second, year;
// the first violation is reported as *Error. Years before 1970 are rejected:
// the type cannot name pre-epoch instants. Nothing is clamped or carried
// over, so day 32 fails instead of rolling into the next month.
func New(year uint16, month, day, hour, minute, second uint8) (DateTime, error) {
	switch {
	case month < 1 || month > 12:
		return DateTime{}, illegalf(FieldMonth, "month %d out of range [1, 12]", month)
	case day < 1 || day > DaysInMonth(year, month):
		return DateTime{}, illegalf(FieldDay, "day %d out of range [1, %d]", day, DaysInMonth(year, month))
	case hour > 23:
		return DateTime{}, illegalf(FieldHour, "hour %d out of range [0, 23]", hour)
	case minute > 59:
		return DateTime{}, illegalf(FieldMinute, "minute %d out of range [0, 59]", minute)
	case second > 59:
		return DateTime{}, illegalf(FieldSecond, "second %d out of range [0, 59]", second)
	case year < epochYear:
		return DateTime{}, illegalf(FieldYear, "year %d before Unix epoch", year)
	}
	return DateTime{
		year:   year,
		month:  month,
		day:    day,
		hour:   hour,
		minute: minute,
		second: second,
	}, nil
}

// Year returns the year, 1970 or later for valid values.
func (d DateTime) Year() uint16 { return d.year }

// Month returns the month, January being 1.
func (d DateTime) Month() uint8 { return d.month }

// Day returns the day of the month.
func (d DateTime) Day() uint8 { return d.day }

// Hour returns the hour within the day, in [0, 23].
func (d DateTime) Hour() uint8 { return d.hour }

// Minute returns the minute within the hour, in [0, 59].
func (d DateTime) Minute() uint8 { return d.minute }

// Second returns the second within the minute, in [0, 59].
func (d DateTime) Second() uint8 { return d.second }

// IsZero reports whether d is the invalid zero value.
func (d DateTime) IsZero() bool {
	return d == DateTime{}
}

func (d DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		d.year, d.month, d.day, d.hour, d.minute, d.second)
}

// Compare returns -1 if d is before other, 0 if they are equal and 1 if d
// is after other, comparing components from year down to second. For valid
// values this coincides with epoch-second order.
func (d DateTime) Compare(other DateTime) int {
	a := [6]uint16{d.year, uint16(d.month), uint16(d.day), uint16(d.hour), uint16(d.minute), uint16(d.second)}
	b := [6]uint16{other.year, uint16(other.month), uint16(other.day), uint16(other.hour), uint16(other.minute), uint16(other.second)}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Before reports whether d is strictly before other.
func (d DateTime) Before(other DateTime) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly after other.
func (d DateTime) After(other DateTime) bool {
	return d.Compare(other) > 0
}

// MarshalText implements encoding.TextMarshaler using the canonical layout.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting exactly what
// Parse accepts.
func (d *DateTime) UnmarshalText(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
