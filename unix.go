package utctime

import (
	"math"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// leapYearsBefore returns the number of leap years in [1, year).
func leapYearsBefore(year uint32) uint32 {
	y := year - 1
	return y/4 - y/100 + y/400
}

// Unix returns seconds elapsed from 1970-01-01 00:00:00 UTC to d.
//
// The only failure mode is overflow of the 32-bit result, which starts
// after 2106-02-07 06:28:15; calendar validity is already guaranteed at
// construction.
func (d DateTime) Unix() (uint32, error) {
	if d.year < epochYear {
		return 0, illegalf(FieldYear, "year %d before Unix epoch", d.year)
	}
	days := uint64(d.year-epochYear) * 365
	days += uint64(leapYearsBefore(uint32(d.year)) - leapYearsBefore(epochYear))
	days += uint64(daysBefore[d.month-1])
	if d.month > 2 && IsLeap(d.year) {
		days++
	}
	days += uint64(d.day) - 1

	s := days*secondsPerDay +
		uint64(d.hour)*secondsPerHour +
		uint64(d.minute)*secondsPerMinute +
		uint64(d.second)
	if s > math.MaxUint32 {
		return 0, illegalf(FieldYear, "%s overflows 32-bit timestamp", d)
	}
	return uint32(s), nil
}

// Time returns the instant as time.Time in UTC.
func (d DateTime) Time() time.Time {
	return time.Date(int(d.year), time.Month(d.month), int(d.day),
		int(d.hour), int(d.minute), int(d.second), 0, time.UTC)
}

// FromTime converts t, viewed in UTC, to a DateTime, truncating sub-second
// precision. Instants before the Unix epoch or after year 65535 are
// rejected.
func FromTime(t time.Time) (DateTime, error) {
	t = t.UTC()
	year := t.Year()
	if year < epochYear || year > math.MaxUint16 {
		return DateTime{}, illegalf(FieldYear, "year %d out of range [%d, %d]", year, epochYear, math.MaxUint16)
	}
	return New(uint16(year), uint8(t.Month()), uint8(t.Day()),
		uint8(t.Hour()), uint8(t.Minute()), uint8(t.Second()))
}
