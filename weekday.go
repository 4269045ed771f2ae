package utctime

import "fmt"

// Weekday is a day of the week. Sunday is 0 and Saturday is 6.
type Weekday uint8

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (w Weekday) String() string {
	if int(w) < len(weekdayNames) {
		return weekdayNames[w]
	}
	return fmt.Sprintf("Weekday(%d)", uint8(w))
}

// Weekday returns the day of the week of d.
//
// Computed with Zeller's congruence over (year, month, day): no dependency
// on Unix(), so it stays correct past the 32-bit timestamp ceiling.
func (d DateTime) Weekday() Weekday {
	y, m := int(d.year), int(d.month)
	// Zeller counts January and February as months 13 and 14 of the
	// previous year.
	if m < 3 {
		m += 12
		y--
	}
	k, j := y%100, y/100
	h := (int(d.day) + 13*(m+1)/5 + k + k/4 + j/4 + 5*j) % 7
	// Shift from Zeller's Saturday-is-0 to Sunday-is-0.
	return Weekday((h + 6) % 7)
}
