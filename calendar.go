package utctime

// epochYear is the lower bound of the supported year range: unsigned
// timestamps cannot name earlier instants.
const epochYear = 1970

// monthDays holds the length of each month in a non-leap year.
var monthDays = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysBefore holds the cumulative number of days preceding each month in a
// non-leap year.
var daysBefore = [12]uint16{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// IsLeap reports whether year is a leap year under the Gregorian rule:
// divisible by 4, except centuries not divisible by 400.
func IsLeap(year uint16) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year uint16) uint16 {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month of year, or 0
// if month is outside [1, 12].
func DaysInMonth(year uint16, month uint8) uint8 {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}
