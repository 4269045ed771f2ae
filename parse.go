package utctime

import (
	"strconv"

	"github.com/go-faster/errors"
)

// Layout is the canonical textual form of DateTime in time.Parse reference
// notation. The year may take more than four digits.
const Layout = "2006-01-02 15:04:05"

// Parse converts text in the canonical "YYYY-MM-DD HH:MM:SS" layout to a
// DateTime.
//
// The year is four or more digits; every other component is exactly two
// digits, zero padded, with literal "-", ":" and a single space as
// separators. Any lexical deviation fails with *Error, and so does a
// well-formed string naming an impossible instant, through the same
// validation as New.
func Parse(s string) (DateTime, error) {
	badLayout := func() (DateTime, error) {
		return DateTime{}, illegalf(FieldLayout, "%q is not in %q layout", s, "YYYY-MM-DD HH:MM:SS")
	}

	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	// Everything after the year is fixed width: "-MM-DD HH:MM:SS".
	const tail = 15
	if n < 4 || len(s)-n != tail {
		return badLayout()
	}
	r := s[n:]
	if r[0] != '-' || r[3] != '-' || r[6] != ' ' || r[9] != ':' || r[12] != ':' {
		return badLayout()
	}
	month, okM := pair(r[1], r[2])
	day, okD := pair(r[4], r[5])
	hour, okH := pair(r[7], r[8])
	minute, okMin := pair(r[10], r[11])
	second, okS := pair(r[13], r[14])
	if !okM || !okD || !okH || !okMin || !okS {
		return badLayout()
	}

	// Lexically sound from here on; failures now name the bad component.
	year, err := strconv.ParseUint(s[:n], 10, 16)
	if err != nil {
		return DateTime{}, illegalf(FieldYear, "year %s out of range", s[:n])
	}
	d, err := New(uint16(year), month, day, hour, minute, second)
	if err != nil {
		return DateTime{}, errors.Wrap(err, "validate")
	}
	return d, nil
}

// pair decodes a zero-padded two-digit component.
func pair(hi, lo byte) (uint8, bool) {
	if !isDigit(hi) || !isDigit(lo) {
		return 0, false
	}
	return (hi-'0')*10 + (lo - '0'), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
