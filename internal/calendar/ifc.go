// Package calendar provides Gregorian and International Fixed Calendar
// (IFC) date math and calendar grid generation.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// =============================================================================
// Error Types
// =============================================================================

// MinYear and MaxYear bound the years a date can be selected in; outside
// them the YYYY-MM-DD form no longer has four digits.
const (
	MinYear = 0
	MaxYear = 9999
)

var (
	// ErrInvalidDateInput is returned when user supplied date text cannot be
	// parsed or names a date that does not exist.
	ErrInvalidDateInput = errors.New("invalid date input")

	// ErrInvalidArgument is returned when a month index or day is outside the
	// range a conversion or grid function accepts.
	ErrInvalidArgument = errors.New("invalid argument")
)

// IsInvalidInput reports whether err is either of the calendar error kinds.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidDateInput) || errors.Is(err, ErrInvalidArgument)
}

// =============================================================================
// Constants and Tables
// =============================================================================

const (
	// MonthsPerYear is the number of IFC months.
	MonthsPerYear = 13

	// DaysPerMonth is the length of every IFC month.
	DaysPerMonth = 28

	// DaysPerWeek is the number of columns in every grid.
	DaysPerWeek = 7

	// Sol is the index of the month inserted between June and July.
	Sol = 6
)

// ifcMonths maps an IFC month index (0..12) to its name.
var ifcMonths = [MonthsPerYear]string{
	"January", "February", "March", "April", "May", "June",
	"Sol", "July", "August", "September", "October", "November", "December",
}

var dayNames = [DaysPerWeek]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// IFCMonths returns the 13 IFC month names in order.
// The returned slice is a copy; the table itself never changes.
func IFCMonths() []string {
	out := make([]string, len(ifcMonths))
	copy(out, ifcMonths[:])
	return out
}

// DayNames returns the abbreviated weekday headers, Sunday first.
func DayNames() []string {
	out := make([]string, len(dayNames))
	copy(out, dayNames[:])
	return out
}

// IFCMonthName returns the name of the IFC month at index.
func IFCMonthName(index int) (string, error) {
	if index < 0 || index >= MonthsPerYear {
		return "", fmt.Errorf("%w: IFC month index %d out of range 0..12", ErrInvalidArgument, index)
	}
	return ifcMonths[index], nil
}

// IFCMonthIndex looks up an IFC month by name, ignoring case. It returns -1
// when the name is not an IFC month.
func IFCMonthIndex(name string) int {
	for i, m := range ifcMonths {
		if strings.EqualFold(m, name) {
			return i
		}
	}
	return -1
}

// =============================================================================
// Date Types
// =============================================================================

// GregorianDate is a calendar date with no time component.
// Month is zero based: 0 is January and 11 is December.
type GregorianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewGregorianDate builds a GregorianDate from a 0-based month and checks
// that the day exists in that month.
func NewGregorianDate(year, month, day int) (GregorianDate, error) {
	if month < 0 || month > 11 {
		return GregorianDate{}, fmt.Errorf("%w: month %d out of range 0..11", ErrInvalidArgument, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return GregorianDate{}, fmt.Errorf("%w: day %d out of range for %s %d",
			ErrInvalidArgument, day, time.Month(month+1), year)
	}
	return GregorianDate{Year: year, Month: month, Day: day}, nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) GregorianDate {
	y, m, d := t.Date()
	return GregorianDate{Year: y, Month: int(m) - 1, Day: d}
}

// Time returns midnight UTC on d.
func (d GregorianDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of week of d, 0 for Sunday.
func (d GregorianDate) Weekday() int {
	return int(d.Time().Weekday())
}

// AddDays returns d shifted by n days.
func (d GregorianDate) AddDays(n int) GregorianDate {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d GregorianDate) String() string {
	return FormatDate(d)
}

// SpecialDay identifies the intercalary days that sit outside every month.
type SpecialDay string

const (
	NotSpecial SpecialDay = ""
	LeapDay    SpecialDay = "Leap Day"
	YearDay    SpecialDay = "Year Day"
)

// IFCDate is either an ordinary date (Month and Day set) or one of the two
// special days, in which case only Year and Special are meaningful.
type IFCDate struct {
	Year    int        `json:"year"`
	Month   int        `json:"month"` // 0..12, ignored for special days
	Day     int        `json:"day"`   // 1..28, ignored for special days
	Special SpecialDay `json:"special,omitempty"`
}

// IsSpecial reports whether d is Leap Day or Year Day.
func (d IFCDate) IsSpecial() bool {
	return d.Special != NotSpecial
}

// MonthName returns the IFC month name, or "" for special days.
func (d IFCDate) MonthName() string {
	if d.IsSpecial() || d.Month < 0 || d.Month >= MonthsPerYear {
		return ""
	}
	return ifcMonths[d.Month]
}

func (d IFCDate) String() string {
	return FormatIFCDate(d)
}

// =============================================================================
// Calendar Math
// =============================================================================

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	return datetime.DaysInYear(year)
}

// DaysInMonth returns the length of a 0-based Gregorian month. month must
// be in 0..11.
func DaysInMonth(year, month int) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month+1)))
}

// DayOfYear returns the 1-based ordinal of d within its year.
//
// The day of month is not validated: an impossible date such as April 31
// yields the naive sum, same as the 1st of the following month.
func DayOfYear(d GregorianDate) int {
	months := min(max(d.Month, 0), 12)

	doy := 0
	for i := 0; i < months; i++ {
		doy += DaysInMonth(d.Year, i)
	}
	return doy + d.Day
}

// GregorianToIFC converts a Gregorian date to its IFC equivalent.
//
// The mapping works on the raw day of year. Day 366 of a leap year is Leap
// Day and day 365 is Year Day, so in leap years December 30 is Year Day and
// December 31 is Leap Day. Ordinary dates are never shifted to make room
// for Leap Day.
func GregorianToIFC(d GregorianDate) IFCDate {
	doy := DayOfYear(d)
	leap := IsLeapYear(d.Year)

	if doy == 366 && leap {
		return IFCDate{Year: d.Year, Special: LeapDay}
	}
	if doy == 365 || (doy == 366 && !leap) {
		return IFCDate{Year: d.Year, Special: YearDay}
	}

	return IFCDate{
		Year:  d.Year,
		Month: (doy - 1) / DaysPerMonth,
		Day:   (doy-1)%DaysPerMonth + 1,
	}
}

// IFCToGregorian converts an ordinary IFC date to a Gregorian date in the
// same year. Special days have no month and day, so they cannot be passed
// here.
func IFCToGregorian(year, month, day int) (GregorianDate, error) {
	if month < 0 || month >= MonthsPerYear {
		return GregorianDate{}, fmt.Errorf("%w: IFC month index %d out of range 0..12", ErrInvalidArgument, month)
	}
	if day < 1 || day > DaysPerMonth {
		return GregorianDate{}, fmt.Errorf("%w: IFC day %d out of range 1..28", ErrInvalidArgument, day)
	}

	doy := month*DaysPerMonth + day
	return DateOf(time.Date(year, time.January, doy, 0, 0, 0, 0, time.UTC)), nil
}

// SpecialDayToGregorian returns the Gregorian date a special day falls on
// in year. It is the inverse of GregorianToIFC for the two intercalary days.
func SpecialDayToGregorian(year int, kind SpecialDay) (GregorianDate, error) {
	var doy int
	switch kind {
	case YearDay:
		doy = 365
	case LeapDay:
		if !IsLeapYear(year) {
			return GregorianDate{}, fmt.Errorf("%w: %d has no Leap Day", ErrInvalidArgument, year)
		}
		doy = 366
	default:
		return GregorianDate{}, fmt.Errorf("%w: %q is not a special day", ErrInvalidArgument, kind)
	}
	return DateOf(time.Date(year, time.January, doy, 0, 0, 0, 0, time.UTC)), nil
}

// =============================================================================
// Parsing and Formatting
// =============================================================================

// isoLayout is the date-only layout accepted from users.
const isoLayout = "2006-01-02"

// ParseDate parses a date in YYYY-MM-DD format.
func ParseDate(s string) (GregorianDate, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return GregorianDate{}, fmt.Errorf("%w: %q, use YYYY-MM-DD", ErrInvalidDateInput, s)
	}
	return DateOf(t), nil
}

// FormatDate formats d as YYYY-MM-DD.
func FormatDate(d GregorianDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// FormatGregorian formats d in long form, e.g. "October 19, 2026".
func FormatGregorian(d GregorianDate) string {
	return fmt.Sprintf("%s %d, %d", time.Month(d.Month+1), d.Day, d.Year)
}

// FormatIFCDate renders "Sol 15, 2024" for ordinary dates and
// "Year Day, 2024" for special days.
func FormatIFCDate(d IFCDate) string {
	if d.IsSpecial() {
		return fmt.Sprintf("%s, %d", d.Special, d.Year)
	}
	return fmt.Sprintf("%s %d, %d", d.MonthName(), d.Day, d.Year)
}
