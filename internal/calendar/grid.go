package calendar

import (
	"fmt"
	"time"
)

// Grid dimensions.
const (
	GregorianGridCells = 42 // 6 weeks
	IFCGridCells       = 28 // 4 weeks
)

// Clock abstracts time.Now so "today" can be injected in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the local wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Today reads the clock once and returns the local calendar date.
func Today(c Clock) GregorianDate {
	return DateOf(c.Now())
}

// CalendarCell is one day position in a generated grid.
//
// For Gregorian grids Month is 0..11 and may belong to an adjacent month.
// For IFC grids Month is the IFC month index 0..12.
type CalendarCell struct {
	Day            int  `json:"day"`
	Month          int  `json:"month"`
	Year           int  `json:"year"`
	IsCurrentMonth bool `json:"is_current_month"`
	IsToday        bool `json:"is_today"`
	IsSelected     bool `json:"is_selected"`
	DayOfWeek      int  `json:"day_of_week"`
}

// GenerateGregorianGrid returns the 42 cells of a six week grid that starts
// on the Sunday on or before the first of month (0-based). Leading and
// trailing cells from adjacent months are included with IsCurrentMonth
// unset. selected may be nil.
func GenerateGregorianGrid(year, month int, selected *GregorianDate, today GregorianDate) ([]CalendarCell, error) {
	if month < 0 || month > 11 {
		return nil, fmt.Errorf("%w: month %d out of range 0..11", ErrInvalidArgument, month)
	}

	first := GregorianDate{Year: year, Month: month, Day: 1}
	start := first.AddDays(-first.Weekday())

	cells := make([]CalendarCell, 0, GregorianGridCells)
	for i := 0; i < GregorianGridCells; i++ {
		d := start.AddDays(i)
		cells = append(cells, CalendarCell{
			Day:            d.Day,
			Month:          d.Month,
			Year:           d.Year,
			IsCurrentMonth: d.Month == month,
			IsToday:        d == today,
			IsSelected:     selected != nil && d == *selected,
			DayOfWeek:      i % DaysPerWeek,
		})
	}

	return cells, nil
}

// GenerateIFCGrid returns the 28 cells of an IFC month. Every IFC month
// starts in the first column, so the week cycle restarts each month.
//
// Today and the selection are converted to IFC and matched by month and day
// within year. A date that converts to Leap Day or Year Day never matches a
// cell; callers show SpecialView for those instead.
func GenerateIFCGrid(year, month int, selected *GregorianDate, today GregorianDate) ([]CalendarCell, error) {
	if month < 0 || month >= MonthsPerYear {
		return nil, fmt.Errorf("%w: IFC month index %d out of range 0..12", ErrInvalidArgument, month)
	}

	todayIFC := GregorianToIFC(today)
	var selectedIFC *IFCDate
	if selected != nil {
		s := GregorianToIFC(*selected)
		selectedIFC = &s
	}

	// Year is compared too, so a grid for another year highlights nothing.
	matches := func(d *IFCDate, day int) bool {
		return d != nil && !d.IsSpecial() && d.Year == year && d.Month == month && d.Day == day
	}

	cells := make([]CalendarCell, 0, IFCGridCells)
	for day := 1; day <= DaysPerMonth; day++ {
		cells = append(cells, CalendarCell{
			Day:            day,
			Month:          month,
			Year:           year,
			IsCurrentMonth: true,
			IsToday:        matches(&todayIFC, day),
			IsSelected:     matches(selectedIFC, day),
			DayOfWeek:      (day - 1) % DaysPerWeek,
		})
	}

	return cells, nil
}
