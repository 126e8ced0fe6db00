package calendar

import (
	"fmt"
	"strings"
	"time"
)

// GridKind tells which calendar a grid belongs to.
type GridKind string

const (
	KindGregorian GridKind = "gregorian"
	KindIFC       GridKind = "ifc"
)

// ParseGridKind parses "gregorian" or "ifc".
func ParseGridKind(s string) (GridKind, error) {
	switch GridKind(strings.ToLower(s)) {
	case KindGregorian:
		return KindGregorian, nil
	case KindIFC:
		return KindIFC, nil
	default:
		return "", fmt.Errorf("%w: unknown calendar %q, use gregorian or ifc", ErrInvalidArgument, s)
	}
}

// Grid is a generated month with the context needed to render it.
type Grid struct {
	Kind  GridKind
	Year  int
	Month int
	Cells []CalendarCell
}

// NewGrid generates the grid of the given kind.
func NewGrid(kind GridKind, year, month int, selected *GregorianDate, today GregorianDate) (Grid, error) {
	var (
		cells []CalendarCell
		err   error
	)
	switch kind {
	case KindGregorian:
		cells, err = GenerateGregorianGrid(year, month, selected, today)
	case KindIFC:
		cells, err = GenerateIFCGrid(year, month, selected, today)
	default:
		err = fmt.Errorf("%w: unknown calendar %q", ErrInvalidArgument, kind)
	}
	if err != nil {
		return Grid{}, err
	}
	return Grid{Kind: kind, Year: year, Month: month, Cells: cells}, nil
}

// CellClass values attached to rendered cells.
const (
	ClassOtherMonth = "other-month"
	ClassToday      = "today"
	ClassSelected   = "selected"
)

// CellView is a rendered cell. Select is the Gregorian date a click on the
// cell selects, so both calendars can be kept on one shared selection.
type CellView struct {
	Label   string        `json:"label"`
	Classes []string      `json:"classes,omitempty"`
	Select  GregorianDate `json:"select"`
}

// HasClass reports whether the cell carries class.
func (c CellView) HasClass(class string) bool {
	for _, cl := range c.Classes {
		if cl == class {
			return true
		}
	}
	return false
}

// ViewModel is everything a presentation layer needs to draw one calendar.
// Weeks is empty for a special-day view, which has a single Special cell.
type ViewModel struct {
	Kind    GridKind     `json:"kind"`
	Title   string       `json:"title"`
	Headers []string     `json:"headers"`
	Weeks   [][]CellView `json:"weeks,omitempty"`
	Special *CellView    `json:"special,omitempty"`
}

// Render turns a grid into rows of labelled cells.
func Render(g Grid) ViewModel {
	vm := ViewModel{
		Kind:    g.Kind,
		Title:   gridTitle(g),
		Headers: DayNames(),
	}

	var week []CellView
	for _, cell := range g.Cells {
		week = append(week, renderCell(g, cell))
		if len(week) == DaysPerWeek {
			vm.Weeks = append(vm.Weeks, week)
			week = nil
		}
	}
	if len(week) > 0 {
		vm.Weeks = append(vm.Weeks, week)
	}

	return vm
}

func renderCell(g Grid, cell CalendarCell) CellView {
	cv := CellView{Label: fmt.Sprint(cell.Day)}

	if !cell.IsCurrentMonth {
		cv.Classes = append(cv.Classes, ClassOtherMonth)
	}
	if cell.IsToday {
		cv.Classes = append(cv.Classes, ClassToday)
	}
	if cell.IsSelected {
		cv.Classes = append(cv.Classes, ClassSelected)
	}

	if g.Kind == KindIFC {
		// Grid cells are always valid ordinary IFC dates.
		cv.Select, _ = IFCToGregorian(cell.Year, cell.Month, cell.Day)
	} else {
		cv.Select = GregorianDate{Year: cell.Year, Month: cell.Month, Day: cell.Day}
	}

	return cv
}

func gridTitle(g Grid) string {
	if g.Kind == KindIFC {
		name, err := IFCMonthName(g.Month)
		if err != nil {
			name = "SPECIAL"
		}
		return fmt.Sprintf("%s %d", name, g.Year)
	}
	return strings.ToUpper(fmt.Sprintf("%s %d", time.Month(g.Month+1), g.Year))
}

// SpecialView renders the single cell shown instead of an IFC grid when the
// selected date is Leap Day or Year Day. It returns false for ordinary
// dates.
func SpecialView(d IFCDate) (ViewModel, bool) {
	if !d.IsSpecial() {
		return ViewModel{}, false
	}

	sel, err := SpecialDayToGregorian(d.Year, d.Special)
	if err != nil {
		return ViewModel{}, false
	}

	return ViewModel{
		Kind:    KindIFC,
		Title:   fmt.Sprintf("%s %d", d.Special, d.Year),
		Headers: DayNames(),
		Special: &CellView{
			Label:   string(d.Special),
			Classes: []string{ClassSelected},
			Select:  sel,
		},
	}, true
}

// CalendarView is the pair of synchronized calendars for one selected date:
// the Gregorian month containing it and the IFC month (or special day) it
// converts to.
type CalendarView struct {
	Selected       GregorianDate `json:"selected"`
	IFC            IFCDate       `json:"ifc"`
	GregorianLabel string        `json:"gregorian_label"`
	IFCLabel       string        `json:"ifc_label"`
	Gregorian      ViewModel     `json:"gregorian"`
	IFCView        ViewModel     `json:"ifc_view"`
}

// Compose builds both calendars around selected.
func Compose(selected, today GregorianDate) (CalendarView, error) {
	if selected.Month < 0 || selected.Month > 11 {
		return CalendarView{}, fmt.Errorf("%w: month %d out of range 0..11", ErrInvalidArgument, selected.Month)
	}

	ifc := GregorianToIFC(selected)
	view := CalendarView{
		Selected:       selected,
		IFC:            ifc,
		GregorianLabel: FormatGregorian(selected),
		IFCLabel:       FormatIFCDate(ifc),
	}

	greg, err := NewGrid(KindGregorian, selected.Year, selected.Month, &selected, today)
	if err != nil {
		return CalendarView{}, err
	}
	view.Gregorian = Render(greg)

	if special, ok := SpecialView(ifc); ok {
		view.IFCView = special
		return view, nil
	}

	grid, err := NewGrid(KindIFC, ifc.Year, ifc.Month, &selected, today)
	if err != nil {
		return CalendarView{}, err
	}
	view.IFCView = Render(grid)

	return view, nil
}

// Click translates a click on a cell of the given calendar into the
// Gregorian date that becomes the new selection. For IFC the month is the
// IFC month index. Years outside MinYear..MaxYear are rejected.
func Click(kind GridKind, year, month, day int) (GregorianDate, error) {
	if year < MinYear || year > MaxYear {
		return GregorianDate{}, fmt.Errorf("%w: year %d out of range %d..%d", ErrInvalidArgument, year, MinYear, MaxYear)
	}

	switch kind {
	case KindIFC:
		return IFCToGregorian(year, month, day)
	case KindGregorian:
		return NewGregorianDate(year, month, day)
	default:
		return GregorianDate{}, fmt.Errorf("%w: unknown calendar %q", ErrInvalidArgument, kind)
	}
}
