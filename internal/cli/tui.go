package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [YYYY-MM-DD]",
		Short: "Browse both calendars interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := app.dateArg(args)
			if err != nil {
				return writeErr(cmd, err)
			}

			m := newBrowser(date, calendar.Today(app.Clock))
			if m.err != nil {
				return writeErr(cmd, m.err)
			}

			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// browser is the bubbletea model behind `ifccal tui`. Both grids follow a
// single selected date; focus only decides which calendar n/p page through.
type browser struct {
	selected calendar.GregorianDate
	today    calendar.GregorianDate
	focus    calendar.GridKind
	view     calendar.CalendarView
	err      error
}

func newBrowser(selected, today calendar.GregorianDate) browser {
	m := browser{today: today, focus: calendar.KindGregorian}
	m.selectDate(selected)
	return m
}

func (m *browser) selectDate(d calendar.GregorianDate) {
	view, err := calendar.Compose(d, m.today)
	if err != nil {
		m.err = err
		return
	}
	m.selected, m.view, m.err = d, view, nil
}

func (m browser) Init() tea.Cmd { return nil }

func (m browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.selectDate(m.selected.AddDays(-1))
	case "right", "l":
		m.selectDate(m.selected.AddDays(1))
	case "up", "k":
		m.selectDate(m.selected.AddDays(-calendar.DaysPerWeek))
	case "down", "j":
		m.selectDate(m.selected.AddDays(calendar.DaysPerWeek))
	case "tab":
		if m.focus == calendar.KindGregorian {
			m.focus = calendar.KindIFC
		} else {
			m.focus = calendar.KindGregorian
		}
	case "n":
		m.selectDate(m.shiftMonth(1))
	case "p":
		m.selectDate(m.shiftMonth(-1))
	case "t":
		m.selectDate(m.today)
	}
	return m, nil
}

// shiftMonth moves the selection by delta months of the focused calendar,
// keeping the day of month where the target month allows it.
func (m browser) shiftMonth(delta int) calendar.GregorianDate {
	if m.focus == calendar.KindIFC {
		return shiftIFCMonth(m.selected, delta)
	}
	return shiftGregorianMonth(m.selected, delta)
}

func shiftGregorianMonth(d calendar.GregorianDate, delta int) calendar.GregorianDate {
	months := d.Year*12 + d.Month + delta
	year, month := months/12, months%12
	if month < 0 {
		year, month = year-1, month+12
	}
	day := min(d.Day, calendar.DaysInMonth(year, month))
	return calendar.GregorianDate{Year: year, Month: month, Day: day}
}

// shiftIFCMonth pages through IFC months. A special day counts as the last
// day of December.
func shiftIFCMonth(d calendar.GregorianDate, delta int) calendar.GregorianDate {
	ifc := calendar.GregorianToIFC(d)
	month, day := ifc.Month, ifc.Day
	if ifc.IsSpecial() {
		month, day = calendar.MonthsPerYear-1, calendar.DaysPerMonth
	}

	months := ifc.Year*calendar.MonthsPerYear + month + delta
	year, month := months/calendar.MonthsPerYear, months%calendar.MonthsPerYear
	if month < 0 {
		year, month = year-1, month+calendar.MonthsPerYear
	}

	out, err := calendar.IFCToGregorian(year, month, day)
	if err != nil {
		return d
	}
	return out
}

var helpStyle = lipgloss.NewStyle().Foreground(colorMuted)

func (m browser) View() string {
	var b strings.Builder
	b.WriteString(renderCalendar(m.view, m.focus))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"←/→ day  ↑/↓ week  n/p " + labelKind(m.focus) + " month  tab switch  t today  q quit"))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.err.Error())
	}
	return b.String()
}
