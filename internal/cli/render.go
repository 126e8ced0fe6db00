package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted  = ac("240", "243")
	colorAccent = ac("25", "75")
	colorBorder = ac("250", "243")
	colorFocus  = ac("232", "255")

	titleStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	cellStyle     = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	otherStyle    = cellStyle.Foreground(colorMuted)
	todayStyle    = cellStyle.Foreground(colorAccent).Bold(true)
	selectedStyle = cellStyle.Reverse(true)
	footerStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	focusedPanelStyle = panelStyle.BorderForeground(colorFocus)
)

// gridWidth is seven right-aligned cells.
const gridWidth = calendar.DaysPerWeek * 4

// renderGrid draws one month (or a special day) as a block of text.
func renderGrid(vm calendar.ViewModel) string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, titleStyle.Render(vm.Title)))
	b.WriteByte('\n')

	if vm.Special != nil {
		// Special days sit outside every week; show the single cell alone.
		label := selectedStyle.Width(len(vm.Special.Label) + 2).Align(lipgloss.Center).Render(vm.Special.Label)
		b.WriteByte('\n')
		b.WriteString(lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, label))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, headerStyle.Render("outside the week")))
		return b.String()
	}

	headers := make([]string, len(vm.Headers))
	for i, h := range vm.Headers {
		headers[i] = headerStyle.Inherit(cellStyle).Render(h)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))

	for _, week := range vm.Weeks {
		cells := make([]string, len(week))
		for i, c := range week {
			cells[i] = cellFor(c).Render(c.Label)
		}
		b.WriteByte('\n')
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return b.String()
}

func cellFor(c calendar.CellView) lipgloss.Style {
	switch {
	case c.HasClass(calendar.ClassSelected):
		return selectedStyle
	case c.HasClass(calendar.ClassToday):
		return todayStyle
	case c.HasClass(calendar.ClassOtherMonth):
		return otherStyle
	default:
		return cellStyle
	}
}

// renderCalendar lays both calendars side by side with their footers.
// The focused grid gets the stronger border.
func renderCalendar(view calendar.CalendarView, focus calendar.GridKind) string {
	greg := panel(view.Gregorian, view.GregorianLabel, focus == calendar.KindGregorian)
	ifc := panel(view.IFCView, view.IFCLabel, focus == calendar.KindIFC)
	return lipgloss.JoinHorizontal(lipgloss.Top, greg, " ", ifc)
}

func panel(vm calendar.ViewModel, footer string, focused bool) string {
	style := panelStyle
	if focused {
		style = focusedPanelStyle
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		renderGrid(vm),
		"",
		footerStyle.Width(gridWidth).Align(lipgloss.Center).Render(footer),
	)
	return style.Render(body)
}

// labelKind names a grid kind for status lines.
func labelKind(k calendar.GridKind) string {
	if k == calendar.KindIFC {
		return "IFC"
	}
	return "Gregorian"
}
