package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
	"github.com/zapponejosh/ifc-calendar/internal/config"
	"github.com/zapponejosh/ifc-calendar/internal/database"
	"github.com/zapponejosh/ifc-calendar/internal/export"
	"github.com/zapponejosh/ifc-calendar/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
//
// Months in query parameters and request bodies are 1-based (1 is January,
// 13 is IFC December); response payloads carry the 0-based indexes used by
// the calendar package.
type Handlers struct {
	db     *database.DB
	cfg    *config.Config
	logger *slog.Logger
	clock  calendar.Clock
}

// NewHandlers creates a new Handlers instance. A nil clock means the
// system clock.
func NewHandlers(db *database.DB, cfg *config.Config, log *slog.Logger, clock calendar.Clock) *Handlers {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	return &Handlers{
		db:     db,
		cfg:    cfg,
		logger: log,
		clock:  clock,
	}
}

func (h *Handlers) log(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context(), h.logger)
}

// ConversionResult is one date expressed in both calendars.
type ConversionResult struct {
	Gregorian      string           `json:"gregorian"`
	GregorianLabel string           `json:"gregorian_label"`
	DayOfYear      int              `json:"day_of_year"`
	IFC            calendar.IFCDate `json:"ifc"`
	IFCLabel       string           `json:"ifc_label"`
}

func convert(d calendar.GregorianDate) ConversionResult {
	ifc := calendar.GregorianToIFC(d)
	return ConversionResult{
		Gregorian:      calendar.FormatDate(d),
		GregorianLabel: calendar.FormatGregorian(d),
		DayOfYear:      calendar.DayOfYear(d),
		IFC:            ifc,
		IFCLabel:       calendar.FormatIFCDate(ifc),
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.log(r).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeUnhealthy)
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetLeapYear handles GET /api/v1/leap/{year}
func (h *Handlers) GetLeapYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %q", chi.URLParam(r, "year")))
		return
	}

	WriteSuccess(w, map[string]any{
		"year": year,
		"leap": calendar.IsLeapYear(year),
		"days": calendar.DaysInYear(year),
	})
}

// ConvertToday handles GET /api/v1/convert/today
func (h *Handlers) ConvertToday(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, convert(calendar.Today(h.clock)))
}

// ConvertGregorian handles GET /api/v1/convert/gregorian/{YYYY-MM-DD}
func (h *Handlers) ConvertGregorian(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		WriteCalendarError(w, err)
		return
	}

	WriteSuccess(w, convert(date))
}

// ConvertIFC handles GET /api/v1/convert/ifc?year=2024&month=7&day=15
// and GET /api/v1/convert/ifc?year=2024&special=leap-day
func (h *Handlers) ConvertIFC(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		WriteBadRequest(w, "year is required and must be an integer")
		return
	}

	var date calendar.GregorianDate
	if special := q.Get("special"); special != "" {
		kind, ok := specialKinds[special]
		if !ok {
			WriteBadRequest(w, fmt.Sprintf("Unknown special day %q, use leap-day or year-day", special))
			return
		}
		date, err = calendar.SpecialDayToGregorian(year, kind)
	} else {
		month, merr := strconv.Atoi(q.Get("month"))
		day, derr := strconv.Atoi(q.Get("day"))
		if merr != nil || derr != nil {
			WriteBadRequest(w, "month (1-13) and day (1-28) are required")
			return
		}
		date, err = calendar.IFCToGregorian(year, month-1, day)
	}
	if err != nil {
		WriteCalendarError(w, err)
		return
	}

	WriteSuccess(w, convert(date))
}

var specialKinds = map[string]calendar.SpecialDay{
	"leap-day": calendar.LeapDay,
	"year-day": calendar.YearDay,
}

// GetGrid handles GET /api/v1/grid/{kind}?year=&month=&selected=
//
// year and month default to today's, in the calendar being requested.
func (h *Handlers) GetGrid(w http.ResponseWriter, r *http.Request) {
	kind, err := calendar.ParseGridKind(chi.URLParam(r, "kind"))
	if err != nil {
		WriteCalendarError(w, err)
		return
	}

	today := calendar.Today(h.clock)
	defYear, defMonth := today.Year, today.Month
	if kind == calendar.KindIFC {
		if ifc := calendar.GregorianToIFC(today); !ifc.IsSpecial() {
			defMonth = ifc.Month
		} else {
			defMonth = calendar.MonthsPerYear - 1
		}
	}

	q := r.URL.Query()
	year, err := queryInt(q.Get("year"), defYear)
	if err != nil {
		WriteBadRequest(w, "year must be an integer")
		return
	}
	month, err := queryInt(q.Get("month"), defMonth+1)
	if err != nil {
		WriteBadRequest(w, "month must be an integer")
		return
	}

	var selected *calendar.GregorianDate
	if s := q.Get("selected"); s != "" {
		d, err := calendar.ParseDate(s)
		if err != nil {
			WriteCalendarError(w, err)
			return
		}
		selected = &d
	}

	grid, err := calendar.NewGrid(kind, year, month-1, selected, today)
	if err != nil {
		WriteCalendarError(w, err)
		return
	}

	WriteSuccess(w, calendar.Render(grid))
}

// GetCalendar handles GET /api/v1/calendar?date=YYYY-MM-DD
// It returns both calendars synchronized on date (default today).
func (h *Handlers) GetCalendar(w http.ResponseWriter, r *http.Request) {
	today := calendar.Today(h.clock)

	selected := today
	if s := r.URL.Query().Get("date"); s != "" {
		d, err := calendar.ParseDate(s)
		if err != nil {
			WriteCalendarError(w, err)
			return
		}
		selected = d
	}

	h.writeCalendarView(w, r, selected, today)
}

func (h *Handlers) writeCalendarView(w http.ResponseWriter, r *http.Request, selected, today calendar.GregorianDate) {
	view, err := calendar.Compose(selected, today)
	if err != nil {
		if !WriteCalendarError(w, err) {
			h.log(r).Error("failed to compose calendar", slog.Any("error", err))
			WriteInternalError(w, "Failed to build calendar")
		}
		return
	}

	WriteSuccess(w, view)
}

// GetICS handles GET /api/v1/calendar.ics?year=2025&years=2
func (h *Handlers) GetICS(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	q := r.URL.Query()

	year, err := queryInt(q.Get("year"), now.Year())
	if err != nil {
		WriteBadRequest(w, "year must be an integer")
		return
	}
	years, err := queryInt(q.Get("years"), 1)
	if err != nil {
		WriteBadRequest(w, "years must be an integer")
		return
	}
	if years < 1 || years > h.cfg.MaxICSYears {
		WriteBadRequest(w, fmt.Sprintf("years must be between 1 and %d", h.cfg.MaxICSYears))
		return
	}

	data, err := export.Bytes(year, years, now)
	if err != nil {
		h.log(r).Error("failed to export calendar", slog.Any("error", err))
		WriteInternalError(w, "Failed to export calendar")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="ifc-%d.ics"`, year))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// =============================================================================
// Selection
// =============================================================================

// GetSelection handles GET /api/v1/selection
func (h *Handlers) GetSelection(w http.ResponseWriter, r *http.Request) {
	sel, err := h.db.GetSelection(r.Context(), GetUserID(r))
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "No date selected")
			return
		}
		h.log(r).Error("failed to get selection", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve selection")
		return
	}

	WriteSuccess(w, sel)
}

// GetSelectionCalendar handles GET /api/v1/selection/calendar
// Both calendars around the stored selection, or today without one.
func (h *Handlers) GetSelectionCalendar(w http.ResponseWriter, r *http.Request) {
	today := calendar.Today(h.clock)

	selected := today
	sel, err := h.db.GetSelection(r.Context(), GetUserID(r))
	switch {
	case err == nil:
		selected = sel.Date
	case !database.IsNotFound(err):
		h.log(r).Error("failed to get selection", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve selection")
		return
	}

	h.writeCalendarView(w, r, selected, today)
}

// PutSelection handles PUT /api/v1/selection with body {"date": "YYYY-MM-DD"}
func (h *Handlers) PutSelection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		WriteCalendarError(w, err)
		return
	}

	h.saveSelection(w, r, date, calendar.KindGregorian)
}

// ClickSelection handles POST /api/v1/selection/click with body
// {"calendar": "ifc", "year": 2024, "month": 7, "day": 15}.
// The clicked cell is translated to a Gregorian date and stored.
func (h *Handlers) ClickSelection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Calendar string `json:"calendar"`
		Year     *int   `json:"year"`
		Month    int    `json:"month"`
		Day      int    `json:"day"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	kind, err := calendar.ParseGridKind(req.Calendar)
	if err != nil {
		WriteCalendarError(w, err)
		return
	}

	if req.Year == nil {
		WriteError(w, http.StatusBadRequest, "year is required", CodeInvalidArgument)
		return
	}

	date, err := calendar.Click(kind, *req.Year, req.Month-1, req.Day)
	if err != nil {
		WriteCalendarError(w, err)
		return
	}

	h.saveSelection(w, r, date, kind)
}

func (h *Handlers) saveSelection(w http.ResponseWriter, r *http.Request, date calendar.GregorianDate, source calendar.GridKind) {
	if _, err := h.db.SaveSelection(r.Context(), GetUserID(r), date, source); err != nil {
		h.log(r).Error("failed to save selection", slog.Any("error", err))
		WriteInternalError(w, "Failed to save selection")
		return
	}

	h.writeCalendarView(w, r, date, calendar.Today(h.clock))
}

// DeleteSelection handles DELETE /api/v1/selection
func (h *Handlers) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	if err := h.db.DeleteSelection(r.Context(), GetUserID(r)); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "No date selected")
			return
		}
		h.log(r).Error("failed to delete selection", slog.Any("error", err))
		WriteInternalError(w, "Failed to delete selection")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Selection cleared"})
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}

// queryInt parses s, returning def when s is empty.
func queryInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
