// Package export renders the International Fixed Calendar as an iCalendar
// feed so it can be overlaid on an ordinary calendar client.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
)

// iCalendar property names and fixed values.
const (
	propVersion     = "VERSION"
	propProdID      = "PRODID"
	propCalName     = "X-WR-CALNAME"
	propCalScale    = "CALSCALE"
	propUID         = "UID"
	propSummary     = "SUMMARY"
	propDescription = "DESCRIPTION"
	propCategories  = "CATEGORIES"
	propDTStart     = "DTSTART"
	propDTStamp     = "DTSTAMP"
	propTransp      = "TRANSP"

	icalVersion  = "2.0"
	icalProdID   = "-//ifc-calendar//IFC Export//EN"
	icalCalName  = "International Fixed Calendar"
	icalScale    = "GREGORIAN"
	uidDomain    = "ifc-calendar"
	transparent  = "TRANSPARENT"
	catMonth     = "IFC-MONTH"
	catIntercal  = "IFC-INTERCALARY"
	maxSpanYears = 400
)

// ErrInvalidSpan is returned for an empty or oversized range of years.
var ErrInvalidSpan = errors.New("invalid export span")

// Calendar builds a calendar with an all-day event on the first day of
// every IFC month plus Year Day and, in leap years, Leap Day, for years
// startYear through startYear+years-1. stamp becomes every DTSTAMP.
func Calendar(startYear, years int, stamp time.Time) (*ical.Calendar, error) {
	if years < 1 || years > maxSpanYears {
		return nil, fmt.Errorf("%w: %d years", ErrInvalidSpan, years)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(propVersion, icalVersion)
	cal.Props.SetText(propProdID, icalProdID)
	cal.Props.SetText(propCalName, icalCalName)
	cal.Props.SetText(propCalScale, icalScale)

	dtStamp := ical.NewProp(propDTStamp)
	dtStamp.SetDateTime(stamp.UTC())

	for year := startYear; year < startYear+years; year++ {
		for month := 0; month < calendar.MonthsPerYear; month++ {
			first, err := calendar.IFCToGregorian(year, month, 1)
			if err != nil {
				return nil, err
			}
			ifc := calendar.IFCDate{Year: year, Month: month, Day: 1}
			summary := fmt.Sprintf("%s begins", ifc.MonthName())
			desc := fmt.Sprintf("%s is %s", calendar.FormatIFCDate(ifc), calendar.FormatGregorian(first))

			cal.Children = append(cal.Children,
				newEvent(fmt.Sprintf("%04d-m%02d", year, month+1), summary, desc, catMonth, first, dtStamp).Component)
		}

		kinds := []calendar.SpecialDay{calendar.YearDay}
		if calendar.IsLeapYear(year) {
			kinds = append(kinds, calendar.LeapDay)
		}
		for _, kind := range kinds {
			day, err := calendar.SpecialDayToGregorian(year, kind)
			if err != nil {
				return nil, err
			}
			ifc := calendar.IFCDate{Year: year, Special: kind}
			desc := fmt.Sprintf("%s falls outside every month on %s",
				calendar.FormatIFCDate(ifc), calendar.FormatGregorian(day))

			uid := fmt.Sprintf("%04d-year-day", year)
			if kind == calendar.LeapDay {
				uid = fmt.Sprintf("%04d-leap-day", year)
			}
			cal.Children = append(cal.Children,
				newEvent(uid, calendar.FormatIFCDate(ifc), desc, catIntercal, day, dtStamp).Component)
		}
	}

	return cal, nil
}

func newEvent(id, summary, description, category string, day calendar.GregorianDate, stamp *ical.Prop) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(propUID, id+"@"+uidDomain)
	event.Props.SetText(propSummary, summary)
	event.Props.SetText(propDescription, description)
	event.Props.SetText(propCategories, category)
	event.Props.SetText(propTransp, transparent)
	event.Props.Set(stamp)

	start := ical.NewProp(propDTStart)
	start.SetDate(day.Time())
	event.Props.Set(start)

	return event
}

// Write encodes the calendar for the given span to w.
func Write(w io.Writer, startYear, years int, stamp time.Time) error {
	cal, err := Calendar(startYear, years, stamp)
	if err != nil {
		return err
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode iCalendar: %w", err)
	}
	return nil
}

// Bytes is Write into a buffer.
func Bytes(startYear, years int, stamp time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, startYear, years, stamp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
