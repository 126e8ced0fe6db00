package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
)

// This script prints the Gregorian span of every IFC month in a year, or
// with -csv the full day-by-day conversion table, for checking results
// against other converters.

func main() {
	year := flag.Int("year", 2025, "Year to generate dates for")
	asCSV := flag.Bool("csv", false, "Write every day of the year as CSV")
	flag.Parse()

	var err error
	if *asCSV {
		err = writeCSV(os.Stdout, *year)
	} else {
		err = writeSummary(os.Stdout, *year)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeSummary(w io.Writer, year int) error {
	fmt.Fprintf(w, "=== IFC Month Spans for %d ===\n\n", year)

	fmt.Fprintln(w, "Key Dates:")
	sol, err := calendar.IFCToGregorian(year, calendar.Sol, 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  Sol 1:           %s\n", calendar.FormatGregorian(sol))
	if calendar.IsLeapYear(year) {
		leap, err := calendar.SpecialDayToGregorian(year, calendar.LeapDay)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  Leap Day:        %s\n", calendar.FormatGregorian(leap))
	}
	yearDay, err := calendar.SpecialDayToGregorian(year, calendar.YearDay)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  Year Day:        %s\n\n", calendar.FormatGregorian(yearDay))

	for i, name := range calendar.IFCMonths() {
		first, err := calendar.IFCToGregorian(year, i, 1)
		if err != nil {
			return err
		}
		last, err := calendar.IFCToGregorian(year, i, calendar.DaysPerMonth)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-10s %s - %s\n", name, calendar.FormatDate(first), calendar.FormatDate(last))
	}
	return nil
}

func writeCSV(w io.Writer, year int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"gregorian", "day_of_year", "ifc_month", "ifc_day", "ifc"}); err != nil {
		return err
	}

	d := calendar.GregorianDate{Year: year, Month: 0, Day: 1}
	for d.Year == year {
		ifc := calendar.GregorianToIFC(d)
		month, day := "", ""
		if !ifc.IsSpecial() {
			month, day = ifc.MonthName(), fmt.Sprint(ifc.Day)
		}
		row := []string{
			calendar.FormatDate(d),
			fmt.Sprint(calendar.DayOfYear(d)),
			month,
			day,
			calendar.FormatIFCDate(ifc),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
		d = d.AddDays(1)
	}

	cw.Flush()
	return cw.Error()
}
