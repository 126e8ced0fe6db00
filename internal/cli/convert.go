package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
)

func newConvertCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [YYYY-MM-DD]",
		Short: "Show a Gregorian date (default today) in the IFC",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := app.dateArg(args)
			if err != nil {
				return writeErr(cmd, err)
			}

			ifc := calendar.GregorianToIFC(date)
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n",
				calendar.FormatGregorian(date), calendar.FormatIFCDate(ifc))
			return nil
		},
	}
}

func newToGregorianCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "to-gregorian <year> (<month> <day> | leap-day | year-day)",
		Short: "Convert an IFC date to Gregorian",
		Long: strings.TrimSpace(`
Convert an IFC date to Gregorian. The month is 1-13 or a month name
(January ... June, Sol, July ... December).`),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("%w: year %q", calendar.ErrInvalidArgument, args[0]))
			}

			var date calendar.GregorianDate
			if len(args) == 2 {
				kind, ok := specialArgs[strings.ToLower(args[1])]
				if !ok {
					return writeErr(cmd, fmt.Errorf("%w: expected leap-day or year-day, got %q", calendar.ErrInvalidArgument, args[1]))
				}
				date, err = calendar.SpecialDayToGregorian(year, kind)
			} else {
				month, merr := parseIFCMonth(args[1])
				if merr != nil {
					return writeErr(cmd, merr)
				}
				day, derr := strconv.Atoi(args[2])
				if derr != nil {
					return writeErr(cmd, fmt.Errorf("%w: day %q", calendar.ErrInvalidArgument, args[2]))
				}
				date, err = calendar.IFCToGregorian(year, month, day)
			}
			if err != nil {
				return writeErr(cmd, err)
			}

			app.log.Debug("converted", "ifc", strings.Join(args, " "), "gregorian", date.String())
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n",
				calendar.FormatIFCDate(calendar.GregorianToIFC(date)),
				calendar.FormatGregorian(date), calendar.FormatDate(date))
			return nil
		},
	}
}

var specialArgs = map[string]calendar.SpecialDay{
	"leap-day": calendar.LeapDay,
	"year-day": calendar.YearDay,
}

// parseIFCMonth accepts a 1-based month number or a month name and returns
// the 0-based IFC month index.
func parseIFCMonth(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > calendar.MonthsPerYear {
			return 0, fmt.Errorf("%w: month %d out of range 1..13", calendar.ErrInvalidArgument, n)
		}
		return n - 1, nil
	}

	if i := calendar.IFCMonthIndex(s); i >= 0 {
		return i, nil
	}
	return 0, fmt.Errorf("%w: unknown IFC month %q", calendar.ErrInvalidArgument, s)
}

func newLeapCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "leap <year>",
		Short: "Report whether a year has a Leap Day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("%w: year %q", calendar.ErrInvalidArgument, args[0]))
			}

			if calendar.IsLeapYear(year) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d is a leap year (366 days, Leap Day on %s)\n",
					year, calendar.FormatGregorian(mustSpecial(year, calendar.LeapDay)))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%d is not a leap year (365 days)\n", year)
			}
			return nil
		},
	}
}

// mustSpecial is only called with a kind the year is known to have.
func mustSpecial(year int, kind calendar.SpecialDay) calendar.GregorianDate {
	d, err := calendar.SpecialDayToGregorian(year, kind)
	if err != nil {
		panic(err)
	}
	return d
}
