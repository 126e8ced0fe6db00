package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
	"github.com/zapponejosh/ifc-calendar/internal/export"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [YYYY-MM-DD]",
		Short: "Print the Gregorian and IFC months around a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := app.dateArg(args)
			if err != nil {
				return writeErr(cmd, err)
			}

			view, err := calendar.Compose(date, calendar.Today(app.Clock))
			if err != nil {
				return writeErr(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderCalendar(view, ""))
			return nil
		},
	}
}

func newICSCmd(app *App) *cobra.Command {
	var (
		year   int
		years  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export IFC month starts and special days as iCalendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Clock.Now()
			if year == 0 {
				year = now.Year()
			}

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return writeErr(cmd, err)
				}
				defer f.Close()
				w = f
			}

			if err := export.Write(w, year, years, now); err != nil {
				return writeErr(cmd, err)
			}

			app.log.Info("calendar exported",
				"start_year", year,
				"years", years,
				"output", output,
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "First year to export (default current year)")
	cmd.Flags().IntVar(&years, "years", 1, "Number of years to export")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout")

	return cmd
}
