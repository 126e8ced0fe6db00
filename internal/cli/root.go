// Package cli implements the ifccal command line: one-shot conversions,
// side-by-side month grids and an interactive two-calendar browser.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
	"github.com/zapponejosh/ifc-calendar/internal/logger"
)

// App carries state shared by every subcommand.
type App struct {
	Clock    calendar.Clock
	LogLevel string

	log *slog.Logger
}

// NewRootCmd builds the ifccal command tree. A nil clock means the system
// clock.
func NewRootCmd(clock calendar.Clock) *cobra.Command {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	app := &App{Clock: clock, log: logger.Discard()}

	cmd := &cobra.Command{
		Use:           "ifccal",
		Short:         "Convert between the Gregorian and International Fixed calendars",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Today in both calendars
  ifccal convert

  # A Gregorian date in IFC
  ifccal convert 2024-07-01

  # Back again (month is 1-13 or an IFC month name)
  ifccal to-gregorian 2024 Sol 15
  ifccal to-gregorian 2024 leap-day

  # Both month grids side by side, or browse them interactively
  ifccal show 2024-12-30
  ifccal tui
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		app.log = logger.New(cmd.ErrOrStderr(), app.LogLevel, "text")
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("LOG_LEVEL", "warn"), "Log level (debug|info|warn|error)")

	cmd.AddCommand(newConvertCmd(app))
	cmd.AddCommand(newToGregorianCmd(app))
	cmd.AddCommand(newLeapCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newTUICmd(app))
	cmd.AddCommand(newICSCmd(app))

	return cmd
}

// dateArg parses an optional YYYY-MM-DD argument, defaulting to today.
func (app *App) dateArg(args []string) (calendar.GregorianDate, error) {
	if len(args) == 0 {
		return calendar.Today(app.Clock), nil
	}
	return calendar.ParseDate(args[0])
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
