// Command ifccal converts dates between the Gregorian and International
// Fixed calendars from the terminal.
package main

import (
	"os"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
	"github.com/zapponejosh/ifc-calendar/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(calendar.SystemClock{}).Execute(); err != nil {
		os.Exit(1)
	}
}
