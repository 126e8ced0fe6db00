package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countSelected(cells []CalendarCell) int {
	n := 0
	for _, c := range cells {
		if c.IsSelected {
			n++
		}
	}
	return n
}

func TestGenerateGregorianGrid_Size(t *testing.T) {
	today := date(2026, 9, 19)
	for _, year := range []int{2015, 2023, 2024} {
		for month := 0; month < 12; month++ {
			cells, err := GenerateGregorianGrid(year, month, nil, today)
			require.NoError(t, err)
			require.Len(t, cells, GregorianGridCells)

			first := date(cells[0].Year, cells[0].Month, cells[0].Day)
			assert.Equal(t, 0, first.Weekday(), "%d-%d starts on Sunday", year, month+1)

			current := 0
			for i, c := range cells {
				assert.Equal(t, i%7, c.DayOfWeek)
				if c.IsCurrentMonth {
					current++
				}
			}
			assert.Equal(t, DaysInMonth(year, month), current)
		}
	}
}

func TestGenerateGregorianGrid_October2026(t *testing.T) {
	today := date(2026, 9, 19)
	selected := date(2026, 9, 19)

	cells, err := GenerateGregorianGrid(2026, 9, &selected, today)
	require.NoError(t, err)

	assert.Equal(t, CalendarCell{Day: 27, Month: 8, Year: 2026, DayOfWeek: 0}, cells[0])
	assert.Equal(t, CalendarCell{Day: 1, Month: 9, Year: 2026, IsCurrentMonth: true, DayOfWeek: 4}, cells[4])
	assert.Equal(t, CalendarCell{Day: 7, Month: 10, Year: 2026, DayOfWeek: 6}, cells[41])

	c := cells[22]
	assert.Equal(t, 19, c.Day)
	assert.True(t, c.IsToday)
	assert.True(t, c.IsSelected)
	assert.Equal(t, 1, countSelected(cells))
}

func TestGenerateGregorianGrid_Selection(t *testing.T) {
	today := date(2000, 0, 1)
	tests := []struct {
		name     string
		selected *GregorianDate
		want     int
	}{
		{"no selection", nil, 0},
		{"inside month", &GregorianDate{2026, 9, 5}, 1},
		{"leading cell from previous month", &GregorianDate{2026, 8, 28}, 1},
		{"trailing cell from next month", &GregorianDate{2026, 10, 7}, 1},
		{"outside displayed range", &GregorianDate{2026, 11, 25}, 0},
		{"same day another year", &GregorianDate{2025, 9, 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := GenerateGregorianGrid(2026, 9, tt.selected, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, countSelected(cells))
		})
	}
}

func TestGenerateGregorianGrid_InvalidMonth(t *testing.T) {
	for _, month := range []int{-1, 12} {
		_, err := GenerateGregorianGrid(2024, month, nil, date(2024, 0, 1))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestGenerateIFCGrid_Size(t *testing.T) {
	today := date(2026, 9, 19)
	for month := 0; month < MonthsPerYear; month++ {
		cells, err := GenerateIFCGrid(2024, month, nil, today)
		require.NoError(t, err)
		require.Len(t, cells, IFCGridCells)

		for i, c := range cells {
			assert.Equal(t, i+1, c.Day)
			assert.Equal(t, i%7, c.DayOfWeek)
			assert.Equal(t, month, c.Month)
			assert.True(t, c.IsCurrentMonth)
		}
	}
}

func TestGenerateIFCGrid_Selection(t *testing.T) {
	today := date(2000, 0, 1)
	sol15 := date(2024, 6, 1)
	leapDay := date(2024, 11, 31)
	yearDay := date(2023, 11, 31)

	tests := []struct {
		name      string
		year      int
		month     int
		selected  *GregorianDate
		wantCount int
		wantIndex int
	}{
		{"sol 15", 2024, Sol, &sol15, 1, 14},
		{"other month", 2024, 7, &sol15, 0, -1},
		{"other year", 2025, Sol, &sol15, 0, -1},
		{"no selection", 2024, Sol, nil, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := GenerateIFCGrid(tt.year, tt.month, tt.selected, today)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, countSelected(cells))
			if tt.wantIndex >= 0 {
				assert.True(t, cells[tt.wantIndex].IsSelected)
			}
		})
	}

	for _, special := range []GregorianDate{leapDay, yearDay} {
		for month := 0; month < MonthsPerYear; month++ {
			cells, err := GenerateIFCGrid(special.Year, month, &special, special)
			require.NoError(t, err)
			assert.Zero(t, countSelected(cells), "%s in month %d", special, month)
			for _, c := range cells {
				assert.False(t, c.IsToday)
			}
		}
	}
}

func TestGenerateIFCGrid_Today(t *testing.T) {
	// October 19, 2026 is day 292: IFC October 12.
	today := Today(FixedClock(time.Date(2026, time.October, 19, 15, 4, 5, 0, time.Local)))
	require.Equal(t, IFCDate{Year: 2026, Month: 10, Day: 12}, GregorianToIFC(today))

	cells, err := GenerateIFCGrid(2026, 10, nil, today)
	require.NoError(t, err)
	for i, c := range cells {
		assert.Equal(t, i == 11, c.IsToday, "cell %d", i)
	}
}

func TestGenerateIFCGrid_InvalidMonth(t *testing.T) {
	for _, month := range []int{-1, 13} {
		_, err := GenerateIFCGrid(2024, month, nil, date(2024, 0, 1))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}
