package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) GregorianDate {
	return GregorianDate{Year: y, Month: m, Day: d}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{2400, true},
		{1996, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDaysInYearAndMonth(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(1900))
	assert.Equal(t, 29, DaysInMonth(2000, 1))
	assert.Equal(t, 28, DaysInMonth(2023, 1))
	assert.Equal(t, 31, DaysInMonth(2023, 11))
}

func TestIsInvalidInput(t *testing.T) {
	_, err := ParseDate("2024-13-01")
	assert.True(t, IsInvalidInput(err))
	assert.False(t, IsInvalidInput(errors.New("disk full")))
	assert.False(t, IsInvalidInput(nil))
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		name string
		date GregorianDate
		want int
	}{
		{"first day", date(2023, 0, 1), 1},
		{"march first common year", date(2023, 2, 1), 60},
		{"march first leap year", date(2024, 2, 1), 61},
		{"leap february 29", date(2024, 1, 29), 60},
		{"last day common year", date(2023, 11, 31), 365},
		{"last day leap year", date(2024, 11, 31), 366},
		{"invalid day is naive", date(2023, 3, 31), 121},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayOfYear(tt.date))
		})
	}
}

func TestGregorianToIFC(t *testing.T) {
	tests := []struct {
		name string
		date GregorianDate
		want IFCDate
	}{
		{"new year", date(2023, 0, 1), IFCDate{Year: 2023, Month: 0, Day: 1}},
		{"end of IFC january", date(2023, 0, 28), IFCDate{Year: 2023, Month: 0, Day: 28}},
		{"IFC february begins jan 29", date(2023, 0, 29), IFCDate{Year: 2023, Month: 1, Day: 1}},
		{"last day of IFC june", date(2023, 5, 17), IFCDate{Year: 2023, Month: 5, Day: 28}},
		{"sol 1", date(2023, 5, 18), IFCDate{Year: 2023, Month: Sol, Day: 1}},
		{"sol 15 leap year", date(2024, 6, 1), IFCDate{Year: 2024, Month: Sol, Day: 15}},
		{"december 28", date(2023, 11, 30), IFCDate{Year: 2023, Month: 12, Day: 28}},
		{"year day common year", date(2023, 11, 31), IFCDate{Year: 2023, Special: YearDay}},
		{"year day leap year", date(2024, 11, 30), IFCDate{Year: 2024, Special: YearDay}},
		{"leap day is day 366", date(2024, 11, 31), IFCDate{Year: 2024, Special: LeapDay}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GregorianToIFC(tt.date))
		})
	}
}

func TestGregorianToIFC_LastDayIsSpecial(t *testing.T) {
	for year := 1895; year <= 2105; year++ {
		got := GregorianToIFC(date(year, 11, 31))
		require.True(t, got.IsSpecial(), "December 31, %d", year)
		if IsLeapYear(year) {
			assert.Equal(t, LeapDay, got.Special, "December 31, %d", year)
		} else {
			assert.Equal(t, YearDay, got.Special, "December 31, %d", year)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, year := range []int{1900, 2000, 2023, 2024} {
		t.Run(FormatDate(date(year, 0, 1)), func(t *testing.T) {
			specials := 0
			d := date(year, 0, 1)
			for i := 0; i < DaysInYear(year); i++ {
				ifc := GregorianToIFC(d)
				if ifc.IsSpecial() {
					specials++
				} else {
					back, err := IFCToGregorian(ifc.Year, ifc.Month, ifc.Day)
					require.NoError(t, err)
					require.Equal(t, d, back, "round trip of %s via %s", d, ifc)
				}
				d = d.AddDays(1)
			}

			want := 1
			if IsLeapYear(year) {
				want = 2
			}
			assert.Equal(t, want, specials)
		})
	}
}

func TestIFCToGregorian(t *testing.T) {
	got, err := IFCToGregorian(2023, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, date(2023, 0, 1), got)

	got, err = IFCToGregorian(2024, 12, 28)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 11, 29), got)
}

func TestIFCToGregorian_InvalidArgument(t *testing.T) {
	tests := []struct {
		name       string
		month, day int
	}{
		{"month 13", 13, 1},
		{"negative month", -1, 1},
		{"day zero", 0, 0},
		{"day 29", 0, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IFCToGregorian(2024, tt.month, tt.day)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.True(t, IsInvalidInput(err))
		})
	}
}

func TestSpecialDayToGregorian(t *testing.T) {
	got, err := SpecialDayToGregorian(2023, YearDay)
	require.NoError(t, err)
	assert.Equal(t, date(2023, 11, 31), got)

	got, err = SpecialDayToGregorian(2024, LeapDay)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 11, 31), got)

	_, err = SpecialDayToGregorian(2023, LeapDay)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = SpecialDayToGregorian(2023, NotSpecial)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 29), got)

	for _, in := range []string{"", "hello", "2023-02-29", "2024-13-01", "2024-1-5", "2024-01-01T00:00:00"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDateInput, "input %q", in)
	}
}

func TestNewGregorianDate(t *testing.T) {
	d, err := NewGregorianDate(2024, 1, 29)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 29), d)

	_, err = NewGregorianDate(2023, 1, 29)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewGregorianDate(2023, 12, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "Sol 15, 2024", FormatIFCDate(IFCDate{Year: 2024, Month: Sol, Day: 15}))
	assert.Equal(t, "Year Day, 2024", FormatIFCDate(IFCDate{Year: 2024, Special: YearDay}))
	assert.Equal(t, "Leap Day, 2024", FormatIFCDate(IFCDate{Year: 2024, Special: LeapDay}))
	assert.Equal(t, "Sol 15, 2024", GregorianToIFC(date(2024, 6, 1)).String())

	assert.Equal(t, "2024-07-01", FormatDate(date(2024, 6, 1)))
	assert.Equal(t, "July 1, 2024", FormatGregorian(date(2024, 6, 1)))
}

func TestIFCMonths(t *testing.T) {
	months := IFCMonths()
	require.Len(t, months, 13)
	assert.Equal(t, "January", months[0])
	assert.Equal(t, "Sol", months[Sol])
	assert.Equal(t, "July", months[7])
	assert.Equal(t, "December", months[12])

	months[0] = "changed"
	assert.Equal(t, "January", IFCMonths()[0])

	assert.Equal(t, Sol, IFCMonthIndex("Sol"))
	assert.Equal(t, Sol, IFCMonthIndex("sOL"))
	assert.Equal(t, -1, IFCMonthIndex("Smarch"))

	_, err := IFCMonthName(13)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
