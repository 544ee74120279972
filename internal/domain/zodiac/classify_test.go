package zodiac

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySign_Boundaries(t *testing.T) {
	tests := []struct {
		date string
		want Sign
	}{
		{"20-01-2000", Aquarius},
		{"18-02-2000", Aquarius},
		{"19-02-2000", Pisces},
		{"20-03-2000", Pisces},
		{"21-03-2000", Aries},
		{"19-04-2000", Aries},
		{"20-04-2000", Taurus},
		{"20-05-2000", Taurus},
		{"21-05-2000", Gemini},
		{"20-06-2000", Gemini},
		{"21-06-2000", Cancer},
		{"22-07-2000", Cancer},
		{"23-07-2000", Leo},
		{"22-08-2000", Leo},
		{"23-08-2000", Virgo},
		{"22-09-2000", Virgo},
		{"23-09-2000", Libra},
		{"22-10-2000", Libra},
		{"23-10-2000", Scorpio},
		{"21-11-2000", Scorpio},
		{"22-11-2000", Sagittarius},
		{"21-12-2000", Sagittarius},
		{"22-12-2000", Capricorn},
		{"31-12-2000", Capricorn},
		{"01-01-2000", Capricorn},
		{"19-01-2000", Capricorn},
		{"29-02-2000", Pisces},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := ClassifySign(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifySign_NormalizesSeparators(t *testing.T) {
	for _, in := range []string{"22/12/1990", "22 12 1990", "22.12.1990", " 22-12-1990 ", "22 / 12 / 1990", "2-1-1990"} {
		got, err := ClassifySign(in)
		require.NoError(t, err, in)
		assert.Equal(t, Capricorn, got, in)
	}
}

func TestClassifySign_InvalidInput(t *testing.T) {
	inputs := []string{
		"31-02-2000",
		"not-a-date",
		"",
		"31-04-2001",
		"29-02-2001",
		"12-2000",
		"01-01-2000-01",
		"2000-01-15",
		"aa-01-2000",
		"15-13-2000",
		"00-01-2000",
	}

	for _, in := range inputs {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			s, err := ClassifySign(in)
			require.Error(t, err)
			assert.Empty(t, s)

			var ide *InvalidDateError
			require.True(t, errors.As(err, &ide), "want *InvalidDateError, got %T", err)
			assert.Equal(t, in, ide.Input)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

// Cada día de un año común y uno bisiesto cae exactamente en un rango.
func TestRanges_PartitionYear(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		counts := map[Sign]int{}
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		days := 0
		for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
			days++

			matches := 0
			for _, r := range Ranges() {
				if r.Contains(d.Month(), d.Day()) {
					matches++
				}
			}
			require.Equal(t, 1, matches, "date %s matched %d ranges", d.Format("02-01-2006"), matches)

			s, err := ClassifySign(d.Format("02-01-2006"))
			require.NoError(t, err)
			counts[s]++
		}

		if year == 2024 {
			assert.Equal(t, 366, days)
		} else {
			assert.Equal(t, 365, days)
		}
		assert.Len(t, counts, 12)
	}
}

func TestParseBirthDate(t *testing.T) {
	bd, err := ParseBirthDate("5/7/1988")
	require.NoError(t, err)
	assert.Equal(t, BirthDate{Day: 5, Month: time.July, Year: 1988}, bd)
	assert.Equal(t, "05-07-1988", bd.String())
}

func TestParseSign(t *testing.T) {
	s, err := ParseSign("  sagittarius ")
	require.NoError(t, err)
	assert.Equal(t, Sagittarius, s)

	_, err = ParseSign("Ophiuchus")
	assert.ErrorIs(t, err, ErrUnknownSign)
}

func TestSigns_Order(t *testing.T) {
	signs := Signs()
	require.Len(t, signs, 12)
	assert.Equal(t, Aquarius, signs[0])
	assert.Equal(t, Capricorn, signs[11])

	r, ok := RangeOf(Capricorn)
	require.True(t, ok)
	assert.Greater(t, r.Start.Month, r.End.Month)
}
