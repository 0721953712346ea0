package evaluation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDateYearMonth(t *testing.T) {
	got, ok := ParseFlexibleDate("2020-01")

	require.True(t, ok)
	assert.Equal(t, 2020, got.Year())
	assert.Equal(t, time.January, got.Month())
}

func TestParseFlexibleDateMonthName(t *testing.T) {
	got, ok := ParseFlexibleDate("March 2021")
	require.True(t, ok)
	assert.Equal(t, time.March, got.Month())

	got, ok = ParseFlexibleDate("Jan 2020")
	require.True(t, ok)
	assert.Equal(t, time.January, got.Month())

	got, ok = ParseFlexibleDate("march 2021")
	require.True(t, ok)
	assert.Equal(t, time.March, got.Month())
}

func TestParseFlexibleDateBareYear(t *testing.T) {
	got, ok := ParseFlexibleDate("2017")

	require.True(t, ok)
	assert.Equal(t, 2017, got.Year())
}

func TestParseFlexibleDateOngoingMarkers(t *testing.T) {
	for _, marker := range []string{"Present", "current", "NOW", "ongoing"} {
		got, ok := ParseFlexibleDate(marker)
		require.True(t, ok, marker)
		assert.WithinDuration(t, time.Now(), got, time.Minute)
	}
}

func TestParseFlexibleDateUnparsable(t *testing.T) {
	_, ok := ParseFlexibleDate("sometime back")
	assert.False(t, ok)

	_, ok = ParseFlexibleDate("")
	assert.False(t, ok)
}

func TestMonthsBetweenKnownSpan(t *testing.T) {
	start, _ := ParseFlexibleDate("2020-01")
	end, _ := ParseFlexibleDate("2022-03")

	assert.Equal(t, 26, MonthsBetween(start, end))
}

func TestMonthsBetweenInvertedClampsToZero(t *testing.T) {
	start, _ := ParseFlexibleDate("2022-03")
	end, _ := ParseFlexibleDate("2020-01")

	assert.Equal(t, 0, MonthsBetween(start, end))
}
