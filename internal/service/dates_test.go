package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("brazilian format", func(t *testing.T) {
		d, ok := ParseDate("15/03/2025")
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("day-first wins over month-first reading", func(t *testing.T) {
		// 05/01/2025 is January 5th, not May 1st.
		d, ok := ParseDate("05/01/2025")
		require.True(t, ok)
		assert.Equal(t, time.January, d.Month())
		assert.Equal(t, 5, d.Day())
	})

	t.Run("iso fallback", func(t *testing.T) {
		d, ok := ParseDate("2025-01-05")
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), d)

		d, ok = ParseDate("2025-01-05T14:30:00Z")
		require.True(t, ok)
		assert.Equal(t, 5, d.Day())
	})

	t.Run("impossible calendar dates fail", func(t *testing.T) {
		_, ok := ParseDate("31/02/2025")
		assert.False(t, ok)

		_, ok = ParseDate("29/02/2023")
		assert.False(t, ok)
	})

	t.Run("leap day parses", func(t *testing.T) {
		_, ok := ParseDate("29/02/2024")
		assert.True(t, ok)
	})

	t.Run("placeholders and garbage fail", func(t *testing.T) {
		for _, s := range []string{"", "   ", "N/A", "amanhã", "13/13/2025"} {
			_, ok := ParseDate(s)
			assert.False(t, ok, "input %q", s)
		}
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		_, ok := ParseDate("  01/01/2025  ")
		assert.True(t, ok)
	})
}

func TestDaysBetween(t *testing.T) {
	now := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)

	t.Run("between two dates", func(t *testing.T) {
		d, ok := DaysBetween("01/01/2025", "05/01/2025", now)
		require.True(t, ok)
		assert.Equal(t, 4, d)
	})

	t.Run("unparseable start", func(t *testing.T) {
		_, ok := DaysBetween("N/A", "05/01/2025", now)
		assert.False(t, ok)
	})

	t.Run("unparseable end", func(t *testing.T) {
		_, ok := DaysBetween("01/01/2025", "quinta-feira", now)
		assert.False(t, ok)
	})

	t.Run("empty end uses now", func(t *testing.T) {
		d, ok := DaysBetween("01/01/2025", "", now)
		require.True(t, ok)
		assert.Equal(t, 9, d)
	})

	t.Run("negative when end precedes start", func(t *testing.T) {
		d, ok := DaysBetween("05/01/2025", "01/01/2025", now)
		require.True(t, ok)
		assert.Equal(t, -4, d)
	})

	t.Run("time of day does not shift the count", func(t *testing.T) {
		lateNow := time.Date(2025, time.January, 10, 23, 59, 0, 0, time.UTC)
		d, ok := DaysBetween("09/01/2025", "", lateNow)
		require.True(t, ok)
		assert.Equal(t, 1, d)
	})
}
