//go:build unit

package busday_test

import (
	"testing"
	"time"

	"restaurant-pos/internal/pkg/busday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	t.Run("late evening UTC is already the next day in Tokyo", func(t *testing.T) {
		// 2025-03-01 23:30 UTC == 2025-03-02 08:30 JST
		instant := time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC)
		got := busday.Resolve(instant, tokyo)
		assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("result is always UTC midnight", func(t *testing.T) {
		instant := time.Date(2025, 7, 15, 12, 45, 3, 999, tokyo)
		got := busday.Resolve(instant, tokyo)
		assert.Equal(t, time.UTC, got.Location())
		assert.Equal(t, 0, got.Hour())
		assert.Equal(t, 0, got.Minute())
	})

	t.Run("stable across DST transition in a DST timezone", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		// US spring-forward 2025-03-09: 01:59 EST and 03:01 EDT are the same calendar day.
		before := time.Date(2025, 3, 9, 6, 59, 0, 0, time.UTC) // 01:59 EST
		after := time.Date(2025, 3, 9, 7, 1, 0, 0, time.UTC)   // 03:01 EDT
		assert.Equal(t, busday.Resolve(before, ny), busday.Resolve(after, ny))
		assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), busday.Resolve(before, ny))
	})

	t.Run("midnight boundary in store timezone starts a new date", func(t *testing.T) {
		lastOrder := time.Date(2025, 5, 10, 14, 59, 59, 0, time.UTC)  // 23:59:59 JST
		firstOrder := time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)   // 00:00:00 JST next day
		assert.False(t, busday.SameBusinessDay(lastOrder, firstOrder, tokyo))
		assert.Equal(t, time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC), busday.Resolve(firstOrder, tokyo))
	})
}
