package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestStartOfWeek_ReturnsMonday(t *testing.T) {
	// 2025-10-29 is a Wednesday; the Monday of that week is 2025-10-27.
	d := mustDate(t, "2025-10-29")

	start := StartOfWeek(d)

	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, "2025-10-27", start.String())
}

func TestStartOfWeek_MondayMapsToItself(t *testing.T) {
	monday := mustDate(t, "2025-10-27")

	assert.Equal(t, monday, StartOfWeek(monday))
}

func TestStartOfWeek_SundayBelongsToPrecedingMonday(t *testing.T) {
	// Sunday is the last day of the week, not the first.
	sunday := mustDate(t, "2025-11-02")

	assert.Equal(t, "2025-10-27", StartOfWeek(sunday).String())
}

func TestStartOfWeek_Idempotent(t *testing.T) {
	for _, s := range []string{"2025-10-27", "2025-10-28", "2025-10-31", "2025-11-01", "2025-11-02", "2024-02-29", "2025-01-01", "2025-12-31"} {
		d := mustDate(t, s)
		start := StartOfWeek(d)

		assert.Equal(t, time.Monday, start.Weekday(), "start of week for %s", s)
		assert.Equal(t, start, StartOfWeek(start), "idempotency for %s", s)
	}
}

func TestEndOfWeek_IsStartPlusSix(t *testing.T) {
	start := mustDate(t, "2025-10-27")

	end := EndOfWeek(start)

	assert.Equal(t, "2025-11-02", end.String())
	assert.Equal(t, time.Sunday, end.Weekday())
}

func TestPreviousNextWeek_RoundTrip(t *testing.T) {
	for _, s := range []string{"2025-10-27", "2024-12-30", "2025-01-06"} {
		start := mustDate(t, s)

		assert.Equal(t, start, NextWeek(PreviousWeek(start)), "next(prev) for %s", s)
		assert.Equal(t, start, PreviousWeek(NextWeek(start)), "prev(next) for %s", s)
	}
}

func TestWindowFor_Invariant(t *testing.T) {
	w := WindowFor(mustDate(t, "2025-10-30"))

	assert.Equal(t, "2025-10-27", w.Start.String())
	assert.Equal(t, "2025-11-02", w.End.String())
	assert.Equal(t, w.Start.AddDays(6), w.End)
}

func TestWindow_Navigation(t *testing.T) {
	w := WindowFor(mustDate(t, "2025-10-30"))

	next := w.Next()
	assert.Equal(t, "2025-11-03", next.Start.String())
	assert.Equal(t, "2025-11-09", next.End.String())

	assert.Equal(t, w, next.Previous())
}

func TestWindow_Contains(t *testing.T) {
	w := WindowFor(mustDate(t, "2025-10-30"))

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.True(t, w.Contains(mustDate(t, "2025-10-30")))
	assert.False(t, w.Contains(mustDate(t, "2025-10-26")))
	assert.False(t, w.Contains(mustDate(t, "2025-11-03")))
}

func TestDays_SevenConsecutiveDays(t *testing.T) {
	start := mustDate(t, "2025-10-27")

	days := Days(start)

	require.Len(t, days, 7)
	assert.Equal(t, start, days[0])
	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDays(1), days[i], "day %d follows day %d", i, i-1)
	}
	assert.Equal(t, EndOfWeek(start), days[6])
}

func TestDays_CrossesMonthBoundary(t *testing.T) {
	days := Days(mustDate(t, "2025-10-27"))

	assert.Equal(t, "2025-10-31", days[4].String())
	assert.Equal(t, "2025-11-01", days[5].String())
}
