package timeline_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/knowling/pkg/core"
	"github.com/aretw0/knowling/pkg/timeline"
)

const day = 24 * time.Hour

func noteAt(id string, t time.Time) core.Note {
	return core.Note{ID: id, Text: "Note " + id, Modified: t.Unix()}
}

func labels(buckets []timeline.Bucket) []string {
	out := make([]string, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b.Label)
	}
	return out
}

func ids(notes []core.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestGroup_MidMonth(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	notes := []core.Note{
		noteAt("1", now),
		noteAt("2", now.Add(-1*day)),
		noteAt("3", now.Add(-2*day)),
		noteAt("4", now.Add(-30*day)),
		noteAt("5", now.Add(-60*day)),
	}

	buckets := timeline.Group(notes, now)

	require.Equal(t, []string{"Today", "Yesterday", "Earlier this month", "May 2024", "April 2024"}, labels(buckets))
	for i, b := range buckets {
		assert.Equal(t, []string{fmt.Sprint(i + 1)}, ids(b.Notes), "bucket %s", b.Label)
	}
}

func TestGroup_FirstOfMonth(t *testing.T) {
	// On the first of the month "two days ago" already belongs to the previous month.
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	notes := []core.Note{
		noteAt("1", now),
		noteAt("2", now.Add(-1*day)),
		noteAt("3", now.Add(-2*day)),
		noteAt("4", now.Add(-30*day)),
		noteAt("5", now.Add(-60*day)),
	}

	buckets := timeline.Group(notes, now)

	require.Equal(t, []string{"Today", "Yesterday", "May 2024", "April 2024"}, labels(buckets))
	assert.Equal(t, []string{"1"}, ids(buckets[0].Notes))
	assert.Equal(t, []string{"2"}, ids(buckets[1].Notes))
	assert.Equal(t, []string{"3", "4"}, ids(buckets[2].Notes))
	assert.Equal(t, []string{"5"}, ids(buckets[3].Notes))
}

func TestGroup_CalendarBoundaries(t *testing.T) {
	t.Run("Midnight Is Calendar Based", func(t *testing.T) {
		now := time.Date(2024, time.March, 10, 0, 0, 1, 0, time.UTC)
		justBefore := time.Date(2024, time.March, 9, 23, 59, 59, 0, time.UTC)

		buckets := timeline.Group([]core.Note{noteAt("a", justBefore)}, now)
		require.Len(t, buckets, 1)
		assert.Equal(t, timeline.Fixed(timeline.KindYesterday), buckets[0].Key)
	})

	t.Run("Late Yesterday Is Not Today", func(t *testing.T) {
		now := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)
		earlyYesterday := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)

		buckets := timeline.Group([]core.Note{noteAt("a", earlyYesterday)}, now)
		require.Len(t, buckets, 1)
		assert.Equal(t, "Yesterday", buckets[0].Label)
	})

	t.Run("Yesterday Across Year Boundary", func(t *testing.T) {
		now := time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC)
		newYearsEve := time.Date(2024, time.December, 31, 9, 0, 0, 0, time.UTC)
		earlierDecember := time.Date(2024, time.December, 2, 9, 0, 0, 0, time.UTC)

		buckets := timeline.Group([]core.Note{noteAt("eve", newYearsEve), noteAt("dec", earlierDecember)}, now)
		assert.Equal(t, []string{"Yesterday", "December 2024"}, labels(buckets))
	})

	t.Run("Two Days Ago Same Month", func(t *testing.T) {
		now := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
		buckets := timeline.Group([]core.Note{noteAt("a", now.Add(-2*day))}, now)
		assert.Equal(t, []string{"Earlier this month"}, labels(buckets))
	})

	t.Run("Uses Location Of Now", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		now := time.Date(2024, time.March, 10, 8, 0, 0, 0, tokyo)
		// 23:30 UTC on the 9th is 08:30 on the 10th in Tokyo.
		modified := time.Date(2024, time.March, 9, 23, 30, 0, 0, time.UTC)

		buckets := timeline.Group([]core.Note{noteAt("a", modified)}, now)
		assert.Equal(t, []string{"Today"}, labels(buckets))
	})
}

func TestGroup_MonthBucketsAccumulateAndSort(t *testing.T) {
	now := time.Date(2024, time.June, 20, 10, 0, 0, 0, time.UTC)
	notes := []core.Note{
		noteAt("jan23-a", time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)),
		noteAt("may24-a", time.Date(2024, time.May, 30, 0, 0, 0, 0, time.UTC)),
		noteAt("dec23", time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)),
		noteAt("may24-b", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
		noteAt("jan23-b", time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)),
		noteAt("today", now),
	}

	buckets := timeline.Group(notes, now)

	require.Equal(t, []string{"Today", "May 2024", "December 2023", "January 2023"}, labels(buckets))
	assert.Equal(t, []string{"may24-a", "may24-b"}, ids(buckets[1].Notes))
	assert.Equal(t, []string{"jan23-a", "jan23-b"}, ids(buckets[3].Notes))
}

func TestGroup_NoCurrentMonthBucket(t *testing.T) {
	now := time.Date(2024, time.June, 20, 10, 0, 0, 0, time.UTC)
	notes := []core.Note{
		noteAt("early-june", time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)),
		noteAt("june-2023", time.Date(2023, time.June, 2, 0, 0, 0, 0, time.UTC)),
	}

	buckets := timeline.Group(notes, now)

	assert.Equal(t, []string{"Earlier this month", "June 2023"}, labels(buckets))
	for _, b := range buckets {
		assert.NotEqual(t, "June 2024", b.Label)
	}
}

func TestGroup_Empty(t *testing.T) {
	buckets := timeline.Group(nil, time.Now())
	assert.Empty(t, buckets)
	assert.Empty(t, timeline.Flatten(buckets))
}

func TestGroup_WithCalendar(t *testing.T) {
	now := time.Date(2024, time.June, 20, 10, 0, 0, 0, time.UTC)
	notes := []core.Note{
		noteAt("a", now),
		noteAt("b", time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)),
	}

	buckets := timeline.Group(notes, now, timeline.WithCalendar(timeline.Portuguese))
	assert.Equal(t, []string{"Hoje", "março de 2024"}, labels(buckets))
}

func TestKey_SortKey(t *testing.T) {
	assert.Equal(t, 202402, timeline.MonthYear(2024, time.March).SortKey())
	assert.Equal(t, 202300, timeline.MonthYear(2023, time.January).SortKey())
	assert.Equal(t, -1, timeline.Fixed(timeline.KindToday).SortKey())
	assert.True(t, timeline.Fixed(timeline.KindEarlierThisMonth).IsFixed())
	assert.False(t, timeline.MonthYear(2024, time.March).IsFixed())
}
