package timeline_test

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/aretw0/knowling/pkg/core"
	"github.com/aretw0/knowling/pkg/timeline"
)

var zones = []*time.Location{
	time.UTC,
	time.FixedZone("BRT", -3*60*60),
	time.FixedZone("JST", 9*60*60),
}

// nowGenerator draws a reference instant between 2000 and 2040.
func nowGenerator() *rapid.Generator[time.Time] {
	return rapid.Custom(func(t *rapid.T) time.Time {
		sec := rapid.Int64Range(946684800, 2208988800).Draw(t, "nowUnix")
		loc := rapid.SampledFrom(zones).Draw(t, "zone")
		return time.Unix(sec, 0).In(loc)
	})
}

// notesGenerator draws notes modified up to three years before now.
func notesGenerator(now time.Time) *rapid.Generator[[]core.Note] {
	return rapid.Custom(func(t *rapid.T) []core.Note {
		offsets := rapid.SliceOfN(rapid.Int64Range(0, 3*366*24*60*60), 0, 40).Draw(t, "offsets")
		notes := make([]core.Note, len(offsets))
		for i, off := range offsets {
			notes[i] = core.Note{ID: fmt.Sprintf("n%d", i), Modified: now.Unix() - off}
		}
		return notes
	})
}

func testGroup_Partition_Properties(t *rapid.T) {
	now := nowGenerator().Draw(t, "now")
	notes := notesGenerator(now).Draw(t, "notes")

	buckets := timeline.Group(notes, now)

	position := make(map[string]int, len(notes))
	for i, n := range notes {
		position[n.ID] = i
	}

	seen := make(map[string]int)
	for _, b := range buckets {
		if len(b.Notes) == 0 {
			t.Fatalf("bucket %q is empty", b.Label)
		}
		last := -1
		for _, n := range b.Notes {
			seen[n.ID]++
			if position[n.ID] <= last {
				t.Fatalf("bucket %q does not keep input order", b.Label)
			}
			last = position[n.ID]
		}
	}
	if len(seen) != len(notes) {
		t.Fatalf("expected %d distinct notes, got %d", len(notes), len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("note %s appears %d times", id, count)
		}
	}
}

func TestGroup_Partition_Properties(t *testing.T) {
	rapid.Check(t, testGroup_Partition_Properties)
}

func testGroup_Ordering_Properties(t *rapid.T) {
	now := nowGenerator().Draw(t, "now")
	notes := notesGenerator(now).Draw(t, "notes")

	buckets := timeline.Group(notes, now)

	lastFixed := timeline.Kind(-1)
	lastSort := -1
	monthSeen := false
	for _, b := range buckets {
		if b.Key.IsFixed() {
			if monthSeen {
				t.Fatalf("fixed bucket %q after a month bucket", b.Label)
			}
			if b.Key.Kind <= lastFixed {
				t.Fatalf("fixed bucket %q out of order", b.Label)
			}
			lastFixed = b.Key.Kind
			continue
		}
		if monthSeen && b.Key.SortKey() >= lastSort {
			t.Fatalf("month bucket %q not strictly descending", b.Label)
		}
		monthSeen = true
		lastSort = b.Key.SortKey()
	}
}

func TestGroup_Ordering_Properties(t *testing.T) {
	rapid.Check(t, testGroup_Ordering_Properties)
}

func testGroup_Classification_Properties(t *rapid.T) {
	now := nowGenerator().Draw(t, "now")
	notes := notesGenerator(now).Draw(t, "notes")

	yesterday := now.AddDate(0, 0, -1)
	for _, b := range timeline.Group(notes, now) {
		for _, n := range b.Notes {
			modified := time.Unix(n.Modified, 0).In(now.Location())
			switch b.Key.Kind {
			case timeline.KindToday:
				if !timeline.SameDay(modified, now) {
					t.Fatalf("%s in Today but modified %s", n.ID, modified)
				}
			case timeline.KindYesterday:
				if !timeline.SameDay(modified, yesterday) {
					t.Fatalf("%s in Yesterday but modified %s", n.ID, modified)
				}
			case timeline.KindEarlierThisMonth:
				if !timeline.SameMonth(modified, now) || timeline.SameDay(modified, now) || timeline.SameDay(modified, yesterday) {
					t.Fatalf("%s in Earlier this month but modified %s", n.ID, modified)
				}
			case timeline.KindMonthYear:
				if timeline.SameMonth(modified, now) || timeline.SameDay(modified, yesterday) {
					t.Fatalf("%s in %s but modified %s", n.ID, b.Label, modified)
				}
				if modified.Year() != b.Key.Year || modified.Month() != b.Key.Month {
					t.Fatalf("%s in %s but modified %s", n.ID, b.Label, modified)
				}
			}
		}
	}
}

func TestGroup_Classification_Properties(t *testing.T) {
	rapid.Check(t, testGroup_Classification_Properties)
}

func testGroup_Idempotent_Properties(t *rapid.T) {
	now := nowGenerator().Draw(t, "now")
	notes := notesGenerator(now).Draw(t, "notes")

	first := timeline.Group(notes, now)
	second := timeline.Group(timeline.Flatten(first), now)

	if len(first) != len(second) {
		t.Fatalf("expected %d buckets, got %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Key != second[i].Key || first[i].Label != second[i].Label {
			t.Fatalf("bucket %d changed: %q -> %q", i, first[i].Label, second[i].Label)
		}
		if fmt.Sprint(ids(first[i].Notes)) != fmt.Sprint(ids(second[i].Notes)) {
			t.Fatalf("bucket %q contents changed", first[i].Label)
		}
	}
}

func TestGroup_Idempotent_Properties(t *testing.T) {
	rapid.Check(t, testGroup_Idempotent_Properties)
}

func FuzzGroup_Partition(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testGroup_Partition_Properties))
}
