// Package timeline groups notes into time buckets for display:
// Today, Yesterday, Earlier this month, then one bucket per month, most
// recent first.
package timeline

import (
	"sort"
	"time"

	"github.com/aretw0/knowling/pkg/core"
)

type options struct {
	calendar Calendar
}

// Option configures Group.
type Option func(*options)

// WithCalendar sets the calendar used to label buckets. Defaults to English.
func WithCalendar(cal Calendar) Option {
	return func(o *options) {
		if cal != nil {
			o.calendar = cal
		}
	}
}

// Classify returns the bucket key of a note modified at the given Unix
// second, relative to now. The modification time is read in now's location.
func Classify(modified int64, now time.Time) Key {
	t := time.Unix(modified, 0).In(now.Location())
	yesterday := now.AddDate(0, 0, -1)

	switch {
	case SameDay(t, now):
		return Fixed(KindToday)
	case SameDay(t, yesterday):
		return Fixed(KindYesterday)
	case SameMonth(t, now):
		return Fixed(KindEarlierThisMonth)
	default:
		return MonthYear(t.Year(), t.Month())
	}
}

// Group partitions notes into buckets relative to now.
//
// Fixed buckets come first in the order Today, Yesterday, Earlier this
// month; month/year buckets follow in descending chronological order. Empty
// buckets are omitted and each bucket keeps the input order of its notes.
func Group(notes []core.Note, now time.Time, opts ...Option) []Bucket {
	o := &options{calendar: English}
	for _, opt := range opts {
		opt(o)
	}

	var fixed [KindMonthYear][]core.Note
	months := make(map[Key][]core.Note)
	var monthKeys []Key

	for _, n := range notes {
		key := Classify(n.Modified, now)
		if key.IsFixed() {
			fixed[key.Kind] = append(fixed[key.Kind], n)
			continue
		}
		if _, ok := months[key]; !ok {
			monthKeys = append(monthKeys, key)
		}
		months[key] = append(months[key], n)
	}

	sort.Slice(monthKeys, func(i, j int) bool {
		return monthKeys[i].SortKey() > monthKeys[j].SortKey()
	})

	buckets := make([]Bucket, 0, len(fixed)+len(monthKeys))
	for kind, group := range fixed {
		if len(group) == 0 {
			continue
		}
		key := Fixed(Kind(kind))
		buckets = append(buckets, Bucket{Key: key, Label: key.Label(o.calendar), Notes: group})
	}
	for _, key := range monthKeys {
		buckets = append(buckets, Bucket{Key: key, Label: key.Label(o.calendar), Notes: months[key]})
	}
	return buckets
}

// Flatten concatenates bucket contents in bucket order.
func Flatten(buckets []Bucket) []core.Note {
	var n int
	for _, b := range buckets {
		n += len(b.Notes)
	}
	out := make([]core.Note, 0, n)
	for _, b := range buckets {
		out = append(out, b.Notes...)
	}
	return out
}
