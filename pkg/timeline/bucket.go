package timeline

import (
	"time"

	"github.com/aretw0/knowling/pkg/core"
)

// Kind distinguishes the fixed buckets from month/year buckets.
type Kind int

const (
	KindToday Kind = iota
	KindYesterday
	KindEarlierThisMonth
	KindMonthYear
)

// Key identifies a bucket. Year and Month are only set for KindMonthYear.
type Key struct {
	Kind  Kind
	Year  int
	Month time.Month
}

// Fixed returns the key of one of the fixed buckets.
func Fixed(kind Kind) Key {
	return Key{Kind: kind}
}

// MonthYear returns the key of the bucket holding notes from month of year.
func MonthYear(year int, month time.Month) Key {
	return Key{Kind: KindMonthYear, Year: year, Month: month}
}

// IsFixed reports whether k is Today, Yesterday or EarlierThisMonth.
func (k Key) IsFixed() bool {
	return k.Kind != KindMonthYear
}

// SortKey orders month/year buckets: year*100 + zero-based month index.
// Fixed keys return -1; they are ordered by Kind instead.
func (k Key) SortKey() int {
	if k.IsFixed() {
		return -1
	}
	return k.Year*100 + int(k.Month) - 1
}

// Label renders k with cal.
func (k Key) Label(cal Calendar) string {
	if k.IsFixed() {
		return cal.FixedLabel(k.Kind)
	}
	return cal.MonthYearLabel(k.Year, k.Month)
}

// Bucket is a labelled, ordered group of notes.
type Bucket struct {
	Key   Key         `json:"-"`
	Label string      `json:"label"`
	Notes []core.Note `json:"notes"`
}
