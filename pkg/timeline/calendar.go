package timeline

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Calendar turns bucket keys into display labels.
// Implementations must be deterministic so labels are reproducible.
type Calendar interface {
	// Name identifies the calendar (usually a BCP 47 tag).
	Name() string
	// FixedLabel returns the label of Today, Yesterday or EarlierThisMonth.
	FixedLabel(kind Kind) string
	// MonthYearLabel returns the label of a month/year bucket.
	MonthYearLabel(year int, month time.Month) string
}

// DefaultMonthYearFormat renders "January 2023".
const DefaultMonthYearFormat = "%s %d"

// Locale is a table driven Calendar.
type Locale struct {
	Tag              string
	Today            string
	Yesterday        string
	EarlierThisMonth string
	Months           [12]string
	// MonthYearFormat receives the month name and the year. Empty means
	// DefaultMonthYearFormat.
	MonthYearFormat string
}

// Name implements Calendar.
func (l Locale) Name() string {
	return l.Tag
}

// FixedLabel implements Calendar.
func (l Locale) FixedLabel(kind Kind) string {
	switch kind {
	case KindToday:
		return l.Today
	case KindYesterday:
		return l.Yesterday
	case KindEarlierThisMonth:
		return l.EarlierThisMonth
	default:
		return ""
	}
}

// MonthYearLabel implements Calendar.
func (l Locale) MonthYearLabel(year int, month time.Month) string {
	name := month.String()
	if month >= time.January && month <= time.December && l.Months[month-1] != "" {
		name = l.Months[month-1]
	}
	format := l.MonthYearFormat
	if format == "" {
		format = DefaultMonthYearFormat
	}
	return fmt.Sprintf(format, name, year)
}

var (
	// English labels buckets "Today", "Yesterday", "Earlier this month" and "January 2023".
	English = Locale{
		Tag:              "en",
		Today:            "Today",
		Yesterday:        "Yesterday",
		EarlierThisMonth: "Earlier this month",
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthYearFormat: "%s %d",
	}

	// Portuguese labels buckets "Hoje", "Ontem", "Mais cedo este mês" and "janeiro de 2023".
	Portuguese = Locale{
		Tag:              "pt",
		Today:            "Hoje",
		Yesterday:        "Ontem",
		EarlierThisMonth: "Mais cedo este mês",
		Months: [12]string{
			"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
		},
		MonthYearFormat: "%s de %d",
	}
)

var (
	supported = []Locale{English, Portuguese}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Portuguese})
)

// LookupCalendar returns the built-in calendar that best matches a BCP 47
// tag such as "pt-BR". The second result is false when nothing matches.
func LookupCalendar(tag string) (Calendar, bool) {
	t, err := language.Parse(tag)
	if err != nil {
		return English, false
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return English, false
	}
	return supported[idx], true
}

// SameDay reports whether a and b fall on the same calendar day.
// Both are compared in their own locations; callers convert first.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
