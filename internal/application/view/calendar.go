package view

import (
	"fmt"
	"time"
)

// Month is the reference month for the calendar grid.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// CurrentMonth returns the month containing today, read from the wall clock
// at call time. A day boundary crossed mid-session is only reflected on the
// next call.
func CurrentMonth() Month {
	return MonthOf(time.Now())
}

// ParseMonth parses a YYYY-MM reference
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, want YYYY-MM: %w", s, err)
	}
	return MonthOf(t), nil
}

// Next returns the following month
func (m Month) Next() Month {
	return MonthOf(m.first().AddDate(0, 1, 0))
}

// Prev returns the preceding month
func (m Month) Prev() Month {
	return MonthOf(m.first().AddDate(0, -1, 0))
}

func (m Month) first() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// Days returns the month's days in ascending order, first through last. The
// grid is strictly month-only: it is not padded with adjacent-month days to
// form complete weeks.
func (m Month) Days() []time.Time {
	first := m.first()
	next := first.AddDate(0, 1, 0)
	days := make([]time.Time, 0, 31)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether t falls inside the month
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// SameDay reports whether a and b share a calendar date, independent of
// time-of-day. Each timestamp is read in its own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether day is the wall-clock date at call time
func IsToday(day time.Time) bool {
	return SameDay(day, time.Now())
}

// DayBucket groups the items whose date falls on one calendar day
type DayBucket[T any] struct {
	Day   time.Time
	Items []T
}

// BucketByDay buckets items into the month's days by the date component of
// dateOf. Every item whose date falls inside the month lands in exactly one
// bucket; items outside the month are dropped. Item order within a bucket
// follows input order.
func BucketByDay[T any](m Month, items []T, dateOf func(T) time.Time) []DayBucket[T] {
	days := m.Days()
	buckets := make([]DayBucket[T], len(days))
	for i, day := range days {
		buckets[i] = DayBucket[T]{Day: day}
	}
	for _, item := range items {
		d := dateOf(item)
		if !m.Contains(d) {
			continue
		}
		idx := d.Day() - 1
		buckets[idx].Items = append(buckets[idx].Items, item)
	}
	return buckets
}
