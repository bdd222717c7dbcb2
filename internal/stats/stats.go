// Package stats holds the pure functions behind dashboard numbers:
// status tallies, monthly buckets, pagination, and the geometry for the
// inline SVG charts. Everything here is deterministic over its input so
// the dashboards recompute correctly whenever a collection refetches.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// CountByStatus tallies items by the status the keyFn extracts.
func CountByStatus[T any](items []T, keyFn func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	return counts
}

// MonthBucket is one month's tally in a trend series.
type MonthBucket struct {
	Year  int
	Month time.Month
	Count int
}

func (b MonthBucket) Label() string {
	return fmt.Sprintf("%s %d", b.Month.String()[:3], b.Year)
}

// MonthlyBuckets tallies timestamps into the last n calendar months
// ending at the month of ref. Months with no items appear with a zero
// count so trend lines keep a fixed width.
func MonthlyBuckets(times []time.Time, n int, ref time.Time) []MonthBucket {
	if n <= 0 {
		return nil
	}
	// Offsetting from a day-of-month past the 28th would normalize
	// through nonexistent dates (May 31 minus 3 months lands in March),
	// so the window is anchored to the first of the reference month.
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	buckets := make([]MonthBucket, n)
	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		m := first.AddDate(0, i-(n-1), 0)
		buckets[i] = MonthBucket{Year: m.Year(), Month: m.Month()}
		index[monthKey(m.Year(), m.Month())] = i
	}
	for _, t := range times {
		if i, ok := index[monthKey(t.Year(), t.Month())]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// Page is one window over a fetched collection.
type Page[T any] struct {
	Items      []T
	Number     int // 1-based
	TotalPages int
	TotalItems int
}

func (p Page[T]) HasPrev() bool { return p.Number > 1 }
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }
func (p Page[T]) Prev() int     { return p.Number - 1 }
func (p Page[T]) Next() int     { return p.Number + 1 }

// Paginate slices items into the requested page. A page past the end
// clamps to the last valid page; anything below 1 clamps to the first.
// An empty collection yields page 1 of 1 with no items.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 10
	}
	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: len(items),
	}
}

// PieSlice is one wedge of a status pie: its share of the whole plus
// the cumulative angles an SVG arc needs.
type PieSlice struct {
	Label      string
	Count      int
	Percent    float64
	StartAngle float64 // degrees, clockwise from 12 o'clock
	EndAngle   float64
}

// PieSlices turns a status count map into wedges, ordered by label for
// stable rendering. A zero total returns nil.
func PieSlices(counts map[string]int) []PieSlice {
	total := 0
	labels := make([]string, 0, len(counts))
	for label, n := range counts {
		total += n
		labels = append(labels, label)
	}
	if total == 0 {
		return nil
	}
	sort.Strings(labels)

	slices := make([]PieSlice, 0, len(labels))
	angle := 0.0
	for _, label := range labels {
		n := counts[label]
		share := float64(n) / float64(total)
		s := PieSlice{
			Label:      label,
			Count:      n,
			Percent:    share * 100,
			StartAngle: angle,
			EndAngle:   angle + share*360,
		}
		angle = s.EndAngle
		slices = append(slices, s)
	}
	return slices
}

// PolylinePoints maps a series onto a width×height viewport and returns
// the "x,y x,y ..." string an SVG <polyline> takes. The series maximum
// touches the top edge; a flat or empty series draws along the bottom.
func PolylinePoints(series []int, width, height float64) string {
	if len(series) == 0 {
		return ""
	}
	max := 0
	for _, v := range series {
		if v > max {
			max = v
		}
	}
	step := 0.0
	if len(series) > 1 {
		step = width / float64(len(series)-1)
	}
	points := make([]string, len(series))
	for i, v := range series {
		x := step * float64(i)
		y := height
		if max > 0 {
			y = height - (float64(v)/float64(max))*height
		}
		points[i] = fmt.Sprintf("%.1f,%.1f", x, y)
	}
	return strings.Join(points, " ")
}

// Counts extracts the count column from a bucket series.
func Counts(buckets []MonthBucket) []int {
	out := make([]int, len(buckets))
	for i, b := range buckets {
		out[i] = b.Count
	}
	return out
}
