package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type statusItem struct{ status string }

func TestCountByStatus(t *testing.T) {
	items := []statusItem{
		{"PENDING"}, {"PENDING"}, {"APPROVED"}, {"REJECTED"}, {"APPROVED"},
	}
	counts := CountByStatus(items, func(i statusItem) string { return i.status })

	assert.Equal(t, 2, counts["PENDING"])
	assert.Equal(t, 2, counts["APPROVED"])
	assert.Equal(t, 1, counts["REJECTED"])
	assert.Len(t, counts, 3)
}

func TestCountByStatus_Empty(t *testing.T) {
	counts := CountByStatus(nil, func(i statusItem) string { return i.status })
	assert.Empty(t, counts)
}

func TestMonthlyBuckets(t *testing.T) {
	ref := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC),
		// Outside the window, must be ignored.
		time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
	}

	buckets := MonthlyBuckets(times, 6, ref)

	assert.Len(t, buckets, 6)
	assert.Equal(t, time.January, buckets[0].Month)
	assert.Equal(t, time.June, buckets[5].Month)
	assert.Equal(t, 2, buckets[5].Count)
	assert.Equal(t, 1, buckets[3].Count)
	// Months with no activity still appear.
	assert.Equal(t, 0, buckets[0].Count)
	assert.Equal(t, "Jun 2026", buckets[5].Label())
}

func TestMonthlyBuckets_MonthEndReference(t *testing.T) {
	// A reference on the 31st must still yield six distinct months.
	ref := time.Date(2026, time.May, 31, 23, 0, 0, 0, time.UTC)
	times := []time.Time{
		time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	}

	buckets := MonthlyBuckets(times, 6, ref)

	months := make([]time.Month, len(buckets))
	for i, b := range buckets {
		months[i] = b.Month
	}
	assert.Equal(t, []time.Month{
		time.December, time.January, time.February, time.March, time.April, time.May,
	}, months)
	assert.Equal(t, 1, buckets[2].Count)
	assert.Equal(t, 1, buckets[4].Count)
}

func TestMonthlyBuckets_YearBoundary(t *testing.T) {
	ref := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	buckets := MonthlyBuckets(nil, 6, ref)

	assert.Equal(t, time.September, buckets[0].Month)
	assert.Equal(t, 2025, buckets[0].Year)
	assert.Equal(t, time.February, buckets[5].Month)
	assert.Equal(t, 2026, buckets[5].Year)
}

func TestPaginate(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i
	}

	t.Run("first page", func(t *testing.T) {
		p := Paginate(items, 1, 5)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, p.Items)
		assert.Equal(t, 1, p.Number)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, 12, p.TotalItems)
		assert.False(t, p.HasPrev())
		assert.True(t, p.HasNext())
	})

	t.Run("last page is short", func(t *testing.T) {
		p := Paginate(items, 3, 5)
		assert.Equal(t, []int{10, 11}, p.Items)
		assert.False(t, p.HasNext())
	})

	t.Run("beyond last clamps to last", func(t *testing.T) {
		p := Paginate(items, 99, 5)
		assert.Equal(t, 3, p.Number)
		assert.Equal(t, []int{10, 11}, p.Items)
	})

	t.Run("below first clamps to first", func(t *testing.T) {
		p := Paginate(items, 0, 5)
		assert.Equal(t, 1, p.Number)
	})

	t.Run("empty collection is page 1 of 1", func(t *testing.T) {
		p := Paginate([]int{}, 5, 5)
		assert.Equal(t, 1, p.Number)
		assert.Equal(t, 1, p.TotalPages)
		assert.Empty(t, p.Items)
		assert.False(t, p.HasPrev())
		assert.False(t, p.HasNext())
	})
}

func TestPieSlices(t *testing.T) {
	counts := map[string]int{"APPROVED": 3, "PENDING": 1}
	slices := PieSlices(counts)

	assert.Len(t, slices, 2)
	// Ordered by label.
	assert.Equal(t, "APPROVED", slices[0].Label)
	assert.Equal(t, "PENDING", slices[1].Label)

	assert.InDelta(t, 75.0, slices[0].Percent, 0.01)
	assert.InDelta(t, 0.0, slices[0].StartAngle, 0.01)
	assert.InDelta(t, 270.0, slices[0].EndAngle, 0.01)
	assert.InDelta(t, 270.0, slices[1].StartAngle, 0.01)
	assert.InDelta(t, 360.0, slices[1].EndAngle, 0.01)
}

func TestPieSlices_ZeroTotal(t *testing.T) {
	assert.Nil(t, PieSlices(map[string]int{}))
	assert.Nil(t, PieSlices(map[string]int{"PENDING": 0}))
}

func TestPolylinePoints(t *testing.T) {
	t.Run("max touches the top", func(t *testing.T) {
		got := PolylinePoints([]int{0, 5, 10}, 100, 50)
		assert.Equal(t, "0.0,50.0 50.0,25.0 100.0,0.0", got)
	})

	t.Run("flat series draws along the bottom", func(t *testing.T) {
		got := PolylinePoints([]int{0, 0, 0}, 100, 50)
		assert.Equal(t, "0.0,50.0 50.0,50.0 100.0,50.0", got)
	})

	t.Run("single point", func(t *testing.T) {
		got := PolylinePoints([]int{3}, 100, 50)
		assert.Equal(t, "0.0,0.0", got)
	})

	t.Run("empty series", func(t *testing.T) {
		assert.Equal(t, "", PolylinePoints(nil, 100, 50))
	})
}

func TestCounts(t *testing.T) {
	buckets := []MonthBucket{{Count: 1}, {Count: 0}, {Count: 4}}
	assert.Equal(t, []int{1, 0, 4}, Counts(buckets))
}
