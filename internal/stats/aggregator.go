package stats

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
)

// Window selects the trailing period layout for trend bars.
type Window int

const (
	// WindowMonthly6 buckets records into the 6 trailing calendar
	// months, current month last.
	WindowMonthly6 Window = iota
	// WindowDaily7 buckets records into the 7 trailing calendar days,
	// today last. Used for USDAU withdrawals.
	WindowDaily7
)

// Buckets returns the fixed bar count for the window.
func (w Window) Buckets() int {
	if w == WindowDaily7 {
		return 7
	}
	return 6
}

// GroupStats holds the derived metrics for one status group.
type GroupStats struct {
	Count         int             `json:"count"`
	Bars          []int           `json:"bars"`
	PercentChange string          `json:"percentageChange"`
	Volume        decimal.Decimal `json:"volume"`
}

// Snapshot is the full derived-metrics result for one domain
// collection. It is ephemeral and recomputed from (records, now) on
// every request; nothing here is persisted.
type Snapshot struct {
	Total    int        `json:"total"`
	Overall  GroupStats `json:"overall"`
	Approved GroupStats `json:"approvedStats"`
	Pending  GroupStats `json:"pendingStats"`
	Rejected GroupStats `json:"rejectedStats"`
}

// Date layouts accepted from the platform core. Anything else is
// treated as unparseable and excluded from bucketing.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseRecordDate parses a record's raw date field. ok is false for
// empty or malformed values.
func ParseRecordDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Aggregate derives a Snapshot from a record collection and a
// reference time. It is pure: same inputs, same output, no I/O.
//
// Records whose date cannot be parsed still count toward Total, the
// group Counts and the Volume sums, but appear in no bar and do not
// influence the percentage change.
func Aggregate[T model.ReviewRecord](records []T, now time.Time, m StatusMap, w Window) Snapshot {
	n := w.Buckets()
	snap := Snapshot{
		Overall:  newGroupStats(n),
		Approved: newGroupStats(n),
		Pending:  newGroupStats(n),
		Rejected: newGroupStats(n),
	}

	for _, rec := range records {
		snap.Total++

		group := groupStatsFor(&snap, m.Classify(rec.RecordStatus()))
		group.Count++

		if valued, ok := model.ReviewRecord(rec).(model.ValuedRecord); ok {
			amount := valued.RecordAmount()
			group.Volume = group.Volume.Add(amount)
			snap.Overall.Volume = snap.Overall.Volume.Add(amount)
		}

		t, ok := ParseRecordDate(rec.RecordDate())
		if !ok {
			continue
		}
		idx, ok := bucketIndex(t, now, w)
		if !ok {
			continue
		}
		group.Bars[idx]++
		snap.Overall.Bars[idx]++
	}

	snap.Overall.Count = snap.Total
	finalizeChange(&snap.Overall)
	finalizeChange(&snap.Approved)
	finalizeChange(&snap.Pending)
	finalizeChange(&snap.Rejected)

	return snap
}

func newGroupStats(buckets int) GroupStats {
	return GroupStats{Bars: make([]int, buckets), Volume: decimal.Zero}
}

func groupStatsFor(snap *Snapshot, g Group) *GroupStats {
	switch g {
	case GroupApproved:
		return &snap.Approved
	case GroupRejected:
		return &snap.Rejected
	default:
		return &snap.Pending
	}
}

// bucketIndex maps a record time into the window relative to now. The
// last index is the current period; records outside the window are
// dropped.
func bucketIndex(t, now time.Time, w Window) (int, bool) {
	n := w.Buckets()
	var age int
	switch w {
	case WindowDaily7:
		day := func(ts time.Time) time.Time {
			return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		}
		age = int(day(now).Sub(day(t)).Hours() / 24)
	default:
		age = (now.Year()*12 + int(now.Month())) - (t.Year()*12 + int(t.Month()))
	}
	if age < 0 || age >= n {
		return 0, false
	}
	return n - 1 - age, true
}

// finalizeChange computes the period-over-period change from the last
// two bars. Zero-previous convention: "+0%" when both periods are
// empty, "+100%" when activity appears from nothing.
func finalizeChange(g *GroupStats) {
	n := len(g.Bars)
	g.PercentChange = PercentChange(g.Bars[n-2], g.Bars[n-1])
}

// PercentChange formats (last-prev)/prev with an explicit sign, e.g.
// "+50.00%" or "-50.00%".
func PercentChange(prev, last int) string {
	if prev == 0 {
		if last == 0 {
			return "+0%"
		}
		return "+100%"
	}
	pct := float64(last-prev) / float64(prev) * 100
	return fmt.Sprintf("%+.2f%%", pct)
}
