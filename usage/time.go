package usage

import (
	"sync"
	"time"
)

// TimeUsage records status changes and reports how long each status lasted in a time window.
type TimeUsage[S comparable] interface {
	Update(status S)

	Statistics(tsB, tsE time.Time) map[S]time.Duration
	StatisticsAndClean(tsB, tsE time.Time) map[S]time.Duration

	GetStatusStatistics(tsB, tsE time.Time, statuses []S) []time.Duration
}

func NewTimeUsage[S comparable]() TimeUsage[S] {
	return NewTimeUsageEx[S](nil)
}

// NewTimeUsageEx uses now as the clock; nil means time.Now.
func NewTimeUsageEx[S comparable](now func() time.Time) TimeUsage[S] {
	if now == nil {
		now = time.Now
	}

	return &timeUsageImpl[S]{
		now: now,
	}
}

type timeUsageImpl[S comparable] struct {
	sync.Mutex

	now func() time.Time
	ds  []statusWithTime[S]
}

type statusWithTime[S comparable] struct {
	status S
	at     time.Time
}

func (ts *timeUsageImpl[S]) Update(status S) {
	ts.Lock()
	defer ts.Unlock()

	if n := len(ts.ds); n > 0 && ts.ds[n-1].status == status {
		return
	}

	ts.ds = append(ts.ds, statusWithTime[S]{
		status: status,
		at:     ts.now(),
	})
}

// doStatistics attributes [tsB, tsE) to the status in effect at each instant; time before the
// first update belongs to the zero status.
func (ts *timeUsageImpl[S]) doStatistics(tsB, tsE time.Time, clearData bool) map[S]time.Duration {
	ts.Lock()
	defer ts.Unlock()

	ds := make(map[S]time.Duration)

	last := tsB
	lastIdx := 0

	var startStatus S

	for idx, f := range ts.ds {
		if f.at.Before(last) {
			startStatus = f.status
			lastIdx = idx

			continue
		}

		if !f.at.Before(tsE) {
			break
		}

		if d := f.at.Sub(last); d > 0 {
			ds[startStatus] += d
		}

		last = f.at
		startStatus = f.status
		lastIdx = idx
	}

	if d := tsE.Sub(last); d > 0 {
		ds[startStatus] += d
	}

	if clearData && len(ts.ds) > 0 {
		ts.ds = append([]statusWithTime[S](nil), ts.ds[lastIdx:]...)
	}

	return ds
}

func (ts *timeUsageImpl[S]) Statistics(tsB, tsE time.Time) map[S]time.Duration {
	return ts.doStatistics(tsB, tsE, false)
}

// StatisticsAndClean is Statistics that also drops every change superseded before tsE.
func (ts *timeUsageImpl[S]) StatisticsAndClean(tsB, tsE time.Time) map[S]time.Duration {
	return ts.doStatistics(tsB, tsE, true)
}

func (ts *timeUsageImpl[S]) GetStatusStatistics(tsB, tsE time.Time, statuses []S) []time.Duration {
	ds := ts.Statistics(tsB, tsE)

	vs := make([]time.Duration, len(statuses))
	for idx := 0; idx < len(statuses); idx++ {
		vs[idx] = ds[statuses[idx]]
	}

	return vs
}
