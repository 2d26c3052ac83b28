package history

import (
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
)

// RunRecord summarizes one finished run of a profile.
type RunRecord struct {
	Faults   int
	Tracking time.Duration
	Fallback time.Duration
}

type RunTotals struct {
	Runs     int           `json:"runs,omitempty"`
	Faults   int           `json:"faults,omitempty"`
	Tracking time.Duration `json:"tracking,omitempty"`
	Fallback time.Duration `json:"fallback,omitempty"`
}

type RunAggregator struct{}

func (RunAggregator) Combine(total RunTotals, d RunRecord) RunTotals {
	total.Runs++
	total.Faults += d.Faults
	total.Tracking += d.Tracking
	total.Fallback += d.Fallback

	return total
}

func (RunAggregator) Merge(a, b RunTotals) RunTotals {
	return RunTotals{
		Runs:     a.Runs + b.Runs,
		Faults:   a.Faults + b.Faults,
		Tracking: a.Tracking + b.Tracking,
		Fallback: a.Fallback + b.Fallback,
	}
}

// RunHistory aggregates finished runs per session name.
type RunHistory = Calendar[string, RunTotals, RunRecord, RunAggregator]

func NewRunHistory(loc *time.Location, root string, storage stg.FileStorage, logger l.Wrapper) *RunHistory {
	return NewCalendar[string, RunTotals, RunRecord, RunAggregator](loc, root, "run-history.json", storage, logger)
}
