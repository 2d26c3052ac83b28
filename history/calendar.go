package history

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/jinzhu/now"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
)

const dayLayout = "2006-01-02"

type Period int

const (
	PeriodDay Period = iota
	PeriodWeek
	PeriodMonth
	PeriodQuarter
	PeriodYear
)

// Aggregator folds one record into a day total and merges day totals into longer periods.
type Aggregator[TotalT, T any] interface {
	Combine(total TotalT, d T) TotalT
	Merge(a, b TotalT) TotalT
}

type daysD[K ~string, TotalT any] map[K]map[string]TotalT

// Calendar keeps one total per key per calendar day and rolls days up on query. Weeks start on Monday.
type Calendar[K ~string, TotalT, T any, A Aggregator[TotalT, T]] struct {
	logger l.Wrapper
	loc    *time.Location
	agg    A
	d      *mwf.MemWithFile[daysD[K, TotalT], mwf.Serial, mwf.Lock]
}

func NewCalendar[K ~string, TotalT, T any, A Aggregator[TotalT, T]](loc *time.Location, root, fileName string,
	storage stg.FileStorage, logger l.Wrapper) *Calendar[K, TotalT, T, A] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if loc == nil {
		loc = time.Local
	}

	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &Calendar[K, TotalT, T, A]{
		logger: logger.WithFields(l.StringField(l.ClsKey, "calendar")),
		loc:    loc,
		d: mwf.NewMemWithFile[daysD[K, TotalT], mwf.Serial, mwf.Lock](make(daysD[K, TotalT]),
			&mwf.JSONSerial{}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

func (c *Calendar[K, TotalT, T, A]) Record(key K, at time.Time, d T) error {
	day := at.In(c.loc).Format(dayLayout)

	err := c.d.Change(func(oldD daysD[K, TotalT]) (daysD[K, TotalT], error) {
		if oldD == nil {
			oldD = make(daysD[K, TotalT])
		}

		if oldD[key] == nil {
			oldD[key] = make(map[string]TotalT)
		}

		oldD[key][day] = c.agg.Combine(oldD[key][day], d)

		return oldD, nil
	})
	if err != nil {
		c.logger.WithFields(l.ErrorField(err), l.StringField("day", day)).Error("record failed")
	}

	return err
}

func (c *Calendar[K, TotalT, T, A]) bounds(period Period, at time.Time) (begin, end time.Time) {
	n := (&now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: c.loc,
	}).With(at.In(c.loc))

	switch period {
	case PeriodWeek:
		return n.BeginningOfWeek(), n.EndOfWeek()
	case PeriodMonth:
		return n.BeginningOfMonth(), n.EndOfMonth()
	case PeriodQuarter:
		return n.BeginningOfQuarter(), n.EndOfQuarter()
	case PeriodYear:
		return n.BeginningOfYear(), n.EndOfYear()
	default:
		return n.BeginningOfDay(), n.EndOfDay()
	}
}

// Total merges the day totals of key inside the period containing at.
func (c *Calendar[K, TotalT, T, A]) Total(key K, period Period, at time.Time) (total TotalT, exists bool) {
	begin, end := c.bounds(period, at)

	c.d.Read(func(d daysD[K, TotalT]) {
		for day, dayTotal := range d[key] {
			ts, err := time.ParseInLocation(dayLayout, day, c.loc)
			if err != nil {
				continue
			}

			if ts.Before(begin) || ts.After(end) {
				continue
			}

			total = c.agg.Merge(total, dayTotal)
			exists = true
		}
	})

	return
}

// Export returns a copy of the day totals of key, keyed by YYYY-MM-DD.
func (c *Calendar[K, TotalT, T, A]) Export(key K) (days map[string]TotalT, err error) {
	c.d.Read(func(d daysD[K, TotalT]) {
		m, ok := d[key]
		if !ok {
			err = commerr.ErrNotFound

			return
		}

		days = make(map[string]TotalT, len(m))
		for day, total := range m {
			days[day] = total
		}
	})

	return
}
