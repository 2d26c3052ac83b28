package curve

import (
	"cmp"
	"math"
	"slices"
)

// timeEpsilon is the float64 machine epsilon; closer times count as duplicates.
const timeEpsilon = 0x1p-52

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// build validates src and writes it into dst sorted by time. src is never modified.
func build(dst, src []Point) (n int, err error) {
	if len(src) == 0 {
		err = ErrEmptyPoints

		return
	}

	for _, p := range src {
		if !isFinite(p.Time) || !isFinite(p.Temperature) {
			err = ErrInvalidValue

			return
		}
	}

	if len(src) > len(dst) {
		err = ErrTooManyPoints

		return
	}

	n = copy(dst, src)
	points := dst[:n]

	slices.SortFunc(points, func(a, b Point) int {
		return cmp.Compare(a.Time, b.Time)
	})

	for idx := 1; idx < n; idx++ {
		if math.Abs(points[idx].Time-points[idx-1].Time) < timeEpsilon {
			n = 0
			err = ErrDuplicateTime

			return
		}
	}

	return
}

// temperatureAt is the one lookup every curve variant delegates to.
func temperatureAt[S sequence](s S, time float64) (float64, error) {
	if !isFinite(time) {
		return 0, ErrInvalidValue
	}

	n := s.Len()
	if n == 0 {
		return 0, nil
	}

	first := s.At(0)
	if time <= first.Time {
		return first.Temperature, nil
	}

	last := s.At(n - 1)
	if time >= last.Time {
		return last.Temperature, nil
	}

	lo, hi := 0, n

	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.At(mid).Time < time {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	upper := s.At(lo)
	if upper.Time == time {
		return upper.Temperature, nil
	}

	lower := s.At(lo - 1)

	return lower.Temperature + (time-lower.Time)/(upper.Time-lower.Time)*(upper.Temperature-lower.Temperature), nil
}
