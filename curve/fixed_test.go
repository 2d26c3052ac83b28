// nolint
package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var bakedPolyline = MustFixedPolyline(Point{0, 10}, Point{5, 20}, Point{10, 30})

func TestFixedPolylineLookup(t *testing.T) {
	cases := map[float64]float64{
		-1:  10,
		0:   10,
		2.5: 15,
		5:   20,
		7.5: 25,
		10:  30,
		15:  30,
	}

	for at, want := range cases {
		v, err := bakedPolyline.TemperatureAt(at)
		assert.Nil(t, err)
		assert.EqualValues(t, want, v, "at %v", at)
	}

	assert.EqualValues(t, 3, bakedPolyline.Len())
}

func TestFixedPolylineErrors(t *testing.T) {
	_, err := NewFixedPolyline()
	assert.ErrorIs(t, err, ErrEmptyPoints)

	_, err = NewFixedPolyline(Point{0, math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewFixedPolyline(Point{1, 9}, Point{1, 5})
	assert.ErrorIs(t, err, ErrDuplicateTime)

	points := make([]Point, FixedCapacity+1)
	for idx := range points {
		points[idx] = Point{float64(idx), 1}
	}

	_, err = NewFixedPolyline(points...)
	assert.ErrorIs(t, err, ErrTooManyPoints)

	f, err := NewFixedPolyline(points[:FixedCapacity]...)
	assert.Nil(t, err)
	assert.EqualValues(t, FixedCapacity, f.Len())
}

func TestFixedPolylineSortsInput(t *testing.T) {
	f, err := NewFixedPolyline(Point{10, 30}, Point{0, 10}, Point{5, 20})
	assert.Nil(t, err)
	assert.Equal(t, bakedPolyline.Points(), f.Points())
}

func TestMustFixedPolylinePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustFixedPolyline(Point{0, math.NaN()}, Point{1, 2})
	})

	assert.Panics(t, func() {
		MustFixedPolyline(Point{0, 1}, Point{0, 2})
	})

	assert.Panics(t, func() {
		MustFixedPolyline()
	})

	assert.NotPanics(t, func() {
		MustFixedPolyline(Point{0, 1})
	})
}

func TestFixedPolylineZeroValue(t *testing.T) {
	var f FixedPolyline

	v, err := f.TemperatureAt(12)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, v)

	_, err = f.TemperatureAt(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, ok := f.First()
	assert.False(t, ok)
}

func TestFixedPolylineNoAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = bakedPolyline.TemperatureAt(7.5)
	})
	assert.EqualValues(t, 0, allocs)
}
