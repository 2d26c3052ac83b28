// nolint
package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolylineEmptyPoints(t *testing.T) {
	p, err := NewPolyline(nil)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrEmptyPoints)

	_, err = NewPolyline([]Point{})
	assert.ErrorIs(t, err, ErrEmptyPoints)
}

func TestPolylineSinglePoint(t *testing.T) {
	p, err := NewPolyline([]Point{{0, 42}})
	assert.Nil(t, err)

	for _, at := range []float64{-10, 0, 10} {
		v, err := p.TemperatureAt(at)
		assert.Nil(t, err)
		assert.EqualValues(t, 42, v)
	}
}

func TestPolylineInterpolation(t *testing.T) {
	p, err := NewPolyline([]Point{{0, 20}, {10, 100}, {20, 50}})
	assert.Nil(t, err)

	cases := map[float64]float64{
		-5: 20,
		0:  20,
		5:  60,
		10: 100,
		15: 75,
		20: 50,
		25: 50,
	}

	for at, want := range cases {
		v, err := p.TemperatureAt(at)
		assert.Nil(t, err)
		assert.EqualValues(t, want, v, "at %v", at)
	}
}

func TestPolylineUnorderedInput(t *testing.T) {
	input := []Point{{20, 50}, {0, 20}, {10, 100}}

	p, err := NewPolyline(input)
	assert.Nil(t, err)
	assert.Equal(t, []Point{{0, 20}, {10, 100}, {20, 50}}, p.Points())
	assert.Equal(t, []Point{{20, 50}, {0, 20}, {10, 100}}, input)

	v, err := p.TemperatureAt(5)
	assert.Nil(t, err)
	assert.EqualValues(t, 60, v)

	first, ok := p.First()
	assert.True(t, ok)
	assert.EqualValues(t, Point{0, 20}, first)

	last, ok := p.Last()
	assert.True(t, ok)
	assert.EqualValues(t, Point{20, 50}, last)
}

func TestPolylineDuplicateTime(t *testing.T) {
	_, err := NewPolyline([]Point{{0, 1}, {0, 2}})
	assert.ErrorIs(t, err, ErrDuplicateTime)

	_, err = NewPolyline([]Point{{1, 5}, {1, 9}})
	assert.ErrorIs(t, err, ErrDuplicateTime)

	_, err = NewPolyline([]Point{{1, 9}, {1, 5}})
	assert.ErrorIs(t, err, ErrDuplicateTime)

	_, err = NewPolyline([]Point{{3, 1}, {1, 9}, {2, 0}, {1, 5}})
	assert.ErrorIs(t, err, ErrDuplicateTime)
}

func TestPolylineInvalidValue(t *testing.T) {
	bad := [][]Point{
		{{0, math.NaN()}},
		{{0, 1}, {math.NaN(), 2}},
		{{0, 1}, {math.Inf(1), 2}},
		{{math.Inf(-1), 1}},
		{{0, math.Inf(-1)}},
	}

	for _, points := range bad {
		_, err := NewPolyline(points)
		assert.ErrorIs(t, err, ErrInvalidValue)
	}

	// invalid values are reported before duplicates
	_, err := NewPolyline([]Point{{1, 1}, {1, math.NaN()}})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestPolylineInvalidTime(t *testing.T) {
	p, err := NewPolyline([]Point{{0, 1}, {1, 2}})
	assert.Nil(t, err)

	for _, at := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = p.TemperatureAt(at)
		assert.ErrorIs(t, err, ErrInvalidValue)
	}

	// a failed lookup leaves the curve usable
	v, err := p.TemperatureAt(0.5)
	assert.Nil(t, err)
	assert.EqualValues(t, 1.5, v)
}

func TestPolylinePointsIsCopy(t *testing.T) {
	p, err := NewPolyline([]Point{{0, 1}, {1, 2}})
	assert.Nil(t, err)

	points := p.Points()
	points[0].Temperature = 100

	v, err := p.TemperatureAt(0)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, v)
}

func TestPolylineNilIsEmptyCurve(t *testing.T) {
	var p *Polyline

	v, err := p.TemperatureAt(42)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, v)

	_, err = p.TemperatureAt(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidValue)

	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Points())

	_, ok := p.First()
	assert.False(t, ok)

	_, ok = p.Last()
	assert.False(t, ok)
}
