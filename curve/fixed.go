package curve

import "fmt"

// FixedCapacity is the most points a FixedPolyline can hold.
const FixedCapacity = 32

// FixedPolyline is an allocation-free curve for profiles known at build or init time.
// The zero value has no points and reports 0 for every finite time.
type FixedPolyline struct {
	points [FixedCapacity]Point
	n      int
}

func NewFixedPolyline(points ...Point) (FixedPolyline, error) {
	var f FixedPolyline

	n, err := build(f.points[:], points)
	if err != nil {
		return FixedPolyline{}, err
	}

	f.n = n

	return f, nil
}

// MustFixedPolyline is NewFixedPolyline for package-level profiles: an invalid profile panics during
// initialization instead of reaching a control loop.
func MustFixedPolyline(points ...Point) FixedPolyline {
	f, err := NewFixedPolyline(points...)
	if err != nil {
		panic(fmt.Sprintf("curve: invalid fixed polyline: %v", err))
	}

	return f
}

func (f *FixedPolyline) TemperatureAt(time float64) (float64, error) {
	return temperatureAt(f, time)
}

func (f *FixedPolyline) Len() int {
	return f.n
}

func (f *FixedPolyline) At(idx int) Point {
	return f.points[:f.n][idx]
}

func (f *FixedPolyline) Points() []Point {
	return append([]Point(nil), f.points[:f.n]...)
}

func (f *FixedPolyline) First() (Point, bool) {
	if f.n == 0 {
		return Point{}, false
	}

	return f.points[0], true
}

func (f *FixedPolyline) Last() (Point, bool) {
	if f.n == 0 {
		return Point{}, false
	}

	return f.points[f.n-1], true
}
