package curve

// Polyline is a heap-backed curve for profiles loaded at run time. A nil *Polyline behaves as a
// curve without points.
type Polyline struct {
	points []Point
}

// NewPolyline validates points and returns a curve holding a sorted private copy of them.
func NewPolyline(points []Point) (*Polyline, error) {
	dst := make([]Point, len(points))

	n, err := build(dst, points)
	if err != nil {
		return nil, err
	}

	return &Polyline{
		points: dst[:n],
	}, nil
}

func (p *Polyline) seq() pointSlice {
	if p == nil {
		return nil
	}

	return p.points
}

func (p *Polyline) TemperatureAt(time float64) (float64, error) {
	return temperatureAt(p.seq(), time)
}

func (p *Polyline) Len() int {
	return len(p.seq())
}

func (p *Polyline) Points() []Point {
	points := p.seq()
	if len(points) == 0 {
		return nil
	}

	return append([]Point(nil), points...)
}

func (p *Polyline) First() (Point, bool) {
	points := p.seq()
	if len(points) == 0 {
		return Point{}, false
	}

	return points[0], true
}

func (p *Polyline) Last() (Point, bool) {
	points := p.seq()
	if len(points) == 0 {
		return Point{}, false
	}

	return points[len(points)-1], true
}
