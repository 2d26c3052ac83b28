package curve

// Point is one (time, temperature) sample of a profile.
type Point struct {
	Time        float64 `yaml:"time" json:"time"`
	Temperature float64 `yaml:"temperature" json:"temperature"`
}

// Curve maps an elapsed time to the desired temperature.
type Curve interface {
	TemperatureAt(time float64) (float64, error)
}

// sequence is an ordered, indexable run of points sorted by time.
type sequence interface {
	Len() int
	At(idx int) Point
}

type pointSlice []Point

func (ps pointSlice) Len() int {
	return len(ps)
}

func (ps pointSlice) At(idx int) Point {
	return ps[idx]
}
