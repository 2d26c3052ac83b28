package curve

type Kind int

const (
	KindNone Kind = iota
	KindDynamic
	KindFixed
)

func (k Kind) String() string {
	switch k {
	case KindDynamic:
		return "dynamic"
	case KindFixed:
		return "fixed"
	default:
		return "none"
	}
}

// Profile holds exactly one of the curve variants. The zero Profile is a curve without points.
type Profile struct {
	kind    Kind
	dynamic *Polyline
	fixed   FixedPolyline
}

func DynamicProfile(p *Polyline) Profile {
	if p == nil {
		return Profile{}
	}

	return Profile{
		kind:    KindDynamic,
		dynamic: p,
	}
}

func FixedProfile(f FixedPolyline) Profile {
	return Profile{
		kind:  KindFixed,
		fixed: f,
	}
}

func NewDynamicProfile(points []Point) (Profile, error) {
	p, err := NewPolyline(points)
	if err != nil {
		return Profile{}, err
	}

	return DynamicProfile(p), nil
}

func NewFixedProfile(points ...Point) (Profile, error) {
	f, err := NewFixedPolyline(points...)
	if err != nil {
		return Profile{}, err
	}

	return FixedProfile(f), nil
}

func MustFixedProfile(points ...Point) Profile {
	return FixedProfile(MustFixedPolyline(points...))
}

func (p *Profile) Kind() Kind {
	return p.kind
}

func (p *Profile) TemperatureAt(time float64) (float64, error) {
	switch p.kind {
	case KindDynamic:
		return p.dynamic.TemperatureAt(time)
	case KindFixed:
		return p.fixed.TemperatureAt(time)
	default:
		return temperatureAt(pointSlice(nil), time)
	}
}

func (p *Profile) Len() int {
	switch p.kind {
	case KindDynamic:
		return p.dynamic.Len()
	case KindFixed:
		return p.fixed.Len()
	default:
		return 0
	}
}

func (p *Profile) Points() []Point {
	switch p.kind {
	case KindDynamic:
		return p.dynamic.Points()
	case KindFixed:
		return p.fixed.Points()
	default:
		return nil
	}
}
