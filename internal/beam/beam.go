// Package beam implements statics for simply supported beams: a load
// model (point loads and uniformly distributed load segments), support
// reaction solving via static equilibrium, and internal shear/moment
// profiles computed with the method of sections.
//
// Sign convention: loads are positive downward (kN), positions are
// measured in meters from the left support.
package beam

// DefaultSamples is the number of stations a profile is evaluated at
// when the caller does not ask for a specific resolution.
const DefaultSamples = 500

// PointLoad is a concentrated load applied at a single position.
type PointLoad struct {
	Magnitude float64 // P, kN, positive downward
	Position  float64 // x from the left support, m
}

// UDL is a uniformly distributed load over a segment of the span.
type UDL struct {
	Intensity float64 // w, kN/m
	Start     float64 // m
	End       float64 // m
}

// Resultant is the equivalent concentrated force of the segment.
func (u UDL) Resultant() float64 { return u.Intensity * (u.End - u.Start) }

// Centroid is the position the resultant acts at.
func (u UDL) Centroid() float64 { return (u.Start + u.End) / 2 }

// Beam is a simply supported beam (pin at x=0, roller at x=L) with an
// accumulated load set. Loads are added incrementally before solving;
// solving never mutates the beam.
type Beam struct {
	Length float64 // span L, m

	points []PointLoad
	udls   []UDL
}

// New creates a beam of the given span. A non-positive span is refused
// here so reaction solving can never divide by zero.
func New(length float64) (*Beam, error) {
	if length <= 0 {
		return nil, GeometryError{Field: "length", Value: length, Reason: "span must be positive"}
	}
	return &Beam{Length: length}, nil
}

// AddPointLoad appends a concentrated load. The position must lie on
// the span, supports included.
func (b *Beam) AddPointLoad(magnitude, position float64) error {
	if position < 0 || position > b.Length {
		return GeometryError{Field: "position", Value: position, Reason: "load must lie on the span"}
	}
	b.points = append(b.points, PointLoad{Magnitude: magnitude, Position: position})
	return nil
}

// AddUDL appends a distributed load segment. Zero-length segments and
// zero intensity are accepted and contribute nothing.
func (b *Beam) AddUDL(intensity, start, end float64) error {
	switch {
	case start < 0:
		return GeometryError{Field: "start", Value: start, Reason: "segment starts before the left support"}
	case end > b.Length:
		return GeometryError{Field: "end", Value: end, Reason: "segment ends past the right support"}
	case start > end:
		return GeometryError{Field: "start", Value: start, Reason: "segment start is past its end"}
	}
	b.udls = append(b.udls, UDL{Intensity: intensity, Start: start, End: end})
	return nil
}

// PointLoads returns the accumulated concentrated loads.
func (b *Beam) PointLoads() []PointLoad { return b.points }

// UDLs returns the accumulated distributed load segments.
func (b *Beam) UDLs() []UDL { return b.udls }

// TotalLoad is the sum of all load magnitudes, UDL resultants included.
func (b *Beam) TotalLoad() float64 {
	total := 0.0
	for _, p := range b.points {
		total += p.Magnitude
	}
	for _, u := range b.udls {
		total += u.Resultant()
	}
	return total
}
