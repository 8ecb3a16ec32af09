package beam

// Reactions are the support forces of a simply supported beam,
// positive upward.
type Reactions struct {
	Ra float64 // left support, kN
	Rb float64 // right support, kN
}

// Reactions solves both support forces from static equilibrium.
// Moments are taken about the left support: each point load contributes
// P*x, each UDL contributes its resultant acting at the segment
// centroid. Ra then follows from vertical equilibrium, so Ra+Rb equals
// the total load to within floating-point rounding.
func (b *Beam) Reactions() (Reactions, error) {
	if b.Length <= 0 {
		return Reactions{}, GeometryError{Field: "length", Value: b.Length, Reason: "span must be positive"}
	}

	momentA := 0.0
	for _, p := range b.points {
		momentA += p.Magnitude * p.Position
	}
	for _, u := range b.udls {
		momentA += u.Resultant() * u.Centroid()
	}

	rb := momentA / b.Length
	ra := b.TotalLoad() - rb
	return Reactions{Ra: ra, Rb: rb}, nil
}
