package beam

import (
	"fmt"
	"math"
)

// Sample is the internal state at one station along the span.
type Sample struct {
	X float64 // m
	V float64 // shear, kN
	M float64 // bending moment, kN*m
}

// Profile is an internal-force diagram sampled at ascending stations.
// It is produced fresh on every solve and never mutated afterwards.
type Profile []Sample

// Result bundles the reactions with the profile they produced.
type Result struct {
	Reactions Reactions
	Profile   Profile
}

// Profile evaluates shear and moment at n equally spaced stations from
// 0 to L inclusive, cutting the beam at each station and summing the
// left-side forces.
//
// Loads exactly at the cut are not subtracted: the station at a point
// load's position carries the left-limit value, and the jump shows up
// at the next station. Same convention for a UDL's start.
func (b *Beam) Profile(r Reactions, n int) (Profile, error) {
	if n < 2 {
		return nil, fmt.Errorf("profile needs at least 2 samples, got %d", n)
	}

	step := b.Length / float64(n-1)
	prof := make(Profile, 0, n)

	for i := 0; i < n; i++ {
		x := float64(i) * step
		if i == n-1 {
			x = b.Length
		}

		v := r.Ra
		m := r.Ra * x

		for _, p := range b.points {
			if x > p.Position {
				v -= p.Magnitude
				m -= p.Magnitude * (x - p.Position)
			}
		}

		for _, u := range b.udls {
			if x <= u.Start {
				continue
			}
			covered := math.Min(x, u.End) - u.Start
			if covered <= 0 {
				continue
			}
			force := u.Intensity * covered
			arm := x - (u.Start + covered/2)
			v -= force
			m -= force * arm
		}

		prof = append(prof, Sample{X: x, V: v, M: m})
	}

	return prof, nil
}

// Solve computes reactions and the n-station profile in one call.
func (b *Beam) Solve(n int) (*Result, error) {
	r, err := b.Reactions()
	if err != nil {
		return nil, err
	}
	prof, err := b.Profile(r, n)
	if err != nil {
		return nil, err
	}
	return &Result{Reactions: r, Profile: prof}, nil
}

// Positions extracts the station coordinates, in order.
func (p Profile) Positions() []float64 {
	xs := make([]float64, len(p))
	for i, s := range p {
		xs[i] = s.X
	}
	return xs
}

// Shears extracts the shear ordinates, in station order.
func (p Profile) Shears() []float64 {
	vs := make([]float64, len(p))
	for i, s := range p {
		vs[i] = s.V
	}
	return vs
}

// Moments extracts the moment ordinates, in station order.
func (p Profile) Moments() []float64 {
	ms := make([]float64, len(p))
	for i, s := range p {
		ms[i] = s.M
	}
	return ms
}
