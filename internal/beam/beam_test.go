package beam

import (
	"math"
	"testing"
)

func mustBeam(t *testing.T, length float64) *Beam {
	t.Helper()
	b, err := New(length)
	if err != nil {
		t.Fatalf("New(%v) failed: %v", length, err)
	}
	return b
}

func TestNew_InvalidSpan(t *testing.T) {
	for _, length := range []float64{0, -1, -0.001} {
		if _, err := New(length); err == nil {
			t.Errorf("New(%v) succeeded, want geometry error", length)
		}
	}
}

func TestReactions_ZeroSpanLiteral(t *testing.T) {
	// A zero-value Beam bypasses New; the solver must still refuse it
	// instead of dividing by zero.
	var b Beam
	if _, err := b.Reactions(); err == nil {
		t.Error("Reactions() on zero-span beam succeeded, want geometry error")
	}
}

func TestAddPointLoad_OffSpan(t *testing.T) {
	b := mustBeam(t, 10)
	for _, x := range []float64{-0.1, 10.1, 100} {
		if err := b.AddPointLoad(50, x); err == nil {
			t.Errorf("AddPointLoad at x=%v succeeded, want geometry error", x)
		}
	}
	if err := b.AddPointLoad(50, 0); err != nil {
		t.Errorf("AddPointLoad at left support failed: %v", err)
	}
	if err := b.AddPointLoad(50, 10); err != nil {
		t.Errorf("AddPointLoad at right support failed: %v", err)
	}
}

func TestAddUDL_InvalidSegment(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
	}{
		{"start negative", -1, 5},
		{"end past span", 2, 11},
		{"start past end", 6, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBeam(t, 10)
			if err := b.AddUDL(10, tt.start, tt.end); err == nil {
				t.Errorf("AddUDL(%v, %v) succeeded, want geometry error", tt.start, tt.end)
			}
		})
	}
}

func TestReactions_SinglePointLoad(t *testing.T) {
	b := mustBeam(t, 10)
	if err := b.AddPointLoad(100, 5); err != nil {
		t.Fatal(err)
	}

	r, err := b.Reactions()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Ra-50) > 1e-12 || math.Abs(r.Rb-50) > 1e-12 {
		t.Errorf("reactions = (%v, %v), want (50, 50)", r.Ra, r.Rb)
	}
}

func TestReactions_FullSpanUDL(t *testing.T) {
	b := mustBeam(t, 10)
	if err := b.AddUDL(10, 0, 10); err != nil {
		t.Fatal(err)
	}

	r, err := b.Reactions()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Ra-50) > 1e-12 || math.Abs(r.Rb-50) > 1e-12 {
		t.Errorf("reactions = (%v, %v), want (50, 50)", r.Ra, r.Rb)
	}
}

// momentAbout sums moments of reactions and loads about an arbitrary
// pivot, reactions up and loads down. Statics requires zero.
func momentAbout(b *Beam, r Reactions, pivot float64) float64 {
	sum := r.Ra*(0-pivot) + r.Rb*(b.Length-pivot)
	for _, p := range b.PointLoads() {
		sum -= p.Magnitude * (p.Position - pivot)
	}
	for _, u := range b.UDLs() {
		sum -= u.Resultant() * (u.Centroid() - pivot)
	}
	return sum
}

func TestReactions_EquilibriumProperties(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		points []PointLoad
		udls   []UDL
	}{
		{"single point", 10, []PointLoad{{100, 5}}, nil},
		{"off-center point", 12, []PointLoad{{80, 3}}, nil},
		{"two points", 15, []PointLoad{{60, 4}, {40, 11}}, nil},
		{"full udl", 10, nil, []UDL{{10, 0, 10}}},
		{"partial udl", 8, nil, []UDL{{25, 2, 5}}},
		{"mixed", 20, []PointLoad{{120, 7}}, []UDL{{15, 10, 18}}},
		{"upward load", 10, []PointLoad{{-50, 4}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBeam(t, tt.length)
			for _, p := range tt.points {
				if err := b.AddPointLoad(p.Magnitude, p.Position); err != nil {
					t.Fatal(err)
				}
			}
			for _, u := range tt.udls {
				if err := b.AddUDL(u.Intensity, u.Start, u.End); err != nil {
					t.Fatal(err)
				}
			}

			r, err := b.Reactions()
			if err != nil {
				t.Fatal(err)
			}

			total := b.TotalLoad()
			if diff := math.Abs(r.Ra + r.Rb - total); diff > 1e-9*math.Max(1, math.Abs(total)) {
				t.Errorf("Ra+Rb = %v, want total load %v", r.Ra+r.Rb, total)
			}

			for _, pivot := range []float64{0, tt.length / 3, tt.length, -2.5} {
				if m := momentAbout(b, r, pivot); math.Abs(m) > 1e-9 {
					t.Errorf("moment about %v = %v, want 0", pivot, m)
				}
			}
		})
	}
}

func TestProfile_SinglePointLoadExample(t *testing.T) {
	b := mustBeam(t, 10)
	if err := b.AddPointLoad(100, 5); err != nil {
		t.Fatal(err)
	}

	// 501 stations put one exactly at midspan.
	res, err := b.Solve(501)
	if err != nil {
		t.Fatal(err)
	}

	mid := res.Profile[250]
	if math.Abs(mid.X-5) > 1e-12 {
		t.Fatalf("station 250 at x=%v, want 5", mid.X)
	}
	// The cut exactly at the load carries the left-limit shear.
	if math.Abs(mid.V-50) > 1e-9 {
		t.Errorf("V(5) = %v, want left-limit 50", mid.V)
	}
	if math.Abs(mid.M-250) > 1e-9 {
		t.Errorf("M(5) = %v, want 250", mid.M)
	}

	right := res.Profile[251]
	if math.Abs(right.V-(-50)) > 1e-9 {
		t.Errorf("V just right of load = %v, want -50", right.V)
	}

	maxM := 0.0
	for _, s := range res.Profile {
		if s.M > maxM {
			maxM = s.M
		}
	}
	if math.Abs(maxM-250) > 1e-9 {
		t.Errorf("max moment = %v, want 250", maxM)
	}
}

func TestProfile_ShearJumpAcrossPointLoad(t *testing.T) {
	b := mustBeam(t, 10)
	if err := b.AddPointLoad(100, 5); err != nil {
		t.Fatal(err)
	}

	// 500 stations straddle x=5 without landing on it.
	res, err := b.Solve(DefaultSamples)
	if err != nil {
		t.Fatal(err)
	}

	var left, right Sample
	for i := 1; i < len(res.Profile); i++ {
		if res.Profile[i].X > 5 {
			left, right = res.Profile[i-1], res.Profile[i]
			break
		}
	}
	if left.X >= 5 || right.X <= 5 {
		t.Fatalf("straddle samples at %v and %v do not bracket the load", left.X, right.X)
	}
	if jump := left.V - right.V; math.Abs(jump-100) > 1e-9 {
		t.Errorf("shear jump = %v, want 100", jump)
	}
}

func TestProfile_UDLMidspanMoment(t *testing.T) {
	b := mustBeam(t, 10)
	if err := b.AddUDL(10, 0, 10); err != nil {
		t.Fatal(err)
	}

	res, err := b.Solve(501)
	if err != nil {
		t.Fatal(err)
	}

	// M(5) = 50*5 - 10*5*2.5 = 125.
	mid := res.Profile[250]
	if math.Abs(mid.M-125) > 1e-9 {
		t.Errorf("M(5) = %v, want 125", mid.M)
	}
	if math.Abs(mid.V) > 1e-9 {
		t.Errorf("V(5) = %v, want 0", mid.V)
	}
}

func TestProfile_UDLShape(t *testing.T) {
	const w = 10.0
	b := mustBeam(t, 10)
	if err := b.AddUDL(w, 2, 8); err != nil {
		t.Fatal(err)
	}

	r, err := b.Reactions()
	if err != nil {
		t.Fatal(err)
	}
	prof, err := b.Profile(r, 1001)
	if err != nil {
		t.Fatal(err)
	}
	step := prof[1].X - prof[0].X

	slope := func(i int) float64 { return (prof[i+1].V - prof[i].V) / step }
	curvature := func(i int) float64 { return prof[i+1].M - 2*prof[i].M + prof[i-1].M }

	for i := 1; i < len(prof)-1; i++ {
		x := prof[i].X
		switch {
		case x > 2+step && x < 8-step:
			// Inside the segment shear falls linearly at -w and the
			// moment curve is concave.
			if s := slope(i); math.Abs(s-(-w)) > 1e-6 {
				t.Fatalf("shear slope at x=%.3f = %v, want %v", x, s, -w)
			}
			if c := curvature(i); math.Abs(c-(-w*step*step)) > 1e-9 {
				t.Fatalf("moment curvature at x=%.3f = %v, want %v", x, c, -w*step*step)
			}
		case x < 2-step || x > 8+step:
			// Outside it shear is constant and moment is linear.
			if s := slope(i); math.Abs(s) > 1e-9 {
				t.Fatalf("shear slope at x=%.3f = %v, want 0", x, s)
			}
			if c := curvature(i); math.Abs(c) > 1e-9 {
				t.Fatalf("moment curvature at x=%.3f = %v, want 0", x, c)
			}
		}
	}
}

func TestProfile_DegenerateUDL(t *testing.T) {
	tests := []struct {
		name       string
		w          float64
		start, end float64
	}{
		{"zero intensity", 0, 2, 8},
		{"zero length", 15, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := mustBeam(t, 10)
			if err := ref.AddPointLoad(100, 5); err != nil {
				t.Fatal(err)
			}
			refRes, err := ref.Solve(DefaultSamples)
			if err != nil {
				t.Fatal(err)
			}

			b := mustBeam(t, 10)
			if err := b.AddPointLoad(100, 5); err != nil {
				t.Fatal(err)
			}
			if err := b.AddUDL(tt.w, tt.start, tt.end); err != nil {
				t.Fatal(err)
			}
			res, err := b.Solve(DefaultSamples)
			if err != nil {
				t.Fatal(err)
			}

			for i, s := range res.Profile {
				if math.IsNaN(s.V) || math.IsNaN(s.M) {
					t.Fatalf("NaN at station %d", i)
				}
				want := refRes.Profile[i]
				if math.Abs(s.V-want.V) > 1e-12 || math.Abs(s.M-want.M) > 1e-12 {
					t.Fatalf("station %d = %+v, want %+v", i, s, want)
				}
			}
		})
	}
}

func TestProfile_Stations(t *testing.T) {
	b := mustBeam(t, 7)
	r, err := b.Reactions()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b.Profile(r, 1); err == nil {
		t.Error("Profile with 1 sample succeeded, want error")
	}

	prof, err := b.Profile(r, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(prof) != 50 {
		t.Fatalf("len(profile) = %d, want 50", len(prof))
	}
	if prof[0].X != 0 {
		t.Errorf("first station at %v, want 0", prof[0].X)
	}
	if prof[len(prof)-1].X != 7 {
		t.Errorf("last station at %v, want 7", prof[len(prof)-1].X)
	}
	for i := 1; i < len(prof); i++ {
		if prof[i].X <= prof[i-1].X {
			t.Fatalf("stations not ascending at %d: %v then %v", i, prof[i-1].X, prof[i].X)
		}
	}
}

func TestProfile_ColumnAccessors(t *testing.T) {
	prof := Profile{{0, 1, 2}, {1, 3, 4}, {2, 5, 6}}

	xs, vs, ms := prof.Positions(), prof.Shears(), prof.Moments()
	if len(xs) != 3 || xs[2] != 2 {
		t.Errorf("Positions() = %v", xs)
	}
	if len(vs) != 3 || vs[1] != 3 {
		t.Errorf("Shears() = %v", vs)
	}
	if len(ms) != 3 || ms[0] != 2 {
		t.Errorf("Moments() = %v", ms)
	}
}
