package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/beamlab/internal/beam"
)

func midspanProfile(t *testing.T) beam.Profile {
	t.Helper()
	b, err := beam.New(10)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddPointLoad(100, 5); err != nil {
		t.Fatal(err)
	}
	res, err := b.Solve(501)
	if err != nil {
		t.Fatal(err)
	}
	return res.Profile
}

func TestMaxShear(t *testing.T) {
	m := NewMaxShear()
	for _, s := range midspanProfile(t) {
		m.Observe(s)
	}
	if got := m.Value(); math.Abs(got-50) > 1e-9 {
		t.Errorf("max shear = %v, want 50", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestMaxShear_TracksNegative(t *testing.T) {
	m := NewMaxShear()
	m.Observe(beam.Sample{X: 0, V: 20, M: 0})
	m.Observe(beam.Sample{X: 1, V: -80, M: 0})
	if got := m.Value(); got != 80 {
		t.Errorf("max shear = %v, want 80", got)
	}
}

func TestMaxMoment(t *testing.T) {
	m := NewMaxMoment()
	for _, s := range midspanProfile(t) {
		m.Observe(s)
	}
	if got := m.Value(); math.Abs(got-250) > 1e-9 {
		t.Errorf("max moment = %v, want 250", got)
	}
	if at := m.At(); math.Abs(at-5) > 1e-9 {
		t.Errorf("max moment at x=%v, want 5", at)
	}

	m.Reset()
	if m.Value() != 0 || m.At() != 0 {
		t.Error("expected zeros after reset")
	}
}

func TestMaxMoment_AllNegative(t *testing.T) {
	// An uplift load makes every moment negative; the signed maximum is
	// the least negative value, not zero.
	m := NewMaxMoment()
	m.Observe(beam.Sample{X: 0, V: 0, M: -10})
	m.Observe(beam.Sample{X: 1, V: 0, M: -4})
	m.Observe(beam.Sample{X: 2, V: 0, M: -7})
	if got := m.Value(); got != -4 {
		t.Errorf("max moment = %v, want -4", got)
	}
	if at := m.At(); at != 1 {
		t.Errorf("max moment at x=%v, want 1", at)
	}
}

func TestShearZeroCrossings(t *testing.T) {
	m := NewShearZeroCrossings()
	for _, s := range midspanProfile(t) {
		m.Observe(s)
	}
	if got := m.Value(); got != 1 {
		t.Errorf("crossings = %v, want 1", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestShearZeroCrossings_ThroughZeroSample(t *testing.T) {
	m := NewShearZeroCrossings()
	for _, v := range []float64{50, 0, -50, -50, 30} {
		m.Observe(beam.Sample{V: v})
	}
	if got := m.Value(); got != 2 {
		t.Errorf("crossings = %v, want 2", got)
	}
}

func TestCollect(t *testing.T) {
	vals := Collect(midspanProfile(t), NewMaxShear(), NewMaxMoment(), NewShearZeroCrossings())

	if math.Abs(vals["max_shear"]-50) > 1e-9 {
		t.Errorf("max_shear = %v, want 50", vals["max_shear"])
	}
	if math.Abs(vals["max_moment"]-250) > 1e-9 {
		t.Errorf("max_moment = %v, want 250", vals["max_moment"])
	}
	if vals["shear_zero_crossings"] != 1 {
		t.Errorf("shear_zero_crossings = %v, want 1", vals["shear_zero_crossings"])
	}
}
