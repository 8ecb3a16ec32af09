// Package metrics extracts summary quantities from internal-force
// profiles: peak shear, peak moment and its location, and shear sign
// changes (candidate maximum-moment stations).
package metrics

import (
	"math"

	"github.com/san-kum/beamlab/internal/beam"
)

type Metric interface {
	Name() string
	Observe(s beam.Sample)
	Value() float64
	Reset()
}

// Collect runs every metric over the profile in station order.
func Collect(p beam.Profile, ms ...Metric) map[string]float64 {
	for _, s := range p {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// MaxShear tracks the largest absolute shear seen.
type MaxShear struct {
	max float64
}

func NewMaxShear() *MaxShear { return &MaxShear{} }

func (m *MaxShear) Name() string { return "max_shear" }

func (m *MaxShear) Observe(s beam.Sample) {
	if v := math.Abs(s.V); v > m.max {
		m.max = v
	}
}

func (m *MaxShear) Value() float64 { return m.max }
func (m *MaxShear) Reset()         { m.max = 0 }

// MaxMoment tracks the largest signed moment and where it occurs.
type MaxMoment struct {
	max  float64
	at   float64
	seen bool
}

func NewMaxMoment() *MaxMoment { return &MaxMoment{} }

func (m *MaxMoment) Name() string { return "max_moment" }

func (m *MaxMoment) Observe(s beam.Sample) {
	if !m.seen || s.M > m.max {
		m.max = s.M
		m.at = s.X
		m.seen = true
	}
}

func (m *MaxMoment) Value() float64 {
	if !m.seen {
		return 0
	}
	return m.max
}

// At reports the station of the maximum observed so far.
func (m *MaxMoment) At() float64 { return m.at }

func (m *MaxMoment) Reset() {
	m.max = 0
	m.at = 0
	m.seen = false
}

// ShearZeroCrossings counts sign changes of the shear curve. Each
// crossing marks a local moment extremum.
type ShearZeroCrossings struct {
	prev  float64
	seen  bool
	count int
}

func NewShearZeroCrossings() *ShearZeroCrossings { return &ShearZeroCrossings{} }

func (m *ShearZeroCrossings) Name() string { return "shear_zero_crossings" }

func (m *ShearZeroCrossings) Observe(s beam.Sample) {
	if m.seen && ((m.prev > 0 && s.V < 0) || (m.prev < 0 && s.V > 0)) {
		m.count++
	}
	if s.V != 0 || !m.seen {
		m.prev = s.V
	}
	m.seen = true
}

func (m *ShearZeroCrossings) Value() float64 { return float64(m.count) }

func (m *ShearZeroCrossings) Reset() {
	m.prev = 0
	m.seen = false
	m.count = 0
}
