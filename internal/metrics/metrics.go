// Package metrics aggregates per-generation summaries into run statistics.
package metrics

import (
	"github.com/san-kum/lifelab/internal/life"
)

type Metric interface {
	Name() string
	Observe(s life.GenerationSummary)
	Value() float64
	Reset()
}

// MeanPopulation tracks the average live-cell count per generation.
type MeanPopulation struct {
	samples int
	total   float64
}

func NewMeanPopulation() *MeanPopulation { return &MeanPopulation{} }

func (m *MeanPopulation) Name() string { return "mean_population" }

func (m *MeanPopulation) Observe(s life.GenerationSummary) {
	m.samples++
	m.total += float64(s.Population)
}

func (m *MeanPopulation) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanPopulation) Reset() {
	m.samples = 0
	m.total = 0
}

// PeakPopulation tracks the highest live-cell count seen.
type PeakPopulation struct {
	peak int
}

func NewPeakPopulation() *PeakPopulation { return &PeakPopulation{} }

func (m *PeakPopulation) Name() string { return "peak_population" }

func (m *PeakPopulation) Observe(s life.GenerationSummary) {
	if s.Population > m.peak {
		m.peak = s.Population
	}
}

func (m *PeakPopulation) Value() float64 { return float64(m.peak) }
func (m *PeakPopulation) Reset()         { m.peak = 0 }

// Activity tracks the mean number of cells changing per generation, the
// quantity the diff renderer's cost is proportional to.
type Activity struct {
	samples int
	total   float64
}

func NewActivity() *Activity { return &Activity{} }

func (m *Activity) Name() string { return "activity" }

func (m *Activity) Observe(s life.GenerationSummary) {
	m.samples++
	m.total += float64(s.Changed)
}

func (m *Activity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *Activity) Reset() {
	m.samples = 0
	m.total = 0
}

// TotalBirths counts cells born across the run.
type TotalBirths struct {
	births int
}

func NewTotalBirths() *TotalBirths { return &TotalBirths{} }

func (m *TotalBirths) Name() string                     { return "births" }
func (m *TotalBirths) Observe(s life.GenerationSummary) { m.births += s.Births }
func (m *TotalBirths) Value() float64                   { return float64(m.births) }
func (m *TotalBirths) Reset()                           { m.births = 0 }

// TotalDeaths counts cells dying across the run.
type TotalDeaths struct {
	deaths int
}

func NewTotalDeaths() *TotalDeaths { return &TotalDeaths{} }

func (m *TotalDeaths) Name() string                     { return "deaths" }
func (m *TotalDeaths) Observe(s life.GenerationSummary) { m.deaths += s.Deaths }
func (m *TotalDeaths) Value() float64                   { return float64(m.deaths) }
func (m *TotalDeaths) Reset()                           { m.deaths = 0 }

// Settled records the first generation whose diff was empty: the grid
// reached a still life (or died out). Zero means it never settled.
type Settled struct {
	generation int
}

func NewSettled() *Settled { return &Settled{} }

func (m *Settled) Name() string { return "settled_generation" }

func (m *Settled) Observe(s life.GenerationSummary) {
	if m.generation == 0 && s.Changed == 0 {
		m.generation = s.Generation
	}
}

func (m *Settled) Value() float64 { return float64(m.generation) }
func (m *Settled) Reset()         { m.generation = 0 }

// Default returns the standard metric set for a headless run.
func Default() []Metric {
	return []Metric{
		NewMeanPopulation(),
		NewPeakPopulation(),
		NewActivity(),
		NewTotalBirths(),
		NewTotalDeaths(),
		NewSettled(),
	}
}

// Set bundles metrics behind the engine's Observer interface.
type Set struct {
	metrics []Metric
}

func NewSet(ms ...Metric) *Set { return &Set{metrics: ms} }

func (s *Set) OnGeneration(sum life.GenerationSummary) {
	for _, m := range s.metrics {
		m.Observe(sum)
	}
}

func (s *Set) Values() map[string]float64 {
	vals := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		vals[m.Name()] = m.Value()
	}
	return vals
}

func (s *Set) Reset() {
	for _, m := range s.metrics {
		m.Reset()
	}
}
