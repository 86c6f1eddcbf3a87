package wizard

import (
	"sort"
	"strings"

	"valuemed-backend/internal/common/config"
	"valuemed-backend/internal/common/metrics"
)

// Complexity is the derived accreditation-driven complexity band.
type Complexity string

const (
	ComplexityStandard Complexity = "Standard"
	ComplexityMedium   Complexity = "Medium"
	ComplexityHigh     Complexity = "High"
)

// Phases is the fixed execution roadmap shown with every estimate. Constant
// regardless of input; kept as data so a future per-type roadmap is an edit
// here, not a logic change.
var Phases = []string{
	"Feasibility & Planning",
	"Architecture & Design",
	"Licensing & Approvals",
	"Commissioning & Operations",
}

// Estimate is derived from State on every read, never stored.
type Estimate struct {
	Months     int        `json:"months"`
	Complexity Complexity `json:"complexity"`
	Phases     []string   `json:"phases"`
}

// Estimator derives estimates from configured increments. Pure and
// deterministic: identical selections always produce the identical result.
type Estimator struct {
	cfg config.EstimateConfig
}

func NewEstimator(cfg config.EstimateConfig) *Estimator {
	return &Estimator{cfg: cfg}
}

// NewDefaultEstimator uses the standard derivation constants.
func NewDefaultEstimator() *Estimator {
	return &Estimator{cfg: config.DefaultEstimates()}
}

// Derive computes the estimate for the given state. Total over any
// well-formed state: the all-empty state yields the base months at Standard
// complexity.
func (e *Estimator) Derive(s State) Estimate {
	months := e.cfg.BaseMonths

	// Project type keys match by containment, so "Multi-Specialty Hospital"
	// and "Specialty Hospital" both pick up the "Hospital" increment.
	for _, key := range sortedKeys(e.cfg.ProjectTypeMonths) {
		if strings.Contains(s.Basics.ProjectType, key) {
			months += e.cfg.ProjectTypeMonths[key]
		}
	}

	// Scope is a set: each selected item contributes once, order irrelevant.
	for _, key := range sortedKeys(e.cfg.ScopeMonths) {
		if s.HasScope(key) {
			months += e.cfg.ScopeMonths[key]
		}
	}

	score := 0
	for _, key := range sortedKeys(e.cfg.AccreditationScores) {
		if s.HasAccreditation(key) {
			score += e.cfg.AccreditationScores[key]
		}
	}

	complexity := ComplexityStandard
	switch {
	case score >= e.cfg.HighThreshold:
		complexity = ComplexityHigh
	case score >= e.cfg.MediumThreshold:
		complexity = ComplexityMedium
	}

	metrics.WizardEstimatesComputed.Inc()

	return Estimate{
		Months:     months,
		Complexity: complexity,
		Phases:     Phases,
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
