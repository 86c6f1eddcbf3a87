// Package wizard implements the five-step project-builder: form state,
// derived duration/complexity estimates, and the outbound hand-off rendering.
package wizard

// Step identifies one of the ordered wizard steps.
type Step string

const (
	StepBasics        Step = "basics"
	StepScope         Step = "scope"
	StepAccreditation Step = "accreditation"
	StepTimeline      Step = "timeline"
	StepSummary       Step = "summary"
)

// Steps is the fixed step order.
var Steps = []Step{StepBasics, StepScope, StepAccreditation, StepTimeline, StepSummary}

// Index returns the position of the step in the fixed order, or -1.
func (s Step) Index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the five defined steps.
func (s Step) Valid() bool {
	return s.Index() >= 0
}

// Enumerated option lists. Selection values outside these lists are rejected
// at the update boundary.
var (
	ProjectTypes = []string{
		"Multi‑Specialty Hospital",
		"Specialty Hospital",
		"Clinic / Polyclinic",
		"Diagnostic Center",
		"Medical College",
		"Other",
	}

	ScopeOptions = []string{
		"Feasibility",
		"Architecture",
		"Equipment",
		"Licensing",
		"Operations",
		"Recruitment",
	}

	AccreditationOptions = []string{"NABH", "NABL", "JCI"}

	TimelineOptions = []string{
		"0–3 months",
		"3–6 months",
		"6–12 months",
		"12+ months",
	}

	BudgetOptions = []string{
		"Under ₹5 Cr",
		"₹5–20 Cr",
		"₹20–50 Cr",
		"₹50–100 Cr",
		"₹100+ Cr",
	}
)

// Basics holds the identity fields collected on the first step.
type Basics struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	City         string `json:"city"`
	ProjectType  string `json:"projectType"`
}

// State is the whole wizard form. One value per session; every edit lands
// here so nothing is lost when the user jumps between steps.
type State struct {
	CurrentStep   Step     `json:"currentStep"`
	Basics        Basics   `json:"basics"`
	Scope         []string `json:"scope"`
	Accreditation []string `json:"accreditation"`
	Timeline      string   `json:"timeline"`
	Budget        string   `json:"budget"`
	Details       string   `json:"details"`
}

// NewState returns the empty initial state on the Basics step.
func NewState() State {
	return State{CurrentStep: StepBasics}
}

// Progress is the percent of steps reached, matching the site progress bar.
func (s State) Progress() int {
	idx := s.CurrentStep.Index()
	if idx < 0 {
		idx = 0
	}
	return (idx + 1) * 100 / len(Steps)
}

// HasScope reports whether the scope set contains item.
func (s State) HasScope(item string) bool {
	return contains(s.Scope, item)
}

// HasAccreditation reports whether the accreditation set contains item.
func (s State) HasAccreditation(item string) bool {
	return contains(s.Accreditation, item)
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

func validOption(options []string, value string) bool {
	return value == "" || contains(options, value)
}
