package wizard

import (
	"fmt"

	"valuemed-backend/internal/common/errors"
	"valuemed-backend/internal/common/validation"
)

// Engine owns one session's wizard state and applies user input to it.
// Single-session, synchronous: callers serialize access per session.
type Engine struct {
	state     State
	estimator *Estimator
}

func NewEngine(estimator *Estimator) *Engine {
	return &Engine{
		state:     NewState(),
		estimator: estimator,
	}
}

// Restore builds an engine around a previously saved state.
func Restore(state State, estimator *Estimator) *Engine {
	if !state.CurrentStep.Valid() {
		state.CurrentStep = StepBasics
	}
	return &Engine{state: state, estimator: estimator}
}

// State returns a copy of the current form state.
func (e *Engine) State() State {
	return e.state
}

// Estimate recomputes the live estimate from the current selections.
func (e *Engine) Estimate() Estimate {
	return e.estimator.Derive(e.state)
}

// Continue advances to the next step; no-op on the last step.
func (e *Engine) Continue() Step {
	idx := e.state.CurrentStep.Index()
	if idx < len(Steps)-1 {
		e.state.CurrentStep = Steps[idx+1]
	}
	return e.state.CurrentStep
}

// Back moves to the previous step; no-op on Basics.
func (e *Engine) Back() Step {
	idx := e.state.CurrentStep.Index()
	if idx > 0 {
		e.state.CurrentStep = Steps[idx-1]
	}
	return e.state.CurrentStep
}

// GoTo jumps directly to any step. Field edits always persist across
// navigation since they live in the single State.
func (e *Engine) GoTo(step Step) error {
	if !step.Valid() {
		return errors.NewValidationError(fmt.Sprintf("unknown step %q", step))
	}
	e.state.CurrentStep = step
	return nil
}

// ToggleScope adds or removes a scope selection. Set semantics: no
// duplicates, selection order not significant.
func (e *Engine) ToggleScope(item string) error {
	if !contains(ScopeOptions, item) {
		return errors.NewValidationError(fmt.Sprintf("unknown scope option %q", item))
	}
	e.state.Scope = toggle(e.state.Scope, item)
	return nil
}

// ToggleAccreditation adds or removes an accreditation selection.
func (e *Engine) ToggleAccreditation(item string) error {
	if !contains(AccreditationOptions, item) {
		return errors.NewValidationError(fmt.Sprintf("unknown accreditation option %q", item))
	}
	e.state.Accreditation = toggle(e.state.Accreditation, item)
	return nil
}

// Update carries a partial edit from the presentation layer. Nil pointers
// leave the field untouched; Toggle fields flip set membership.
type Update struct {
	Step                    *Step   `json:"step,omitempty"`
	Nav                     string  `json:"nav,omitempty"` // "continue" or "back"
	Name                    *string `json:"name,omitempty"`
	Email                   *string `json:"email,omitempty"`
	Phone                   *string `json:"phone,omitempty"`
	Organization            *string `json:"organization,omitempty"`
	City                    *string `json:"city,omitempty"`
	ProjectType             *string `json:"projectType,omitempty"`
	ToggleScopeItem         string  `json:"toggleScope,omitempty"`
	ToggleAccreditationItem string  `json:"toggleAccreditation,omitempty"`
	Timeline                *string `json:"timeline,omitempty"`
	Budget                  *string `json:"budget,omitempty"`
	Details                 *string `json:"details,omitempty"`
}

// Apply mutates the state with the given update. Single-choice fields are
// checked against their option lists; clearing with "" is always allowed.
func (e *Engine) Apply(u Update) error {
	if u.Name != nil {
		e.state.Basics.Name = *u.Name
	}
	if u.Email != nil {
		e.state.Basics.Email = *u.Email
	}
	if u.Phone != nil {
		e.state.Basics.Phone = *u.Phone
	}
	if u.Organization != nil {
		e.state.Basics.Organization = *u.Organization
	}
	if u.City != nil {
		e.state.Basics.City = *u.City
	}
	if u.ProjectType != nil {
		if !validOption(ProjectTypes, *u.ProjectType) {
			return errors.NewValidationError(fmt.Sprintf("unknown project type %q", *u.ProjectType))
		}
		e.state.Basics.ProjectType = *u.ProjectType
	}
	if u.ToggleScopeItem != "" {
		if err := e.ToggleScope(u.ToggleScopeItem); err != nil {
			return err
		}
	}
	if u.ToggleAccreditationItem != "" {
		if err := e.ToggleAccreditation(u.ToggleAccreditationItem); err != nil {
			return err
		}
	}
	if u.Timeline != nil {
		if !validOption(TimelineOptions, *u.Timeline) {
			return errors.NewValidationError(fmt.Sprintf("unknown timeline %q", *u.Timeline))
		}
		e.state.Timeline = *u.Timeline
	}
	if u.Budget != nil {
		if !validOption(BudgetOptions, *u.Budget) {
			return errors.NewValidationError(fmt.Sprintf("unknown budget %q", *u.Budget))
		}
		e.state.Budget = *u.Budget
	}
	if u.Details != nil {
		e.state.Details = *u.Details
	}

	// Navigation last so an edit and a step change land together.
	switch u.Nav {
	case "":
	case "continue":
		e.Continue()
	case "back":
		e.Back()
	default:
		return errors.NewValidationError(fmt.Sprintf("unknown nav action %q", u.Nav))
	}
	if u.Step != nil {
		if err := e.GoTo(*u.Step); err != nil {
			return err
		}
	}
	return nil
}

// MissingBasics lists the required Basics fields that are still empty or
// malformed. Forward navigation is never blocked on these; the presentation
// layer uses the list for required-field hints.
func (e *Engine) MissingBasics() []string {
	var missing []string
	b := e.state.Basics
	if b.Name == "" {
		missing = append(missing, "name")
	}
	if b.Email == "" || !validation.ValidateEmail(b.Email) {
		missing = append(missing, "email")
	}
	if b.Phone == "" || !validation.ValidatePhone(b.Phone) {
		missing = append(missing, "phone")
	}
	if b.City == "" {
		missing = append(missing, "city")
	}
	if b.ProjectType == "" {
		missing = append(missing, "projectType")
	}
	return missing
}

func toggle(list []string, item string) []string {
	for i, v := range list {
		if v == item {
			// Removal copies: the caller's slice may be shared with a
			// session store snapshot, and an in-place shift would leak
			// into it even when the surrounding update is rejected.
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	return append(list, item)
}
