package api

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"valuemed-backend/internal/common/errors"
	"valuemed-backend/internal/wizard"
)

// wizardView is the response for create, get, and update: the session's
// state with the derived progress, estimate, and required-field hints.
type wizardView struct {
	ID            string          `json:"id"`
	Step          wizard.Step     `json:"step"`
	Progress      int             `json:"progress"`
	State         wizard.State    `json:"state"`
	Estimate      wizard.Estimate `json:"estimate"`
	MissingBasics []string        `json:"missingBasics,omitempty"`
}

func (s *Server) newWizardView(session *wizard.Session) wizardView {
	engine := wizard.Restore(session.State, s.estimator)
	return wizardView{
		ID:            session.ID,
		Step:          session.State.CurrentStep,
		Progress:      session.State.Progress(),
		State:         session.State,
		Estimate:      engine.Estimate(),
		MissingBasics: engine.MissingBasics(),
	}
}

func (s *Server) handleWizardCreate(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Create(r.Context(), wizard.NewState())
	if err != nil {
		s.errorHandler.HandleHTTPError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.newWizardView(session))
}

func (s *Server) handleWizardGet(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.errorHandler.HandleHTTPError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.newWizardView(session))
}

func (s *Server) handleWizardUpdate(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.errorHandler.HandleHTTPError(w, r, err)
		return
	}

	var update wizard.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.errorHandler.HandleHTTPError(w, r, errors.NewMalformedRequestError(err))
		return
	}

	engine := wizard.Restore(session.State, s.estimator)
	if err := engine.Apply(update); err != nil {
		s.errorHandler.HandleHTTPError(w, r, err)
		return
	}

	session.State = engine.State()
	if err := s.sessions.Save(r.Context(), session); err != nil {
		s.errorHandler.HandleHTTPError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.newWizardView(session))
}

type wizardSubmitView struct {
	Summary              wizard.Summary `json:"summary"`
	EmailBody            string         `json:"emailBody"`
	ProjectRequestMailto string         `json:"projectRequestMailto"`
}

// handleWizardSubmit renders the final hand-off: the summary with its
// pre-filled contact links plus the plain-text email body. The session is
// discarded afterwards; nothing the visitor typed is retained server-side.
func (s *Server) handleWizardSubmit(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.errorHandler.HandleHTTPError(w, r, err)
		return
	}

	engine := wizard.Restore(session.State, s.estimator)
	est := engine.Estimate()
	state := engine.State()

	s.logger.Info("wizard submitted", map[string]interface{}{
		"session":     session.ID,
		"projectType": state.Basics.ProjectType,
		"months":      est.Months,
		"complexity":  est.Complexity,
	})

	if err := s.sessions.Delete(r.Context(), session.ID); err != nil {
		s.logger.WithError(err).Warn("wizard session cleanup failed", map[string]interface{}{
			"session": session.ID,
		})
	}

	writeJSON(w, http.StatusOK, wizardSubmitView{
		Summary:              wizard.BuildSummary(state, est),
		EmailBody:            wizard.EmailBody(state, est),
		ProjectRequestMailto: wizard.ProjectRequestMailto(state),
	})
}
