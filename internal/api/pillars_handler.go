package api

import (
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"valuemed-backend/internal/common/errors"
	"valuemed-backend/internal/pillars"
)

type statView struct {
	Label string            `json:"label"`
	Value string            `json:"value"`
	Parts pillars.StatParts `json:"parts"`
}

type peekView struct {
	Icon  pillars.IconDescriptor `json:"icon"`
	Title string                 `json:"title"`
	Desc  string                 `json:"desc"`
}

// pillarView is the detail representation: the pillar itself plus stats
// pre-parsed for count-up animation and quick-peek icons resolved to
// renderable descriptors.
type pillarView struct {
	pillars.Pillar
	ParsedStats []statView `json:"parsedStats"`
	Peek        []peekView `json:"peek"`
}

func newPillarView(p *pillars.Pillar) pillarView {
	view := pillarView{Pillar: *p}
	for _, st := range p.Stats {
		view.ParsedStats = append(view.ParsedStats, statView{
			Label: st.Label,
			Value: st.Value,
			Parts: pillars.ParseStatValue(st.Value),
		})
	}
	for _, qp := range p.QuickPeek {
		view.Peek = append(view.Peek, peekView{
			Icon:  qp.Icon.Descriptor(),
			Title: qp.Title,
			Desc:  qp.Desc,
		})
	}
	return view
}

func (s *Server) handleListPillars(w http.ResponseWriter, r *http.Request) {
	all := s.pillars.All()
	views := make([]pillarView, 0, len(all))
	for i := range all {
		views = append(views, newPillarView(&all[i]))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pillars": views})
}

func (s *Server) handleGetPillar(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, err := s.pillars.Resolve(slug)
	if err != nil {
		s.errorHandler.HandleHTTPError(w, r, errors.NewPillarNotFoundError(slug))
		return
	}
	writeJSON(w, http.StatusOK, newPillarView(p))
}

func (s *Server) handleSearchPillars(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.errorHandler.HandleHTTPError(w, r, errors.NewValidationError("missing q parameter"))
		return
	}
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	hits, err := s.searcher.Search(r.Context(), query, limit)
	if err != nil {
		s.errorHandler.HandleHTTPError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"results": hits,
	})
}
