package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"

	"fitness/internal/app"
	"fitness/internal/domain"
)

type createWeightRequest struct {
	Amount float64 `json:"amount" validate:"gt=0,lt=2000"`
	Unit   string  `json:"unit" validate:"omitempty,oneof=kg lb"`
	Day    string  `json:"day" validate:"omitempty,datetime=2006-01-02"`
}

func (s *Server) handleWeightList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	from, to, ok, err := rangeQuery(r)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	var items []domain.WeightEntry
	if ok {
		items, err = s.weight.ListRange(ctx, from, to)
	} else {
		items, err = s.weight.ListRecent(ctx, intQuery(r, "limit", app.DefaultRecentWeights))
	}
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": nonNil(items)})
}

func (s *Server) handleWeightToday(w http.ResponseWriter, r *http.Request) {
	entry, today, err := s.weight.Today(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": today, "entry": entry})
}

func (s *Server) handleWeightCreate(w http.ResponseWriter, r *http.Request) {
	var body createWeightRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.weight.Record(r.Context(), body.Amount, body.Unit, body.Day)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": entry})
}

func (s *Server) handleWeightDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.weight.Delete(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": deleted})
}
