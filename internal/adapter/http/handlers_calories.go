package adapthttp

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fitness/internal/domain"
)

type createCaloriesRequest struct {
	Amount *int `json:"amount" validate:"required,gte=0,lte=2147483647"`
}

func (s *Server) handleCaloriesList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	from, to, ok, err := rangeQuery(r)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	if !ok {
		items, today, err := s.calories.ListToday(ctx)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"today": today,
			"total": domain.SumCalories(items),
			"items": nonNil(items),
		})
		return
	}

	items, err := s.calories.ListRange(ctx, from, to)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": nonNil(items)})
}

func (s *Server) handleCaloriesCreate(w http.ResponseWriter, r *http.Request) {
	var body createCaloriesRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.calories.Record(r.Context(), *body.Amount)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"entry": entry})
}

func (s *Server) handleCaloriesDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	deleted, err := s.calories.Delete(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": deleted})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
