package adapthttp

import "net/http"

func (s *Server) handleChartsDaily(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", 90)
	unit := r.URL.Query().Get("unit")
	if unit == "" {
		unit = "lb"
	}

	points, err := s.charts.GetDaily(r.Context(), days, unit)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	var today string
	if len(points) > 0 {
		today = points[len(points)-1].Day
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"days":  len(points),
		"unit":  unit,
		"today": today,
		"items": points,
	})
}
