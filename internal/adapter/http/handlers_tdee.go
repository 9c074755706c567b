package adapthttp

import "net/http"

func (s *Server) handleTdee(w http.ResponseWriter, r *http.Request) {
	b, err := s.tdee.Estimate(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, b.Estimate())
}

func (s *Server) handleTdeeBreakdown(w http.ResponseWriter, r *http.Request) {
	b, err := s.tdee.Estimate(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
