package handler

import (
	"net/http"
)

// GetStats handles GET /stats.
// The snapshot is recomputed from the trip set on every call, so it is always
// current and there is nothing to invalidate when trips change.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	stats, err := s.stats.Snapshot(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statsToResponse(stats))
}
