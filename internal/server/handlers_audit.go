package server

import (
	"net/http"

	"github.com/mikhail/talenthub/internal/db"
)

// ListAuditEventsResponse represents the response for listing audit events
type ListAuditEventsResponse struct {
	Events []db.AuditLog `json:"events"`
	Count  int           `json:"count"`
}

// handleListAuditEvents lists audit events for a resource, newest first.
// The resource type defaults to APPLICATION when not given.
func (s *Server) handleListAuditEvents(w http.ResponseWriter, r *http.Request) {
	resourceType := r.URL.Query().Get("resource_type")
	if resourceType == "" {
		resourceType = "APPLICATION"
	}
	resourceID := r.URL.Query().Get("resource_id")
	if resourceID == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing resource_id query parameter")
		return
	}
	limit := parseQueryInt(r, "limit", 50, 200)

	events, err := s.db.ListAuditEvents(r.Context(), resourceType, resourceID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListAuditEventsResponse{
		Events: events,
		Count:  len(events),
	})
}
