package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/mikhail/talenthub/internal/db"
	"github.com/mikhail/talenthub/internal/types"
)

// ListTalentsResponse represents the response for listing talents
type ListTalentsResponse struct {
	Talents []types.Talent `json:"talents"`
	Count   int            `json:"count"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

// handleListTalents lists talents with optional filters and pagination
func (s *Server) handleListTalents(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	opts := db.ListTalentsOptions{
		Status:   types.TalentStatus(r.URL.Query().Get("status")),
		Category: r.URL.Query().Get("category"),
		Limit:    limit,
		Offset:   offset,
	}

	talents, err := s.db.ListTalents(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListTalentsResponse{
		Talents: talents,
		Count:   len(talents),
		Limit:   limit,
		Offset:  offset,
	})
}

// handleCreateTalent registers a new talent profile
func (s *Server) handleCreateTalent(w http.ResponseWriter, r *http.Request) {
	var req types.CreateTalentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	talent, err := s.db.CreateTalent(r.Context(), &db.TalentCreateInput{
		Name:        req.Name,
		Categories:  req.Categories,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Engagements: req.Engagements,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, talent)
}

// handleGetTalent retrieves a talent by ID
func (s *Server) handleGetTalent(w http.ResponseWriter, r *http.Request) {
	talentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid talent ID")
		return
	}

	talent, err := s.db.GetTalent(r.Context(), talentID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if talent == nil {
		s.errorResponse(w, http.StatusNotFound, "Talent not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, talent)
}

// handleUpdateTalentStatus moderates a talent profile
func (s *Server) handleUpdateTalentStatus(w http.ResponseWriter, r *http.Request) {
	talentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid talent ID")
		return
	}

	var req types.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	status := types.TalentStatus(req.Status)
	switch status {
	case types.TalentPending, types.TalentApproved, types.TalentRejected, types.TalentArchived:
	default:
		s.errorResponse(w, http.StatusBadRequest, "Unknown talent status: "+req.Status)
		return
	}

	if err := s.db.UpdateTalentStatus(r.Context(), talentID, status); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"id": talentID.String(), "status": req.Status})
}
