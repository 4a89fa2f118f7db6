package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/mikhail/talenthub/internal/db"
	"github.com/mikhail/talenthub/internal/types"
)

// ListJobsResponse represents the response for listing jobs
type ListJobsResponse struct {
	Jobs   []types.Job `json:"jobs"`
	Count  int         `json:"count"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// handleListJobs lists jobs with optional filters and pagination
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	opts := db.ListJobsOptions{
		Status: types.JobStatus(r.URL.Query().Get("status")),
		Limit:  limit,
		Offset: offset,
	}

	jobs, err := s.db.ListJobs(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListJobsResponse{
		Jobs:   jobs,
		Count:  len(jobs),
		Limit:  limit,
		Offset: offset,
	})
}

// handleCreateJob creates a new job posting in DRAFT status
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	job, err := s.db.CreateJob(r.Context(), &db.JobCreateInput{
		Title:      req.Title,
		Category:   req.Category,
		Skills:     req.Skills,
		Engagement: req.Engagement,
		Experience: req.Experience,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleGetJob retrieves a job by ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleUpdateJobStatus moves a job through its publication lifecycle
func (s *Server) handleUpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
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

	status := types.JobStatus(req.Status)
	switch status {
	case types.JobDraft, types.JobPending, types.JobPublished, types.JobArchived, types.JobClosed:
	default:
		s.errorResponse(w, http.StatusBadRequest, "Unknown job status: "+req.Status)
		return
	}

	if err := s.db.UpdateJobStatus(r.Context(), jobID, status); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"id": jobID.String(), "status": req.Status})
}
