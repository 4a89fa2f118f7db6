package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mikhail/talenthub/internal/db"
	"github.com/mikhail/talenthub/internal/lifecycle"
	"github.com/mikhail/talenthub/internal/matching"
	"github.com/mikhail/talenthub/internal/server/middleware"
	"github.com/mikhail/talenthub/internal/types"
)

// MatchPreviewResponse carries a score computed on the fly, without
// creating an application.
type MatchPreviewResponse struct {
	JobID     uuid.UUID            `json:"job_id"`
	TalentID  uuid.UUID            `json:"talent_id"`
	Score     int                  `json:"score"`
	Breakdown types.MatchBreakdown `json:"breakdown"`
}

// handleMatchPreview computes the match score for a (job, talent) pair
// without persisting anything.
func (s *Server) handleMatchPreview(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}
	talentID, err := uuid.Parse(r.PathValue("talent_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid talent ID")
		return
	}

	var (
		job    *types.Job
		talent *types.Talent
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		job, err = s.db.GetJob(ctx, jobID)
		return err
	})
	g.Go(func() error {
		var err error
		talent, err = s.db.GetTalent(ctx, talentID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	if talent == nil {
		s.errorResponse(w, http.StatusNotFound, "Talent not found")
		return
	}

	score, breakdown := matching.Score(talent, job)
	s.jsonResponse(w, http.StatusOK, MatchPreviewResponse{
		JobID:     jobID,
		TalentID:  talentID,
		Score:     score,
		Breakdown: breakdown,
	})
}

// handleCreateApplication records a talent applying to a job. The score is
// computed server-side at creation time and frozen on the application.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req types.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	talentID, err := uuid.Parse(req.TalentID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid talent ID")
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
	if !job.AcceptsApplications() {
		notOpen := &ErrJobNotOpen{JobID: jobID}
		s.errorResponse(w, HTTPStatus(notOpen), notOpen.Error())
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

	score, breakdown := matching.Score(talent, job)
	app, err := s.db.CreateApplication(r.Context(), jobID, talentID, score, breakdown)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, app)
}

// ListApplicationsResponse represents the response for listing a job's
// applications, best match first.
type ListApplicationsResponse struct {
	Applications []types.Application `json:"applications"`
	Count        int                 `json:"count"`
	Limit        int                 `json:"limit"`
	Offset       int                 `json:"offset"`
}

// handleListApplications lists a job's applications ordered by score.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	apps, err := s.db.ListApplicationsByJob(r.Context(), jobID, db.ListApplicationsOptions{
		Status: types.ApplicationStatus(r.URL.Query().Get("status")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListApplicationsResponse{
		Applications: apps,
		Count:        len(apps),
		Limit:        limit,
		Offset:       offset,
	})
}

// ApplicationStatsResponse summarizes a job's pipeline by status.
type ApplicationStatsResponse struct {
	JobID  uuid.UUID                       `json:"job_id"`
	Counts map[types.ApplicationStatus]int `json:"counts"`
	Total  int                             `json:"total"`
}

// handleApplicationStats returns per-status application counts for a job.
func (s *Server) handleApplicationStats(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	counts, err := s.db.CountApplicationsByStatus(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	s.jsonResponse(w, http.StatusOK, ApplicationStatsResponse{
		JobID:  jobID,
		Counts: counts,
		Total:  total,
	})
}

// handleGetApplication retrieves an application by ID
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, err := s.db.GetApplication(r.Context(), appID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, app)
}

// handleShortlist moves a NEW application to SHORTLISTED.
func (s *Server) handleShortlist(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, lifecycle.ActionShortlist)
}

// handleHire moves a SHORTLISTED application to HIRED.
func (s *Server) handleHire(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, lifecycle.ActionHire)
}

// handleReject moves a NEW or SHORTLISTED application to REJECTED.
func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, lifecycle.ActionReject)
}

// handleTransition applies a single lifecycle action. The transition is
// computed in memory, then persisted with a guard on the expected prior
// statuses so a concurrent admin acting first wins and this request gets a
// conflict instead of overwriting newer state.
func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request, action lifecycle.Action) {
	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	// The note is optional, so an empty request body is accepted.
	var req types.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	app, err := s.db.GetApplication(r.Context(), appID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	next, event, err := lifecycle.Transition(*app, action, req.Note, time.Now().UTC())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	saved, err := s.db.SaveTransition(r.Context(), app.ID, lifecycle.AllowedFrom(action), &next)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.recordAudit(r, event)
	s.jsonResponse(w, http.StatusOK, saved)
}

// BulkItemResult is the per-item outcome of a bulk action, in request order.
type BulkItemResult struct {
	TalentID    string             `json:"talent_id"`
	OK          bool               `json:"ok"`
	Error       string             `json:"error,omitempty"`
	Application *types.Application `json:"application,omitempty"`
}

// BulkTransitionResponse reports every item of a bulk action. The batch is
// not atomic: some items may succeed while others fail.
type BulkTransitionResponse struct {
	JobID     uuid.UUID        `json:"job_id"`
	Action    string           `json:"action"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Results   []BulkItemResult `json:"results"`
}

// handleBulkTransition applies one action to many talents' applications for
// a single job, reporting success or failure per item.
func (s *Server) handleBulkTransition(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req types.BulkTransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	action := lifecycle.Action(req.Action)

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	now := time.Now().UTC()
	results := make([]BulkItemResult, 0, len(req.TalentIDs))
	succeeded := 0

	for _, rawID := range req.TalentIDs {
		talentID, err := uuid.Parse(rawID)
		if err != nil {
			results = append(results, BulkItemResult{TalentID: rawID, Error: "invalid talent ID"})
			continue
		}

		app, err := s.db.GetApplicationByPair(r.Context(), jobID, talentID)
		if err != nil {
			results = append(results, BulkItemResult{TalentID: rawID, Error: "database error"})
			continue
		}
		if app == nil {
			results = append(results, BulkItemResult{TalentID: rawID, Error: "application not found"})
			continue
		}

		next, event, err := lifecycle.Transition(*app, action, req.Note, now)
		if err != nil {
			results = append(results, BulkItemResult{TalentID: rawID, Error: err.Error()})
			continue
		}

		saved, err := s.db.SaveTransition(r.Context(), app.ID, lifecycle.AllowedFrom(action), &next)
		if err != nil {
			results = append(results, BulkItemResult{TalentID: rawID, Error: err.Error()})
			continue
		}

		s.recordAudit(r, event)
		results = append(results, BulkItemResult{TalentID: rawID, OK: true, Application: saved})
		succeeded++
	}

	s.jsonResponse(w, http.StatusOK, BulkTransitionResponse{
		JobID:     jobID,
		Action:    req.Action,
		Succeeded: succeeded,
		Failed:    len(results) - succeeded,
		Results:   results,
	})
}

// recordAudit persists an audit event attributed to the authenticated admin.
// The transition itself has already been committed, so an audit write
// failure is logged rather than surfaced to the client.
func (s *Server) recordAudit(r *http.Request, event lifecycle.AuditEvent) {
	var adminID *uuid.UUID
	if id, err := middleware.GetAdminID(r); err == nil {
		adminID = &id
	}
	if err := s.db.InsertAuditEvent(r.Context(), adminID, event); err != nil {
		log.Printf("Failed to record audit event %s for %s: %v", event.Action, event.ResourceID, err)
	}
}
