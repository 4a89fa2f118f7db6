package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mikhail/talenthub/internal/types"
)

const applicationColumns = `id, job_id, talent_id, status, score,
	skill_overlap, category_match, experience_match, engagement_match,
	note, shortlisted_at, hired_at, created_at, updated_at`

func scanApplication(row pgx.Row) (*types.Application, error) {
	var app types.Application
	err := row.Scan(&app.ID, &app.JobID, &app.TalentID, &app.Status, &app.Score,
		&app.Breakdown.SkillOverlap, &app.Breakdown.CategoryMatch,
		&app.Breakdown.ExperienceMatch, &app.Breakdown.EngagementMatch,
		&app.Note, &app.ShortlistedAt, &app.HiredAt, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, err
	}
	app.Breakdown.Total = app.Score
	return &app, nil
}

// CreateApplication inserts a new application in NEW status, recording the
// score and breakdown captured at computation time. A second application
// for the same (job, talent) pair returns ErrApplicationExists.
func (db *DB) CreateApplication(ctx context.Context, jobID, talentID uuid.UUID, score int, breakdown types.MatchBreakdown) (*types.Application, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, talent_id, score, skill_overlap, category_match, experience_match, engagement_match)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+applicationColumns,
		jobID, talentID, score, breakdown.SkillOverlap, breakdown.CategoryMatch,
		breakdown.ExperienceMatch, breakdown.EngagementMatch,
	)
	app, err := scanApplication(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &ErrApplicationExists{JobID: jobID, TalentID: talentID}
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

// GetApplication retrieves an application by ID. Returns nil without error
// when no application matches.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// GetApplicationByPair retrieves the application for a (job, talent) pair.
func (db *DB) GetApplicationByPair(ctx context.Context, jobID, talentID uuid.UUID) (*types.Application, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND talent_id = $2`,
		jobID, talentID)
	app, err := scanApplication(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application by pair: %w", err)
	}
	return app, nil
}

// ListApplicationsOptions holds optional filters for listing applications.
type ListApplicationsOptions struct {
	Status types.ApplicationStatus
	Limit  int
	Offset int
}

// ListApplicationsByJob retrieves applications for a job, best score first.
func (db *DB) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID, opts ListApplicationsOptions) ([]types.Application, error) {
	if opts.Limit == 0 {
		opts.Limit = 50
	}

	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1`
	args := []any{jobID}
	argNum := 2

	if opts.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, opts.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY score DESC, created_at ASC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// SaveTransition persists an already-computed lifecycle transition. The
// UPDATE is guarded by the expected prior statuses, so a concurrent writer
// that moved the row first makes this call return ErrStatusConflict instead
// of clobbering the newer state. Timestamps are written with COALESCE and
// therefore set at most once.
func (db *DB) SaveTransition(ctx context.Context, id uuid.UUID, from []types.ApplicationStatus, app *types.Application) (*types.Application, error) {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = string(s)
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE applications
		 SET status = $1,
		     note = $2,
		     shortlisted_at = COALESCE(shortlisted_at, $3),
		     hired_at = COALESCE(hired_at, $4),
		     updated_at = $5
		 WHERE id = $6 AND status = ANY($7)
		 RETURNING `+applicationColumns,
		app.Status, app.Note, app.ShortlistedAt, app.HiredAt, app.UpdatedAt, id, fromStrs,
	)
	updated, err := scanApplication(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrStatusConflict{ID: id}
		}
		return nil, fmt.Errorf("failed to save transition: %w", err)
	}
	return updated, nil
}

// CountApplicationsByStatus returns the number of applications per status
// for a job. Used by the admin dashboard.
func (db *DB) CountApplicationsByStatus(ctx context.Context, jobID uuid.UUID) (map[types.ApplicationStatus]int, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM applications WHERE job_id = $1 GROUP BY status`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	defer rows.Close()

	counts := make(map[types.ApplicationStatus]int)
	for rows.Next() {
		var status types.ApplicationStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[status] = count
	}
	return counts, nil
}
