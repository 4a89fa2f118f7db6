package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mikhail/talenthub/internal/types"
)

// JobCreateInput holds the fields required to create a job posting.
type JobCreateInput struct {
	Title      string
	Category   types.ServiceCategory
	Skills     []string
	Engagement types.EngagementType
	Experience types.ExperienceLevel // empty means no target level
}

// CreateJob inserts a new job posting in DRAFT status.
func (db *DB) CreateJob(ctx context.Context, input *JobCreateInput) (*types.Job, error) {
	var job types.Job
	var skills []string
	var experience *string
	var exp *string
	if input.Experience != "" {
		s := string(input.Experience)
		exp = &s
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, category, skills, engagement, experience)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, title, category, skills, engagement, experience, status, created_at, updated_at`,
		input.Title, input.Category, input.Skills, input.Engagement, exp,
	).Scan(&job.ID, &job.Title, &job.Category, &skills, &job.Engagement,
		&experience, &job.Status, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	job.Skills = skills
	if experience != nil {
		job.Experience = types.ExperienceLevel(*experience)
	}
	return &job, nil
}

// GetJob retrieves a job by ID. Returns nil without error when no job matches.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	var job types.Job
	var skills []string
	var experience *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, category, skills, engagement, experience, status, created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &job.Category, &skills, &job.Engagement,
		&experience, &job.Status, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	job.Skills = skills
	if experience != nil {
		job.Experience = types.ExperienceLevel(*experience)
	}
	return &job, nil
}

// ListJobsOptions holds optional filters for listing jobs.
type ListJobsOptions struct {
	Status types.JobStatus
	Limit  int
	Offset int
}

// ListJobs retrieves jobs with optional filters and pagination.
func (db *DB) ListJobs(ctx context.Context, opts ListJobsOptions) ([]types.Job, error) {
	if opts.Limit == 0 {
		opts.Limit = 50
	}

	query := `SELECT id, title, category, skills, engagement, experience, status, created_at, updated_at
		FROM jobs WHERE 1=1`
	args := []any{}
	argNum := 1

	if opts.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, opts.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		var job types.Job
		var skills []string
		var experience *string
		if err := rows.Scan(&job.ID, &job.Title, &job.Category, &skills, &job.Engagement,
			&experience, &job.Status, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		job.Skills = skills
		if experience != nil {
			job.Experience = types.ExperienceLevel(*experience)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// UpdateJobStatus updates the publication status of a job.
func (db *DB) UpdateJobStatus(ctx context.Context, id uuid.UUID, status types.JobStatus) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}
