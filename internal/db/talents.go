package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mikhail/talenthub/internal/types"
)

// TalentCreateInput holds the fields required to create a talent profile.
type TalentCreateInput struct {
	Name        string
	Categories  []string
	Skills      []string
	Experience  types.ExperienceLevel
	Engagements []string
}

// CreateTalent inserts a new talent profile in PENDING status.
func (db *DB) CreateTalent(ctx context.Context, input *TalentCreateInput) (*types.Talent, error) {
	var talent types.Talent
	var categories, skills, engagements []string
	err := db.pool.QueryRow(ctx,
		`INSERT INTO talents (name, categories, skills, experience, engagements)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, categories, skills, experience, engagements, status, created_at, updated_at`,
		input.Name, input.Categories, input.Skills, input.Experience, input.Engagements,
	).Scan(&talent.ID, &talent.Name, &categories, &skills, &talent.Experience,
		&engagements, &talent.Status, &talent.CreatedAt, &talent.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create talent: %w", err)
	}
	talent.Categories = categories
	talent.Skills = skills
	talent.Engagements = engagements
	return &talent, nil
}

// GetTalent retrieves a talent by ID. Returns nil without error when no
// talent matches.
func (db *DB) GetTalent(ctx context.Context, id uuid.UUID) (*types.Talent, error) {
	var talent types.Talent
	var categories, skills, engagements []string
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, categories, skills, experience, engagements, status, created_at, updated_at
		 FROM talents WHERE id = $1`,
		id,
	).Scan(&talent.ID, &talent.Name, &categories, &skills, &talent.Experience,
		&engagements, &talent.Status, &talent.CreatedAt, &talent.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get talent: %w", err)
	}
	talent.Categories = categories
	talent.Skills = skills
	talent.Engagements = engagements
	return &talent, nil
}

// ListTalentsOptions holds optional filters for listing talents.
type ListTalentsOptions struct {
	Status   types.TalentStatus
	Category string
	Limit    int
	Offset   int
}

// ListTalents retrieves talents with optional filters and pagination.
func (db *DB) ListTalents(ctx context.Context, opts ListTalentsOptions) ([]types.Talent, error) {
	if opts.Limit == 0 {
		opts.Limit = 50
	}

	query := `SELECT id, name, categories, skills, experience, engagements, status, created_at, updated_at
		FROM talents WHERE 1=1`
	args := []any{}
	argNum := 1

	if opts.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, opts.Status)
		argNum++
	}
	if opts.Category != "" {
		query += fmt.Sprintf(" AND $%d = ANY(categories)", argNum)
		args = append(args, opts.Category)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list talents: %w", err)
	}
	defer rows.Close()

	var talents []types.Talent
	for rows.Next() {
		var talent types.Talent
		var categories, skills, engagements []string
		if err := rows.Scan(&talent.ID, &talent.Name, &categories, &skills, &talent.Experience,
			&engagements, &talent.Status, &talent.CreatedAt, &talent.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan talent: %w", err)
		}
		talent.Categories = categories
		talent.Skills = skills
		talent.Engagements = engagements
		talents = append(talents, talent)
	}
	return talents, nil
}

// UpdateTalentStatus updates the moderation status of a talent.
func (db *DB) UpdateTalentStatus(ctx context.Context, id uuid.UUID, status types.TalentStatus) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE talents SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update talent status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("talent not found: %s", id)
	}
	return nil
}
