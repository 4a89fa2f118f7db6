// Package seed loads development fixtures into the database. The embedded
// fixtures file is validated against its JSON Schema before any row is
// written, so a malformed fixture fails fast instead of half-seeding.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/sync/errgroup"

	"github.com/mikhail/talenthub/internal/config"
	"github.com/mikhail/talenthub/internal/db"
	"github.com/mikhail/talenthub/internal/types"
	"github.com/mikhail/talenthub/schemas"
)

//go:embed fixtures.json
var fixturesJSON string

// insertConcurrency bounds parallel fixture inserts.
const insertConcurrency = 4

// AdminFixture is the seeded admin account. The password is hashed before
// it reaches the database.
type AdminFixture struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TalentFixture is a seeded talent profile.
type TalentFixture struct {
	Name        string                `json:"name"`
	Categories  types.OneOrMany       `json:"categories"`
	Skills      []string              `json:"skills"`
	Experience  types.ExperienceLevel `json:"experience"`
	Engagements types.OneOrMany       `json:"engagements,omitempty"`
	Status      types.TalentStatus    `json:"status,omitempty"`
}

// JobFixture is a seeded job posting.
type JobFixture struct {
	Title      string                `json:"title"`
	Category   types.ServiceCategory `json:"category"`
	Skills     []string              `json:"skills"`
	Engagement types.EngagementType  `json:"engagement"`
	Experience types.ExperienceLevel `json:"experience,omitempty"`
	Status     types.JobStatus       `json:"status,omitempty"`
}

// Fixtures is the full seed data set.
type Fixtures struct {
	Admin   AdminFixture    `json:"admin"`
	Talents []TalentFixture `json:"talents"`
	Jobs    []JobFixture    `json:"jobs"`
}

// ValidationError reports schema violations in a fixtures document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("fixture validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Load validates the embedded fixtures against the seed schema and decodes
// them.
func Load() (*Fixtures, error) {
	return parse(fixturesJSON)
}

// parse validates and decodes a fixtures document.
func parse(content string) (*Fixtures, error) {
	if err := validate(content); err != nil {
		return nil, err
	}

	var fixtures Fixtures
	if err := json.Unmarshal([]byte(content), &fixtures); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &fixtures, nil
}

// validate checks a fixtures document against the embedded JSON Schema.
func validate(content string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemas.SeedSchema)
	documentLoader := gojsonschema.NewStringLoader(content)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// Apply writes the fixtures to the database. The admin is created first so
// a broken password configuration aborts before any profile rows exist;
// talents and jobs are then inserted concurrently. Re-running against a
// seeded database skips the existing admin and duplicates nothing else
// because profile inserts always create new rows.
func Apply(ctx context.Context, database *db.DB, passwordConfig *config.PasswordConfig, fixtures *Fixtures) error {
	if err := seedAdmin(ctx, database, passwordConfig, &fixtures.Admin); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(insertConcurrency)

	for _, talent := range fixtures.Talents {
		g.Go(func() error {
			return seedTalent(ctx, database, &talent)
		})
	}
	for _, job := range fixtures.Jobs {
		g.Go(func() error {
			return seedJob(ctx, database, &job)
		})
	}

	return g.Wait()
}

func seedAdmin(ctx context.Context, database *db.DB, passwordConfig *config.PasswordConfig, fixture *AdminFixture) error {
	hash, err := passwordConfig.HashPassword(fixture.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = database.CreateAdmin(ctx, fixture.Name, fixture.Email, hash)
	if err != nil {
		var exists *db.ErrAdminExists
		if errors.As(err, &exists) {
			log.Printf("Admin %s already exists, skipping", fixture.Email)
			return nil
		}
		return err
	}
	return nil
}

func seedTalent(ctx context.Context, database *db.DB, fixture *TalentFixture) error {
	talent, err := database.CreateTalent(ctx, &db.TalentCreateInput{
		Name:        fixture.Name,
		Categories:  fixture.Categories,
		Skills:      fixture.Skills,
		Experience:  fixture.Experience,
		Engagements: fixture.Engagements,
	})
	if err != nil {
		return fmt.Errorf("failed to seed talent %q: %w", fixture.Name, err)
	}

	// Rows start PENDING; fixtures may place a talent further along.
	if fixture.Status != "" && fixture.Status != types.TalentPending {
		if err := database.UpdateTalentStatus(ctx, talent.ID, fixture.Status); err != nil {
			return fmt.Errorf("failed to set status for talent %q: %w", fixture.Name, err)
		}
	}
	return nil
}

func seedJob(ctx context.Context, database *db.DB, fixture *JobFixture) error {
	job, err := database.CreateJob(ctx, &db.JobCreateInput{
		Title:      fixture.Title,
		Category:   fixture.Category,
		Skills:     fixture.Skills,
		Engagement: fixture.Engagement,
		Experience: fixture.Experience,
	})
	if err != nil {
		return fmt.Errorf("failed to seed job %q: %w", fixture.Title, err)
	}

	if fixture.Status != "" && fixture.Status != types.JobDraft {
		if err := database.UpdateJobStatus(ctx, job.ID, fixture.Status); err != nil {
			return fmt.Errorf("failed to set status for job %q: %w", fixture.Title, err)
		}
	}
	return nil
}
