package types

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the publication state of a job posting.
type JobStatus string

// Job lifecycle statuses.
const (
	JobDraft     JobStatus = "DRAFT"
	JobPending   JobStatus = "PENDING"
	JobPublished JobStatus = "PUBLISHED"
	JobArchived  JobStatus = "ARCHIVED"
	JobClosed    JobStatus = "CLOSED"
)

// Job represents a job posting as consumed by the matching engine.
type Job struct {
	ID         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	Category   ServiceCategory `json:"category"`
	Skills     []string        `json:"skills"` // required skills
	Engagement EngagementType  `json:"engagement"`
	Experience ExperienceLevel `json:"experience,omitempty"` // empty means no target level
	Status     JobStatus       `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// HasTargetExperience reports whether the posting names a target
// experience level. Without one, experience scores as neutral.
func (j *Job) HasTargetExperience() bool {
	return j.Experience != ""
}

// AcceptsApplications reports whether the posting is open for new
// applications. Only published jobs accept them.
func (j *Job) AcceptsApplications() bool {
	return j.Status == JobPublished
}
