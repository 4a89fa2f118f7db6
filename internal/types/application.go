package types

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

// Application review states. HIRED and REJECTED are terminal.
const (
	ApplicationNew         ApplicationStatus = "NEW"
	ApplicationShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationHired       ApplicationStatus = "HIRED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
)

// IsTerminal reports whether no further transition is defined out of the status.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationHired || s == ApplicationRejected
}

// MatchBreakdown holds the four weighted sub-scores of a match score.
// Each component and the total are integer percentages in [0,100].
// The components are rounded independently of the total, so re-weighting
// the reported components may not reproduce the reported total exactly.
type MatchBreakdown struct {
	SkillOverlap    int `json:"skill_overlap"`
	CategoryMatch   int `json:"category_match"`
	ExperienceMatch int `json:"experience_match"`
	EngagementMatch int `json:"engagement_match"`
	Total           int `json:"total"`
}

// Application links one talent to one job and tracks its review workflow.
// At most one application exists per (job, talent) pair; the persistence
// layer enforces the uniqueness.
type Application struct {
	ID            uuid.UUID         `json:"id"`
	JobID         uuid.UUID         `json:"job_id"`
	TalentID      uuid.UUID         `json:"talent_id"`
	Status        ApplicationStatus `json:"status"`
	Score         int               `json:"score"` // total captured at computation time
	Breakdown     MatchBreakdown    `json:"breakdown"`
	Note          string            `json:"note,omitempty"` // note from the most recent transition
	ShortlistedAt *time.Time        `json:"shortlisted_at,omitempty"`
	HiredAt       *time.Time        `json:"hired_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
