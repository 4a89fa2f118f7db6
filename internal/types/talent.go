// Package types provides type definitions for structured data used throughout the talenthub system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// ServiceCategory identifies the market segment a talent or job belongs to.
type ServiceCategory string

// Known service categories.
const (
	CategoryITO        ServiceCategory = "ITO"        // IT outsourcing
	CategoryBPO        ServiceCategory = "BPO"        // business process outsourcing
	CategoryAI         ServiceCategory = "AI"         // AI / machine learning
	CategoryAutomation ServiceCategory = "AUTOMATION" // process automation
	CategoryAnalytics  ServiceCategory = "ANALYTICS"  // data analytics
)

// ExperienceLevel is an ordinal seniority level.
type ExperienceLevel string

// Experience levels, ordered from most junior to most senior.
const (
	LevelJunior    ExperienceLevel = "JUNIOR"
	LevelMid       ExperienceLevel = "MID"
	LevelSenior    ExperienceLevel = "SENIOR"
	LevelLead      ExperienceLevel = "LEAD"
	LevelArchitect ExperienceLevel = "ARCHITECT"
)

// experienceRanks is the explicit total order over experience levels.
// Ranks are compared numerically; an unknown level ranks as 0.
var experienceRanks = map[ExperienceLevel]int{
	LevelJunior:    1,
	LevelMid:       2,
	LevelSenior:    3,
	LevelLead:      4,
	LevelArchitect: 5,
}

// Rank returns the ordinal rank of the level (JUNIOR=1 .. ARCHITECT=5),
// or 0 for an unknown level.
func (l ExperienceLevel) Rank() int {
	return experienceRanks[l]
}

// Valid reports whether the level is one of the known experience levels.
func (l ExperienceLevel) Valid() bool {
	return experienceRanks[l] != 0
}

// EngagementType is the employment arrangement for a job or a talent preference.
type EngagementType string

// Known engagement types.
const (
	EngagementFullTime  EngagementType = "FULL_TIME"
	EngagementPartTime  EngagementType = "PART_TIME"
	EngagementContract  EngagementType = "CONTRACT"
	EngagementFreelance EngagementType = "FREELANCE"
)

// TalentStatus is the moderation state of a talent profile.
type TalentStatus string

// Talent lifecycle statuses.
const (
	TalentPending  TalentStatus = "PENDING"
	TalentApproved TalentStatus = "APPROVED"
	TalentRejected TalentStatus = "REJECTED"
	TalentArchived TalentStatus = "ARCHIVED"
)

// Talent represents a talent profile as consumed by the matching engine.
type Talent struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Categories  OneOrMany       `json:"categories"`
	Skills      []string        `json:"skills"`
	Experience  ExperienceLevel `json:"experience"`
	Engagements OneOrMany       `json:"engagements,omitempty"` // empty means no preference
	Status      TalentStatus    `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// HasEngagementPreference reports whether the talent declared any
// engagement preference. An empty preference scores as neutral.
func (t *Talent) HasEngagementPreference() bool {
	return len(t.Engagements) > 0
}
