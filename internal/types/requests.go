package types

import (
	"github.com/go-playground/validator/v10"
)

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateTalentRequest represents the request to register a talent profile.
// Categories and engagements accept either a single string or an array.
type CreateTalentRequest struct {
	Name        string          `json:"name" validate:"required,min=1"`
	Categories  OneOrMany       `json:"categories" validate:"required,min=1,dive,required"`
	Skills      []string        `json:"skills" validate:"required,min=1,dive,required"`
	Experience  ExperienceLevel `json:"experience" validate:"required,oneof=JUNIOR MID SENIOR LEAD ARCHITECT"`
	Engagements OneOrMany       `json:"engagements,omitempty" validate:"omitempty,dive,oneof=FULL_TIME PART_TIME CONTRACT FREELANCE"`
}

// CreateJobRequest represents the request to create a job posting.
type CreateJobRequest struct {
	Title      string          `json:"title" validate:"required,min=1"`
	Category   ServiceCategory `json:"category" validate:"required"`
	Skills     []string        `json:"skills" validate:"required,dive,required"`
	Engagement EngagementType  `json:"engagement" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT FREELANCE"`
	Experience ExperienceLevel `json:"experience,omitempty" validate:"omitempty,oneof=JUNIOR MID SENIOR LEAD ARCHITECT"`
}

// UpdateStatusRequest represents a status change for a talent or job.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateApplicationRequest represents a talent applying (or being matched)
// to a job. The score is computed server-side at creation time.
type CreateApplicationRequest struct {
	TalentID string `json:"talent_id" validate:"required,uuid"`
}

// TransitionRequest represents a single lifecycle action with an optional
// free-text note.
type TransitionRequest struct {
	Note string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// BulkTransitionRequest applies one action to many talents for one job.
type BulkTransitionRequest struct {
	Action    string   `json:"action" validate:"required,oneof=SHORTLIST HIRE REJECT"`
	TalentIDs []string `json:"talent_ids" validate:"required,min=1,dive,uuid"`
	Note      string   `json:"note,omitempty" validate:"omitempty,max=500"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateTalentRequest using the validator.
func (r *CreateTalentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateStatusRequest using the validator.
func (r *UpdateStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateApplicationRequest using the validator.
func (r *CreateApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TransitionRequest using the validator.
func (r *TransitionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BulkTransitionRequest using the validator.
func (r *BulkTransitionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
