package lifecycle

import (
	"time"

	"github.com/mikhail/talenthub/internal/types"
)

// MaxNoteLength caps free-text transition notes.
const MaxNoteLength = 500

// Action is an admin-driven transition request.
type Action string

// Supported actions.
const (
	ActionShortlist Action = "SHORTLIST"
	ActionHire      Action = "HIRE"
	ActionReject    Action = "REJECT"
)

// targets maps each action to the status it enters.
var targets = map[Action]types.ApplicationStatus{
	ActionShortlist: types.ApplicationShortlisted,
	ActionHire:      types.ApplicationHired,
	ActionReject:    types.ApplicationRejected,
}

// allowed lists the statuses an action may be applied from.
// HIRED and REJECTED are terminal: nothing transitions out of them.
var allowed = map[Action][]types.ApplicationStatus{
	ActionShortlist: {types.ApplicationNew},
	ActionHire:      {types.ApplicationShortlisted},
	ActionReject:    {types.ApplicationNew, types.ApplicationShortlisted},
}

// AuditEvent describes an admin action for the audit collaborator to
// persist. The lifecycle package itself stores nothing.
type AuditEvent struct {
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// AllowedFrom returns the statuses the action may be applied from.
// The returned slice is a copy.
func AllowedFrom(action Action) []types.ApplicationStatus {
	statuses := allowed[action]
	out := make([]types.ApplicationStatus, len(statuses))
	copy(out, statuses)
	return out
}

// Target returns the status the action enters, and whether the action is known.
func Target(action Action) (types.ApplicationStatus, bool) {
	status, ok := targets[action]
	return status, ok
}

// Transition applies an admin action to an application and returns the new
// application state plus the audit event the caller must persist. The input
// application is taken by value and never mutated; on error the zero-delta
// original is implicitly preserved.
//
// The matching timestamp (shortlisted_at / hired_at) is set to now only on
// the transition that enters the state and is never overwritten once set.
func Transition(app types.Application, action Action, note string, now time.Time) (types.Application, AuditEvent, error) {
	if len(note) > MaxNoteLength {
		return app, AuditEvent{}, &ErrNoteTooLong{Length: len(note)}
	}

	target, ok := targets[action]
	if !ok {
		return app, AuditEvent{}, &ErrInvalidTransition{From: app.Status, Action: action}
	}
	if !transitionAllowed(app.Status, action) {
		return app, AuditEvent{}, &ErrInvalidTransition{From: app.Status, Action: action}
	}

	previous := app.Status
	app.Status = target
	app.UpdatedAt = now
	if note != "" {
		app.Note = note
	}

	switch target {
	case types.ApplicationShortlisted:
		if app.ShortlistedAt == nil {
			ts := now
			app.ShortlistedAt = &ts
		}
	case types.ApplicationHired:
		if app.HiredAt == nil {
			ts := now
			app.HiredAt = &ts
		}
	}

	event := AuditEvent{
		Action:       string(action) + "_APPLICATION",
		ResourceType: "APPLICATION",
		ResourceID:   app.ID.String(),
		Metadata: map[string]any{
			"job_id":    app.JobID.String(),
			"talent_id": app.TalentID.String(),
			"from":      string(previous),
			"to":        string(target),
		},
	}
	if note != "" {
		event.Metadata["note"] = note
	}

	return app, event, nil
}

// Shortlist moves a NEW application to SHORTLISTED.
func Shortlist(app types.Application, note string, now time.Time) (types.Application, AuditEvent, error) {
	return Transition(app, ActionShortlist, note, now)
}

// Hire moves a SHORTLISTED application to HIRED.
func Hire(app types.Application, note string, now time.Time) (types.Application, AuditEvent, error) {
	return Transition(app, ActionHire, note, now)
}

// Reject moves a NEW or SHORTLISTED application to REJECTED.
func Reject(app types.Application, note string, now time.Time) (types.Application, AuditEvent, error) {
	return Transition(app, ActionReject, note, now)
}

func transitionAllowed(from types.ApplicationStatus, action Action) bool {
	for _, status := range allowed[action] {
		if status == from {
			return true
		}
	}
	return false
}
