package lifecycle

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikhail/talenthub/internal/types"
)

func newApplication(status types.ApplicationStatus) types.Application {
	return types.Application{
		ID:       uuid.New(),
		JobID:    uuid.New(),
		TalentID: uuid.New(),
		Status:   status,
		Score:    72,
	}
}

func TestTransition_ShortlistFromNew(t *testing.T) {
	app := newApplication(types.ApplicationNew)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	next, event, err := Transition(app, ActionShortlist, "strong profile", now)
	require.NoError(t, err)

	assert.Equal(t, types.ApplicationShortlisted, next.Status)
	require.NotNil(t, next.ShortlistedAt)
	assert.Equal(t, now, *next.ShortlistedAt)
	assert.Nil(t, next.HiredAt)
	assert.Equal(t, "strong profile", next.Note)

	assert.Equal(t, "SHORTLIST_APPLICATION", event.Action)
	assert.Equal(t, "APPLICATION", event.ResourceType)
	assert.Equal(t, app.ID.String(), event.ResourceID)
	assert.Equal(t, "NEW", event.Metadata["from"])
	assert.Equal(t, "SHORTLISTED", event.Metadata["to"])
	assert.Equal(t, "strong profile", event.Metadata["note"])

	// Input is untouched (value semantics).
	assert.Equal(t, types.ApplicationNew, app.Status)
	assert.Nil(t, app.ShortlistedAt)
}

func TestTransition_HirePreservesShortlistedAt(t *testing.T) {
	app := newApplication(types.ApplicationNew)
	shortlistTime := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	hireTime := shortlistTime.Add(48 * time.Hour)

	shortlisted, _, err := Transition(app, ActionShortlist, "", shortlistTime)
	require.NoError(t, err)

	hired, event, err := Transition(shortlisted, ActionHire, "", hireTime)
	require.NoError(t, err)

	assert.Equal(t, types.ApplicationHired, hired.Status)
	require.NotNil(t, hired.HiredAt)
	assert.Equal(t, hireTime, *hired.HiredAt)
	// shortlisted_at is set once and never overwritten.
	require.NotNil(t, hired.ShortlistedAt)
	assert.Equal(t, shortlistTime, *hired.ShortlistedAt)
	assert.Equal(t, "HIRE_APPLICATION", event.Action)
}

func TestTransition_RejectFromNewAndShortlisted(t *testing.T) {
	now := time.Now()

	for _, from := range []types.ApplicationStatus{types.ApplicationNew, types.ApplicationShortlisted} {
		app := newApplication(from)
		next, event, err := Transition(app, ActionReject, "not a fit", now)
		require.NoError(t, err, "reject from %s", from)
		assert.Equal(t, types.ApplicationRejected, next.Status)
		assert.Equal(t, "REJECT_APPLICATION", event.Action)
	}
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		from   types.ApplicationStatus
		action Action
	}{
		{"reject hired", types.ApplicationHired, ActionReject},
		{"hire rejected", types.ApplicationRejected, ActionHire},
		{"shortlist hired", types.ApplicationHired, ActionShortlist},
		{"shortlist rejected", types.ApplicationRejected, ActionShortlist},
		{"hire hired", types.ApplicationHired, ActionHire},
		{"reject rejected", types.ApplicationRejected, ActionReject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApplication(tt.from)
			ts := now.Add(-time.Hour)
			app.ShortlistedAt = &ts

			next, _, err := Transition(app, tt.action, "", now)

			var invalid *ErrInvalidTransition
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.from, invalid.From)
			assert.Equal(t, tt.action, invalid.Action)

			// Status and timestamps come back unmodified.
			assert.Equal(t, tt.from, next.Status)
			assert.Equal(t, app.ShortlistedAt, next.ShortlistedAt)
			assert.Equal(t, app.HiredAt, next.HiredAt)
		})
	}
}

func TestTransition_NoSelfLoops(t *testing.T) {
	now := time.Now()

	app := newApplication(types.ApplicationShortlisted)
	_, _, err := Transition(app, ActionShortlist, "", now)
	var invalid *ErrInvalidTransition
	assert.ErrorAs(t, err, &invalid)
}

func TestTransition_HireRequiresShortlist(t *testing.T) {
	app := newApplication(types.ApplicationNew)
	_, _, err := Transition(app, ActionHire, "", time.Now())
	var invalid *ErrInvalidTransition
	assert.ErrorAs(t, err, &invalid)
}

func TestTransition_UnknownAction(t *testing.T) {
	app := newApplication(types.ApplicationNew)
	_, _, err := Transition(app, Action("PROMOTE"), "", time.Now())
	var invalid *ErrInvalidTransition
	assert.ErrorAs(t, err, &invalid)
}

func TestTransition_NoteTooLong(t *testing.T) {
	app := newApplication(types.ApplicationNew)
	note := strings.Repeat("x", MaxNoteLength+1)

	next, _, err := Transition(app, ActionShortlist, note, time.Now())

	var tooLong *ErrNoteTooLong
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, MaxNoteLength+1, tooLong.Length)
	assert.Equal(t, types.ApplicationNew, next.Status)
}

func TestTransition_NoteAtLimit(t *testing.T) {
	app := newApplication(types.ApplicationNew)
	note := strings.Repeat("x", MaxNoteLength)

	next, _, err := Transition(app, ActionShortlist, note, time.Now())
	require.NoError(t, err)
	assert.Equal(t, note, next.Note)
}

func TestTransition_EmptyNoteOmittedFromMetadata(t *testing.T) {
	app := newApplication(types.ApplicationNew)

	_, event, err := Transition(app, ActionShortlist, "", time.Now())
	require.NoError(t, err)
	assert.NotContains(t, event.Metadata, "note")
}

func TestNamedActions(t *testing.T) {
	now := time.Now()

	shortlisted, _, err := Shortlist(newApplication(types.ApplicationNew), "", now)
	require.NoError(t, err)
	assert.Equal(t, types.ApplicationShortlisted, shortlisted.Status)

	hired, _, err := Hire(shortlisted, "", now)
	require.NoError(t, err)
	assert.Equal(t, types.ApplicationHired, hired.Status)

	rejected, _, err := Reject(newApplication(types.ApplicationNew), "", now)
	require.NoError(t, err)
	assert.Equal(t, types.ApplicationRejected, rejected.Status)
}

func TestAllowedFrom_ReturnsCopy(t *testing.T) {
	first := AllowedFrom(ActionReject)
	require.Len(t, first, 2)
	first[0] = types.ApplicationHired

	second := AllowedFrom(ActionReject)
	assert.Equal(t, types.ApplicationNew, second[0])
}

func TestTarget(t *testing.T) {
	status, ok := Target(ActionHire)
	assert.True(t, ok)
	assert.Equal(t, types.ApplicationHired, status)

	_, ok = Target(Action("PROMOTE"))
	assert.False(t, ok)
}
