package lifecycle

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikhail/talenthub/internal/types"
)

func TestBulkTransition_PartialSuccess(t *testing.T) {
	jobID := uuid.New()
	now := time.Now()

	fresh := types.Application{ID: uuid.New(), JobID: jobID, TalentID: uuid.New(), Status: types.ApplicationNew}
	alreadyHired := types.Application{ID: uuid.New(), JobID: jobID, TalentID: uuid.New(), Status: types.ApplicationHired}
	alsoFresh := types.Application{ID: uuid.New(), JobID: jobID, TalentID: uuid.New(), Status: types.ApplicationNew}

	results := BulkTransition([]types.Application{fresh, alreadyHired, alsoFresh}, ActionShortlist, "batch", now)
	require.Len(t, results, 3)

	assert.True(t, results[0].OK())
	assert.Equal(t, fresh.TalentID, results[0].TalentID)
	assert.Equal(t, types.ApplicationShortlisted, results[0].Application.Status)
	assert.Equal(t, "SHORTLIST_APPLICATION", results[0].Event.Action)

	// The failed item is reported in place without affecting its neighbors.
	assert.False(t, results[1].OK())
	var invalid *ErrInvalidTransition
	assert.ErrorAs(t, results[1].Err, &invalid)
	assert.Equal(t, types.ApplicationHired, results[1].Application.Status)

	assert.True(t, results[2].OK())
	assert.Equal(t, types.ApplicationShortlisted, results[2].Application.Status)
}

func TestBulkTransition_AllFail(t *testing.T) {
	apps := []types.Application{
		{ID: uuid.New(), TalentID: uuid.New(), Status: types.ApplicationRejected},
		{ID: uuid.New(), TalentID: uuid.New(), Status: types.ApplicationHired},
	}

	results := BulkTransition(apps, ActionHire, "", time.Now())
	require.Len(t, results, 2)
	for _, r := range results {
		assert.False(t, r.OK())
	}
}

func TestBulkTransition_SharedTimestamp(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	apps := []types.Application{
		{ID: uuid.New(), TalentID: uuid.New(), Status: types.ApplicationNew},
		{ID: uuid.New(), TalentID: uuid.New(), Status: types.ApplicationNew},
	}

	results := BulkTransition(apps, ActionShortlist, "", now)
	for _, r := range results {
		require.True(t, r.OK())
		require.NotNil(t, r.Application.ShortlistedAt)
		assert.Equal(t, now, *r.Application.ShortlistedAt)
	}
}

func TestBulkTransition_Empty(t *testing.T) {
	results := BulkTransition(nil, ActionReject, "", time.Now())
	assert.Empty(t, results)
}
