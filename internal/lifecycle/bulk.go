package lifecycle

import (
	"time"

	"github.com/google/uuid"

	"github.com/mikhail/talenthub/internal/types"
)

// BulkResult reports the outcome of one item of a bulk action. A batch is
// not atomic across items: each application transitions or fails on its
// own, and callers receive the full per-item list rather than a collapsed
// outcome.
type BulkResult struct {
	TalentID    uuid.UUID
	Application types.Application
	Event       AuditEvent
	Err         error
}

// OK reports whether the item's transition succeeded.
func (r *BulkResult) OK() bool {
	return r.Err == nil
}

// BulkTransition applies one action to many applications against a single
// job. Items that fail (invalid transition, oversized note) are reported in
// place; successful items carry the new application state and its audit
// event. All items share the same timestamp.
func BulkTransition(apps []types.Application, action Action, note string, now time.Time) []BulkResult {
	results := make([]BulkResult, 0, len(apps))
	for _, app := range apps {
		next, event, err := Transition(app, action, note, now)
		results = append(results, BulkResult{
			TalentID:    app.TalentID,
			Application: next,
			Event:       event,
			Err:         err,
		})
	}
	return results
}
