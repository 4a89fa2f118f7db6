package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mikhail/talenthub/internal/lifecycle"
)

// AuditLog is a persisted admin action. The table is append-only: the
// application never updates or deletes rows.
type AuditLog struct {
	ID           uuid.UUID      `json:"id"`
	AdminID      *uuid.UUID     `json:"admin_id,omitempty"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// InsertAuditEvent persists an audit event descriptor emitted by the
// lifecycle component, attributed to the acting admin when known.
func (db *DB) InsertAuditEvent(ctx context.Context, adminID *uuid.UUID, event lifecycle.AuditEvent) error {
	var metadata []byte
	if event.Metadata != nil {
		var err error
		metadata, err = json.Marshal(event.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal audit metadata: %w", err)
		}
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO audit_logs (admin_id, action, resource_type, resource_id, metadata)
		 VALUES ($1, $2, $3, $4, $5)`,
		adminID, event.Action, event.ResourceType, event.ResourceID, metadata,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}
	return nil
}

// ListAuditEvents retrieves audit events for a resource, newest first.
func (db *DB) ListAuditEvents(ctx context.Context, resourceType, resourceID string, limit int) ([]AuditLog, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, admin_id, action, resource_type, resource_id, metadata, created_at
		 FROM audit_logs
		 WHERE resource_type = $1 AND resource_id = $2
		 ORDER BY created_at DESC LIMIT $3`,
		resourceType, resourceID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	defer rows.Close()

	var logs []AuditLog
	for rows.Next() {
		var entry AuditLog
		var metadata []byte
		if err := rows.Scan(&entry.ID, &entry.AdminID, &entry.Action, &entry.ResourceType,
			&entry.ResourceID, &metadata, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal audit metadata: %w", err)
			}
		}
		logs = append(logs, entry)
	}
	return logs, nil
}
