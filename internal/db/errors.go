package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// ErrApplicationExists indicates an application already exists for the
// (job, talent) pair. The UNIQUE (job_id, talent_id) constraint is the
// source of truth for the pair-uniqueness invariant.
type ErrApplicationExists struct {
	JobID    uuid.UUID
	TalentID uuid.UUID
}

func (e *ErrApplicationExists) Error() string {
	return fmt.Sprintf("application already exists for job %s and talent %s", e.JobID, e.TalentID)
}

// ErrStatusConflict indicates a guarded status update matched no rows: the
// record was not in any of the expected statuses, either because of an
// invalid request or because a concurrent writer got there first.
type ErrStatusConflict struct {
	ID uuid.UUID
}

func (e *ErrStatusConflict) Error() string {
	return fmt.Sprintf("application %s was not in an expected status", e.ID)
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
