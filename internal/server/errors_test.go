package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mikhail/talenthub/internal/db"
	"github.com/mikhail/talenthub/internal/lifecycle"
	"github.com/mikhail/talenthub/internal/types"
)

func TestErrInvalidCredentials(t *testing.T) {
	err := &ErrInvalidCredentials{}
	assert.Equal(t, "invalid email or password", err.Error())
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(err))
}

func TestErrNotFound(t *testing.T) {
	id := uuid.New()
	err := &ErrNotFound{Resource: "talent", ID: id}
	assert.Equal(t, "talent not found: "+id.String(), err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrJobNotOpen(t *testing.T) {
	id := uuid.New()
	err := &ErrJobNotOpen{JobID: id}
	assert.Equal(t, "job is not published: "+id.String(), err.Error())
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
}

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Message: "talent_id is required"}
	assert.Equal(t, "validation error: talent_id is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrInvalidCredentials",
			err:      &ErrInvalidCredentials{},
			expected: http.StatusUnauthorized,
		},
		{
			name:     "ErrNotFound",
			err:      &ErrNotFound{Resource: "job", ID: uuid.New()},
			expected: http.StatusNotFound,
		},
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Message: "bad input"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrNoteTooLong",
			err:      &lifecycle.ErrNoteTooLong{Length: 900},
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrJobNotOpen",
			err:      &ErrJobNotOpen{JobID: uuid.New()},
			expected: http.StatusConflict,
		},
		{
			name:     "ErrApplicationExists",
			err:      &db.ErrApplicationExists{JobID: uuid.New(), TalentID: uuid.New()},
			expected: http.StatusConflict,
		},
		{
			name:     "ErrStatusConflict",
			err:      &db.ErrStatusConflict{ID: uuid.New()},
			expected: http.StatusConflict,
		},
		{
			name:     "ErrInvalidTransition",
			err:      &lifecycle.ErrInvalidTransition{From: types.ApplicationHired, Action: lifecycle.ActionShortlist},
			expected: http.StatusConflict,
		},
		{
			name:     "wrapped error keeps its status",
			err:      fmt.Errorf("saving transition: %w", &db.ErrStatusConflict{ID: uuid.New()}),
			expected: http.StatusConflict,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
