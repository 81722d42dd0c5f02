package ledger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindMatching(t *testing.T) {
	err := notFoundf("portfolio %d not found", 42)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "portfolio 42 not found")

	var lerr *Error
	assert.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindNotFound, lerr.Kind)
}

func TestErrorKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("closing position: %w", boundsf("still locked"))

	assert.ErrorIs(t, wrapped, ErrBoundsViolation)

	var lerr *Error
	assert.True(t, errors.As(wrapped, &lerr))
	assert.Equal(t, KindBoundsViolation, lerr.Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "UNAUTHORIZED", KindUnauthorized.String())
	assert.Equal(t, "INVALID_STATE", KindInvalidState.String())
	assert.Equal(t, "INVARIANT_VIOLATION", KindInvariantViolation.String())
	assert.Equal(t, "BOUNDS_VIOLATION", KindBoundsViolation.String())
	assert.Equal(t, "NOT_FOUND", KindNotFound.String())
}
