package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/errors"
)

func TestContractError(t *testing.T) {
	err := errors.NewContractError("Compare", "claimed field map is nil")

	assert.EqualError(t, err, "Compare: claimed field map is nil")
	assert.True(t, stderrors.Is(err, errors.ErrContract))
	assert.True(t, errors.IsContract(err))
	assert.False(t, errors.IsValidationError(err))
}

func TestValidationError(t *testing.T) {
	err := errors.NewValidationError("fuzzy_threshold", 1.5, "must be within [0, 1]")

	assert.EqualError(t, err, "validation failed for field fuzzy_threshold: must be within [0, 1]")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))
	assert.True(t, errors.IsValidationError(err))

	bare := errors.NewValidationError("", nil, "empty table")
	assert.EqualError(t, bare, "validation failed: empty table")
}

func TestTableError(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := errors.NewTableError("org_aliases", cause)

	assert.True(t, stderrors.Is(err, errors.ErrTableInvalid))
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.Contains(t, err.Error(), "org_aliases")
}
