package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Kind: ErrNotUnitLength, Index: 3}
	assert.Contains(t, err.Error(), "vertex 3")
	assert.Contains(t, err.Error(), "unit length")
}

func TestValidationErrorMessageWithOtherIndex(t *testing.T) {
	err := &ValidationError{Kind: ErrDuplicateVertices, Index: 1, OtherIndex: 5}
	assert.Contains(t, err.Error(), "vertex 1")
	assert.Contains(t, err.Error(), "vertex 5")
}
