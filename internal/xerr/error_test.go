package xerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	err := Errorf("bad vertex %d", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad vertex 3")
}

func TestWrapf(t *testing.T) {
	assert.Nil(t, Wrapf(nil, "context"))

	base := Errorf("base failure")
	wrapped := Wrapf(base, "while doing %s", "something")
	require.Error(t, wrapped)
	assert.Contains(t, wrapped.Error(), "while doing something")
	assert.Contains(t, wrapped.Error(), "base failure")
}
