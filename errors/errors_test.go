package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapfPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrUnknownField, "Discrete: field %q", "shape")

	assert.True(t, Is(err, ErrUnknownField))
	assert.Contains(t, err.Error(), `field "shape"`)
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrMissingField,
		ErrDuplicateField,
		ErrUnknownField,
		ErrUnknownKind,
		ErrUnsupportedSample,
		ErrEmptySpace,
		ErrDimMismatch,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "sentinel %d must not match sentinel %d", i, j)
		}
	}
}

func TestAssertionFailedf(t *testing.T) {
	err := AssertionFailedf("invariant broken: %d", 42)

	require.NotNil(t, err)
	assert.True(t, HasAssertionFailure(err))
	assert.Contains(t, err.Error(), "invariant broken: 42")
}
