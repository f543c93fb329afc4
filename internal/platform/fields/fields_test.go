package fields

import (
	"strings"
	"testing"

	"pet-health-tracker/internal/platform/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	v, err := Required("name", "  Rex ", 100, "Name is required")
	require.NoError(t, err)
	assert.Equal(t, "Rex", v)

	_, err = Required("name", "   ", 100, "Name is required")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.EqualError(t, err, "Name is required")

	_, err = Required("species", strings.Repeat("a", 51), 50, "x")
	assert.EqualError(t, err, "species must be at most 50 characters")
}

func TestRequired_CountsRunes(t *testing.T) {
	_, err := Required("name", strings.Repeat("ñ", 10), 10, "x")
	assert.NoError(t, err)
}

func TestOptional(t *testing.T) {
	v, err := Optional("breed", nil, 100)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = Optional("breed", Ptr("  "), 100)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = Optional("breed", Ptr(" Labrador "), 100)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Labrador", *v)

	_, err = Optional("color", Ptr(strings.Repeat("a", 51)), 50)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	v, err = Optional("notes", Ptr(strings.Repeat("a", 10000)), Unlimited)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Len(t, *v, 10000)
}
