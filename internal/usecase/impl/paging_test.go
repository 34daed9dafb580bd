package impl

import (
	"testing"

	domainerrors "stockhub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageBounds_FirstPage(t *testing.T) {
	offset, totalPages, err := pageBounds(25, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 3, totalPages)
}

func TestPageBounds_LastPage(t *testing.T) {
	offset, totalPages, err := pageBounds(25, 3, 10)

	require.NoError(t, err)
	assert.Equal(t, 20, offset)
	assert.Equal(t, 3, totalPages)
}

func TestPageBounds_PageBeyondEnd(t *testing.T) {
	_, _, err := pageBounds(25, 4, 10)

	assert.ErrorIs(t, err, domainerrors.ErrPageOutOfRange)
}

func TestPageBounds_EmptyCollectionServesPageOne(t *testing.T) {
	offset, totalPages, err := pageBounds(0, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 0, totalPages)
}

func TestPageBounds_ExactMultiple(t *testing.T) {
	offset, totalPages, err := pageBounds(30, 3, 10)

	require.NoError(t, err)
	assert.Equal(t, 20, offset)
	assert.Equal(t, 3, totalPages)
}

func TestPageBounds_ZeroPageTreatedAsFirst(t *testing.T) {
	offset, _, err := pageBounds(5, 0, 10)

	require.NoError(t, err)
	assert.Equal(t, 0, offset)
}
