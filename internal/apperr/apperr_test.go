package apperr

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindOfWrapped(t *testing.T) {
	err := NotFound("student with id %d was not found", 7)
	require.Equal(t, KindNotFound, KindOf(err))
	require.Equal(t, "student with id 7 was not found", err.Error())

	wrapped := errors.Wrap(err, "Failed to load student")
	require.True(t, Is(wrapped, KindNotFound))
	require.False(t, Is(wrapped, KindNoMarks))

	stdWrapped := fmt.Errorf("handler: %w", InvalidReference("subject with id %d does not exist", 3))
	require.Equal(t, KindInvalidReference, KindOf(stdWrapped))
}

func TestKindOfForeignError(t *testing.T) {
	require.Equal(t, KindUnknown, KindOf(errors.New("connection refused")))
	require.False(t, Is(nil, KindUnknown))
	require.Equal(t, "internal", KindUnknown.String())
}

func TestKindNames(t *testing.T) {
	require.Equal(t, "not_found", KindNotFound.String())
	require.Equal(t, "no_marks", KindNoMarks.String())
	require.Equal(t, "invalid_reference", KindInvalidReference.String())
	require.Equal(t, "validation_failed", KindValidationFailed.String())
}
