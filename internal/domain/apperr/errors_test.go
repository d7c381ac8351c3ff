package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsValidation(Validation("bad input")))
	assert.True(t, IsNotFound(NotFound("missing")))
	assert.True(t, IsAuthentication(Authentication("nope")))
	assert.True(t, IsStorage(Storage("write failed", errors.New("io"))))

	assert.False(t, IsValidation(NotFound("missing")))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsStorage(errors.New("plain")))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("saving project: %w", Storage("write failed", errors.New("io")))
	assert.True(t, IsStorage(wrapped))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "missing", NotFound("missing").Error())
	assert.Equal(t, "write failed: io", Storage("write failed", errors.New("io")).Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("io")
	assert.ErrorIs(t, Storage("write failed", cause), cause)
}
