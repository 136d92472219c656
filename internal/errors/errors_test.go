package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsInnerCode(t *testing.T) {
	base := ValidationError("quarter 3 missing")
	wrapped := Wrapf(base, "load year %s", "2024")

	assert.Equal(t, CodeValidationError, GetCode(wrapped))
	assert.True(t, IsAppError(wrapped))
	assert.Equal(t, "load year 2024: quarter 3 missing", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("disk gone"), "open content")
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestGetCodeThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("year 1999"))
	assert.Equal(t, CodeNotFound, GetCode(err))
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(nil, CodeNotFound))
	assert.Equal(t, CodeInternalError, GetCode(fmt.Errorf("plain")))
}
