package apperr

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	assert.Equal(t, "post with ID 42 not found", NotFound("post", 42).Error())
	assert.Equal(t, "author u1 not found", AuthorNotResolved("u1").Error())

	cause := errors.New("connection refused")
	assert.Equal(t, "post store unavailable: connection refused", Upstream("post store", cause).Error())
}

func TestCodeOf_WrappedChain(t *testing.T) {
	err := fmt.Errorf("compose feed: %w", AuthorNotResolved("u1"))

	assert.Equal(t, CodeAuthorNotResolved, CodeOf(err))
	assert.True(t, Is(err, CodeAuthorNotResolved))
	assert.False(t, Is(err, CodeNotFound))
}

func TestCodeOf_PlainError(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(errors.New("boom")))
	assert.False(t, Is(nil, CodeNotFound))
}

func TestUpstream_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := Upstream("identity provider", cause)

	assert.ErrorIs(t, err, cause)
}

func TestThrottled_RetryAfter(t *testing.T) {
	err := Throttled(12 * time.Second)

	var e *Error
	assert.True(t, errors.As(error(err), &e))
	assert.Equal(t, CodeThrottled, e.Code)
	assert.Equal(t, 12*time.Second, e.RetryAfter)
}
