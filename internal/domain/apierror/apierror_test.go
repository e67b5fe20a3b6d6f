package apierror

import (
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestFromStatus_KindMapping(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{400, KindValidation},
		{401, KindUnauthorized},
		{403, KindForbidden},
		{404, KindNotFound},
		{409, KindConflict},
		{422, KindValidation},
		{500, KindServer},
		{503, KindServer},
		{418, KindUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FromStatus(tt.status, "").Kind, "status %d", tt.status)
	}
}

func TestFromStatus_EmptyMessageFallsBackToStatusText(t *testing.T) {
	assert.Equal(t, "Not Found", FromStatus(404, "").Message)
	assert.Equal(t, "no such product", FromStatus(404, "no such product").Message)
}

func TestKindOf_Wrapped(t *testing.T) {
	err := errors.Wrap(FromStatus(401, "expired"), "fetch profile")
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "expired", MessageOf(FromStatus(401, "expired")))
	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
}

func TestIsAuthFailure(t *testing.T) {
	assert.True(t, IsAuthFailure(FromStatus(401, "Token has expired")))
	assert.True(t, IsAuthFailure(errors.New("request failed with status code 401")))
	assert.True(t, IsAuthFailure(errors.New("Unauthorized access")))
	assert.False(t, IsAuthFailure(FromStatus(403, "admin only")))
	assert.False(t, IsAuthFailure(errors.New("connection refused")))
	assert.False(t, IsAuthFailure(nil))
}
