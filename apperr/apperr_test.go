package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsSetKindAndStatus(t *testing.T) {
	cause := errors.New("boom")

	cases := []struct {
		err        *Error
		wantKind   Kind
		wantStatus int
	}{
		{Validation("invalid_purpose", "bad purpose"), KindValidation, http.StatusBadRequest},
		{NotFound("invite_not_found", "missing"), KindNotFound, http.StatusNotFound},
		{Unauthorized("unauthorized", "no"), KindAuthorization, http.StatusUnauthorized},
		{Conflict("active_engagement", "busy"), KindConflict, http.StatusBadRequest},
		{External(http.StatusBadRequest, "notification_failed", "oops", cause), KindExternal, http.StatusBadRequest},
		{External(http.StatusInternalServerError, "scheduling_failed", "oops", cause), KindExternal, http.StatusInternalServerError},
		{Internal("update_invite_error", cause), KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.wantKind, tc.err.Kind, tc.err.Code)
		assert.Equal(t, tc.wantStatus, tc.err.Status, tc.err.Code)
	}
}

func TestInternalHidesCauseFromClientMessage(t *testing.T) {
	err := Internal("create_invite_error", errors.New("dynamodb: connection reset"))
	assert.NotContains(t, err.Message, "dynamodb")
	assert.Contains(t, err.Error(), "dynamodb")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("sendgrid: 500")
	err := External(http.StatusBadRequest, "notification_failed", "oops", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(Conflict("already_accepted", "done")))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("outer: %w", Conflict("already_accepted", "done"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}
