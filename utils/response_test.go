package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"indiecon_server/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, http.StatusCreated, "create_invite_success", "Invite created successfully.", map[string]string{"inviteId": "inv-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.ResponseType)
	assert.Equal(t, "create_invite_success", envelope.ResponseUniqueCode)
	assert.Equal(t, http.StatusCreated, envelope.ResponseCode)
	assert.NotEmpty(t, envelope.ResponseID)
	assert.Equal(t, map[string]interface{}{"inviteId": "inv-1"}, envelope.ResponsePayload)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, zap.NewNop().Sugar(), apperr.NotFound("invite_not_found", "Invite not found."))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.ResponseType)
	assert.Equal(t, "invite_not_found", envelope.ResponseUniqueCode)
	assert.Equal(t, "Invite not found.", envelope.ResponseMessage)
	assert.Equal(t, http.StatusNotFound, envelope.ResponseCode)
	assert.NotEmpty(t, envelope.ResponseID)
	assert.Nil(t, envelope.ResponsePayload)
}

func TestWriteError_NilLogger(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, nil, apperr.Validation("self_invite", "You can't invite yourself"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
