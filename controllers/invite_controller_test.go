package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"indiecon_server/apperr"
	"indiecon_server/middlewares"
	"indiecon_server/models"
	"indiecon_server/services"
	"indiecon_server/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubInviteAPI struct {
	createIn  services.CreateInviteInput
	createErr *apperr.Error

	detailsFounderID string
	detailsInviteID  string
	detailsResp      *models.InviteDetailsResponse
	detailsErr       *apperr.Error

	updateIn   services.UpdateInviteStatusInput
	updateResp *models.InviteDetailsResponse
	updateErr  *apperr.Error
}

func (s *stubInviteAPI) CreateInvite(_ context.Context, in services.CreateInviteInput) *apperr.Error {
	s.createIn = in
	return s.createErr
}

func (s *stubInviteAPI) GetInviteDetails(_ context.Context, founderID, inviteID string) (*models.InviteDetailsResponse, *apperr.Error) {
	s.detailsFounderID = founderID
	s.detailsInviteID = inviteID
	return s.detailsResp, s.detailsErr
}

func (s *stubInviteAPI) UpdateInviteStatus(_ context.Context, in services.UpdateInviteStatusInput) (*models.InviteDetailsResponse, *apperr.Error) {
	s.updateIn = in
	return s.updateResp, s.updateErr
}

func detailsResponse(status string) *models.InviteDetailsResponse {
	return &models.InviteDetailsResponse{
		InviteDetails:  models.InviteDetails{InviteID: "inv-1", InviteStatus: status},
		InviterDetails: models.PartyDetails{FounderID: "founder-a", FirstName: "Alice"},
		InviteeDetails: models.PartyDetails{FounderID: "founder-b", FirstName: "Bob"},
	}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Envelope {
	t.Helper()
	var envelope utils.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestCreateInviteHandler_Success(t *testing.T) {
	stub := &stubInviteAPI{}
	controller := &InviteController{Invites: stub, Logger: zap.NewNop().Sugar()}

	body := `{"inviteeId":"founder-b","purposeOfMeeting":"Discussing a potential integration partnership","slotA":1770000000000,"slotB":1770100000000,"proposedDurationMinutes":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invite/create", strings.NewReader(body))
	req = req.WithContext(middlewares.WithFounderID(req.Context(), "founder-a"))
	rec := httptest.NewRecorder()

	controller.CreateInviteHandler(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "success", envelope.ResponseType)
	assert.Equal(t, "create_invite_success", envelope.ResponseUniqueCode)

	// The inviter comes from the auth context, never from the body.
	assert.Equal(t, "founder-a", stub.createIn.InviterID)
	assert.Equal(t, "founder-b", stub.createIn.InviteeID)
	assert.Equal(t, int64(1770000000000), stub.createIn.SlotAMillis)
	assert.Equal(t, 30, stub.createIn.ProposedDurationMinutes)
}

func TestCreateInviteHandler_MalformedBody(t *testing.T) {
	controller := &InviteController{Invites: &stubInviteAPI{}, Logger: zap.NewNop().Sugar()}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invite/create", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	controller.CreateInviteHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "invalid_request_body", envelope.ResponseUniqueCode)
}

func TestCreateInviteHandler_ServiceError(t *testing.T) {
	stub := &stubInviteAPI{createErr: apperr.Conflict("invite_limit_reached", "You have exceeded the number of invites you can send in a day. Please try again tomorrow.")}
	controller := &InviteController{Invites: stub, Logger: zap.NewNop().Sugar()}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invite/create", strings.NewReader(`{"inviteeId":"founder-b"}`))
	req = req.WithContext(middlewares.WithFounderID(req.Context(), "founder-a"))
	rec := httptest.NewRecorder()

	controller.CreateInviteHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "error", envelope.ResponseType)
	assert.Equal(t, "invite_limit_reached", envelope.ResponseUniqueCode)
}

func TestGetInviteDetailsHandler(t *testing.T) {
	stub := &stubInviteAPI{detailsResp: detailsResponse(models.InviteStatusPending)}
	controller := &InviteController{Invites: stub, Logger: zap.NewNop().Sugar()}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invite/details/inv-1", nil)
	req = req.WithContext(middlewares.WithFounderID(req.Context(), "founder-a"))
	req = mux.SetURLVars(req, map[string]string{"inviteId": "inv-1"})
	rec := httptest.NewRecorder()

	controller.GetInviteDetailsHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "founder-a", stub.detailsFounderID)
	assert.Equal(t, "inv-1", stub.detailsInviteID)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "get_invite_details_success", envelope.ResponseUniqueCode)
	require.NotNil(t, envelope.ResponsePayload)
}

func TestUpdateInviteStatusHandler_AcceptWithBody(t *testing.T) {
	stub := &stubInviteAPI{updateResp: detailsResponse(models.InviteStatusAccepted)}
	controller := &InviteController{Invites: stub, Logger: zap.NewNop().Sugar()}

	body := `{"acceptedSlotId":"A","googleCode":"consent-code"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/invite/status/inv-1/accepted", strings.NewReader(body))
	req = req.WithContext(middlewares.WithFounderID(req.Context(), "founder-b"))
	req = mux.SetURLVars(req, map[string]string{"inviteId": "inv-1", "inviteStatus": "accepted"})
	rec := httptest.NewRecorder()

	controller.UpdateInviteStatusHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "founder-b", stub.updateIn.ActorFounderID)
	assert.Equal(t, "inv-1", stub.updateIn.InviteID)
	assert.Equal(t, "accepted", stub.updateIn.TargetStatus)
	assert.Equal(t, "A", stub.updateIn.AcceptedSlotID)
	assert.Equal(t, "consent-code", stub.updateIn.GoogleCode)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "update_invite_success", envelope.ResponseUniqueCode)
	assert.Equal(t, "Invite accepted successfully.", envelope.ResponseMessage)
}

func TestUpdateInviteStatusHandler_CancelWithoutBody(t *testing.T) {
	stub := &stubInviteAPI{updateResp: detailsResponse(models.InviteStatusCanceled)}
	controller := &InviteController{Invites: stub, Logger: zap.NewNop().Sugar()}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/invite/status/inv-1/canceled", nil)
	req = req.WithContext(middlewares.WithFounderID(req.Context(), "founder-a"))
	req = mux.SetURLVars(req, map[string]string{"inviteId": "inv-1", "inviteStatus": "canceled"})
	rec := httptest.NewRecorder()

	controller.UpdateInviteStatusHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "canceled", stub.updateIn.TargetStatus)
	assert.Empty(t, stub.updateIn.AcceptedSlotID)
}

func TestUpdateInviteStatusHandler_ServiceError(t *testing.T) {
	stub := &stubInviteAPI{updateErr: apperr.Unauthorized("unauthorized", "Unauthorized.")}
	controller := &InviteController{Invites: stub, Logger: zap.NewNop().Sugar()}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/invite/status/inv-1/rejected", nil)
	req = req.WithContext(middlewares.WithFounderID(req.Context(), "founder-c"))
	req = mux.SetURLVars(req, map[string]string{"inviteId": "inv-1", "inviteStatus": "rejected"})
	rec := httptest.NewRecorder()

	controller.UpdateInviteStatusHandler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "unauthorized", envelope.ResponseUniqueCode)
}
