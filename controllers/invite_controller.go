package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"indiecon_server/apperr"
	"indiecon_server/middlewares"
	"indiecon_server/models"
	"indiecon_server/services"
	"indiecon_server/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// InviteAPI is the slice of the invite service the HTTP layer consumes.
type InviteAPI interface {
	CreateInvite(ctx context.Context, in services.CreateInviteInput) *apperr.Error
	GetInviteDetails(ctx context.Context, founderID, inviteID string) (*models.InviteDetailsResponse, *apperr.Error)
	UpdateInviteStatus(ctx context.Context, in services.UpdateInviteStatusInput) (*models.InviteDetailsResponse, *apperr.Error)
}

type InviteController struct {
	Invites InviteAPI
	Logger  *zap.SugaredLogger
}

// CreateInviteHandler handles POST /api/v1/invite/create. Slots arrive as
// epoch milliseconds, duration in minutes.
func (c *InviteController) CreateInviteHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		InviteeID               string `json:"inviteeId"`
		PurposeOfMeeting        string `json:"purposeOfMeeting"`
		AdditionalNote          string `json:"additionalNote"`
		SlotA                   int64  `json:"slotA"`
		SlotB                   int64  `json:"slotB"`
		ProposedDurationMinutes int    `json:"proposedDurationMinutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, c.Logger, apperr.Validation("invalid_request_body", "Invalid request body"))
		return
	}

	appErr := c.Invites.CreateInvite(r.Context(), services.CreateInviteInput{
		InviterID:               middlewares.FounderIDFromContext(r.Context()),
		InviteeID:               body.InviteeID,
		PurposeOfMeeting:        body.PurposeOfMeeting,
		AdditionalNote:          body.AdditionalNote,
		SlotAMillis:             body.SlotA,
		SlotBMillis:             body.SlotB,
		ProposedDurationMinutes: body.ProposedDurationMinutes,
	})
	if appErr != nil {
		utils.WriteError(w, c.Logger, appErr)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, "create_invite_success",
		"Invite created successfully. Please check your email for more details.", nil)
}

// GetInviteDetailsHandler handles GET /api/v1/invite/details/{inviteId}.
func (c *InviteController) GetInviteDetailsHandler(w http.ResponseWriter, r *http.Request) {
	details, appErr := c.Invites.GetInviteDetails(
		r.Context(),
		middlewares.FounderIDFromContext(r.Context()),
		mux.Vars(r)["inviteId"],
	)
	if appErr != nil {
		utils.WriteError(w, c.Logger, appErr)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "get_invite_details_success",
		"Invite details fetched successfully.", details)
}

// UpdateInviteStatusHandler handles
// PATCH /api/v1/invite/status/{inviteId}/{inviteStatus}. The body carries
// acceptedSlotId and googleCode when the target status is accepted.
func (c *InviteController) UpdateInviteStatusHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AcceptedSlotID string `json:"acceptedSlotId"`
		GoogleCode     string `json:"googleCode"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			utils.WriteError(w, c.Logger, apperr.Validation("invalid_request_body", "Invalid request body"))
			return
		}
	}

	vars := mux.Vars(r)
	updated, appErr := c.Invites.UpdateInviteStatus(r.Context(), services.UpdateInviteStatusInput{
		ActorFounderID: middlewares.FounderIDFromContext(r.Context()),
		InviteID:       vars["inviteId"],
		TargetStatus:   vars["inviteStatus"],
		AcceptedSlotID: body.AcceptedSlotID,
		GoogleCode:     body.GoogleCode,
	})
	if appErr != nil {
		utils.WriteError(w, c.Logger, appErr)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, "update_invite_success",
		"Invite "+updated.InviteDetails.InviteStatus+" successfully.", updated)
}
