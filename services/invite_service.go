package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"indiecon_server/apperr"
	"indiecon_server/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxInvitesPerDay = 5

// InviteStore is the persistence contract the state machine needs.
type InviteStore interface {
	Create(ctx context.Context, invite *models.Invite) error
	GetByID(ctx context.Context, inviteID string) (*models.Invite, error)
	Delete(ctx context.Context, inviteID string) error
	UpdateStatusIfPending(ctx context.Context, inviteID string, patch models.InviteStatusPatch) (*models.Invite, error)
	HasActiveEngagement(ctx context.Context, founderA, founderB string, now time.Time) (bool, error)
	CountCreatedSince(ctx context.Context, inviterID string, since time.Time) (int, error)
}

// FounderDirectory resolves founder profiles with their startup.
type FounderDirectory interface {
	GetFounderWithStartup(ctx context.Context, founderID string) (*models.FounderProfile, error)
}

// NotificationDispatcher sends the lifecycle emails. Each method covers one
// transition and fails on the first undelivered message.
type NotificationDispatcher interface {
	InviteCreated(ctx context.Context, invite *models.Invite, inviter, invitee *models.FounderProfile) error
	InviteCanceled(ctx context.Context, invite *models.Invite, inviter, invitee *models.FounderProfile) error
	InviteRejected(ctx context.Context, invite *models.Invite, inviter, invitee *models.FounderProfile) error
	InviteAccepted(ctx context.Context, invite *models.Invite, inviter, invitee *models.FounderProfile) error
}

// ScheduleMeetingRequest is what the calendar provider needs for one event.
type ScheduleMeetingRequest struct {
	Summary         string
	Start           time.Time
	DurationMinutes int
	AttendeeEmails  []string
	AuthCode        string
}

// ScheduleMeetingResult carries the provider's confirmed meeting.
type ScheduleMeetingResult struct {
	MeetingLink string
	Start       time.Time
	End         time.Time
}

// MeetingScheduler creates the external calendar event. Single attempt; the
// caller decides whether a failure aborts the whole transition.
type MeetingScheduler interface {
	ScheduleMeeting(ctx context.Context, req ScheduleMeetingRequest) (*ScheduleMeetingResult, error)
}

// InviteService drives the invite lifecycle: creation, detail retrieval and
// status transitions, including the scheduling and notification side effects
// and their compensating actions.
type InviteService struct {
	Invites   InviteStore
	Founders  FounderDirectory
	Notifier  NotificationDispatcher
	Scheduler MeetingScheduler
	Logger    *zap.SugaredLogger

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *InviteService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

var createInviteValidator = validator.New()

// CreateInviteInput is the validated creation request. Slots arrive as epoch
// milliseconds, duration in minutes.
type CreateInviteInput struct {
	InviterID               string `validate:"required"`
	InviteeID               string `validate:"required"`
	PurposeOfMeeting        string `validate:"required,min=20,max=100"`
	AdditionalNote          string `validate:"omitempty,min=20,max=200"`
	SlotAMillis             int64  `validate:"required"`
	SlotBMillis             int64  `validate:"required"`
	ProposedDurationMinutes int    `validate:"required"`
}

func validateCreateInput(in *CreateInviteInput) *apperr.Error {
	err := createInviteValidator.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Validation("create_invite_error", "Missing required data")
	}

	switch fieldErrs[0].Field() {
	case "PurposeOfMeeting":
		if fieldErrs[0].Tag() == "required" {
			return apperr.Validation("create_invite_error", "Missing required data")
		}
		return apperr.Validation("invalid_purpose",
			"Purpose of meeting must be between 20 and 100 characters")
	case "AdditionalNote":
		return apperr.Validation("invalid_note",
			"Additional note must be between 20 and 200 characters")
	default:
		return apperr.Validation("create_invite_error", "Missing required data")
	}
}

// CreateInvite validates a creation request end to end, persists the pending
// invite and notifies both parties. The invite must not exist without both
// parties notified: if either email fails, the record is deleted again and
// the call fails.
func (s *InviteService) CreateInvite(ctx context.Context, in CreateInviteInput) *apperr.Error {
	in.InviterID = strings.TrimSpace(in.InviterID)
	in.InviteeID = strings.TrimSpace(in.InviteeID)
	in.PurposeOfMeeting = strings.TrimSpace(in.PurposeOfMeeting)
	in.AdditionalNote = strings.TrimSpace(in.AdditionalNote)

	if appErr := validateCreateInput(&in); appErr != nil {
		return appErr
	}

	if in.InviterID == in.InviteeID {
		return apperr.Validation("self_invite", "You can't invite yourself")
	}

	inviter, err := s.Founders.GetFounderWithStartup(ctx, in.InviterID)
	if err != nil && !errors.Is(err, ErrFounderNotFound) {
		return apperr.Internal("create_invite_error", err)
	}
	invitee, inviteeErr := s.Founders.GetFounderWithStartup(ctx, in.InviteeID)
	if inviteeErr != nil && !errors.Is(inviteeErr, ErrFounderNotFound) {
		return apperr.Internal("create_invite_error", inviteeErr)
	}
	if err != nil || inviteeErr != nil {
		return apperr.Validation("invalid_parties",
			"Invalid inviter or invitee. Please refresh, and try again. If error persists, please contact the team.")
	}

	if !inviter.AreBothProfilesComplete || !invitee.AreBothProfilesComplete {
		return apperr.Validation("incomplete_profiles",
			"Profiles of inviter or invitee are incomplete")
	}

	now := s.now()
	slotA := time.UnixMilli(in.SlotAMillis).UTC()
	slotB := time.UnixMilli(in.SlotBMillis).UTC()

	if appErr := ValidateProposedSlots(slotA, slotB, now); appErr != nil {
		return appErr
	}
	if appErr := ValidateMeetingDuration(in.ProposedDurationMinutes); appErr != nil {
		return appErr
	}

	active, err := s.Invites.HasActiveEngagement(ctx, in.InviterID, in.InviteeID, now)
	if err != nil {
		return apperr.Internal("create_invite_error", err)
	}
	if active {
		return apperr.Conflict("active_engagement",
			"You already have a meeting scheduled with this person. Please check your calendar or email.")
	}

	sentInLastDay, err := s.Invites.CountCreatedSince(ctx, in.InviterID, now.Add(-24*time.Hour))
	if err != nil {
		return apperr.Internal("create_invite_error", err)
	}
	if sentInLastDay >= maxInvitesPerDay {
		return apperr.Conflict("invite_limit_reached",
			"You have exceeded the number of invites you can send in a day. Please try again tomorrow.")
	}

	invite := &models.Invite{
		InviteID:                uuid.NewString(),
		PairKey:                 models.PairKeyFor(in.InviterID, in.InviteeID),
		InviterID:               in.InviterID,
		InviteeID:               in.InviteeID,
		PurposeOfMeeting:        in.PurposeOfMeeting,
		AdditionalNote:          in.AdditionalNote,
		SlotA:                   models.MeetingSlot{SlotID: models.SlotA, DateTime: slotA},
		SlotB:                   models.MeetingSlot{SlotID: models.SlotB, DateTime: slotB},
		ProposedDurationMinutes: in.ProposedDurationMinutes,
		InviteStatus:            models.InviteStatusPending,
		CreatedAt:               now,
	}

	if err := s.Invites.Create(ctx, invite); err != nil {
		return apperr.Internal("create_invite_error", err)
	}

	if err := s.Notifier.InviteCreated(ctx, invite, inviter, invitee); err != nil {
		// Compensating rollback: the invite must not exist unless both
		// parties were notified about it.
		if delErr := s.Invites.Delete(ctx, invite.InviteID); delErr != nil {
			s.Logger.Errorw("failed to roll back invite after notification failure",
				"inviteId", invite.InviteID, "error", delErr)
		}
		return apperr.External(http.StatusBadRequest, "notification_failed",
			"Internal error. Please refresh the page and try again. If error persists, please contact the team.", err)
	}

	return nil
}

// GetInviteDetails loads an invite with both parties resolved.
func (s *InviteService) GetInviteDetails(ctx context.Context, founderID, inviteID string) (*models.InviteDetailsResponse, *apperr.Error) {
	founderID = strings.TrimSpace(founderID)
	inviteID = strings.TrimSpace(inviteID)
	if founderID == "" || inviteID == "" {
		return nil, apperr.Validation("get_invite_details_error", "Missing required data")
	}

	invite, err := s.Invites.GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return nil, apperr.NotFound("invite_not_found", "Invite not found.")
		}
		return nil, apperr.Internal("get_invite_details_error", err)
	}

	inviter, invitee, appErr := s.loadParties(ctx, invite)
	if appErr != nil {
		return nil, appErr
	}

	return models.NewInviteDetailsResponse(invite, inviter, invitee), nil
}

// UpdateInviteStatusInput is a transition request. AcceptedSlotID and
// GoogleCode are only consulted when the target status is accepted.
type UpdateInviteStatusInput struct {
	ActorFounderID string
	InviteID       string
	TargetStatus   string
	AcceptedSlotID string
	GoogleCode     string
}

// UpdateInviteStatus applies one lifecycle transition with the role matrix:
// the inviter may cancel, the invitee may accept or reject. All transitions
// start from pending; the persisted write re-verifies that atomically.
func (s *InviteService) UpdateInviteStatus(ctx context.Context, in UpdateInviteStatusInput) (*models.InviteDetailsResponse, *apperr.Error) {
	in.ActorFounderID = strings.TrimSpace(in.ActorFounderID)
	in.InviteID = strings.TrimSpace(in.InviteID)
	in.TargetStatus = strings.TrimSpace(in.TargetStatus)
	in.AcceptedSlotID = strings.TrimSpace(in.AcceptedSlotID)
	in.GoogleCode = strings.TrimSpace(in.GoogleCode)

	if in.ActorFounderID == "" || in.InviteID == "" {
		return nil, apperr.Validation("update_invite_error", "Missing required data")
	}
	if !models.IsTargetStatus(in.TargetStatus) {
		return nil, apperr.Validation("invalid_status", "Invalid invite status.")
	}

	invite, err := s.Invites.GetByID(ctx, in.InviteID)
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return nil, apperr.NotFound("invite_not_found", "Invite not found.")
		}
		return nil, apperr.Internal("update_invite_error", err)
	}

	if !invite.IsParty(in.ActorFounderID) {
		return nil, apperr.Unauthorized("unauthorized", "Unauthorized.")
	}

	isInviter := in.ActorFounderID == invite.InviterID
	if isInviter && in.TargetStatus != models.InviteStatusCanceled {
		return nil, apperr.Validation("inviter_role_violation",
			"You cannot accept/reject this invite as you are the inviter.")
	}
	if !isInviter && in.TargetStatus == models.InviteStatusCanceled {
		return nil, apperr.Validation("invitee_role_violation",
			"You cannot cancel this invite as you are the invitee.")
	}

	now := s.now()
	if now.After(invite.SlotA.DateTime) && now.After(invite.SlotB.DateTime) {
		return nil, apperr.Validation("meeting_time_passed",
			"You cannot accept/reject/cancel this invite as the meeting date and time has passed.")
	}

	if invite.InviteStatus == in.TargetStatus {
		return nil, apperr.Conflict("already_"+in.TargetStatus, "Invite already "+in.TargetStatus+".")
	}
	if invite.InviteStatus != models.InviteStatusPending {
		return nil, apperr.Conflict("already_"+invite.InviteStatus, "Invite already "+invite.InviteStatus+".")
	}

	inviter, invitee, appErr := s.loadParties(ctx, invite)
	if appErr != nil {
		return nil, appErr
	}

	if in.TargetStatus == models.InviteStatusAccepted {
		return s.acceptInvite(ctx, in, invite, inviter, invitee, now)
	}

	// canceled / rejected: notify the counter-party first; a failed dispatch
	// aborts the transition with no state mutation.
	var notifyErr error
	if in.TargetStatus == models.InviteStatusCanceled {
		notifyErr = s.Notifier.InviteCanceled(ctx, invite, inviter, invitee)
	} else {
		notifyErr = s.Notifier.InviteRejected(ctx, invite, inviter, invitee)
	}
	if notifyErr != nil {
		return nil, apperr.External(http.StatusBadRequest, "notification_failed",
			"Internal error. Please refresh the page and try again. If error persists, please contact the team.", notifyErr)
	}

	updated, appErr := s.persistTransition(ctx, in.InviteID, models.InviteStatusPatch{Status: in.TargetStatus})
	if appErr != nil {
		return nil, appErr
	}
	return models.NewInviteDetailsResponse(updated, inviter, invitee), nil
}

func (s *InviteService) acceptInvite(
	ctx context.Context,
	in UpdateInviteStatusInput,
	invite *models.Invite,
	inviter, invitee *models.FounderProfile,
	now time.Time,
) (*models.InviteDetailsResponse, *apperr.Error) {
	if in.GoogleCode == "" {
		return nil, apperr.Validation("invalid_status", "Invalid invite status.")
	}
	slot, ok := invite.SlotByID(in.AcceptedSlotID)
	if !ok {
		return nil, apperr.Validation("invalid_status", "Invalid invite status.")
	}
	if now.After(slot.DateTime) {
		return nil, apperr.Validation("meeting_time_passed",
			"You cannot accept this invite as the meeting time has already passed.")
	}

	meeting, err := s.Scheduler.ScheduleMeeting(ctx, ScheduleMeetingRequest{
		Summary:         inviter.FirstName + "'s Indiecon Invite",
		Start:           slot.DateTime,
		DurationMinutes: invite.ProposedDurationMinutes,
		AttendeeEmails:  []string{inviter.Email, invitee.Email},
		AuthCode:        in.GoogleCode,
	})
	if err != nil {
		return nil, apperr.External(http.StatusInternalServerError, "scheduling_failed",
			"Internal error. Please refresh the page and try again. If error persists, please contact the team.", err)
	}

	if err := s.Notifier.InviteAccepted(ctx, invite, inviter, invitee); err != nil {
		// The calendar event already exists but the transition aborts with no
		// state mutation, leaving an orphaned event. Known inconsistency
		// window; logged so it can be cleaned up by hand.
		s.Logger.Errorw("acceptance notification failed after meeting was scheduled",
			"inviteId", invite.InviteID, "meetingLink", meeting.MeetingLink, "error", err)
		return nil, apperr.External(http.StatusBadRequest, "notification_failed",
			"Internal error. Please refresh the page and try again. If error persists, please contact the team.", err)
	}

	updated, appErr := s.persistTransition(ctx, in.InviteID, models.InviteStatusPatch{
		Status:         models.InviteStatusAccepted,
		AcceptedSlotID: slot.SlotID,
		MeetingLink:    meeting.MeetingLink,
		MeetingWindow:  &models.MeetingWindow{Start: meeting.Start, End: meeting.End},
	})
	if appErr != nil {
		return nil, appErr
	}
	return models.NewInviteDetailsResponse(updated, inviter, invitee), nil
}

// persistTransition runs the conditional write. Losing the optimistic race
// reads the invite again and reports "already <status>", the same answer a
// late caller would have gotten up front.
func (s *InviteService) persistTransition(ctx context.Context, inviteID string, patch models.InviteStatusPatch) (*models.Invite, *apperr.Error) {
	updated, err := s.Invites.UpdateStatusIfPending(ctx, inviteID, patch)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, ErrStatusNotPending) {
		return nil, apperr.Internal("update_invite_error", err)
	}

	current, getErr := s.Invites.GetByID(ctx, inviteID)
	if getErr != nil {
		return nil, apperr.Internal("update_invite_error", getErr)
	}
	return nil, apperr.Conflict("already_"+current.InviteStatus, "Invite already "+current.InviteStatus+".")
}

func (s *InviteService) loadParties(ctx context.Context, invite *models.Invite) (*models.FounderProfile, *models.FounderProfile, *apperr.Error) {
	inviter, err := s.Founders.GetFounderWithStartup(ctx, invite.InviterID)
	if err != nil {
		return nil, nil, apperr.Internal("invite_parties_error", err)
	}
	invitee, err := s.Founders.GetFounderWithStartup(ctx, invite.InviteeID)
	if err != nil {
		return nil, nil, apperr.Internal("invite_parties_error", err)
	}
	return inviter, invitee, nil
}
