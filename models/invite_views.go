package models

// Projections returned by the invite detail and status endpoints. Party
// details carry nothing private beyond id, name and startup.

type SlotView struct {
	SlotID   string `json:"slotId"`
	DateTime int64  `json:"dateTime"` // epoch milliseconds
}

type WindowView struct {
	Start int64 `json:"start"` // epoch milliseconds
	End   int64 `json:"end"`
}

type InviteDetails struct {
	InviteID                string      `json:"inviteId"`
	PurposeOfMeeting        string      `json:"purposeOfMeeting"`
	AdditionalNote          string      `json:"additionalNote"`
	SlotA                   SlotView    `json:"slotA"`
	SlotB                   SlotView    `json:"slotB"`
	ProposedDurationMinutes int         `json:"proposedDurationMinutes"`
	InviteStatus            string      `json:"inviteStatus"`
	AcceptedSlotID          string      `json:"acceptedSlotId"`
	MeetingLink             string      `json:"meetingLink"`
	MeetingWindow           *WindowView `json:"meetingWindow,omitempty"`
	CreatedAt               int64       `json:"createdAt"` // epoch milliseconds
}

type PartyDetails struct {
	FounderID   string `json:"founderId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	StartupID   string `json:"startupId"`
	StartupName string `json:"startupName"`
}

type InviteDetailsResponse struct {
	InviteDetails  InviteDetails `json:"inviteDetails"`
	InviterDetails PartyDetails  `json:"inviterDetails"`
	InviteeDetails PartyDetails  `json:"inviteeDetails"`
}

// NewInviteDetailsResponse projects an invite and its two parties into the
// shape the API returns.
func NewInviteDetailsResponse(invite *Invite, inviter, invitee *FounderProfile) *InviteDetailsResponse {
	details := InviteDetails{
		InviteID:                invite.InviteID,
		PurposeOfMeeting:        invite.PurposeOfMeeting,
		AdditionalNote:          invite.AdditionalNote,
		SlotA:                   SlotView{SlotID: invite.SlotA.SlotID, DateTime: invite.SlotA.DateTime.UnixMilli()},
		SlotB:                   SlotView{SlotID: invite.SlotB.SlotID, DateTime: invite.SlotB.DateTime.UnixMilli()},
		ProposedDurationMinutes: invite.ProposedDurationMinutes,
		InviteStatus:            invite.InviteStatus,
		AcceptedSlotID:          invite.AcceptedSlotID,
		MeetingLink:             invite.MeetingLink,
		CreatedAt:               invite.CreatedAt.UnixMilli(),
	}
	if invite.MeetingWindow != nil {
		details.MeetingWindow = &WindowView{
			Start: invite.MeetingWindow.Start.UnixMilli(),
			End:   invite.MeetingWindow.End.UnixMilli(),
		}
	}

	return &InviteDetailsResponse{
		InviteDetails:  details,
		InviterDetails: newPartyDetails(inviter),
		InviteeDetails: newPartyDetails(invitee),
	}
}

func newPartyDetails(p *FounderProfile) PartyDetails {
	details := PartyDetails{
		FounderID: p.FounderID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		StartupID: p.StartupID,
	}
	if p.Startup != nil {
		details.StartupName = p.Startup.Name
	}
	return details
}
