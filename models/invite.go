package models

import "time"

// Invite status values. Accepted, rejected and canceled are terminal.
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusRejected = "rejected"
	InviteStatusCanceled = "canceled"
)

// Proposed slot labels.
const (
	SlotA = "A"
	SlotB = "B"
)

// MeetingSlot is one labeled candidate meeting time proposed at creation.
type MeetingSlot struct {
	SlotID   string    `dynamodbav:"slotId" json:"slotId"`
	DateTime time.Time `dynamodbav:"dateTime,unixtime" json:"dateTime"`
}

// MeetingWindow is the confirmed start/end returned by the calendar provider.
type MeetingWindow struct {
	Start time.Time `dynamodbav:"start,unixtime" json:"start"`
	End   time.Time `dynamodbav:"end,unixtime" json:"end"`
}

// Invite represents a proposed meeting between two founders.
type Invite struct {
	InviteID                string         `dynamodbav:"inviteId" json:"inviteId"` // Partition Key (PK)
	PairKey                 string         `dynamodbav:"pairKey" json:"-"`         // PairIndex PK, unordered founder pair
	InviterID               string         `dynamodbav:"inviterId" json:"inviterId"`
	InviteeID               string         `dynamodbav:"inviteeId" json:"inviteeId"`
	PurposeOfMeeting        string         `dynamodbav:"purposeOfMeeting" json:"purposeOfMeeting"`
	AdditionalNote          string         `dynamodbav:"additionalNote,omitempty" json:"additionalNote,omitempty"`
	SlotA                   MeetingSlot    `dynamodbav:"slotA" json:"slotA"`
	SlotB                   MeetingSlot    `dynamodbav:"slotB" json:"slotB"`
	ProposedDurationMinutes int            `dynamodbav:"proposedDurationMinutes" json:"proposedDurationMinutes"`
	InviteStatus            string         `dynamodbav:"inviteStatus" json:"inviteStatus"`
	AcceptedSlotID          string         `dynamodbav:"acceptedSlotId,omitempty" json:"acceptedSlotId,omitempty"`
	MeetingLink             string         `dynamodbav:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	MeetingWindow           *MeetingWindow `dynamodbav:"meetingWindow,omitempty" json:"meetingWindow,omitempty"`
	CreatedAt               time.Time      `dynamodbav:"createdAt,unixtime" json:"createdAt"`
}

// TableName returns the DynamoDB table name
func (Invite) TableName() string {
	return "Invites"
}

// PairKeyFor builds the unordered key for two founders, so one PairIndex query
// covers invites in either inviter/invitee direction.
func PairKeyFor(a, b string) string {
	if a < b {
		return a + "#" + b
	}
	return b + "#" + a
}

// SlotByID returns the proposed slot with the given label.
func (i *Invite) SlotByID(slotID string) (MeetingSlot, bool) {
	switch slotID {
	case SlotA:
		return i.SlotA, true
	case SlotB:
		return i.SlotB, true
	}
	return MeetingSlot{}, false
}

// IsParty reports whether founderID is the inviter or the invitee.
func (i *Invite) IsParty(founderID string) bool {
	return founderID == i.InviterID || founderID == i.InviteeID
}

// IsTargetStatus reports whether s is a status a transition may target.
func IsTargetStatus(s string) bool {
	return s == InviteStatusAccepted || s == InviteStatusRejected || s == InviteStatusCanceled
}

// InviteStatusPatch carries the fields written by a status transition. The
// write is conditional on the invite still being pending.
type InviteStatusPatch struct {
	Status         string
	AcceptedSlotID string
	MeetingLink    string
	MeetingWindow  *MeetingWindow
}
