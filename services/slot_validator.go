package services

import (
	"time"

	"indiecon_server/apperr"
)

const (
	minimumLeadTime = 30 * time.Minute

	minMeetingDurationMinutes = 15
	maxMeetingDurationMinutes = 120
)

// ValidateProposedSlots checks the two candidate meeting times against the
// temporal rules: future-only, at least 30 minutes of lead time, no more
// than one calendar month out, and distinct from each other. Pure function
// of its inputs; evaluated once, at creation.
func ValidateProposedSlots(slotA, slotB, now time.Time) *apperr.Error {
	// Calendar month arithmetic, not a fixed 30 days.
	oneMonthFromNow := now.AddDate(0, 1, 0)

	if slotA.Before(now) || slotB.Before(now) ||
		slotA.After(oneMonthFromNow) || slotB.After(oneMonthFromNow) {
		return apperr.Validation("invalid_meeting_time",
			"Invalid meeting date and time. Meetings can only be scheduled for the future and not more than 1 month from now.")
	}

	minimumStart := now.Add(minimumLeadTime)
	if slotA.Before(minimumStart) || slotB.Before(minimumStart) {
		return apperr.Validation("meeting_too_soon",
			"Meeting should be scheduled atleast 30 minutes from now")
	}

	if slotA.Equal(slotB) {
		return apperr.Validation("duplicate_meeting_times",
			"Both meeting times can not be the same")
	}

	return nil
}

// ValidateMeetingDuration bounds the proposed duration to 15–120 minutes.
func ValidateMeetingDuration(durationMinutes int) *apperr.Error {
	if durationMinutes < minMeetingDurationMinutes || durationMinutes > maxMeetingDurationMinutes {
		return apperr.Validation("invalid_meeting_duration",
			"Invalid meeting duration. Meeting duration can not be less than 15 minutes and can not be more than 120 minutes")
	}
	return nil
}
