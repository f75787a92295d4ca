package services

import "fmt"

// Email templates for the invite lifecycle.
//
// inviter: person who invites the other founder
// invitee: person who is invited by the other founder
//
// toInviterInviteSent      - mail to inviter that the invite has been sent
// toInviteeInviteReceived  - mail to invitee that an invite has been received
// toInviterInviteRejected  - mail to inviter that invitee has rejected the invite
// toInviteeInviteCanceled  - mail to invitee that inviter has canceled the invite
// toInviteeInviteAccepted  - confirmation mail to invitee that they have accepted
// toInviterInviteAccepted  - mail to inviter that invitee has accepted the invite

type templateFunc func(recipientEmail, inviterFirstName, inviteeFirstName, inviteDetailsLink string) EmailMessage

const emailSignature = `To report any issues, please reply to this email.
		<br/>
		<br/>
		Regards
		<br/>
		Aditya
		<br />
		Founder - Indiecon`

func toInviterInviteSent(recipientEmail, inviterFirstName, inviteeFirstName, inviteDetailsLink string) EmailMessage {
	return EmailMessage{
		To:      recipientEmail,
		Subject: "Indiecon - Invite Sent!",
		HTML: fmt.Sprintf(`Hi %s,
		<br/>
		<br/>
		This is the confirmation mail from <a href="https://indiecon.co">indiecon</a> regarding the invite you sent to <strong>%s</strong>.
		<br/>
		Find the details for this invite <a href=%s>here</a>. If you feel like cancelling the invite, you can do so from the same link.
		<br/>
		We will inform you by mail when %s accepts/rejects your invite.
		<br />
		<br />
		%s`, inviterFirstName, inviteeFirstName, inviteDetailsLink, inviteeFirstName, emailSignature),
	}
}

func toInviteeInviteReceived(recipientEmail, inviterFirstName, inviteeFirstName, inviteDetailsLink string) EmailMessage {
	return EmailMessage{
		To:      recipientEmail,
		Subject: "Indiecon - Invite Received!",
		HTML: fmt.Sprintf(`Hi %s,
		<br/>
		<br/>
		This mail is from <a href="https://indiecon.co">indiecon</a> regarding the invite you received from <strong>%s</strong>.
		<br/>
		Find the details for this invite <a href=%s>here</a>. Please accept/reject the invite from the same link.
		<br/>
		We will inform you by mail if %s cancels the invite.
		<br />
		<br />
		%s`, inviteeFirstName, inviterFirstName, inviteDetailsLink, inviterFirstName, emailSignature),
	}
}

func toInviterInviteRejected(recipientEmail, inviterFirstName, inviteeFirstName, inviteDetailsLink string) EmailMessage {
	return EmailMessage{
		To:      recipientEmail,
		Subject: "Indiecon - Invite Rejected!",
		HTML: fmt.Sprintf(`Hi %s,
		<br/>
		<br/>
		This is the mail from <a href="https://indiecon.co">indiecon</a> regarding the invite you sent to <strong>%s</strong>.
		<br/>
		We regret to inform you that %s has rejected your invite. Find the details for this invite <a href=%s>here</a>.
		<br/>
		<br />
		How about sending another invite to someone else? Visit <a href="https://indiecon.co">indiecon.co</a> to send another invite.
		<br />
		<br />
		%s`, inviterFirstName, inviteeFirstName, inviteeFirstName, inviteDetailsLink, emailSignature),
	}
}

func toInviteeInviteCanceled(recipientEmail, inviterFirstName, inviteeFirstName, inviteDetailsLink string) EmailMessage {
	return EmailMessage{
		To:      recipientEmail,
		Subject: "Indiecon - Invite Canceled!",
		HTML: fmt.Sprintf(`Hi %s,
		<br/>
		<br/>
		This is the mail from <a href="https://indiecon.co">indiecon</a> regarding the invite you received from <strong>%s</strong>.
		<br/>
		We regret to inform you that %s has canceled the invite. Find the details for this invite <a href=%s>here</a>.
		<br/>
		<br />
		How about sending another invite to someone else? Visit <a href="https://indiecon.co">indiecon.co</a> to send another invite.
		<br />
		<br />
		%s`, inviteeFirstName, inviterFirstName, inviterFirstName, inviteDetailsLink, emailSignature),
	}
}

func toInviteeInviteAccepted(recipientEmail, inviterFirstName, inviteeFirstName, inviteDetailsLink string) EmailMessage {
	return EmailMessage{
		To:      recipientEmail,
		Subject: "Indiecon - Invite Accepted!",
		HTML: fmt.Sprintf(`Hi %s,
		<br/>
		<br/>
		This is the mail from <a href="https://indiecon.co">indiecon</a> regarding the invite you received from <strong>%s</strong>.
		<br/>
		We are excited to inform you that your meeting has been scheduled with %s. Find the details for this invite <a href=%s>here</a>.
		<br/>
		<br />
		You can also check your calendar for the meeting details (time, date, link, etc.)
		<br />
		<br />
		%s`, inviteeFirstName, inviterFirstName, inviterFirstName, inviteDetailsLink, emailSignature),
	}
}

func toInviterInviteAccepted(recipientEmail, inviterFirstName, inviteeFirstName, inviteDetailsLink string) EmailMessage {
	return EmailMessage{
		To:      recipientEmail,
		Subject: "Indiecon - Invite Accepted!",
		HTML: fmt.Sprintf(`Hi %s,
		<br/>
		<br/>
		This is the mail from <a href="https://indiecon.co">indiecon</a> regarding the invite you sent to <strong>%s</strong>.
		<br/>
		We are excited to inform you that your meeting has been scheduled with %s. Find the details for this invite <a href=%s>here</a>.
		<br/>
		<br />
		You can also check your calendar for the meeting details (time, date, link, etc.)
		<br />
		<br />
		%s`, inviterFirstName, inviteeFirstName, inviteeFirstName, inviteDetailsLink, emailSignature),
	}
}
