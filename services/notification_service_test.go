package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"indiecon_server/models"
	"indiecon_server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmailSender struct {
	sent   []EmailMessage
	failOn string // recipient address that fails, "" for none
}

func (f *fakeEmailSender) Send(_ context.Context, msg EmailMessage) error {
	if f.failOn != "" && msg.To == f.failOn {
		return errors.New("delivery refused")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newNotificationService(sender *fakeEmailSender) *NotificationService {
	return &NotificationService{
		Email:       sender,
		JWTSecret:   "test-secret",
		FrontendURL: "https://indiecon.example",
		TokenTTL:    time.Hour,
		Logger:      zap.NewNop().Sugar(),
	}
}

func notificationFixture() (*models.Invite, *models.FounderProfile, *models.FounderProfile) {
	invite := &models.Invite{InviteID: "inv-1", InviterID: "founder-a", InviteeID: "founder-b"}
	inviter := testProfile("founder-a", "Alice", "alice@example.com", true)
	invitee := testProfile("founder-b", "Bob", "bob@example.com", true)
	return invite, inviter, invitee
}

func TestInviteCreated_MailsInviteeThenInviter(t *testing.T) {
	sender := &fakeEmailSender{}
	n := newNotificationService(sender)
	invite, inviter, invitee := notificationFixture()

	require.NoError(t, n.InviteCreated(context.Background(), invite, inviter, invitee))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "bob@example.com", sender.sent[0].To)
	assert.Equal(t, "alice@example.com", sender.sent[1].To)
	assert.Contains(t, sender.sent[0].HTML, "Alice")
	assert.Contains(t, sender.sent[1].HTML, "Bob")
}

func TestInviteCreated_FirstDeliveryFailureStopsSecond(t *testing.T) {
	sender := &fakeEmailSender{failOn: "bob@example.com"}
	n := newNotificationService(sender)
	invite, inviter, invitee := notificationFixture()

	assert.Error(t, n.InviteCreated(context.Background(), invite, inviter, invitee))
	assert.Empty(t, sender.sent)
}

func TestInviteCanceled_MailsInviteeOnly(t *testing.T) {
	sender := &fakeEmailSender{}
	n := newNotificationService(sender)
	invite, inviter, invitee := notificationFixture()

	require.NoError(t, n.InviteCanceled(context.Background(), invite, inviter, invitee))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "bob@example.com", sender.sent[0].To)
}

func TestInviteRejected_MailsInviterOnly(t *testing.T) {
	sender := &fakeEmailSender{}
	n := newNotificationService(sender)
	invite, inviter, invitee := notificationFixture()

	require.NoError(t, n.InviteRejected(context.Background(), invite, inviter, invitee))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "alice@example.com", sender.sent[0].To)
}

func TestInviteAccepted_MailsBothParties(t *testing.T) {
	sender := &fakeEmailSender{}
	n := newNotificationService(sender)
	invite, inviter, invitee := notificationFixture()

	require.NoError(t, n.InviteAccepted(context.Background(), invite, inviter, invitee))
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "bob@example.com", sender.sent[0].To)
	assert.Equal(t, "alice@example.com", sender.sent[1].To)
}

func TestDetailLinksCarryRecipientScopedTokens(t *testing.T) {
	sender := &fakeEmailSender{}
	n := newNotificationService(sender)
	invite, inviter, invitee := notificationFixture()

	require.NoError(t, n.InviteCreated(context.Background(), invite, inviter, invitee))
	require.Len(t, sender.sent, 2)

	for i, wantFounderID := range []string{"founder-b", "founder-a"} {
		html := sender.sent[i].HTML
		start := strings.Index(html, "https://indiecon.example/invite/inv-1?token=")
		require.GreaterOrEqual(t, start, 0)

		token := html[start+len("https://indiecon.example/invite/inv-1?token="):]
		if end := strings.IndexAny(token, `>"'<`); end >= 0 {
			token = token[:end]
		}

		founderID, err := utils.ParseFounderToken("test-secret", token)
		require.NoError(t, err)
		assert.Equal(t, wantFounderID, founderID)
	}
}
