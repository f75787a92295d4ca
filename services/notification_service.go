package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"indiecon_server/models"
	"indiecon_server/utils"

	"github.com/gojektech/heimdall/v6/httpclient"
	"go.uber.org/zap"
)

const sendgridMailSendURL = "https://api.sendgrid.com/v3/mail/send"

// EmailMessage is one outbound transactional email.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

// EmailSender delivers a single message. Non-success is an error.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// SendgridClient delivers mail through the SendGrid v3 REST API. One
// attempt per message with a bounded timeout; SendGrid acknowledges an
// accepted message with 202.
type SendgridClient struct {
	client    *httpclient.Client
	apiKey    string
	fromEmail string
}

func NewSendgridClient(apiKey, fromEmail string, timeout time.Duration) *SendgridClient {
	return &SendgridClient{
		client:    httpclient.NewClient(httpclient.WithHTTPTimeout(timeout)),
		apiKey:    apiKey,
		fromEmail: fromEmail,
	}
}

func (c *SendgridClient) Send(ctx context.Context, msg EmailMessage) error {
	payload := map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]string{{"email": msg.To}}},
		},
		"from":    map[string]string{"email": c.fromEmail},
		"subject": msg.Subject,
		"content": []map[string]string{
			{"type": "text/plain", "value": msg.Subject},
			{"type": "text/html", "value": msg.HTML},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendgridMailSendURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("mail send failed: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// NotificationService maps each lifecycle transition to its templated
// messages and delivers them in a fixed order. Every detail link carries a
// time-limited token scoped to its recipient.
type NotificationService struct {
	Email       EmailSender
	JWTSecret   string
	FrontendURL string
	TokenTTL    time.Duration
	Logger      *zap.SugaredLogger
}

func (n *NotificationService) inviteDetailsLink(founderID, inviteID string) (string, error) {
	token, err := utils.GenerateFounderToken(n.JWTSecret, founderID, n.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate recipient token: %w", err)
	}
	return fmt.Sprintf("%s/invite/%s?token=%s", n.FrontendURL, inviteID, token), nil
}

func (n *NotificationService) send(ctx context.Context, recipient *models.FounderProfile, inviteID string, build templateFunc, inviter, invitee *models.FounderProfile) error {
	link, err := n.inviteDetailsLink(recipient.FounderID, inviteID)
	if err != nil {
		return err
	}
	msg := build(recipient.Email, inviter.FirstName, invitee.FirstName, link)
	if err := n.Email.Send(ctx, msg); err != nil {
		n.Logger.Warnw("notification dispatch failed",
			"inviteId", inviteID, "recipient", recipient.FounderID, "error", err)
		return err
	}
	return nil
}

// InviteCreated mails the invitee first, then the inviter.
func (n *NotificationService) InviteCreated(ctx context.Context, invite *models.Invite, inviter, invitee *models.FounderProfile) error {
	if err := n.send(ctx, invitee, invite.InviteID, toInviteeInviteReceived, inviter, invitee); err != nil {
		return err
	}
	return n.send(ctx, inviter, invite.InviteID, toInviterInviteSent, inviter, invitee)
}

// InviteCanceled mails the invitee.
func (n *NotificationService) InviteCanceled(ctx context.Context, invite *models.Invite, inviter, invitee *models.FounderProfile) error {
	return n.send(ctx, invitee, invite.InviteID, toInviteeInviteCanceled, inviter, invitee)
}

// InviteRejected mails the inviter.
func (n *NotificationService) InviteRejected(ctx context.Context, invite *models.Invite, inviter, invitee *models.FounderProfile) error {
	return n.send(ctx, inviter, invite.InviteID, toInviterInviteRejected, inviter, invitee)
}

// InviteAccepted mails the invitee first, then the inviter.
func (n *NotificationService) InviteAccepted(ctx context.Context, invite *models.Invite, inviter, invitee *models.FounderProfile) error {
	if err := n.send(ctx, invitee, invite.InviteID, toInviteeInviteAccepted, inviter, invitee); err != nil {
		return err
	}
	return n.send(ctx, inviter, invite.InviteID, toInviterInviteAccepted, inviter, invitee)
}
