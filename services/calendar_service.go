package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gojektech/heimdall/v6/httpclient"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleCalendarURL = "https://www.googleapis.com/calendar/v3/calendars/primary/events"
)

var googleOAuthScopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/userinfo.email",
}

// CalendarService schedules meetings on Google Calendar with a Meet
// conference attached. The OAuth client is constructed once at process
// start and injected; the invitee's consent code is exchanged per call.
// One attempt per call; the caller decides what a failure aborts.
type CalendarService struct {
	client       *httpclient.Client
	clientID     string
	clientSecret string
	redirectURL  string
	Logger       *zap.SugaredLogger
}

func NewCalendarService(clientID, clientSecret, redirectURL string, timeout time.Duration, logger *zap.SugaredLogger) *CalendarService {
	return &CalendarService{
		client:       httpclient.NewClient(httpclient.WithHTTPTimeout(timeout)),
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURL:  redirectURL,
		Logger:       logger,
	}
}

// GenerateAuthURL builds the consent URL the frontend sends the invitee to
// before accepting an invite.
func (c *CalendarService) GenerateAuthURL() string {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", c.redirectURL)
	params.Set("response_type", "code")
	params.Set("access_type", "offline")
	params.Set("scope", strings.Join(googleOAuthScopes, " "))
	return googleAuthURL + "?" + params.Encode()
}

// ScheduleMeeting exchanges the consent code for an access token and inserts
// a calendar event spanning start..start+duration with both founders as
// attendees. Returns the Meet link and the confirmed window.
func (c *CalendarService) ScheduleMeeting(ctx context.Context, req ScheduleMeetingRequest) (*ScheduleMeetingResult, error) {
	accessToken, err := c.exchangeCode(ctx, req.AuthCode)
	if err != nil {
		return nil, err
	}

	end := req.Start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	attendees := make([]map[string]string, 0, len(req.AttendeeEmails))
	for _, email := range req.AttendeeEmails {
		attendees = append(attendees, map[string]string{"email": email})
	}

	event := map[string]interface{}{
		"summary":     req.Summary,
		"location":    "Google Meet",
		"description": "This is the meet scheduled by Indiecon",
		"start": map[string]string{
			"dateTime": req.Start.UTC().Format(time.RFC3339),
			"timeZone": "UTC",
		},
		"end": map[string]string{
			"dateTime": end.UTC().Format(time.RFC3339),
			"timeZone": "UTC",
		},
		"attendees": attendees,
		"reminders": map[string]interface{}{
			"useDefault": false,
			"overrides": []map[string]interface{}{
				{"method": "email", "minutes": 60},
				{"method": "popup", "minutes": 10},
			},
		},
		"conferenceData": map[string]interface{}{
			"createRequest": map[string]string{"requestId": uuid.NewString()},
		},
	}

	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal calendar event: %w", err)
	}

	insertURL := googleCalendarURL + "?conferenceDataVersion=1"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, insertURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calendar event insert failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.Logger.Warnw("calendar event insert rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("calendar event insert failed: unexpected status %d", resp.StatusCode)
	}

	var inserted struct {
		HangoutLink string `json:"hangoutLink"`
		Start       struct {
			DateTime time.Time `json:"dateTime"`
		} `json:"start"`
		End struct {
			DateTime time.Time `json:"dateTime"`
		} `json:"end"`
	}
	if err := json.Unmarshal(respBody, &inserted); err != nil {
		return nil, fmt.Errorf("malformed calendar response: %w", err)
	}
	if inserted.HangoutLink == "" {
		return nil, fmt.Errorf("malformed calendar response: missing meeting link")
	}

	result := &ScheduleMeetingResult{
		MeetingLink: inserted.HangoutLink,
		Start:       inserted.Start.DateTime,
		End:         inserted.End.DateTime,
	}
	if result.Start.IsZero() {
		result.Start = req.Start
	}
	if result.End.IsZero() {
		result.End = end
	}
	return result, nil
}

func (c *CalendarService) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("redirect_uri", c.redirectURL)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange failed: unexpected status %d", resp.StatusCode)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("malformed token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("malformed token response: missing access token")
	}
	return token.AccessToken, nil
}
