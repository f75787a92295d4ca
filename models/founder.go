package models

import "time"

// Founder represents one person affiliated with exactly one startup.
type Founder struct {
	FounderID               string    `dynamodbav:"founderId" json:"founderId"` // Partition Key (PK)
	FirstName               string    `dynamodbav:"firstName" json:"firstName"`
	LastName                string    `dynamodbav:"lastName" json:"lastName"`
	Email                   string    `dynamodbav:"email" json:"email"`
	TwitterUsername         string    `dynamodbav:"twitterUsername,omitempty" json:"twitterUsername,omitempty"`
	Bio                     string    `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	StartupID               string    `dynamodbav:"startupId" json:"startupId"`
	AreBothProfilesComplete bool      `dynamodbav:"areBothProfilesComplete" json:"areBothProfilesComplete"`
	CreatedAt               time.Time `dynamodbav:"createdAt,unixtime" json:"createdAt"`
}

// TableName returns the DynamoDB table name
func (Founder) TableName() string {
	return "Founders"
}

// FounderProfile is a founder joined with their startup. Sending an invite
// requires both parties fully onboarded, so the completeness flag travels
// with the profile.
type FounderProfile struct {
	Founder
	Startup *Startup
}

// ProfileComplete recomputes the onboarding flag from the stored fields. The
// persisted AreBothProfilesComplete is maintained by the profile flows; this
// is the rule they apply.
func (p *FounderProfile) ProfileComplete() bool {
	founderDone := p.FirstName != "" && p.LastName != "" && p.TwitterUsername != "" && p.Bio != ""
	if p.Startup == nil {
		return false
	}
	s := p.Startup
	startupDone := s.Name != "" && s.Description != "" && s.MainLink != "" && s.SocialLink != "" && s.Industry != ""
	return founderDone && startupDone
}
