package models

import "time"

// Startup is the company profile a founder belongs to.
type Startup struct {
	StartupID   string    `dynamodbav:"startupId" json:"startupId"` // Partition Key (PK)
	Name        string    `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Description string    `dynamodbav:"description,omitempty" json:"description,omitempty"`
	MainLink    string    `dynamodbav:"mainLink,omitempty" json:"mainLink,omitempty"`
	SocialLink  string    `dynamodbav:"socialLink,omitempty" json:"socialLink,omitempty"`
	Industry    string    `dynamodbav:"industry,omitempty" json:"industry,omitempty"`
	CreatedAt   time.Time `dynamodbav:"createdAt,unixtime" json:"createdAt"`
}

// TableName returns the DynamoDB table name
func (Startup) TableName() string {
	return "Startups"
}
