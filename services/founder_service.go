package services

import (
	"context"
	"errors"
	"fmt"

	"indiecon_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrFounderNotFound = errors.New("founder not found")

// FounderService reads founder and startup records. The invite lifecycle
// only needs lookups; profile mutation lives elsewhere.
type FounderService struct {
	Dynamo *DynamoService
}

// GetFounderByID fetches a bare founder record.
func (s *FounderService) GetFounderByID(ctx context.Context, founderID string) (*models.Founder, error) {
	key := map[string]types.AttributeValue{
		"founderId": &types.AttributeValueMemberS{Value: founderID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.Founder{}.TableName(), key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrFounderNotFound
		}
		return nil, fmt.Errorf("failed to fetch founder '%s': %w", founderID, err)
	}

	var founder models.Founder
	if err := attributevalue.UnmarshalMap(item, &founder); err != nil {
		return nil, fmt.Errorf("failed to unmarshal founder: %w", err)
	}
	return &founder, nil
}

// GetFounderWithStartup fetches a founder joined with their startup. A
// missing startup record leaves Startup nil rather than failing the lookup;
// the completeness flag already reflects an absent startup profile.
func (s *FounderService) GetFounderWithStartup(ctx context.Context, founderID string) (*models.FounderProfile, error) {
	founder, err := s.GetFounderByID(ctx, founderID)
	if err != nil {
		return nil, err
	}

	profile := &models.FounderProfile{Founder: *founder}
	if founder.StartupID == "" {
		return profile, nil
	}

	key := map[string]types.AttributeValue{
		"startupId": &types.AttributeValueMemberS{Value: founder.StartupID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.Startup{}.TableName(), key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return profile, nil
		}
		return nil, fmt.Errorf("failed to fetch startup '%s': %w", founder.StartupID, err)
	}

	var startup models.Startup
	if err := attributevalue.UnmarshalMap(item, &startup); err != nil {
		return nil, fmt.Errorf("failed to unmarshal startup: %w", err)
	}
	profile.Startup = &startup
	return profile, nil
}
