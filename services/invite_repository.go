package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"indiecon_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	ErrInviteNotFound   = errors.New("invite not found")
	ErrStatusNotPending = errors.New("invite is no longer pending")
)

// InviteRepository persists invites in DynamoDB. The table is keyed by
// inviteId with two GSIs: PairIndex (pairKey) for the active-engagement
// check and InviterIndex (inviterId, createdAt) for the rolling-window
// invite count.
type InviteRepository struct {
	Dynamo *DynamoService
}

// Create inserts a new invite record.
func (r *InviteRepository) Create(ctx context.Context, invite *models.Invite) error {
	return r.Dynamo.PutItem(ctx, models.Invite{}.TableName(), invite)
}

// GetByID loads an invite, returning ErrInviteNotFound when absent.
func (r *InviteRepository) GetByID(ctx context.Context, inviteID string) (*models.Invite, error) {
	key := map[string]types.AttributeValue{
		"inviteId": &types.AttributeValueMemberS{Value: inviteID},
	}

	item, err := r.Dynamo.GetItem(ctx, models.Invite{}.TableName(), key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("failed to fetch invite '%s': %w", inviteID, err)
	}

	var invite models.Invite
	if err := attributevalue.UnmarshalMap(item, &invite); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invite: %w", err)
	}
	return &invite, nil
}

// Delete removes an invite. Used only as the compensating rollback when a
// post-creation notification fails.
func (r *InviteRepository) Delete(ctx context.Context, inviteID string) error {
	key := map[string]types.AttributeValue{
		"inviteId": &types.AttributeValueMemberS{Value: inviteID},
	}
	return r.Dynamo.DeleteItem(ctx, models.Invite{}.TableName(), key)
}

// UpdateStatusIfPending applies a status transition as a single atomic
// conditional write: the update only lands if the invite is still pending.
// A lost race returns ErrStatusNotPending.
func (r *InviteRepository) UpdateStatusIfPending(ctx context.Context, inviteID string, patch models.InviteStatusPatch) (*models.Invite, error) {
	key := map[string]types.AttributeValue{
		"inviteId": &types.AttributeValueMemberS{Value: inviteID},
	}

	updateExpression := "SET #s = :status"
	expressionValues := map[string]types.AttributeValue{
		":status":  &types.AttributeValueMemberS{Value: patch.Status},
		":pending": &types.AttributeValueMemberS{Value: models.InviteStatusPending},
	}
	expressionNames := map[string]string{
		"#s": "inviteStatus",
	}

	if patch.Status == models.InviteStatusAccepted {
		updateExpression += ", acceptedSlotId = :acceptedSlotId, meetingLink = :meetingLink, meetingWindow = :meetingWindow"
		expressionValues[":acceptedSlotId"] = &types.AttributeValueMemberS{Value: patch.AcceptedSlotID}
		expressionValues[":meetingLink"] = &types.AttributeValueMemberS{Value: patch.MeetingLink}

		window, err := attributevalue.Marshal(patch.MeetingWindow)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal meeting window: %w", err)
		}
		expressionValues[":meetingWindow"] = window
	}

	attrs, err := r.Dynamo.UpdateItemWithCondition(
		ctx,
		models.Invite{}.TableName(),
		key,
		updateExpression,
		"#s = :pending",
		expressionValues,
		expressionNames,
	)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, ErrStatusNotPending
		}
		return nil, err
	}

	var updated models.Invite
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated invite: %w", err)
	}
	return &updated, nil
}

// HasActiveEngagement reports whether any invite between the two founders,
// in either direction, is pending or accepted with at least one proposed
// slot still in the future.
func (r *InviteRepository) HasActiveEngagement(ctx context.Context, founderA, founderB string, now time.Time) (bool, error) {
	tableName := models.Invite{}.TableName()
	input := &dynamodb.QueryInput{
		TableName:              &tableName,
		IndexName:              aws.String("PairIndex"),
		KeyConditionExpression: aws.String("pairKey = :pairKey"),
		FilterExpression: aws.String(
			"inviteStatus IN (:pending, :accepted) AND (slotA.dateTime >= :now OR slotB.dateTime >= :now)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pairKey":  &types.AttributeValueMemberS{Value: models.PairKeyFor(founderA, founderB)},
			":pending":  &types.AttributeValueMemberS{Value: models.InviteStatusPending},
			":accepted": &types.AttributeValueMemberS{Value: models.InviteStatusAccepted},
			":now":      &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
	}

	items, err := r.Dynamo.QueryItems(ctx, input)
	if err != nil {
		return false, err
	}
	return len(items) > 0, nil
}

// CountCreatedSince counts invites the founder created at or after `since`.
func (r *InviteRepository) CountCreatedSince(ctx context.Context, inviterID string, since time.Time) (int, error) {
	tableName := models.Invite{}.TableName()
	input := &dynamodb.QueryInput{
		TableName:              &tableName,
		IndexName:              aws.String("InviterIndex"),
		KeyConditionExpression: aws.String("inviterId = :inviterId AND createdAt >= :since"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inviterId": &types.AttributeValueMemberS{Value: inviterID},
			":since":     &types.AttributeValueMemberN{Value: strconv.FormatInt(since.Unix(), 10)},
		},
	}

	return r.Dynamo.CountItems(ctx, input)
}
