package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/portal360/admin-api/internal/domain"
)

// TriggerRepo provides typed DynamoDB operations for the email-triggers table.
type TriggerRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewTriggerRepo(client *dynamodb.Client, tableName string) *TriggerRepo {
	return &TriggerRepo{client: client, tableName: tableName}
}

func (r *TriggerRepo) Put(ctx context.Context, t *domain.EmailTrigger) error {
	item, err := attributevalue.MarshalMap(t)
	if err != nil {
		return fmt.Errorf("marshal trigger: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *TriggerRepo) Get(ctx context.Context, triggerID string) (*domain.EmailTrigger, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("trigger_id", triggerID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("trigger not found: %w", domain.ErrNotFound)
	}
	var t domain.EmailTrigger
	if err := attributevalue.UnmarshalMap(out.Item, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Scan returns every trigger. The table is small (a handful of automation
// rules per deployment), so a full scan is fine.
func (r *TriggerRepo) Scan(ctx context.Context) ([]domain.EmailTrigger, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	var triggers []domain.EmailTrigger
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &triggers); err != nil {
		return nil, err
	}
	return triggers, nil
}

func (r *TriggerRepo) Update(ctx context.Context, triggerID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("trigger_id", triggerID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

// HardDelete removes the trigger record. Triggers have no soft-delete;
// the portal's delete action is final.
func (r *TriggerRepo) HardDelete(ctx context.Context, triggerID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("trigger_id", triggerID),
	})
	return err
}
