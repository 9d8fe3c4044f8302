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

// FeatureRepo provides typed DynamoDB operations for the feature-toggles table.
type FeatureRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewFeatureRepo(client *dynamodb.Client, tableName string) *FeatureRepo {
	return &FeatureRepo{client: client, tableName: tableName}
}

func (r *FeatureRepo) Put(ctx context.Context, f *domain.Feature) error {
	item, err := attributevalue.MarshalMap(f)
	if err != nil {
		return fmt.Errorf("marshal feature: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *FeatureRepo) Get(ctx context.Context, featureID string) (*domain.Feature, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("feature_id", featureID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("feature not found: %w", domain.ErrNotFound)
	}
	var f domain.Feature
	if err := attributevalue.UnmarshalMap(out.Item, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeatureRepo) Scan(ctx context.Context) ([]domain.Feature, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	var features []domain.Feature
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &features); err != nil {
		return nil, err
	}
	return features, nil
}

func (r *FeatureRepo) Update(ctx context.Context, featureID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("feature_id", featureID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}
