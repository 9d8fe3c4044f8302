package domain

import "time"

// ContentAsset is a website-content file (hero image, legal PDF, banner)
// stored in S3 with its metadata record in DynamoDB.
type ContentAsset struct {
	AssetID          string    `json:"id" dynamodbav:"asset_id"`
	Object           string    `json:"object" dynamodbav:"object"` // S3 key
	Section          string    `json:"section" dynamodbav:"section"`
	Name             string    `json:"name" dynamodbav:"name"`
	Type             string    `json:"type" dynamodbav:"type"`
	Size             int64     `json:"size" dynamodbav:"size"`
	Hash             string    `json:"hash" dynamodbav:"hash"`
	UploadedByUserID string    `json:"uploaded_by" dynamodbav:"uploaded_by_user_id"`
	Enable           bool      `json:"enable" dynamodbav:"enable"`
	CreatedAt        time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt        time.Time `json:"updated" dynamodbav:"updated_at"`
}
