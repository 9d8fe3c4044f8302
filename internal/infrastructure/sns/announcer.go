package sns

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/portal360/admin-api/internal/config"
)

// Announcer publishes configuration-change notices to an SNS topic so
// downstream consumers (the delivery engine, cache invalidators) learn that
// a trigger or feature changed. It carries no scheduling semantics.
type Announcer interface {
	Announce(ctx context.Context, entity, action, id string) error
}

type announcer struct {
	client   *sns.Client
	topicARN string
}

type announcement struct {
	Entity string `json:"entity"`
	Action string `json:"action"` // created | updated | deleted | toggled
	ID     string `json:"id"`
}

func NewAnnouncer(cfg *config.Config) (Announcer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &announcer{client: sns.NewFromConfig(awsCfg), topicARN: cfg.SNSTopicARN}, nil
}

func (a *announcer) Announce(ctx context.Context, entity, action, id string) error {
	body, err := json.Marshal(announcement{Entity: entity, Action: action, ID: id})
	if err != nil {
		return err
	}
	msg := string(body)
	_, err = a.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(a.topicARN),
		Message:  &msg,
	})
	return err
}
