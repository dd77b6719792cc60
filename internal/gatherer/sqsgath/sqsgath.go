package sqsgath

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/programme-lv/bojclient/internal/gatherer/apigath"
)

// DefaultRegion is used when neither the environment nor the shared AWS
// config names one.
const DefaultRegion = "eu-central-1"

// SendMessageAPI is the part of *sqs.Client the gatherer uses.
type SendMessageAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type sqsPublisher struct {
	client   SendMessageAPI
	queueUrl string
	runUuid  string
}

func (p *sqsPublisher) Publish(ctx context.Context, body []byte) error {
	_, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueUrl),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"run_uuid": {DataType: aws.String("String"), StringValue: aws.String(p.runUuid)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", p.queueUrl, err)
	}
	return nil
}

// NewClient loads the default AWS configuration chain.
func NewClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	return sqs.NewFromConfig(cfg), nil
}

// New creates a gatherer that sends run progress to an SQS queue. Sends are
// bounded by ctx.
func New(ctx context.Context, client SendMessageAPI, runUuid string, queueUrl string, logger *slog.Logger) *apigath.Gatherer {
	return apigath.New(ctx, runUuid, &sqsPublisher{client: client, queueUrl: queueUrl, runUuid: runUuid}, logger)
}
