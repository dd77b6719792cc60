package sqsgath_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/programme-lv/bojclient/api"
	"github.com/programme-lv/bojclient/internal/boj"
	"github.com/programme-lv/bojclient/internal/gatherer/sqsgath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeQueue) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil
}

func TestSendsToQueue(t *testing.T) {
	q := &fakeQueue{}
	g := sqsgath.New(context.Background(), q, "run-7", "https://sqs.eu-central-1.amazonaws.com/1/boj-runs", nil)

	g.StartRun(1000, boj.Rust2018)
	g.FinishRun(nil, nil)

	require.Len(t, q.inputs, 2)
	in := q.inputs[0]
	assert.Equal(t, "https://sqs.eu-central-1.amazonaws.com/1/boj-runs", aws.ToString(in.QueueUrl))
	assert.Equal(t, "run-7", aws.ToString(in.MessageAttributes["run_uuid"].StringValue))

	var start api.StartRun
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(in.MessageBody)), &start))
	assert.Equal(t, api.StartRunMsg, start.MsgType)
	assert.Equal(t, "Rust2018", start.Language)
}

func TestSendErrorDoesNotPanic(t *testing.T) {
	q := &fakeQueue{err: errors.New("throttled")}
	g := sqsgath.New(context.Background(), q, "run-8", "queue", nil)

	assert.NotPanics(t, func() { g.LocateSolution(3) })
	assert.Len(t, q.inputs, 1)
}
