package natsgath

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/programme-lv/bojclient/internal/gatherer/apigath"
)

const connectTimeout = 5 * time.Second

type conn interface {
	Publish(subj string, data []byte) error
}

type natsPublisher struct {
	nc      conn
	subject string
}

func (p *natsPublisher) Publish(ctx context.Context, body []byte) error {
	if err := p.nc.Publish(p.subject, body); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.subject, err)
	}
	return nil
}

// Connect dials the NATS server at url.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name("bojsubmit"), nats.Timeout(connectTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats at %s: %w", url, err)
	}
	return nc, nil
}

// New creates a gatherer that streams run progress to the given subject.
// Call nc.Drain when the run is over so buffered messages are flushed.
func New(ctx context.Context, nc *nats.Conn, runUuid string, subject string, logger *slog.Logger) *apigath.Gatherer {
	return newGatherer(ctx, nc, runUuid, subject, logger)
}

func newGatherer(ctx context.Context, nc conn, runUuid string, subject string, logger *slog.Logger) *apigath.Gatherer {
	return apigath.New(ctx, runUuid, &natsPublisher{nc: nc, subject: subject}, logger)
}
