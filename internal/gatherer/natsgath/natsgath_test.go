package natsgath

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/programme-lv/bojclient/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	subjects []string
	bodies   [][]byte
	err      error
}

func (f *fakeConn) Publish(subj string, data []byte) error {
	f.subjects = append(f.subjects, subj)
	f.bodies = append(f.bodies, data)
	return f.err
}

func TestPublishesToSubject(t *testing.T) {
	nc := &fakeConn{}
	g := newGatherer(context.Background(), nc, "run-1", "boj.runs", nil)

	g.ResolveIdentity("alice")
	g.LocateSolution(55)

	assert.Equal(t, []string{"boj.runs", "boj.runs"}, nc.subjects)
	var msg api.LocateSolution
	require.NoError(t, json.Unmarshal(nc.bodies[1], &msg))
	assert.Equal(t, api.LocateSolutionMsg, msg.MsgType)
	assert.Equal(t, uint32(55), msg.SolutionID)
}

func TestPublishErrorIsWrapped(t *testing.T) {
	p := &natsPublisher{nc: &fakeConn{err: nats.ErrConnectionClosed}, subject: "boj.runs"}

	err := p.Publish(t.Context(), []byte("{}"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, nats.ErrConnectionClosed))
	assert.Contains(t, err.Error(), "boj.runs")
}

func TestConnectFailsWithoutServer(t *testing.T) {
	_, err := Connect("nats://127.0.0.1:1")
	assert.Error(t, err)
}
