package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lshigami/mockround/config"
)

func TestEncode(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	body, err := encode(RoundSubmitted, map[string]int{"score": 80}, at)

	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"round.submitted","payload":{"score":80},"occurred_at":"2026-01-02T03:04:05Z"}`, string(body))
}

func TestEncode_UnsupportedPayload(t *testing.T) {
	_, err := encode(RoundSubmitted, make(chan int), time.Now())

	assert.Error(t, err)
}

func TestNewPublisher_WithoutURLIsNop(t *testing.T) {
	p, err := NewPublisher(&config.Config{})

	require.NoError(t, err)
	assert.IsType(t, NopPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), RoundFeedbackCreated, nil))
	assert.NoError(t, p.Close())
}
