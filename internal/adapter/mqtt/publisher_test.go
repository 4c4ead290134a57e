package mqtt

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/couchcryptid/plant-survivability-service/internal/config"
	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	snap := domain.Snapshot{ID: "abc", Plant: "Kale - Lacinato", Year: 2025}

	topic, payload, err := encode("survivability/snapshots", snap)
	require.NoError(t, err)
	assert.Equal(t, "survivability/snapshots/abc", topic)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "Kale - Lacinato", decoded["plant"])
}

func TestPublisher_NotConnected(t *testing.T) {
	cfg := &config.Config{MQTTBroker: "localhost", MQTTPort: 1883, MQTTClientID: "test", MQTTTopic: "t"}
	p := NewPublisher(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.False(t, p.IsConnected())
	require.ErrorIs(t, p.CheckReadiness(context.Background()), ErrNotConnected)
	require.ErrorIs(t, p.LoadBatch(context.Background(), []domain.Snapshot{{ID: "x"}}), ErrNotConnected)
	require.NoError(t, p.LoadBatch(context.Background(), nil))
}
