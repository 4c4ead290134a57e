// Package mqtt publishes survivability snapshots to an MQTT broker.
package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/plant-survivability-service/internal/config"
	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	qos            = byte(1) // at least once
	publishTimeout = 5 * time.Second
)

// ErrNotConnected is returned when publishing while the broker is unreachable.
var ErrNotConnected = errors.New("mqtt client not connected")

// Publisher writes snapshots as retained JSON messages under
// "<topic>/<snapshot id>". It implements pipeline.SnapshotLoader.
type Publisher struct {
	client paho.Client
	topic  string
	logger *slog.Logger

	mu        sync.RWMutex
	connected bool
}

// NewPublisher configures an auto-reconnecting MQTT client. Call Connect
// before publishing.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	p := &Publisher{topic: cfg.MQTTTopic, logger: logger}

	opts := paho.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.MQTTBroker, cfg.MQTTPort))
	opts.SetClientID(cfg.MQTTClientID)
	opts.SetCleanSession(true)

	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetMaxReconnectInterval(60 * time.Second)

	opts.SetKeepAlive(30 * time.Second)
	opts.SetPingTimeout(10 * time.Second)

	opts.SetOnConnectHandler(func(_ paho.Client) {
		p.setConnected(true)
		logger.Info("mqtt connected", "broker", cfg.MQTTBroker, "port", cfg.MQTTPort)
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		p.setConnected(false)
		logger.Warn("mqtt connection lost", "error", err)
	})

	p.client = paho.NewClient(opts)
	return p
}

// Connect starts the connection and waits until it succeeds or ctx ends.
func (p *Publisher) Connect(ctx context.Context) error {
	if p.IsConnected() {
		return nil
	}
	token := p.client.Connect()

	const poll = 200 * time.Millisecond
	for !token.WaitTimeout(poll) {
		if ctx.Err() != nil {
			p.client.Disconnect(0)
			return ctx.Err()
		}
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt connect: %w", err)
	}
	return nil
}

// LoadBatch publishes each snapshot, stopping at the first failure.
func (p *Publisher) LoadBatch(ctx context.Context, snapshots []domain.Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	if !p.IsConnected() {
		return ErrNotConnected
	}
	for _, s := range snapshots {
		topic, payload, err := encode(p.topic, s)
		if err != nil {
			return err
		}
		token := p.client.Publish(topic, qos, true, payload)
		select {
		case <-token.Done():
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(publishTimeout):
			return fmt.Errorf("publish %s: timeout", topic)
		}
		if err := token.Error(); err != nil {
			return fmt.Errorf("publish %s: %w", topic, err)
		}
	}
	p.logger.Debug("snapshots published", "count", len(snapshots), "topic", p.topic)
	return nil
}

// CheckReadiness reports whether the broker connection is up.
func (p *Publisher) CheckReadiness(_ context.Context) error {
	if !p.IsConnected() {
		return ErrNotConnected
	}
	return nil
}

// IsConnected returns whether the client is connected.
func (p *Publisher) IsConnected() bool {
	p.mu.RLock()
	connected := p.connected
	p.mu.RUnlock()
	return connected && p.client.IsConnected()
}

// Close disconnects from the broker.
func (p *Publisher) Close() error {
	p.client.Disconnect(250)
	p.setConnected(false)
	p.logger.Info("mqtt publisher disconnected")
	return nil
}

func (p *Publisher) setConnected(v bool) {
	p.mu.Lock()
	p.connected = v
	p.mu.Unlock()
}

func encode(base string, s domain.Snapshot) (string, []byte, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return "", nil, fmt.Errorf("serialize snapshot: %w", err)
	}
	return base + "/" + s.ID, payload, nil
}
