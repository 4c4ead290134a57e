//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/plant-survivability-service/internal/adapter/kafka"
	"github.com/couchcryptid/plant-survivability-service/internal/config"
	"github.com/couchcryptid/plant-survivability-service/internal/countryname"
	"github.com/couchcryptid/plant-survivability-service/internal/dataset"
	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/couchcryptid/plant-survivability-service/internal/observability"
	"github.com/couchcryptid/plant-survivability-service/internal/pipeline"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

const testSnapshotTopic = "test-snapshots"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node Kafka container and returns its broker address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("survivability-test"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

// createTopic creates a single-partition topic through the cluster controller.
func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)
	cc, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer cc.Close()

	require.NoError(t, cc.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

type publishedSnapshot struct {
	Snapshot domain.Snapshot
	Key      string
	Headers  map[string]string
}

func readSnapshot(ctx context.Context, t *testing.T, consumer *kafkago.Reader) publishedSnapshot {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from snapshot topic")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	var s domain.Snapshot
	require.NoError(t, json.Unmarshal(msg.Value, &s), "unmarshal snapshot")
	return publishedSnapshot{Snapshot: s, Key: string(msg.Key), Headers: headers}
}

func newConsumer(t *testing.T, broker string) *kafkago.Reader {
	t.Helper()
	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSnapshotTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })
	return consumer
}

const countriesGeoJSON = `{"type":"FeatureCollection","features":[
  {"type":"Feature","properties":{"NAME":"Brazil"},"geometry":null},
  {"type":"Feature","properties":{"NAME":"Germany"},"geometry":null}
]}`

func newService(t *testing.T, publisher *pipeline.Publisher, metrics *observability.Metrics) *pipeline.Service {
	t.Helper()
	plants, err := domain.NewPlantCatalog([]domain.Plant{{
		Species: "Kale", Variety: "Lacinato",
		Ranges: domain.PlantRanges{
			Temperature:   domain.ToleranceRange{Min: 10, Max: 30},
			Precipitation: domain.ToleranceRange{Min: 400, Max: 1200},
		},
	}})
	require.NoError(t, err)
	layer, err := dataset.ReadCollection(strings.NewReader(countriesGeoJSON), "countries")
	require.NoError(t, err)

	return pipeline.NewService(pipeline.Deps{
		Plants: plants,
		Climate: domain.NewClimateTable([]domain.ClimateRecord{
			{Country: "Brazil", Year: 2025, MinTemp: 20, MaxTemp: 40, MinPrec: 500, MaxPrec: 1000},
			{Country: "Germany", Year: 2025, MinTemp: -5, MaxTemp: 5, MinPrec: 600, MaxPrec: 800},
		}),
		Reconciler:    domain.NewReconciler(countryname.New()),
		Layers:        dataset.NewLayers(layer),
		Mapper:        domain.NewColorMapper(domain.RdYlGn{}),
		Scale:         "rdylgn",
		Publisher:     publisher,
		Logger:        discardLogger(),
		Metrics:       metrics,
		Workers:       1,
		DefaultYear:   2025,
		DefaultWeight: 50,
		DefaultLayer:  "countries",
	})
}

// TestKafkaWriter verifies kafka.Writer publishes a snapshot keyed by its id
// with plant, year and generated_at headers.
func TestKafkaWriter(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSnapshotTopic)

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaSnapshotTopic: testSnapshotTopic}
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	w, err := domain.WeightsFromPercent(50)
	require.NoError(t, err)
	scores := domain.ScoreTable{
		Year:    2025,
		Weights: w,
		Scores: map[domain.CanonicalName]domain.CountryScore{
			"Brazil": {Country: "Brazil", Score: 0.75},
		},
	}
	snap := domain.NewSnapshot("Kale - Lacinato", "rdylgn", scores)
	require.NoError(t, writer.LoadBatch(ctx, []domain.Snapshot{snap}))

	got := readSnapshot(ctx, t, newConsumer(t, broker))
	assert.Equal(t, snap.ID, got.Key)
	assert.Equal(t, "Kale - Lacinato", got.Headers["plant"])
	assert.Equal(t, "2025", got.Headers["year"])
	_, err = time.Parse(time.RFC3339, got.Headers["generated_at"])
	assert.NoError(t, err, "generated_at should be valid RFC3339")

	require.Len(t, got.Snapshot.Scores, 1)
	assert.Equal(t, domain.SnapshotEntry{Country: "Brazil", Score: 0.75}, got.Snapshot.Scores[0])
}

// TestMapPublishesSnapshots wires Service → Publisher → kafka.Writer and
// verifies every computed map reaches the topic, and that recomputing the
// same selection reuses the snapshot id.
func TestMapPublishesSnapshots(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSnapshotTopic)

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaSnapshotTopic: testSnapshotTopic}
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	metrics := observability.NewMetricsForTesting()
	publisher := pipeline.NewPublisher(writer, discardLogger(), metrics, 16)
	svc := newService(t, publisher, metrics)

	pubCtx, pubCancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- publisher.Run(pubCtx) }()

	var ids []string
	for _, weight := range []int{50, 100, 50} {
		res, err := svc.Map(ctx, domain.Request{PlantID: "Kale - Lacinato", Year: 2025, TemperatureWeight: weight}, "")
		require.NoError(t, err)
		ids = append(ids, res.Snapshot)
	}
	assert.Equal(t, ids[0], ids[2])
	assert.NotEqual(t, ids[0], ids[1])

	consumer := newConsumer(t, broker)
	received := make([]publishedSnapshot, 0, 3)
	for len(received) < 3 {
		received = append(received, readSnapshot(ctx, t, consumer))
	}

	pubCancel()
	require.NoError(t, <-errCh)

	for i, got := range received {
		assert.Equal(t, ids[i], got.Key)
		assert.Equal(t, ids[i], got.Snapshot.ID)
		assert.Equal(t, 2, got.Snapshot.Summary.Count)
	}
	assert.Equal(t, 1.0, received[1].Snapshot.Weights.Temperature)
}
