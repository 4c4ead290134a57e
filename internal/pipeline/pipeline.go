package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/couchcryptid/plant-survivability-service/internal/observability"
	"github.com/couchcryptid/storm-data-shared/retry"
)

// SnapshotLoader writes a batch of snapshots to the destination.
type SnapshotLoader interface {
	LoadBatch(ctx context.Context, snapshots []domain.Snapshot) error
}

// Publisher queues computed snapshots and writes them to a SnapshotLoader in
// the background, so a slow or unavailable sink never delays a map request.
type Publisher struct {
	loader    SnapshotLoader
	queue     chan domain.Snapshot
	logger    *slog.Logger
	metrics   *observability.Metrics
	failing   atomic.Bool
	batchSize int
}

// NewPublisher creates a Publisher with a queue of queueSize snapshots.
func NewPublisher(l SnapshotLoader, logger *slog.Logger, metrics *observability.Metrics, queueSize int) *Publisher {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Publisher{
		loader:    l,
		queue:     make(chan domain.Snapshot, queueSize),
		logger:    logger,
		metrics:   metrics,
		batchSize: queueSize,
	}
}

// Enqueue hands a snapshot to the publisher without blocking. It returns
// false and counts a drop when the queue is full.
func (p *Publisher) Enqueue(s domain.Snapshot) bool {
	select {
	case p.queue <- s:
		return true
	default:
		p.metrics.SnapshotsDropped.Inc()
		p.logger.Warn("snapshot queue full, dropping snapshot", "id", s.ID, "plant", s.Plant, "year", s.Year)
		return false
	}
}

// CheckReadiness returns an error while the sink is rejecting writes.
func (p *Publisher) CheckReadiness(_ context.Context) error {
	if p.failing.Load() {
		return errors.New("snapshot sink is failing")
	}
	return nil
}

// Run drains the queue into the loader until the context is cancelled.
func (p *Publisher) Run(ctx context.Context) error {
	p.logger.Info("snapshot publisher started", "queue_size", cap(p.queue))
	p.metrics.PublisherRunning.Set(1)
	defer p.metrics.PublisherRunning.Set(0)

	// Exponential backoff: start at 200ms, double each retry, cap at 5s.
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	for {
		batch, ok := p.nextBatch(ctx)
		if !ok {
			p.logger.Info("snapshot publisher stopping", "reason", ctx.Err())
			return nil
		}
		if !p.publishBatch(ctx, batch, &backoff, maxBackoff) {
			p.logger.Info("snapshot publisher stopping", "reason", ctx.Err(), "unpublished", len(batch))
			return nil
		}
	}
}

// nextBatch blocks for one snapshot, then takes whatever else is already
// queued, up to batchSize. Returns false if the publisher should stop.
func (p *Publisher) nextBatch(ctx context.Context) ([]domain.Snapshot, bool) {
	var batch []domain.Snapshot
	select {
	case <-ctx.Done():
		return nil, false
	case s := <-p.queue:
		batch = append(batch, s)
	}
	for len(batch) < p.batchSize {
		select {
		case s := <-p.queue:
			batch = append(batch, s)
		default:
			return batch, true
		}
	}
	return batch, true
}

// publishBatch writes batch, retrying with backoff until it succeeds.
// Returns false if the context ended first.
func (p *Publisher) publishBatch(ctx context.Context, batch []domain.Snapshot, backoff *time.Duration, maxBackoff time.Duration) bool {
	for {
		err := p.loader.LoadBatch(ctx, batch)
		if err == nil {
			p.metrics.SnapshotsPublished.Add(float64(len(batch)))
			p.metrics.SnapshotBatchSize.Observe(float64(len(batch)))
			p.failing.Store(false)
			*backoff = 200 * time.Millisecond
			return true
		}
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("publish snapshots failed", "error", err, "batch_size", len(batch))
		p.metrics.SnapshotErrors.Inc()
		p.failing.Store(true)
		if !p.backoffOrStop(ctx, backoff, maxBackoff) {
			return false
		}
	}
}

// backoffOrStop sleeps with the current backoff and advances it. Returns
// false if the publisher should stop.
func (p *Publisher) backoffOrStop(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if !retry.SleepWithContext(ctx, *backoff) {
		return false
	}
	*backoff = retry.NextBackoff(*backoff, maxBackoff)
	return true
}
