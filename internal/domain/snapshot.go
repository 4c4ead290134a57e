package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// snapshotNamespace scopes deterministic snapshot ids.
var snapshotNamespace = uuid.MustParse("5b0f3c8e-6a4e-4c53-9d2e-2f8f7b1c9a10")

// SnapshotEntry is one country's score in a published snapshot.
type SnapshotEntry struct {
	Country CanonicalName `json:"country"`
	Score   float64       `json:"survivability_score"`
}

// Snapshot is the publishable record of one computed map.
type Snapshot struct {
	ID          string          `json:"id"`
	Plant       string          `json:"plant"`
	Year        int             `json:"year"`
	Weights     WeightVector    `json:"weights"`
	Scale       string          `json:"scale"`
	Scores      []SnapshotEntry `json:"scores"`
	Summary     Summary         `json:"summary"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// NewSnapshot builds a snapshot from a score table. The id depends only on
// plant, year, weights and scale, so recomputing the same selection yields
// the same id and downstream consumers can upsert.
func NewSnapshot(plant string, scale string, scores ScoreTable) Snapshot {
	key := fmt.Sprintf("%s|%d|%d|%s", plant, scores.Year, scores.Weights.TemperaturePercent(), scale)

	countries := scores.Countries()
	entries := make([]SnapshotEntry, 0, len(countries))
	for _, c := range countries {
		entries = append(entries, SnapshotEntry{Country: c, Score: scores.Scores[c].Score})
	}

	return Snapshot{
		ID:          uuid.NewSHA1(snapshotNamespace, []byte(key)).String(),
		Plant:       plant,
		Year:        scores.Year,
		Weights:     scores.Weights,
		Scale:       scale,
		Scores:      entries,
		Summary:     Summarize(scores.Values()),
		GeneratedAt: clock.Now().UTC(),
	}
}
