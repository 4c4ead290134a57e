package domain

// DefaultYear and DefaultTemperatureWeight are the initial selector values.
const (
	DefaultYear              = 2025
	DefaultTemperatureWeight = 50
)

// Request carries the three user selections that drive one map computation.
type Request struct {
	PlantID           string `json:"plant"`
	Year              int    `json:"year"`
	TemperatureWeight int    `json:"temp_weight"` // percent, 0-100
}

// Resolved is a Request that passed boundary validation.
type Resolved struct {
	Plant   Plant
	Year    int
	Weights WeightVector
}

// Resolve validates a request against the loaded tables. Weight, year and
// plant problems are reported here, before any scoring work begins.
func Resolve(req Request, plants *PlantCatalog, climate *ClimateTable) (Resolved, error) {
	w, err := WeightsFromPercent(req.TemperatureWeight)
	if err != nil {
		return Resolved{}, err
	}
	if err := climate.CheckYear(req.Year); err != nil {
		return Resolved{}, err
	}
	plant, err := plants.Lookup(req.PlantID)
	if err != nil {
		return Resolved{}, err
	}
	if err := plant.Ranges.Validate(); err != nil {
		return Resolved{}, err
	}
	return Resolved{Plant: plant, Year: req.Year, Weights: w}, nil
}
