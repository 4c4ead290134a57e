package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Data sources accepted by DATA_SOURCE.
const (
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Snapshot sinks accepted by SNAPSHOT_SINK.
const (
	SinkNone  = "none"
	SinkKafka = "kafka"
	SinkMQTT  = "mqtt"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Input tables.
	DataSource         string
	ClimateFile        string
	ClimateDelimiter   rune
	PlantsFile         string
	DatabaseDSN        string
	GeoJSONDir         string
	GeoJSONDefault     string
	CountryAliasesFile string

	// Scoring and rendering.
	ColorScale        string
	DefaultYear       int
	DefaultTempWeight int
	ScoreWorkers      int

	// Snapshot publishing.
	SnapshotSink       string
	SnapshotQueueSize  int
	KafkaBrokers       []string
	KafkaSnapshotTopic string
	MQTTBroker         string
	MQTTPort           int
	MQTTClientID       string
	MQTTTopic          string

	// Mapbox geocoding configuration.
	MapboxToken     string
	MapboxEnabled   bool
	MapboxTimeout   time.Duration
	MapboxCacheSize int

	// TLS via ACME; empty TLSDomain serves plain HTTP.
	TLSDomain  string
	TLSCertDir string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	mapboxTimeoutStr := sharedcfg.EnvOrDefault("MAPBOX_TIMEOUT", "5s")
	mapboxTimeout, err := time.ParseDuration(mapboxTimeoutStr)
	if err != nil || mapboxTimeout <= 0 {
		return nil, errors.New("invalid MAPBOX_TIMEOUT")
	}

	delim, err := parseDelimiter(sharedcfg.EnvOrDefault("CLIMATE_DELIMITER", ";"))
	if err != nil {
		return nil, err
	}

	defaultYear, err := parseInt("DEFAULT_YEAR", 2025)
	if err != nil {
		return nil, err
	}
	defaultWeight, err := parseInt("DEFAULT_TEMP_WEIGHT", 50)
	if err != nil {
		return nil, err
	}
	if defaultWeight < 0 || defaultWeight > 100 {
		return nil, fmt.Errorf("invalid DEFAULT_TEMP_WEIGHT: %d not in [0, 100]", defaultWeight)
	}
	workers, err := parseInt("SCORE_WORKERS", 1)
	if err != nil || workers < 1 {
		return nil, errors.New("invalid SCORE_WORKERS: must be a positive integer")
	}
	queueSize, err := parseInt("SNAPSHOT_QUEUE_SIZE", 64)
	if err != nil || queueSize < 1 {
		return nil, errors.New("invalid SNAPSHOT_QUEUE_SIZE: must be a positive integer")
	}
	mqttPort, err := parseInt("MQTT_PORT", 1883)
	if err != nil || mqttPort < 1 || mqttPort > 65535 {
		return nil, errors.New("invalid MQTT_PORT")
	}

	mapboxToken := os.Getenv("MAPBOX_TOKEN")
	mapboxEnabled := mapboxToken != ""
	if v := os.Getenv("MAPBOX_ENABLED"); v != "" {
		mapboxEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		DataSource:         strings.ToLower(sharedcfg.EnvOrDefault("DATA_SOURCE", SourceCSV)),
		ClimateFile:        sharedcfg.EnvOrDefault("CLIMATE_FILE", "data/climate_data.csv"),
		ClimateDelimiter:   delim,
		PlantsFile:         sharedcfg.EnvOrDefault("PLANTS_FILE", "data/plants.csv"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		GeoJSONDir:         sharedcfg.EnvOrDefault("GEOJSON_DIR", "data/geojson"),
		GeoJSONDefault:     sharedcfg.EnvOrDefault("GEOJSON_DEFAULT", "countries"),
		CountryAliasesFile: os.Getenv("COUNTRY_ALIASES_FILE"),

		ColorScale:        strings.ToLower(sharedcfg.EnvOrDefault("COLOR_SCALE", "rdylgn")),
		DefaultYear:       defaultYear,
		DefaultTempWeight: defaultWeight,
		ScoreWorkers:      workers,

		SnapshotSink:       strings.ToLower(sharedcfg.EnvOrDefault("SNAPSHOT_SINK", SinkNone)),
		SnapshotQueueSize:  queueSize,
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSnapshotTopic: sharedcfg.EnvOrDefault("KAFKA_SNAPSHOT_TOPIC", "survivability-snapshots"),
		MQTTBroker:         sharedcfg.EnvOrDefault("MQTT_BROKER", "localhost"),
		MQTTPort:           mqttPort,
		MQTTClientID:       sharedcfg.EnvOrDefault("MQTT_CLIENT_ID", "plant-survivability"),
		MQTTTopic:          sharedcfg.EnvOrDefault("MQTT_TOPIC", "survivability/snapshots"),

		MapboxToken:     mapboxToken,
		MapboxEnabled:   mapboxEnabled,
		MapboxTimeout:   mapboxTimeout,
		MapboxCacheSize: parseMapboxCacheSize(),

		TLSDomain:  os.Getenv("TLS_DOMAIN"),
		TLSCertDir: sharedcfg.EnvOrDefault("TLS_CERT_DIR", "certs"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.DataSource {
	case SourceCSV:
		if cfg.ClimateFile == "" || cfg.PlantsFile == "" {
			return errors.New("CLIMATE_FILE and PLANTS_FILE are required when DATA_SOURCE=csv")
		}
	case SourceSQLite, SourcePostgres:
		if cfg.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required when DATA_SOURCE=%s", cfg.DataSource)
		}
	default:
		return fmt.Errorf("invalid DATA_SOURCE %q: want csv, sqlite or postgres", cfg.DataSource)
	}

	switch cfg.ColorScale {
	case "rdylgn", "iridescent":
	default:
		return fmt.Errorf("invalid COLOR_SCALE %q: want rdylgn or iridescent", cfg.ColorScale)
	}

	switch cfg.SnapshotSink {
	case SinkNone:
	case SinkKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return errors.New("KAFKA_BROKERS is required when SNAPSHOT_SINK=kafka")
		}
		if cfg.KafkaSnapshotTopic == "" {
			return errors.New("KAFKA_SNAPSHOT_TOPIC is required when SNAPSHOT_SINK=kafka")
		}
	case SinkMQTT:
		if cfg.MQTTBroker == "" || cfg.MQTTTopic == "" {
			return errors.New("MQTT_BROKER and MQTT_TOPIC are required when SNAPSHOT_SINK=mqtt")
		}
	default:
		return fmt.Errorf("invalid SNAPSHOT_SINK %q: want none, kafka or mqtt", cfg.SnapshotSink)
	}

	if cfg.MapboxEnabled && cfg.MapboxToken == "" {
		return errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}
	return nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError || r == '"' || r == '\n' || r == '\r' {
		return 0, fmt.Errorf("invalid CLIMATE_DELIMITER %q: must be a single character", s)
	}
	return r, nil
}

func parseMapboxCacheSize() int {
	if s := os.Getenv("MAPBOX_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
