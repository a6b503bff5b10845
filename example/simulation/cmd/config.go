package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	defaultWorkers           = 32
	defaultTasks             = 100_000
	defaultMaxTimestamp      = 86_400 // one day in seconds
	defaultQueryWindow       = 100
	defaultRemoveProbability = 0.5
	defaultLogLevel          = "info"
)

var (
	ErrLoadingConfigFailed = errors.New("loading the simulation config failed")
	ErrInvalidConfig       = errors.New("invalid simulation config")
)

// Config holds all simulation configuration parameters.
type Config struct {
	Workers           int      `yaml:"workers"            toml:"workers"            json:"workers"`
	Tasks             int      `yaml:"tasks"              toml:"tasks"              json:"tasks"`
	EventTypes        []string `yaml:"event_types"        toml:"event_types"        json:"event_types"`
	MaxTimestamp      int64    `yaml:"max_timestamp"      toml:"max_timestamp"      json:"max_timestamp"`
	QueryWindow       int64    `yaml:"query_window"       toml:"query_window"       json:"query_window"`
	RemoveProbability float64  `yaml:"remove_probability" toml:"remove_probability" json:"remove_probability"`
	Seed              uint64   `yaml:"seed"               toml:"seed"               json:"seed"`
	LogLevel          string   `yaml:"log_level"          toml:"log_level"          json:"log_level"`
	StoreLogging      bool     `yaml:"store_logging"      toml:"store_logging"      json:"store_logging"`
}

func defaultConfig() Config {
	return Config{
		Workers:           defaultWorkers,
		Tasks:             defaultTasks,
		EventTypes:        []string{"A", "B", "C", "D", "E", "F"},
		MaxTimestamp:      defaultMaxTimestamp,
		QueryWindow:       defaultQueryWindow,
		RemoveProbability: defaultRemoveProbability,
		LogLevel:          defaultLogLevel,
	}
}

// LoadConfig reads the config file at path on top of the defaults.
// Keys missing from the file keep their default value. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrLoadingConfigFailed, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		err = fmt.Errorf("unsupported config file extension %q (supported: .yaml, .yml, .toml)", filepath.Ext(path))
	}

	if err != nil {
		return Config{}, errors.Join(ErrLoadingConfigFailed, err)
	}

	return cfg, nil
}

// Validate checks the ranges of all parameters.
func (c Config) Validate() error {
	var problems []error

	if c.Workers < 1 {
		problems = append(problems, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}

	if c.Tasks < 0 {
		problems = append(problems, fmt.Errorf("tasks must not be negative, got %d", c.Tasks))
	}

	if len(c.EventTypes) == 0 {
		problems = append(problems, errors.New("event_types must not be empty"))
	}

	seen := make(map[string]struct{}, len(c.EventTypes))
	for _, eventType := range c.EventTypes {
		if eventType == "" {
			problems = append(problems, errors.New("event_types must not contain an empty type"))
		}

		if _, duplicate := seen[eventType]; duplicate {
			problems = append(problems, fmt.Errorf("event_types contains %q twice", eventType))
		}

		seen[eventType] = struct{}{}
	}

	if c.MaxTimestamp < 1 {
		problems = append(problems, fmt.Errorf("max_timestamp must be at least 1, got %d", c.MaxTimestamp))
	}

	if c.QueryWindow < 0 {
		problems = append(problems, fmt.Errorf("query_window must not be negative, got %d", c.QueryWindow))
	}

	if c.RemoveProbability < 0 || c.RemoveProbability > 1 {
		problems = append(problems, fmt.Errorf("remove_probability %f out of range [0, 1]", c.RemoveProbability))
	}

	if len(c.EventTypes) > 0 && c.MaxTimestamp > 0 && int64(c.Tasks) > int64(len(c.EventTypes))*c.MaxTimestamp {
		problems = append(problems, fmt.Errorf(
			"tasks (%d) exceed the number of distinct events (%d event types x max_timestamp %d)",
			c.Tasks, len(c.EventTypes), c.MaxTimestamp,
		))
	}

	if _, err := parseLogLevel(c.LogLevel); err != nil {
		problems = append(problems, err)
	}

	if len(problems) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, problems...)...)
	}

	return nil
}

// SlogLevel returns the configured log level; call Validate first.
func (c Config) SlogLevel() slog.Level {
	level, _ := parseLogLevel(c.LogLevel)
	return level
}

func parseLogLevel(level string) (slog.Level, error) {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q is not one of debug, info, warn, error", level)
	}

	return parsed, nil
}

// parseFlags parses the command line and returns the configuration: the file given with -config,
// overridden by every flag which was set explicitly.
func parseFlags(args []string) (Config, error) {
	flags := flag.NewFlagSet("simulation", flag.ContinueOnError)

	var (
		configPath        = flags.String("config", "", "path to a YAML or TOML config file")
		workers           = flags.Int("workers", defaultWorkers, "number of concurrent workers")
		tasks             = flags.Int("tasks", defaultTasks, "number of tasks to run")
		eventTypes        = flags.String("event-types", "A,B,C,D,E,F", "comma-separated event types")
		maxTimestamp      = flags.Int64("max-timestamp", defaultMaxTimestamp, "timestamps are drawn from [0, max-timestamp)")
		queryWindow       = flags.Int64("query-window", defaultQueryWindow, "each task queries [ts-window, ts+window]")
		removeProbability = flags.Float64("remove-probability", defaultRemoveProbability, "probability that a task removes its event")
		seed              = flags.Uint64("seed", 0, "random seed, 0 picks one")
		logLevel          = flags.String("log-level", defaultLogLevel, "debug, info, warn or error")
		storeLogging      = flags.Bool("store-logging", false, "pass the logger to the event store")
	)

	if err := flags.Parse(args); err != nil {
		return Config{}, errors.Join(ErrLoadingConfigFailed, err)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return Config{}, err
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Workers = *workers
		case "tasks":
			cfg.Tasks = *tasks
		case "event-types":
			cfg.EventTypes = splitEventTypes(*eventTypes)
		case "max-timestamp":
			cfg.MaxTimestamp = *maxTimestamp
		case "query-window":
			cfg.QueryWindow = *queryWindow
		case "remove-probability":
			cfg.RemoveProbability = *removeProbability
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		case "store-logging":
			cfg.StoreLogging = *storeLogging
		}
	})

	return cfg, nil
}

func splitEventTypes(commaSeparated string) []string {
	parts := strings.Split(commaSeparated, ",")
	eventTypes := make([]string, 0, len(parts))

	for _, part := range parts {
		eventTypes = append(eventTypes, strings.TrimSpace(part))
	}

	return eventTypes
}
