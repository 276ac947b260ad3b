package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"granary/internal/pkg/errs"
)

const (
	DefaultHTTPPort            = "8080"
	DefaultContainerCapacity   = 10.0
	DefaultStorageCapacity     = 25.0
	DefaultStockReportSchedule = "0 * * * * *"
)

type Config struct {
	HTTPPort          string
	ContainerCapacity float64
	StorageCapacity   float64

	// GoodsLabelsFile is a YAML file of kind code to display label. Empty
	// keeps the built-in labels.
	GoodsLabelsFile string

	// Cron schedules with a seconds field. Empty disables the job.
	StockReportSchedule         string
	EmptyContainerSweepSchedule string

	LogLevel slog.Level
	LogJSON  bool
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadConfig reads the configuration from the environment. Unset variables
// take their defaults; every malformed variable is reported.
func LoadConfig(lookup LookupFunc) (Config, error) {
	config := Config{
		HTTPPort:                    valueOr(lookup, "HTTP_PORT", DefaultHTTPPort),
		GoodsLabelsFile:             valueOr(lookup, "GOODS_LABELS_FILE", ""),
		StockReportSchedule:         valueOr(lookup, "STOCK_REPORT_SCHEDULE", DefaultStockReportSchedule),
		EmptyContainerSweepSchedule: valueOr(lookup, "EMPTY_CONTAINER_SWEEP_SCHEDULE", ""),
	}

	var problems []error
	collect := func(err error) {
		if err != nil {
			problems = append(problems, err)
		}
	}

	collect(validatePort(config.HTTPPort))

	var err error
	config.ContainerCapacity, err = parseFloat(lookup, "CONTAINER_CAPACITY", DefaultContainerCapacity)
	collect(err)
	config.StorageCapacity, err = parseFloat(lookup, "STORAGE_CAPACITY", DefaultStorageCapacity)
	collect(err)
	config.LogLevel, err = parseLevel(valueOr(lookup, "LOG_LEVEL", "info"))
	collect(err)
	config.LogJSON, err = parseFormat(valueOr(lookup, "LOG_FORMAT", "text"))
	collect(err)

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %w", errors.Join(problems...))
	}
	return config, nil
}

func valueOr(lookup LookupFunc, key, fallback string) string {
	if value, ok := lookup(key); ok {
		return strings.TrimSpace(value)
	}
	return fallback
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", err)
	}
	if n < 1 || n > 65535 {
		return errs.NewValueIsOutOfRangeError("HTTP_PORT", n, 1, 65535)
	}
	return nil
}

func parseFloat(lookup LookupFunc, key string, fallback float64) (float64, error) {
	raw := valueOr(lookup, key, "")
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return value, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

func parseFormat(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "text":
		return false, nil
	case "json":
		return true, nil
	default:
		return false, errs.NewValueIsInvalidErrorWithCause(
			"LOG_FORMAT",
			fmt.Errorf("%q is neither text nor json", raw),
		)
	}
}
