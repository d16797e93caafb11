package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/errs"
)

const defaultActivityLogLimit = 500

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string

	CancellationWindow time.Duration
	SnapshotSchedule   string
	SeedDemoData       bool
	// PaymentLimit makes the simulated gateway decline larger charges; zero approves all.
	PaymentLimit     kernel.Money
	ActivityLogLimit int
}

// LoadConfig reads the configuration through getenv (os.Getenv in
// production). Unset optional values fall back to their defaults; malformed
// values are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:               getenv("HTTP_PORT"),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 getenv("DB_PORT"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              getenv("DB_SSLMODE"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		CancellationWindow:     services.DefaultCancellationWindow,
		SnapshotSchedule:       getenv("SNAPSHOT_INTERVAL_CRON"),
		ActivityLogLimit:       defaultActivityLogLimit,
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.DBSslMode == "" {
		config.DBSslMode = "disable"
	}
	if config.KafkaOrderChangedTopic == "" {
		config.KafkaOrderChangedTopic = "order.changed"
	}
	if config.SnapshotSchedule == "" {
		config.SnapshotSchedule = jobs.DefaultAutosaveSchedule
	}

	var errList []error
	if raw := getenv("CANCELLATION_WINDOW"); raw != "" {
		window, err := time.ParseDuration(raw)
		switch {
		case err != nil:
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("CANCELLATION_WINDOW", err))
		case window <= 0:
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("CANCELLATION_WINDOW",
				fmt.Errorf("%s is not positive", window)))
		default:
			config.CancellationWindow = window
		}
	}
	if raw := getenv("SEED_DEMO_DATA"); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("SEED_DEMO_DATA", err))
		}
		config.SeedDemoData = seed
	}
	if raw := getenv("PAYMENT_DECLINE_ABOVE"); raw != "" {
		limit, err := kernel.ParseMoney(raw)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("PAYMENT_DECLINE_ABOVE", err))
		}
		config.PaymentLimit = limit
	}
	if raw := getenv("ACTIVITY_LOG_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("ACTIVITY_LOG_LIMIT", err))
		}
		config.ActivityLogLimit = limit
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// HasDatabase reports whether a snapshot database is configured.
func (c Config) HasDatabase() bool {
	return c.DBHost != ""
}

// HasKafka reports whether order events are forwarded to Kafka.
func (c Config) HasKafka() bool {
	return c.KafkaHost != ""
}

// DatabaseDSN builds the libpq keyword/value connection string.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
