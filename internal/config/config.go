package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	SQLiteDBPath string

	// AMQP. Empty URL disables event publishing entirely.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Over-limit handling for quick spend entry: "reject" or "allow"
	OverLimitPolicy string

	// Issue tracker
	TrackerBaseURL string
	TrackerToken   string

	// Audit worker
	AuditTrailLimit int
}

func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8081"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/takip.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "takip"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "mutation_events"),

		OverLimitPolicy: getEnv("OVER_LIMIT_POLICY", "reject"),

		TrackerBaseURL: getEnv("TRACKER_BASE_URL", "https://api.github.com"),
		TrackerToken:   getEnv("TRACKER_TOKEN", ""),

		AuditTrailLimit: getEnvInt("AUDIT_TRAIL_LIMIT", 500),
	}

	return cfg
}

// Validate checks the configuration and returns one combined error listing
// everything wrong with it.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.OverLimitPolicy != "reject" && c.OverLimitPolicy != "allow" {
		errors = append(errors, fmt.Sprintf("invalid over-limit policy '%s': must be 'reject' or 'allow'", c.OverLimitPolicy))
	}

	if c.TrackerBaseURL != "" {
		if parsedURL, err := url.Parse(c.TrackerBaseURL); err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
			errors = append(errors, fmt.Sprintf("invalid tracker base URL '%s'", c.TrackerBaseURL))
		}
	}

	if c.AuditTrailLimit < 1 {
		errors = append(errors, fmt.Sprintf("invalid audit trail limit %d: must be at least 1", c.AuditTrailLimit))
	} else if c.AuditTrailLimit > 100000 {
		errors = append(errors, fmt.Sprintf("invalid audit trail limit %d: must be at most 100000", c.AuditTrailLimit))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
