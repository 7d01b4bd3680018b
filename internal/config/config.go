// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type Config struct {
	Server        Server        `yaml:"server" json:"server"` // configuration of the public REST server
	Name          string        `yaml:"name" json:"name" env:"APP_NAME" env-default:"zenvedtak"` // used for OTEL as an application identifier
	NodeId        int64         `yaml:"nodeId" json:"nodeId" env:"NODE_ID" env-default:"-1"`     // snowflake node, -1 derives it from the environment
	Database      Database      `yaml:"database" json:"database"`
	Kafka         Kafka         `yaml:"kafka" json:"kafka"`
	Lifecycle     Lifecycle     `yaml:"lifecycle" json:"lifecycle"`
	Collaborators Collaborators `yaml:"collaborators" json:"collaborators"`
	Tracing       Tracing       `yaml:"tracing" json:"tracing"`
}

type Server struct {
	Addr string `yaml:"addr" json:"addr" env:"REST_API_ADDR" env-default:":8080"`
}

type Database struct {
	Driver string `yaml:"driver" json:"driver" env:"DB_DRIVER" env-default:"sqlite"`
	Dsn    string `yaml:"dsn" json:"dsn" env:"DB_DSN" env-default:"file:zenvedtak.db?_pragma=busy_timeout(5000)"`
}

// Kafka is optional, lifecycle events are only exported when brokers are configured
type Kafka struct {
	Brokers      []string      `yaml:"brokers" json:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic        string        `yaml:"topic" json:"topic" env:"KAFKA_TOPIC" env-default:"vedtak-lifecycle"`
	WriteTimeout time.Duration `yaml:"writeTimeout" json:"writeTimeout" env:"KAFKA_WRITE_TIMEOUT" env-default:"10s"`
}

type Lifecycle struct {
	NotifyTimeout     time.Duration `yaml:"notifyTimeout" json:"notifyTimeout" env:"LIFECYCLE_NOTIFY_TIMEOUT" env-default:"5s"`
	SnapshotCacheSize int           `yaml:"snapshotCacheSize" json:"snapshotCacheSize" env:"LIFECYCLE_SNAPSHOT_CACHE_SIZE" env-default:"1024"` // 0 disables the cache, other instances' writes are seen after the ttl
	SnapshotCacheTTL  time.Duration `yaml:"snapshotCacheTTL" json:"snapshotCacheTTL" env:"LIFECYCLE_SNAPSHOT_CACHE_TTL" env-default:"1m"`
}

type Collaborators struct {
	CaseProcessingURL string        `yaml:"caseProcessingUrl" json:"caseProcessingUrl" env:"CASE_PROCESSING_URL"`
	CaseContentURL    string        `yaml:"caseContentUrl" json:"caseContentUrl" env:"CASE_CONTENT_URL"`
	CoordinationURL   string        `yaml:"coordinationUrl" json:"coordinationUrl" env:"COORDINATION_URL"`
	LetterURL         string        `yaml:"letterUrl" json:"letterUrl" env:"LETTER_URL"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" env:"COLLABORATOR_TIMEOUT" env-default:"10s"`
}

type Tracing struct {
	Enabled  bool   `yaml:"enabled" json:"enabled" env:"OTEL_ENABLED" env-default:"false"`
	Endpoint string `yaml:"endpoint" json:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Name     string `yaml:"name" json:"name" env:"OTEL_SERVICE_NAME" env-default:"zenvedtak"`
	// TransferHeaders are copied from incoming requests onto the request span
	TransferHeaders []string `yaml:"transferHeaders" json:"transferHeaders" env:"OTEL_TRANSFER_HEADERS" env-separator:"," env-default:"X-Correlation-Id"`
}

func (c Config) validate() error {
	var errJoin error
	switch c.Database.Driver {
	case DriverPostgres, DriverSqlite:
	default:
		errJoin = errors.Join(errJoin, fmt.Errorf("unsupported database driver %q", c.Database.Driver))
	}
	if strings.TrimSpace(c.Database.Dsn) == "" {
		errJoin = errors.Join(errJoin, fmt.Errorf("database dsn is required"))
	}
	if c.Collaborators.CaseProcessingURL == "" || c.Collaborators.CaseContentURL == "" {
		errJoin = errors.Join(errJoin, fmt.Errorf("case processing and case content collaborator urls are required"))
	}
	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		errJoin = errors.Join(errJoin, fmt.Errorf("tracing is enabled without an endpoint"))
	}
	if c.Lifecycle.SnapshotCacheSize < 0 || c.Lifecycle.SnapshotCacheTTL < 0 {
		errJoin = errors.Join(errJoin, fmt.Errorf("snapshot cache size and ttl must not be negative"))
	}
	return errJoin
}

// Load reads the configuration from the file named by CONFIG_FILE (default ./conf.yaml).
// When the file does not exist the configuration is read from the environment only.
func Load() (Config, error) {
	c := Config{}
	fileName := os.Getenv("CONFIG_FILE")
	if fileName == "" {
		wd, err := os.Getwd()
		if err != nil {
			return c, err
		}
		fileName = fmt.Sprintf("%s/conf.yaml", wd)
	}
	var err error
	if _, perr := os.Stat(fileName); errors.Is(perr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(&c)
	} else {
		err = cleanenv.ReadConfig(fileName, &c)
	}
	if err != nil {
		return c, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := c.validate(); err != nil {
		return c, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func InitConfig() Config {
	c, err := Load()
	if err != nil {
		fmt.Printf("Error occurred while reading the configuration: %s\n", err)
		panic(err)
	}
	return c
}
