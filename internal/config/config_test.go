// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("CASE_PROCESSING_URL", "http://behandling")
	t.Setenv("CASE_CONTENT_URL", "http://beregning")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, DriverSqlite, c.Database.Driver)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, 5*time.Second, c.Lifecycle.NotifyTimeout)
	assert.Equal(t, 1024, c.Lifecycle.SnapshotCacheSize)
	assert.Equal(t, int64(-1), c.NodeId)
}

func TestLoadFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.yaml")
	err := os.WriteFile(file, []byte(`
name: vedtak-test
database:
  driver: postgres
  dsn: postgres://vedtak@localhost/vedtak?sslmode=disable
collaborators:
  caseProcessingUrl: http://behandling
  caseContentUrl: http://beregning
  timeout: 3s
lifecycle:
  snapshotCacheTTL: 30s
`), 0o600)
	require.NoError(t, err)
	t.Setenv("CONFIG_FILE", file)

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "vedtak-test", c.Name)
	assert.Equal(t, DriverPostgres, c.Database.Driver)
	assert.Equal(t, 3*time.Second, c.Collaborators.Timeout)
	assert.Equal(t, 30*time.Second, c.Lifecycle.SnapshotCacheTTL)
	assert.Empty(t, c.Kafka.Brokers)
}

func TestLoadRejectsInvalidConfiguration(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DB_DRIVER", "oracle")
	t.Setenv("LIFECYCLE_SNAPSHOT_CACHE_SIZE", "-1")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported database driver")
	assert.ErrorContains(t, err, "must not be negative")
	assert.ErrorContains(t, err, "collaborator urls are required")
}
