// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pbinitiative/zenvedtak/internal/collaborator"
	"github.com/pbinitiative/zenvedtak/internal/config"
	"github.com/pbinitiative/zenvedtak/internal/log"
	"github.com/pbinitiative/zenvedtak/internal/rest"
	"github.com/pbinitiative/zenvedtak/internal/sql"
	"github.com/pbinitiative/zenvedtak/pkg/lifecycle"
	"github.com/pbinitiative/zenvedtak/pkg/zenflake"
)

var app Application

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	log.Init()
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "zenvedtak-e2e")
	if err != nil {
		fmt.Printf("failed to create temp dir: %s\n", err)
		return 1
	}
	defer os.RemoveAll(dir)

	collaborators := NewFakeCollaborators()
	defer collaborators.Close()

	conf := config.Config{
		Name:   "zenvedtak-e2e",
		Server: config.Server{Addr: "127.0.0.1:0"},
		Database: config.Database{
			Driver: config.DriverSqlite,
			Dsn:    filepath.Join(dir, "vedtak.db"),
		},
		Lifecycle: config.Lifecycle{
			NotifyTimeout:     time.Second,
			SnapshotCacheSize: 64,
			SnapshotCacheTTL:  time.Second,
		},
	}

	keys, err := zenflake.NewGenerator(1)
	if err != nil {
		fmt.Printf("failed to create key generator: %s\n", err)
		return 1
	}
	store, err := sql.Open(ctx, conf.Database, keys)
	if err != nil {
		fmt.Printf("failed to open store: %s\n", err)
		return 1
	}
	defer store.Close()
	if err := store.Migrate(ctx); err != nil {
		fmt.Printf("failed to migrate store: %s\n", err)
		return 1
	}

	service, err := lifecycle.NewService(
		store,
		collaborator.NewCaseProcessingClient(collaborators.URL(), 5*time.Second),
		collaborator.NewCaseContentClient(collaborators.URL(), 5*time.Second),
		lifecycle.ServiceWithCoordinationProbe(collaborator.NewCoordinationClient(collaborators.URL(), 5*time.Second)),
		lifecycle.ServiceWithLetterService(collaborator.NewLetterClient(collaborators.URL(), 5*time.Second)),
		lifecycle.ServiceWithNotifyTimeout(conf.Lifecycle.NotifyTimeout),
		lifecycle.ServiceWithSnapshotCache(conf.Lifecycle.SnapshotCacheSize, conf.Lifecycle.SnapshotCacheTTL),
	)
	if err != nil {
		fmt.Printf("failed to create lifecycle service: %s\n", err)
		return 1
	}

	svr := rest.NewServer(service, conf, map[string]rest.HealthCheck{"database": store.Ping})
	listener := svr.Start()
	if listener == nil {
		fmt.Println("failed to start rest server")
		return 1
	}
	defer svr.Stop(ctx)

	app = Application{
		httpAddr:      listener.Addr().String(),
		collaborators: collaborators,
	}

	if err := waitForUp(30 * time.Second); err != nil {
		fmt.Printf("application did not come up: %s\n", err)
		return 1
	}
	return m.Run()
}

func waitForUp(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		_, status, err := app.NewRequest(nil).WithPath("/system/status").Do()
		if err == nil && status == http.StatusOK {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("status endpoint not ready: status %d: %w", status, err)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
