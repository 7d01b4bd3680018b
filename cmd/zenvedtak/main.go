// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pbinitiative/zenvedtak/internal/collaborator"
	"github.com/pbinitiative/zenvedtak/internal/config"
	"github.com/pbinitiative/zenvedtak/internal/log"
	"github.com/pbinitiative/zenvedtak/internal/otel"
	"github.com/pbinitiative/zenvedtak/internal/profile"
	"github.com/pbinitiative/zenvedtak/internal/rest"
	"github.com/pbinitiative/zenvedtak/internal/sql"
	"github.com/pbinitiative/zenvedtak/pkg/exporter/kafka"
	"github.com/pbinitiative/zenvedtak/pkg/lifecycle"
	"github.com/pbinitiative/zenvedtak/pkg/zenflake"
)

func main() {
	profile.InitProfile()
	log.Init()

	appContext, ctxCancel := context.WithCancel(context.Background())

	conf := config.InitConfig()

	openTelemetry, err := otel.SetupOtel(conf.Tracing)
	if err != nil {
		log.Error("Failed to set up OTEL: %s", err)
		os.Exit(1)
	}

	nodeId := conf.NodeId
	if nodeId < 0 {
		nodeId = zenflake.NodeIDFromEnvironment()
	}
	keys, err := zenflake.NewGenerator(nodeId)
	if err != nil {
		log.Error("Failed to create key generator: %s", err)
		os.Exit(1)
	}

	store, err := sql.Open(appContext, conf.Database, keys)
	if err != nil {
		log.Error("Failed to open decision store: %s", err)
		os.Exit(1)
	}
	if err := store.Migrate(appContext); err != nil {
		log.Error("Failed to migrate decision store: %s", err)
		os.Exit(1)
	}

	collaborators := conf.Collaborators
	options := []lifecycle.ServiceOption{
		lifecycle.ServiceWithNotifyTimeout(conf.Lifecycle.NotifyTimeout),
		lifecycle.ServiceWithSnapshotCache(conf.Lifecycle.SnapshotCacheSize, conf.Lifecycle.SnapshotCacheTTL),
	}
	if collaborators.CoordinationURL != "" {
		options = append(options, lifecycle.ServiceWithCoordinationProbe(collaborator.NewCoordinationClient(collaborators.CoordinationURL, collaborators.Timeout)))
	}
	if collaborators.LetterURL != "" {
		options = append(options, lifecycle.ServiceWithLetterService(collaborator.NewLetterClient(collaborators.LetterURL, collaborators.Timeout)))
	}
	var eventExporter *kafka.Exporter
	if len(conf.Kafka.Brokers) > 0 {
		eventExporter, err = kafka.NewExporter(conf.Kafka.Brokers, conf.Kafka.Topic, conf.Kafka.WriteTimeout)
		if err != nil {
			log.Error("Failed to create kafka exporter: %s", err)
			os.Exit(1)
		}
		options = append(options, lifecycle.ServiceWithExporter(eventExporter))
	}

	service, err := lifecycle.NewService(
		store,
		collaborator.NewCaseProcessingClient(collaborators.CaseProcessingURL, collaborators.Timeout),
		collaborator.NewCaseContentClient(collaborators.CaseContentURL, collaborators.Timeout),
		options...,
	)
	if err != nil {
		log.Error("Failed to create decision lifecycle service: %s", err)
		os.Exit(1)
	}

	// Start the public API
	svr := rest.NewServer(service, conf, map[string]rest.HealthCheck{
		"database": store.Ping,
	})
	svr.Start()

	appStop := make(chan os.Signal, 2)
	handleSigterm(appStop, appContext)

	ctxCancel()
	// cleanup
	svr.Stop(context.Background())
	if eventExporter != nil {
		if err := eventExporter.Close(); err != nil {
			log.Error("failed to close kafka exporter: %s", err)
		}
	}
	if err := store.Close(); err != nil {
		log.Error("failed to close decision store: %s", err)
	}
	openTelemetry.Stop(context.Background())
}

func handleSigterm(appStop chan os.Signal, ctx context.Context) {
	signal.Notify(appStop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	sig := <-appStop
	log.Infof(ctx, "Received %s. Shutting down", sig.String())
}
