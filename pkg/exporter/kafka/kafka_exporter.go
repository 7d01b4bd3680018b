// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

// Package kafka exports decision lifecycle events to a Kafka topic.
// Messages are keyed by case id so consumers see the events of one case in order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pbinitiative/zenvedtak/pkg/exporter"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Exporter struct {
	writer messageWriter
	topic  string
}

var _ exporter.EventExporter = &Exporter{}

func NewExporter(brokers []string, topic string, writeTimeout time.Duration) (*Exporter, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka exporter requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka exporter requires a topic")
	}
	return &Exporter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
			WriteTimeout: writeTimeout,
			ErrorLogger:  kafka.LoggerFunc(hclogPrintf(hclog.Default().Named("kafka-exporter"))),
		},
		topic: topic,
	}, nil
}

func (e *Exporter) ExportDecisionEvent(ctx context.Context, event *exporter.DecisionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal decision event %s: %w", event.ID, err)
	}
	err = e.writer.WriteMessages(ctx, kafka.Message{
		Topic: e.topic,
		Key:   []byte(strconv.FormatInt(event.CaseID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "intent", Value: []byte(event.Intent)},
			{Key: "event-id", Value: []byte(event.ID.String())},
		},
		Time: event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to write decision event %s to %s: %w", event.ID, e.topic, err)
	}
	return nil
}

// hclogPrintf adapts the printf style logger of the kafka writer
func hclogPrintf(logger hclog.Logger) func(msg string, args ...any) {
	return func(msg string, args ...any) {
		logger.Error(fmt.Sprintf(msg, args...))
	}
}

func (e *Exporter) Close() error {
	return e.writer.Close()
}
