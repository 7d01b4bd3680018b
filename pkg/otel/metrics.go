// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package otel

import (
	"errors"

	"go.opentelemetry.io/otel/metric"
)

type LifecycleMetrics struct {
	DecisionsCreated   metric.Int64Counter
	DecisionsIssued    metric.Int64Counter
	DecisionsAttested  metric.Int64Counter
	DecisionsActivated metric.Int64Counter
	DecisionsRejected  metric.Int64Counter
	// Rollbacks counts transitions abandoned because a collaborator failed
	Rollbacks      metric.Int64Counter
	ExportFailures metric.Int64Counter
}

func NewMetrics(meter metric.Meter) (*LifecycleMetrics, error) {
	var errJoin error

	created, err := meter.Int64Counter("decisions_created", metric.WithDescription("Number of decisions created"))
	errJoin = errors.Join(errJoin, err)

	issued, err := meter.Int64Counter("decisions_issued", metric.WithDescription("Number of decisions issued"))
	errJoin = errors.Join(errJoin, err)

	attested, err := meter.Int64Counter("decisions_attested", metric.WithDescription("Number of decisions attested"))
	errJoin = errors.Join(errJoin, err)

	activated, err := meter.Int64Counter("decisions_activated", metric.WithDescription("Number of decisions activated"))
	errJoin = errors.Join(errJoin, err)

	rejected, err := meter.Int64Counter("decisions_rejected", metric.WithDescription("Number of decisions sent back to the case worker"))
	errJoin = errors.Join(errJoin, err)

	rollbacks, err := meter.Int64Counter("transition_rollbacks", metric.WithDescription("Number of transitions rolled back after a collaborator failure"))
	errJoin = errors.Join(errJoin, err)

	exportFailures, err := meter.Int64Counter("event_export_failures", metric.WithDescription("Number of lifecycle events that could not be exported"))
	errJoin = errors.Join(errJoin, err)

	metrics := LifecycleMetrics{
		DecisionsCreated:   created,
		DecisionsIssued:    issued,
		DecisionsAttested:  attested,
		DecisionsActivated: activated,
		DecisionsRejected:  rejected,
		Rollbacks:          rollbacks,
		ExportFailures:     exportFailures,
	}
	return &metrics, errJoin
}
