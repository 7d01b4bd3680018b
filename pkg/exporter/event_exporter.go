// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package exporter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pbinitiative/zenvedtak/pkg/decision"
)

// EventExporter publishes lifecycle events to downstream consumers.
// Events are exported after the transition is committed, an error never undoes the transition.
type EventExporter interface {
	ExportDecisionEvent(ctx context.Context, event *DecisionEvent) error
}

type Intent string

const (
	DecisionCreated            Intent = "DECISION_CREATED"
	DecisionUpdated            Intent = "DECISION_UPDATED"
	DecisionIssued             Intent = "DECISION_ISSUED"
	DecisionSentToCoordination Intent = "DECISION_SENT_TO_COORDINATION"
	DecisionCoordinated        Intent = "DECISION_COORDINATED"
	DecisionAttested           Intent = "DECISION_ATTESTED"
	DecisionActivated          Intent = "DECISION_ACTIVATED"
	DecisionRejected           Intent = "DECISION_REJECTED"
)

type DecisionEvent struct {
	ID               uuid.UUID            `json:"id"`
	Intent           Intent               `json:"intent"`
	DecisionKey      int64                `json:"decisionKey"`
	CaseProcessingID string               `json:"caseProcessingId"`
	CaseID           int64                `json:"caseId"`
	Identity         string               `json:"identity"`
	Type             decision.Type        `json:"type"`
	ReviewCause      decision.ReviewCause `json:"reviewCause"`
	Status           decision.Status      `json:"status"`
	Actor            decision.Actor       `json:"actor,omitempty"`
	// LetterSuppressed is set on attestation of routine adjustments that send no letter
	LetterSuppressed bool      `json:"letterSuppressed"`
	OccurredAt       time.Time `json:"occurredAt"`
}

func NewDecisionEvent(intent Intent, d decision.Decision, actor decision.Actor, at time.Time) *DecisionEvent {
	return &DecisionEvent{
		ID:               uuid.New(),
		Intent:           intent,
		DecisionKey:      d.Key,
		CaseProcessingID: d.CaseProcessingID,
		CaseID:           d.CaseID,
		Identity:         d.Identity,
		Type:             d.Type,
		ReviewCause:      d.ReviewCause,
		Status:           d.Status,
		Actor:            actor,
		LetterSuppressed: intent == DecisionAttested && d.SuppressesLetter(),
		OccurredAt:       at,
	}
}
