// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package storage

import (
	"context"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
)

// Storage is used by the lifecycle service to read and write decisions.
//
// Methods that are expected to return exactly one match MUST return ErrNotFound when the result does not exist
type Storage interface {
	DecisionStorageReader
	DecisionStorageWriter
	TransitionStorageReader
	TransitionStorageWriter

	GenerateId() int64
	NewBatch() Batch
}

// Batch collects writes that must be applied all together or not at all
type Batch interface {
	DecisionStorageWriter
	TransitionStorageWriter

	// Flush applies the collected writes atomically and prepares the batch for new statements
	Flush(ctx context.Context) error
}

type DecisionStorageReader interface {
	FindDecisionByKey(ctx context.Context, decisionKey int64) (decision.Decision, error)

	// FindDecisionByCaseProcessingID returns the single decision owned by the case-processing unit
	FindDecisionByCaseProcessingID(ctx context.Context, caseProcessingID string) (decision.Decision, error)

	// FindDecisionsByCaseID returns all decisions of the case ordered by key
	FindDecisionsByCaseID(ctx context.Context, caseID int64) ([]decision.Decision, error)

	// FindDecisionsByIdentity returns the decisions of every case belonging to the identity ordered by key
	FindDecisionsByIdentity(ctx context.Context, identity string) ([]decision.Decision, error)
}

type DecisionStorageWriter interface {
	// CreateDecision stores a new decision, it fails with ErrConflict when the key or case-processing id is taken
	CreateDecision(ctx context.Context, d decision.Decision) error

	// UpdateDecision overwrites the stored decision only while it still has the expected status and the revision
	// of d. The stored revision is incremented, a mismatch fails with ErrConflict.
	UpdateDecision(ctx context.Context, d decision.Decision, expected decision.Status) error
}

type TransitionStorageReader interface {
	// FindTransitionsByDecisionKey returns the audit trail of the decision, oldest first
	FindTransitionsByDecisionKey(ctx context.Context, decisionKey int64) ([]TransitionRecord, error)
}

type TransitionStorageWriter interface {
	SaveTransition(ctx context.Context, record TransitionRecord) error
}
