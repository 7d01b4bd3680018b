// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package storage

import (
	"errors"
	"time"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write lost against a concurrent modification
	ErrConflict = errors.New("concurrent modification")
)

// TransitionRecord is one entry of the audit trail kept for every status change of a decision.
type TransitionRecord struct {
	Key         int64
	DecisionKey int64
	Operation   string
	From        decision.Status
	To          decision.Status
	Actor       decision.Actor
	At          time.Time
}
