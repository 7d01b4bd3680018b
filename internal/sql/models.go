// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package sql

import (
	"database/sql"
)

type Decision struct {
	Key                int64
	CaseProcessingID   string
	CaseID             int64
	Identity           string
	Status             string
	Type               string
	ReviewCause        string
	EffectiveFrom      sql.NullString
	TerminatesFrom     sql.NullString
	Payload            string
	IssuedBy           string
	IssuedAt           sql.NullInt64
	AttestedBy         string
	AttestedAt         sql.NullInt64
	AttestationComment string
	ActivatedAt        sql.NullInt64
	RejectionReason    string
	CreatedAt          int64
	UpdatedAt          int64
	Revision           int64
}

type DecisionTransition struct {
	Key         int64
	DecisionKey int64
	Operation   string
	FromStatus  string
	ToStatus    string
	Actor       string
	At          int64
}
