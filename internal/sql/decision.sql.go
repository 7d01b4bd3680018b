// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package sql

import (
	"context"
	"database/sql"
)

const decisionColumns = `key, case_processing_id, case_id, identity, status, type, review_cause, effective_from, terminates_from,
payload, issued_by, issued_at, attested_by, attested_at, attestation_comment, activated_at, rejection_reason,
created_at, updated_at, revision`

type scanner interface {
	Scan(dest ...any) error
}

func scanDecision(row scanner) (Decision, error) {
	var i Decision
	err := row.Scan(
		&i.Key,
		&i.CaseProcessingID,
		&i.CaseID,
		&i.Identity,
		&i.Status,
		&i.Type,
		&i.ReviewCause,
		&i.EffectiveFrom,
		&i.TerminatesFrom,
		&i.Payload,
		&i.IssuedBy,
		&i.IssuedAt,
		&i.AttestedBy,
		&i.AttestedAt,
		&i.AttestationComment,
		&i.ActivatedAt,
		&i.RejectionReason,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.Revision,
	)
	return i, err
}

func (q *Queries) queryDecisions(ctx context.Context, query string, args ...any) ([]Decision, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Decision{}
	for rows.Next() {
		i, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findDecisionByKey = `SELECT ` + decisionColumns + ` FROM decision WHERE key = $1`

func (q *Queries) FindDecisionByKey(ctx context.Context, key int64) (Decision, error) {
	return scanDecision(q.db.QueryRowContext(ctx, findDecisionByKey, key))
}

const findDecisionByCaseProcessingID = `SELECT ` + decisionColumns + ` FROM decision WHERE case_processing_id = $1`

func (q *Queries) FindDecisionByCaseProcessingID(ctx context.Context, caseProcessingID string) (Decision, error) {
	return scanDecision(q.db.QueryRowContext(ctx, findDecisionByCaseProcessingID, caseProcessingID))
}

const findDecisionsByCaseID = `SELECT ` + decisionColumns + ` FROM decision WHERE case_id = $1 ORDER BY key`

func (q *Queries) FindDecisionsByCaseID(ctx context.Context, caseID int64) ([]Decision, error) {
	return q.queryDecisions(ctx, findDecisionsByCaseID, caseID)
}

const findDecisionsByIdentity = `SELECT ` + decisionColumns + ` FROM decision WHERE identity = $1 ORDER BY key`

func (q *Queries) FindDecisionsByIdentity(ctx context.Context, identity string) ([]Decision, error) {
	return q.queryDecisions(ctx, findDecisionsByIdentity, identity)
}

const insertDecision = `INSERT INTO decision (` + decisionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

func (q *Queries) InsertDecision(ctx context.Context, arg Decision) error {
	_, err := q.db.ExecContext(ctx, insertDecision,
		arg.Key,
		arg.CaseProcessingID,
		arg.CaseID,
		arg.Identity,
		arg.Status,
		arg.Type,
		arg.ReviewCause,
		arg.EffectiveFrom,
		arg.TerminatesFrom,
		arg.Payload,
		arg.IssuedBy,
		arg.IssuedAt,
		arg.AttestedBy,
		arg.AttestedAt,
		arg.AttestationComment,
		arg.ActivatedAt,
		arg.RejectionReason,
		arg.CreatedAt,
		arg.UpdatedAt,
		arg.Revision,
	)
	return err
}

const updateDecision = `UPDATE decision SET
status = $1, type = $2, review_cause = $3, effective_from = $4, terminates_from = $5, payload = $6,
issued_by = $7, issued_at = $8, attested_by = $9, attested_at = $10, attestation_comment = $11,
activated_at = $12, rejection_reason = $13, updated_at = $14, revision = revision + 1
WHERE key = $15 AND status = $16 AND revision = $17`

type UpdateDecisionParams struct {
	Decision
	ExpectedStatus string
}

// UpdateDecision returns the number of updated rows, zero means the expected status or revision did not match
func (q *Queries) UpdateDecision(ctx context.Context, arg UpdateDecisionParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateDecision,
		arg.Status,
		arg.Type,
		arg.ReviewCause,
		arg.EffectiveFrom,
		arg.TerminatesFrom,
		arg.Payload,
		arg.IssuedBy,
		arg.IssuedAt,
		arg.AttestedBy,
		arg.AttestedAt,
		arg.AttestationComment,
		arg.ActivatedAt,
		arg.RejectionReason,
		arg.UpdatedAt,
		arg.Key,
		arg.ExpectedStatus,
		arg.Revision,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const insertDecisionTransition = `INSERT INTO decision_transition (key, decision_key, operation, from_status, to_status, actor, at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) InsertDecisionTransition(ctx context.Context, arg DecisionTransition) error {
	_, err := q.db.ExecContext(ctx, insertDecisionTransition,
		arg.Key,
		arg.DecisionKey,
		arg.Operation,
		arg.FromStatus,
		arg.ToStatus,
		arg.Actor,
		arg.At,
	)
	return err
}

const findDecisionTransitions = `SELECT key, decision_key, operation, from_status, to_status, actor, at
FROM decision_transition WHERE decision_key = $1 ORDER BY at, key`

func (q *Queries) FindDecisionTransitions(ctx context.Context, decisionKey int64) ([]DecisionTransition, error) {
	rows, err := q.db.QueryContext(ctx, findDecisionTransitions, decisionKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []DecisionTransition{}
	for rows.Next() {
		var i DecisionTransition
		if err := rows.Scan(&i.Key, &i.DecisionKey, &i.Operation, &i.FromStatus, &i.ToStatus, &i.Actor, &i.At); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ scanner = (*sql.Row)(nil)
