// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package sql

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
)

// timestamps are stored as unix milliseconds so both drivers read them back identically
func toMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func fromNullMillis(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := fromMillis(v.Int64)
	return &t
}

func toNullMonth(m *decision.Month) sql.NullString {
	if m == nil || m.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: m.String(), Valid: true}
}

func fromNullMonth(v sql.NullString) (*decision.Month, error) {
	if !v.Valid {
		return nil, nil
	}
	m, err := decision.ParseMonth(v.String)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func fromDecision(d decision.Decision) (Decision, error) {
	payload, err := decision.EncodePayload(d.Payload)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to encode payload of decision %d: %w", d.Key, err)
	}
	return Decision{
		Key:                d.Key,
		CaseProcessingID:   d.CaseProcessingID,
		CaseID:             d.CaseID,
		Identity:           d.Identity,
		Status:             string(d.Status),
		Type:               string(d.Type),
		ReviewCause:        string(d.ReviewCause),
		EffectiveFrom:      toNullMonth(&d.EffectiveFrom),
		TerminatesFrom:     toNullMonth(d.TerminatesFrom),
		Payload:            string(payload),
		IssuedBy:           string(d.IssuedBy),
		IssuedAt:           toMillis(d.IssuedAt),
		AttestedBy:         string(d.AttestedBy),
		AttestedAt:         toMillis(d.AttestedAt),
		AttestationComment: d.AttestationComment,
		ActivatedAt:        toMillis(d.ActivatedAt),
		RejectionReason:    d.RejectionReason,
		CreatedAt:          d.CreatedAt.UnixMilli(),
		UpdatedAt:          d.UpdatedAt.UnixMilli(),
		Revision:           d.Revision,
	}, nil
}

func toDecision(row Decision) (decision.Decision, error) {
	status, err := decision.ParseStatus(row.Status)
	if err != nil {
		return decision.Decision{}, err
	}
	typ, err := decision.ParseType(row.Type)
	if err != nil {
		return decision.Decision{}, err
	}
	effective, err := fromNullMonth(row.EffectiveFrom)
	if err != nil {
		return decision.Decision{}, fmt.Errorf("decision %d: %w", row.Key, err)
	}
	// non-payment decisions carry no effective month
	var effectiveFrom decision.Month
	if effective != nil {
		effectiveFrom = *effective
	}
	terminatesFrom, err := fromNullMonth(row.TerminatesFrom)
	if err != nil {
		return decision.Decision{}, fmt.Errorf("decision %d: %w", row.Key, err)
	}
	payload, err := decision.DecodePayload(typ, []byte(row.Payload))
	if err != nil {
		return decision.Decision{}, fmt.Errorf("decision %d: %w", row.Key, err)
	}
	return decision.Decision{
		Key:              row.Key,
		CaseProcessingID: row.CaseProcessingID,
		CaseID:           row.CaseID,
		Identity:         row.Identity,
		Status:           status,
		Content: decision.Content{
			Type:           typ,
			ReviewCause:    decision.ReviewCause(row.ReviewCause),
			Payload:        payload,
			EffectiveFrom:  effectiveFrom,
			TerminatesFrom: terminatesFrom,
		},
		IssuedBy:           decision.Actor(row.IssuedBy),
		IssuedAt:           fromNullMillis(row.IssuedAt),
		AttestedBy:         decision.Actor(row.AttestedBy),
		AttestedAt:         fromNullMillis(row.AttestedAt),
		AttestationComment: row.AttestationComment,
		ActivatedAt:        fromNullMillis(row.ActivatedAt),
		RejectionReason:    row.RejectionReason,
		CreatedAt:          fromMillis(row.CreatedAt),
		UpdatedAt:          fromMillis(row.UpdatedAt),
		Revision:           row.Revision,
	}, nil
}

func toDecisions(rows []Decision) ([]decision.Decision, error) {
	res := make([]decision.Decision, 0, len(rows))
	for _, row := range rows {
		d, err := toDecision(row)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}
