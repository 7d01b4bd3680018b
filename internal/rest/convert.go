// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package rest

import (
	"encoding/json"
	"fmt"

	openapi_types "github.com/oapi-codegen/runtime/types"
	apierror "github.com/pbinitiative/zenvedtak/internal/rest/error"
	"github.com/pbinitiative/zenvedtak/internal/rest/public"
	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/storage"
	"github.com/pbinitiative/zenvedtak/pkg/timeline"
)

func optional[T ~string](v T) *string {
	if v == "" {
		return nil
	}
	s := string(v)
	return &s
}

func optionalMonth(m *decision.Month) *public.Month {
	if m == nil || m.IsZero() {
		return nil
	}
	s := m.String()
	return &s
}

func toPublicError(e apierror.ApiError) public.ApiError {
	res := public.ApiError{
		Message:      e.Message,
		Type:         e.Type,
		Collaborator: optional(e.Collaborator),
	}
	if e.Status != "" {
		status := public.DecisionStatus(e.Status)
		res.Status = &status
	}
	return res
}

func toDecision(d decision.Decision) (public.Decision, error) {
	encoded, err := decision.EncodePayload(d.Payload)
	if err != nil {
		return public.Decision{}, err
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return public.Decision{}, fmt.Errorf("failed to convert payload of decision %d: %w", d.Key, err)
	}
	return public.Decision{
		Key:                d.Key,
		CaseProcessingId:   d.CaseProcessingID,
		CaseId:             d.CaseID,
		Identity:           d.Identity,
		Status:             public.DecisionStatus(d.Status),
		Type:               public.DecisionType(d.Type),
		ReviewCause:        public.ReviewCause(d.ReviewCause),
		EffectiveFrom:      optionalMonth(&d.EffectiveFrom),
		TerminatesFrom:     optionalMonth(d.TerminatesFrom),
		Payload:            payload,
		IssuedBy:           optional(d.IssuedBy),
		IssuedAt:           d.IssuedAt,
		AttestedBy:         optional(d.AttestedBy),
		AttestedAt:         d.AttestedAt,
		AttestationComment: optional(d.AttestationComment),
		ActivatedAt:        d.ActivatedAt,
		RejectionReason:    optional(d.RejectionReason),
		Revision:           d.Revision,
	}, nil
}

func toTransitions(records []storage.TransitionRecord) []public.Transition {
	res := make([]public.Transition, 0, len(records))
	for _, r := range records {
		res = append(res, public.Transition{
			Operation: r.Operation,
			From:      public.DecisionStatus(r.From),
			To:        public.DecisionStatus(r.To),
			Actor:     string(r.Actor),
			At:        r.At,
		})
	}
	return res
}

func toPeriods(ledger []timeline.Period) []public.Period {
	res := make([]public.Period, 0, len(ledger))
	for _, p := range ledger {
		pp := public.Period{
			From:             p.From.String(),
			To:               optionalMonth(p.To),
			Kind:             public.PeriodKind(p.Kind),
			DecisionKey:      p.DecisionKey,
			CaseProcessingId: p.CaseProcessingID,
		}
		if p.Amount.Valid {
			amount := p.Amount.Decimal.String()
			pp.Amount = &amount
		}
		res = append(res, pp)
	}
	return res
}

func toIntervals(intervals []timeline.Interval) []public.Interval {
	res := make([]public.Interval, 0, len(intervals))
	for _, in := range intervals {
		res = append(res, public.Interval{From: in.From.String(), To: optionalMonth(in.To)})
	}
	return res
}

func toRunning(rs timeline.RunningStatus) public.Running {
	return public.Running{
		Running:              rs.Running,
		Date:                 openapi_types.Date{Time: rs.Date},
		LastCaseProcessingId: optional(rs.LastCaseProcessingID),
		UnderCoordination:    rs.UnderCoordination,
	}
}
