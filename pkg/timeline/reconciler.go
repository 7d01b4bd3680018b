// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

// Package timeline reconciles the settled decisions of a case into one canonical, non-overlapping payment ledger.
//
// Decisions are applied in the order they were legally made (attestation time), not in the order of their
// effective months. A decision supersedes everything in the ledger from its effective month onwards, so a
// later correction with an earlier effective month wins for the overlapping window.
//
// All functions in this package are pure: they never modify their input and are safe for concurrent use.
package timeline

import (
	"cmp"
	"slices"
	"time"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
)

// Period is a ledger entry, a payment period together with the decision that produced it.
type Period struct {
	decision.PaymentPeriod
	DecisionKey      int64
	CaseProcessingID string
}

// Interval is a span of months, To == nil means open-ended.
type Interval struct {
	From decision.Month
	To   *decision.Month
}

// Reconcile returns the full canonical ledger built from the payment-bearing, settled decisions attested
// on or before asOf. The result is ordered by From and its periods never overlap.
func Reconcile(decisions []decision.Decision, asOf time.Time) []Period {
	ledger := make([]Period, 0)
	for _, d := range settledInOrder(decisions, asOf) {
		ledger = apply(ledger, d)
	}
	return ledger
}

// CurrentAndFuture drops ledger periods that ended before m and starts the covering period at m
func CurrentAndFuture(ledger []Period, m decision.Month) []Period {
	res := make([]Period, 0, len(ledger))
	for _, p := range ledger {
		if p.To != nil && p.To.Before(m) {
			continue
		}
		p.PaymentPeriod = p.Clone()
		if p.From.Before(m) {
			p.From = m
		}
		res = append(res, p)
	}
	return res
}

// GrantedIntervals collapses the ledger into maximal runs of contiguous payment periods.
// Termination periods and gaps between periods split the runs.
func GrantedIntervals(ledger []Period) []Interval {
	res := make([]Interval, 0)
	for _, p := range ledger {
		if p.IsTermination() {
			continue
		}
		if n := len(res); n > 0 {
			last := &res[n-1]
			if last.To != nil && last.To.Next() == p.From {
				last.To = copyMonth(p.To)
				continue
			}
		}
		res = append(res, Interval{From: p.From, To: copyMonth(p.To)})
	}
	return res
}

// Covers reports whether the whole of [from, to] lies inside a single granted interval
func Covers(intervals []Interval, from decision.Month, to decision.Month) bool {
	for _, in := range intervals {
		if from.Before(in.From) {
			continue
		}
		if in.To == nil || !to.After(*in.To) {
			return true
		}
	}
	return false
}

// settledInOrder filters the decisions taking part in the ledger and sorts them by attestation time.
// Ties fall back to issue time and finally the decision key, so the order never depends on the input order.
func settledInOrder(decisions []decision.Decision, asOf time.Time) []decision.Decision {
	res := make([]decision.Decision, 0, len(decisions))
	for _, d := range decisions {
		if !d.Type.IsPaymentBearing() || !d.Status.IsSettled() || d.AttestedAt == nil {
			continue
		}
		if d.AttestedAt.After(asOf) {
			continue
		}
		res = append(res, d)
	}
	slices.SortFunc(res, func(a, b decision.Decision) int {
		return compareLegalOrder(a, b, *a.AttestedAt, *b.AttestedAt)
	})
	return res
}

func compareLegalOrder(a, b decision.Decision, aAt, bAt time.Time) int {
	if c := aAt.Compare(bAt); c != 0 {
		return c
	}
	if c := compareTimePtr(a.IssuedAt, b.IssuedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.Key, b.Key)
}

// compareTimePtr orders missing times first
func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

// apply supersedes the ledger from the decision's effective month and appends its own periods
func apply(ledger []Period, d decision.Decision) []Period {
	cut := d.EffectiveFrom
	next := make([]Period, 0, len(ledger)+len(d.Periods())+1)
	for _, p := range ledger {
		if !p.From.Before(cut) {
			continue
		}
		if p.To == nil || !p.To.Before(cut) {
			p.PaymentPeriod = p.WithTo(cut.Prev())
		}
		next = append(next, p)
	}
	for _, pp := range ownPeriods(d) {
		next = append(next, Period{
			PaymentPeriod:    pp,
			DecisionKey:      d.Key,
			CaseProcessingID: d.CaseProcessingID,
		})
	}
	return next
}

// ownPeriods returns the decision's periods clipped to [EffectiveFrom, TerminatesFrom).
// A termination boundary is recorded as an open-ended termination period.
func ownPeriods(d decision.Decision) []decision.PaymentPeriod {
	res := make([]decision.PaymentPeriod, 0)
	for _, p := range d.Periods() {
		if p.To != nil && p.To.Before(d.EffectiveFrom) {
			continue
		}
		if p.From.Before(d.EffectiveFrom) {
			p.From = d.EffectiveFrom
		}
		res = append(res, p)
	}
	if d.TerminatesFrom == nil {
		return res
	}
	boundary := *d.TerminatesFrom
	clipped := make([]decision.PaymentPeriod, 0, len(res)+1)
	for _, p := range res {
		if !p.From.Before(boundary) {
			continue
		}
		if p.To == nil || !p.To.Before(boundary) {
			p = p.WithTo(boundary.Prev())
		}
		clipped = append(clipped, p)
	}
	return append(clipped, decision.NewTerminationPeriod(boundary))
}

func copyMonth(m *decision.Month) *decision.Month {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
