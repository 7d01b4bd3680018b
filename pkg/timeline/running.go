// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package timeline

import (
	"slices"
	"time"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
)

// RunningStatus answers whether a case has a running payment on or after a date.
type RunningStatus struct {
	Running bool
	// Date is the requested date, or the first day of the first running period when that starts later
	Date time.Time
	// LastCaseProcessingID is the case-processing unit owning the running period, empty when not running
	LastCaseProcessingID string
	// UnderCoordination is set when the latest decision covering the date is waiting for other payors
	UnderCoordination bool
}

// RunningOnOrAfter reports whether the case has a running payment on date, or one starting after it.
// Only decisions attested on or before now are considered.
func RunningOnOrAfter(decisions []decision.Decision, date time.Time, now time.Time) RunningStatus {
	res := RunningStatus{
		Date:              date,
		UnderCoordination: underCoordination(decisions, date, now),
	}

	m := decision.MonthOf(date)
	ledger := Reconcile(decisions, now)
	idx := slices.IndexFunc(ledger, func(p Period) bool {
		return p.Covers(m) || p.From.After(m)
	})
	if idx < 0 || ledger[idx].IsTermination() {
		return res
	}

	period := ledger[idx]
	res.Running = true
	res.LastCaseProcessingID = period.CaseProcessingID
	if start := period.From.FirstDay(); start.After(date) {
		res.Date = start
	}
	return res
}

// underCoordination looks at the latest payment-bearing decision, in legal order, whose effective month is on or
// before the month of date. Decisions still waiting for coordination have no attestation yet and are placed by
// their issue time.
func underCoordination(decisions []decision.Decision, date time.Time, now time.Time) bool {
	m := decision.MonthOf(date)
	type candidate struct {
		d  decision.Decision
		at time.Time
	}
	candidates := make([]candidate, 0)
	for _, d := range decisions {
		if !d.Type.IsPaymentBearing() || d.EffectiveFrom.After(m) {
			continue
		}
		switch {
		case d.Status.IsSettled() && d.AttestedAt != nil && !d.AttestedAt.After(now):
			candidates = append(candidates, candidate{d: d, at: *d.AttestedAt})
		case d.Status == decision.StatusPendingCoordination && d.IssuedAt != nil:
			candidates = append(candidates, candidate{d: d, at: *d.IssuedAt})
		}
	}
	if len(candidates) == 0 {
		return false
	}
	latest := slices.MaxFunc(candidates, func(a, b candidate) int {
		return compareLegalOrder(a.d, b.d, a.at, b.at)
	})
	return latest.d.Status == decision.StatusPendingCoordination
}
