// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package timeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var farFuture = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)

func month(s string) decision.Month {
	return decision.MustParseMonth(s)
}

func monthPtr(s string) *decision.Month {
	m := month(s)
	return &m
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func pay(from string, to string, amount int64) decision.PaymentPeriod {
	var end *decision.Month
	if to != "" {
		end = monthPtr(to)
	}
	return decision.NewPaymentPeriod(month(from), end, decimal.NewFromInt(amount))
}

// settled builds an ACTIVE decision attested at the given instant
func settled(t *testing.T, key int64, typ decision.Type, effectiveFrom string, attestedAt time.Time, periods ...decision.PaymentPeriod) decision.Decision {
	return settledWith(t, key, decision.Content{
		Type:          typ,
		EffectiveFrom: month(effectiveFrom),
		Payload:       decision.PaymentPayload{Periods: periods},
	}, attestedAt)
}

func settledWith(t *testing.T, key int64, content decision.Content, attestedAt time.Time) decision.Decision {
	d, err := decision.New(key, fmt.Sprintf("cp-%d", key), 1, "01010012345", content, attestedAt)
	require.NoError(t, err)
	issuedAt := attestedAt.Add(-time.Hour)
	d.Status = decision.StatusActive
	d.IssuedBy = "Z111111"
	d.IssuedAt = &issuedAt
	d.AttestedBy = "Z222222"
	d.AttestedAt = &attestedAt
	return d
}

func ledgerStrings(ledger []Period) []string {
	res := make([]string, len(ledger))
	for i, p := range ledger {
		res[i] = p.String()
	}
	return res
}

func TestReconcileSingleGrant(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"),
		pay("2024-01", "2024-04", 1000),
		pay("2024-05", "", 1100),
	)

	ledger := Reconcile([]decision.Decision{grant}, farFuture)

	assert.Equal(t, []string{"[2024-01..2024-04 1000]", "[2024-05..open 1100]"}, ledgerStrings(ledger))
	assert.Equal(t, "cp-1", ledger[0].CaseProcessingID)
	assert.Equal(t, int64(1), ledger[1].DecisionKey)
}

func TestReconcileTruncatesOverlappingPeriod(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "", 1000))
	change := settled(t, 2, decision.TypeChange, "2024-06", day("2024-07-01"), pay("2024-06", "", 1200))

	ledger := Reconcile([]decision.Decision{change, grant}, farFuture)

	assert.Equal(t, []string{"[2024-01..2024-05 1000]", "[2024-06..open 1200]"}, ledgerStrings(ledger))
}

func TestReconcileCorrectionOnSameMonthReplacesPeriod(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"),
		pay("2024-01", "2024-03", 1000),
		pay("2024-04", "", 1100),
	)
	correction := settled(t, 2, decision.TypeChange, "2024-04", day("2024-05-01"), pay("2024-04", "", 900))

	ledger := Reconcile([]decision.Decision{grant, correction}, farFuture)

	assert.Equal(t, []string{"[2024-01..2024-03 1000]", "[2024-04..open 900]"}, ledgerStrings(ledger))
}

func TestReconcileCorrectionOnFirstMonthLeavesNoLeftover(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "", 1000))
	correction := settled(t, 2, decision.TypeChange, "2024-01", day("2024-02-01"), pay("2024-01", "", 950))

	ledger := Reconcile([]decision.Decision{grant, correction}, farFuture)

	assert.Equal(t, []string{"[2024-01..open 950]"}, ledgerStrings(ledger))
}

func TestReconcileTerminationInGrantStartMonth(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "", 1000))
	termination := settled(t, 2, decision.TypeTermination, "2024-01", day("2024-02-01"))

	ledger := Reconcile([]decision.Decision{grant, termination}, farFuture)

	assert.Equal(t, []string{"[2024-01..open TERMINATION]"}, ledgerStrings(ledger))
	assert.Empty(t, GrantedIntervals(ledger))
	assert.False(t, RunningOnOrAfter([]decision.Decision{grant, termination}, day("2024-01-01"), farFuture).Running)
}

func TestReconcileOrdersByAttestationNotEffectiveMonth(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "", 1000))
	laterEffective := settled(t, 2, decision.TypeChange, "2024-06", day("2024-03-01"), pay("2024-06", "", 1500))
	earlierEffective := settled(t, 3, decision.TypeChange, "2024-03", day("2024-04-01"), pay("2024-03", "", 1300))

	ledger := Reconcile([]decision.Decision{earlierEffective, laterEffective, grant}, farFuture)

	// the last attested decision wins from its effective month, even though the June change was already ledgered
	assert.Equal(t, []string{"[2024-01..2024-02 1000]", "[2024-03..open 1300]"}, ledgerStrings(ledger))
}

func TestReconcileClipsPeriodsAtTerminationBoundary(t *testing.T) {
	change := settledWith(t, 1, decision.Content{
		Type:           decision.TypeChange,
		EffectiveFrom:  month("2024-01"),
		TerminatesFrom: monthPtr("2024-05"),
		Payload: decision.PaymentPayload{Periods: []decision.PaymentPeriod{
			pay("2024-01", "2024-03", 1000),
			pay("2024-04", "2024-08", 1100),
			pay("2024-09", "", 1200),
		}},
	}, day("2024-01-10"))

	ledger := Reconcile([]decision.Decision{change}, farFuture)

	assert.Equal(t, []string{
		"[2024-01..2024-03 1000]",
		"[2024-04..2024-04 1100]",
		"[2024-05..open TERMINATION]",
	}, ledgerStrings(ledger))
}

func TestReconcileIgnoresNonPaymentDecisions(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "", 1000))
	repayment := settledWith(t, 2, decision.Content{
		Type: decision.TypeRepayment,
		Payload: decision.RepaymentPayload{Terms: decision.RepaymentTerms{
			Amount:       decimal.NewFromInt(5000),
			Installments: 5,
			FirstDue:     month("2024-03"),
		}},
	}, day("2024-02-01"))
	appeal := settledWith(t, 3, decision.Content{
		Type:    decision.TypeRejectedAppeal,
		Payload: decision.AppealDismissalPayload{Reasoning: "appeal received after deadline"},
	}, day("2024-02-15"))
	change := settled(t, 4, decision.TypeChange, "2024-04", day("2024-03-01"), pay("2024-04", "", 1100))

	withOthers := Reconcile([]decision.Decision{appeal, change, repayment, grant}, farFuture)
	withoutOthers := Reconcile([]decision.Decision{change, grant}, farFuture)

	assert.Equal(t, ledgerStrings(withoutOthers), ledgerStrings(withOthers))
	assert.Equal(t, []string{"[2024-01..2024-03 1000]", "[2024-04..open 1100]"}, ledgerStrings(withOthers))
}

func TestReconcileIgnoresUnsettledAndFutureAttested(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "", 1000))
	issued := settled(t, 2, decision.TypeChange, "2024-02", day("2024-02-01"), pay("2024-02", "", 2000))
	issued.Status = decision.StatusIssued
	issued.AttestedAt = nil
	future := settled(t, 3, decision.TypeChange, "2024-03", day("2024-06-01"), pay("2024-03", "", 3000))

	ledger := Reconcile([]decision.Decision{grant, issued, future}, day("2024-05-01"))

	assert.Equal(t, []string{"[2024-01..open 1000]"}, ledgerStrings(ledger))
}

func TestReconcileTieBreaksOnKey(t *testing.T) {
	at := day("2024-02-01")
	a := settled(t, 7, decision.TypeChange, "2024-01", at, pay("2024-01", "", 700))
	b := settled(t, 3, decision.TypeChange, "2024-01", at, pay("2024-01", "", 300))

	first := Reconcile([]decision.Decision{a, b}, farFuture)
	second := Reconcile([]decision.Decision{b, a}, farFuture)

	assert.Equal(t, ledgerStrings(first), ledgerStrings(second))
	assert.Equal(t, []string{"[2024-01..open 700]"}, ledgerStrings(first))
}

func TestReconcileDoesNotShareMemoryWithDecisions(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "2024-06", 1000))

	ledger := Reconcile([]decision.Decision{grant}, farFuture)
	*ledger[0].To = month("2030-01")

	assert.Equal(t, "2024-06", grant.Periods()[0].To.String())
}

func TestGrantedIntervalsMergesAdjacentPeriods(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"),
		pay("2024-01", "2024-03", 1000),
		pay("2024-04", "2024-06", 1100),
		pay("2024-09", "", 1200),
	)
	ledger := Reconcile([]decision.Decision{grant}, farFuture)

	intervals := GrantedIntervals(ledger)

	require.Len(t, intervals, 2)
	assert.Equal(t, month("2024-01"), intervals[0].From)
	assert.Equal(t, month("2024-06"), *intervals[0].To)
	assert.Equal(t, month("2024-09"), intervals[1].From)
	assert.Nil(t, intervals[1].To)
	assert.True(t, Covers(intervals, month("2024-02"), month("2024-05")))
	assert.False(t, Covers(intervals, month("2024-05"), month("2024-10")))
	assert.True(t, Covers(intervals, month("2025-01"), month("2030-12")))
}

func TestCurrentAndFuture(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"),
		pay("2024-01", "2024-03", 1000),
		pay("2024-04", "", 1100),
	)
	ledger := Reconcile([]decision.Decision{grant}, farFuture)

	current := CurrentAndFuture(ledger, month("2024-05"))

	assert.Equal(t, []string{"[2024-05..open 1100]"}, ledgerStrings(current))
	assert.Equal(t, month("2024-04"), ledger[1].From)
}

func TestRunningForUnterminatedGrant(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "", 1000))

	status := RunningOnOrAfter([]decision.Decision{grant}, day("2024-05-01"), farFuture)

	assert.True(t, status.Running)
	assert.Equal(t, day("2024-05-01"), status.Date)
	assert.Equal(t, "cp-1", status.LastCaseProcessingID)
	assert.False(t, status.UnderCoordination)
}

func TestRunningReportsFutureStart(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-06", day("2024-01-10"), pay("2024-06", "", 1000))

	status := RunningOnOrAfter([]decision.Decision{grant}, day("2024-02-14"), farFuture)

	assert.True(t, status.Running)
	assert.Equal(t, day("2024-06-01"), status.Date)
}

func TestNotRunningAfterBackdatedTermination(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "", 1000))
	termination := settled(t, 2, decision.TypeTermination, "2023-04", day("2024-03-01"))

	status := RunningOnOrAfter([]decision.Decision{grant, termination}, day("2023-05-01"), farFuture)

	assert.False(t, status.Running)
	assert.Equal(t, day("2023-05-01"), status.Date)
	assert.Empty(t, status.LastCaseProcessingID)
}

func TestChangeAttestedAfterTerminationKeepsPeriodUpToBoundary(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "", 1000))
	termination := settled(t, 2, decision.TypeTermination, "2024-06", day("2024-03-01"))
	change := settledWith(t, 3, decision.Content{
		Type:           decision.TypeChange,
		EffectiveFrom:  month("2024-03"),
		TerminatesFrom: monthPtr("2024-06"),
		Payload:        decision.PaymentPayload{Periods: []decision.PaymentPeriod{pay("2024-03", "", 1250)}},
	}, day("2024-04-01"))
	decisions := []decision.Decision{grant, termination, change}

	running := RunningOnOrAfter(decisions, day("2024-04-15"), farFuture)
	stopped := RunningOnOrAfter(decisions, day("2024-07-01"), farFuture)

	assert.True(t, running.Running)
	assert.Equal(t, "cp-3", running.LastCaseProcessingID)
	assert.False(t, stopped.Running)
	assert.Equal(t, []string{
		"[2024-01..2024-02 1000]",
		"[2024-03..2024-05 1250]",
		"[2024-06..open TERMINATION]",
	}, ledgerStrings(Reconcile(decisions, farFuture)))
}

func TestRunningIgnoresDecisionsAttestedAfterNow(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "", 1000))
	termination := settled(t, 2, decision.TypeTermination, "2024-02", day("2024-09-01"))

	status := RunningOnOrAfter([]decision.Decision{grant, termination}, day("2024-05-01"), day("2024-06-01"))

	assert.True(t, status.Running)
}

func TestRunningWithoutDecisions(t *testing.T) {
	status := RunningOnOrAfter(nil, day("2024-05-01"), farFuture)

	assert.False(t, status.Running)
	assert.Equal(t, day("2024-05-01"), status.Date)
	assert.False(t, status.UnderCoordination)
}

func TestRunningUnderCoordination(t *testing.T) {
	grant := settled(t, 1, decision.TypeGrant, "2024-01", day("2024-01-10"), pay("2024-01", "", 1000))
	pending := settled(t, 2, decision.TypeChange, "2024-04", day("2024-05-01"), pay("2024-04", "", 1200))
	pending.Status = decision.StatusPendingCoordination
	pending.AttestedAt = nil
	pending.AttestedBy = ""

	covered := RunningOnOrAfter([]decision.Decision{grant, pending}, day("2024-06-01"), farFuture)
	before := RunningOnOrAfter([]decision.Decision{grant, pending}, day("2024-02-01"), farFuture)

	assert.True(t, covered.UnderCoordination)
	assert.True(t, covered.Running)
	assert.Equal(t, "cp-1", covered.LastCaseProcessingID)
	assert.False(t, before.UnderCoordination)
}
