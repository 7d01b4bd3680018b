// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/exporter"
	"github.com/pbinitiative/zenvedtak/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewServiceRequiresCollaborators(t *testing.T) {
	_, err := NewService(nil, &fakeCaseProcessing{}, &fakeContentSource{})
	assert.Error(t, err)
}

func TestCreateOrUpdateIsIdempotent(t *testing.T) {
	f := newFixture(t)
	first := f.draft(t, "cp-1", 1, "2024-01")
	assert.Equal(t, decision.StatusDraft, first.Status)
	assert.Equal(t, int64(1), first.Revision)

	f.content.content["cp-1"] = grantContent(1, "01010012345", "2024-01", 1200)
	second, err := f.service.CreateOrUpdate(t.Context(), "cp-1", "saksbehandler")
	require.NoError(t, err)

	assert.Equal(t, first.Key, second.Key)
	assert.Equal(t, int64(2), second.Revision)
	assert.True(t, decimal.NewFromInt(1200).Equal(second.Periods()[0].Amount.Decimal))

	all, err := f.store.FindDecisionsByCaseID(t.Context(), 1)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, []exporter.Intent{exporter.DecisionCreated, exporter.DecisionUpdated}, f.events.intents())
}

func TestCreateOrUpdateAfterIssueIsInvalidState(t *testing.T) {
	f := newFixture(t)
	d := f.draft(t, "cp-1", 1, "2024-01")
	_, err := f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)

	_, err = f.service.CreateOrUpdate(t.Context(), "cp-1", "saksbehandler")
	var invalid *decision.InvalidStateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, decision.StatusIssued, invalid.Status)
}

func TestCreateOrUpdateContentFailure(t *testing.T) {
	f := newFixture(t)
	f.content.err = errors.New("beregning unavailable")

	_, err := f.service.CreateOrUpdate(t.Context(), "cp-1", "saksbehandler")
	assert.True(t, decision.IsCollaboratorFailure(err))

	_, err = f.store.FindDecisionByCaseProcessingID(t.Context(), "cp-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateOrUpdateRejectsInvalidContent(t *testing.T) {
	f := newFixture(t)
	content := grantContent(1, "01010012345", "2024-01", 1000)
	content.Content.EffectiveFrom = decision.Month{}
	f.content.content["cp-1"] = content

	_, err := f.service.CreateOrUpdate(t.Context(), "cp-1", "saksbehandler")
	var validation *decision.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestFullLifecycle(t *testing.T) {
	f := newFixture(t)
	d := f.draft(t, "cp-1", 1, "2024-01")

	issued, err := f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)
	assert.Equal(t, decision.StatusIssued, issued.Status)
	assert.Equal(t, decision.Actor("saksbehandler"), issued.IssuedBy)

	f.clock.Advance(time.Hour)
	attested, err := f.service.Attest(t.Context(), d.Key, "attestant", "looks right")
	require.NoError(t, err)
	assert.Equal(t, decision.StatusAttested, attested.Status)
	assert.Equal(t, "looks right", attested.AttestationComment)

	active, err := f.service.Activate(t.Context(), d.Key, "system")
	require.NoError(t, err)
	assert.Equal(t, decision.StatusActive, active.Status)
	assert.NotNil(t, active.ActivatedAt)

	stored, err := f.service.GetDecision(t.Context(), d.Key)
	require.NoError(t, err)
	assert.Equal(t, active.Revision, stored.Revision)
	assert.Equal(t, decision.StatusActive, stored.Status)

	assert.Equal(t, []decision.Status{decision.StatusIssued, decision.StatusAttested}, f.caseProcessing.statuses)
	assert.Equal(t, []string{"cp-1"}, f.caseProcessing.activated)
	assert.Equal(t, []int64{d.Key}, f.letters.requested)
	assert.Equal(t, []exporter.Intent{
		exporter.DecisionCreated,
		exporter.DecisionIssued,
		exporter.DecisionAttested,
		exporter.DecisionActivated,
	}, f.events.intents())

	history, err := f.service.TransitionHistory(t.Context(), d.Key)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "create", history[0].Operation)
	assert.Equal(t, decision.StatusAttested, history[3].From)
	assert.Equal(t, decision.StatusActive, history[3].To)
	assert.Equal(t, decision.Actor("system"), history[3].Actor)

	status, err := f.service.IsRunningAsOf(t.Context(), 1, day("2024-05-01"))
	require.NoError(t, err)
	assert.True(t, status.Running)
	assert.Equal(t, day("2024-05-01"), status.Date)
	assert.Equal(t, "cp-1", status.LastCaseProcessingID)
}

func TestIssueRequiresIssuableCase(t *testing.T) {
	f := newFixture(t)
	d := f.draft(t, "cp-1", 1, "2024-01")
	f.caseProcessing.notIssuable = true

	_, err := f.service.Issue(t.Context(), d.Key, "saksbehandler")
	assert.ErrorIs(t, err, decision.ErrCaseNotIssuable)

	stored, err := f.service.GetDecision(t.Context(), d.Key)
	require.NoError(t, err)
	assert.Equal(t, decision.StatusDraft, stored.Status)
	assert.Empty(t, f.caseProcessing.statuses)
}

func TestIssueUnknownDecision(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.Issue(t.Context(), 404, "saksbehandler")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAttestBySameActorIsRefused(t *testing.T) {
	f := newFixture(t)
	d := f.draft(t, "cp-1", 1, "2024-01")
	_, err := f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)

	_, err = f.service.Attest(t.Context(), d.Key, "saksbehandler", "")
	assert.ErrorIs(t, err, decision.ErrSelfAttestation)
}

func TestAttestRequiresAttestableCase(t *testing.T) {
	f := newFixture(t)
	d := f.draft(t, "cp-1", 1, "2024-01")
	_, err := f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)
	f.caseProcessing.notAttestable = true

	_, err = f.service.Attest(t.Context(), d.Key, "attestant", "")
	assert.ErrorIs(t, err, decision.ErrCaseNotAttestable)
}

func TestActivateFromIssuedIsInvalidState(t *testing.T) {
	f := newFixture(t)
	d := f.draft(t, "cp-1", 1, "2024-01")
	_, err := f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)

	_, err = f.service.Activate(t.Context(), d.Key, "system")
	var invalid *decision.InvalidStateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, decision.StatusIssued, invalid.Status)
	assert.Empty(t, f.caseProcessing.activated)
}

func TestRegulationChangeSuppressesLetter(t *testing.T) {
	f := newFixture(t)
	content := grantContent(1, "01010012345", "2024-05", 1100)
	content.Content.Type = decision.TypeChange
	content.Content.ReviewCause = decision.ReviewCauseRegulation
	f.content.content["cp-reg"] = content

	d, err := f.service.CreateOrUpdate(t.Context(), "cp-reg", "system")
	require.NoError(t, err)
	_, err = f.service.Issue(t.Context(), d.Key, "system")
	require.NoError(t, err)
	_, err = f.service.Attest(t.Context(), d.Key, "attestant", "")
	require.NoError(t, err)

	assert.Empty(t, f.letters.requested)
	last := f.events.events[len(f.events.events)-1]
	assert.Equal(t, exporter.DecisionAttested, last.Intent)
	assert.True(t, last.LetterSuppressed)
}

func TestCoordinationPath(t *testing.T) {
	f := newFixture(t)
	d := f.draft(t, "cp-1", 1, "2024-01")
	_, err := f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)
	f.probe.needed = true

	pending, err := f.service.SendToCoordination(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)
	assert.Equal(t, decision.StatusPendingCoordination, pending.Status)

	status, err := f.service.IsRunningAsOf(t.Context(), 1, day("2024-05-01"))
	require.NoError(t, err)
	assert.True(t, status.UnderCoordination)

	_, err = f.service.Attest(t.Context(), d.Key, "attestant", "")
	assert.True(t, decision.IsInvalidState(err))

	coordinated, err := f.service.CompleteCoordination(t.Context(), d.Key, "samordning")
	require.NoError(t, err)
	assert.Equal(t, decision.StatusCoordinated, coordinated.Status)

	attested, err := f.service.Attest(t.Context(), d.Key, "attestant", "")
	require.NoError(t, err)
	assert.Equal(t, decision.StatusAttested, attested.Status)
	assert.Contains(t, f.events.intents(), exporter.DecisionSentToCoordination)
}

func TestCoordinationWithoutResponseSkipsPending(t *testing.T) {
	f := newFixture(t)
	d := f.draft(t, "cp-1", 1, "2024-01")
	_, err := f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)

	coordinated, err := f.service.SendToCoordination(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)
	assert.Equal(t, decision.StatusCoordinated, coordinated.Status)
	assert.Equal(t, exporter.DecisionCoordinated, f.events.intents()[len(f.events.intents())-1])
}

func TestRejectAndReissue(t *testing.T) {
	f := newFixture(t)
	d := f.attested(t, "cp-1", 1, "2024-01")

	rejected, err := f.service.Reject(t.Context(), d.Key, "attestant", "wrong amount")
	require.NoError(t, err)
	assert.Equal(t, decision.StatusRejected, rejected.Status)
	assert.Equal(t, "wrong amount", rejected.RejectionReason)
	assert.Nil(t, rejected.IssuedAt)
	assert.Nil(t, rejected.AttestedAt)
	assert.Empty(t, rejected.AttestedBy)

	f.content.content["cp-1"] = grantContent(1, "01010012345", "2024-01", 1300)
	refreshed, err := f.service.CreateOrUpdate(t.Context(), "cp-1", "saksbehandler")
	require.NoError(t, err)
	assert.Equal(t, d.Key, refreshed.Key)

	reissued, err := f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)
	assert.Equal(t, decision.StatusIssued, reissued.Status)
	assert.Empty(t, reissued.RejectionReason)
}

func TestRejectRequiresRejectableCase(t *testing.T) {
	f := newFixture(t)
	d := f.attested(t, "cp-1", 1, "2024-01")
	f.caseProcessing.notRejectable = true

	_, err := f.service.Reject(t.Context(), d.Key, "attestant", "no")
	assert.ErrorIs(t, err, decision.ErrCaseNotRejectable)
}

func TestRejectActiveDecisionIsInvalidState(t *testing.T) {
	f := newFixture(t)
	d := f.attested(t, "cp-1", 1, "2024-01")
	_, err := f.service.Activate(t.Context(), d.Key, "system")
	require.NoError(t, err)

	_, err = f.service.Reject(t.Context(), d.Key, "attestant", "too late")
	assert.True(t, decision.IsInvalidState(err))
}

func TestConcurrentModificationIsInvalidState(t *testing.T) {
	f := newFixture(t)
	stale := f.draft(t, "cp-1", 1, "2024-01")
	_, err := f.service.Issue(t.Context(), stale.Key, "saksbehandler")
	require.NoError(t, err)

	// a second request still holding the draft loses the status-conditioned write
	_, err = f.service.run(t.Context(), stale, "other", transition{
		operation: decision.OperationIssue,
		next: func(_ context.Context, d decision.Decision, at time.Time) (decision.Decision, error) {
			return d.Issue("other", at)
		},
		intent: func(decision.Decision) exporter.Intent { return exporter.DecisionIssued },
	})
	var invalid *decision.InvalidStateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, decision.StatusIssued, invalid.Status)
	assert.ErrorIs(t, err, storage.ErrConflict)

	stored, err := f.service.GetDecision(t.Context(), stale.Key)
	require.NoError(t, err)
	assert.Equal(t, decision.Actor("saksbehandler"), stored.IssuedBy)
}

func TestExportFailureDoesNotFailTransition(t *testing.T) {
	f := newFixture(t)
	f.events.err = errors.New("kafka down")
	d := f.draft(t, "cp-1", 1, "2024-01")

	issued, err := f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)
	assert.Equal(t, decision.StatusIssued, issued.Status)
}

func TestTimelineSeesNewTransitions(t *testing.T) {
	f := newFixture(t)
	d := f.draft(t, "cp-1", 1, "2024-01")

	status, err := f.service.IsRunningAsOf(t.Context(), 1, day("2024-05-01"))
	require.NoError(t, err)
	assert.False(t, status.Running)

	_, err = f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)
	_, err = f.service.Attest(t.Context(), d.Key, "attestant", "")
	require.NoError(t, err)

	status, err = f.service.IsRunningAsOf(t.Context(), 1, day("2024-05-01"))
	require.NoError(t, err)
	assert.True(t, status.Running)

	ledger, err := f.service.ReconcileTimeline(t.Context(), 1, f.clock.Now())
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, "[2024-01..open 1000]", ledger[0].String())

	intervals, err := f.service.GrantedIntervals(t.Context(), 1, f.clock.Now())
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Nil(t, intervals[0].To)
}

func TestReconcileTimelineHonoursAsOf(t *testing.T) {
	f := newFixture(t)
	f.attested(t, "cp-1", 1, "2024-01")
	attestedAt := f.clock.Now()

	f.clock.Advance(24 * time.Hour)
	change := grantContent(1, "01010012345", "2024-06", 1500)
	change.Content.Type = decision.TypeChange
	f.content.content["cp-2"] = change
	d, err := f.service.CreateOrUpdate(t.Context(), "cp-2", "saksbehandler")
	require.NoError(t, err)
	_, err = f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)
	_, err = f.service.Attest(t.Context(), d.Key, "attestant", "")
	require.NoError(t, err)

	before, err := f.service.ReconcileTimeline(t.Context(), 1, attestedAt)
	require.NoError(t, err)
	assert.Len(t, before, 1)

	after, err := f.service.ReconcileTimeline(t.Context(), 1, f.clock.Now())
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, "[2024-01..2024-05 1000]", after[0].String())
	assert.Equal(t, "cp-2", after[1].CaseProcessingID)
}

func TestIdentityWideQueries(t *testing.T) {
	f := newFixture(t)
	f.attested(t, "cp-1", 1, "2023-01")
	f.content.content["cp-2"] = grantContent(2, "01010012345", "2024-01", 700)
	d, err := f.service.CreateOrUpdate(t.Context(), "cp-2", "saksbehandler")
	require.NoError(t, err)
	_, err = f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)
	_, err = f.service.Attest(t.Context(), d.Key, "attestant", "")
	require.NoError(t, err)

	ledger, err := f.service.ReconcileIdentityTimeline(t.Context(), "01010012345", f.clock.Now())
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, "cp-1", ledger[0].CaseProcessingID)
	assert.Equal(t, "cp-2", ledger[1].CaseProcessingID)

	status, err := f.service.IsRunningForIdentity(t.Context(), "01010012345", day("2024-02-01"))
	require.NoError(t, err)
	assert.True(t, status.Running)
	assert.Equal(t, "cp-2", status.LastCaseProcessingID)

	status, err = f.service.IsRunningForIdentity(t.Context(), "unknown", day("2024-02-01"))
	require.NoError(t, err)
	assert.False(t, status.Running)
}
