// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/exporter"
	"github.com/pbinitiative/zenvedtak/pkg/storage/inmemory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeCaseProcessing struct {
	notIssuable   bool
	notAttestable bool
	notRejectable bool
	refuse        bool
	checkErr      error
	statusErr     error
	activateErr   error

	statuses  []decision.Status
	activated []string
}

func (f *fakeCaseProcessing) IsIssuable(ctx context.Context, caseProcessingID string) (bool, error) {
	return !f.notIssuable, f.checkErr
}

func (f *fakeCaseProcessing) IsAttestable(ctx context.Context, caseProcessingID string, actor decision.Actor) (bool, error) {
	return !f.notAttestable, f.checkErr
}

func (f *fakeCaseProcessing) IsRejectable(ctx context.Context, caseProcessingID string) (bool, error) {
	return !f.notRejectable, f.checkErr
}

func (f *fakeCaseProcessing) UpdateCaseStatus(ctx context.Context, caseProcessingID string, status decision.Status) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeCaseProcessing) ActivateCase(ctx context.Context, caseProcessingID string, actor decision.Actor) (bool, error) {
	if f.activateErr != nil {
		return false, f.activateErr
	}
	if f.refuse {
		return false, nil
	}
	f.activated = append(f.activated, caseProcessingID)
	return true, nil
}

type fakeContentSource struct {
	content map[string]CaseContent
	err     error
}

func (f *fakeContentSource) FetchCaseContent(ctx context.Context, caseProcessingID string) (CaseContent, error) {
	if f.err != nil {
		return CaseContent{}, f.err
	}
	c, ok := f.content[caseProcessingID]
	if !ok {
		return CaseContent{}, fmt.Errorf("no content for %s", caseProcessingID)
	}
	return c, nil
}

type fakeProbe struct {
	needed bool
	err    error
}

func (f *fakeProbe) NeedsExternalCoordination(ctx context.Context, d decision.Decision) (bool, error) {
	return f.needed, f.err
}

type fakeLetters struct {
	requested []int64
	err       error
}

func (f *fakeLetters) RequestLetter(ctx context.Context, caseProcessingID string, d decision.Decision) error {
	if f.err != nil {
		return f.err
	}
	f.requested = append(f.requested, d.Key)
	return nil
}

type recordingExporter struct {
	mu     sync.Mutex
	events []*exporter.DecisionEvent
	err    error
}

func (r *recordingExporter) ExportDecisionEvent(ctx context.Context, event *exporter.DecisionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingExporter) intents() []exporter.Intent {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]exporter.Intent, 0, len(r.events))
	for _, e := range r.events {
		res = append(res, e.Intent)
	}
	return res
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fixture struct {
	service        *Service
	store          *inmemory.Storage
	caseProcessing *fakeCaseProcessing
	content        *fakeContentSource
	probe          *fakeProbe
	letters        *fakeLetters
	events         *recordingExporter
	clock          *testClock
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		store:          inmemory.NewStorage(),
		caseProcessing: &fakeCaseProcessing{},
		content:        &fakeContentSource{content: map[string]CaseContent{}},
		probe:          &fakeProbe{},
		letters:        &fakeLetters{},
		events:         &recordingExporter{},
		clock:          &testClock{now: time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)},
	}
	service, err := NewService(f.store, f.caseProcessing, f.content,
		ServiceWithCoordinationProbe(f.probe),
		ServiceWithLetterService(f.letters),
		ServiceWithExporter(f.events),
		ServiceWithClock(f.clock.Now),
		ServiceWithLogger(hclog.NewNullLogger()),
	)
	require.NoError(t, err)
	f.service = service
	return f
}

func grantContent(caseID int64, identity string, effectiveFrom string, amount int64) CaseContent {
	from := decision.MustParseMonth(effectiveFrom)
	return CaseContent{
		CaseID:   caseID,
		Identity: identity,
		Content: decision.Content{
			Type:          decision.TypeGrant,
			ReviewCause:   decision.ReviewCauseApplication,
			EffectiveFrom: from,
			Payload: decision.PaymentPayload{Periods: []decision.PaymentPeriod{
				decision.NewPaymentPeriod(from, nil, decimal.NewFromInt(amount)),
			}},
		},
	}
}

// draft creates the decision of a case-processing unit with a grant from effectiveFrom
func (f *fixture) draft(t *testing.T, caseProcessingID string, caseID int64, effectiveFrom string) decision.Decision {
	f.content.content[caseProcessingID] = grantContent(caseID, "01010012345", effectiveFrom, 1000)
	d, err := f.service.CreateOrUpdate(t.Context(), caseProcessingID, "saksbehandler")
	require.NoError(t, err)
	return d
}

// attested brings a fresh decision up to ATTESTED
func (f *fixture) attested(t *testing.T, caseProcessingID string, caseID int64, effectiveFrom string) decision.Decision {
	d := f.draft(t, caseProcessingID, caseID, effectiveFrom)
	_, err := f.service.Issue(t.Context(), d.Key, "saksbehandler")
	require.NoError(t, err)
	f.clock.Advance(time.Hour)
	d, err = f.service.Attest(t.Context(), d.Key, "attestant", "ok")
	require.NoError(t, err)
	return d
}
