// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

// Package storagetest holds the behaviour every storage.Storage implementation must show.
// Backends run it with:
//
//	tester := storagetest.StorageTester{}
//	tester.PrepareTestData(store, t)
//	for name, testFunc := range tester.GetTests() {
//		t.Run(name, testFunc(store, t))
//	}
package storagetest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	stdruntime "runtime"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type StorageTestFunc func(s storage.Storage, t *testing.T) func(t *testing.T)

type StorageTester struct {
	identity string
	caseID   int64
	draft    decision.Decision
}

func (st *StorageTester) GetTests() map[string]StorageTestFunc {
	tests := map[string]StorageTestFunc{}

	// all test functions need to be registered here
	functions := []StorageTestFunc{
		st.TestDecisionStorageWriter,
		st.TestDecisionStorageReaderGetSingle,
		st.TestDecisionStorageReaderGetMultiple,
		st.TestCreateDecisionConflict,
		st.TestUpdateDecisionExpectedStatus,
		st.TestUpdateDecisionStaleRevision,
		st.TestUpdateDecisionNotFound,
		st.TestTransitionStorage,
		st.TestBatchIsAtomic,
		st.TestNonPaymentDecisionNextToGrant,
		st.TestTransitionsWithEqualTimeKeepSaveOrder,
	}

	for _, function := range functions {
		funcName := getFunctionName(function)
		strippedName := funcName[strings.LastIndex(funcName, ".")+1:]
		strippedName = strings.TrimSuffix(strippedName, "-fm")
		tests[strippedName] = function
	}
	return tests
}

func getFunctionName(i any) string {
	return stdruntime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
}

// timestamps are truncated so every backend can store them losslessly
func testTime() time.Time {
	return time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)
}

func getDecision(t *testing.T, key int64, caseID int64, identity string) decision.Decision {
	to := decision.NewMonth(2024, time.April)
	d, err := decision.New(key, fmt.Sprintf("cp-%d", key), caseID, identity, decision.Content{
		Type:          decision.TypeGrant,
		ReviewCause:   decision.ReviewCauseApplication,
		EffectiveFrom: decision.NewMonth(2024, time.January),
		Payload: decision.PaymentPayload{Periods: []decision.PaymentPeriod{
			decision.NewPaymentPeriod(decision.NewMonth(2024, time.January), &to, decimal.RequireFromString("1000.50")),
			decision.NewPaymentPeriod(decision.NewMonth(2024, time.May), nil, decimal.NewFromInt(1100)),
		}},
	}, testTime())
	require.NoError(t, err)
	return d
}

// assertSameDecision compares the parts of a decision every backend must round-trip
func assertSameDecision(t *testing.T, expected decision.Decision, actual decision.Decision) {
	t.Helper()
	assert.Equal(t, expected.Key, actual.Key)
	assert.Equal(t, expected.CaseProcessingID, actual.CaseProcessingID)
	assert.Equal(t, expected.CaseID, actual.CaseID)
	assert.Equal(t, expected.Identity, actual.Identity)
	assert.Equal(t, expected.Status, actual.Status)
	assert.Equal(t, expected.Type, actual.Type)
	assert.Equal(t, expected.ReviewCause, actual.ReviewCause)
	assert.Equal(t, expected.EffectiveFrom, actual.EffectiveFrom)
	assert.Equal(t, expected.TerminatesFrom, actual.TerminatesFrom)
	assert.Equal(t, fmt.Sprint(expected.Periods()), fmt.Sprint(actual.Periods()))
	assert.Equal(t, expected.IssuedBy, actual.IssuedBy)
	assert.Equal(t, expected.AttestedBy, actual.AttestedBy)
	assert.Equal(t, expected.AttestationComment, actual.AttestationComment)
	assert.Equal(t, expected.RejectionReason, actual.RejectionReason)
	assertSameTime(t, expected.IssuedAt, actual.IssuedAt)
	assertSameTime(t, expected.AttestedAt, actual.AttestedAt)
	assertSameTime(t, expected.ActivatedAt, actual.ActivatedAt)
	assert.True(t, expected.CreatedAt.Equal(actual.CreatedAt), "created at %s, got %s", expected.CreatedAt, actual.CreatedAt)
}

func assertSameTime(t *testing.T, expected *time.Time, actual *time.Time) {
	t.Helper()
	if expected == nil {
		assert.Nil(t, actual)
		return
	}
	if assert.NotNil(t, actual) {
		assert.True(t, expected.Equal(*actual), "expected %s, got %s", expected, actual)
	}
}

// PrepareTestData will prepare common data for the tests
func (st *StorageTester) PrepareTestData(s storage.Storage, t *testing.T) {
	r := s.GenerateId()
	st.identity = fmt.Sprintf("identity-%d", r)
	st.caseID = r

	st.draft = getDecision(t, r, st.caseID, st.identity)
	err := s.CreateDecision(t.Context(), st.draft)
	require.NoError(t, err)
}

func (st *StorageTester) TestDecisionStorageWriter(s storage.Storage, t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		r := s.GenerateId()
		d := getDecision(t, r, r, "writer")

		err := s.CreateDecision(t.Context(), d)
		assert.NoError(t, err)

		stored, err := s.FindDecisionByKey(t.Context(), r)
		require.NoError(t, err)
		assertSameDecision(t, d, stored)
		assert.Equal(t, int64(1), stored.Revision)

		issued, err := stored.Issue("saksbehandler", testTime().Add(time.Hour))
		require.NoError(t, err)
		err = s.UpdateDecision(t.Context(), issued, decision.StatusDraft)
		assert.NoError(t, err)

		stored, err = s.FindDecisionByKey(t.Context(), r)
		require.NoError(t, err)
		assertSameDecision(t, issued, stored)
		assert.Equal(t, int64(2), stored.Revision)
	}
}

func (st *StorageTester) TestDecisionStorageReaderGetSingle(s storage.Storage, t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		d, err := s.FindDecisionByKey(t.Context(), st.draft.Key)
		assert.NoError(t, err)
		assertSameDecision(t, st.draft, d)

		d, err = s.FindDecisionByCaseProcessingID(t.Context(), st.draft.CaseProcessingID)
		assert.NoError(t, err)
		assert.Equal(t, st.draft.Key, d.Key)

		_, err = s.FindDecisionByKey(t.Context(), -1)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = s.FindDecisionByCaseProcessingID(t.Context(), "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	}
}

func (st *StorageTester) TestDecisionStorageReaderGetMultiple(s storage.Storage, t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		other := getDecision(t, s.GenerateId(), s.GenerateId(), st.identity)
		require.NoError(t, s.CreateDecision(t.Context(), other))

		byCase, err := s.FindDecisionsByCaseID(t.Context(), st.caseID)
		assert.NoError(t, err)
		if assert.Len(t, byCase, 1) {
			assert.Equal(t, st.draft.Key, byCase[0].Key)
		}

		byIdentity, err := s.FindDecisionsByIdentity(t.Context(), st.identity)
		assert.NoError(t, err)
		keys := make([]int64, 0, len(byIdentity))
		for _, d := range byIdentity {
			keys = append(keys, d.Key)
		}
		assert.ElementsMatch(t, []int64{st.draft.Key, other.Key}, keys)
		assert.IsIncreasing(t, keys)

		none, err := s.FindDecisionsByIdentity(t.Context(), "nobody")
		assert.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	}
}

func (st *StorageTester) TestCreateDecisionConflict(s storage.Storage, t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		duplicate := getDecision(t, s.GenerateId(), st.caseID, st.identity)
		duplicate.CaseProcessingID = st.draft.CaseProcessingID

		err := s.CreateDecision(t.Context(), duplicate)
		assert.ErrorIs(t, err, storage.ErrConflict)

		_, err = s.FindDecisionByKey(t.Context(), duplicate.Key)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	}
}

func (st *StorageTester) TestUpdateDecisionExpectedStatus(s storage.Storage, t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		r := s.GenerateId()
		d := getDecision(t, r, r, "expected-status")
		require.NoError(t, s.CreateDecision(t.Context(), d))
		stored, err := s.FindDecisionByKey(t.Context(), r)
		require.NoError(t, err)

		issued, err := stored.Issue("saksbehandler", testTime())
		require.NoError(t, err)
		err = s.UpdateDecision(t.Context(), issued, decision.StatusAttested)
		assert.ErrorIs(t, err, storage.ErrConflict)

		after, err := s.FindDecisionByKey(t.Context(), r)
		require.NoError(t, err)
		assert.Equal(t, decision.StatusDraft, after.Status)
		assert.Equal(t, stored.Revision, after.Revision)
	}
}

func (st *StorageTester) TestUpdateDecisionStaleRevision(s storage.Storage, t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		r := s.GenerateId()
		d := getDecision(t, r, r, "stale")
		require.NoError(t, s.CreateDecision(t.Context(), d))
		stored, err := s.FindDecisionByKey(t.Context(), r)
		require.NoError(t, err)

		refreshed, err := stored.Refresh(stored.Content, testTime())
		require.NoError(t, err)
		require.NoError(t, s.UpdateDecision(t.Context(), refreshed, decision.StatusDraft))

		// stored still carries the first revision
		issued, err := stored.Issue("saksbehandler", testTime())
		require.NoError(t, err)
		err = s.UpdateDecision(t.Context(), issued, decision.StatusDraft)
		assert.ErrorIs(t, err, storage.ErrConflict)
	}
}

func (st *StorageTester) TestUpdateDecisionNotFound(s storage.Storage, t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		missing := getDecision(t, s.GenerateId(), 1, "missing")
		missing.Revision = 1
		err := s.UpdateDecision(t.Context(), missing, decision.StatusDraft)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	}
}

func (st *StorageTester) TestTransitionStorage(s storage.Storage, t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		decisionKey := s.GenerateId()
		second := storage.TransitionRecord{
			Key:         s.GenerateId(),
			DecisionKey: decisionKey,
			Operation:   "attest",
			From:        decision.StatusIssued,
			To:          decision.StatusAttested,
			Actor:       "attestant",
			At:          testTime().Add(time.Hour),
		}
		first := storage.TransitionRecord{
			Key:         s.GenerateId(),
			DecisionKey: decisionKey,
			Operation:   "issue",
			From:        decision.StatusDraft,
			To:          decision.StatusIssued,
			Actor:       "saksbehandler",
			At:          testTime(),
		}
		assert.NoError(t, s.SaveTransition(t.Context(), second))
		assert.NoError(t, s.SaveTransition(t.Context(), first))

		records, err := s.FindTransitionsByDecisionKey(t.Context(), decisionKey)
		assert.NoError(t, err)
		if assert.Len(t, records, 2) {
			assert.Equal(t, first.Key, records[0].Key)
			assert.Equal(t, decision.StatusIssued, records[0].To)
			assert.Equal(t, decision.Actor("attestant"), records[1].Actor)
			assert.True(t, second.At.Equal(records[1].At))
		}
	}
}

func (st *StorageTester) TestBatchIsAtomic(s storage.Storage, t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		r := s.GenerateId()
		d := getDecision(t, r, r, "batch")
		require.NoError(t, s.CreateDecision(t.Context(), d))
		stored, err := s.FindDecisionByKey(t.Context(), r)
		require.NoError(t, err)
		issued, err := stored.Issue("saksbehandler", testTime())
		require.NoError(t, err)

		batch := s.NewBatch()
		assert.NoError(t, batch.SaveTransition(t.Context(), storage.TransitionRecord{
			Key: s.GenerateId(), DecisionKey: r, Operation: "issue",
			From: decision.StatusDraft, To: decision.StatusIssued, Actor: "saksbehandler", At: testTime(),
		}))
		assert.NoError(t, batch.UpdateDecision(t.Context(), issued, decision.StatusAttested))
		err = batch.Flush(t.Context())
		assert.ErrorIs(t, err, storage.ErrConflict)

		records, err := s.FindTransitionsByDecisionKey(t.Context(), r)
		assert.NoError(t, err)
		assert.Empty(t, records)

		assert.NoError(t, batch.UpdateDecision(t.Context(), issued, decision.StatusDraft))
		assert.NoError(t, batch.SaveTransition(t.Context(), storage.TransitionRecord{
			Key: s.GenerateId(), DecisionKey: r, Operation: "issue",
			From: decision.StatusDraft, To: decision.StatusIssued, Actor: "saksbehandler", At: testTime(),
		}))
		assert.NoError(t, batch.Flush(t.Context()))

		after, err := s.FindDecisionByKey(t.Context(), r)
		assert.NoError(t, err)
		assert.Equal(t, decision.StatusIssued, after.Status)
		records, err = s.FindTransitionsByDecisionKey(t.Context(), r)
		assert.NoError(t, err)
		assert.Len(t, records, 1)
	}
}

func (st *StorageTester) TestNonPaymentDecisionNextToGrant(s storage.Storage, t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		caseID := s.GenerateId()
		identity := fmt.Sprintf("repayment-%d", caseID)
		grant := getDecision(t, s.GenerateId(), caseID, identity)
		require.NoError(t, s.CreateDecision(t.Context(), grant))

		repayment, err := decision.New(s.GenerateId(), fmt.Sprintf("cp-repayment-%d", caseID), caseID, identity, decision.Content{
			Type:        decision.TypeRepayment,
			ReviewCause: decision.ReviewCauseOther,
			Payload: decision.RepaymentPayload{Terms: decision.RepaymentTerms{
				Amount:       decimal.NewFromInt(2500),
				Installments: 5,
				Reason:       "overpaid",
			}},
		}, testTime())
		require.NoError(t, err)
		require.True(t, repayment.EffectiveFrom.IsZero())
		require.NoError(t, s.CreateDecision(t.Context(), repayment))

		stored, err := s.FindDecisionByKey(t.Context(), repayment.Key)
		require.NoError(t, err)
		assertSameDecision(t, repayment, stored)

		byCase, err := s.FindDecisionsByCaseID(t.Context(), caseID)
		require.NoError(t, err)
		assert.Len(t, byCase, 2)

		byIdentity, err := s.FindDecisionsByIdentity(t.Context(), identity)
		require.NoError(t, err)
		assert.Len(t, byIdentity, 2)
	}
}

func (st *StorageTester) TestTransitionsWithEqualTimeKeepSaveOrder(s storage.Storage, t *testing.T) func(t *testing.T) {
	return func(t *testing.T) {
		decisionKey := s.GenerateId()
		operations := []string{"create", "issue", "attest", "activate"}
		for _, op := range operations {
			require.NoError(t, s.SaveTransition(t.Context(), storage.TransitionRecord{
				Key:         s.GenerateId(),
				DecisionKey: decisionKey,
				Operation:   op,
				Actor:       "saksbehandler",
				At:          testTime(),
			}))
		}

		records, err := s.FindTransitionsByDecisionKey(t.Context(), decisionKey)
		require.NoError(t, err)
		saved := make([]string, 0, len(records))
		for _, r := range records {
			saved = append(saved, r.Operation)
		}
		assert.Equal(t, operations, saved)
	}
}
