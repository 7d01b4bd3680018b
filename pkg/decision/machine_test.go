// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuedDecision(t *testing.T) Decision {
	d, err := New(1, "cp-1", 10, "01010012345", grantContent(), now)
	require.NoError(t, err)
	d, err = d.Issue("Z111111", now)
	require.NoError(t, err)
	return d
}

func TestIssueSetsSignature(t *testing.T) {
	d := issuedDecision(t)

	assert.Equal(t, StatusIssued, d.Status)
	assert.Equal(t, Actor("Z111111"), d.IssuedBy)
	assert.Equal(t, now, *d.IssuedAt)
}

func TestIssueDoesNotModifyReceiver(t *testing.T) {
	draft, err := New(1, "cp-1", 10, "01010012345", grantContent(), now)
	require.NoError(t, err)

	_, err = draft.Issue("Z111111", now)
	require.NoError(t, err)

	assert.Equal(t, StatusDraft, draft.Status)
	assert.Nil(t, draft.IssuedAt)
}

func TestIssueRequiresEditableStatus(t *testing.T) {
	d := issuedDecision(t)

	_, err := d.Issue("Z111111", now)

	var invalid *InvalidStateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, StatusIssued, invalid.Status)
	assert.Equal(t, OperationIssue, invalid.Operation)
}

func TestAttestRejectsSelfAttestation(t *testing.T) {
	d := issuedDecision(t)

	_, err := d.Attest("Z111111", "ok", now)

	assert.ErrorIs(t, err, ErrSelfAttestation)
}

func TestAttestRequiresTerminationForDeath(t *testing.T) {
	content := grantContent()
	content.Type = TypeChange
	content.ReviewCause = ReviewCauseDeath
	d, err := New(1, "cp-1", 10, "01010012345", content, now)
	require.NoError(t, err)
	d, err = d.Issue("Z111111", now)
	require.NoError(t, err)

	_, err = d.Attest("Z222222", "ok", now)

	assert.ErrorIs(t, err, ErrTerminationShapeRequired)
}

func TestAttestTerminationForDeath(t *testing.T) {
	d, err := New(1, "cp-1", 10, "01010012345", Content{
		Type:          TypeTermination,
		ReviewCause:   ReviewCauseDeath,
		EffectiveFrom: MustParseMonth("2024-02"),
		Payload:       PaymentPayload{},
	}, now)
	require.NoError(t, err)
	d, err = d.Issue("Z111111", now)
	require.NoError(t, err)

	d, err = d.Attest("Z222222", "ok", now)

	require.NoError(t, err)
	assert.Equal(t, StatusAttested, d.Status)
}

func TestCoordinationPath(t *testing.T) {
	d := issuedDecision(t)

	pending, err := d.RouteToCoordination(true, now)
	require.NoError(t, err)
	assert.Equal(t, StatusPendingCoordination, pending.Status)

	_, err = pending.Attest("Z222222", "", now)
	assert.True(t, IsInvalidState(err))

	coordinated, err := pending.CompleteCoordination(now)
	require.NoError(t, err)
	assert.Equal(t, StatusCoordinated, coordinated.Status)

	attested, err := coordinated.Attest("Z222222", "", now)
	require.NoError(t, err)
	assert.Equal(t, StatusAttested, attested.Status)
}

func TestCoordinationSkippedWhenNoResponseNeeded(t *testing.T) {
	d := issuedDecision(t)

	next, err := d.RouteToCoordination(false, now)

	require.NoError(t, err)
	assert.Equal(t, StatusCoordinated, next.Status)
}

func TestActivateRequiresAttested(t *testing.T) {
	d := issuedDecision(t)

	_, err := d.Activate(now)

	assert.True(t, IsInvalidState(err))

	d, err = d.Attest("Z222222", "", now)
	require.NoError(t, err)
	d, err = d.Activate(now)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, d.Status)
	assert.NotNil(t, d.ActivatedAt)
}

func TestRejectClearsSignatures(t *testing.T) {
	d := issuedDecision(t)
	d, err := d.Attest("Z222222", "looks fine", now)
	require.NoError(t, err)

	d, err = d.Reject("wrong amount", now)

	require.NoError(t, err)
	assert.Equal(t, StatusRejected, d.Status)
	assert.Empty(t, d.IssuedBy)
	assert.Nil(t, d.IssuedAt)
	assert.Empty(t, d.AttestedBy)
	assert.Nil(t, d.AttestedAt)
	assert.Equal(t, "wrong amount", d.RejectionReason)

	// rejected decisions can be refreshed and issued again
	d, err = d.Refresh(grantContent(), now)
	require.NoError(t, err)
	d, err = d.Issue("Z111111", now)
	require.NoError(t, err)
	assert.Equal(t, StatusIssued, d.Status)
	assert.Empty(t, d.RejectionReason)
}

func TestRejectNotAllowedFromActive(t *testing.T) {
	d := issuedDecision(t)
	d, err := d.Attest("Z222222", "", now)
	require.NoError(t, err)
	d, err = d.Activate(now)
	require.NoError(t, err)

	_, err = d.Reject("too late", now)

	assert.True(t, IsInvalidState(err))
}

func TestRefreshRequiresEditable(t *testing.T) {
	d := issuedDecision(t)

	_, err := d.Refresh(grantContent(), now)

	assert.True(t, IsInvalidState(err))
}
