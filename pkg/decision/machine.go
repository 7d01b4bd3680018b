// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package decision

import "time"

// Operation names reported in InvalidStateError
const (
	OperationUpdate               = "update"
	OperationIssue                = "issue"
	OperationSendToCoordination   = "send to coordination"
	OperationCompleteCoordination = "complete coordination"
	OperationAttest               = "attest"
	OperationActivate             = "activate"
	OperationReject               = "reject"
)

// The transition methods below never modify the receiver. They return the next version of the decision,
// which the caller persists only once every external side effect of the transition has succeeded.

// Refresh replaces the content of an editable decision
func (d Decision) Refresh(content Content, now time.Time) (Decision, error) {
	if !d.Status.IsEditable() {
		return Decision{}, newInvalidState(OperationUpdate, d.Status)
	}
	normalized, err := normalizeContent(content)
	if err != nil {
		return Decision{}, err
	}
	next := d.Clone()
	next.Content = normalized
	next.UpdatedAt = now
	return next, nil
}

func (d Decision) CanIssue() error {
	if !d.Status.IsEditable() {
		return newInvalidState(OperationIssue, d.Status)
	}
	return nil
}

func (d Decision) Issue(actor Actor, at time.Time) (Decision, error) {
	if err := d.CanIssue(); err != nil {
		return Decision{}, err
	}
	next := d.Clone()
	next.Status = StatusIssued
	next.IssuedBy = actor
	next.IssuedAt = &at
	next.RejectionReason = ""
	next.UpdatedAt = at
	return next, nil
}

func (d Decision) CanRouteToCoordination() error {
	if d.Status != StatusIssued {
		return newInvalidState(OperationSendToCoordination, d.Status)
	}
	return nil
}

// RouteToCoordination enters the coordination sub-path. When no response from the other payors is required
// the decision skips straight to COORDINATED.
func (d Decision) RouteToCoordination(responseRequired bool, at time.Time) (Decision, error) {
	if err := d.CanRouteToCoordination(); err != nil {
		return Decision{}, err
	}
	next := d.Clone()
	next.Status = StatusCoordinated
	if responseRequired {
		next.Status = StatusPendingCoordination
	}
	next.UpdatedAt = at
	return next, nil
}

func (d Decision) CompleteCoordination(at time.Time) (Decision, error) {
	if d.Status != StatusPendingCoordination {
		return Decision{}, newInvalidState(OperationCompleteCoordination, d.Status)
	}
	next := d.Clone()
	next.Status = StatusCoordinated
	next.UpdatedAt = at
	return next, nil
}

// CanAttest checks the preconditions of Attest that do not need an external collaborator
func (d Decision) CanAttest(actor Actor) error {
	if d.Status != StatusIssued && d.Status != StatusCoordinated {
		return newInvalidState(OperationAttest, d.Status)
	}
	if actor == d.IssuedBy {
		return ErrSelfAttestation
	}
	if d.ReviewCause == ReviewCauseDeath && !d.IsTerminationShaped() {
		return ErrTerminationShapeRequired
	}
	return nil
}

func (d Decision) Attest(actor Actor, comment string, at time.Time) (Decision, error) {
	if err := d.CanAttest(actor); err != nil {
		return Decision{}, err
	}
	next := d.Clone()
	next.Status = StatusAttested
	next.AttestedBy = actor
	next.AttestedAt = &at
	next.AttestationComment = comment
	next.UpdatedAt = at
	return next, nil
}

func (d Decision) CanActivate() error {
	if d.Status != StatusAttested {
		return newInvalidState(OperationActivate, d.Status)
	}
	return nil
}

func (d Decision) Activate(at time.Time) (Decision, error) {
	if err := d.CanActivate(); err != nil {
		return Decision{}, err
	}
	next := d.Clone()
	next.Status = StatusActive
	next.ActivatedAt = &at
	next.UpdatedAt = at
	return next, nil
}

func (d Decision) CanReject() error {
	switch d.Status {
	case StatusIssued, StatusCoordinated, StatusAttested:
		return nil
	}
	return newInvalidState(OperationReject, d.Status)
}

// Reject returns the decision for rework. Issue and attestation signatures are cleared.
func (d Decision) Reject(reason string, at time.Time) (Decision, error) {
	if err := d.CanReject(); err != nil {
		return Decision{}, err
	}
	next := d.Clone()
	next.Status = StatusRejected
	next.IssuedBy = ""
	next.IssuedAt = nil
	next.AttestedBy = ""
	next.AttestedAt = nil
	next.AttestationComment = ""
	next.RejectionReason = reason
	next.UpdatedAt = at
	return next, nil
}
