// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package decision

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfAttestation is returned when the actor attesting a decision is the one who issued it.
	ErrSelfAttestation = errors.New("decision cannot be attested by the actor who issued it")

	// ErrTerminationShapeRequired is returned when a death-triggered review is attested without a termination payload.
	ErrTerminationShapeRequired = errors.New("death-triggered review requires a termination decision")

	// ErrCaseNotIssuable is returned when the case-processing unit refuses the issue transition.
	ErrCaseNotIssuable = errors.New("case is not in a state where a decision can be issued")

	// ErrCaseNotAttestable is returned when the case-processing unit refuses the attest transition.
	ErrCaseNotAttestable = errors.New("case is not in a state where a decision can be attested")

	// ErrCaseNotRejectable is returned when the case-processing unit refuses the reject transition.
	ErrCaseNotRejectable = errors.New("case is not in a state where a decision can be rejected")

	// ErrActivationRefused is wrapped in a CollaboratorError when case activation reports failure without an error.
	ErrActivationRefused = errors.New("case activation was refused")
)

// InvalidStateError is returned when a transition is attempted from a status that does not satisfy its precondition.
type InvalidStateError struct {
	Operation string
	Status    Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s decision in status %s", e.Operation, e.Status)
}

func newInvalidState(operation string, status Status) error {
	return &InvalidStateError{Operation: operation, Status: status}
}

// CollaboratorError wraps a failure of an external collaborator. The transition in progress is rolled back.
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator %s failed: %s", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// NewCollaboratorError returns nil when err is nil
func NewCollaboratorError(collaborator string, err error) error {
	if err == nil {
		return nil
	}
	return &CollaboratorError{Collaborator: collaborator, Err: err}
}

// ValidationError reports decision content that violates the payload rules of its type.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "invalid decision content: " + e.Msg
}

func newValidationErrorf(format string, a ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, a...)}
}

// IsInvalidState reports whether err carries an InvalidStateError
func IsInvalidState(err error) bool {
	var target *InvalidStateError
	return errors.As(err, &target)
}

// IsCollaboratorFailure reports whether err carries a CollaboratorError
func IsCollaboratorFailure(err error) bool {
	var target *CollaboratorError
	return errors.As(err, &target)
}
