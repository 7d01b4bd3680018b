// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package apierror

import (
	"errors"
	"net/http"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/storage"
)

type ApiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	// Status is set for INVALID_STATE errors, the status the decision currently has
	Status decision.Status `json:"status,omitempty"`
	// Collaborator is set for COLLABORATOR_FAILURE errors
	Collaborator string `json:"collaborator,omitempty"`
}

func BadRequest(msg string) (int, ApiError) {
	return http.StatusBadRequest, ApiError{Message: msg, Type: "BAD_REQUEST"}
}

// FromServiceError maps lifecycle errors onto status codes, unknown errors are 500
func FromServiceError(err error) (int, ApiError) {
	var invalidState *decision.InvalidStateError
	var collaboratorErr *decision.CollaboratorError
	var validationErr *decision.ValidationError
	switch {
	case errors.As(err, &invalidState):
		return http.StatusConflict, ApiError{Message: err.Error(), Type: "INVALID_STATE", Status: invalidState.Status}
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, ApiError{Message: err.Error(), Type: "NOT_FOUND"}
	case errors.Is(err, decision.ErrSelfAttestation):
		return http.StatusForbidden, ApiError{Message: err.Error(), Type: "SELF_ATTESTATION"}
	case errors.Is(err, decision.ErrCaseNotIssuable),
		errors.Is(err, decision.ErrCaseNotAttestable),
		errors.Is(err, decision.ErrCaseNotRejectable):
		return http.StatusConflict, ApiError{Message: err.Error(), Type: "CASE_NOT_READY"}
	case errors.As(err, &collaboratorErr):
		return http.StatusBadGateway, ApiError{Message: err.Error(), Type: "COLLABORATOR_FAILURE", Collaborator: collaboratorErr.Collaborator}
	case errors.Is(err, decision.ErrTerminationShapeRequired), errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, ApiError{Message: err.Error(), Type: "INVALID_CONTENT"}
	default:
		return http.StatusInternalServerError, ApiError{Message: err.Error(), Type: "ERROR"}
	}
}
