// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package lifecycle

import (
	"context"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
)

// Collaborator names reported in decision.CollaboratorError
const (
	CollaboratorCaseProcessing = "case-processing"
	CollaboratorCaseContent    = "case-content"
	CollaboratorCoordination   = "coordination"
	CollaboratorLetter         = "letter"
)

// CaseProcessing is the system owning the workflow status of a case-processing unit.
// All calls are blocking, the service never retries them.
type CaseProcessing interface {
	IsIssuable(ctx context.Context, caseProcessingID string) (bool, error)
	IsAttestable(ctx context.Context, caseProcessingID string, actor decision.Actor) (bool, error)
	IsRejectable(ctx context.Context, caseProcessingID string) (bool, error)

	// UpdateCaseStatus mirrors the new decision status onto the case-processing unit
	UpdateCaseStatus(ctx context.Context, caseProcessingID string, status decision.Status) error

	// ActivateCase starts payments for the case-processing unit, false means activation was refused
	ActivateCase(ctx context.Context, caseProcessingID string, actor decision.Actor) (bool, error)
}

// CaseContent is everything a draft decision is built from
type CaseContent struct {
	CaseID   int64
	Identity string
	Content  decision.Content
}

// CaseContentSource assembles eligibility, benefit amounts and the effective period of a case-processing unit
type CaseContentSource interface {
	FetchCaseContent(ctx context.Context, caseProcessingID string) (CaseContent, error)
}

// CoordinationProbe decides whether other payors have to respond before a decision can be attested
type CoordinationProbe interface {
	NeedsExternalCoordination(ctx context.Context, d decision.Decision) (bool, error)
}

// LetterService produces the letter informing the claimant about an attested decision
type LetterService interface {
	RequestLetter(ctx context.Context, caseProcessingID string, d decision.Decision) error
}
