// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package decision

import "fmt"

// Status of a Decision as driven by the state machine:
//
//	DRAFT ──issue──> ISSUED ──attest──────────────────────────────> ATTESTED ──activate──> ACTIVE
//	  ^                │                                              ^  │
//	  │                └─sendToCoordination─> PENDING_COORDINATION    │  │
//	  │                │                          │ completeCoordination  │
//	  │                └──(no response needed)──> COORDINATED ─attest─┘  │
//	  │                                                                  │
//	REJECTED <──────reject── ISSUED | COORDINATED | ATTESTED ────────────┘
//
// REJECTED behaves like DRAFT: the content may be refreshed and the decision issued again.
type Status string

const (
	StatusDraft               Status = "DRAFT"
	StatusIssued              Status = "ISSUED"
	StatusPendingCoordination Status = "PENDING_COORDINATION"
	StatusCoordinated         Status = "COORDINATED"
	StatusAttested            Status = "ATTESTED"
	StatusActive              Status = "ACTIVE"
	StatusRejected            Status = "REJECTED"
)

var statusDomainTerms = map[string]Status{
	"OPPRETTET":      StatusDraft,
	"FATTET_VEDTAK":  StatusIssued,
	"TIL_SAMORDNING": StatusPendingCoordination,
	"SAMORDNET":      StatusCoordinated,
	"ATTESTERT":      StatusAttested,
	"IVERKSATT":      StatusActive,
	"RETURNERT":      StatusRejected,
}

// ParseStatus accepts both the status names and the case-processing domain terms (OPPRETTET, FATTET_VEDTAK, ...)
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusDraft, StatusIssued, StatusPendingCoordination, StatusCoordinated, StatusAttested, StatusActive, StatusRejected:
		return st, nil
	}
	if st, ok := statusDomainTerms[s]; ok {
		return st, nil
	}
	return "", fmt.Errorf("unknown decision status %q", s)
}

// IsEditable reports whether content may still be replaced and the decision (re)issued
func (s Status) IsEditable() bool {
	return s == StatusDraft || s == StatusRejected
}

// IsSettled reports whether the decision has been attested and therefore takes part in the payment timeline
func (s Status) IsSettled() bool {
	return s == StatusAttested || s == StatusActive
}

// Type decides the shape of the payload a Decision carries.
type Type string

const (
	TypeGrant          Type = "GRANT"           // INNVILGELSE
	TypeChange         Type = "CHANGE"          // ENDRING
	TypeTermination    Type = "TERMINATION"     // OPPHOER
	TypeRejectedAppeal Type = "REJECTED_APPEAL" // AVVIST_KLAGE
	TypeRepayment      Type = "REPAYMENT"       // TILBAKEKREVING
)

func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeGrant, TypeChange, TypeTermination, TypeRejectedAppeal, TypeRepayment:
		return t, nil
	}
	return "", fmt.Errorf("unknown decision type %q", s)
}

// IsPaymentBearing reports whether decisions of this type carry payment periods
func (t Type) IsPaymentBearing() bool {
	return t == TypeGrant || t == TypeChange || t == TypeTermination
}

// ReviewCause is the reason the case-processing unit behind a decision was opened.
type ReviewCause string

const (
	ReviewCauseApplication ReviewCause = "APPLICATION"
	ReviewCauseDeath       ReviewCause = "DEATH"
	// ReviewCauseRegulation is the routine periodic (index-linked) adjustment of running benefits
	ReviewCauseRegulation ReviewCause = "REGULATION"
	ReviewCauseOther      ReviewCause = "OTHER"
)

// Actor identifies the case worker performing a transition.
type Actor string
