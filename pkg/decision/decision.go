// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package decision

import (
	"time"
)

// Content is the case specific part of a Decision, assembled from collaborators while the decision is editable.
type Content struct {
	Type          Type
	ReviewCause   ReviewCause
	Payload       Payload
	EffectiveFrom Month
	// TerminatesFrom marks the month from which payment stops, independent of EffectiveFrom.
	// TERMINATION decisions default it to EffectiveFrom.
	TerminatesFrom *Month
}

// Decision is one immutable version of the adjudication of a case-processing unit.
type Decision struct {
	Key              int64
	CaseProcessingID string
	CaseID           int64
	Identity         string

	Status Status
	Content

	IssuedBy           Actor
	IssuedAt           *time.Time
	AttestedBy         Actor
	AttestedAt         *time.Time
	AttestationComment string
	ActivatedAt        *time.Time
	RejectionReason    string

	CreatedAt time.Time
	UpdatedAt time.Time
	// Revision is incremented by the store on every successful write
	Revision int64
}

// New creates a DRAFT decision after validating the content against the rules of its type
func New(key int64, caseProcessingID string, caseID int64, identity string, content Content, now time.Time) (Decision, error) {
	normalized, err := normalizeContent(content)
	if err != nil {
		return Decision{}, err
	}
	return Decision{
		Key:              key,
		CaseProcessingID: caseProcessingID,
		CaseID:           caseID,
		Identity:         identity,
		Status:           StatusDraft,
		Content:          normalized,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Periods returns a copy of the payment periods, or nil when the payload is not payment-bearing
func (d Decision) Periods() []PaymentPeriod {
	p, ok := d.Payload.(PaymentPayload)
	if !ok {
		return nil
	}
	return clonePeriods(p.Periods)
}

// IsTerminationShaped reports whether the decision stops payments, as opposed to a plain change
func (d Decision) IsTerminationShaped() bool {
	if d.Type != TypeTermination {
		return false
	}
	if d.TerminatesFrom != nil {
		return true
	}
	for _, p := range d.Periods() {
		if p.IsTermination() {
			return true
		}
	}
	return false
}

// SuppressesLetter reports whether the decision is a routine periodic adjustment that must not produce a letter
func (d Decision) SuppressesLetter() bool {
	return d.ReviewCause == ReviewCauseRegulation && (d.Type == TypeGrant || d.Type == TypeChange)
}

// Clone returns a deep copy, so transitions never share period memory with their input
func (d Decision) Clone() Decision {
	c := d
	if d.Payload != nil {
		c.Payload = d.Payload.clone()
	}
	c.TerminatesFrom = cloneMonth(d.TerminatesFrom)
	c.IssuedAt = cloneTime(d.IssuedAt)
	c.AttestedAt = cloneTime(d.AttestedAt)
	c.ActivatedAt = cloneTime(d.ActivatedAt)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func normalizeContent(c Content) (Content, error) {
	if _, err := ParseType(string(c.Type)); err != nil {
		return Content{}, newValidationErrorf("%s", err)
	}
	if c.Payload == nil {
		return Content{}, newValidationErrorf("decision of type %s has no payload", c.Type)
	}
	if !c.Payload.accepts(c.Type) {
		return Content{}, newValidationErrorf("payload %T does not match decision type %s", c.Payload, c.Type)
	}
	if c.ReviewCause == "" {
		c.ReviewCause = ReviewCauseOther
	}
	c.Payload = c.Payload.clone()
	c.TerminatesFrom = cloneMonth(c.TerminatesFrom)
	if !c.Type.IsPaymentBearing() {
		return c, nil
	}

	if c.EffectiveFrom.IsZero() {
		return Content{}, newValidationErrorf("payment-bearing decision requires an effective month")
	}
	if c.TerminatesFrom != nil && c.TerminatesFrom.Before(c.EffectiveFrom) {
		return Content{}, newValidationErrorf("termination month %s precedes effective month %s", c.TerminatesFrom, c.EffectiveFrom)
	}
	if c.Type == TypeTermination && c.TerminatesFrom == nil {
		from := c.EffectiveFrom
		c.TerminatesFrom = &from
	}
	if err := validatePeriods(c.Payload.(PaymentPayload).Periods, c.EffectiveFrom); err != nil {
		return Content{}, err
	}
	return c, nil
}

func validatePeriods(periods []PaymentPeriod, effectiveFrom Month) error {
	for i, p := range periods {
		if p.From.IsZero() {
			return newValidationErrorf("period %d has no start month", i)
		}
		if p.From.Before(effectiveFrom) {
			return newValidationErrorf("period %s starts before effective month %s", p, effectiveFrom)
		}
		if p.To != nil && p.To.Before(p.From) {
			return newValidationErrorf("period %s ends before it starts", p)
		}
		switch p.Kind {
		case PeriodKindPayment:
			if !p.Amount.Valid {
				return newValidationErrorf("payment period %s has no amount", p)
			}
		case PeriodKindTermination:
			if p.Amount.Valid {
				return newValidationErrorf("termination period %s carries an amount", p)
			}
		default:
			return newValidationErrorf("period %d has unknown kind %q", i, p.Kind)
		}
		if i == 0 {
			continue
		}
		prev := periods[i-1]
		if prev.To == nil || !prev.To.Before(p.From) {
			return newValidationErrorf("periods %s and %s overlap or are out of order", prev, p)
		}
	}
	return nil
}
