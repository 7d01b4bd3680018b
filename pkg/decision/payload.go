// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package decision

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PeriodKind string

const (
	PeriodKindPayment     PeriodKind = "PAYMENT"
	PeriodKindTermination PeriodKind = "TERMINATION"
)

// PaymentPeriod is a contiguous span of months with a fixed payable amount, or a termination marker.
// To == nil means the period is open-ended.
type PaymentPeriod struct {
	From   Month               `json:"from"`
	To     *Month              `json:"to,omitempty"`
	Amount decimal.NullDecimal `json:"amount"`
	Kind   PeriodKind          `json:"kind"`
}

func NewPaymentPeriod(from Month, to *Month, amount decimal.Decimal) PaymentPeriod {
	return PaymentPeriod{
		From:   from,
		To:     cloneMonth(to),
		Amount: decimal.NewNullDecimal(amount),
		Kind:   PeriodKindPayment,
	}
}

func NewTerminationPeriod(from Month) PaymentPeriod {
	return PaymentPeriod{From: from, Kind: PeriodKindTermination}
}

func (p PaymentPeriod) IsTermination() bool {
	return p.Kind == PeriodKindTermination
}

func (p PaymentPeriod) IsOpenEnded() bool {
	return p.To == nil
}

// Covers reports whether m lies within [From, To]
func (p PaymentPeriod) Covers(m Month) bool {
	if m.Before(p.From) {
		return false
	}
	return p.To == nil || !m.After(*p.To)
}

// Clone returns a copy that shares no memory with p
func (p PaymentPeriod) Clone() PaymentPeriod {
	p.To = cloneMonth(p.To)
	return p
}

// WithTo returns a copy of p ending at the given month
func (p PaymentPeriod) WithTo(to Month) PaymentPeriod {
	p.To = &to
	return p
}

func (p PaymentPeriod) String() string {
	to := "open"
	if p.To != nil {
		to = p.To.String()
	}
	if p.IsTermination() {
		return fmt.Sprintf("[%s..%s TERMINATION]", p.From, to)
	}
	return fmt.Sprintf("[%s..%s %s]", p.From, to, p.Amount.Decimal.String())
}

func cloneMonth(m *Month) *Month {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func clonePeriods(periods []PaymentPeriod) []PaymentPeriod {
	if periods == nil {
		return nil
	}
	res := make([]PaymentPeriod, len(periods))
	for i, p := range periods {
		res[i] = p.Clone()
	}
	return res
}

// Payload is the type specific content of a Decision. The concrete type is fixed by the decision Type:
//   - GRANT, CHANGE, TERMINATION carry a PaymentPayload
//   - REPAYMENT carries a RepaymentPayload
//   - REJECTED_APPEAL carries an AppealDismissalPayload
type Payload interface {
	accepts(t Type) bool
	clone() Payload
}

type PaymentPayload struct {
	Periods []PaymentPeriod `json:"periods"`
}

func (p PaymentPayload) accepts(t Type) bool { return t.IsPaymentBearing() }

func (p PaymentPayload) clone() Payload { return PaymentPayload{Periods: clonePeriods(p.Periods)} }

// RepaymentTerms describe how an overpaid amount is claimed back.
type RepaymentTerms struct {
	Amount       decimal.Decimal `json:"amount"`
	Installments int             `json:"installments"`
	FirstDue     Month           `json:"firstDue"`
	Reason       string          `json:"reason"`
}

type RepaymentPayload struct {
	Terms RepaymentTerms `json:"terms"`
}

func (p RepaymentPayload) accepts(t Type) bool { return t == TypeRepayment }

func (p RepaymentPayload) clone() Payload { return p }

type AppealDismissalPayload struct {
	Reasoning  string    `json:"reasoning"`
	ReceivedAt time.Time `json:"receivedAt"`
}

func (p AppealDismissalPayload) accepts(t Type) bool { return t == TypeRejectedAppeal }

func (p AppealDismissalPayload) clone() Payload { return p }

// EncodePayload serializes the payload, the decision type acts as the discriminator when decoding
func EncodePayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("cannot encode nil payload")
	}
	return json.Marshal(p)
}

// DecodePayload is the counterpart of EncodePayload
func DecodePayload(t Type, data []byte) (Payload, error) {
	switch {
	case t.IsPaymentBearing():
		var p PaymentPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to decode payment payload: %w", err)
		}
		return p, nil
	case t == TypeRepayment:
		var p RepaymentPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to decode repayment payload: %w", err)
		}
		return p, nil
	case t == TypeRejectedAppeal:
		var p AppealDismissalPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to decode appeal dismissal payload: %w", err)
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown decision type %q", t)
}
