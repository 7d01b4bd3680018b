// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package timeline

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/shopspring/decimal"
)

var propertyTypes = []decision.Type{
	decision.TypeGrant,
	decision.TypeChange,
	decision.TypeTermination,
	decision.TypeRepayment,
	decision.TypeRejectedAppeal,
}

// randomDecisions derives a reproducible decision history from seed. Attestation times may collide on purpose
// so the tie-break rules are exercised as well.
func randomDecisions(seed int64, count int) []decision.Decision {
	r := rand.New(rand.NewSource(seed))
	base := decision.NewMonth(2020, time.January)
	res := make([]decision.Decision, 0, count)
	for i := 0; i < count; i++ {
		typ := propertyTypes[r.Intn(len(propertyTypes))]
		effective := base
		for n := r.Intn(48); n > 0; n-- {
			effective = effective.Next()
		}
		content := decision.Content{Type: typ, EffectiveFrom: effective}
		switch typ {
		case decision.TypeRepayment:
			content.Payload = decision.RepaymentPayload{Terms: decision.RepaymentTerms{Amount: decimal.NewFromInt(100), Installments: 1}}
		case decision.TypeRejectedAppeal:
			content.Payload = decision.AppealDismissalPayload{Reasoning: "late"}
		default:
			content.Payload = decision.PaymentPayload{Periods: randomPeriods(r, effective)}
			if r.Intn(4) == 0 {
				tf := effective
				for n := r.Intn(24); n > 0; n-- {
					tf = tf.Next()
				}
				content.TerminatesFrom = &tf
			}
		}
		d, err := decision.New(int64(i+1), "cp", 1, "01010012345", content, time.Time{})
		if err != nil {
			panic(err)
		}
		attestedAt := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, r.Intn(20))
		issuedAt := attestedAt.Add(-time.Duration(r.Intn(3)) * time.Hour)
		d.Status = decision.StatusActive
		d.IssuedAt = &issuedAt
		d.AttestedAt = &attestedAt
		res = append(res, d)
	}
	return res
}

func randomPeriods(r *rand.Rand, from decision.Month) []decision.PaymentPeriod {
	res := make([]decision.PaymentPeriod, 0)
	start := from
	for n := r.Intn(4); n > 0; n-- {
		for gap := r.Intn(3); gap > 0; gap-- {
			start = start.Next()
		}
		if r.Intn(5) == 0 {
			res = append(res, decision.NewPaymentPeriod(start, nil, decimal.NewFromInt(int64(r.Intn(5000)))))
			return res
		}
		end := start
		for length := r.Intn(12); length > 0; length-- {
			end = end.Next()
		}
		res = append(res, decision.NewPaymentPeriod(start, &end, decimal.NewFromInt(int64(r.Intn(5000)))))
		start = end.Next()
	}
	return res
}

func nonOverlappingAndSorted(ledger []Period) bool {
	for i := 1; i < len(ledger); i++ {
		prev, cur := ledger[i-1], ledger[i]
		if prev.To == nil || !prev.To.Before(cur.From) {
			return false
		}
	}
	for _, p := range ledger {
		if p.To != nil && p.To.Before(p.From) {
			return false
		}
	}
	return true
}

func TestReconcileProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("ledger periods are sorted and never overlap", prop.ForAll(
		func(seed int64, count int) bool {
			return nonOverlappingAndSorted(Reconcile(randomDecisions(seed, count), farFuture))
		},
		gen.Int64(),
		gen.IntRange(0, 12),
	))

	properties.Property("reconciling the same decisions twice is identical", prop.ForAll(
		func(seed int64, count int) bool {
			decisions := randomDecisions(seed, count)
			return reflect.DeepEqual(Reconcile(decisions, farFuture), Reconcile(decisions, farFuture))
		},
		gen.Int64(),
		gen.IntRange(0, 12),
	))

	properties.Property("input order does not change the ledger", prop.ForAll(
		func(seed int64, count int) bool {
			decisions := randomDecisions(seed, count)
			reversed := slices.Clone(decisions)
			slices.Reverse(reversed)
			return reflect.DeepEqual(Reconcile(decisions, farFuture), Reconcile(reversed, farFuture))
		},
		gen.Int64(),
		gen.IntRange(0, 12),
	))

	properties.Property("granted intervals never contain termination months", prop.ForAll(
		func(seed int64, count int) bool {
			ledger := Reconcile(randomDecisions(seed, count), farFuture)
			intervals := GrantedIntervals(ledger)
			for _, p := range ledger {
				if !p.IsTermination() {
					continue
				}
				for _, in := range intervals {
					if (Interval{From: p.From, To: p.To}).overlaps(in) {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(0, 12),
	))

	properties.TestingRun(t)
}

func (i Interval) overlaps(o Interval) bool {
	startsBeforeOtherEnds := o.To == nil || !i.From.After(*o.To)
	otherStartsBeforeEnd := i.To == nil || !o.From.After(*i.To)
	return startsBeforeOtherEnds && otherStartsBeforeEnd
}
