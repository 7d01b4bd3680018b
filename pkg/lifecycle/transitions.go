// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/exporter"
	otelPkg "github.com/pbinitiative/zenvedtak/pkg/otel"
	"github.com/pbinitiative/zenvedtak/pkg/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// transition describes one step of the state machine as seen by the service
type transition struct {
	operation string
	// guard runs the state machine preconditions and the delegated checks, nothing has happened yet when it fails
	guard func(ctx context.Context, d decision.Decision) error
	// next computes the new version of the decision
	next func(ctx context.Context, d decision.Decision, at time.Time) (decision.Decision, error)
	// effects notifies the collaborators, a failure rolls the transition back
	effects func(ctx context.Context, before decision.Decision, after decision.Decision) error
	intent  func(after decision.Decision) exporter.Intent
	counter metric.Int64Counter
}

// CreateOrUpdate builds the DRAFT decision of the case-processing unit from its current case content, or refreshes
// the content of the existing editable decision. Calling it repeatedly before issuance keeps a single decision.
func (s *Service) CreateOrUpdate(ctx context.Context, caseProcessingID string, actor decision.Actor) (res decision.Decision, retErr error) {
	ctx, span := s.tracer.Start(ctx, "decision:create-or-update", trace.WithAttributes(
		attribute.String(otelPkg.AttributeCaseProcessingID, caseProcessingID),
	))
	defer func() {
		if retErr != nil {
			span.RecordError(retErr)
			span.SetStatus(codes.Error, retErr.Error())
		}
		span.End()
	}()

	caseContent, err := s.content.FetchCaseContent(ctx, caseProcessingID)
	if err != nil {
		return decision.Decision{}, decision.NewCollaboratorError(CollaboratorCaseContent, err)
	}
	now := s.now()

	existing, err := s.store.FindDecisionByCaseProcessingID(ctx, caseProcessingID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return s.create(ctx, caseProcessingID, caseContent, actor, now)
	case err != nil:
		return decision.Decision{}, fmt.Errorf("failed to find decision of case processing %s: %w", caseProcessingID, err)
	}

	return s.run(ctx, existing, actor, transition{
		operation: decision.OperationUpdate,
		next: func(ctx context.Context, d decision.Decision, at time.Time) (decision.Decision, error) {
			return d.Refresh(caseContent.Content, at)
		},
		intent: func(decision.Decision) exporter.Intent { return exporter.DecisionUpdated },
	})
}

func (s *Service) create(ctx context.Context, caseProcessingID string, caseContent CaseContent, actor decision.Actor, now time.Time) (decision.Decision, error) {
	d, err := decision.New(s.store.GenerateId(), caseProcessingID, caseContent.CaseID, caseContent.Identity, caseContent.Content, now)
	if err != nil {
		return decision.Decision{}, err
	}

	batch := s.store.NewBatch()
	if err := batch.CreateDecision(ctx, d); err != nil {
		return decision.Decision{}, fmt.Errorf("failed to create decision: %w", err)
	}
	if err := batch.SaveTransition(ctx, s.transitionRecord(d, "create", "", actor, now)); err != nil {
		return decision.Decision{}, fmt.Errorf("failed to record creation of decision %d: %w", d.Key, err)
	}
	if err := batch.Flush(ctx); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			// another request created the decision of this case-processing unit first
			return decision.Decision{}, errors.Join(&decision.InvalidStateError{Operation: "create", Status: decision.StatusDraft}, err)
		}
		return decision.Decision{}, fmt.Errorf("failed to create decision of case processing %s: %w", caseProcessingID, err)
	}
	d.Revision = 1
	s.invalidateSnapshot(d.CaseID)
	s.metrics.DecisionsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("type", string(d.Type))))
	s.logger.Debug("decision created", "key", d.Key, "case-processing", caseProcessingID, "type", d.Type)
	s.export(ctx, exporter.NewDecisionEvent(exporter.DecisionCreated, d, actor, now))
	return d, nil
}

// Issue signs the decision on behalf of the case worker
func (s *Service) Issue(ctx context.Context, decisionKey int64, actor decision.Actor) (decision.Decision, error) {
	return s.transition(ctx, decisionKey, actor, transition{
		operation: decision.OperationIssue,
		guard: func(ctx context.Context, d decision.Decision) error {
			if err := d.CanIssue(); err != nil {
				return err
			}
			ok, err := s.caseProcessing.IsIssuable(ctx, d.CaseProcessingID)
			if err != nil {
				return decision.NewCollaboratorError(CollaboratorCaseProcessing, err)
			}
			if !ok {
				return decision.ErrCaseNotIssuable
			}
			return nil
		},
		next: func(ctx context.Context, d decision.Decision, at time.Time) (decision.Decision, error) {
			return d.Issue(actor, at)
		},
		effects: s.updateCaseStatus,
		intent:  func(decision.Decision) exporter.Intent { return exporter.DecisionIssued },
		counter: s.metrics.DecisionsIssued,
	})
}

// SendToCoordination routes an issued decision to the other payors. When the probe says no response is needed
// the decision is COORDINATED right away.
func (s *Service) SendToCoordination(ctx context.Context, decisionKey int64, actor decision.Actor) (decision.Decision, error) {
	responseRequired := false
	return s.transition(ctx, decisionKey, actor, transition{
		operation: decision.OperationSendToCoordination,
		guard: func(ctx context.Context, d decision.Decision) error {
			if err := d.CanRouteToCoordination(); err != nil {
				return err
			}
			if s.coordination == nil {
				return nil
			}
			needed, err := s.coordination.NeedsExternalCoordination(ctx, d)
			if err != nil {
				return decision.NewCollaboratorError(CollaboratorCoordination, err)
			}
			responseRequired = needed
			return nil
		},
		next: func(ctx context.Context, d decision.Decision, at time.Time) (decision.Decision, error) {
			return d.RouteToCoordination(responseRequired, at)
		},
		intent: func(after decision.Decision) exporter.Intent {
			if after.Status == decision.StatusCoordinated {
				return exporter.DecisionCoordinated
			}
			return exporter.DecisionSentToCoordination
		},
	})
}

// CompleteCoordination records that the other payors responded
func (s *Service) CompleteCoordination(ctx context.Context, decisionKey int64, actor decision.Actor) (decision.Decision, error) {
	return s.transition(ctx, decisionKey, actor, transition{
		operation: decision.OperationCompleteCoordination,
		next: func(ctx context.Context, d decision.Decision, at time.Time) (decision.Decision, error) {
			return d.CompleteCoordination(at)
		},
		intent: func(decision.Decision) exporter.Intent { return exporter.DecisionCoordinated },
	})
}

// Attest countersigns the decision. The attesting actor must differ from the one who issued it.
// A letter is requested unless the decision is a routine regulation of an ongoing benefit.
func (s *Service) Attest(ctx context.Context, decisionKey int64, actor decision.Actor, comment string) (decision.Decision, error) {
	return s.transition(ctx, decisionKey, actor, transition{
		operation: decision.OperationAttest,
		guard: func(ctx context.Context, d decision.Decision) error {
			if err := d.CanAttest(actor); err != nil {
				return err
			}
			ok, err := s.caseProcessing.IsAttestable(ctx, d.CaseProcessingID, actor)
			if err != nil {
				return decision.NewCollaboratorError(CollaboratorCaseProcessing, err)
			}
			if !ok {
				return decision.ErrCaseNotAttestable
			}
			return nil
		},
		next: func(ctx context.Context, d decision.Decision, at time.Time) (decision.Decision, error) {
			return d.Attest(actor, comment, at)
		},
		effects: func(ctx context.Context, before decision.Decision, after decision.Decision) error {
			if err := s.updateCaseStatus(ctx, before, after); err != nil {
				return err
			}
			if s.letters == nil {
				return nil
			}
			if after.SuppressesLetter() {
				s.logger.Debug("letter suppressed for routine regulation", "key", after.Key, "type", after.Type)
				return nil
			}
			if err := s.letters.RequestLetter(ctx, after.CaseProcessingID, after); err != nil {
				s.revertCaseStatus(ctx, before)
				return decision.NewCollaboratorError(CollaboratorLetter, err)
			}
			return nil
		},
		intent:  func(decision.Decision) exporter.Intent { return exporter.DecisionAttested },
		counter: s.metrics.DecisionsAttested,
	})
}

// Activate starts payment of an attested decision
func (s *Service) Activate(ctx context.Context, decisionKey int64, actor decision.Actor) (decision.Decision, error) {
	return s.transition(ctx, decisionKey, actor, transition{
		operation: decision.OperationActivate,
		guard: func(ctx context.Context, d decision.Decision) error {
			return d.CanActivate()
		},
		next: func(ctx context.Context, d decision.Decision, at time.Time) (decision.Decision, error) {
			return d.Activate(at)
		},
		effects: func(ctx context.Context, before decision.Decision, after decision.Decision) error {
			ok, err := s.caseProcessing.ActivateCase(ctx, after.CaseProcessingID, actor)
			if err != nil {
				return decision.NewCollaboratorError(CollaboratorCaseProcessing, err)
			}
			if !ok {
				return decision.NewCollaboratorError(CollaboratorCaseProcessing, decision.ErrActivationRefused)
			}
			return nil
		},
		intent:  func(decision.Decision) exporter.Intent { return exporter.DecisionActivated },
		counter: s.metrics.DecisionsActivated,
	})
}

// Reject returns the decision to the case worker for rework
func (s *Service) Reject(ctx context.Context, decisionKey int64, actor decision.Actor, reason string) (decision.Decision, error) {
	return s.transition(ctx, decisionKey, actor, transition{
		operation: decision.OperationReject,
		guard: func(ctx context.Context, d decision.Decision) error {
			if err := d.CanReject(); err != nil {
				return err
			}
			ok, err := s.caseProcessing.IsRejectable(ctx, d.CaseProcessingID)
			if err != nil {
				return decision.NewCollaboratorError(CollaboratorCaseProcessing, err)
			}
			if !ok {
				return decision.ErrCaseNotRejectable
			}
			return nil
		},
		next: func(ctx context.Context, d decision.Decision, at time.Time) (decision.Decision, error) {
			return d.Reject(reason, at)
		},
		effects: s.updateCaseStatus,
		intent:  func(decision.Decision) exporter.Intent { return exporter.DecisionRejected },
		counter: s.metrics.DecisionsRejected,
	})
}

func (s *Service) updateCaseStatus(ctx context.Context, before decision.Decision, after decision.Decision) error {
	return decision.NewCollaboratorError(CollaboratorCaseProcessing, s.caseProcessing.UpdateCaseStatus(ctx, after.CaseProcessingID, after.Status))
}

// revertCaseStatus puts the case-processing unit back to the status of the decision that stays stored.
// A failing revert is logged, the caller already returns the original failure.
func (s *Service) revertCaseStatus(ctx context.Context, before decision.Decision) {
	if err := s.caseProcessing.UpdateCaseStatus(ctx, before.CaseProcessingID, before.Status); err != nil {
		s.logger.Error("failed to revert case status", "key", before.Key, "case-processing", before.CaseProcessingID, "status", before.Status, "error", err)
	}
}

func (s *Service) transition(ctx context.Context, decisionKey int64, actor decision.Actor, t transition) (decision.Decision, error) {
	before, err := s.store.FindDecisionByKey(ctx, decisionKey)
	if err != nil {
		return decision.Decision{}, fmt.Errorf("failed to find decision %d: %w", decisionKey, err)
	}
	return s.run(ctx, before, actor, t)
}

// run executes the transition on a decision read from the store
func (s *Service) run(ctx context.Context, before decision.Decision, actor decision.Actor, t transition) (res decision.Decision, retErr error) {
	ctx, span := s.tracer.Start(ctx, fmt.Sprintf("decision:%s", t.operation), trace.WithAttributes(
		attribute.Int64(otelPkg.AttributeDecisionKey, before.Key),
		attribute.String(otelPkg.AttributeCaseProcessingID, before.CaseProcessingID),
		attribute.String(otelPkg.AttributeStatusFrom, string(before.Status)),
	))
	defer func() {
		if retErr != nil {
			span.RecordError(retErr)
			span.SetStatus(codes.Error, retErr.Error())
		}
		span.End()
	}()

	if t.guard != nil {
		if err := t.guard(ctx, before); err != nil {
			return decision.Decision{}, err
		}
	}
	now := s.now()
	after, err := t.next(ctx, before, now)
	if err != nil {
		return decision.Decision{}, err
	}
	span.SetAttributes(attribute.String(otelPkg.AttributeStatusTo, string(after.Status)))

	if t.effects != nil {
		if err := t.effects(ctx, before, after); err != nil {
			s.metrics.Rollbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", t.operation)))
			s.logger.Warn("transition rolled back", "operation", t.operation, "key", before.Key, "status", before.Status, "error", err)
			return decision.Decision{}, err
		}
	}

	batch := s.store.NewBatch()
	if err := batch.UpdateDecision(ctx, after, before.Status); err != nil {
		return decision.Decision{}, fmt.Errorf("failed to update decision %d: %w", before.Key, err)
	}
	if err := batch.SaveTransition(ctx, s.transitionRecord(after, t.operation, before.Status, actor, now)); err != nil {
		return decision.Decision{}, fmt.Errorf("failed to record %s of decision %d: %w", t.operation, before.Key, err)
	}
	if err := batch.Flush(ctx); err != nil {
		return decision.Decision{}, s.conflictAsInvalidState(ctx, t.operation, before.Key, err)
	}
	after.Revision = before.Revision + 1
	s.invalidateSnapshot(after.CaseID)

	if t.counter != nil {
		t.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("type", string(after.Type))))
	}
	s.logger.Debug("decision transition", "operation", t.operation, "key", after.Key, "from", before.Status, "to", after.Status)
	s.export(ctx, exporter.NewDecisionEvent(t.intent(after), after, actor, now))
	return after, nil
}

func (s *Service) transitionRecord(d decision.Decision, operation string, from decision.Status, actor decision.Actor, at time.Time) storage.TransitionRecord {
	return storage.TransitionRecord{
		Key:         s.store.GenerateId(),
		DecisionKey: d.Key,
		Operation:   operation,
		From:        from,
		To:          d.Status,
		Actor:       actor,
		At:          at,
	}
}

// export hands the event to every exporter. The transition is already committed, failures are only logged.
func (s *Service) export(ctx context.Context, event *exporter.DecisionEvent) {
	if len(s.exporters) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()
	for _, e := range s.exporters {
		if err := e.ExportDecisionEvent(ctx, event); err != nil {
			s.metrics.ExportFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("intent", string(event.Intent))))
			s.logger.Error("failed to export decision event", "event", event.ID, "intent", event.Intent, "key", event.DecisionKey, "error", err)
		}
	}
}
