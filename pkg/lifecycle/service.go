// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

// Package lifecycle drives decisions through the state machine against the store and the external collaborators.
//
// Every transition follows the same steps: validate against the state machine, ask and notify the collaborators,
// persist with a status-conditioned write and finally export a lifecycle event. Nothing is persisted unless all
// collaborator calls succeeded, so a failing collaborator leaves the stored decision exactly as it was.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/exporter"
	otelPkg "github.com/pbinitiative/zenvedtak/pkg/otel"
	"github.com/pbinitiative/zenvedtak/pkg/storage"
	"github.com/pbinitiative/zenvedtak/pkg/timeline"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultNotifyTimeout     = 5 * time.Second
	defaultSnapshotCacheSize = 1024
	defaultSnapshotCacheTTL  = time.Minute
)

type Service struct {
	store          storage.Storage
	caseProcessing CaseProcessing
	content        CaseContentSource
	coordination   CoordinationProbe
	letters        LetterService
	exporters      []exporter.EventExporter

	notifyTimeout     time.Duration
	snapshotCacheSize int
	snapshotCacheTTL  time.Duration
	// snapshots holds the decisions of a case for the read-only timeline queries, nil when disabled.
	// A load is only cached when no transition committed while it ran, tracked by generation.
	snapshots  *expirable.LRU[int64, []decision.Decision]
	snapshotMu sync.Mutex
	generation uint64

	clock   func() time.Time
	logger  hclog.Logger
	tracer  trace.Tracer
	metrics *otelPkg.LifecycleMetrics
}

type ServiceOption = func(*Service)

// NewService creates the lifecycle service. Without a CoordinationProbe no decision needs a response from other
// payors, without a LetterService no letters are requested.
func NewService(store storage.Storage, caseProcessing CaseProcessing, content CaseContentSource, options ...ServiceOption) (*Service, error) {
	if store == nil || caseProcessing == nil || content == nil {
		return nil, fmt.Errorf("lifecycle service requires a store, a case-processing and a case-content collaborator")
	}
	s := &Service{
		store:             store,
		caseProcessing:    caseProcessing,
		content:           content,
		exporters:         []exporter.EventExporter{},
		notifyTimeout:     defaultNotifyTimeout,
		snapshotCacheSize: defaultSnapshotCacheSize,
		snapshotCacheTTL:  defaultSnapshotCacheTTL,
		clock:             time.Now,
		logger:            hclog.Default().Named("decision-lifecycle"),
		tracer:            otel.GetTracerProvider().Tracer("zenvedtak/lifecycle"),
	}
	for _, option := range options {
		option(s)
	}
	if s.metrics == nil {
		metrics, err := otelPkg.NewMetrics(otel.GetMeterProvider().Meter("zenvedtak/lifecycle"))
		if err != nil {
			return nil, fmt.Errorf("failed to create lifecycle metrics: %w", err)
		}
		s.metrics = metrics
	}
	if s.snapshotCacheSize > 0 && s.snapshotCacheTTL > 0 {
		s.snapshots = expirable.NewLRU[int64, []decision.Decision](s.snapshotCacheSize, nil, s.snapshotCacheTTL)
	}
	return s, nil
}

func ServiceWithCoordinationProbe(probe CoordinationProbe) ServiceOption {
	return func(s *Service) { s.coordination = probe }
}

func ServiceWithLetterService(letters LetterService) ServiceOption {
	return func(s *Service) { s.letters = letters }
}

func ServiceWithExporter(e exporter.EventExporter) ServiceOption {
	return func(s *Service) { s.exporters = append(s.exporters, e) }
}

func ServiceWithNotifyTimeout(timeout time.Duration) ServiceOption {
	return func(s *Service) { s.notifyTimeout = timeout }
}

// ServiceWithSnapshotCache sizes the per-case snapshot cache, a zero size or ttl disables it
func ServiceWithSnapshotCache(size int, ttl time.Duration) ServiceOption {
	return func(s *Service) {
		s.snapshotCacheSize = size
		s.snapshotCacheTTL = ttl
	}
}

func ServiceWithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) { s.clock = clock }
}

func ServiceWithLogger(logger hclog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

func ServiceWithTracer(tracer trace.Tracer) ServiceOption {
	return func(s *Service) { s.tracer = tracer }
}

func ServiceWithMetrics(metrics *otelPkg.LifecycleMetrics) ServiceOption {
	return func(s *Service) { s.metrics = metrics }
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}

func (s *Service) GetDecision(ctx context.Context, decisionKey int64) (decision.Decision, error) {
	d, err := s.store.FindDecisionByKey(ctx, decisionKey)
	if err != nil {
		return decision.Decision{}, fmt.Errorf("failed to find decision %d: %w", decisionKey, err)
	}
	return d, nil
}

func (s *Service) GetDecisionByCaseProcessingID(ctx context.Context, caseProcessingID string) (decision.Decision, error) {
	d, err := s.store.FindDecisionByCaseProcessingID(ctx, caseProcessingID)
	if err != nil {
		return decision.Decision{}, fmt.Errorf("failed to find decision of case processing %s: %w", caseProcessingID, err)
	}
	return d, nil
}

// TransitionHistory returns the audit trail of a decision, oldest first
func (s *Service) TransitionHistory(ctx context.Context, decisionKey int64) ([]storage.TransitionRecord, error) {
	records, err := s.store.FindTransitionsByDecisionKey(ctx, decisionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load transitions of decision %d: %w", decisionKey, err)
	}
	return records, nil
}

// ReconcileTimeline returns the canonical payment ledger of the case built from decisions attested on or before asOf
func (s *Service) ReconcileTimeline(ctx context.Context, caseID int64, asOf time.Time) ([]timeline.Period, error) {
	decisions, err := s.caseDecisions(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return timeline.Reconcile(decisions, asOf), nil
}

// GrantedIntervals returns the maximal runs of continuous payment of the case
func (s *Service) GrantedIntervals(ctx context.Context, caseID int64, asOf time.Time) ([]timeline.Interval, error) {
	ledger, err := s.ReconcileTimeline(ctx, caseID, asOf)
	if err != nil {
		return nil, err
	}
	return timeline.GrantedIntervals(ledger), nil
}

// IsRunningAsOf reports whether the case has a running payment on date or later, considering only decisions
// attested by now
func (s *Service) IsRunningAsOf(ctx context.Context, caseID int64, date time.Time) (timeline.RunningStatus, error) {
	decisions, err := s.caseDecisions(ctx, caseID)
	if err != nil {
		return timeline.RunningStatus{}, err
	}
	return timeline.RunningOnOrAfter(decisions, date, s.now()), nil
}

// ReconcileIdentityTimeline reconciles the decisions of every case of the identity into one ledger
func (s *Service) ReconcileIdentityTimeline(ctx context.Context, identity string, asOf time.Time) ([]timeline.Period, error) {
	decisions, err := s.store.FindDecisionsByIdentity(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to load decisions of identity: %w", err)
	}
	return timeline.Reconcile(decisions, asOf), nil
}

func (s *Service) IsRunningForIdentity(ctx context.Context, identity string, date time.Time) (timeline.RunningStatus, error) {
	decisions, err := s.store.FindDecisionsByIdentity(ctx, identity)
	if err != nil {
		return timeline.RunningStatus{}, fmt.Errorf("failed to load decisions of identity: %w", err)
	}
	return timeline.RunningOnOrAfter(decisions, date, s.now()), nil
}

// caseDecisions returns the cached snapshot of the case. The slice is shared, callers must not modify it.
func (s *Service) caseDecisions(ctx context.Context, caseID int64) ([]decision.Decision, error) {
	if s.snapshots == nil {
		return s.loadCaseDecisions(ctx, caseID)
	}
	if cached, ok := s.snapshots.Get(caseID); ok {
		return cached, nil
	}
	s.snapshotMu.Lock()
	generation := s.generation
	s.snapshotMu.Unlock()

	decisions, err := s.loadCaseDecisions(ctx, caseID)
	if err != nil {
		return nil, err
	}

	s.snapshotMu.Lock()
	defer s.snapshotMu.Unlock()
	if s.generation == generation {
		s.snapshots.Add(caseID, decisions)
	}
	return decisions, nil
}

func (s *Service) loadCaseDecisions(ctx context.Context, caseID int64) ([]decision.Decision, error) {
	decisions, err := s.store.FindDecisionsByCaseID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load decisions of case %d: %w", caseID, err)
	}
	return decisions, nil
}

// invalidateSnapshot drops the cached case and makes loads that started before the commit skip the cache
func (s *Service) invalidateSnapshot(caseID int64) {
	if s.snapshots == nil {
		return
	}
	s.snapshotMu.Lock()
	defer s.snapshotMu.Unlock()
	s.generation++
	s.snapshots.Remove(caseID)
}

// conflictAsInvalidState maps a lost status-conditioned write to the status the decision has now
func (s *Service) conflictAsInvalidState(ctx context.Context, operation string, decisionKey int64, err error) error {
	if !errors.Is(err, storage.ErrConflict) {
		return err
	}
	current, findErr := s.store.FindDecisionByKey(ctx, decisionKey)
	if findErr != nil {
		return errors.Join(err, findErr)
	}
	return errors.Join(&decision.InvalidStateError{Operation: operation, Status: current.Status}, err)
}
