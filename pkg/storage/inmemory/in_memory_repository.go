// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package inmemory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/storage"
)

// Storage keeps decisions in memory,
// please use NewStorage to create a new object of this type.
type Storage struct {
	mu          sync.RWMutex
	keys        atomic.Int64
	Decisions   map[int64]decision.Decision
	Transitions map[int64]storage.TransitionRecord
}

// GenerateId hands out increasing keys, records saved with equal timestamps keep their save order
func (mem *Storage) GenerateId() int64 {
	return mem.keys.Add(1)
}

func NewStorage() *Storage {
	return &Storage{
		Decisions:   make(map[int64]decision.Decision),
		Transitions: make(map[int64]storage.TransitionRecord),
	}
}

var _ storage.Storage = &Storage{}

func (mem *Storage) NewBatch() storage.Batch {
	return &StorageBatch{
		db:        mem,
		stmtToRun: make([]func() error, 0, 4),
	}
}

var _ storage.DecisionStorageReader = &Storage{}

func (mem *Storage) FindDecisionByKey(ctx context.Context, decisionKey int64) (decision.Decision, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()
	res, ok := mem.Decisions[decisionKey]
	if !ok {
		return decision.Decision{}, storage.ErrNotFound
	}
	return res.Clone(), nil
}

func (mem *Storage) FindDecisionByCaseProcessingID(ctx context.Context, caseProcessingID string) (decision.Decision, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()
	for _, d := range mem.Decisions {
		if d.CaseProcessingID == caseProcessingID {
			return d.Clone(), nil
		}
	}
	return decision.Decision{}, storage.ErrNotFound
}

func (mem *Storage) FindDecisionsByCaseID(ctx context.Context, caseID int64) ([]decision.Decision, error) {
	return mem.findDecisions(func(d decision.Decision) bool { return d.CaseID == caseID }), nil
}

func (mem *Storage) FindDecisionsByIdentity(ctx context.Context, identity string) ([]decision.Decision, error) {
	return mem.findDecisions(func(d decision.Decision) bool { return d.Identity == identity }), nil
}

func (mem *Storage) findDecisions(match func(d decision.Decision) bool) []decision.Decision {
	mem.mu.RLock()
	defer mem.mu.RUnlock()
	res := make([]decision.Decision, 0)
	for _, d := range mem.Decisions {
		if match(d) {
			res = append(res, d.Clone())
		}
	}
	slices.SortFunc(res, func(a, b decision.Decision) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return res
}

var _ storage.DecisionStorageWriter = &Storage{}

func (mem *Storage) CreateDecision(ctx context.Context, d decision.Decision) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	return mem.createDecision(d)
}

func (mem *Storage) createDecision(d decision.Decision) error {
	if _, ok := mem.Decisions[d.Key]; ok {
		return fmt.Errorf("decision %d already exists: %w", d.Key, storage.ErrConflict)
	}
	for _, existing := range mem.Decisions {
		if existing.CaseProcessingID == d.CaseProcessingID {
			return fmt.Errorf("case processing %s already has decision %d: %w", d.CaseProcessingID, existing.Key, storage.ErrConflict)
		}
	}
	d = d.Clone()
	d.Revision = 1
	mem.Decisions[d.Key] = d
	return nil
}

func (mem *Storage) UpdateDecision(ctx context.Context, d decision.Decision, expected decision.Status) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	return mem.updateDecision(d, expected)
}

func (mem *Storage) updateDecision(d decision.Decision, expected decision.Status) error {
	stored, ok := mem.Decisions[d.Key]
	if !ok {
		return storage.ErrNotFound
	}
	if stored.Status != expected || stored.Revision != d.Revision {
		return fmt.Errorf("decision %d is %s at revision %d, expected %s at revision %d: %w",
			d.Key, stored.Status, stored.Revision, expected, d.Revision, storage.ErrConflict)
	}
	d = d.Clone()
	d.Revision = stored.Revision + 1
	mem.Decisions[d.Key] = d
	return nil
}

var _ storage.TransitionStorageReader = &Storage{}

func (mem *Storage) FindTransitionsByDecisionKey(ctx context.Context, decisionKey int64) ([]storage.TransitionRecord, error) {
	mem.mu.RLock()
	defer mem.mu.RUnlock()
	res := make([]storage.TransitionRecord, 0)
	for _, r := range mem.Transitions {
		if r.DecisionKey == decisionKey {
			res = append(res, r)
		}
	}
	slices.SortFunc(res, func(a, b storage.TransitionRecord) int {
		if c := a.At.Compare(b.At); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return res, nil
}

var _ storage.TransitionStorageWriter = &Storage{}

func (mem *Storage) SaveTransition(ctx context.Context, record storage.TransitionRecord) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	mem.Transitions[record.Key] = record
	return nil
}

type StorageBatch struct {
	db        *Storage
	stmtToRun []func() error
}

var _ storage.Batch = &StorageBatch{}

// Flush runs the collected statements under the storage lock.
// When one of them fails the maps are restored, so either all writes are visible or none.
func (b *StorageBatch) Flush(ctx context.Context) error {
	b.db.mu.Lock()
	defer b.db.mu.Unlock()

	decisions := maps.Clone(b.db.Decisions)
	transitions := maps.Clone(b.db.Transitions)
	var joinErr error
	for _, stmt := range b.stmtToRun {
		if err := stmt(); err != nil {
			joinErr = errors.Join(joinErr, err)
		}
	}
	b.stmtToRun = make([]func() error, 0, 4)
	if joinErr != nil {
		b.db.Decisions = decisions
		b.db.Transitions = transitions
		return joinErr
	}
	return nil
}

var _ storage.DecisionStorageWriter = &StorageBatch{}

func (b *StorageBatch) CreateDecision(ctx context.Context, d decision.Decision) error {
	d = d.Clone()
	b.stmtToRun = append(b.stmtToRun, func() error {
		return b.db.createDecision(d)
	})
	return nil
}

func (b *StorageBatch) UpdateDecision(ctx context.Context, d decision.Decision, expected decision.Status) error {
	d = d.Clone()
	b.stmtToRun = append(b.stmtToRun, func() error {
		return b.db.updateDecision(d, expected)
	})
	return nil
}

var _ storage.TransitionStorageWriter = &StorageBatch{}

func (b *StorageBatch) SaveTransition(ctx context.Context, record storage.TransitionRecord) error {
	b.stmtToRun = append(b.stmtToRun, func() error {
		b.db.Transitions[record.Key] = record
		return nil
	})
	return nil
}
