// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/lib/pq"
	"github.com/pbinitiative/zenvedtak/internal/config"
	otelPkg "github.com/pbinitiative/zenvedtak/internal/otel"
	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/storage"
	"github.com/pbinitiative/zenvedtak/pkg/zenflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Store persists decisions in Postgres or SQLite. Both backends share the same schema and queries.
type Store struct {
	db      *sql.DB
	driver  string
	queries *Queries
	keys    *zenflake.Generator
	logger  hclog.Logger
	tracer  trace.Tracer
}

var _ storage.Storage = &Store{}

// Open connects to the configured database, the driver must be registered by the caller
func Open(ctx context.Context, conf config.Database, keys *zenflake.Generator) (*Store, error) {
	db, err := sql.Open(conf.Driver, conf.Dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", conf.Driver, err)
	}
	if conf.Driver == config.DriverSqlite {
		// sqlite serializes writers, a single connection keeps in-memory databases shared
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach %s database: %w", conf.Driver, err)
	}
	return NewStore(db, conf.Driver, keys), nil
}

func NewStore(db *sql.DB, driver string, keys *zenflake.Generator) *Store {
	return &Store{
		db:      db,
		driver:  driver,
		queries: New(db),
		keys:    keys,
		logger:  hclog.Default().Named("sql-store"),
		tracer:  otel.GetTracerProvider().Tracer("sql-store"),
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) GenerateId() int64 {
	return s.keys.Generate()
}

func (s *Store) NewBatch() storage.Batch {
	return &Batch{
		store: s,
		stmts: make([]func(ctx context.Context, q *Queries) error, 0, 4),
	}
}

var _ storage.DecisionStorageReader = &Store{}

func (s *Store) FindDecisionByKey(ctx context.Context, decisionKey int64) (decision.Decision, error) {
	row, err := s.queries.FindDecisionByKey(ctx, decisionKey)
	if err != nil {
		return decision.Decision{}, notFound(err)
	}
	return toDecision(row)
}

func (s *Store) FindDecisionByCaseProcessingID(ctx context.Context, caseProcessingID string) (decision.Decision, error) {
	row, err := s.queries.FindDecisionByCaseProcessingID(ctx, caseProcessingID)
	if err != nil {
		return decision.Decision{}, notFound(err)
	}
	return toDecision(row)
}

func (s *Store) FindDecisionsByCaseID(ctx context.Context, caseID int64) ([]decision.Decision, error) {
	rows, err := s.queries.FindDecisionsByCaseID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find decisions of case %d: %w", caseID, err)
	}
	return toDecisions(rows)
}

func (s *Store) FindDecisionsByIdentity(ctx context.Context, identity string) ([]decision.Decision, error) {
	rows, err := s.queries.FindDecisionsByIdentity(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to find decisions of identity: %w", err)
	}
	return toDecisions(rows)
}

var _ storage.DecisionStorageWriter = &Store{}

func (s *Store) CreateDecision(ctx context.Context, d decision.Decision) error {
	return createDecisionRow(ctx, s.queries, s.driver, d)
}

func (s *Store) UpdateDecision(ctx context.Context, d decision.Decision, expected decision.Status) error {
	return updateDecisionRow(ctx, s.queries, d, expected)
}

var _ storage.TransitionStorageReader = &Store{}

func (s *Store) FindTransitionsByDecisionKey(ctx context.Context, decisionKey int64) ([]storage.TransitionRecord, error) {
	rows, err := s.queries.FindDecisionTransitions(ctx, decisionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to find transitions of decision %d: %w", decisionKey, err)
	}
	res := make([]storage.TransitionRecord, 0, len(rows))
	for _, r := range rows {
		res = append(res, storage.TransitionRecord{
			Key:         r.Key,
			DecisionKey: r.DecisionKey,
			Operation:   r.Operation,
			From:        decision.Status(r.FromStatus),
			To:          decision.Status(r.ToStatus),
			Actor:       decision.Actor(r.Actor),
			At:          fromMillis(r.At),
		})
	}
	return res, nil
}

var _ storage.TransitionStorageWriter = &Store{}

func (s *Store) SaveTransition(ctx context.Context, record storage.TransitionRecord) error {
	return saveTransitionRow(ctx, s.queries, s.driver, record)
}

func createDecisionRow(ctx context.Context, q *Queries, driver string, d decision.Decision) error {
	row, err := fromDecision(d)
	if err != nil {
		return err
	}
	row.Revision = 1
	if err := q.InsertDecision(ctx, row); err != nil {
		if isUniqueViolation(driver, err) {
			return errors.Join(storage.ErrConflict, err)
		}
		return fmt.Errorf("failed to insert decision %d: %w", d.Key, err)
	}
	return nil
}

func updateDecisionRow(ctx context.Context, q *Queries, d decision.Decision, expected decision.Status) error {
	row, err := fromDecision(d)
	if err != nil {
		return err
	}
	affected, err := q.UpdateDecision(ctx, UpdateDecisionParams{Decision: row, ExpectedStatus: string(expected)})
	if err != nil {
		return fmt.Errorf("failed to update decision %d: %w", d.Key, err)
	}
	if affected == 1 {
		return nil
	}
	if _, err := q.FindDecisionByKey(ctx, d.Key); err != nil {
		return notFound(err)
	}
	return fmt.Errorf("decision %d is no longer %s at revision %d: %w", d.Key, expected, d.Revision, storage.ErrConflict)
}

func saveTransitionRow(ctx context.Context, q *Queries, driver string, r storage.TransitionRecord) error {
	err := q.InsertDecisionTransition(ctx, DecisionTransition{
		Key:         r.Key,
		DecisionKey: r.DecisionKey,
		Operation:   r.Operation,
		FromStatus:  string(r.From),
		ToStatus:    string(r.To),
		Actor:       string(r.Actor),
		At:          r.At.UnixMilli(),
	})
	if err != nil {
		if isUniqueViolation(driver, err) {
			return errors.Join(storage.ErrConflict, err)
		}
		return fmt.Errorf("failed to save transition of decision %d: %w", r.DecisionKey, err)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}

// isUniqueViolation recognizes duplicate keys in both supported drivers
func isUniqueViolation(driver string, err error) bool {
	switch driver {
	case config.DriverPostgres:
		var pqErr *pq.Error
		return errors.As(err, &pqErr) && pqErr.Code == "23505"
	case config.DriverSqlite:
		var sqliteErr *sqlite.Error
		if !errors.As(err, &sqliteErr) {
			return false
		}
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

// Batch runs the collected statements in one database transaction
type Batch struct {
	store *Store
	stmts []func(ctx context.Context, q *Queries) error
}

var _ storage.Batch = &Batch{}

func (b *Batch) CreateDecision(ctx context.Context, d decision.Decision) error {
	b.stmts = append(b.stmts, func(ctx context.Context, q *Queries) error {
		return createDecisionRow(ctx, q, b.store.driver, d.Clone())
	})
	return nil
}

func (b *Batch) UpdateDecision(ctx context.Context, d decision.Decision, expected decision.Status) error {
	d = d.Clone()
	b.stmts = append(b.stmts, func(ctx context.Context, q *Queries) error {
		return updateDecisionRow(ctx, q, d, expected)
	})
	return nil
}

func (b *Batch) SaveTransition(ctx context.Context, record storage.TransitionRecord) error {
	b.stmts = append(b.stmts, func(ctx context.Context, q *Queries) error {
		return saveTransitionRow(ctx, q, b.store.driver, record)
	})
	return nil
}

func (b *Batch) Flush(ctx context.Context) (retErr error) {
	ctx, span := b.store.tracer.Start(ctx, "sql-batch-flush", trace.WithAttributes(
		attribute.String(otelPkg.AttributeDriver, b.store.driver),
		attribute.Int("statements", len(b.stmts)),
	))
	defer func() {
		if retErr != nil {
			span.RecordError(retErr)
			span.SetStatus(codes.Error, retErr.Error())
		}
		span.End()
	}()

	stmts := b.stmts
	b.stmts = make([]func(ctx context.Context, q *Queries) error, 0, 4)

	tx, err := b.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	q := b.store.queries.WithTx(tx)
	for _, stmt := range stmts {
		if err := stmt(ctx, q); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				b.store.logger.Error(fmt.Sprintf("Failed to roll back batch: %s", rbErr))
			}
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

// Ping is used by the status endpoint
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
