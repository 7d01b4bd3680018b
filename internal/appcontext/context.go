// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package appcontext

import (
	"context"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
)

type REQUEST_CONTEXT string

var (
	ActorKey         REQUEST_CONTEXT = "actor"
	CorrelationIdKey REQUEST_CONTEXT = "correlationId"
)

// WithActor stores the case worker performing the request
func WithActor(ctx context.Context, actor decision.Actor) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

func ActorFromContext(ctx context.Context) (decision.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(decision.Actor)
	if !ok || actor == "" {
		return "", false
	}
	return actor, true
}

func WithCorrelationId(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIdKey, id)
}

func CorrelationIdFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CorrelationIdKey).(string)
	return id, ok && id != ""
}
