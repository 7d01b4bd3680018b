// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pbinitiative/zenvedtak/internal/appcontext"
	"github.com/pbinitiative/zenvedtak/pkg/decision"
)

const (
	ActorHeader         = "X-Actor"
	CorrelationIdHeader = "X-Correlation-Id"
)

// RequestContext moves the acting case worker and the correlation id of the request into its context.
// A missing correlation id is generated and echoed back in the response.
func RequestContext() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if actor := strings.TrimSpace(r.Header.Get(ActorHeader)); actor != "" {
				ctx = appcontext.WithActor(ctx, decision.Actor(actor))
			}
			correlationId := r.Header.Get(CorrelationIdHeader)
			if correlationId == "" {
				correlationId = uuid.NewString()
			}
			ctx = appcontext.WithCorrelationId(ctx, correlationId)
			w.Header().Set(CorrelationIdHeader, correlationId)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StripEmptyQueryParams removes query parameters with blank values.
func StripEmptyQueryParams() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			filtered := make(url.Values, len(q))
			for k, vs := range q {
				for _, v := range vs {
					if strings.TrimSpace(v) != "" {
						filtered[k] = append(filtered[k], v)
					}
				}
			}
			r.URL.RawQuery = filtered.Encode()
			next.ServeHTTP(w, r)
		})
	}
}
