// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package collaborator

import (
	"context"
	"net/http"
	"time"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/lifecycle"
)

type LetterClient struct {
	client
}

var _ lifecycle.LetterService = &LetterClient{}

func NewLetterClient(baseURL string, timeout time.Duration, options ...Option) *LetterClient {
	return &LetterClient{client: newClient("letter-client", baseURL, timeout, options...)}
}

type letterRequest struct {
	DecisionKey int64                `json:"decisionKey"`
	Type        decision.Type        `json:"type"`
	ReviewCause decision.ReviewCause `json:"reviewCause"`
	AttestedBy  decision.Actor       `json:"attestedBy"`
}

func (c *LetterClient) RequestLetter(ctx context.Context, caseProcessingID string, d decision.Decision) error {
	return c.do(ctx, http.MethodPost, casePath(caseProcessingID, "letter"), letterRequest{
		DecisionKey: d.Key,
		Type:        d.Type,
		ReviewCause: d.ReviewCause,
		AttestedBy:  d.AttestedBy,
	}, nil)
}
