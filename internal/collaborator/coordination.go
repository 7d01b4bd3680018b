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

type CoordinationClient struct {
	client
}

var _ lifecycle.CoordinationProbe = &CoordinationClient{}

func NewCoordinationClient(baseURL string, timeout time.Duration, options ...Option) *CoordinationClient {
	return &CoordinationClient{client: newClient("coordination-client", baseURL, timeout, options...)}
}

type coordinationRequest struct {
	DecisionKey      int64           `json:"decisionKey"`
	CaseProcessingID string          `json:"caseProcessingId"`
	Identity         string          `json:"identity"`
	Type             decision.Type   `json:"type"`
	EffectiveFrom    decision.Month  `json:"effectiveFrom"`
	TerminatesFrom   *decision.Month `json:"terminatesFrom,omitempty"`
}

type coordinationResponse struct {
	ResponseRequired bool `json:"responseRequired"`
}

func (c *CoordinationClient) NeedsExternalCoordination(ctx context.Context, d decision.Decision) (bool, error) {
	var res coordinationResponse
	err := c.do(ctx, http.MethodPost, "/coordination/probe", coordinationRequest{
		DecisionKey:      d.Key,
		CaseProcessingID: d.CaseProcessingID,
		Identity:         d.Identity,
		Type:             d.Type,
		EffectiveFrom:    d.EffectiveFrom,
		TerminatesFrom:   d.TerminatesFrom,
	}, &res)
	if err != nil {
		return false, err
	}
	return res.ResponseRequired, nil
}
