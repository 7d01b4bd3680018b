// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package collaborator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/lifecycle"
)

type CaseContentClient struct {
	client
}

var _ lifecycle.CaseContentSource = &CaseContentClient{}

func NewCaseContentClient(baseURL string, timeout time.Duration, options ...Option) *CaseContentClient {
	return &CaseContentClient{client: newClient("case-content-client", baseURL, timeout, options...)}
}

// ContentDTO is the wire form of decision.Content, the payload shape follows the decision type
type ContentDTO struct {
	Type           decision.Type        `json:"type"`
	ReviewCause    decision.ReviewCause `json:"reviewCause"`
	EffectiveFrom  decision.Month       `json:"effectiveFrom"`
	TerminatesFrom *decision.Month      `json:"terminatesFrom,omitempty"`
	Payload        json.RawMessage      `json:"payload"`
}

func (dto ContentDTO) ToContent() (decision.Content, error) {
	payload, err := decision.DecodePayload(dto.Type, dto.Payload)
	if err != nil {
		return decision.Content{}, err
	}
	return decision.Content{
		Type:           dto.Type,
		ReviewCause:    dto.ReviewCause,
		Payload:        payload,
		EffectiveFrom:  dto.EffectiveFrom,
		TerminatesFrom: dto.TerminatesFrom,
	}, nil
}

func ContentToDTO(c decision.Content) (ContentDTO, error) {
	payload, err := decision.EncodePayload(c.Payload)
	if err != nil {
		return ContentDTO{}, err
	}
	return ContentDTO{
		Type:           c.Type,
		ReviewCause:    c.ReviewCause,
		EffectiveFrom:  c.EffectiveFrom,
		TerminatesFrom: c.TerminatesFrom,
		Payload:        payload,
	}, nil
}

type caseContentResponse struct {
	CaseID   int64      `json:"caseId"`
	Identity string     `json:"identity"`
	Content  ContentDTO `json:"content"`
}

func (c *CaseContentClient) FetchCaseContent(ctx context.Context, caseProcessingID string) (lifecycle.CaseContent, error) {
	var res caseContentResponse
	if err := c.do(ctx, http.MethodGet, casePath(caseProcessingID, "content"), nil, &res); err != nil {
		return lifecycle.CaseContent{}, err
	}
	content, err := res.Content.ToContent()
	if err != nil {
		return lifecycle.CaseContent{}, fmt.Errorf("invalid content of %s: %w", caseProcessingID, err)
	}
	return lifecycle.CaseContent{
		CaseID:   res.CaseID,
		Identity: res.Identity,
		Content:  content,
	}, nil
}
