// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package collaborator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/lifecycle"
)

type CaseProcessingClient struct {
	client
}

var _ lifecycle.CaseProcessing = &CaseProcessingClient{}

func NewCaseProcessingClient(baseURL string, timeout time.Duration, options ...Option) *CaseProcessingClient {
	return &CaseProcessingClient{client: newClient("case-processing-client", baseURL, timeout, options...)}
}

type checkResponse struct {
	Allowed bool `json:"allowed"`
}

func casePath(caseProcessingID string, suffix string) string {
	return fmt.Sprintf("/case-processing/%s/%s", url.PathEscape(caseProcessingID), suffix)
}

func (c *CaseProcessingClient) check(ctx context.Context, path string) (bool, error) {
	var res checkResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return false, err
	}
	return res.Allowed, nil
}

func (c *CaseProcessingClient) IsIssuable(ctx context.Context, caseProcessingID string) (bool, error) {
	return c.check(ctx, casePath(caseProcessingID, "issuable"))
}

func (c *CaseProcessingClient) IsAttestable(ctx context.Context, caseProcessingID string, actor decision.Actor) (bool, error) {
	return c.check(ctx, casePath(caseProcessingID, "attestable")+"?actor="+url.QueryEscape(string(actor)))
}

func (c *CaseProcessingClient) IsRejectable(ctx context.Context, caseProcessingID string) (bool, error) {
	return c.check(ctx, casePath(caseProcessingID, "rejectable"))
}

type statusRequest struct {
	Status decision.Status `json:"status"`
}

func (c *CaseProcessingClient) UpdateCaseStatus(ctx context.Context, caseProcessingID string, status decision.Status) error {
	return c.do(ctx, http.MethodPut, casePath(caseProcessingID, "status"), statusRequest{Status: status}, nil)
}

type activateRequest struct {
	Actor decision.Actor `json:"actor"`
}

type activateResponse struct {
	Activated bool `json:"activated"`
}

func (c *CaseProcessingClient) ActivateCase(ctx context.Context, caseProcessingID string, actor decision.Actor) (bool, error) {
	var res activateResponse
	if err := c.do(ctx, http.MethodPost, casePath(caseProcessingID, "activate"), activateRequest{Actor: actor}, &res); err != nil {
		return false, err
	}
	return res.Activated, nil
}
