// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/pbinitiative/zenvedtak/internal/rest/middleware"
)

type Application struct {
	httpAddr      string
	collaborators *FakeCollaborators
}

type request struct {
	t           testing.TB
	ctx         context.Context
	method      string
	path        string
	addr        string
	requestBody any
	headers     http.Header
	transport   http.RoundTripper
}

func (app *Application) NewRequest(t testing.TB) *request {
	return &request{
		t:         t,
		method:    http.MethodGet,
		addr:      app.httpAddr,
		headers:   http.Header{},
		transport: &http.Transport{},
	}
}

func (r *request) WithContext(ctx context.Context) *request {
	r.ctx = ctx
	return r
}

func (r *request) WithActor(actor string) *request {
	r.headers.Set(middleware.ActorHeader, actor)
	return r
}

func (r *request) WithMethod(method string) *request {
	r.method = method
	return r
}

func (r *request) WithPath(path string, args ...any) *request {
	r.path = fmt.Sprintf(path, args...)
	return r
}

func (r *request) WithBody(body any) *request {
	r.requestBody = body
	r.headers.Set("Content-Type", "application/json")
	return r
}

func (r *request) Do() ([]byte, int, error) {
	c := http.Client{
		Transport: r.transport,
	}
	var reader io.Reader
	if r.requestBody != nil {
		body, err := json.Marshal(r.requestBody)
		if err != nil {
			return nil, 0, fmt.Errorf("could not serialize %T to json", r.requestBody)
		}
		reader = bytes.NewBuffer(body)
	}
	reqCtx := context.Background()
	if r.t != nil {
		reqCtx = r.t.Context()
	}
	if r.ctx != nil {
		reqCtx = r.ctx
	}
	req, err := http.NewRequestWithContext(reqCtx, r.method, fmt.Sprintf("http://%s%s", r.addr, r.path), reader)
	if err != nil {
		return nil, 0, fmt.Errorf("error during request build: %w", err)
	}
	req.Header = r.headers
	res, err := c.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("error during request: %w", err)
	}
	defer res.Body.Close()
	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("could not read response body: %w", err)
	}
	return respBody, res.StatusCode, nil
}

// DoOk performs the request and decodes the 2XX JSON answer into out
func (r *request) DoOk(out any) error {
	respBody, status, err := r.Do()
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("expected status code 2XX, got %d: %s", status, string(respBody))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", string(respBody), err)
	}
	return nil
}
