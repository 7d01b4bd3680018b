// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

// Package collaborator implements the lifecycle collaborator contracts over JSON/HTTP.
// Calls are never retried, a failed call is reported to the lifecycle service which rolls the transition back.
package collaborator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// StatusError is returned when a collaborator answers with a non-2xx status
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s answered %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     hclog.Logger
}

type Option func(*client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *client) { cl.httpClient = c }
}

func WithLogger(logger hclog.Logger) Option {
	return func(cl *client) { cl.logger = logger }
}

func newClient(name string, baseURL string, timeout time.Duration, options ...Option) client {
	c := client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: hclog.Default().Named(name),
	}
	for _, o := range options {
		o(&c)
	}
	return c
}

// maximum part of an error body kept in StatusError
const errorBodyLimit = 512

func (c client) do(ctx context.Context, method string, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		c.logger.Debug("collaborator call failed", "method", method, "url", url, "status", resp.StatusCode)
		return &StatusError{Method: method, URL: url, StatusCode: resp.StatusCode, Body: string(msg)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", method, url, err)
	}
	return nil
}
