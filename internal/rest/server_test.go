// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/hashicorp/go-hclog"
	"github.com/pbinitiative/zenvedtak/internal/config"
	"github.com/pbinitiative/zenvedtak/internal/rest/middleware"
	"github.com/pbinitiative/zenvedtak/internal/rest/public"
	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/lifecycle"
	"github.com/pbinitiative/zenvedtak/pkg/storage/inmemory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCaseProcessing struct {
	notIssuable bool
}

func (s *stubCaseProcessing) IsIssuable(ctx context.Context, caseProcessingID string) (bool, error) {
	return !s.notIssuable, nil
}

func (s *stubCaseProcessing) IsAttestable(ctx context.Context, caseProcessingID string, actor decision.Actor) (bool, error) {
	return true, nil
}

func (s *stubCaseProcessing) IsRejectable(ctx context.Context, caseProcessingID string) (bool, error) {
	return true, nil
}

func (s *stubCaseProcessing) UpdateCaseStatus(ctx context.Context, caseProcessingID string, status decision.Status) error {
	return nil
}

func (s *stubCaseProcessing) ActivateCase(ctx context.Context, caseProcessingID string, actor decision.Actor) (bool, error) {
	return false, errors.New("payment system unavailable")
}

type stubContent map[string]lifecycle.CaseContent

func (s stubContent) FetchCaseContent(ctx context.Context, caseProcessingID string) (lifecycle.CaseContent, error) {
	c, ok := s[caseProcessingID]
	if !ok {
		return lifecycle.CaseContent{}, fmt.Errorf("no content for %s", caseProcessingID)
	}
	return c, nil
}

type testServer struct {
	handler http.Handler
	cases   *stubCaseProcessing
	health  error
}

func newTestServer(t *testing.T) *testServer {
	from := decision.NewMonth(2024, time.January)
	content := stubContent{
		"cp-1": {
			CaseID:   11,
			Identity: "01010012345",
			Content: decision.Content{
				Type:          decision.TypeGrant,
				ReviewCause:   decision.ReviewCauseApplication,
				EffectiveFrom: from,
				Payload: decision.PaymentPayload{Periods: []decision.PaymentPeriod{
					decision.NewPaymentPeriod(from, nil, decimal.NewFromInt(1500)),
				}},
			},
		},
	}
	ts := &testServer{cases: &stubCaseProcessing{}}
	service, err := lifecycle.NewService(inmemory.NewStorage(), ts.cases, content,
		lifecycle.ServiceWithLogger(hclog.NewNullLogger()))
	require.NoError(t, err)

	srv := NewServer(service, config.Config{Name: "zenvedtak-test", Server: config.Server{Addr: "127.0.0.1:0"}},
		map[string]HealthCheck{"database": func(ctx context.Context) error { return ts.health }})
	ts.handler = srv.server.Handler
	return ts
}

func (ts *testServer) do(t *testing.T, method string, path string, actor string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if actor != "" {
		req.Header.Set(middleware.ActorHeader, actor)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestDecisionLifecycleOverRest(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPut, "/v1/case-processing/cp-1/decision", "saksbehandler", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[public.Decision](t, rec)
	assert.Equal(t, public.DecisionStatusDRAFT, created.Status)
	require.NotNil(t, created.EffectiveFrom)
	assert.Equal(t, "2024-01", *created.EffectiveFrom)
	assert.Nil(t, created.IssuedBy)
	base := fmt.Sprintf("/v1/decisions/%d", created.Key)

	rec = ts.do(t, http.MethodPost, base+"/issue", "saksbehandler", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	issued := decode[public.Decision](t, rec)
	assert.Equal(t, public.DecisionStatusISSUED, issued.Status)
	assert.Equal(t, "saksbehandler", *issued.IssuedBy)

	rec = ts.do(t, http.MethodPost, base+"/attest", "saksbehandler", `{"comment": "ok"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "SELF_ATTESTATION", decode[public.ApiError](t, rec).Type)

	rec = ts.do(t, http.MethodPost, base+"/attest", "attestant", `{"comment": "looks right"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	attested := decode[public.Decision](t, rec)
	assert.Equal(t, public.DecisionStatusATTESTED, attested.Status)
	assert.Equal(t, "looks right", *attested.AttestationComment)

	rec = ts.do(t, http.MethodGet, base+"/transitions", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	transitions := decode[[]public.Transition](t, rec)
	require.Len(t, transitions, 3)
	assert.Equal(t, public.DecisionStatusATTESTED, transitions[2].To)

	rec = ts.do(t, http.MethodGet, "/v1/cases/11/timeline", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	periods := decode[[]public.Period](t, rec)
	require.Len(t, periods, 1)
	assert.Equal(t, "1500", *periods[0].Amount)
	assert.Nil(t, periods[0].To)

	rec = ts.do(t, http.MethodGet, "/v1/cases/11/timeline?from=2024-06", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-06", decode[[]public.Period](t, rec)[0].From)

	rec = ts.do(t, http.MethodGet, "/v1/cases/11/granted-intervals", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]public.Interval](t, rec), 1)

	rec = ts.do(t, http.MethodGet, "/v1/cases/11/running?date=2024-03-15", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	running := decode[public.Running](t, rec)
	assert.True(t, running.Running)
	assert.Equal(t, "2024-03-15", running.Date.String())
	assert.Equal(t, "cp-1", *running.LastCaseProcessingId)

	rec = ts.do(t, http.MethodGet, "/v1/identities/01010012345/running?date=2024-03-15", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[public.Running](t, rec).Running)

	rec = ts.do(t, http.MethodPost, base+"/activate", "system", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	apiErr := decode[public.ApiError](t, rec)
	assert.Equal(t, "COLLABORATOR_FAILURE", apiErr.Type)
	assert.Equal(t, lifecycle.CollaboratorCaseProcessing, *apiErr.Collaborator)

	rec = ts.do(t, http.MethodGet, "/v1/case-processing/cp-1/decision", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, public.DecisionStatusATTESTED, decode[public.Decision](t, rec).Status)
}

func TestInvalidStateIsConflict(t *testing.T) {
	ts := newTestServer(t)
	created := decode[public.Decision](t, ts.do(t, http.MethodPut, "/v1/case-processing/cp-1/decision", "saksbehandler", ""))

	rec := ts.do(t, http.MethodPost, fmt.Sprintf("/v1/decisions/%d/activate", created.Key), "system", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	apiErr := decode[public.ApiError](t, rec)
	assert.Equal(t, "INVALID_STATE", apiErr.Type)
	require.NotNil(t, apiErr.Status)
	assert.Equal(t, public.DecisionStatusDRAFT, *apiErr.Status)
}

func TestCaseNotReady(t *testing.T) {
	ts := newTestServer(t)
	ts.cases.notIssuable = true
	created := decode[public.Decision](t, ts.do(t, http.MethodPut, "/v1/case-processing/cp-1/decision", "saksbehandler", ""))

	rec := ts.do(t, http.MethodPost, fmt.Sprintf("/v1/decisions/%d/issue", created.Key), "saksbehandler", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CASE_NOT_READY", decode[public.ApiError](t, rec).Type)
}

func TestBadRequests(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		method  string
		path    string
		actor   string
		body    string
		message string
	}{
		{"decision key is not a number", http.MethodPost, "/v1/decisions/abc/issue", "saksbehandler", "", "decisionKey"},
		{"actor header missing", http.MethodPost, "/v1/decisions/1/issue", "", "", middleware.ActorHeader},
		{"actor header blank", http.MethodPost, "/v1/decisions/1/issue", "  ", "", middleware.ActorHeader},
		{"asOf is not RFC3339", http.MethodGet, "/v1/cases/11/timeline?asOf=yesterday", "", "", "asOf"},
		{"date is not a calendar date", http.MethodGet, "/v1/cases/11/running?date=2024-13-01", "", "", "date"},
		{"from is not a month", http.MethodGet, "/v1/identities/01010012345/timeline?from=june", "", "", "from"},
		{"attest body is not json", http.MethodPost, "/v1/decisions/1/attest", "attestant", "{", "JSON body"},
		{"reject body missing", http.MethodPost, "/v1/decisions/1/reject", "attestant", "", "JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, tt.method, tt.path, tt.actor, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			apiErr := decode[public.ApiError](t, rec)
			assert.Equal(t, "BAD_REQUEST", apiErr.Type)
			assert.Contains(t, apiErr.Message, tt.message)
		})
	}

	rec := ts.do(t, http.MethodGet, "/v1/decisions/404", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode[public.ApiError](t, rec).Type)
}

func TestEmptyQueryParametersUseDefaults(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodPut, "/v1/case-processing/cp-1/decision", "saksbehandler", "")

	rec := ts.do(t, http.MethodGet, "/v1/cases/11/timeline?asOf=&from=", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, decode[[]public.Period](t, rec))
}

func TestOpenAPIDocument(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/system/openapi.json", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := openapi3.NewLoader().LoadFromData(rec.Body.Bytes())
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))
	assert.NotNil(t, doc.Paths.Find("/decisions/{decisionKey}/attest"))
	assert.NotNil(t, doc.Paths.Find("/identities/{identity}/running"))
}

func TestSystemStatus(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/system/status", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	status := decode[statusResponse](t, rec)
	assert.Equal(t, "UP", status.Status)
	assert.Equal(t, "UP", status.Components["database"])

	ts.health = errors.New("connection refused")
	rec = ts.do(t, http.MethodGet, "/system/status", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "DOWN", decode[statusResponse](t, rec).Status)
}
