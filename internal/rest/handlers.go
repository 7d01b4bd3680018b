// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package rest

import (
	"context"
	"fmt"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/pbinitiative/zenvedtak/internal/appcontext"
	"github.com/pbinitiative/zenvedtak/internal/log"
	apierror "github.com/pbinitiative/zenvedtak/internal/rest/error"
	"github.com/pbinitiative/zenvedtak/internal/rest/middleware"
	"github.com/pbinitiative/zenvedtak/internal/rest/public"
	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/timeline"
)

// failure is an error answer of an operation
type failure struct {
	status int
	body   public.ApiError
}

func badRequest(msg string) *failure {
	status, body := apierror.BadRequest(msg)
	return &failure{status: status, body: toPublicError(body)}
}

func serviceFailure(ctx context.Context, err error) *failure {
	status, body := apierror.FromServiceError(err)
	if body.Type == "ERROR" {
		log.Errorf(ctx, "Unhandled error: %s", err)
	}
	return &failure{status: status, body: toPublicError(body)}
}

// actor is moved into the context by the request middleware, a blank header leaves it unset
func actor(ctx context.Context) (decision.Actor, *failure) {
	a, ok := appcontext.ActorFromContext(ctx)
	if !ok {
		return "", badRequest("missing " + middleware.ActorHeader + " header")
	}
	return a, nil
}

func decisionOutcome(ctx context.Context, d decision.Decision, err error) (public.DecisionResponseJSONResponse, *failure, error) {
	if err != nil {
		return public.DecisionResponseJSONResponse{}, serviceFailure(ctx, err), nil
	}
	res, err := toDecision(d)
	if err != nil {
		return public.DecisionResponseJSONResponse{}, nil, err
	}
	return public.DecisionResponseJSONResponse(res), nil, nil
}

// asOf defaults to the current instant
func (s *Server) asOf(v *time.Time) time.Time {
	if v == nil {
		return s.clock()
	}
	return *v
}

// date defaults to today
func (s *Server) date(v *openapi_types.Date) time.Time {
	if v == nil {
		now := s.clock().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return v.Time
}

func fromMonth(v *public.Month) (*decision.Month, *failure) {
	if v == nil {
		return nil, nil
	}
	m, err := decision.ParseMonth(*v)
	if err != nil {
		return nil, badRequest(fmt.Sprintf("invalid from month: %s", err))
	}
	return &m, nil
}

// ledger honours the optional from month, returning only the current and future part of the ledger
func ledger(periods []timeline.Period, from *decision.Month) []public.Period {
	if from != nil {
		periods = timeline.CurrentAndFuture(periods, *from)
	}
	return toPeriods(periods)
}

func (s *Server) CreateOrUpdateDecision(ctx context.Context, request public.CreateOrUpdateDecisionRequestObject) (public.CreateOrUpdateDecisionResponseObject, error) {
	a, fail := actor(ctx)
	if fail != nil {
		return public.CreateOrUpdateDecisiondefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	d, err := s.service.CreateOrUpdate(ctx, request.CaseProcessingId, a)
	res, fail, err := decisionOutcome(ctx, d, err)
	if err != nil {
		return nil, err
	}
	if fail != nil {
		return public.CreateOrUpdateDecisiondefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.CreateOrUpdateDecision200JSONResponse{DecisionResponseJSONResponse: res}, nil
}

func (s *Server) GetDecisionByCaseProcessingId(ctx context.Context, request public.GetDecisionByCaseProcessingIdRequestObject) (public.GetDecisionByCaseProcessingIdResponseObject, error) {
	d, err := s.service.GetDecisionByCaseProcessingID(ctx, request.CaseProcessingId)
	res, fail, err := decisionOutcome(ctx, d, err)
	if err != nil {
		return nil, err
	}
	if fail != nil {
		return public.GetDecisionByCaseProcessingIddefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.GetDecisionByCaseProcessingId200JSONResponse{DecisionResponseJSONResponse: res}, nil
}

func (s *Server) GetDecision(ctx context.Context, request public.GetDecisionRequestObject) (public.GetDecisionResponseObject, error) {
	d, err := s.service.GetDecision(ctx, request.DecisionKey)
	res, fail, err := decisionOutcome(ctx, d, err)
	if err != nil {
		return nil, err
	}
	if fail != nil {
		return public.GetDecisiondefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.GetDecision200JSONResponse{DecisionResponseJSONResponse: res}, nil
}

func (s *Server) GetDecisionTransitions(ctx context.Context, request public.GetDecisionTransitionsRequestObject) (public.GetDecisionTransitionsResponseObject, error) {
	records, err := s.service.TransitionHistory(ctx, request.DecisionKey)
	if err != nil {
		fail := serviceFailure(ctx, err)
		return public.GetDecisionTransitionsdefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.GetDecisionTransitions200JSONResponse(toTransitions(records)), nil
}

func (s *Server) IssueDecision(ctx context.Context, request public.IssueDecisionRequestObject) (public.IssueDecisionResponseObject, error) {
	a, fail := actor(ctx)
	if fail != nil {
		return public.IssueDecisiondefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	d, err := s.service.Issue(ctx, request.DecisionKey, a)
	res, fail, err := decisionOutcome(ctx, d, err)
	if err != nil {
		return nil, err
	}
	if fail != nil {
		return public.IssueDecisiondefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.IssueDecision200JSONResponse{DecisionResponseJSONResponse: res}, nil
}

func (s *Server) SendDecisionToCoordination(ctx context.Context, request public.SendDecisionToCoordinationRequestObject) (public.SendDecisionToCoordinationResponseObject, error) {
	a, fail := actor(ctx)
	if fail != nil {
		return public.SendDecisionToCoordinationdefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	d, err := s.service.SendToCoordination(ctx, request.DecisionKey, a)
	res, fail, err := decisionOutcome(ctx, d, err)
	if err != nil {
		return nil, err
	}
	if fail != nil {
		return public.SendDecisionToCoordinationdefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.SendDecisionToCoordination200JSONResponse{DecisionResponseJSONResponse: res}, nil
}

func (s *Server) CompleteDecisionCoordination(ctx context.Context, request public.CompleteDecisionCoordinationRequestObject) (public.CompleteDecisionCoordinationResponseObject, error) {
	a, fail := actor(ctx)
	if fail != nil {
		return public.CompleteDecisionCoordinationdefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	d, err := s.service.CompleteCoordination(ctx, request.DecisionKey, a)
	res, fail, err := decisionOutcome(ctx, d, err)
	if err != nil {
		return nil, err
	}
	if fail != nil {
		return public.CompleteDecisionCoordinationdefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.CompleteDecisionCoordination200JSONResponse{DecisionResponseJSONResponse: res}, nil
}

func (s *Server) AttestDecision(ctx context.Context, request public.AttestDecisionRequestObject) (public.AttestDecisionResponseObject, error) {
	a, fail := actor(ctx)
	if fail != nil {
		return public.AttestDecisiondefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	comment := ""
	if request.Body.Comment != nil {
		comment = *request.Body.Comment
	}
	d, err := s.service.Attest(ctx, request.DecisionKey, a, comment)
	res, fail, err := decisionOutcome(ctx, d, err)
	if err != nil {
		return nil, err
	}
	if fail != nil {
		return public.AttestDecisiondefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.AttestDecision200JSONResponse{DecisionResponseJSONResponse: res}, nil
}

func (s *Server) ActivateDecision(ctx context.Context, request public.ActivateDecisionRequestObject) (public.ActivateDecisionResponseObject, error) {
	a, fail := actor(ctx)
	if fail != nil {
		return public.ActivateDecisiondefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	d, err := s.service.Activate(ctx, request.DecisionKey, a)
	res, fail, err := decisionOutcome(ctx, d, err)
	if err != nil {
		return nil, err
	}
	if fail != nil {
		return public.ActivateDecisiondefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.ActivateDecision200JSONResponse{DecisionResponseJSONResponse: res}, nil
}

func (s *Server) RejectDecision(ctx context.Context, request public.RejectDecisionRequestObject) (public.RejectDecisionResponseObject, error) {
	a, fail := actor(ctx)
	if fail != nil {
		return public.RejectDecisiondefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	d, err := s.service.Reject(ctx, request.DecisionKey, a, request.Body.Reason)
	res, fail, err := decisionOutcome(ctx, d, err)
	if err != nil {
		return nil, err
	}
	if fail != nil {
		return public.RejectDecisiondefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.RejectDecision200JSONResponse{DecisionResponseJSONResponse: res}, nil
}

func (s *Server) GetCaseTimeline(ctx context.Context, request public.GetCaseTimelineRequestObject) (public.GetCaseTimelineResponseObject, error) {
	from, fail := fromMonth(request.Params.From)
	if fail != nil {
		return public.GetCaseTimelinedefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	periods, err := s.service.ReconcileTimeline(ctx, request.CaseId, s.asOf(request.Params.AsOf))
	if err != nil {
		fail := serviceFailure(ctx, err)
		return public.GetCaseTimelinedefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.GetCaseTimeline200JSONResponse(ledger(periods, from)), nil
}

func (s *Server) GetCaseGrantedIntervals(ctx context.Context, request public.GetCaseGrantedIntervalsRequestObject) (public.GetCaseGrantedIntervalsResponseObject, error) {
	intervals, err := s.service.GrantedIntervals(ctx, request.CaseId, s.asOf(request.Params.AsOf))
	if err != nil {
		fail := serviceFailure(ctx, err)
		return public.GetCaseGrantedIntervalsdefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.GetCaseGrantedIntervals200JSONResponse(toIntervals(intervals)), nil
}

func (s *Server) GetCaseRunning(ctx context.Context, request public.GetCaseRunningRequestObject) (public.GetCaseRunningResponseObject, error) {
	rs, err := s.service.IsRunningAsOf(ctx, request.CaseId, s.date(request.Params.Date))
	if err != nil {
		fail := serviceFailure(ctx, err)
		return public.GetCaseRunningdefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.GetCaseRunning200JSONResponse{RunningResponseJSONResponse: public.RunningResponseJSONResponse(toRunning(rs))}, nil
}

func (s *Server) GetIdentityTimeline(ctx context.Context, request public.GetIdentityTimelineRequestObject) (public.GetIdentityTimelineResponseObject, error) {
	from, fail := fromMonth(request.Params.From)
	if fail != nil {
		return public.GetIdentityTimelinedefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	periods, err := s.service.ReconcileIdentityTimeline(ctx, request.Identity, s.asOf(request.Params.AsOf))
	if err != nil {
		fail := serviceFailure(ctx, err)
		return public.GetIdentityTimelinedefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.GetIdentityTimeline200JSONResponse(ledger(periods, from)), nil
}

func (s *Server) GetIdentityRunning(ctx context.Context, request public.GetIdentityRunningRequestObject) (public.GetIdentityRunningResponseObject, error) {
	rs, err := s.service.IsRunningForIdentity(ctx, request.Identity, s.date(request.Params.Date))
	if err != nil {
		fail := serviceFailure(ctx, err)
		return public.GetIdentityRunningdefaultJSONResponse{StatusCode: fail.status, Body: fail.body}, nil
	}
	return public.GetIdentityRunning200JSONResponse{RunningResponseJSONResponse: public.RunningResponseJSONResponse(toRunning(rs))}, nil
}
