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
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime/strictmiddleware/nethttp"
	"github.com/pbinitiative/zenvedtak/internal/config"
	"github.com/pbinitiative/zenvedtak/internal/log"
	apierror "github.com/pbinitiative/zenvedtak/internal/rest/error"
	"github.com/pbinitiative/zenvedtak/internal/rest/middleware"
	"github.com/pbinitiative/zenvedtak/internal/rest/public"
	"github.com/pbinitiative/zenvedtak/pkg/decision"
	"github.com/pbinitiative/zenvedtak/pkg/storage"
	"github.com/pbinitiative/zenvedtak/pkg/timeline"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DecisionService is the part of the lifecycle service exposed over REST
type DecisionService interface {
	CreateOrUpdate(ctx context.Context, caseProcessingID string, actor decision.Actor) (decision.Decision, error)
	Issue(ctx context.Context, decisionKey int64, actor decision.Actor) (decision.Decision, error)
	SendToCoordination(ctx context.Context, decisionKey int64, actor decision.Actor) (decision.Decision, error)
	CompleteCoordination(ctx context.Context, decisionKey int64, actor decision.Actor) (decision.Decision, error)
	Attest(ctx context.Context, decisionKey int64, actor decision.Actor, comment string) (decision.Decision, error)
	Activate(ctx context.Context, decisionKey int64, actor decision.Actor) (decision.Decision, error)
	Reject(ctx context.Context, decisionKey int64, actor decision.Actor, reason string) (decision.Decision, error)

	GetDecision(ctx context.Context, decisionKey int64) (decision.Decision, error)
	GetDecisionByCaseProcessingID(ctx context.Context, caseProcessingID string) (decision.Decision, error)
	TransitionHistory(ctx context.Context, decisionKey int64) ([]storage.TransitionRecord, error)

	ReconcileTimeline(ctx context.Context, caseID int64, asOf time.Time) ([]timeline.Period, error)
	GrantedIntervals(ctx context.Context, caseID int64, asOf time.Time) ([]timeline.Interval, error)
	IsRunningAsOf(ctx context.Context, caseID int64, date time.Time) (timeline.RunningStatus, error)
	ReconcileIdentityTimeline(ctx context.Context, identity string, asOf time.Time) ([]timeline.Period, error)
	IsRunningForIdentity(ctx context.Context, identity string, date time.Time) (timeline.RunningStatus, error)
}

// HealthCheck reports whether a dependency of the service is reachable
type HealthCheck func(ctx context.Context) error

type Server struct {
	service DecisionService
	health  map[string]HealthCheck
	name    string
	addr    string
	server  *http.Server
	clock   func() time.Time
}

var _ public.StrictServerInterface = (*Server)(nil)

func NewServer(service DecisionService, conf config.Config, health map[string]HealthCheck) *Server {
	r := chi.NewRouter()
	s := Server{
		service: service,
		health:  health,
		name:    conf.Name,
		addr:    conf.Server.Addr,
		clock:   time.Now,
		server: &http.Server{
			ReadHeaderTimeout: 3 * time.Second,
			Handler:           r,
			Addr:              conf.Server.Addr,
		},
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Opentelemetry(conf))
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.RequestContext())
		r.Use(middleware.StripEmptyQueryParams())

		// mount generated handler from open-api
		h := public.HandlerWithOptions(public.NewStrictHandlerWithOptions(&s, []nethttp.StrictHTTPMiddlewareFunc{}, public.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  requestError,
			ResponseErrorHandlerFunc: responseError,
		}), public.ChiServerOptions{ErrorHandlerFunc: requestError})
		r.Mount("/", h)
	})
	// register system endpoints
	r.Route("/system", func(r chi.Router) {
		r.Get("/metrics", promhttp.Handler().ServeHTTP)
		r.Get("/status", s.status)
		r.Get("/openapi.json", s.openapi)
	})
	return &s
}

func (s *Server) Start() net.Listener {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		log.Error("failed to listen: %v", err)
		return nil
	}
	log.Info("Vedtak REST server listening on %s", listener.Addr())
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("Error starting server: %s", err)
		}
	}()
	return listener
}

func (s *Server) Stop(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err := s.server.Shutdown(ctx)
	if err != nil {
		log.Error("Error stopping server: %s", err)
	}
}

type statusResponse struct {
	Name       string            `json:"name"`
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	res := statusResponse{Name: s.name, Status: "UP", Components: map[string]string{}}
	code := http.StatusOK
	for name, check := range s.health {
		if err := check(r.Context()); err != nil {
			res.Components[name] = "DOWN: " + err.Error()
			res.Status = "DOWN"
			code = http.StatusServiceUnavailable
			continue
		}
		res.Components[name] = "UP"
	}
	state, _ := json.MarshalIndent(res, "", " ")
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(state)
}

func (s *Server) openapi(w http.ResponseWriter, r *http.Request) {
	swagger, err := public.GetSwagger()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, apierror.ApiError{Message: err.Error(), Type: "ERROR"})
		return
	}
	body, err := swagger.MarshalJSON()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, apierror.ApiError{Message: err.Error(), Type: "ERROR"})
		return
	}
	w.Header().Add("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// requestError answers requests the generated handler could not bind
func requestError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusBadRequest, apierror.ApiError{Message: err.Error(), Type: "BAD_REQUEST"})
}

func responseError(w http.ResponseWriter, r *http.Request, err error) {
	log.Errorf(r.Context(), "Server error: %s", err)
	writeError(w, r, http.StatusInternalServerError, apierror.ApiError{Message: err.Error(), Type: "ERROR"})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, resp apierror.ApiError) {
	body, err := json.Marshal(resp)
	if err != nil {
		log.Errorf(r.Context(), "Server error: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
