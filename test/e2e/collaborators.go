// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// FakeCollaborators serves the case-processing, case-content, coordination and letter endpoints
// from memory so the service can be exercised over its real HTTP clients.
type FakeCollaborators struct {
	mu       sync.Mutex
	server   *httptest.Server
	contents map[string]json.RawMessage
	statuses map[string][]string
	letters  map[string]int

	coordinationRequired bool
}

func NewFakeCollaborators() *FakeCollaborators {
	f := &FakeCollaborators{
		contents: map[string]json.RawMessage{},
		statuses: map[string][]string{},
		letters:  map[string]int{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /case-processing/{id}/content", f.content)
	mux.HandleFunc("GET /case-processing/{id}/issuable", f.allowed)
	mux.HandleFunc("GET /case-processing/{id}/attestable", f.allowed)
	mux.HandleFunc("GET /case-processing/{id}/rejectable", f.allowed)
	mux.HandleFunc("PUT /case-processing/{id}/status", f.status)
	mux.HandleFunc("POST /case-processing/{id}/activate", f.activate)
	mux.HandleFunc("POST /case-processing/{id}/letter", f.letter)
	mux.HandleFunc("POST /coordination/probe", f.probe)
	f.server = httptest.NewServer(mux)
	return f
}

func (f *FakeCollaborators) URL() string {
	return f.server.URL
}

func (f *FakeCollaborators) Close() {
	f.server.Close()
}

// SetContent registers the case content answered for a case-processing unit
func (f *FakeCollaborators) SetContent(caseProcessingID string, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contents[caseProcessingID] = json.RawMessage(content)
}

func (f *FakeCollaborators) SetCoordinationRequired(required bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coordinationRequired = required
}

func (f *FakeCollaborators) Statuses(caseProcessingID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.statuses[caseProcessingID]...)
}

func (f *FakeCollaborators) Letters(caseProcessingID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.letters[caseProcessingID]
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (f *FakeCollaborators) content(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	content, ok := f.contents[r.PathValue("id")]
	f.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(content)
}

func (f *FakeCollaborators) allowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]bool{"allowed": true})
}

func (f *FakeCollaborators) status(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.statuses[r.PathValue("id")] = append(f.statuses[r.PathValue("id")], req.Status)
	f.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (f *FakeCollaborators) activate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]bool{"activated": true})
}

func (f *FakeCollaborators) letter(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.letters[r.PathValue("id")]++
	f.mu.Unlock()
	w.WriteHeader(http.StatusAccepted)
}

func (f *FakeCollaborators) probe(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	required := f.coordinationRequired
	f.mu.Unlock()
	writeJSON(w, map[string]bool{"responseRequired": required})
}
