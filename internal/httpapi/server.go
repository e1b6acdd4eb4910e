// Package httpapi exposes the session engine to an external UI over JSON.
// The UI owns tick generation and rendering; this layer only translates HTTP
// requests into engine transitions and engine state into responses.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"creativity-bench/internal/export"
	"creativity-bench/internal/scoring"
	"creativity-bench/internal/session"
)

type Handler struct {
	engine *session.Engine
}

func NewHandler(engine *session.Engine) *Handler {
	return &Handler{engine: engine}
}

// NewRouter creates the API router with all endpoints.
func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/session/start", h.Start).Methods("POST")
	v1.HandleFunc("/session/answer", h.Answer).Methods("POST")
	v1.HandleFunc("/session/tick", h.Tick).Methods("POST")
	v1.HandleFunc("/session/state", h.State).Methods("GET")
	v1.HandleFunc("/session/result", h.Result).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return r
}

type answerRequest struct {
	Text string `json:"text"`
}

type tickRequest struct {
	Draft string `json:"draft"`
}

type transitionResponse struct {
	Outcome session.Outcome  `json:"outcome"`
	State   session.Snapshot `json:"state"`
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Start(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.Snapshot())
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return
	}
	out, err := h.engine.Submit(r.Context(), req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transitionResponse{Outcome: out, State: h.engine.Snapshot()})
}

func (h *Handler) Tick(w http.ResponseWriter, r *http.Request) {
	var req tickRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}
	}
	out, err := h.engine.Tick(r.Context(), req.Draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transitionResponse{Outcome: out, State: h.engine.Snapshot()})
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Snapshot())
}

func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	if h.engine.Snapshot().Phase != session.PhaseCompleted {
		writeJSON(w, http.StatusConflict, errorBody("session is not completed"))
		return
	}
	writeJSON(w, http.StatusOK, export.Build(h.engine.Records()))
}

// Serve runs the API until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🌐 HTTP API listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// writeError maps engine and scoring failures onto HTTP statuses. Scoring
// failures are recoverable: the UI keeps the typed text and re-submits.
func writeError(w http.ResponseWriter, err error) {
	var authErr *scoring.AuthError
	var provErr *scoring.ProviderError
	var malformedErr *scoring.MalformedScoreError
	var scoringErr *scoring.ScoringError

	switch {
	case errors.Is(err, session.ErrEmptyAnswer):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, session.ErrNotAwaiting), errors.Is(err, session.ErrNotReady):
		writeJSON(w, http.StatusConflict, errorBody(err.Error()))
	case errors.As(err, &authErr):
		writeJSON(w, http.StatusUnauthorized, errorBody(err.Error()))
	case errors.As(err, &malformedErr), errors.As(err, &provErr):
		writeJSON(w, http.StatusBadGateway, errorBody(err.Error()))
	case errors.As(err, &scoringErr):
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
	}
}
