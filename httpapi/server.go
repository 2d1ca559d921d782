// Package httpapi implements the dealer's HTTP boundary (spec.md §6.2): a
// chi router exposing the offline-phase endpoint and a liveness probe.
package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/renproject/dealer/admission"
	"github.com/renproject/dealer/pairing"
	"github.com/renproject/dealer/wire"
)

// responseTimeout bounds how long a submitted request waits for its
// counterparty before the HTTP handler gives up on the connection. It does
// not remove the job from the pairing engine's map; see spec.md §9, OQ3.
const responseTimeout = 2 * time.Minute

// NewRouter builds the dealer's HTTP surface around engine.
func NewRouter(engine *pairing.Engine, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/ping", handlePing)
	r.Post("/v0/offline-phase/{request_id}", handleOfflinePhase(engine, logger))

	return r
}

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("PONG"))
}

func handleOfflinePhase(engine *pairing.Engine, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid, err := wire.ParseRequestId(chi.URLParam(r, "request_id"))
		if err != nil {
			writeError(w, wire.NewBadRequest("invalid request id"))
			return
		}

		pid, err := wire.ParsePartyId(r.Header.Get("X-Party-Id"))
		if err != nil {
			writeError(w, wire.NewBadRequest("invalid party ID"))
			return
		}

		sigB64 := r.Header.Get("X-Signature")
		sigDER, err := base64.StdEncoding.DecodeString(sigB64)
		if err != nil {
			writeError(w, wire.NewBadRequest("invalid signature encoding"))
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, wire.MaxRequestSize*64))
		if err != nil {
			writeError(w, wire.NewBadRequest("failed to read request body"))
			return
		}

		var req wire.DealerRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, wire.NewBadRequest("malformed request body"))
			return
		}

		sub := admission.Submission{
			RequestID:    rid,
			PartyID:      pid,
			Request:      req,
			SignatureDER: sigDER,
		}
		if err := admission.Admit(sub); err != nil {
			writeError(w, err)
			return
		}

		job, sink := pairing.NewJob(rid, pid, req)
		engine.Submit(job)

		select {
		case outcome := <-sink:
			if outcome.Err != nil {
				writeError(w, outcome.Err)
				return
			}
			writeJSON(w, http.StatusOK, outcome.Response)
		case <-r.Context().Done():
			logger.Printf("httpapi: client disconnected while waiting for request %s", rid)
		case <-time.After(responseTimeout):
			writeError(w, wire.NewBadRequest("timed out waiting for counterparty"))
		}
	}
}

func writeError(w http.ResponseWriter, err error) {
	dealerErr, ok := err.(*wire.DealerError)
	if !ok {
		dealerErr = wire.NewInternal("internal error")
	}
	writeJSON(w, dealerErr.Kind.HTTPStatus(), dealerErr.ToErrorResponse())
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
