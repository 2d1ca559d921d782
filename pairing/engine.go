package pairing

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/renproject/dealer/generate"
	"github.com/renproject/dealer/scalar"
	"github.com/renproject/dealer/wire"
)

// entry is a Job together with the time it entered the open-requests map,
// used only by Sweep (spec.md §9, OQ3).
type entry struct {
	job        Job
	insertedAt time.Time
}

// Engine is the concurrent map from request ID to the first-arrived job
// (spec.md §4.3). The zero value is not usable; construct with NewEngine.
//
// The mutex guards only the map itself: the lookup and the insertion or
// removal are the entirety of the critical section. The equality/duplicate
// check and the CPU-bound generation work that follow a match run outside
// the lock.
type Engine struct {
	mu   sync.Mutex
	open map[wire.RequestId]entry

	rng    io.Reader
	logger *log.Logger
}

// NewEngine constructs an Engine. rng is the entropy source threaded into
// every mac key sample and every generator call (spec.md §5's RNG
// discipline); production callers pass crypto/rand.Reader. logger receives
// diagnostics for conditions spec.md §9 declares non-fatal (OQ2); a nil
// logger discards them.
func NewEngine(rng io.Reader, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		open:   make(map[wire.RequestId]entry),
		rng:    rng,
		logger: logger,
	}
}

// Submit hands a job to the engine. If no counterpart is waiting under
// job.RequestID, the job is stored and Submit returns immediately; the
// response arrives later through job.Sink when the counterpart arrives. If
// a counterpart is already waiting, Submit validates the pair and, on
// success, dispatches generation synchronously before returning.
//
// A single Submit call never reinserts a key it has removed. The engine does
// not remember request IDs it has already matched (or swept): a later job
// under such an ID is stored as a new open entry.
func (e *Engine) Submit(job Job) {
	e.mu.Lock()
	existing, ok := e.open[job.RequestID]
	if !ok {
		e.open[job.RequestID] = entry{job: job, insertedAt: time.Now()}
		e.mu.Unlock()
		return
	}
	delete(e.open, job.RequestID)
	e.mu.Unlock()

	e.handlePair(existing.job, job)
}

// handlePair validates and, if valid, generates and delivers the output for
// a matched pair of jobs (spec.md §4.3, transition 3).
func (e *Engine) handlePair(first, second Job) {
	if !first.Request.Equal(second.Request) {
		err := wire.NewBadRequest("mismatched request bodies for request %s", first.RequestID)
		e.deliver(first, Outcome{Err: err})
		e.deliver(second, Outcome{Err: err})
		return
	}

	if first.PartyID == second.PartyID {
		err := wire.NewBadRequest("duplicate party ID")
		e.deliver(first, Outcome{Err: err})
		e.deliver(second, Outcome{Err: err})
		return
	}

	party0, party1 := first, second
	if party0.PartyID != wire.Party0 {
		party0, party1 = party1, party0
	}

	macKey, err := scalar.Random(e.rng)
	if err != nil {
		e.failInternal(party0, party1, fmt.Errorf("sampling mac key: %w", err))
		return
	}
	macShare0, err := scalar.Random(e.rng)
	if err != nil {
		e.failInternal(party0, party1, fmt.Errorf("sampling mac key share: %w", err))
		return
	}
	var macShare1 scalar.Scalar
	macShare1.Sub(macKey, macShare0)

	resp0, resp1, err := generate.Run(party0.Request, macKey, macShare0, macShare1, e.rng)
	if err != nil {
		e.failInternal(party0, party1, fmt.Errorf("generating offline material: %w", err))
		return
	}

	e.deliver(party0, Outcome{Response: resp0})
	e.deliver(party1, Outcome{Response: resp1})
}

// failInternal delivers an Internal DealerError to both sides of a pair
// (spec.md §7: "conditions the design declares impossible").
func (e *Engine) failInternal(party0, party1 Job, cause error) {
	e.logger.Printf("pairing: internal error generating offline phase material: %v", cause)
	err := wire.NewInternal("failed to generate offline phase material")
	e.deliver(party0, Outcome{Err: err})
	e.deliver(party1, Outcome{Err: err})
}

// deliver sends outcome on job.Sink without blocking (spec.md §9, OQ2). A
// sink made by NewJob has room for its one outcome, so the send succeeds
// even when the receiver is no longer listening (e.g. the HTTP handler's
// caller closed its connection). A sink that cannot take the outcome at once
// (full, unbuffered with no waiting receiver, or nil) gets it dropped and a
// log line instead of blocking the engine.
func (e *Engine) deliver(job Job, outcome Outcome) {
	select {
	case job.Sink <- outcome:
	default:
		e.logger.Printf("pairing: dropped outcome for request %s party %s: sink not ready", job.RequestID, job.PartyID)
	}
}

// Sweep removes and fails every job that has been open (unpaired) for
// longer than maxAge, delivering a BadRequest to its waiting side. It
// returns the number of jobs swept.
//
// Sweep is not called anywhere in this package by default: spec.md §5
// states there is no timeout at the core layer, and a default-on TTL would
// be an anti-abuse quota, which spec.md §1 names as an explicit non-goal.
// An operator that wants bounded memory under adversarial load (spec.md §9,
// OQ3) can schedule Sweep externally, e.g. from cmd/dealer-server's main.
func (e *Engine) Sweep(maxAge time.Duration) int {
	now := time.Now()

	e.mu.Lock()
	var stale []Job
	for rid, ent := range e.open {
		if now.Sub(ent.insertedAt) > maxAge {
			stale = append(stale, ent.job)
			delete(e.open, rid)
		}
	}
	e.mu.Unlock()

	for _, job := range stale {
		e.deliver(job, Outcome{Err: wire.NewBadRequest("request %s timed out waiting for counterparty", job.RequestID)})
	}
	return len(stale)
}

// Pending returns the number of requests currently waiting for a
// counterpart. Exposed for tests and operational metrics.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.open)
}
