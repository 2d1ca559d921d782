// Package pairing implements the rendezvous and pairing engine: the
// concurrent request-matching state machine described in spec.md §4.3. It
// holds the first arriving request of a pair until its counterpart arrives,
// validates coherence between the two, and dispatches a single generation
// job whose two outputs are delivered back through each job's response
// sink.
package pairing

import "github.com/renproject/dealer/wire"

// Outcome is the single message delivered on a Job's Sink: either a
// completed DealerResponse, or a DealerError from a pairing failure, a
// failed generation, or Sweep (spec.md §4.5). Admission errors never reach
// a sink.
type Outcome struct {
	Response wire.DealerResponse
	Err      *wire.DealerError
}

// Job is one party's admitted request, owned by the pairing engine until it
// is matched with its counterpart (spec.md §3, "DealerJob").
type Job struct {
	RequestID wire.RequestId
	PartyID   wire.PartyId
	Request   wire.DealerRequest
	Sink      chan<- Outcome
}

// NewJob constructs a Job together with the receive end of its response
// sink. The sink is buffered to depth 1: the engine sends exactly one
// Outcome per job (spec.md §4.5), so the send from the engine's
// goroutine never blocks on the caller's receive.
func NewJob(rid wire.RequestId, pid wire.PartyId, req wire.DealerRequest) (Job, <-chan Outcome) {
	sink := make(chan Outcome, 1)
	return Job{RequestID: rid, PartyID: pid, Request: req, Sink: sink}, sink
}
