package pairing_test

import (
	"crypto/rand"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/renproject/dealer/pairing"
	"github.com/renproject/dealer/scalar"
	"github.com/renproject/dealer/wire"
)

func newEngine() *pairing.Engine {
	return pairing.NewEngine(rand.Reader, log.New(io.Discard, "", 0))
}

func newRequestID() wire.RequestId {
	return wire.RequestId(uuid.New())
}

func recvWithin(ch <-chan pairing.Outcome, d time.Duration) (pairing.Outcome, bool) {
	select {
	case out := <-ch:
		return out, true
	case <-time.After(d):
		return pairing.Outcome{}, false
	}
}

func checkAuthenticated(macKey scalar.Scalar, a, b []scalar.ScalarShare) []scalar.Scalar {
	Expect(a).To(HaveLen(len(b)))
	values := make([]scalar.Scalar, len(a))
	for i := range a {
		value, tag := scalar.Open(a[i], b[i])
		Expect(scalar.Valid(value, tag, macKey)).To(BeTrue())
		values[i] = value
	}
	return values
}

var _ = Describe("pairing engine", func() {
	It("does not respond to a lone party until its counterpart arrives (B3)", func() {
		engine := newEngine()
		rid := newRequestID()
		req := wire.DealerRequest{NTriples: 3}

		job0, sink0 := pairing.NewJob(rid, wire.Party0, req)
		engine.Submit(job0)

		_, ok := recvWithin(sink0, 50*time.Millisecond)
		Expect(ok).To(BeFalse())
		Expect(engine.Pending()).To(Equal(1))

		job1, sink1 := pairing.NewJob(rid, wire.Party1, req)
		engine.Submit(job1)

		out0, ok := recvWithin(sink0, time.Second)
		Expect(ok).To(BeTrue())
		Expect(out0.Err).To(BeNil())

		out1, ok := recvWithin(sink1, time.Second)
		Expect(ok).To(BeTrue())
		Expect(out1.Err).To(BeNil())

		Expect(engine.Pending()).To(Equal(0))
	})

	It("rejects a duplicate party ID with no material generated (B4)", func() {
		engine := newEngine()
		rid := newRequestID()
		req := wire.DealerRequest{NTriples: 3}

		job0, sink0 := pairing.NewJob(rid, wire.Party0, req)
		job0b, sink0b := pairing.NewJob(rid, wire.Party0, req)

		engine.Submit(job0)
		engine.Submit(job0b)

		out0, ok := recvWithin(sink0, time.Second)
		Expect(ok).To(BeTrue())
		Expect(out0.Err).NotTo(BeNil())
		Expect(out0.Err.Kind).To(Equal(wire.BadRequest))

		out0b, ok := recvWithin(sink0b, time.Second)
		Expect(ok).To(BeTrue())
		Expect(out0b.Err).NotTo(BeNil())
		Expect(out0b.Err.Kind).To(Equal(wire.BadRequest))
	})

	It("rejects mismatched request bodies for both parties (B5, scenario 2)", func() {
		engine := newEngine()
		rid := newRequestID()

		job0, sink0 := pairing.NewJob(rid, wire.Party0, wire.DealerRequest{NRandomBits: 5})
		job1, sink1 := pairing.NewJob(rid, wire.Party1, wire.DealerRequest{NRandomBits: 6})

		engine.Submit(job0)
		engine.Submit(job1)

		out0, ok := recvWithin(sink0, time.Second)
		Expect(ok).To(BeTrue())
		Expect(out0.Err).NotTo(BeNil())
		Expect(out0.Err.Kind).To(Equal(wire.BadRequest))

		out1, ok := recvWithin(sink1, time.Second)
		Expect(ok).To(BeTrue())
		Expect(out1.Err).NotTo(BeNil())
		Expect(out1.Err.Kind).To(Equal(wire.BadRequest))
	})

	It("pairs two matching requests and delivers authenticated Beaver triples (scenario 1)", func() {
		engine := newEngine()
		rid := newRequestID()
		req := wire.DealerRequest{NTriples: 10}

		job0, sink0 := pairing.NewJob(rid, wire.Party0, req)
		job1, sink1 := pairing.NewJob(rid, wire.Party1, req)

		engine.Submit(job1)
		engine.Submit(job0)

		out0, ok := recvWithin(sink0, time.Second)
		Expect(ok).To(BeTrue())
		Expect(out0.Err).To(BeNil())
		Expect(out0.Response.BeaverTriples.A).To(HaveLen(10))

		out1, ok := recvWithin(sink1, time.Second)
		Expect(ok).To(BeTrue())
		Expect(out1.Err).To(BeNil())

		var macKey scalar.Scalar
		macKey.Add(out0.Response.MacKeyShare, out1.Response.MacKeyShare)

		aVals := checkAuthenticated(macKey, out0.Response.BeaverTriples.A, out1.Response.BeaverTriples.A)
		bVals := checkAuthenticated(macKey, out0.Response.BeaverTriples.B, out1.Response.BeaverTriples.B)
		cVals := checkAuthenticated(macKey, out0.Response.BeaverTriples.C, out1.Response.BeaverTriples.C)
		for i := range aVals {
			var product scalar.Scalar
			product.Mul(aVals[i], bVals[i])
			Expect(product.Eq(cVals[i])).To(BeTrue())
		}
	})

	It("cross-links input masks between the two parties (scenario 4)", func() {
		engine := newEngine()
		rid := newRequestID()
		req := wire.DealerRequest{NInputMasks: 4}

		job0, sink0 := pairing.NewJob(rid, wire.Party0, req)
		job1, sink1 := pairing.NewJob(rid, wire.Party1, req)

		engine.Submit(job0)
		engine.Submit(job1)

		out0, _ := recvWithin(sink0, time.Second)
		out1, _ := recvWithin(sink1, time.Second)

		var macKey scalar.Scalar
		macKey.Add(out0.Response.MacKeyShare, out1.Response.MacKeyShare)

		recoveredA := checkAuthenticated(macKey, out0.Response.InputMasks.OwnShares, out1.Response.InputMasks.CounterpartyShares)
		for i := range recoveredA {
			Expect(recoveredA[i].Eq(out0.Response.InputMasks.Cleartext[i])).To(BeTrue())
		}

		recoveredB := checkAuthenticated(macKey, out1.Response.InputMasks.OwnShares, out0.Response.InputMasks.CounterpartyShares)
		for i := range recoveredB {
			Expect(recoveredB[i].Eq(out1.Response.InputMasks.Cleartext[i])).To(BeTrue())
		}
	})

	It("delivers complete responses to both parties when party 1 arrives first", func() {
		engine := newEngine()
		rid := newRequestID()
		req := wire.DealerRequest{NRandomValues: 2}

		job1, sink1 := pairing.NewJob(rid, wire.Party1, req)
		job0, sink0 := pairing.NewJob(rid, wire.Party0, req)

		engine.Submit(job1)
		engine.Submit(job0)

		out0, ok := recvWithin(sink0, time.Second)
		Expect(ok).To(BeTrue())
		out1, ok := recvWithin(sink1, time.Second)
		Expect(ok).To(BeTrue())

		Expect(out0.Response.RandomValues).To(HaveLen(2))
		Expect(out1.Response.RandomValues).To(HaveLen(2))
	})

	It("sweeps stale unpaired requests past a TTL (OQ3)", func() {
		engine := newEngine()
		rid := newRequestID()
		job0, sink0 := pairing.NewJob(rid, wire.Party0, wire.DealerRequest{NTriples: 1})
		engine.Submit(job0)

		swept := engine.Sweep(0)
		Expect(swept).To(Equal(1))
		Expect(engine.Pending()).To(Equal(0))

		out0, ok := recvWithin(sink0, time.Second)
		Expect(ok).To(BeTrue())
		Expect(out0.Err).NotTo(BeNil())
	})
})
