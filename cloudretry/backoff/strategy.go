package backoff

import (
	"crypto/rand"
	"encoding/binary"
	"iter"
	"math"
	mrand "math/rand/v2"
	"time"
)

// Strategy is a factory for retry delay sequences. Each invocation returns a
// fresh, finite sequence starting over at the first attempt, independent of
// any previously produced sequence. Concurrent retry loops must each obtain
// their own sequence; the Strategy itself is safe to share.
type Strategy func() iter.Seq[time.Duration]

// Rand is the injectable randomness source used by NewFullJitter.
// Int64N must return a uniformly distributed value in [0, n).
// *math/rand/v2.Rand satisfies this interface, so a seeded PCG source makes
// jittered sequences reproducible in tests.
type Rand interface {
	Int64N(n int64) int64
}

// NewExponential returns a Strategy producing exactly retries delays of
// delay * factor^i for i in 0..retries-1. Identical inputs always produce
// identical sequences. A retries value of zero or less produces an empty
// sequence.
func NewExponential(retries int, delay time.Duration, factor float64) Strategy {
	return func() iter.Seq[time.Duration] {
		return func(yield func(time.Duration) bool) {
			for attempt := range max(retries, 0) {
				if !yield(scale(delay, factor, attempt)) {
					return
				}
			}
		}
	}
}

// NewFullJitter returns a Strategy implementing the "Full Jitter" policy from
// the AWS architecture blog: each delay is drawn uniformly from the closed
// interval [0, min(maxDelay, delay * 2^i)]. A retries value of zero or less
// produces an empty sequence.
//
// A nil src seeds a fresh PCG source from crypto/rand for every sequence;
// pass an explicit src for deterministic output.
func NewFullJitter(retries int, delay, maxDelay time.Duration, src Rand) Strategy {
	return func() iter.Seq[time.Duration] {
		return func(yield func(time.Duration) bool) {
			seqSrc := src
			if seqSrc == nil {
				seqSrc = newSeededSource()
			}

			for attempt := range max(retries, 0) {
				bound := min(maxDelay, Exponential(delay, attempt))
				if !yield(drawInclusive(seqSrc, bound)) {
					return
				}
			}
		}
	}
}

// drawInclusive samples uniformly from the closed interval [0, bound].
func drawInclusive(src Rand, bound time.Duration) time.Duration {
	if bound <= 0 {
		return 0
	}

	n := int64(bound)
	if n < math.MaxInt64 {
		n++
	}

	return time.Duration(src.Int64N(n))
}

// newSeededSource builds a PCG source seeded from crypto/rand, falling back
// to the wall clock when the system entropy source fails. Jitter quality is
// not a security boundary here, so the fallback never blocks a retry loop.
func newSeededSource() Rand {
	var seed [16]byte

	if _, err := rand.Read(seed[:]); err != nil {
		return mrand.New(mrand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	return mrand.New(mrand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	)) // #nosec G404 -- seeded from crypto/rand; jitter is not security-sensitive
}
