package spaces

import "iter"

// RNG is the randomness capability Sample draws from. *math/rand/v2.Rand
// satisfies it directly.
//
// An RNG passed across many Sample calls is not synchronized internally;
// callers sharing one across goroutines own the locking.
type RNG interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
}

// Space describes a set of values of one semantic domain. It is the root
// capability every space-like type implements.
type Space[V any] interface {
	// Dim returns the number of scalar components per value. Fixed per
	// space type.
	Dim() Dim

	// Card returns the cardinality of the value set. Fixed per instance.
	Card() Card

	// Sample draws one value uniformly from the space. Spaces with no
	// uniform distribution (Naturals, an empty Discrete) panic with an
	// error matching errors.ErrUnsupportedSample or errors.ErrEmptySpace
	// rather than return a silently biased value.
	Sample(rng RNG) V
}

// BoundedSpace is a Space with known bounds and an exact membership test.
type BoundedSpace[V any] interface {
	Space[V]

	// Inf returns the infimum. The second result is false when the space
	// is unbounded below or empty.
	Inf() (V, bool)

	// Sup returns the supremum. The second result is false when the space
	// is unbounded above or empty.
	Sup() (V, bool)

	// Contains reports whether v is a member of the space. Every value
	// produced by Sample, Values, Inf, or Sup satisfies Contains.
	Contains(v V) bool
}

// FiniteSpace is a BoundedSpace whose full value set can be enumerated.
type FiniteSpace[V any] interface {
	BoundedSpace[V]

	// Values enumerates every member exactly once, ascending. The
	// sequence is restartable: each traversal yields the same values in
	// the same order, starting at Inf and ending at Sup for non-empty
	// spaces.
	Values() iter.Seq[V]
}
