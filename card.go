package spaces

import (
	"fmt"

	"github.com/tessera-ai/spaces/errors"
)

// Card describes the cardinality of a space's value set: either a finite
// count or countably infinite.
//
// Card is an immutable value type and compares structurally with ==. The
// zero value is Finite(0), the cardinality of the empty space.
type Card struct {
	infinite bool
	count    int
}

// Infinite is the cardinality of a countably infinite space.
var Infinite = Card{infinite: true}

// Finite returns the cardinality of a space holding exactly n values.
// Counts are non-negative by construction; a negative n is a caller bug.
func Finite(n int) Card {
	if n < 0 {
		panic(errors.AssertionFailedf("negative cardinality %d", n))
	}
	return Card{count: n}
}

// Count returns the number of values and true when the cardinality is
// finite.
func (c Card) Count() (int, bool) {
	return c.count, !c.infinite
}

// IsInfinite reports whether the cardinality is infinite.
func (c Card) IsInfinite() bool {
	return c.infinite
}

// Union returns the cardinality of the disjoint union of two spaces.
// Operands are stacked, never deduplicated, so finite counts add. Any
// infinite operand makes the result infinite.
func (c Card) Union(other Card) Card {
	if c.infinite || other.infinite {
		return Infinite
	}
	return Finite(c.count + other.count)
}

// Intersect returns the cardinality of the intersection of two spaces.
// This is bookkeeping over counts, not value sets: an infinite operand
// defers to the other side, and two finite operands yield the smaller
// count, an upper bound on the true intersection.
func (c Card) Intersect(other Card) Card {
	switch {
	case c.infinite:
		return other
	case other.infinite:
		return c
	case other.count < c.count:
		return other
	default:
		return c
	}
}

func (c Card) String() string {
	if c.infinite {
		return "Infinite"
	}
	return fmt.Sprintf("Finite(%d)", c.count)
}
