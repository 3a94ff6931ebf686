package spaces

import (
	"iter"

	"github.com/tessera-ai/spaces/errors"
)

// Union and Intersect combine two spaces into a descriptor whose
// cardinality follows the Card combination rules. The descriptors are
// structural: they never compute a merged or intersected value set, so
// bounds and membership are not offered. UnionCard and IntersectCard do
// the same bookkeeping across spaces of unrelated value types.

// DisjointUnion stacks two spaces over one value type side by side. Values
// are never deduplicated: the union of Discrete(3) and Discrete(4) holds
// seven values.
type DisjointUnion[V any] struct {
	left, right Space[V]
}

// Union returns the disjoint union of a and b. Operands must agree on
// dimensionality.
func Union[V any](a, b Space[V]) DisjointUnion[V] {
	mustMatchDim(a, b)
	return DisjointUnion[V]{left: a, right: b}
}

func (u DisjointUnion[V]) Dim() Dim {
	return u.left.Dim()
}

func (u DisjointUnion[V]) Card() Card {
	return u.left.Card().Union(u.right.Card())
}

// Sample draws uniformly across both operands, weighting each side by its
// cardinality. Defined only when both operands are finite and at least one
// is non-empty.
func (u DisjointUnion[V]) Sample(rng RNG) V {
	nl, lok := u.left.Card().Count()
	nr, rok := u.right.Card().Count()
	if !lok || !rok {
		panic(errors.Wrap(errors.ErrUnsupportedSample, "union with an infinite operand"))
	}
	if nl+nr == 0 {
		panic(errors.Wrap(errors.ErrEmptySpace, "sample empty union"))
	}
	if rng.IntN(nl+nr) < nl {
		return u.left.Sample(rng)
	}
	return u.right.Sample(rng)
}

// Intersection describes the intersection of two spaces over one value
// type. It carries cardinality bookkeeping only; no intersected value set
// exists to draw from, so Sample always panics.
type Intersection[V any] struct {
	left, right Space[V]
}

// Intersect returns the intersection descriptor for a and b. Operands must
// agree on dimensionality.
func Intersect[V any](a, b Space[V]) Intersection[V] {
	mustMatchDim(a, b)
	return Intersection[V]{left: a, right: b}
}

func (i Intersection[V]) Dim() Dim {
	return i.left.Dim()
}

func (i Intersection[V]) Card() Card {
	return i.left.Card().Intersect(i.right.Card())
}

// Sample panics: an intersection descriptor is metadata only.
func (i Intersection[V]) Sample(RNG) V {
	panic(errors.Wrap(errors.ErrUnsupportedSample, "intersection is metadata only"))
}

// UnionCard returns the cardinality of the disjoint union of two spaces of
// any value types.
func UnionCard[A, B any](a Space[A], b Space[B]) Card {
	return a.Card().Union(b.Card())
}

// IntersectCard returns the intersection cardinality of two spaces of any
// value types.
func IntersectCard[A, B any](a Space[A], b Space[B]) Card {
	return a.Card().Intersect(b.Card())
}

// UnionValues enumerates the literal disjoint union of two finite spaces:
// every value of a, then every value of b. Like the operand sequences, it
// is lazy and restartable.
func UnionValues[V any](a, b FiniteSpace[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range a.Values() {
			if !yield(v) {
				return
			}
		}
		for v := range b.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

func mustMatchDim[V any](a, b Space[V]) {
	if a.Dim() != b.Dim() {
		panic(errors.Wrapf(errors.ErrDimMismatch, "combining dim %d with dim %d", a.Dim(), b.Dim()))
	}
}
