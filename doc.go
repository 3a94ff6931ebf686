// Package spaces is a small type algebra for describing the value domains
// that samplers and agents draw from: what shape a value has, how many
// values the domain holds, and where its bounds lie.
//
// The capability stack has three layers. Space is the root: every space
// reports a dimensionality and a cardinality and can draw a value from an
// injected randomness source. BoundedSpace adds infimum/supremum queries
// and an exact membership test. FiniteSpace adds full enumeration of the
// value set. Generic code should accept the weakest capability it needs.
//
// Three concrete spaces are provided: Binary (the two booleans), Discrete
// (ordinal indices 0..size), and Naturals (the countably infinite
// non-negative integers). Union and Intersect combine two spaces into a
// descriptor whose cardinality follows the disjoint-sum rules on Card.
//
// Everything here is an immutable value type with no shared state; a space
// is safe to copy and to read from any goroutine. The one sharing concern
// is the RNG passed to Sample, which is caller-owned and
// caller-synchronized.
package spaces
