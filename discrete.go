package spaces

import (
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"

	"github.com/tessera-ai/spaces/errors"
)

// Discrete is a finite ordinal space over the integer indices 0..size.
//
// Two Discrete spaces are equal iff their sizes are equal; nothing derived
// is part of identity, and nothing derived is stored. size 0 is the legal
// empty space: it has no bounds and cannot be sampled.
type Discrete struct {
	size int
}

var (
	_ FiniteSpace[int]     = Discrete{}
	_ Surjection[int, int] = Discrete{}
)

// NewDiscrete returns the ordinal space {0, .., size-1}. A negative size
// is a caller bug and panics.
func NewDiscrete(size int) Discrete {
	if size < 0 {
		panic(errors.AssertionFailedf("discrete space with negative size %d", size))
	}
	return Discrete{size: size}
}

// Size returns the number of values in the space.
func (d Discrete) Size() int {
	return d.size
}

// Equal reports whether both spaces hold the same number of values.
func (d Discrete) Equal(other Discrete) bool {
	return d.size == other.size
}

func (d Discrete) Dim() Dim {
	return One
}

func (d Discrete) Card() Card {
	return Finite(d.size)
}

// Sample draws uniformly from [0, size). Sampling the empty space is
// undefined and panics.
func (d Discrete) Sample(rng RNG) int {
	if d.size == 0 {
		panic(errors.Wrap(errors.ErrEmptySpace, "sample Discrete(0)"))
	}
	return rng.IntN(d.size)
}

// Inf returns 0 for non-empty spaces. The empty space has no infimum.
func (d Discrete) Inf() (int, bool) {
	if d.size == 0 {
		return 0, false
	}
	return 0, true
}

// Sup returns size-1 for non-empty spaces. The empty space has no
// supremum.
func (d Discrete) Sup() (int, bool) {
	if d.size == 0 {
		return 0, false
	}
	return d.size - 1, true
}

func (d Discrete) Contains(v int) bool {
	return v >= 0 && v < d.size
}

// Values yields 0, 1, .., size-1 ascending.
func (d Discrete) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := 0; v < d.size; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// MapOnto is the identity surjection from indices onto the space.
func (d Discrete) MapOnto(from int) int {
	return from
}

func (d Discrete) String() string {
	return fmt.Sprintf("Discrete(%d)", d.size)
}

// MarshalJSON projects the space onto its one constructor parameter:
// {"size": N}. Derived state is never written to the wire.
func (d Discrete) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, `{"size":%d}`, d.size), nil
}

// UnmarshalJSON accepts the named form {"size": N} or the positional form
// [N]. Missing, duplicate, and unknown fields are structured errors
// wrapping the matching sentinel. The instance is rebuilt through
// NewDiscrete, so derived state is always reconstructed, never read.
func (d *Discrete) UnmarshalJSON(data []byte) error {
	size, err := decodeSizeRecord(data, "Discrete")
	if err != nil {
		return err
	}
	*d = NewDiscrete(size)
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML documents.
func (d Discrete) MarshalYAML() (interface{}, error) {
	return map[string]int{"size": d.size}, nil
}

// UnmarshalYAML applies the same strict single-field contract as
// UnmarshalJSON.
func (d *Discrete) UnmarshalYAML(node *yaml.Node) error {
	size, err := decodeSizeNode(node, "Discrete")
	if err != nil {
		return err
	}
	*d = NewDiscrete(size)
	return nil
}
