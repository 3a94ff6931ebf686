package spaces

import "iter"

// Binary is the two-valued space over booleans.
type Binary struct{}

var (
	_ FiniteSpace[bool]      = Binary{}
	_ Surjection[bool, bool] = Binary{}
)

func (Binary) Dim() Dim {
	return One
}

func (Binary) Card() Card {
	return Finite(2)
}

// Sample draws a fair coin flip.
func (Binary) Sample(rng RNG) bool {
	return rng.IntN(2) == 1
}

func (Binary) Inf() (bool, bool) {
	return false, true
}

func (Binary) Sup() (bool, bool) {
	return true, true
}

// Contains always reports true: the boolean universe is closed.
func (Binary) Contains(bool) bool {
	return true
}

// Values yields false, then true.
func (Binary) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		if !yield(false) {
			return
		}
		yield(true)
	}
}

// MapOnto is the identity surjection from booleans onto the space.
func (Binary) MapOnto(from bool) bool {
	return from
}

// MapFloat64 projects a real number onto the space by sign test: values
// strictly greater than zero map to true, zero and below map to false.
// Total by construction — every float compares to zero.
func (Binary) MapFloat64(from float64) bool {
	return from > 0.0
}

func (Binary) String() string {
	return "{0, 1}"
}

// MarshalJSON encodes Binary as a zero-field unit record.
func (Binary) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

// UnmarshalJSON accepts the unit record forms {} and []; any field is
// rejected as unknown.
func (b *Binary) UnmarshalJSON(data []byte) error {
	return decodeUnitRecord(data, "Binary")
}
