package spaces

import "github.com/tessera-ai/spaces/errors"

// Naturals is the countably infinite space of non-negative integers. It is
// bounded below but not above, and is not enumerable.
type Naturals struct{}

var _ BoundedSpace[uint64] = Naturals{}

func (Naturals) Dim() Dim {
	return One
}

func (Naturals) Card() Card {
	return Infinite
}

// Sample panics: no uniform distribution exists over a countably infinite
// set, so any returned value would be silently biased. Callers needing
// draws from the naturals must bound the space first.
func (Naturals) Sample(RNG) uint64 {
	panic(errors.Wrap(errors.ErrUnsupportedSample, "Naturals has no uniform distribution"))
}

func (Naturals) Inf() (uint64, bool) {
	return 0, true
}

// Sup reports absent: the naturals are unbounded above.
func (Naturals) Sup() (uint64, bool) {
	return 0, false
}

func (Naturals) Contains(uint64) bool {
	return true
}

func (Naturals) String() string {
	return "N"
}

// MarshalJSON encodes Naturals as a zero-field unit record.
func (Naturals) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

// UnmarshalJSON accepts the unit record forms {} and []; any field is
// rejected as unknown.
func (n *Naturals) UnmarshalJSON(data []byte) error {
	return decodeUnitRecord(data, "Naturals")
}
