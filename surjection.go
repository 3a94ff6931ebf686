package spaces

// Surjection maps every value of a source domain onto a target domain.
// Implementations must be total, deterministic, and side-effect free:
// defined for every X, and the same input always yields the same output.
//
// A space type may act as a surjection from its own value type (usually
// the identity). Mappings from additional source types onto the same space
// are expressed as separate methods adapted through SurjectionFunc, since
// one type cannot carry two MapOnto signatures.
type Surjection[X, Y any] interface {
	// MapOnto maps a value from the source domain onto the target domain.
	MapOnto(from X) Y
}

// SurjectionFunc adapts a plain function to the Surjection interface.
type SurjectionFunc[X, Y any] func(X) Y

// MapOnto calls f(from).
func (f SurjectionFunc[X, Y]) MapOnto(from X) Y {
	return f(from)
}
