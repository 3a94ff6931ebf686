package logger

// Standard field names for consistent structured logging across spaces
// tooling. Use these constants instead of raw strings.
const (
	// Space identity
	FieldKind = "kind"
	FieldSize = "size"
	FieldCard = "card"
	FieldDim  = "dim"

	// Sampling
	FieldSeed  = "seed"
	FieldCount = "count"

	// I/O
	FieldPath   = "path"
	FieldFormat = "format"

	// Errors and timing
	FieldError      = "error"
	FieldDurationMS = "duration_ms"
)
