package spaces

// Dim counts the independent scalar components one sampled value occupies.
// A scalar space has dimensionality One.
type Dim int

// One is the dimensionality of every scalar space.
const One Dim = 1

// Many returns the dimensionality of an n-component space.
func Many(n int) Dim {
	return Dim(n)
}
