package tags

// Resolv tags for hit-testing
const (
	ResolvItem = "item"
)
