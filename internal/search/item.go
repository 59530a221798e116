package search

// Item represents a searchable item.
type Item interface {
	// FilterValue returns the string to match against.
	FilterValue() string
	// DisplayText returns the string to display in results.
	DisplayText() string
}
