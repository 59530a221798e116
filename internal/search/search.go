// Package search filters lists of items by a free-text query.
package search

import (
	"strings"
	"unicode"
)

// Match is an item that passed the filter. Index is its position in the
// unfiltered list, so a selected match maps back to the original item.
type Match struct {
	Index int
	Item  Item
}

// Filter returns the items whose FilterValue contains query as a
// case-insensitive substring, in their original order.
// An empty query matches everything.
func Filter[T Item](items []T, query string) []Match {
	needle := normalize(query)
	matches := make([]Match, 0, len(items))
	for i, item := range items {
		if needle == "" || strings.Contains(normalize(item.FilterValue()), needle) {
			matches = append(matches, Match{Index: i, Item: item})
		}
	}
	return matches
}

// normalize lowercases s for comparison.
func normalize(s string) string {
	return strings.Map(unicode.ToLower, s)
}
