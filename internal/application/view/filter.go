package view

import (
	"strings"
)

// Filter narrows items to those whose searchable fields contain query as a
// case-insensitive substring. An empty query returns the input unchanged.
// Order is preserved and there is no ranking; filtering twice by the same
// query yields the same result as filtering once.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
