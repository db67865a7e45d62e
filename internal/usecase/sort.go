package usecase

import (
	"slices"
	"time"
)

// sortNewestFirst orders records by creation time, most recent first.
func sortNewestFirst[T any](records []T, createdAt func(T) time.Time) {
	slices.SortStableFunc(records, func(a, b T) int {
		return createdAt(b).Compare(createdAt(a))
	})
}
