// Package scoring implements the percentile and role-score pipeline: a
// minutes-bounded pool defines the comparison population, every tracked
// metric is ranked into a 0-100 percentile within that pool, and the
// percentiles are folded into named role ratings per position group.
package scoring

import (
	"github.com/Matthewduffy23/Club-View/model"
)

// DefaultMinGroupSize is the smallest position-group pool that still ranks
// players against their own group. Smaller groups fall back to the full pool.
const DefaultMinGroupSize = 5

// SelectPool returns the indices of rows whose minutes-played falls inside
// the inclusive [minMinutes, maxMinutes] range. Rows without a minutes value
// carry 0 from the dataset loader, so they are only eligible when the range
// starts at 0.
func SelectPool(rows []model.PlayerRow, minMinutes, maxMinutes float64) []int {
	pool := make([]int, 0, len(rows))
	for i := range rows {
		m := rows[i].Minutes
		if m >= minMinutes && m <= maxMinutes {
			pool = append(pool, i)
		}
	}
	return pool
}
