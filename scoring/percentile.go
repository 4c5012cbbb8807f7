package scoring

import (
	"sort"

	"github.com/Matthewduffy23/Club-View/model"
)

// LowerBetter lists the metrics where a smaller raw value means better
// performance. Their percentiles are inverted after ranking.
var LowerBetter = map[string]bool{
	"Conceded goals per 90": true,
}

type sample struct {
	row   int
	value float64
}

// ComputePercentiles ranks each pool member's metric values and returns one
// Percentiles map per input row, parallel to rows. Rows outside the pool get
// a nil map. For every metric:
//
//   - values that are missing from a row are excluded from ranking and
//     produce no percentile for that row;
//   - a metric with no values anywhere in the pool is skipped entirely;
//   - players whose position group has at least minGroupSize pool members are
//     ranked within their group, everyone else against the whole pool;
//   - ties receive their average rank, scaled to [0, 100];
//   - lower-is-better metrics are stored as 100 minus the rank.
//
// The result is deterministic for identical inputs.
func ComputePercentiles(rows []model.PlayerRow, pool []int, metrics []string, lowerBetter map[string]bool, minGroupSize int) []model.Percentiles {
	out := make([]model.Percentiles, len(rows))
	if len(pool) == 0 {
		return out
	}
	for _, i := range pool {
		out[i] = make(model.Percentiles)
	}

	// Group membership counts use the whole pool, not just the rows that
	// have a value for any one metric.
	groupCount := make(map[model.PositionGroup]int)
	for _, i := range pool {
		groupCount[rows[i].Group]++
	}

	for _, metric := range metrics {
		all := make([]sample, 0, len(pool))
		byGroup := make(map[model.PositionGroup][]sample)
		for _, i := range pool {
			v, ok := rows[i].Metrics[metric]
			if !ok {
				continue
			}
			s := sample{row: i, value: v}
			all = append(all, s)
			g := rows[i].Group
			byGroup[g] = append(byGroup[g], s)
		}
		if len(all) == 0 {
			// Metric not tracked in this pool at all.
			continue
		}

		poolPct := rankPercentiles(all)
		groupPct := make(map[model.PositionGroup]map[int]float64, len(byGroup))
		for g, samples := range byGroup {
			groupPct[g] = rankPercentiles(samples)
		}

		for _, s := range all {
			g := rows[s.row].Group
			var pct float64
			if groupCount[g] >= minGroupSize {
				pct = groupPct[g][s.row]
			} else {
				pct = poolPct[s.row]
			}
			if lowerBetter[metric] {
				pct = 100.0 - pct
			}
			out[s.row][metric] = pct
		}
	}

	return out
}

// rankPercentiles assigns each sample its fractional rank within the slice,
// averaging tied values, scaled to [0, 100]. A single sample ranks 100.
func rankPercentiles(samples []sample) map[int]float64 {
	sorted := make([]sample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].value < sorted[j].value })

	n := len(sorted)
	out := make(map[int]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && sorted[j+1].value == sorted[i].value {
			j++
		}
		// 1-based ranks i+1 through j+1, averaged.
		avgRank := float64(i+j+2) / 2.0
		pct := avgRank / float64(n) * 100.0
		for k := i; k <= j; k++ {
			out[sorted[k].row] = pct
		}
		i = j + 1
	}
	return out
}
