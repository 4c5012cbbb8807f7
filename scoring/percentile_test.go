package scoring

import (
	"math"
	"testing"

	"github.com/Matthewduffy23/Club-View/model"
)

const duelsWon = "Defensive duels won, %"

func testRow(name string, g model.PositionGroup, minutes float64, metrics map[string]float64) model.PlayerRow {
	return model.PlayerRow{
		Name:    name,
		Team:    "Test FC",
		Group:   g,
		Minutes: minutes,
		Metrics: metrics,
	}
}

func allIndices(rows []model.PlayerRow) []int {
	pool := make([]int, len(rows))
	for i := range rows {
		pool[i] = i
	}
	return pool
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputePercentilesBounds(t *testing.T) {
	rows := []model.PlayerRow{
		testRow("a", model.GroupCB, 900, map[string]float64{duelsWon: 80, "Passes per 90": 44}),
		testRow("b", model.GroupCB, 900, map[string]float64{duelsWon: 40, "Passes per 90": 61}),
		testRow("c", model.GroupFB, 900, map[string]float64{duelsWon: 60}),
		testRow("d", model.GroupFB, 900, map[string]float64{duelsWon: 70, "Passes per 90": 50}),
		testRow("e", model.GroupCM, 900, map[string]float64{duelsWon: 50}),
		testRow("f", model.GroupCM, 900, map[string]float64{duelsWon: 30}),
	}

	pcts := ComputePercentiles(rows, allIndices(rows), []string{duelsWon, "Passes per 90"}, LowerBetter, DefaultMinGroupSize)

	for i, p := range pcts {
		for metric, v := range p {
			if v < 0 || v > 100 {
				t.Errorf("row %d metric %q: percentile %f out of [0,100]", i, metric, v)
			}
		}
	}
}

// Small position groups must be ranked against the whole pool, not their own
// undersized group. This mirrors the documented scenario: two CBs in a six
// player pool with values [80,40,60,70,50,30] for one metric.
func TestComputePercentilesSmallGroupFallback(t *testing.T) {
	rows := []model.PlayerRow{
		testRow("cb1", model.GroupCB, 900, map[string]float64{duelsWon: 80}),
		testRow("cb2", model.GroupCB, 900, map[string]float64{duelsWon: 40}),
		testRow("fb1", model.GroupFB, 900, map[string]float64{duelsWon: 60}),
		testRow("fb2", model.GroupFB, 900, map[string]float64{duelsWon: 70}),
		testRow("cm1", model.GroupCM, 900, map[string]float64{duelsWon: 50}),
		testRow("cm2", model.GroupCM, 900, map[string]float64{duelsWon: 30}),
	}

	pcts := ComputePercentiles(rows, allIndices(rows), []string{duelsWon}, nil, DefaultMinGroupSize)

	// 80 is the pool maximum: rank 6 of 6.
	want80 := 6.0 / 6.0 * 100.0
	if got, ok := pcts[0].Get(duelsWon); !ok || !approx(got, want80) {
		t.Errorf("cb1: expected %f, got %f (present=%v)", want80, got, ok)
	}
	// 40 is rank 2 of 6 in the full pool. Group-only ranking would have
	// given 50; the fallback must win because the CB group has only 2
	// members.
	want40 := 2.0 / 6.0 * 100.0
	if got, ok := pcts[1].Get(duelsWon); !ok || !approx(got, want40) {
		t.Errorf("cb2: expected %f, got %f (present=%v)", want40, got, ok)
	}
	if pcts[0][duelsWon] <= pcts[1][duelsWon] {
		t.Errorf("cb1 should outrank cb2: %f vs %f", pcts[0][duelsWon], pcts[1][duelsWon])
	}
}

func TestComputePercentilesGroupRanking(t *testing.T) {
	// Five CBs (at the group threshold) plus one FB whose value would shift
	// the CB ranks if the pool leaked into the group ranking.
	rows := []model.PlayerRow{
		testRow("cb1", model.GroupCB, 900, map[string]float64{duelsWon: 10}),
		testRow("cb2", model.GroupCB, 900, map[string]float64{duelsWon: 20}),
		testRow("cb3", model.GroupCB, 900, map[string]float64{duelsWon: 30}),
		testRow("cb4", model.GroupCB, 900, map[string]float64{duelsWon: 40}),
		testRow("cb5", model.GroupCB, 900, map[string]float64{duelsWon: 50}),
		testRow("fb1", model.GroupFB, 900, map[string]float64{duelsWon: 90}),
	}

	pcts := ComputePercentiles(rows, allIndices(rows), []string{duelsWon}, nil, DefaultMinGroupSize)

	// cb5 is best of 5 CBs even though fb1 beats it in the pool.
	if got := pcts[4][duelsWon]; !approx(got, 100) {
		t.Errorf("cb5: expected 100, got %f", got)
	}
	if got := pcts[0][duelsWon]; !approx(got, 20) {
		t.Errorf("cb1: expected 20, got %f", got)
	}
	// fb1 is alone in its group, so it ranks against the full pool: 6 of 6.
	if got := pcts[5][duelsWon]; !approx(got, 100) {
		t.Errorf("fb1: expected 100, got %f", got)
	}
}

func TestComputePercentilesTiesAveraged(t *testing.T) {
	rows := []model.PlayerRow{
		testRow("a", model.GroupCB, 900, map[string]float64{duelsWon: 50}),
		testRow("b", model.GroupCB, 900, map[string]float64{duelsWon: 50}),
		testRow("c", model.GroupCB, 900, map[string]float64{duelsWon: 50}),
		testRow("d", model.GroupCB, 900, map[string]float64{duelsWon: 80}),
		testRow("e", model.GroupCB, 900, map[string]float64{duelsWon: 20}),
	}

	pcts := ComputePercentiles(rows, allIndices(rows), []string{duelsWon}, nil, DefaultMinGroupSize)

	// The three tied values hold ranks 2, 3 and 4: average 3 of 5 = 60.
	for i := 0; i < 3; i++ {
		if got := pcts[i][duelsWon]; !approx(got, 60) {
			t.Errorf("row %d: expected 60, got %f", i, got)
		}
	}
	if got := pcts[4][duelsWon]; !approx(got, 20) {
		t.Errorf("row e: expected 20, got %f", got)
	}
	if got := pcts[3][duelsWon]; !approx(got, 100) {
		t.Errorf("row d: expected 100, got %f", got)
	}
}

// A goalkeeper conceding the fewest goals must come out on top of the group
// once the lower-is-better inversion is applied, never at the bottom.
func TestComputePercentilesLowerBetterInversion(t *testing.T) {
	conceded := "Conceded goals per 90"
	rows := []model.PlayerRow{
		testRow("gk1", model.GroupGK, 900, map[string]float64{conceded: 0.5}),
		testRow("gk2", model.GroupGK, 900, map[string]float64{conceded: 1.0}),
		testRow("gk3", model.GroupGK, 900, map[string]float64{conceded: 1.3}),
		testRow("gk4", model.GroupGK, 900, map[string]float64{conceded: 1.9}),
		testRow("gk5", model.GroupGK, 900, map[string]float64{conceded: 2.4}),
	}

	pcts := ComputePercentiles(rows, allIndices(rows), []string{conceded}, LowerBetter, DefaultMinGroupSize)

	best := pcts[0][conceded]
	for i := 1; i < len(rows); i++ {
		if pcts[i][conceded] >= best {
			t.Errorf("gk%d percentile %f should be below gk1's %f", i+1, pcts[i][conceded], best)
		}
	}
	// Raw rank of the minimum is 1 of 5 = 20, inverted to 80.
	if !approx(best, 80) {
		t.Errorf("gk1: expected 80, got %f", best)
	}
	if worst := pcts[4][conceded]; !approx(worst, 0) {
		t.Errorf("gk5: expected 0, got %f", worst)
	}
}

func TestComputePercentilesMissingValues(t *testing.T) {
	rows := []model.PlayerRow{
		testRow("a", model.GroupCB, 900, map[string]float64{duelsWon: 80}),
		testRow("b", model.GroupCB, 900, map[string]float64{}), // never measured
		testRow("c", model.GroupCB, 900, map[string]float64{duelsWon: 40}),
	}

	pcts := ComputePercentiles(rows, allIndices(rows), []string{duelsWon, "Exits per 90"}, nil, DefaultMinGroupSize)

	if _, ok := pcts[1].Get(duelsWon); ok {
		t.Error("row b has no value and must not get a percentile")
	}
	// The ranking denominator only counts rows with values: a is 2 of 2.
	if got := pcts[0][duelsWon]; !approx(got, 100) {
		t.Errorf("row a: expected 100, got %f", got)
	}
	if got := pcts[2][duelsWon]; !approx(got, 50) {
		t.Errorf("row c: expected 50, got %f", got)
	}
	// A metric absent from every row is skipped, not zero-filled.
	for i, p := range pcts {
		if _, ok := p.Get("Exits per 90"); ok {
			t.Errorf("row %d: untracked metric should have no percentile", i)
		}
	}
}

func TestComputePercentilesEmptyPool(t *testing.T) {
	rows := []model.PlayerRow{
		testRow("a", model.GroupCB, 900, map[string]float64{duelsWon: 80}),
		testRow("b", model.GroupCB, 900, map[string]float64{duelsWon: 40}),
	}

	pcts := ComputePercentiles(rows, nil, []string{duelsWon}, LowerBetter, DefaultMinGroupSize)

	if len(pcts) != len(rows) {
		t.Fatalf("expected %d entries, got %d", len(rows), len(pcts))
	}
	for i, p := range pcts {
		if len(p) != 0 {
			t.Errorf("row %d: expected no percentiles for an empty pool, got %v", i, p)
		}
	}
}

func TestComputePercentilesRowsOutsidePool(t *testing.T) {
	rows := []model.PlayerRow{
		testRow("in1", model.GroupCB, 900, map[string]float64{duelsWon: 80}),
		testRow("out", model.GroupCB, 10, map[string]float64{duelsWon: 99}),
		testRow("in2", model.GroupCB, 900, map[string]float64{duelsWon: 40}),
	}

	pcts := ComputePercentiles(rows, []int{0, 2}, []string{duelsWon}, nil, DefaultMinGroupSize)

	if len(pcts[1]) != 0 {
		t.Errorf("row outside the pool must get no percentiles, got %v", pcts[1])
	}
	// The outsider's 99 must not influence in-pool ranks.
	if got := pcts[0][duelsWon]; !approx(got, 100) {
		t.Errorf("in1: expected 100, got %f", got)
	}
}

func TestComputePercentilesDeterministic(t *testing.T) {
	rows := []model.PlayerRow{
		testRow("a", model.GroupCB, 900, map[string]float64{duelsWon: 80, "Passes per 90": 30}),
		testRow("b", model.GroupFB, 900, map[string]float64{duelsWon: 40, "Passes per 90": 70}),
		testRow("c", model.GroupCM, 900, map[string]float64{duelsWon: 60}),
	}
	metrics := []string{duelsWon, "Passes per 90"}

	first := ComputePercentiles(rows, allIndices(rows), metrics, LowerBetter, DefaultMinGroupSize)
	for i := 0; i < 50; i++ {
		again := ComputePercentiles(rows, allIndices(rows), metrics, LowerBetter, DefaultMinGroupSize)
		for r := range first {
			for m, v := range first[r] {
				if again[r][m] != v {
					t.Fatalf("run %d row %d metric %q: %f != %f", i, r, m, again[r][m], v)
				}
			}
			if len(again[r]) != len(first[r]) {
				t.Fatalf("run %d row %d: key count changed", i, r)
			}
		}
	}
}
