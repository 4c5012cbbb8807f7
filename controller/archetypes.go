package controller

import (
	"sort"

	"github.com/Matthewduffy23/Club-View/model"
)

// Marker shapes for the secondary archetype flags. Diamond beats square when
// a player earns both.
const (
	MarkerCircle  = "circle"
	MarkerSquare  = "square"
	MarkerDiamond = "diamond"
)

type archetypeFlag struct {
	score     string
	threshold float64
	marker    string
}

type archetypeConfig struct {
	xScore    string
	yScore    string
	groups    map[string]map[string]float64
	classify  func(scores map[string]float64) string
	flags     []archetypeFlag
	quadrants [4]string // top-left, top-right, bottom-left, bottom-right
	xLabel    string
	yLabel    string
}

var ballCarrierWeights = map[string]float64{
	"Dribbles per 90":         0.4,
	"Successful dribbles, %":  0.1,
	"Progressive runs per 90": 0.3,
	"Accelerations per 90":    0.2,
}

func quadClassify(x, y string, both, yOnly, xOnly string) func(map[string]float64) string {
	return func(s map[string]float64) string {
		switch {
		case s[y] >= 50 && s[x] >= 50:
			return both
		case s[y] >= 50:
			return yOnly
		case s[x] >= 50:
			return xOnly
		default:
			return "Limited"
		}
	}
}

var archetypeConfigs = map[model.PositionGroup]archetypeConfig{
	model.GroupCB: {
		xScore: "poss_score",
		yScore: "def_score",
		groups: map[string]map[string]float64{
			"def_score": {
				"Defensive duels per 90": 0.1,
				"Defensive duels won, %": 0.3,
				"PAdj Interceptions":     0.2,
				"Aerial duels won, %":    0.3,
				"Shots blocked per 90":   0.1,
			},
			"poss_score": {
				"Passes per 90":             0.1,
				"Forward passes per 90":     0.1,
				"Progressive passes per 90": 0.25,
				"Dribbles per 90":           0.1,
				"Progressive runs per 90":   0.2,
				"Accurate passes, %":        0.15,
				"Accurate long passes, %":   0.1,
			},
			"carry_score": ballCarrierWeights,
		},
		classify:  quadClassify("poss_score", "def_score", "Complete", "Box-Defender", "Ball Player"),
		flags:     []archetypeFlag{{score: "carry_score", threshold: 70, marker: MarkerSquare}},
		quadrants: [4]string{"BOX-DEFENDER", "COMPLETE", "LIMITED", "BALL PLAYER"},
		xLabel:    "Possession Score",
		yLabel:    "Defensive Score",
	},
	model.GroupFB: {
		xScore: "poss_score",
		yScore: "def_score",
		groups: map[string]map[string]float64{
			"def_score": {
				"Defensive duels per 90": 0.4,
				"Defensive duels won, %": 0.3,
				"PAdj Interceptions":     0.2,
				"Shots blocked per 90":   0.1,
			},
			"poss_score": {
				"Passes per 90":                 0.1,
				"Crosses per 90":                0.1,
				"Forward passes per 90":         0.1,
				"Progressive passes per 90":     0.2,
				"xA per 90":                     0.1,
				"Dribbles per 90":               0.1,
				"Progressive runs per 90":       0.2,
				"Passes to penalty area per 90": 0.1,
			},
			"carry_score": ballCarrierWeights,
		},
		classify:  quadClassify("poss_score", "def_score", "Two-Way", "Lockdown", "Build-Up"),
		flags:     []archetypeFlag{{score: "carry_score", threshold: 70, marker: MarkerSquare}},
		quadrants: [4]string{"LOCKDOWN", "COMPLETE", "LIMITED", "BUILD UP/ATTACKING"},
		xLabel:    "Possession Score",
		yLabel:    "Defensive Score",
	},
	model.GroupCM: {
		xScore: "poss_score",
		yScore: "def_score",
		groups: map[string]map[string]float64{
			"def_score": {
				"Defensive duels per 90": 0.4,
				"Defensive duels won, %": 0.3,
				"PAdj Interceptions":     0.2,
				"Shots blocked per 90":   0.1,
			},
			"poss_score": {
				"Passes per 90":                 0.2,
				"Accurate passes, %":            0.1,
				"Forward passes per 90":         0.2,
				"Progressive passes per 90":     0.2,
				"xA per 90":                     0.1,
				"Key passes per 90":             0.1,
				"Passes to penalty area per 90": 0.1,
			},
			"carry_score": ballCarrierWeights,
			"boxing_score": {
				"xG per 90":                0.3,
				"Non-penalty goals per 90": 0.4,
				"Touches in box per 90":    0.3,
			},
		},
		classify: quadClassify("poss_score", "def_score", "All Action", "Destroyer", "Playmaker"),
		flags: []archetypeFlag{
			{score: "carry_score", threshold: 70, marker: MarkerSquare},
			{score: "boxing_score", threshold: 80, marker: MarkerDiamond},
		},
		quadrants: [4]string{"DESTROYER", "ALL ACTION", "LIMITED", "PLAYMAKER"},
		xLabel:    "Possession Score",
		yLabel:    "Defensive Score",
	},
	model.GroupATT: {
		xScore: "Threat_score",
		yScore: "poss_score",
		groups: map[string]map[string]float64{
			"Threat_score": {
				"xG per 90":                0.3,
				"Non-penalty goals per 90": 0.4,
				"xA per 90":                0.3,
			},
			"poss_score": {
				"Smart passes per 90":           0.1,
				"Dribbles per 90":               0.3,
				"Deep completions per 90":       0.1,
				"Progressive runs per 90":       0.2,
				"Passes to penalty area per 90": 0.3,
			},
			"carry_score": ballCarrierWeights,
		},
		classify:  quadClassify("Threat_score", "poss_score", "Multi-Threat", "Facilitator", "Final Action"),
		flags:     []archetypeFlag{{score: "carry_score", threshold: 70, marker: MarkerSquare}},
		quadrants: [4]string{"FACILITATOR", "MULTI-THREAT", "LIMITED", "FINAL ACTION"},
		xLabel:    "Threat Score",
		yLabel:    "Possession Score",
	},
	model.GroupCF: {
		xScore: "Threat_score",
		yScore: "poss_score",
		groups: map[string]map[string]float64{
			"Threat_score": {
				"xG per 90":                0.4,
				"Non-penalty goals per 90": 0.6,
			},
			"poss_score": {
				"xA per 90":                     0.2,
				"Dribbles per 90":               0.3,
				"Aerial duels won, %":           0.1,
				"Progressive runs per 90":       0.2,
				"Accurate passes, %":            0.1,
				"Passes to penalty area per 90": 0.1,
			},
			"carry_score": {
				"Dribbles per 90":         0.5,
				"Successful dribbles, %":  0.05,
				"Progressive runs per 90": 0.45,
			},
		},
		classify:  quadClassify("Threat_score", "poss_score", "Complete", "Link-Up", "Poacher"),
		flags:     []archetypeFlag{{score: "carry_score", threshold: 70, marker: MarkerSquare}},
		quadrants: [4]string{"LINK-UP", "COMPLETE", "LIMITED", "POACHER"},
		xLabel:    "Threat Score",
		yLabel:    "Possession Score",
	},
	model.GroupGK: {
		xScore: "gk_score",
		yScore: "poss_score",
		groups: map[string]map[string]float64{
			"gk_score": {
				"Prevented goals per 90": 0.8,
				"Save rate, %":           0.2,
			},
			"poss_score": {
				"Passes per 90":           0.25,
				"Accurate passes, %":      0.5,
				"Accurate long passes, %": 0.25,
			},
			"sweeper_score": {"Exits per 90": 1.0},
		},
		classify:  quadClassify("gk_score", "poss_score", "Complete", "Ball Player", "Shot Stopper"),
		quadrants: [4]string{"BALL PLAYER", "COMPLETE", "LIMITED", "SHOT STOPPER"},
		flags:     []archetypeFlag{{score: "sweeper_score", threshold: 70, marker: MarkerSquare}},
		xLabel:    "Goalkeeping Score",
		yLabel:    "Possession Score",
	},
}

func (c *controller) ArchetypeMap(group model.PositionGroup, minAge, maxAge int) (*model.ArchetypeMap, error) {
	cfg, ok := archetypeConfigs[group]
	if !ok {
		return nil, ErrNoChartData
	}

	var pool []int
	for i := range c.rows {
		row := &c.rows[i]
		if row.Group != group {
			continue
		}
		if row.Age < minAge || row.Age > maxAge {
			continue
		}
		pool = append(pool, i)
	}
	if len(pool) == 0 {
		return nil, ErrNoChartData
	}

	// Unlike the role-score pipeline, the archetype scores zero-fill missing
	// metrics so every player lands somewhere on the map.
	scores := make([]map[string]float64, len(pool))
	for i := range scores {
		scores[i] = make(map[string]float64, len(cfg.groups))
	}
	for name, weights := range cfg.groups {
		vals := weightedScores(c.rows, pool, weights)
		for i, v := range vals {
			scores[i][name] = v
		}
	}

	points := make([]model.ArchetypePoint, 0, len(pool))
	for i, idx := range pool {
		row := &c.rows[idx]

		marker := MarkerCircle
		for _, f := range cfg.flags {
			if scores[i][f.score] >= f.threshold && markerRank(f.marker) > markerRank(marker) {
				marker = f.marker
			}
		}

		points = append(points, model.ArchetypePoint{
			Player:    row.Name,
			Team:      row.Team,
			X:         scores[i][cfg.xScore],
			Y:         scores[i][cfg.yScore],
			Archetype: cfg.classify(scores[i]),
			Marker:    marker,
		})
	}

	return &model.ArchetypeMap{
		Group:     group,
		XLabel:    cfg.xLabel,
		YLabel:    cfg.yLabel,
		Quadrants: cfg.quadrants,
		Points:    points,
	}, nil
}

func markerRank(m string) int {
	switch m {
	case MarkerDiamond:
		return 2
	case MarkerSquare:
		return 1
	default:
		return 0
	}
}

// weightedScores returns the weighted percentile-rank score of each pool row
// for one metric group. Missing values count as 0.
func weightedScores(rows []model.PlayerRow, pool []int, weights map[string]float64) []float64 {
	totals := make([]float64, len(pool))
	var wsum float64
	for metric, w := range weights {
		ranks := pctRanks(rows, pool, metric)
		for i, r := range ranks {
			totals[i] += r * w
		}
		wsum += w
	}
	if wsum <= 0 {
		return totals
	}
	for i := range totals {
		totals[i] /= wsum
	}
	return totals
}

// pctRanks is an average-rank percentile over the whole pool, with missing
// values treated as 0. A pool of one gets 50.
func pctRanks(rows []model.PlayerRow, pool []int, metric string) []float64 {
	if len(pool) <= 1 {
		out := make([]float64, len(pool))
		for i := range out {
			out[i] = 50
		}
		return out
	}

	type entry struct {
		pos int
		val float64
	}
	entries := make([]entry, len(pool))
	for i, idx := range pool {
		v, _ := rows[idx].Metric(metric)
		entries[i] = entry{pos: i, val: v}
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].val < entries[b].val
	})

	out := make([]float64, len(pool))
	n := float64(len(entries))
	for i := 0; i < len(entries); {
		j := i
		for j+1 < len(entries) && entries[j+1].val == entries[i].val {
			j++
		}
		avgRank := float64(i+j+2) / 2.0
		for k := i; k <= j; k++ {
			out[entries[k].pos] = avgRank / n * 100.0
		}
		i = j + 1
	}
	return out
}
