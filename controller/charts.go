package controller

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/Matthewduffy23/Club-View/model"
	"github.com/Matthewduffy23/Club-View/scoring"
)

// Team metrics where a smaller number is the good direction, the chart's y
// axis is drawn descending for these.
var lowerBetterTeam = map[string]bool{
	"xGA":                 true,
	"Goals Conceded":      true,
	"Goals conceded":      true,
	"Conceded goals":      true,
	"xG per shot against": true,
	"PPDA":                true,
}

var preferredTeamMetrics = []string{
	"xG", "Goals", "xG per shot", "xGA", "Goals Conceded", "Goals conceded",
	"Conceded goals", "xG per shot against", "Ball Possession (%)",
	"Ball possession", "Touches in Box", "PPDA", "Passes", "Passing %",
	"Long Passes", "Passes to Final 3rd", "Passes to final third",
}

var groupChartTitles = map[model.PositionGroup]string{
	model.GroupGK:    "Goalkeeper Performance",
	model.GroupCB:    "Center Back Performance",
	model.GroupFB:    "Full Back Performance",
	model.GroupCM:    "Central Midfield Performance",
	model.GroupATT:   "Attacker Performance",
	model.GroupCF:    "Striker Performance",
	model.GroupOther: "Player Performance",
}

func (c *controller) TeamScatter(team, xMetric, yMetric string) (*model.Scatter, error) {
	var points []model.ScatterPoint
	var xs, ys []float64

	teamName := strings.TrimSpace(team)
	for _, t := range c.teamRows {
		x, okX := t.Metrics[xMetric]
		y, okY := t.Metrics[yMetric]
		if !okX || !okY {
			continue
		}
		points = append(points, model.ScatterPoint{
			Label:     t.Team,
			X:         x,
			Y:         y,
			Highlight: strings.TrimSpace(t.Team) == teamName,
		})
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(points) == 0 {
		return nil, ErrNoChartData
	}

	return &model.Scatter{
		Title:   fmt.Sprintf("%s vs %s", xMetric, yMetric),
		XMetric: xMetric,
		YMetric: yMetric,
		XMedian: median(xs),
		YMedian: median(ys),
		InvertY: lowerBetterTeam[yMetric],
		Points:  points,
	}, nil
}

func (c *controller) PlayerScatter(team string, group model.PositionGroup, xMetric, yMetric string, minMinutes, maxMinutes float64) (*model.Scatter, error) {
	var points []model.ScatterPoint
	var xs, ys []float64

	teamName := strings.TrimSpace(team)
	for i := range c.rows {
		row := &c.rows[i]
		if row.Group != group {
			continue
		}
		if row.Minutes < minMinutes || row.Minutes > maxMinutes {
			continue
		}
		x, okX := row.Metric(xMetric)
		y, okY := row.Metric(yMetric)
		if !okX || !okY {
			continue
		}
		points = append(points, model.ScatterPoint{
			Label:     row.Name,
			X:         x,
			Y:         y,
			Highlight: strings.TrimSpace(row.Team) == teamName,
		})
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(points) == 0 {
		return nil, ErrNoChartData
	}

	return &model.Scatter{
		Title:   groupChartTitles[group],
		XMetric: xMetric,
		YMetric: yMetric,
		XMedian: median(xs),
		YMedian: median(ys),
		Points:  points,
	}, nil
}

// Fixed axis bounds for the squad structure chart.
const (
	squadProfileMaxMinutes = 3500
	squadProfileMinAge     = 16
	squadProfileMaxAge     = 40
)

func (c *controller) SquadProfile(team string, contractYear int, visaOnly bool) (*model.SquadProfile, error) {
	teamName := strings.TrimSpace(team)

	var points []model.SquadProfilePoint
	for i := range c.rows {
		row := &c.rows[i]
		if strings.TrimSpace(row.Team) != teamName {
			continue
		}
		if row.Minutes > squadProfileMaxMinutes {
			continue
		}
		if row.Age < squadProfileMinAge || row.Age > squadProfileMaxAge {
			continue
		}

		flagged := false
		if contractYear > 0 {
			if y := row.ContractYear(); y > 0 && y <= contractYear {
				flagged = true
			}
		}
		if visaOnly && normCountry(row.BirthCountry) != homeCountry {
			flagged = true
		}

		points = append(points, model.SquadProfilePoint{
			Player:  row.Name,
			Age:     float64(row.Age),
			Minutes: row.Minutes,
			Flagged: flagged,
		})
	}
	if len(points) == 0 {
		return nil, ErrNoChartData
	}

	return &model.SquadProfile{Team: teamName, Points: points}, nil
}

// PlayerMetricNames lists the metrics offered for the player scatter: every
// role-catalog metric that at least one row actually has a value for.
func (c *controller) PlayerMetricNames() []string {
	var names []string
	for _, m := range scoring.TrackedMetrics() {
		for i := range c.rows {
			if _, ok := c.rows[i].Metric(m); ok {
				names = append(names, m)
				break
			}
		}
	}
	return names
}

// TeamMetricNames lists the team scatter metrics, preferred ordering first.
func (c *controller) TeamMetricNames() []string {
	present := make(map[string]bool)
	for _, t := range c.teamRows {
		for m := range t.Metrics {
			present[m] = true
		}
	}

	var names []string
	for _, m := range preferredTeamMetrics {
		if present[m] {
			names = append(names, m)
			delete(present, m)
		}
	}
	extras := make([]string, 0, len(present))
	for m := range present {
		extras = append(extras, m)
	}
	sort.Strings(extras)
	return append(names, extras...)
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return stat.Mean(sorted[n/2-1:n/2+1], nil)
}
