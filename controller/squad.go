package controller

import (
	"log"
	"sort"
	"strings"

	"github.com/Matthewduffy23/Club-View/fotmob"
	"github.com/Matthewduffy23/Club-View/model"
	"github.com/Matthewduffy23/Club-View/scoring"
)

const homeCountry = "china pr"

// DefaultFilters matches the dashboard's initial slider positions.
func DefaultFilters() model.SquadFilters {
	return model.SquadFilters{
		MinMinutes: 500,
		MaxMinutes: 5000,
		MinAge:     16,
		MaxAge:     45,
	}
}

func (c *controller) Squad(team string, f model.SquadFilters) (*model.SquadView, error) {
	profile, ok := teamProfiles[team]
	if !ok {
		return nil, ErrUnknownTeam
	}

	// The minutes range defines the comparison pool, so percentiles and role
	// scores change with it. Age and visa filters only hide cards.
	pool := scoring.SelectPool(c.rows, f.MinMinutes, f.MaxMinutes)
	pcts := scoring.ComputePercentiles(c.rows, pool, scoring.TrackedMetrics(), scoring.LowerBetter, scoring.DefaultMinGroupSize)

	photos := c.squadPhotos(profile.FotMobSquadURL)

	teamName := strings.TrimSpace(team)
	var players []model.SquadPlayer
	for i := range c.rows {
		row := &c.rows[i]
		if strings.TrimSpace(row.Team) != teamName {
			continue
		}
		if row.Minutes < f.MinMinutes || row.Minutes > f.MaxMinutes {
			continue
		}
		if row.Age < f.MinAge || row.Age > f.MaxAge {
			continue
		}
		if f.VisaOnly && normCountry(row.BirthCountry) == homeCountry {
			continue
		}

		players = append(players, model.SquadPlayer{
			Row:        *row,
			PhotoURL:   fotmob.ResolvePhoto(row.Name, photos, c.overrides),
			RoleScores: sortedRoleScores(row.Group, pcts[i]),
			Sections:   metricSections(row, pcts[i]),
		})
	}

	sort.SliceStable(players, func(a, b int) bool {
		return players[a].Row.Minutes > players[b].Row.Minutes
	})
	for i := range players {
		players[i].Rank = i + 1
	}

	return &model.SquadView{
		Profile: profile,
		Notes:   notesFor(team),
		Players: players,
		Filters: f,
		Teams:   c.Teams(),
	}, nil
}

func sortedRoleScores(g model.PositionGroup, pct model.Percentiles) []model.RoleScore {
	scores := scoring.ComputeRoleScores(g, pct)
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].Score > scores[b].Score
	})
	return scores
}

// metricSections builds the expandable per-metric panel. A line needs both a
// raw value and a computed percentile, everything else is dropped.
func metricSections(row *model.PlayerRow, pct model.Percentiles) []model.MetricSection {
	var sections []model.MetricSection
	for _, spec := range scoring.DisplaySections(row.Group) {
		var lines []model.MetricLine
		for _, pair := range spec.Metrics {
			val, ok := row.Metric(pair.Metric)
			if !ok {
				continue
			}
			p, ok := pct.Get(pair.Metric)
			if !ok {
				continue
			}
			lines = append(lines, model.MetricLine{
				Label:      pair.Label,
				Value:      val,
				Percentile: scoring.Clamp99(p),
			})
		}
		if len(lines) > 0 {
			sections = append(sections, model.MetricSection{Title: spec.Title, Rows: lines})
		}
	}
	return sections
}

func normCountry(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (c *controller) squadPhotos(squadURL string) map[string]string {
	photos, err := c.fotmob.SquadPhotos(squadURL)
	if err != nil {
		log.Printf("error fetching squad photos: %v", err)
		return map[string]string{}
	}
	return photos
}
