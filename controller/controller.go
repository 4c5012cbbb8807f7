package controller

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/Matthewduffy23/Club-View/fotmob"
	"github.com/Matthewduffy23/Club-View/model"
)

var (
	ErrUnknownTeam = errors.New("no profile configured for team")
	ErrNoChartData = errors.New("no rows have values for the selected metrics")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Squad recomputes pool percentiles and role scores for the filter's
	// minutes range and returns the club page for the given team.
	Squad(team string, f model.SquadFilters) (*model.SquadView, error)

	// TeamScatter builds the team performance chart from the team-level
	// stats dataset, highlighting the given team.
	TeamScatter(team, xMetric, yMetric string) (*model.Scatter, error)

	// PlayerScatter builds the two-metric player comparison for one
	// position group, restricted to the given minutes range.
	PlayerScatter(team string, group model.PositionGroup, xMetric, yMetric string, minMinutes, maxMinutes float64) (*model.Scatter, error)

	// SquadProfile builds the age/minutes squad structure chart. When
	// contractYear > 0, players whose contract expires in that year or
	// earlier are flagged. When visaOnly is set, players born outside
	// China PR are flagged.
	SquadProfile(team string, contractYear int, visaOnly bool) (*model.SquadProfile, error)

	// ArchetypeMap places every player of a position group on the quadrant
	// map for that group, filtered to the age range.
	ArchetypeMap(group model.PositionGroup, minAge, maxAge int) (*model.ArchetypeMap, error)

	Teams() []string
	DefaultTeam() string
	Profile(team string) (model.TeamProfile, error)
	PlayerMetricNames() []string
	TeamMetricNames() []string

	UpdatePhotos()
	RunPeriodicPhotoUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock     clock.Clock
	fotmob    fotmob.Client
	rows      []model.PlayerRow
	teamRows  []model.TeamRow
	overrides map[string]string
}

func New(clock clock.Clock, fm fotmob.Client, rows []model.PlayerRow, teamRows []model.TeamRow, overrides map[string]string) (C, error) {
	c := &controller{
		clock:     clock,
		fotmob:    fm,
		rows:      rows,
		teamRows:  teamRows,
		overrides: overrides,
	}
	return c, nil
}

func (c *controller) Teams() []string {
	teams := make([]string, 0, len(teamProfiles))
	for name := range teamProfiles {
		teams = append(teams, name)
	}
	sort.Strings(teams)
	return teams
}

func (c *controller) DefaultTeam() string {
	return defaultTeam
}

func (c *controller) Profile(team string) (model.TeamProfile, error) {
	p, ok := teamProfiles[team]
	if !ok {
		return model.TeamProfile{}, ErrUnknownTeam
	}
	return p, nil
}
