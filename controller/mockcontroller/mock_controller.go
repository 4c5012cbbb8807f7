package mockcontroller

import (
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Matthewduffy23/Club-View/model"
)

type C struct {
	mock.Mock
}

func (c *C) Squad(team string, f model.SquadFilters) (*model.SquadView, error) {
	args := c.Called(team, f)

	var v *model.SquadView
	if args.Get(0) != nil {
		v = args.Get(0).(*model.SquadView)
	}

	return v, args.Error(1)
}

func (c *C) TeamScatter(team, xMetric, yMetric string) (*model.Scatter, error) {
	args := c.Called(team, xMetric, yMetric)

	var s *model.Scatter
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Scatter)
	}

	return s, args.Error(1)
}

func (c *C) PlayerScatter(team string, group model.PositionGroup, xMetric, yMetric string, minMinutes, maxMinutes float64) (*model.Scatter, error) {
	args := c.Called(team, group, xMetric, yMetric, minMinutes, maxMinutes)

	var s *model.Scatter
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Scatter)
	}

	return s, args.Error(1)
}

func (c *C) SquadProfile(team string, contractYear int, visaOnly bool) (*model.SquadProfile, error) {
	args := c.Called(team, contractYear, visaOnly)

	var p *model.SquadProfile
	if args.Get(0) != nil {
		p = args.Get(0).(*model.SquadProfile)
	}

	return p, args.Error(1)
}

func (c *C) ArchetypeMap(group model.PositionGroup, minAge, maxAge int) (*model.ArchetypeMap, error) {
	args := c.Called(group, minAge, maxAge)

	var m *model.ArchetypeMap
	if args.Get(0) != nil {
		m = args.Get(0).(*model.ArchetypeMap)
	}

	return m, args.Error(1)
}

func (c *C) Teams() []string {
	args := c.Called()

	var teams []string
	if args.Get(0) != nil {
		teams = args.Get(0).([]string)
	}

	return teams
}

func (c *C) DefaultTeam() string {
	args := c.Called()
	return args.String(0)
}

func (c *C) Profile(team string) (model.TeamProfile, error) {
	args := c.Called(team)

	var p model.TeamProfile
	if args.Get(0) != nil {
		p = args.Get(0).(model.TeamProfile)
	}

	return p, args.Error(1)
}

func (c *C) PlayerMetricNames() []string {
	args := c.Called()

	var names []string
	if args.Get(0) != nil {
		names = args.Get(0).([]string)
	}

	return names
}

func (c *C) TeamMetricNames() []string {
	args := c.Called()

	var names []string
	if args.Get(0) != nil {
		names = args.Get(0).([]string)
	}

	return names
}

func (c *C) UpdatePhotos() {
	c.Called()
}

func (c *C) RunPeriodicPhotoUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
