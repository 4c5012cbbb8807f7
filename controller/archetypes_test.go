package controller

import (
	"errors"
	"testing"

	"github.com/Matthewduffy23/Club-View/model"
)

// archetypeCB fills every metric of the CB defensive and possession groups
// so missing-value tie ranks cannot distort the axis scores.
func archetypeCB(name string, age int, def, poss float64) model.PlayerRow {
	return testPlayer(name, "Beijing Guoan", "CB", age, 2000, map[string]float64{
		"Defensive duels per 90":    def,
		"Defensive duels won, %":    def,
		"PAdj Interceptions":        def,
		"Aerial duels won, %":       def,
		"Shots blocked per 90":      def,
		"Passes per 90":             poss,
		"Forward passes per 90":     poss,
		"Progressive passes per 90": poss,
		"Dribbles per 90":           poss,
		"Progressive runs per 90":   poss,
		"Accurate passes, %":        poss,
		"Accurate long passes, %":   poss,
	})
}

func TestArchetypeMap_classification(t *testing.T) {
	rows := []model.PlayerRow{
		archetypeCB("Complete CB", 26, 70, 90),
		archetypeCB("Stopper", 27, 65, 50),
		archetypeCB("Passer", 24, 30, 85),
		archetypeCB("Struggler", 29, 30, 50),
	}

	ctrl := newTestController(t, rows, nil, nil)
	m, err := ctrl.ArchetypeMap(model.GroupCB, 16, 40)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	if m.XLabel != "Possession Score" || m.YLabel != "Defensive Score" {
		t.Errorf("wrong axis labels: %s / %s", m.XLabel, m.YLabel)
	}
	if m.Quadrants != [4]string{"BOX-DEFENDER", "COMPLETE", "LIMITED", "BALL PLAYER"} {
		t.Errorf("wrong quadrant labels: %v", m.Quadrants)
	}
	if len(m.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(m.Points))
	}

	byName := make(map[string]model.ArchetypePoint)
	for _, p := range m.Points {
		byName[p.Player] = p
	}

	// The two weakest on each axis share a value, so their tie-averaged rank
	// lands at 37.5 while the top two land at 75 and 100.
	if byName["Complete CB"].Archetype != "Complete" {
		t.Errorf("expected Complete, got %s", byName["Complete CB"].Archetype)
	}
	if byName["Stopper"].Archetype != "Box-Defender" {
		t.Errorf("expected Box-Defender, got %s", byName["Stopper"].Archetype)
	}
	if byName["Passer"].Archetype != "Ball Player" {
		t.Errorf("expected Ball Player, got %s", byName["Passer"].Archetype)
	}
	if byName["Struggler"].Archetype != "Limited" {
		t.Errorf("expected Limited, got %s", byName["Struggler"].Archetype)
	}
}

func TestArchetypeMap_ageFilter(t *testing.T) {
	rows := []model.PlayerRow{
		archetypeCB("Young", 18, 60, 60),
		archetypeCB("Old", 38, 60, 60),
	}

	ctrl := newTestController(t, rows, nil, nil)
	m, err := ctrl.ArchetypeMap(model.GroupCB, 16, 30)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(m.Points) != 1 || m.Points[0].Player != "Young" {
		t.Errorf("expected only the young player, got %v", m.Points)
	}
}

func TestArchetypeMap_carrierMarker(t *testing.T) {
	carrier := testPlayer("Carrier", testTeam, "CB", 25, 2000, map[string]float64{
		"Dribbles per 90":         3.0,
		"Successful dribbles, %":  70,
		"Progressive runs per 90": 3.5,
		"Accelerations per 90":    2.0,
	})
	rows := []model.PlayerRow{carrier}
	for i := 0; i < 4; i++ {
		rows = append(rows, testPlayer("Plodder", "Beijing Guoan", "CB", 25, 2000, map[string]float64{
			"Dribbles per 90": 0.2 * float64(i),
		}))
	}

	ctrl := newTestController(t, rows, nil, nil)
	m, err := ctrl.ArchetypeMap(model.GroupCB, 16, 40)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	for _, p := range m.Points {
		want := MarkerCircle
		if p.Player == "Carrier" {
			want = MarkerSquare
		}
		if p.Marker != want {
			t.Errorf("wrong marker for %s: got %s, want %s", p.Player, p.Marker, want)
		}
	}
}

func TestArchetypeMap_singlePlayerPool(t *testing.T) {
	rows := []model.PlayerRow{archetypeCB("Lone CB", 25, 60, 60)}

	ctrl := newTestController(t, rows, nil, nil)
	m, err := ctrl.ArchetypeMap(model.GroupCB, 16, 40)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	p := m.Points[0]
	if p.X != 50 || p.Y != 50 {
		t.Errorf("a pool of one should sit at the center, got (%v, %v)", p.X, p.Y)
	}
}

func TestArchetypeMap_noConfig(t *testing.T) {
	ctrl := newTestController(t, nil, nil, nil)

	if _, err := ctrl.ArchetypeMap(model.GroupOther, 16, 40); !errors.Is(err, ErrNoChartData) {
		t.Fatalf("expected ErrNoChartData, got: %v", err)
	}
}
