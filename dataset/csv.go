// Package dataset loads the player-season and team-season CSV exports into
// memory. All rows are loaded fresh per run; there is no persistence layer.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Matthewduffy23/Club-View/model"
)

// Minutes-played columns seen across exports, first match wins.
var minutesAliases = []string{"Minutes played", "Minutes Played", "Minutes", "mins", "minutes", "Min"}

var footAliases = []string{"Foot", "Preferred foot", "Preferred Foot"}

const (
	colPlayer   = "Player"
	colTeam     = "Team"
	colPosition = "Position"
	colAge      = "Age"
	colBirth    = "Birth country"
	colContract = "Contract expires"
	colLeague   = "League"
)

// LoadPlayers reads a league-wide player CSV into PlayerRows. Player and Team
// columns are required; everything else degrades gracefully. Any column that
// is not one of the known identity columns is treated as a metric: values
// that parse as numbers land in the row's Metrics map, anything else is
// simply absent for that row.
func LoadPlayers(r io.Reader) ([]model.PlayerRow, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading player CSV header: %w", err)
	}

	idx := indexHeader(header)
	playerIdx, ok := idx[colPlayer]
	teamIdx, teamOK := idx[colTeam]
	if !ok || !teamOK {
		return nil, fmt.Errorf("error finding required columns; player: %d, team: %d",
			indexOrMissing(idx, colPlayer), indexOrMissing(idx, colTeam))
	}

	positionIdx := indexOrMissing(idx, colPosition)
	ageIdx := indexOrMissing(idx, colAge)
	birthIdx := indexOrMissing(idx, colBirth)
	contractIdx := indexOrMissing(idx, colContract)
	leagueIdx := indexOrMissing(idx, colLeague)
	footIdx := firstIndex(idx, footAliases)
	minutesIdx := firstIndex(idx, minutesAliases)

	// Everything not consumed by a fixed field is a candidate metric column.
	fixed := map[int]bool{
		playerIdx: true, teamIdx: true, positionIdx: true, ageIdx: true,
		birthIdx: true, contractIdx: true, leagueIdx: true, footIdx: true,
		minutesIdx: true,
	}

	var rows []model.PlayerRow
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading player CSV row: %w", err)
		}

		position := field(record, positionIdx)
		primary := model.PrimaryPosition(position)

		row := model.PlayerRow{
			Name:            strings.TrimSpace(field(record, playerIdx)),
			Team:            strings.TrimSpace(field(record, teamIdx)),
			League:          strings.TrimSpace(field(record, leagueIdx)),
			Position:        strings.TrimSpace(position),
			PrimaryPosition: primary,
			Group:           model.ParsePositionGroup(primary),
			BirthCountry:    strings.TrimSpace(field(record, birthIdx)),
			Foot:            cleanFoot(field(record, footIdx)),
			ContractExpires: strings.TrimSpace(field(record, contractIdx)),
			Metrics:         make(map[string]float64),
		}

		if v, ok := parseNumber(field(record, ageIdx)); ok {
			row.Age = int(v)
		}
		if v, ok := parseNumber(field(record, minutesIdx)); ok {
			row.Minutes = v
		}

		for i, cell := range record {
			if fixed[i] || i >= len(header) {
				continue
			}
			if v, ok := parseNumber(cell); ok {
				row.Metrics[header[i]] = v
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

func indexOrMissing(idx map[string]int, name string) int {
	if i, ok := idx[name]; ok {
		return i
	}
	return -1
}

func firstIndex(idx map[string]int, aliases []string) int {
	for _, a := range aliases {
		if i, ok := idx[a]; ok {
			return i
		}
	}
	return -1
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// parseNumber coerces a CSV cell to a float. Empty cells and non-numeric
// markers come back as absent, never as zero.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "nan", "none", "null", "-", "—":
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func cleanFoot(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "none", "null":
		return ""
	}
	return s
}
