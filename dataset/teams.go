package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Matthewduffy23/Club-View/model"
)

// LoadTeamStats reads the team-level stats CSV used by the team performance
// scatter. The Team column is required; every other column is a numeric
// feature, with non-numeric cells absent.
func LoadTeamStats(r io.Reader) ([]model.TeamRow, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading team CSV header: %w", err)
	}

	idx := indexHeader(header)
	teamIdx, ok := idx[colTeam]
	if !ok {
		return nil, fmt.Errorf("error finding required columns; team: -1")
	}

	var rows []model.TeamRow
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading team CSV row: %w", err)
		}

		team := strings.TrimSpace(field(record, teamIdx))
		if team == "" {
			continue
		}

		row := model.TeamRow{Team: team, Metrics: make(map[string]float64)}
		for i, cell := range record {
			if i == teamIdx || i >= len(header) {
				continue
			}
			if v, ok := parseNumber(cell); ok {
				row.Metrics[strings.TrimSpace(header[i])] = v
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
