package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PlayerRow is one row of the player-season dataset. The identity and
// classification columns are fixed fields; every other numeric column from
// the source CSV lands in the open Metrics map. A metric missing from a row
// simply has no key - zero is a legitimate value and must not be used as a
// sentinel for "not measured".
type PlayerRow struct {
	Name            string
	Team            string
	League          string
	Position        string // raw, possibly comma-separated
	PrimaryPosition string
	Group           PositionGroup
	Age             int // 0 when unknown
	BirthCountry    string
	Foot            string
	ContractExpires string // raw value from the source, e.g. "2026-06-30"
	Minutes         float64
	Metrics         map[string]float64
}

// Metric returns the raw value for a metric and whether the row has one.
func (p *PlayerRow) Metric(name string) (float64, bool) {
	v, ok := p.Metrics[name]
	return v, ok
}

func (p *PlayerRow) AgeText() string {
	if p.Age <= 0 {
		return "—"
	}
	return fmt.Sprintf("%dy.o.", p.Age)
}

// ContractYearText extracts the four digit year from the contract expiry
// value, or a dash when there isn't one.
func (p *PlayerRow) ContractYearText() string {
	if y := p.ContractYear(); y > 0 {
		return strconv.Itoa(y)
	}
	return "—"
}

func (p *PlayerRow) ContractYear() int {
	s := strings.TrimSpace(p.ContractExpires)
	for i := 0; i+4 <= len(s); i++ {
		y, err := strconv.Atoi(s[i : i+4])
		if err == nil && y >= 1900 && y <= 2999 {
			return y
		}
	}
	return 0
}

func (p *PlayerRow) FootText() string {
	if p.Foot == "" {
		return "—"
	}
	return p.Foot
}

// Percentiles holds the computed 0-100 percentile per metric for one row.
// A missing key means the percentile was not computed for that metric, which
// is different from a computed value of 0.
type Percentiles map[string]float64

func (p Percentiles) Get(metric string) (float64, bool) {
	v, ok := p[metric]
	return v, ok
}

// RoleScore is a single named role rating, clamped to [0, 99].
type RoleScore struct {
	Role  string
	Score int
}
