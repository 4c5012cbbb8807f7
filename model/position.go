package model

import (
	"strings"
)

// PositionGroup is the coarse role category used when ranking players against
// their peers. It is derived from the first listed position only.
type PositionGroup string

const (
	GroupGK    PositionGroup = "GK"
	GroupCB    PositionGroup = "CB"
	GroupFB    PositionGroup = "FB"
	GroupCM    PositionGroup = "CM"
	GroupATT   PositionGroup = "ATT"
	GroupCF    PositionGroup = "CF"
	GroupOther PositionGroup = "OTHER"
)

// PrimaryPosition extracts the first token of a comma-separated position
// string, e.g. "RB, RWB" -> "RB".
func PrimaryPosition(pos string) string {
	first, _, _ := strings.Cut(pos, ",")
	return strings.ToUpper(strings.TrimSpace(first))
}

var (
	cbPrefixes = []string{"LCB", "RCB", "CB"}
	fbPrefixes = []string{"RB", "RWB", "LB", "LWB"}
	cmPrefixes = []string{"LCMF", "RCMF", "LDMF", "RDMF", "DMF", "CMF"}

	attPositions = map[string]bool{
		"RW": true, "RWF": true, "RAMF": true,
		"LW": true, "LWF": true, "LAMF": true,
		"AMF": true,
	}
)

// ParsePositionGroup maps a primary position to its group. The mapping is a
// pure function of the input; anything unrecognized lands in GroupOther.
func ParsePositionGroup(primary string) PositionGroup {
	p := strings.ToUpper(strings.TrimSpace(primary))

	switch {
	case strings.HasPrefix(p, "GK"):
		return GroupGK
	case hasAnyPrefix(p, cbPrefixes):
		return GroupCB
	case hasAnyPrefix(p, fbPrefixes):
		return GroupFB
	case hasAnyPrefix(p, cmPrefixes):
		return GroupCM
	case attPositions[p]:
		return GroupATT
	case strings.HasPrefix(p, "CF"):
		return GroupCF
	default:
		return GroupOther
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// PositionTokens splits a raw position string into its distinct tokens,
// preserving order, for display as position chips.
func PositionTokens(pos string) []string {
	fields := strings.FieldsFunc(strings.ToUpper(pos), func(r rune) bool {
		return r == ',' || r == '/' || r == ';' || r == ' ' || r == '\t'
	})

	seen := make(map[string]bool)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		tokens = append(tokens, f)
	}
	return tokens
}
