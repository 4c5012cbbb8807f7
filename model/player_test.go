package model

import "testing"

func TestContractYear(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{input: "2026-06-30", expected: 2026},
		{input: "30.06.2026", expected: 2026},
		{input: "June 2027", expected: 2027},
		{input: " 2025 ", expected: 2025},
		{input: "expires 12/31/2024", expected: 2024},
		{input: "1899", expected: 0},
		{input: "—", expected: 0},
		{input: "", expected: 0},
		{input: "none", expected: 0},
	}

	for _, tc := range tests {
		p := &PlayerRow{ContractExpires: tc.input}
		if a := p.ContractYear(); a != tc.expected {
			t.Errorf("input: '%s', expected: %d, got %d", tc.input, tc.expected, a)
		}
	}
}

func TestPlayerDisplayText(t *testing.T) {
	known := &PlayerRow{Age: 27, Foot: "right", ContractExpires: "2026-06-30"}
	if known.AgeText() != "27y.o." {
		t.Errorf("age text was not expected value: '%s'", known.AgeText())
	}
	if known.FootText() != "right" {
		t.Errorf("foot text was not expected value: '%s'", known.FootText())
	}
	if known.ContractYearText() != "2026" {
		t.Errorf("contract text was not expected value: '%s'", known.ContractYearText())
	}

	unknown := &PlayerRow{}
	if unknown.AgeText() != "—" {
		t.Errorf("missing age text was not expected value: '%s'", unknown.AgeText())
	}
	if unknown.FootText() != "—" {
		t.Errorf("missing foot text was not expected value: '%s'", unknown.FootText())
	}
	if unknown.ContractYearText() != "—" {
		t.Errorf("missing contract text was not expected value: '%s'", unknown.ContractYearText())
	}
}

func TestMetricPresence(t *testing.T) {
	p := &PlayerRow{Metrics: map[string]float64{"xG per 90": 0.0}}

	// A stored zero is a real value, not a missing metric.
	if v, ok := p.Metric("xG per 90"); !ok || v != 0.0 {
		t.Errorf("expected present zero value, got (%v, %v)", v, ok)
	}
	if _, ok := p.Metric("xA per 90"); ok {
		t.Error("expected metric to be absent")
	}
}
