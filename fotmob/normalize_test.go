package fotmob

import "testing"

func TestNormalize(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
	}{
		"plain":      {input: "Wang Wei", expected: "wang wei"},
		"diacritics": {input: "José Martínez", expected: "jose martinez"},
		"nordic":     {input: "Bjørn Sæter", expected: "bjrn ster"},
		"whitespace": {input: "  Felipe Silva  ", expected: "felipe silva"},
		"cjk":        {input: "韦世豪", expected: ""},
		"mixed":      {input: "Wei Shihao 韦世豪", expected: "wei shihao"},
		"empty":      {input: "", expected: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("expected '%s', got '%s'", tc.expected, got)
			}
		})
	}
}
