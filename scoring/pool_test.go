package scoring

import (
	"reflect"
	"testing"

	"github.com/Matthewduffy23/Club-View/model"
)

func TestSelectPool(t *testing.T) {
	rows := []model.PlayerRow{
		{Name: "a", Minutes: 0},
		{Name: "b", Minutes: 500},
		{Name: "c", Minutes: 1200},
		{Name: "d", Minutes: 5000},
		{Name: "e", Minutes: 5001},
	}

	tests := map[string]struct {
		min, max float64
		expected []int
	}{
		"inclusive bounds":   {min: 500, max: 5000, expected: []int{1, 2, 3}},
		"everyone":           {min: 0, max: 10000, expected: []int{0, 1, 2, 3, 4}},
		"nobody":             {min: 6000, max: 7000, expected: []int{}},
		"zero minutes count": {min: 0, max: 100, expected: []int{0}},
		"single exact match": {min: 1200, max: 1200, expected: []int{2}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := SelectPool(rows, tc.min, tc.max)
			if !reflect.DeepEqual(tc.expected, got) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
