package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum())
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.Equal(t, 80.0, Sum(50, 30))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		part  float64
		whole float64
		want  float64
	}{
		{name: "overspent", part: 120, whole: 100, want: 120},
		{name: "approaching", part: 85, whole: 100, want: 85},
		{name: "zero whole", part: 50, whole: 0, want: 0},
		{name: "negative whole", part: 50, whole: -10, want: 0},
		{name: "nothing spent", part: 0, whole: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.part, tt.whole))
		})
	}
}

func TestTotals(t *testing.T) {
	totals := NewTotals()
	totals.Add("2024-02-01", 10)
	totals.Add("2024-01-15", 0.1)
	totals.Add("2024-01-15", 0.2)

	require.Equal(t, 2, totals.Len())
	assert.Equal(t, []string{"2024-01-15", "2024-02-01"}, totals.Keys())
	assert.Equal(t, 0.3, totals.Get("2024-01-15"))
	assert.Equal(t, map[string]float64{"2024-01-15": 0.3, "2024-02-01": 10}, totals.Map())
	assert.Equal(t, 0.0, totals.Get("missing"))
}
