package scoring

import "testing"

func TestClassifyDimension(t *testing.T) {
	tests := []struct {
		percentage float64
		want       Level
	}{
		{0, LevelCritical},
		{25, LevelCritical},
		{32.9, LevelCritical},
		{33, LevelNeedsImprovement},
		{49.99, LevelNeedsImprovement},
		{50, LevelModerate},
		{66.9, LevelModerate},
		{67, LevelGood},
		{82.9, LevelGood},
		{83, LevelExcellent},
		{100, LevelExcellent},
	}

	for _, tt := range tests {
		got := ClassifyDimension(tt.percentage)
		if got != tt.want {
			t.Errorf("ClassifyDimension(%.2f) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestClassifyOverall(t *testing.T) {
	tests := []struct {
		percentage float64
		want       Level
	}{
		{0, LevelCritical},
		{25, LevelCritical},
		{30.9, LevelCritical},
		{31, LevelNeedsImprovement},
		{47.9, LevelNeedsImprovement}, // raw 23/48
		{50, LevelModerate},           // raw 24/48
		{64.9, LevelModerate},
		{65, LevelGood},
		{80.9, LevelGood},
		{81, LevelExcellent},
		{100, LevelExcellent},
	}

	for _, tt := range tests {
		got := ClassifyOverall(tt.percentage)
		if got != tt.want {
			t.Errorf("ClassifyOverall(%.2f) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestLevelDisplayNames(t *testing.T) {
	for _, l := range AllLevels() {
		if l.DisplayName() == "" {
			t.Errorf("level %q has empty display name", l)
		}
	}
}
