package scoring

// Level is the qualitative label derived from a score percentage.
type Level string

const (
	LevelCritical         Level = "critical"
	LevelNeedsImprovement Level = "needs-improvement"
	LevelModerate         Level = "moderate"
	LevelGood             Level = "good"
	LevelExcellent        Level = "excellent"
)

// AllLevels returns all levels in order from lowest to highest.
func AllLevels() []Level {
	return []Level{
		LevelCritical,
		LevelNeedsImprovement,
		LevelModerate,
		LevelGood,
		LevelExcellent,
	}
}

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelCritical:
		return "Critical"
	case LevelNeedsImprovement:
		return "Needs Improvement"
	case LevelModerate:
		return "Moderate"
	case LevelGood:
		return "Good"
	case LevelExcellent:
		return "Excellent"
	default:
		return string(l)
	}
}

// ClassifyDimension maps a dimension percentage (0-100) to a level.
// Boundaries are inclusive lower bounds: a percentage exactly on a
// breakpoint belongs to the higher band.
func ClassifyDimension(percentage float64) Level {
	switch {
	case percentage >= 83:
		return LevelExcellent
	case percentage >= 67:
		return LevelGood
	case percentage >= 50:
		return LevelModerate
	case percentage >= 33:
		return LevelNeedsImprovement
	default:
		return LevelCritical
	}
}

// ClassifyOverall maps an overall percentage (0-100) to a level. The
// breakpoints differ from the dimension scale because the overall maximum
// (48) grants finer granularity than a single dimension's 12, so integer
// point totals land cleanly on these boundaries.
func ClassifyOverall(percentage float64) Level {
	switch {
	case percentage >= 81:
		return LevelExcellent
	case percentage >= 65:
		return LevelGood
	case percentage >= 50:
		return LevelModerate
	case percentage >= 31:
		return LevelNeedsImprovement
	default:
		return LevelCritical
	}
}
