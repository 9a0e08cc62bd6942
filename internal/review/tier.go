// Package review classifies precomputed resume scores for display and loads
// review documents from disk.
package review

import "talentiq/internal/model"

// Level is the three-step rating every score widget maps onto.
type Level int

const (
	LevelPoor Level = iota
	LevelFair
	LevelGood
)

func (l Level) String() string {
	switch l {
	case LevelGood:
		return "good"
	case LevelFair:
		return "fair"
	default:
		return "poor"
	}
}

// Each widget keeps its own cutoffs; they are not meant to agree.

// BadgeLevel rates the overall score badge: above 70 is strong, above 49 a
// good start.
func BadgeLevel(score int) Level {
	switch {
	case score > 70:
		return LevelGood
	case score > 49:
		return LevelFair
	default:
		return LevelPoor
	}
}

// CategoryLevel rates a per-category score in the details view.
func CategoryLevel(score int) Level {
	switch {
	case score > 69:
		return LevelGood
	case score > 39:
		return LevelFair
	default:
		return LevelPoor
	}
}

// ATSLevel rates the ATS compatibility score.
func ATSLevel(score int) Level {
	switch {
	case score > 69:
		return LevelGood
	case score > 49:
		return LevelFair
	default:
		return LevelPoor
	}
}

// BadgeLabel is the text shown on the overall score badge.
func BadgeLabel(l Level) string {
	switch l {
	case LevelGood:
		return "Strong"
	case LevelFair:
		return "Good Start"
	default:
		return "Needs Work"
	}
}

// ATSStatus names the ATS panel status icon.
func ATSStatus(l Level) string {
	switch l {
	case LevelGood:
		return "good"
	case LevelFair:
		return "warning"
	default:
		return "bad"
	}
}

// TipHeading introduces a tip's explanation.
func TipHeading(t model.TipType) string {
	if t == model.TipGood {
		return "What you did well"
	}
	return "How to improve"
}
