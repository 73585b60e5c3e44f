package tetris

import "time"

// baseScores is the line-clear award per level, indexed by rows cleared at once.
var baseScores = [...]int{0, 100, 300, 500, 800}

const (
	// LinesPerLevel is the number of cleared rows needed to advance one level.
	LinesPerLevel = 10

	// InitialFallInterval is the gravity interval of a new session.
	InitialFallInterval = 1000 * time.Millisecond
	// MinFallInterval bounds how fast gravity can get.
	MinFallInterval = 150 * time.Millisecond
	fallStep        = 50 * time.Millisecond

	// SoftDropPoints is awarded for every row of a successful manual down move.
	SoftDropPoints = 1
	// HardDropPoints is awarded for every row a hard drop travels.
	HardDropPoints = 2
)

// LineClearScore returns the points for clearing `cleared` rows at once.
// Combos above one multiply the award.
func LineClearScore(cleared, level, combo int) int {
	if cleared <= 0 {
		return 0
	}
	if cleared >= len(baseScores) {
		cleared = len(baseScores) - 1
	}

	score := baseScores[cleared] * level
	if combo > 1 {
		score *= combo
	}
	return score
}

// LevelForLines returns the level reached after clearing lines rows in total.
func LevelForLines(lines int) int {
	return lines/LinesPerLevel + 1
}

// FallInterval returns the gravity interval for level.
func FallInterval(level int) time.Duration {
	return max(MinFallInterval, time.Second-time.Duration(level)*fallStep)
}
