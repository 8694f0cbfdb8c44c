package game

import (
	"fmt"
	"math"
	"strings"
)

// Score weights: accuracy, kill rate and survival time add up to 100.
const (
	scoreAccuracyWeight = 40
	scoreKillWeight     = 40
	scoreSurvivalWeight = 20

	fullKillsPerMinute = 20.0
	fullSurvivalSecs   = 60.0
)

// Stats are the per-session counters. They only grow until the next reset.
type Stats struct {
	Shots    int
	Hits     int
	Kills    int
	Distance float64
}

// Accuracy returns hits per shot as a percentage, 0 when nothing was fired.
func (s Stats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots) * 100
}

// Score rates a session from 0 to 100 after ticks ticks at rate.
func (s Stats) Score(ticks, rate int) float64 {
	if ticks <= 0 || rate <= 0 {
		return 0
	}
	secs := float64(ticks) / float64(rate)
	kpm := float64(s.Kills) / secs * 60
	score := s.Accuracy()/100*scoreAccuracyWeight +
		math.Min(kpm/fullKillsPerMinute, 1)*scoreKillWeight +
		math.Min(secs/fullSurvivalSecs, 1)*scoreSurvivalWeight
	return math.Max(0, math.Min(score, 100))
}

// LetterGrade maps a 0-100 score to a letter.
func LetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

// Report formats a finished (or running) session as plain text, one fact per
// line. It is what the game-over screen copies to the clipboard.
func Report(id string, tick int, rate int, st Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "session  %s\n", id)
	fmt.Fprintf(&b, "survived %.1fs (%d ticks)\n", float64(tick)/float64(rate), tick)
	fmt.Fprintf(&b, "kills    %d\n", st.Kills)
	fmt.Fprintf(&b, "shots    %d\n", st.Shots)
	fmt.Fprintf(&b, "hits     %d\n", st.Hits)
	fmt.Fprintf(&b, "accuracy %.3f\n", st.Accuracy())
	fmt.Fprintf(&b, "distance %.0f\n", st.Distance)
	score := st.Score(tick, rate)
	fmt.Fprintf(&b, "grade    %s (%.1f)\n", LetterGrade(score), score)
	return b.String()
}
