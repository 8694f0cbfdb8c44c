package game

import (
	"math"
	"strings"
	"testing"
)

func TestStats_AccuracyWithoutShots(t *testing.T) {
	if got := (Stats{}).Accuracy(); got != 0 {
		t.Fatalf("accuracy %.3f with no shots, want 0", got)
	}
}

func TestStats_Accuracy(t *testing.T) {
	st := Stats{Shots: 8, Hits: 2}
	if got := st.Accuracy(); got != 25 {
		t.Fatalf("accuracy %.3f, want 25", got)
	}
}

func TestReport_Lines(t *testing.T) {
	r := Report("abc", 130, 65, Stats{Shots: 4, Hits: 1, Kills: 1, Distance: 812.4})
	for _, want := range []string{
		"session  abc",
		"survived 2.0s (130 ticks)",
		"kills    1",
		"accuracy 25.000",
		"distance 812",
	} {
		if !strings.Contains(r, want) {
			t.Fatalf("report missing %q:\n%s", want, r)
		}
	}
}

func TestStats_Score(t *testing.T) {
	if got := (Stats{}).Score(0, 65); got != 0 {
		t.Fatalf("score with no ticks %.2f, want 0", got)
	}
	// 50% accuracy, 10 kills/min, survived a full minute: 20 + 20 + 20.
	st := Stats{Shots: 20, Hits: 10, Kills: 10}
	if got := st.Score(60*65, 65); math.Abs(got-60) > 1e-9 {
		t.Fatalf("score %.3f, want 60", got)
	}
	perfect := Stats{Shots: 100, Hits: 100, Kills: 100}
	if got := perfect.Score(65*60*2, 65); got != 100 {
		t.Fatalf("capped score %.3f, want 100", got)
	}
}

func TestLetterGrade(t *testing.T) {
	cases := map[float64]string{100: "A+", 85: "A", 70: "B", 60: "C", 50: "D", 0: "F"}
	for score, want := range cases {
		if got := LetterGrade(score); got != want {
			t.Fatalf("LetterGrade(%.0f)=%s, want %s", score, got, want)
		}
	}
}
