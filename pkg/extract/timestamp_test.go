package extract

import (
	"image"
	"testing"
)

func TestResolveDirectSeparators(t *testing.T) {
	for _, sep := range []string{":", ";", "."} {
		frags := []Fragment{frag("14"+sep+"35", 100, 0.9)}
		guess, saw := ResolveTimestamp(frags, DefaultOptions())
		if !saw || guess == nil {
			t.Fatalf("sep %q: no guess", sep)
		}
		if guess.Time != "14:35" || guess.Strategy != "direct" {
			t.Fatalf("sep %q: got %+v", sep, guess)
		}
	}
}

func TestResolveZeroPadsHour(t *testing.T) {
	guess, _ := ResolveTimestamp([]Fragment{frag("9:05", 100, 0.9)}, DefaultOptions())
	if guess == nil || guess.Time != "09:05" {
		t.Fatalf("got %+v", guess)
	}
}

func TestResolveRejectsInvalidHour(t *testing.T) {
	guess, saw := ResolveTimestamp([]Fragment{frag("71:50", 100, 0.9)}, DefaultOptions())
	if guess != nil {
		t.Fatalf("71:50 accepted as %+v", guess)
	}
	if !saw {
		t.Fatalf("clock-like reading should report sawClock")
	}
}

func TestResolveOutsideWindowRejected(t *testing.T) {
	// syntactically fine, but before the session opens
	guess, saw := ResolveTimestamp([]Fragment{frag("08:30", 100, 0.9)}, DefaultOptions())
	if guess != nil || !saw {
		t.Fatalf("guess=%+v saw=%v", guess, saw)
	}
}

func TestResolveCorrectedStrategy(t *testing.T) {
	guess, _ := ResolveTimestamp([]Fragment{frag("I4:35", 100, 0.9)}, DefaultOptions())
	if guess == nil || guess.Time != "14:35" || guess.Strategy != "corrected" {
		t.Fatalf("got %+v", guess)
	}
}

func TestResolveAdjacentSynthesis(t *testing.T) {
	frags := []Fragment{
		{Text: "14", Box: image.Rect(100, 50, 130, 70), Confidence: 0.8},
		{Text: "30", Box: image.Rect(140, 50, 170, 70), Confidence: 0.7},
	}
	guess, _ := ResolveTimestamp(frags, DefaultOptions())
	if guess == nil || guess.Time != "14:30" || guess.Strategy != "adjacent" {
		t.Fatalf("got %+v", guess)
	}
	if guess.Confidence != 0.7 {
		t.Fatalf("expected min pair confidence, got %v", guess.Confidence)
	}
}

func TestResolveAdjacentRespectsGap(t *testing.T) {
	frags := []Fragment{
		{Text: "14", Box: image.Rect(100, 50, 130, 70), Confidence: 0.8},
		{Text: "30", Box: image.Rect(400, 50, 430, 70), Confidence: 0.7},
	}
	if guess, _ := ResolveTimestamp(frags, DefaultOptions()); guess != nil {
		t.Fatalf("distant fragments merged: %+v", guess)
	}
}

func TestResolveDirectBeatsAdjacent(t *testing.T) {
	frags := []Fragment{
		{Text: "14", Box: image.Rect(100, 50, 130, 70), Confidence: 0.9},
		{Text: "30", Box: image.Rect(140, 50, 170, 70), Confidence: 0.9},
		frag("11:15", 500, 0.4),
	}
	guess, _ := ResolveTimestamp(frags, DefaultOptions())
	if guess == nil || guess.Time != "11:15" || guess.Strategy != "direct" {
		t.Fatalf("cascade order broken: %+v", guess)
	}
}

func TestResolvePrefersConfidenceThenLeftmost(t *testing.T) {
	frags := []Fragment{
		frag("10:10", 500, 0.6),
		frag("11:11", 100, 0.9),
	}
	guess, _ := ResolveTimestamp(frags, DefaultOptions())
	if guess == nil || guess.Time != "11:11" {
		t.Fatalf("confidence ranking broken: %+v", guess)
	}

	frags = []Fragment{
		frag("10:10", 500, 0.9),
		frag("11:11", 100, 0.9),
	}
	guess, _ = ResolveTimestamp(frags, DefaultOptions())
	if guess == nil || guess.Time != "11:11" {
		t.Fatalf("leftmost tie break broken: %+v", guess)
	}
}

func TestResolveNothing(t *testing.T) {
	guess, saw := ResolveTimestamp([]Fragment{frag("hello", 0, 0.9)}, DefaultOptions())
	if guess != nil || saw {
		t.Fatalf("guess=%+v saw=%v", guess, saw)
	}
}
