package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeGuess is the resolver's winning timestamp candidate.
type TimeGuess struct {
	Time       string // zero-padded HH:MM
	Confidence float64
	Strategy   string
}

// OCR frequently misreads the colon; accept : ; and . as separators.
var clockRE = regexp.MustCompile(`\b([0-9]{1,2})[:;.]([0-9]{2})\b`)

var (
	hourFragRE   = regexp.MustCompile(`^[0-9]{1,2}$`)
	minuteFragRE = regexp.MustCompile(`^[0-9]{2}$`)
)

type timeCand struct {
	hour, minute int
	conf         float64
	x            int
}

// ResolveTimestamp runs the strategy cascade over the fragment set. The
// first strategy yielding at least one candidate inside the trading
// window wins; strategies are never blended (chart-axis labels and the
// system clock both look like valid HH:MM, so fuzzier strategies only
// run when stricter ones found nothing usable).
//
// sawClock reports whether any syntactic clock reading existed at all,
// letting the caller distinguish a missing timestamp from an invalid one.
func ResolveTimestamp(frags []Fragment, opts Options) (guess *TimeGuess, sawClock bool) {
	strategies := []struct {
		name string
		fn   func([]Fragment, Options) []timeCand
	}{
		{"direct", directClock},
		{"corrected", correctedClock},
		{"adjacent", adjacentPair},
	}
	for _, s := range strategies {
		cands := s.fn(frags, opts)
		if len(cands) == 0 {
			continue
		}
		sawClock = true
		valid := cands[:0:0]
		for _, c := range cands {
			if inTradingWindow(c, opts) {
				valid = append(valid, c)
			}
		}
		if len(valid) == 0 {
			continue
		}
		best := pickBest(valid)
		return &TimeGuess{
			Time:       fmt.Sprintf("%02d:%02d", best.hour, best.minute),
			Confidence: best.conf,
			Strategy:   s.name,
		}, true
	}
	return nil, sawClock
}

// directClock matches HH[:;.]MM in the raw fragment text.
func directClock(frags []Fragment, _ Options) []timeCand {
	return scanClock(frags, func(s string) string { return s })
}

// correctedClock re-runs the same match after broad numeric correction,
// catching digits OCR rendered as letters ("I4:35").
func correctedClock(frags []Fragment, _ Options) []timeCand {
	return scanClock(frags, numericSweep)
}

func scanClock(frags []Fragment, prep func(string) string) []timeCand {
	var out []timeCand
	for _, f := range frags {
		for _, m := range clockRE.FindAllStringSubmatch(prep(f.Text), -1) {
			h, _ := strconv.Atoi(m[1])
			mi, _ := strconv.Atoi(m[2])
			out = append(out, timeCand{hour: h, minute: mi, conf: f.Confidence, x: f.Box.Min.X})
		}
	}
	return out
}

// adjacentPair synthesizes HH:MM from two numeric fragments the engine
// split apart ("14" then "30"). The minute fragment must sit to the right
// within the configured gap and overlap vertically.
func adjacentPair(frags []Fragment, opts Options) []timeCand {
	var out []timeCand
	for i, a := range frags {
		at := strings.TrimSpace(numericSweep(a.Text))
		if !hourFragRE.MatchString(at) {
			continue
		}
		for j, b := range frags {
			if i == j {
				continue
			}
			bt := strings.TrimSpace(numericSweep(b.Text))
			if !minuteFragRE.MatchString(bt) {
				continue
			}
			gap := b.Box.Min.X - a.Box.Max.X
			if gap < 0 || gap > opts.AdjacencyGapPx {
				continue
			}
			if !verticalOverlap(a, b) {
				continue
			}
			h, _ := strconv.Atoi(at)
			mi, _ := strconv.Atoi(bt)
			conf := a.Confidence
			if b.Confidence < conf {
				conf = b.Confidence
			}
			out = append(out, timeCand{hour: h, minute: mi, conf: conf, x: a.Box.Min.X})
		}
	}
	return out
}

func verticalOverlap(a, b Fragment) bool {
	return a.Box.Min.Y < b.Box.Max.Y && b.Box.Min.Y < a.Box.Max.Y
}

// inTradingWindow rejects readings like "71:50" outright rather than
// clamping them.
func inTradingWindow(c timeCand, opts Options) bool {
	return c.hour >= opts.HourMin && c.hour <= opts.HourMax && c.minute >= 0 && c.minute <= 59
}

// pickBest prefers the highest OCR confidence, then the leftmost reading
// (the session clock sits left of repeating chart-axis labels).
func pickBest(cands []timeCand) timeCand {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.conf > best.conf || (c.conf == best.conf && c.x < best.x) {
			best = c
		}
	}
	return best
}
