package extract

import (
	"fmt"
)

// Pipeline runs the whole per-image extraction: preprocess, OCR both
// variants, classify, resolve the timestamp, build the record. It holds
// only read-only state and may be shared across workers.
type Pipeline struct {
	Opts      Options
	Companies *CompanySet
	Det       Detector
}

func NewPipeline(opts Options, companies *CompanySet, det Detector) *Pipeline {
	return &Pipeline{Opts: opts, Companies: companies, Det: det}
}

// Result carries everything the caller reports about one image.
type Result struct {
	Record     *TradeRecord
	Rejection  *Rejection
	Fragments  []Fragment
	Strategy   string
	Confidence float64
}

// ExtractRecord processes one screenshot. A returned error is a hard
// per-image failure (unreadable file, OCR failure); a Rejection inside
// the Result is the expected outcome for an image that did not validate.
func (p *Pipeline) ExtractRecord(path, date string) (*Result, error) {
	prep, err := PrepareImage(path, p.Opts)
	if err != nil {
		return nil, err
	}
	defer prep.Cleanup()

	frags, err := p.Det.Detect(prep.Original)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	// enhanced variant supplements the original read
	if extra, err := p.Det.Detect(prep.Enhanced); err == nil {
		frags = append(frags, extra...)
	}
	if len(frags) == 0 {
		return nil, ErrNoText
	}

	cands := Classify(frags, p.Companies, p.Opts)
	guess, sawClock := ResolveTimestamp(frags, p.Opts)
	rec, rej := BuildRecord(date, cands, guess, sawClock)

	res := &Result{Record: rec, Rejection: rej, Fragments: frags}
	if guess != nil {
		res.Strategy = guess.Strategy
		res.Confidence = guess.Confidence
	}
	return res, nil
}
