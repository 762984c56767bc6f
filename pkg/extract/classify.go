package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// FieldKind tags which record field a candidate was classified for.
type FieldKind string

const (
	KindCompany    FieldKind = "company"
	KindStrike     FieldKind = "strike"
	KindOptionType FieldKind = "option_type"
)

// FieldCandidate is one classified reading of a fragment token. Multiple
// candidates may exist per kind; they stay ranked, not deduplicated.
type FieldCandidate struct {
	Kind       FieldKind
	Text       string
	Value      int // strike value when Kind == KindStrike
	Confidence float64
	X          int // leftmost pixel of the source fragment
}

// Candidates groups the ranked per-kind candidate lists for one image.
type Candidates struct {
	Company    []FieldCandidate
	Strike     []FieldCandidate
	OptionType []FieldCandidate
}

// strike possibly glued to its option marker, e.g. "400CE" / "6200PE"
var strikeOptionRE = regexp.MustCompile(`^([0-9]{3,6})(CE|PE)$`)

// Classify scans fragments and builds ranked candidate lists per field.
// Fragments are never mutated; a numeric-looking token may feed both the
// strike list here and the timestamp resolver separately.
func Classify(frags []Fragment, companies *CompanySet, opts Options) Candidates {
	var c Candidates
	for _, f := range frags {
		classifyCompany(&c, f, companies)
		for _, tok := range strings.Fields(f.Text) {
			classifyStrike(&c, f, tok, opts)
			classifyOption(&c, f, tok)
		}
	}
	rankCompanies(c.Company)
	rankByConfidence(c.Strike)
	rankByConfidence(c.OptionType)
	return c
}

func classifyCompany(c *Candidates, f Fragment, companies *CompanySet) {
	name, ok := companies.Match(f.Text)
	if !ok {
		// retry with the conservative text correction (digits misread
		// for letters inside a symbol)
		name, ok = companies.Match(CorrectText(f.Text))
	}
	if !ok {
		return
	}
	c.Company = append(c.Company, FieldCandidate{
		Kind: KindCompany, Text: name, Confidence: f.Confidence, X: f.Box.Min.X,
	})
}

func classifyStrike(c *Candidates, f Fragment, tok string, opts Options) {
	corrected := strings.ToUpper(CorrectNumeric(tok))
	digits := corrected
	if m := strikeOptionRE.FindStringSubmatch(corrected); m != nil {
		digits = m[1]
	}
	if !strikeTokenRE.MatchString(digits) {
		return
	}
	v := normalizeStrike(digits)
	if v < opts.StrikeMin || v > opts.StrikeMax {
		return
	}
	c.Strike = append(c.Strike, FieldCandidate{
		Kind: KindStrike, Text: strconv.Itoa(v), Value: v,
		Confidence: f.Confidence, X: f.Box.Min.X,
	})
}

// normalizeStrike handles the two-decimal price rendering: a 5-6 digit
// read ending in "00" is the strike shown with paise ("620000" -> 6200).
func normalizeStrike(digits string) int {
	v, _ := strconv.Atoi(digits)
	if len(digits) > 4 && strings.HasSuffix(digits, "00") {
		v /= 100
	}
	return v
}

func classifyOption(c *Candidates, f Fragment, tok string) {
	opt := normalizeOption(tok)
	if opt == "" {
		return
	}
	c.OptionType = append(c.OptionType, FieldCandidate{
		Kind: KindOptionType, Text: opt, Confidence: f.Confidence, X: f.Box.Min.X,
	})
}

// normalizeOption matches the CE/PE vocabulary, tolerating the common
// confusions on either character (O/G/0 for C, R for P, 3 for E).
func normalizeOption(tok string) string {
	up := strings.ToUpper(strings.TrimSpace(tok))
	if m := strikeOptionRE.FindStringSubmatch(strings.ToUpper(CorrectNumeric(up))); m != nil {
		return m[2]
	}
	if len(up) != 2 {
		return ""
	}
	first, second := up[0], up[1]
	switch first {
	case 'C', 'P':
	case 'O', 'G', '0':
		first = 'C'
	case 'R':
		first = 'P'
	default:
		return ""
	}
	switch second {
	case 'E':
	case '3':
		second = 'E'
	default:
		return ""
	}
	return string([]byte{first, second})
}

// rankCompanies orders by longest symbol, then earliest position.
func rankCompanies(cands []FieldCandidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if len(cands[i].Text) != len(cands[j].Text) {
			return len(cands[i].Text) > len(cands[j].Text)
		}
		return cands[i].X < cands[j].X
	})
}

// rankByConfidence orders by fragment confidence, then earliest position.
func rankByConfidence(cands []FieldCandidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Confidence != cands[j].Confidence {
			return cands[i].Confidence > cands[j].Confidence
		}
		return cands[i].X < cands[j].X
	})
}
