package extract

import "testing"

func fullCandidates() Candidates {
	return Candidates{
		Company:    []FieldCandidate{{Kind: KindCompany, Text: "PFC", Confidence: 0.9}},
		Strike:     []FieldCandidate{{Kind: KindStrike, Text: "400", Value: 400, Confidence: 0.9}},
		OptionType: []FieldCandidate{{Kind: KindOptionType, Text: "PE", Confidence: 0.9}},
	}
}

func TestBuildRecordComplete(t *testing.T) {
	guess := &TimeGuess{Time: "14:35", Confidence: 0.9, Strategy: "direct"}
	rec, rej := BuildRecord("07-08-2025", fullCandidates(), guess, true)
	if rej != nil {
		t.Fatalf("unexpected rejection: %v", rej)
	}
	want := TradeRecord{Date: "07-08-2025", Company: "PFC", Strike: 400, OptionType: "PE", Time: "14:35"}
	if *rec != want {
		t.Fatalf("got %+v want %+v", *rec, want)
	}
}

func TestBuildRecordMissingFields(t *testing.T) {
	guess := &TimeGuess{Time: "14:35"}
	cases := []struct {
		name   string
		mutate func(*Candidates)
		want   RejectReason
	}{
		{"company", func(c *Candidates) { c.Company = nil }, RejectMissingCompany},
		{"strike", func(c *Candidates) { c.Strike = nil }, RejectMissingStrike},
		{"option", func(c *Candidates) { c.OptionType = nil }, RejectMissingOptionType},
	}
	for _, tc := range cases {
		c := fullCandidates()
		tc.mutate(&c)
		rec, rej := BuildRecord("07-08-2025", c, guess, true)
		if rec != nil || rej == nil || rej.Reason != tc.want {
			t.Fatalf("%s: rec=%v rej=%v", tc.name, rec, rej)
		}
	}
}

func TestBuildRecordTimestampReasons(t *testing.T) {
	if _, rej := BuildRecord("07-08-2025", fullCandidates(), nil, false); rej == nil || rej.Reason != RejectMissingTimestamp {
		t.Fatalf("expected missing timestamp, got %v", rej)
	}
	if _, rej := BuildRecord("07-08-2025", fullCandidates(), nil, true); rej == nil || rej.Reason != RejectInvalidTimestamp {
		t.Fatalf("expected invalid timestamp, got %v", rej)
	}
}

func TestStemAndFolder(t *testing.T) {
	rec := TradeRecord{Date: "07-08-2025", Company: "PFC", Strike: 400, OptionType: "PE", Time: "14:35"}
	if got := rec.Stem(); got != "07-08-2025 PFC 400 PE 14;35" {
		t.Fatalf("stem %q", got)
	}
	if got := rec.Folder(); got != "400 PE PFC" {
		t.Fatalf("folder %q", got)
	}
}
