package extract

import (
	"fmt"
	"strings"
)

// TradeRecord is the validated terminal artifact: all five fields present
// and individually valid, or the record does not exist.
type TradeRecord struct {
	Date       string // operator-supplied batch date (DD-MM-YYYY)
	Company    string
	Strike     int
	OptionType string // CE or PE
	Time       string // zero-padded HH:MM
}

// Stem is the canonical filename stem. The clock separator becomes ';'
// because ':' is not filesystem-safe.
func (r TradeRecord) Stem() string {
	return fmt.Sprintf("%s %s %d %s %s",
		r.Date, r.Company, r.Strike, r.OptionType, strings.ReplaceAll(r.Time, ":", ";"))
}

// Folder is the canonical grouping folder name.
func (r TradeRecord) Folder() string {
	return fmt.Sprintf("%d %s %s", r.Strike, r.OptionType, r.Company)
}

// RejectReason identifies which field kept a record from being built.
type RejectReason string

const (
	RejectMissingCompany    RejectReason = "missing company"
	RejectMissingStrike     RejectReason = "missing strike"
	RejectMissingOptionType RejectReason = "missing option type"
	RejectMissingTimestamp  RejectReason = "missing timestamp"
	RejectInvalidTimestamp  RejectReason = "invalid timestamp"
)

// Rejection is the expected non-fault outcome for an image whose text did
// not yield a full record.
type Rejection struct {
	Reason RejectReason
}

func (r *Rejection) Error() string { return string(r.Reason) }

// BuildRecord assembles the record from the top-ranked candidate of each
// kind. Construction is all-or-nothing and deterministic: identical
// candidate sets always produce identical output.
func BuildRecord(date string, cands Candidates, guess *TimeGuess, sawClock bool) (*TradeRecord, *Rejection) {
	if len(cands.Company) == 0 {
		return nil, &Rejection{Reason: RejectMissingCompany}
	}
	if len(cands.Strike) == 0 {
		return nil, &Rejection{Reason: RejectMissingStrike}
	}
	if len(cands.OptionType) == 0 {
		return nil, &Rejection{Reason: RejectMissingOptionType}
	}
	if guess == nil {
		if sawClock {
			return nil, &Rejection{Reason: RejectInvalidTimestamp}
		}
		return nil, &Rejection{Reason: RejectMissingTimestamp}
	}
	return &TradeRecord{
		Date:       date,
		Company:    cands.Company[0].Text,
		Strike:     cands.Strike[0].Value,
		OptionType: cands.OptionType[0].Text,
		Time:       guess.Time,
	}, nil
}
