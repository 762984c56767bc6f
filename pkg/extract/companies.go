package extract

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// CompanySet is the list of known ticker symbols, loaded once per run and
// read-only afterwards (safe for concurrent use by any number of workers).
// Symbols are matched on word boundaries, longest symbol first, so a
// ticker embedded in a longer ticker never wins.
type CompanySet struct {
	patterns []companyPattern
}

type companyPattern struct {
	name string
	re   *regexp.Regexp
}

// NewCompanySet builds a set from raw symbol strings. Entries are
// trimmed and upper-cased; empty lines and duplicates are dropped.
func NewCompanySet(names []string) *CompanySet {
	seen := map[string]struct{}{}
	cs := &CompanySet{}
	for _, n := range names {
		n = strings.ToUpper(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		cs.patterns = append(cs.patterns, companyPattern{
			name: n,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(n) + `\b`),
		})
	}
	// longest first, then input order kept by stable sort
	sort.SliceStable(cs.patterns, func(i, j int) bool {
		return len(cs.patterns[i].name) > len(cs.patterns[j].name)
	})
	return cs
}

// LoadCompanySet reads one symbol per line from path.
func LoadCompanySet(path string) (*CompanySet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open company list: %w", err)
	}
	defer f.Close()
	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		names = append(names, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read company list: %w", err)
	}
	cs := NewCompanySet(names)
	if len(cs.patterns) == 0 {
		return nil, fmt.Errorf("company list %s is empty", path)
	}
	return cs, nil
}

// Len reports how many symbols are loaded.
func (cs *CompanySet) Len() int { return len(cs.patterns) }

// Match finds the longest known symbol present in text (case-insensitive,
// word-boundary). Returns the canonical symbol.
func (cs *CompanySet) Match(text string) (string, bool) {
	up := strings.ToUpper(text)
	for _, p := range cs.patterns {
		if p.re.MatchString(up) {
			return p.name, true
		}
	}
	return "", false
}
