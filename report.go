package lesk

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes the human-readable report of r: one line per candidate
// sense with its overlapping words and count, then the chosen sense.
//
//	bank.n.01 {bank} 1
//	depository_financial_institution.n.01 {bank, deposits, mortgage} 3
//	...
//
//	Final best sense calculated:
//	Sense: depository_financial_institution.n.01
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// String returns the report written by WriteTo.
func (r *Result) String() string {
	var b strings.Builder
	for _, s := range r.Scores {
		fmt.Fprintf(&b, "%s {%s} %d\n", s.Sense, strings.Join(s.Overlap.Words, ", "), s.Overlap.Count)
	}
	fmt.Fprintf(&b, "\nFinal best sense calculated:\nSense: %s\n", r.Best)
	return b.String()
}

// Score returns the record for sense, if it was a candidate.
func (r *Result) Score(sense SenseID) (Score, bool) {
	for _, s := range r.Scores {
		if s.Sense == sense {
			return s, true
		}
	}
	return Score{}, false
}
