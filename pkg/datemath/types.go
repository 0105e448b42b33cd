package datemath

import "time"

// rule is one entry of the resolver table: a textual predicate and the
// date arithmetic applied when it is the first rule to match.
type rule struct {
	name    string
	matches func(expr string) bool
	resolve func(expr string, anchor time.Time) time.Time
}

// DateFormat is the output layout for resolved dates.
const DateFormat = "2006-01-02"
