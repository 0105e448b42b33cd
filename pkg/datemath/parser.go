package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves relative date expressions ("3 days later", "next week
// monday", "next month the 5th") against an anchor date.
//
// Rules are evaluated in a fixed priority order because several patterns
// textually overlap; the first match wins. An expression matching no rule
// resolves to the anchor date itself, reported by the second return value
// so callers can log it.
type Parser struct {
	location *time.Location
	rules    []rule
}

var (
	daysLaterRe  = regexp.MustCompile(`(\d+)\s*days?\s*(later|after)`)
	weekOffsetRe = regexp.MustCompile(`the week after next|next week|(\d+)\s*weeks?`)
	dayNumberRe  = regexp.MustCompile(`(\d+)\s*(?:st|nd|rd|th)?`)
	weekdayRe    = regexp.MustCompile(`monday|tuesday|wednesday|thursday|friday|saturday|sunday`)
)

// isoWeekdays maps weekday names to the Monday=1..Sunday=7 convention used
// by the Monday-snap arithmetic.
var isoWeekdays = map[string]int{
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
	"sunday":    7,
}

// NewParser creates a date parser for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	p := &Parser{location: loc}
	p.rules = []rule{
		{
			name:    "days-later",
			matches: func(expr string) bool { return daysLaterRe.MatchString(expr) },
			resolve: p.resolveDaysLater,
		},
		{
			name:    "week-offset",
			matches: func(expr string) bool { return weekOffsetRe.MatchString(expr) },
			resolve: p.resolveWeekOffset,
		},
		{
			name:    "next-month",
			matches: func(expr string) bool { return strings.Contains(expr, "next month") },
			resolve: p.resolveNextMonth,
		},
		{
			name:    "tomorrow",
			matches: func(expr string) bool { return expr == "tomorrow" },
			resolve: func(_ string, anchor time.Time) time.Time { return anchor.AddDate(0, 0, 1) },
		},
		{
			name: "day-after-tomorrow",
			matches: func(expr string) bool {
				return expr == "day after tomorrow" || expr == "the day after tomorrow"
			},
			resolve: func(_ string, anchor time.Time) time.Time { return anchor.AddDate(0, 0, 2) },
		},
		{
			name:    "bare-weekday",
			matches: func(expr string) bool { return weekdayRe.MatchString(expr) },
			resolve: p.resolveBareWeekday,
		},
	}
	return p, nil
}

// Resolve converts a relative date expression to an absolute date at
// midnight in the parser's timezone. The anchor supplies "today"; its time
// component is discarded. The second return value is false when no rule
// matched, in which case the anchor's own date is returned.
func (p *Parser) Resolve(expression string, anchor time.Time) (time.Time, bool) {
	expr := strings.ToLower(strings.TrimSpace(expression))
	base := p.startOfDay(anchor)

	for _, r := range p.rules {
		if r.matches(expr) {
			return p.startOfDay(r.resolve(expr, base)), true
		}
	}
	return base, false
}

// ResolveDate is Resolve with the result rendered as zero-padded YYYY-MM-DD.
func (p *Parser) ResolveDate(expression string, anchor time.Time) (string, bool) {
	t, ok := p.Resolve(expression, anchor)
	return t.Format(DateFormat), ok
}

// Today returns the current date string in the parser's timezone.
func (p *Parser) Today(now time.Time) string {
	return p.startOfDay(now).Format(DateFormat)
}

// resolveDaysLater handles "<N> days later" / "<N> days after".
func (p *Parser) resolveDaysLater(expr string, anchor time.Time) time.Time {
	m := daysLaterRe.FindStringSubmatch(expr)
	days, _ := strconv.Atoi(m[1])
	return anchor.AddDate(0, 0, days)
}

// resolveWeekOffset handles "next week", "the week after next" and
// "<N> weeks", with or without an accompanying weekday name.
//
// With a weekday the anchor first snaps to the nearest future Monday
// (anchor + 8 - isoWeekday), then advances (weeks-1)*7 days, then walks to
// the target weekday within that week. Without a weekday the offset is a
// plain weeks*7 days with no Monday-snap.
func (p *Parser) resolveWeekOffset(expr string, anchor time.Time) time.Time {
	weeks := 1
	switch m := weekOffsetRe.FindStringSubmatch(expr); {
	case m[0] == "the week after next":
		weeks = 2
	case m[0] == "next week":
		weeks = 1
	case m[1] != "":
		weeks, _ = strconv.Atoi(m[1])
	}

	target, ok := p.findWeekday(expr)
	if !ok {
		return anchor.AddDate(0, 0, weeks*7)
	}

	t := anchor.AddDate(0, 0, 8-isoWeekday(anchor)+(weeks-1)*7)
	return t.AddDate(0, 0, (target+7-isoWeekday(t))%7)
}

// resolveNextMonth handles "next month", optionally with a day-of-month
// number ("next month the 5th"). No number means the first of the month.
func (p *Parser) resolveNextMonth(expr string, anchor time.Time) time.Time {
	t := anchor.AddDate(0, 1, 0)

	day := 1
	rest := strings.Replace(expr, "next month", "", 1)
	if m := dayNumberRe.FindStringSubmatch(rest); m != nil {
		day, _ = strconv.Atoi(m[1])
	}
	return time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, p.location)
}

// resolveBareWeekday advances to the nearest future-or-same occurrence of
// the named weekday (0 days when the anchor already is that weekday).
func (p *Parser) resolveBareWeekday(expr string, anchor time.Time) time.Time {
	target, _ := p.findWeekday(expr)
	return anchor.AddDate(0, 0, (target+7-isoWeekday(anchor))%7)
}

// findWeekday extracts the first weekday name in the expression as its
// Monday=1..Sunday=7 index.
func (p *Parser) findWeekday(expr string) (int, bool) {
	name := weekdayRe.FindString(expr)
	if name == "" {
		return 0, false
	}
	return isoWeekdays[name], true
}

// isoWeekday converts time.Weekday (Sunday=0) to Monday=1..Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// startOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
