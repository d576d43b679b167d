package availability

import (
	"iter"
	"regexp"
	"strconv"
)

// segmentPattern matches one German availability segment, e.g.
// "19:00 - 21:30, Dienstag, 12.08.". The English half of a line uses other
// weekday and month words and never matches.
var segmentPattern = regexp.MustCompile(
	`(\d{2}):(\d{2})\s*-\s*(\d{2}):(\d{2}),\s*(Dienstag|Freitag|Samstag|Tag des Herrn),\s*(\d{1,2})\.(\d{2})\.`,
)

// Match is one extracted segment. Numbers are parsed but never range checked,
// so "25:99" comes through as hour 25, minute 99.
type Match struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
	Weekday     string
	Day         int
	Month       int
}

// Extract yields every German segment found in blob, left to right.
func Extract(blob string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for _, m := range segmentPattern.FindAllStringSubmatch(blob, -1) {
			if !yield(newMatch(m)) {
				return
			}
		}
	}
}

// HasSegment reports whether blob contains at least one German segment.
func HasSegment(blob string) bool {
	return segmentPattern.MatchString(blob)
}

func newMatch(groups []string) Match {
	return Match{
		StartHour:   atoi(groups[1]),
		StartMinute: atoi(groups[2]),
		EndHour:     atoi(groups[3]),
		EndMinute:   atoi(groups[4]),
		Weekday:     groups[5],
		Day:         atoi(groups[6]),
		Month:       atoi(groups[7]),
	}
}

// atoi parses a capture group. The pattern only captures ASCII digits, so
// the error path is unreachable.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
