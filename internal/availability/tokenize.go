package availability

import (
	"regexp"
	"strings"
)

// PlaceholderName is used for data lines that carry no name fields.
const PlaceholderName = "Unknown"

var (
	tabRunRegex    = regexp.MustCompile(`\t+`)
	lineBreakRegex = regexp.MustCompile(`\r?\n`)
	spaceRunRegex  = regexp.MustCompile(`\s+`)
)

// SplitLines splits raw input on \r?\n, trims every line and drops the empty
// ones.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range lineBreakRegex.Split(text, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// SplitFields splits a line on runs of tabs, trimming each field and
// dropping fields that end up empty.
func SplitFields(line string) []string {
	var fields []string
	for _, f := range tabRunRegex.Split(line, -1) {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

// PersonName builds the respondent name from the fields of a line. fields[0]
// is the availability blob and is ignored. With two fields the second one is
// the name; with more, the last one is the surname and everything in between
// the given and middle names. The result is trimmed with whitespace runs
// collapsed to a single space.
func PersonName(fields []string, placeholder string) string {
	var name string
	switch {
	case len(fields) < 2:
		return placeholder
	case len(fields) == 2:
		name = fields[1]
	default:
		given := strings.Join(fields[1:len(fields)-1], " ")
		name = given + " " + fields[len(fields)-1]
	}
	return normalizeName(name)
}

func normalizeName(s string) string {
	return strings.TrimSpace(spaceRunRegex.ReplaceAllString(s, " "))
}
