// Package csvout writes rows as CSV with minimal quoting.
//
// A field is quoted only when it contains a comma, a double quote, a line
// feed or a carriage return. encoding/csv also quotes fields with a leading
// space and the literal `\.`, which would change output for such names.
package csvout

import (
	"bufio"
	"io"
	"strings"
)

// Field escapes a single field.
func Field(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Line joins one row into a CSV line without the trailing newline.
func Line(row []string) string {
	escaped := make([]string, len(row))
	for i, f := range row {
		escaped[i] = Field(f)
	}
	return strings.Join(escaped, ",")
}

// Write writes rows to w, each terminated by "\n".
func Write(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := bw.WriteString(Line(row)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders rows into a string.
func String(rows [][]string) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(Line(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
