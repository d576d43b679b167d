package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityGrid(t *testing.T) {
	DisableColors()

	out := AvailabilityGrid(
		[]string{"Name", "12.08 19:00 Tue", "15.08 18:00 Fri"},
		[][]string{
			{"Ann Lee", "1", "0"},
			{"Bob Smith", "0", "1"},
		},
	)

	assert.Contains(t, out, "12.08 19:00 Tue")
	assert.Contains(t, out, "Ann Lee")
	assert.Contains(t, out, "Bob Smith")
	assert.Equal(t, 2, strings.Count(out, Mark))
	assert.NotContains(t, out, " 0 ")
}

func TestMessages(t *testing.T) {
	DisableColors()

	var buf bytes.Buffer
	SuccessMsg(&buf, "wrote %d rows", 3)
	WarningMsg(&buf, "skipped %d lines", 1)

	assert.Equal(t, "✓ wrote 3 rows\n⚠ skipped 1 lines\n", buf.String())
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", FormatBytes(0))
	assert.Equal(t, "2.0 kB", FormatBytes(2000))
}
