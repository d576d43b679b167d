package availability

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want []Match
	}{
		{
			name: "German segment with English duplicate",
			blob: "19:00 - 21:30, Dienstag, 12.08. / Tuesday, August 12",
			want: []Match{{StartHour: 19, StartMinute: 0, EndHour: 21, EndMinute: 30, Weekday: "Dienstag", Day: 12, Month: 8}},
		},
		{
			name: "Sunday token with spaces",
			blob: "10:00-12:00, Tag des Herrn, 3.09. / Sunday, September 3",
			want: []Match{{StartHour: 10, StartMinute: 0, EndHour: 12, EndMinute: 0, Weekday: "Tag des Herrn", Day: 3, Month: 9}},
		},
		{
			name: "several segments in one blob",
			blob: "19:00 - 21:30, Dienstag, 12.08. / Tuesday, August 12; 18:00 - 22:00, Freitag, 15.08. / Friday, August 15; 14:00 - 18:00, Samstag, 16.08. / Saturday, August 16",
			want: []Match{
				{StartHour: 19, StartMinute: 0, EndHour: 21, EndMinute: 30, Weekday: "Dienstag", Day: 12, Month: 8},
				{StartHour: 18, StartMinute: 0, EndHour: 22, EndMinute: 0, Weekday: "Freitag", Day: 15, Month: 8},
				{StartHour: 14, StartMinute: 0, EndHour: 18, EndMinute: 0, Weekday: "Samstag", Day: 16, Month: 8},
			},
		},
		{
			name: "English only",
			blob: "19:00 - 21:30, Tuesday, August 12",
			want: nil,
		},
		{
			name: "unknown German weekday",
			blob: "19:00 - 21:30, Montag, 11.08.",
			want: nil,
		},
		{
			name: "out of range values are not validated",
			blob: "25:99 - 26:00, Freitag, 40.13.",
			want: []Match{{StartHour: 25, StartMinute: 99, EndHour: 26, EndMinute: 0, Weekday: "Freitag", Day: 40, Month: 13}},
		},
		{
			name: "header text",
			blob: "Verfügbarkeit / Availability",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Extract(tt.blob))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) > 0, HasSegment(tt.blob))
		})
	}
}

func TestExtract_StopsEarly(t *testing.T) {
	blob := "19:00 - 21:30, Dienstag, 12.08.; 18:00 - 22:00, Freitag, 15.08."

	var seen []Match
	for m := range Extract(blob) {
		seen = append(seen, m)
		break
	}

	require.Len(t, seen, 1)
	assert.Equal(t, "Dienstag", seen[0].Weekday)
}
