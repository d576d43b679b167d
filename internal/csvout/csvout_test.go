package csvout

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Bob Smith", want: "Bob Smith"},
		{name: "empty", in: "", want: ""},
		{name: "comma", in: "Smith, Bob", want: `"Smith, Bob"`},
		{name: "quote", in: `Ann "Annie" Lee`, want: `"Ann ""Annie"" Lee"`},
		{name: "line feed", in: "a\nb", want: "\"a\nb\""},
		{name: "carriage return", in: "a\rb", want: "\"a\rb\""},
		{name: "leading space stays bare", in: " x", want: " x"},
		{name: "backslash dot stays bare", in: `\.`, want: `\.`},
		{name: "slot label", in: "12.08 19:00 Tue", want: "12.08 19:00 Tue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Field(tt.in))
		})
	}
}

func TestWrite(t *testing.T) {
	rows := [][]string{
		{"Name", "12.08 19:00 Tue"},
		{"Smith, Bob", "1"},
		{"Ann Lee", "0"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))

	want := "Name,12.08 19:00 Tue\n\"Smith, Bob\",1\nAnn Lee,0\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, want, String(rows))
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_PropagatesError(t *testing.T) {
	err := Write(failingWriter{}, [][]string{{"Name"}})
	assert.EqualError(t, err, "disk full")
}
