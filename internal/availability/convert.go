// Package availability turns a form-generated availability report into a
// person by slot grid.
//
// Each data line carries a free-text blob with German and English copies of
// the declared time slots, followed by tab-separated name fields. Only the
// German segments are read. Lines without any German segment (headers,
// stray notes) are skipped.
package availability

// Stats summarises one conversion.
type Stats struct {
	Lines    int // non-empty input lines
	Skipped  int // lines without a German segment
	Segments int // segments extracted, duplicates included
}

// Result is the outcome of a conversion.
type Result struct {
	Table *Table
	Stats Stats
}

// Converter runs the single-pass extraction over a report.
type Converter struct {
	placeholder string
}

// Option configures a Converter.
type Option func(*Converter)

// WithPlaceholderName sets the name used for lines that carry no name
// fields. Empty values are ignored.
func WithPlaceholderName(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.placeholder = name
		}
	}
}

// NewConverter creates a Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{placeholder: PlaceholderName}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert processes the whole report text.
func (c *Converter) Convert(text string) *Result {
	reg := NewRegistry()
	roster := NewRoster()
	var stats Stats

	for _, line := range SplitLines(text) {
		stats.Lines++

		fields := SplitFields(line)
		if len(fields) == 0 || !HasSegment(fields[0]) {
			stats.Skipped++
			continue
		}

		name := PersonName(fields, c.placeholder)
		for m := range Extract(fields[0]) {
			stats.Segments++
			roster.Record(name, reg.Register(m))
		}
	}

	return &Result{
		Table: Tabulate(reg, roster),
		Stats: stats,
	}
}

// Convert processes text with the default options.
func Convert(text string) *Result {
	return NewConverter().Convert(text)
}
