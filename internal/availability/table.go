package availability

// NameColumn is the header of the first column.
const NameColumn = "Name"

// Table is the tabulated availability grid.
type Table struct {
	Slots  []Slot
	People []string
	// Header is NameColumn followed by one label per slot.
	Header []string
	// Rows holds one row per person: name, then "1" or "0" per slot.
	Rows [][]string
}

// Tabulate orders the registry's slots and the roster's people and builds
// the membership grid.
func Tabulate(reg *Registry, roster *Roster) *Table {
	slots := reg.Slots()
	sortSlots(slots)
	people := roster.Names()
	sortNames(people)

	header := make([]string, 0, len(slots)+1)
	header = append(header, NameColumn)
	for _, s := range slots {
		header = append(header, s.Label())
	}

	rows := make([][]string, 0, len(people))
	for _, name := range people {
		row := make([]string, 0, len(slots)+1)
		row = append(row, name)
		for _, s := range slots {
			if roster.Available(name, s.ID()) {
				row = append(row, "1")
			} else {
				row = append(row, "0")
			}
		}
		rows = append(rows, row)
	}

	return &Table{
		Slots:  slots,
		People: people,
		Header: header,
		Rows:   rows,
	}
}

// Records returns the header followed by the data rows.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, t.Header)
	out = append(out, t.Rows...)
	return out
}
