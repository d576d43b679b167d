package availability

// Roster maps each respondent name to the set of slots they declared.
type Roster struct {
	people map[string]map[SlotID]struct{}
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{people: make(map[string]map[SlotID]struct{})}
}

// Record marks name as available for id. Recording the same pair twice is a
// no-op. Names are compared exactly.
func (r *Roster) Record(name string, id SlotID) {
	set, ok := r.people[name]
	if !ok {
		set = make(map[SlotID]struct{})
		r.people[name] = set
	}
	set[id] = struct{}{}
}

// Available reports whether name declared id.
func (r *Roster) Available(name string, id SlotID) bool {
	_, ok := r.people[name][id]
	return ok
}

// Names returns every recorded name in no particular order.
func (r *Roster) Names() []string {
	out := make([]string, 0, len(r.people))
	for name := range r.people {
		out = append(out, name)
	}
	return out
}

// Len returns the number of distinct people.
func (r *Roster) Len() int {
	return len(r.people)
}
