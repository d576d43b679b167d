package availability

// Registry deduplicates extracted segments into slots.
type Registry struct {
	slots map[SlotID]Slot
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{slots: make(map[SlotID]Slot)}
}

// Register returns the ID of the slot m belongs to, storing the slot on
// first sight. A later segment with the same identity but a different end
// time does not replace the stored slot.
func (r *Registry) Register(m Match) SlotID {
	slot := slotFromMatch(m)
	id := slot.ID()
	if _, ok := r.slots[id]; !ok {
		r.slots[id] = slot
	}
	return id
}

// Get returns the slot registered under id.
func (r *Registry) Get(id SlotID) (Slot, bool) {
	s, ok := r.slots[id]
	return s, ok
}

// Len returns the number of distinct slots.
func (r *Registry) Len() int {
	return len(r.slots)
}

// Slots returns all registered slots in no particular order.
func (r *Registry) Slots() []Slot {
	out := make([]Slot, 0, len(r.slots))
	for _, s := range r.slots {
		out = append(out, s)
	}
	return out
}
