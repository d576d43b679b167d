package availability

import (
	"sort"

	"golang.org/x/text/cases"
)

// sortSlots orders slots by SortKey. Equal keys fall back to the ID so the
// header does not depend on map iteration order.
func sortSlots(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		ki, kj := slots[i].SortKey(), slots[j].SortKey()
		if ki != kj {
			return ki < kj
		}
		return slots[i].ID() < slots[j].ID()
	})
}

// sortNames orders names case-insensitively, breaking ties on the exact
// string.
func sortNames(names []string) {
	// A Caser is stateful and must not be shared between goroutines.
	folder := cases.Fold()
	sort.SliceStable(names, func(i, j int) bool {
		fi, fj := folder.String(names[i]), folder.String(names[j])
		if fi != fj {
			return fi < fj
		}
		return names[i] < names[j]
	})
}
