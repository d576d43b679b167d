package availability

import "fmt"

// SlotID identifies a slot: "MM.DD-HH:MM-Abbr".
type SlotID string

var weekdayAbbrev = map[string]string{
	"Dienstag":      "Tue",
	"Freitag":       "Fri",
	"Samstag":       "Sat",
	"Tag des Herrn": "Sun",
}

// WeekdayAbbrev maps a German weekday token to its English abbreviation.
// Unknown tokens are returned unchanged.
func WeekdayAbbrev(token string) string {
	if abbr, ok := weekdayAbbrev[token]; ok {
		return abbr
	}
	return token
}

// Slot is one distinct availability opportunity. The end time is kept from
// the first segment that produced the slot but is not part of its identity.
type Slot struct {
	Day         int
	Month       int
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
	Weekday     string
}

func slotFromMatch(m Match) Slot {
	return Slot{
		Day:         m.Day,
		Month:       m.Month,
		StartHour:   m.StartHour,
		StartMinute: m.StartMinute,
		EndHour:     m.EndHour,
		EndMinute:   m.EndMinute,
		Weekday:     m.Weekday,
	}
}

// StartMinutes returns the start time as minutes since midnight.
func (s Slot) StartMinutes() int {
	return s.StartHour*60 + s.StartMinute
}

// EndMinutes returns the end time as minutes since midnight.
func (s Slot) EndMinutes() int {
	return s.EndHour*60 + s.EndMinute
}

// ID returns the canonical identifier, e.g. "08.12-19:00-Tue".
func (s Slot) ID() SlotID {
	return SlotID(fmt.Sprintf("%02d.%02d-%s-%s", s.Month, s.Day, s.startClock(), WeekdayAbbrev(s.Weekday)))
}

// Label returns the column header, e.g. "12.08 19:00 Tue".
func (s Slot) Label() string {
	return fmt.Sprintf("%02d.%02d %s %s", s.Day, s.Month, s.startClock(), WeekdayAbbrev(s.Weekday))
}

// SortKey orders slots by month, day and start time.
func (s Slot) SortKey() int {
	return (s.Month*31+s.Day)*1440 + s.StartMinutes()
}

func (s Slot) startClock() string {
	return fmt.Sprintf("%02d:%02d", s.StartHour, s.StartMinute)
}
