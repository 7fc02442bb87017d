// Package hours normalizes raw opening-hours configuration into flat
// schema.org OpeningHoursSpecification entries.
package hours

import (
	"github.com/aeokit/aeograph/internal/config"
	"github.com/aeokit/aeograph/internal/schema/model"
)

// Holiday policy modes.
const (
	ModeCustom  = "custom"
	ModeWeekday = "weekday"
	ModeWeekend = "weekend"
)

var weekdays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
}

var knownDays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
	model.DayPublicHoliday: true,
}

// Build applies the holiday policy to the raw slots and flattens the result.
// Output order follows input order; synthesized holiday entries are appended.
func Build(slots []config.HoursSlot, holidayEnabled bool, holidayMode string) []model.OpeningHoursSpec {
	switch {
	case !holidayEnabled:
		slots = stripHolidays(slots)
	case holidayMode == ModeWeekday:
		base := stripHolidays(slots)
		slots = append(base, weekdayHolidaySlots(base)...)
	case holidayMode == ModeWeekend:
		base := stripHolidays(slots)
		slots = append(base, config.HoursSlot{
			DayKey: model.DayPublicHoliday,
			Opens:  "10:00",
			Closes: "17:00",
		})
	}
	// ModeCustom (and anything unrecognized) passes through unchanged.

	return flatten(slots)
}

func stripHolidays(slots []config.HoursSlot) []config.HoursSlot {
	out := make([]config.HoursSlot, 0, len(slots))
	for _, s := range slots {
		if s.DayKey == model.DayPublicHoliday {
			continue
		}
		out = append(out, s)
	}
	return out
}

// weekdayHolidaySlots synthesizes one PublicHoliday slot per distinct
// (opens, closes) pair found across Monday-Friday, in order of first
// appearance. No weekday slots means no holiday slots.
func weekdayHolidaySlots(slots []config.HoursSlot) []config.HoursSlot {
	type pair struct{ opens, closes string }
	seen := map[pair]bool{}
	var out []config.HoursSlot

	add := func(opens, closes string) {
		if opens == "" || closes == "" {
			return
		}
		p := pair{opens, closes}
		if seen[p] {
			return
		}
		seen[p] = true
		out = append(out, config.HoursSlot{
			DayKey: model.DayPublicHoliday,
			Opens:  opens,
			Closes: closes,
		})
	}

	for _, s := range slots {
		if !weekdays[s.DayKey] {
			continue
		}
		if len(s.Slots) > 0 {
			for _, r := range s.Slots {
				add(r.Opens, r.Closes)
			}
			continue
		}
		add(s.Opens, s.Closes)
	}
	return out
}

// flatten expands each slot to one entry per opens/closes pair, dropping
// pairs missing either time and day keys outside the recognized set.
func flatten(slots []config.HoursSlot) []model.OpeningHoursSpec {
	var out []model.OpeningHoursSpec
	for _, s := range slots {
		if !knownDays[s.DayKey] {
			continue
		}
		ranges := s.Slots
		if len(ranges) == 0 {
			ranges = []config.HoursRange{{Opens: s.Opens, Closes: s.Closes}}
		}
		for _, r := range ranges {
			if r.Opens == "" || r.Closes == "" {
				continue
			}
			out = append(out, model.OpeningHoursSpec{
				DayOfWeek: s.DayKey,
				Opens:     r.Opens,
				Closes:    r.Closes,
			})
		}
	}
	return out
}
