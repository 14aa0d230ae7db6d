package booking

import (
	"laundryroom-service/internal/pkg/constvars"
	"time"
)

// WeekDates returns the 7 consecutive dates of the week containing target,
// shifted by offset weeks. Weeks run Monday to Sunday.
func WeekDates(target time.Time, offset int) []time.Time {
	// time.Weekday has Sunday as 0; shift so Monday is 0.
	daysSinceMonday := (int(target.Weekday()) + 6) % 7
	monday := target.AddDate(0, 0, -daysSinceMonday+7*offset)
	monday = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, target.Location())

	dates := make([]time.Time, 0, DaysPerWeek)
	for day := 0; day < DaysPerWeek; day++ {
		dates = append(dates, monday.AddDate(0, 0, day))
	}
	return dates
}

// BuildWeekGrid derives the status of every slot in the week selected by
// target and offset. Layering order is fixed: everything starts Available,
// bookings by others come first, the user's own bookings second so the user
// wins when both claim a cell, and unavailability (explicit blackouts plus
// slots whose start time has passed) is stamped last so an elapsed slot
// shows Unavailable even when booked. Inputs are never mutated; nil taken
// sets count as empty.
func BuildWeekGrid(target time.Time, offset int, unavailable, bookedByOthers, bookedByUser TakenSlots) WeekGrid {
	weekDates := WeekDates(target, offset)

	grid := make(WeekGrid, DaysPerWeek)
	for _, date := range weekDates {
		daySlots := make(DaySlots, SlotsPerDay)
		for slotID := range SlotHours {
			daySlots[slotID] = StatusAvailable
		}
		grid[date.Format(constvars.DateFormat)] = daySlots
	}

	grid = assignSlotStatuses(grid, bookedByOthers, StatusBookedByOther)
	grid = assignSlotStatuses(grid, bookedByUser, StatusBookedByUser)

	pastSlots := collectPastSlots(target, weekDates)
	combined := make(TakenSlots, len(pastSlots)+len(unavailable))
	for dateStr, slotIDs := range pastSlots {
		combined[dateStr] = append(combined[dateStr], slotIDs...)
	}
	for dateStr, slotIDs := range unavailable {
		combined[dateStr] = append(combined[dateStr], slotIDs...)
	}
	grid = assignSlotStatuses(grid, combined, StatusUnavailable)

	return grid
}

// collectPastSlots lists every slot of the week whose start instant is not
// after target. Dates beyond target's own date contribute nothing.
func collectPastSlots(target time.Time, weekDates []time.Time) TakenSlots {
	pastSlots := make(TakenSlots)
	for _, date := range weekDates {
		nextMidnight := date.AddDate(0, 0, 1)
		if !target.Before(nextMidnight) {
			// Whole date already elapsed.
			pastSlots[date.Format(constvars.DateFormat)] = allSlotIDs()
			continue
		}
		if date.After(target) {
			continue
		}
		var slotIDs []SlotID
		for slotID, hours := range SlotHours {
			slotStart := time.Date(date.Year(), date.Month(), date.Day(), hours.StartHour, 0, 0, 0, target.Location())
			if !slotStart.After(target) {
				slotIDs = append(slotIDs, slotID)
			}
		}
		if len(slotIDs) > 0 {
			pastSlots[date.Format(constvars.DateFormat)] = slotIDs
		}
	}
	return pastSlots
}

// assignSlotStatuses stamps status onto every (date, slot) named by taken,
// returning a fresh grid. Dates outside the grid and duplicate slot ids are
// ignored harmlessly.
func assignSlotStatuses(grid WeekGrid, taken TakenSlots, status SlotStatus) WeekGrid {
	result := make(WeekGrid, len(grid))
	for dateStr, daySlots := range grid {
		resultDay := make(DaySlots, len(daySlots))
		for slotID, slotStatus := range daySlots {
			resultDay[slotID] = slotStatus
		}
		result[dateStr] = resultDay
	}

	for dateStr, slotIDs := range taken {
		daySlots, ok := result[dateStr]
		if !ok {
			continue
		}
		for _, slotID := range slotIDs {
			if !ValidSlotID(slotID) {
				continue
			}
			daySlots[slotID] = status
		}
	}
	return result
}

func allSlotIDs() []SlotID {
	slotIDs := make([]SlotID, 0, SlotsPerDay)
	for slotID := SlotID(0); slotID < SlotsPerDay; slotID++ {
		slotIDs = append(slotIDs, slotID)
	}
	return slotIDs
}
