package booking

// SlotID identifies one of the five fixed daily washing windows.
type SlotID int

// SlotStatus is derived per request, never stored.
type SlotStatus int

const (
	StatusUnavailable   SlotStatus = 0
	StatusAvailable     SlotStatus = 1
	StatusBookedByOther SlotStatus = 2
	StatusBookedByUser  SlotStatus = 3
)

// SlotHoursRange is the daily time window of one slot, in whole hours.
type SlotHoursRange struct {
	StartHour int
	EndHour   int
}

// SlotHours maps every slot id to its fixed time window. Defined at process
// start, never modified at runtime.
var SlotHours = map[SlotID]SlotHoursRange{
	0: {StartHour: 7, EndHour: 10},
	1: {StartHour: 10, EndHour: 13},
	2: {StartHour: 13, EndHour: 16},
	3: {StartHour: 16, EndHour: 19},
	4: {StartHour: 19, EndHour: 22},
}

// SlotsPerDay is the number of bookable windows each date has.
const SlotsPerDay = 5

// DaysPerWeek is the length of the booking window shown to users.
const DaysPerWeek = 7

// TakenSlots lists, per ISO date string, the slot ids occupied for one
// reason (unavailable, booked by user, booked by others). A nil map is
// treated as empty everywhere.
type TakenSlots map[string][]SlotID

// DaySlots holds the derived status of every slot of one date.
type DaySlots map[SlotID]SlotStatus

// WeekGrid is the full date-by-slot status matrix for one week, keyed by
// ISO date string. Invariant: exactly DaysPerWeek dates, each mapping every
// slot id in [0, SlotsPerDay) exactly once.
type WeekGrid map[string]DaySlots

// ValidSlotID reports whether id falls inside the fixed slot table.
func ValidSlotID(id SlotID) bool {
	_, ok := SlotHours[id]
	return ok
}
