package responses

// WeekSlots carries the full 7x5 status grid for one week. Slot ids and
// statuses are plain ints on the wire, matching the storage encoding.
type WeekSlots struct {
	Offset int                    `json:"offset"`
	Dates  map[string]map[int]int `json:"dates"`
}

type BookingSlot struct {
	Date   string `json:"date"`
	SlotID int    `json:"slot_id"`
}
