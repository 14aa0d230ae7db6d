package requests

// BookingSlot is the body of both book and unbook requests. SlotID is a
// pointer so that a missing field is distinguishable from slot 0.
type BookingSlot struct {
	Date   string `json:"date" validate:"required"`
	SlotID *int   `json:"slot_id" validate:"required,gte=0,lte=4"`
}
