package booking

// DecisionCode classifies the outcome of a book or unbook attempt against
// a grid snapshot.
type DecisionCode int

const (
	DecisionAllow DecisionCode = iota
	RejectDateOutOfRange
	RejectSlotUnavailable
	RejectAlreadyBookedByUser
	RejectBookedByOther
	RejectOneBookingPerDate
	RejectNotBookedByUser
	RejectGridInconsistent
)

// Decision is the pure outcome of the booking rules. It carries no side
// effects; persistence is the caller's job once Allowed is true.
type Decision struct {
	Code   DecisionCode
	Reason string
}

func (d Decision) Allowed() bool {
	return d.Code == DecisionAllow
}

var decisionReasons = map[DecisionCode]string{
	RejectDateOutOfRange:      "date is outside the requested week",
	RejectSlotUnavailable:     "slot unavailable",
	RejectAlreadyBookedByUser: "already booked by user",
	RejectBookedByOther:       "booked by other user",
	RejectOneBookingPerDate:   "one booking per date",
	RejectNotBookedByUser:     "not booked by user",
	RejectGridInconsistent:    "slot grid produced an unknown status",
}

func newDecision(code DecisionCode) Decision {
	return Decision{Code: code, Reason: decisionReasons[code]}
}

// CanBook validates a booking request against the grid snapshot. Checks run
// in a fixed order so the most specific rejection reason wins: unknown date,
// then the state of the requested cell, then the one-booking-per-date rule
// over the rest of that date's row.
func CanBook(grid WeekGrid, dateStr string, slotID SlotID) Decision {
	daySlots, ok := grid[dateStr]
	if !ok {
		return newDecision(RejectDateOutOfRange)
	}

	switch daySlots[slotID] {
	case StatusUnavailable:
		return newDecision(RejectSlotUnavailable)
	case StatusBookedByUser:
		return newDecision(RejectAlreadyBookedByUser)
	case StatusBookedByOther:
		return newDecision(RejectBookedByOther)
	case StatusAvailable:
		for otherSlotID, status := range daySlots {
			if otherSlotID != slotID && status == StatusBookedByUser {
				return newDecision(RejectOneBookingPerDate)
			}
		}
		return Decision{Code: DecisionAllow}
	default:
		return newDecision(RejectGridInconsistent)
	}
}

// CanUnbook allows removal only of the user's own booking. Nothing else on
// the date is inspected.
func CanUnbook(grid WeekGrid, dateStr string, slotID SlotID) Decision {
	if grid[dateStr][slotID] != StatusBookedByUser {
		return newDecision(RejectNotBookedByUser)
	}
	return Decision{Code: DecisionAllow}
}
