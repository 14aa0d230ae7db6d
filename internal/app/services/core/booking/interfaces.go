package booking

import (
	"context"
	"laundryroom-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	GetWeekGrid(ctx context.Context, username string, offset int) (*responses.WeekSlots, error)
	BookSlot(ctx context.Context, username, dateStr string, slotID int) (*responses.BookingSlot, error)
	UnbookSlot(ctx context.Context, username, dateStr string, slotID int) (*responses.BookingSlot, error)
}

// BookingRepository reads and mutates the bookings map embedded in the user
// documents. The write operations return the number of modified documents;
// zero means the guarded update found the document in another state than the
// decision assumed.
type BookingRepository interface {
	GetBookingsByUser(ctx context.Context, username string) (TakenSlots, error)
	GetBookingsByOthers(ctx context.Context, username string) (TakenSlots, error)
	AddBooking(ctx context.Context, username, dateStr string, slotID SlotID) (modifiedCount int64, err error)
	RemoveBooking(ctx context.Context, username, dateStr string, slotID SlotID) (modifiedCount int64, err error)
	UserExists(ctx context.Context, username string) (bool, error)
}

// BlackoutRepository lists slots closed for maintenance, independent of
// bookings. May legitimately return an empty set.
type BlackoutRepository interface {
	GetUnavailableSlots(ctx context.Context) (TakenSlots, error)
}
