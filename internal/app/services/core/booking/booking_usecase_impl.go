package booking

import (
	"context"
	"laundryroom-service/internal/pkg/constvars"
	"laundryroom-service/internal/pkg/dto/responses"
	"laundryroom-service/internal/pkg/exceptions"
	"time"
)

type bookingUsecase struct {
	BookingRepository  BookingRepository
	BlackoutRepository BlackoutRepository
	now                func() time.Time
}

func NewBookingUsecase(
	bookingMongoRepository BookingRepository,
	blackoutMongoRepository BlackoutRepository,
) BookingUsecase {
	return &bookingUsecase{
		BookingRepository:  bookingMongoRepository,
		BlackoutRepository: blackoutMongoRepository,
		now:                time.Now,
	}
}

func (uc *bookingUsecase) GetWeekGrid(ctx context.Context, username string, offset int) (*responses.WeekSlots, error) {
	grid, err := uc.buildGrid(ctx, username, uc.now(), offset)
	if err != nil {
		return nil, err
	}

	dates := make(map[string]map[int]int, len(grid))
	for dateStr, daySlots := range grid {
		slots := make(map[int]int, len(daySlots))
		for slotID, status := range daySlots {
			slots[int(slotID)] = int(status)
		}
		dates[dateStr] = slots
	}

	return &responses.WeekSlots{Offset: offset, Dates: dates}, nil
}

func (uc *bookingUsecase) BookSlot(ctx context.Context, username, dateStr string, slotID int) (*responses.BookingSlot, error) {
	date, err := time.Parse(constvars.DateFormat, dateStr)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	dateStr = date.Format(constvars.DateFormat)

	target := uc.now()
	grid, err := uc.buildGrid(ctx, username, target, weekOffsetBetween(target, date))
	if err != nil {
		return nil, err
	}

	decision := CanBook(grid, dateStr, SlotID(slotID))
	if !decision.Allowed() {
		return nil, decisionError(decision)
	}

	modifiedCount, err := uc.BookingRepository.AddBooking(ctx, username, dateStr, SlotID(slotID))
	if err != nil {
		return nil, err
	}
	if modifiedCount == 0 {
		// The guarded update found a booking already present: another
		// request won between the grid snapshot and the write.
		return nil, exceptions.ErrBookingLostRace(nil)
	}

	return &responses.BookingSlot{Date: dateStr, SlotID: slotID}, nil
}

func (uc *bookingUsecase) UnbookSlot(ctx context.Context, username, dateStr string, slotID int) (*responses.BookingSlot, error) {
	date, err := time.Parse(constvars.DateFormat, dateStr)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	dateStr = date.Format(constvars.DateFormat)

	target := uc.now()
	grid, err := uc.buildGrid(ctx, username, target, weekOffsetBetween(target, date))
	if err != nil {
		return nil, err
	}

	decision := CanUnbook(grid, dateStr, SlotID(slotID))
	if !decision.Allowed() {
		return nil, decisionError(decision)
	}

	modifiedCount, err := uc.BookingRepository.RemoveBooking(ctx, username, dateStr, SlotID(slotID))
	if err != nil {
		return nil, err
	}
	if modifiedCount == 0 {
		return nil, exceptions.ErrBookingLostRace(nil)
	}

	return &responses.BookingSlot{Date: dateStr, SlotID: slotID}, nil
}

// buildGrid materializes a fresh grid snapshot from storage. No caching:
// every decision sees the latest persisted bookings.
func (uc *bookingUsecase) buildGrid(ctx context.Context, username string, target time.Time, offset int) (WeekGrid, error) {
	exists, err := uc.BookingRepository.UserExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	bookedByUser, err := uc.BookingRepository.GetBookingsByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	bookedByOthers, err := uc.BookingRepository.GetBookingsByOthers(ctx, username)
	if err != nil {
		return nil, err
	}
	unavailable, err := uc.BlackoutRepository.GetUnavailableSlots(ctx)
	if err != nil {
		return nil, err
	}

	return BuildWeekGrid(target, offset, unavailable, bookedByOthers, bookedByUser), nil
}

// weekOffsetBetween returns how many whole weeks separate the week holding
// date from the week holding target, so a booking request always gets the
// grid that actually contains its date.
func weekOffsetBetween(target, date time.Time) int {
	targetMonday := mondayUTC(target)
	dateMonday := mondayUTC(date)
	days := int(dateMonday.Sub(targetMonday).Hours() / 24)
	return days / 7
}

// mondayUTC re-anchors the Monday of t's week at UTC midnight, keeping the
// day arithmetic exact across DST transitions.
func mondayUTC(t time.Time) time.Time {
	monday := WeekDates(t, 0)[0]
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

func decisionError(decision Decision) error {
	if decision.Code == RejectGridInconsistent {
		return exceptions.ErrGridInconsistent(nil)
	}
	return exceptions.ErrBookingConflict(decision.Reason)
}
