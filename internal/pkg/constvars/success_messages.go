package constvars

const (
	UserCreatedSuccessMessage = "user successfully registered"
	LoginSuccessMessage       = "successfully logged in"
	LogoutSuccessMessage      = "successfully logged out"
	GetProfileSuccessMessage  = "successfully fetched profile"
	GetWeekGridSuccessMessage = "successfully fetched week slots"
	BookSlotSuccessMessage    = "slot successfully booked"
	UnbookSlotSuccessMessage  = "booking successfully removed"
)
