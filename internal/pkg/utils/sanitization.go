package utils

import (
	"laundryroom-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(request *requests.RegisterUser) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Username = strings.ToLower(strings.TrimSpace(request.Username))
	request.Name = strings.TrimSpace(request.Name)
}

func SanitizeLoginUserRequest(request *requests.LoginUser) {
	request.Username = strings.ToLower(strings.TrimSpace(request.Username))
}

func SanitizeBookingSlotRequest(request *requests.BookingSlot) {
	request.Date = strings.TrimSpace(request.Date)
}
