package routers

import (
	"laundryroom-service/internal/app/delivery/http/controllers"
	"laundryroom-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.With(middlewares.Authenticate).Get("/week", bookingController.GetWeekSlots)
	router.With(middlewares.Authenticate).Post("/slots", bookingController.BookSlot)
	router.With(middlewares.Authenticate).Delete("/slots", bookingController.UnbookSlot)
}
