package components

import (
	"folio-api/internal/handler"
	"folio-api/internal/handler/api"
	"folio-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewScheduleHandler,
		api.NewContentHandler,
		api.NewGeocodeHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	schedule *api.ScheduleHandler,
	content *api.ContentHandler,
	geocode *api.GeocodeHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Availability: availability,
		Booking:      booking,
		Schedule:     schedule,
		Content:      content,
		Geocode:      geocode,
	}
}
