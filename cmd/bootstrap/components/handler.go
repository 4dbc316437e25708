package components

import (
	"brrow-engine/internal/handler"
	"brrow-engine/internal/handler/api"
	"brrow-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOfferHandler,
		api.NewUploadHandler,
		api.NewCountdownHandler,
		middleware.NewAuthMiddleware,
		func(offer *api.OfferHandler, upload *api.UploadHandler, countdown *api.CountdownHandler) handler.Handlers {
			return handler.Handlers{Offer: offer, Upload: upload, Countdown: countdown}
		},
	),
	fx.Invoke(handler.NewRouter),
)
