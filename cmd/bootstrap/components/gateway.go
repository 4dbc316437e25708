package components

import (
	"brrow-engine/internal/infra/offerapi"
	"brrow-engine/internal/infra/uploadapi"
	"brrow-engine/internal/usecase"

	"go.uber.org/fx"
)

// GatewayModule binds the Brrow backend clients to the ports the engines
// consume.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			offerapi.NewClient,
			fx.As(new(usecase.OfferGateway)),
		),
		fx.Annotate(
			uploadapi.NewClient,
			fx.As(new(usecase.UploadTransport)),
		),
	),
)
