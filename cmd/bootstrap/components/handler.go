package components

import (
	"agrispray/internal/handler"
	"agrispray/internal/handler/api"
	"agrispray/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSprayRequestHandler,
		api.NewWatchHandler,
		api.NewProviderHandler,
		api.NewAddressHandler,
		api.NewUserHandler,
		api.NewLocationHandler,
		api.NewCropHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	request *api.SprayRequestHandler,
	watch *api.WatchHandler,
	provider *api.ProviderHandler,
	address *api.AddressHandler,
	user *api.UserHandler,
	location *api.LocationHandler,
	crop *api.CropHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Request:  request,
		Watch:    watch,
		Provider: provider,
		Address:  address,
		User:     user,
		Location: location,
		Crop:     crop,
	}
}
