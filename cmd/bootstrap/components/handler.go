package components

import (
	"restaurant-pos/internal/handler"
	"restaurant-pos/internal/handler/api"
	"restaurant-pos/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOrderHandler,
		api.NewKitchenHandler,
		api.NewBeeperHandler,
		api.NewCatalogHandler,
		api.NewProductHandler,
		api.NewCategoryHandler,
		api.NewUserHandler,
		newHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	order *api.OrderHandler,
	kitchen *api.KitchenHandler,
	beeper *api.BeeperHandler,
	catalog *api.CatalogHandler,
	product *api.ProductHandler,
	category *api.CategoryHandler,
	user *api.UserHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Order:    order,
		Kitchen:  kitchen,
		Beeper:   beeper,
		Catalog:  catalog,
		Product:  product,
		Category: category,
		User:     user,
	}
}
