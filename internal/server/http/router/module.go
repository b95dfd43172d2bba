package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/ecopoints/internal/app"
	"github.com/polkiloo/ecopoints/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(f *app.EcoFacade) handlers.EcoFacade { return f }),
	fx.Provide(Setup),
)
