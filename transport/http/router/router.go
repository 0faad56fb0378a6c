package router

import (
	"github.com/go-chi/chi/v5"

	"senateway/internal/handlers/analytics"
	"senateway/internal/handlers/auth"
	"senateway/internal/handlers/booking"
	"senateway/internal/handlers/chat"
	"senateway/internal/handlers/health"
	"senateway/internal/handlers/review"
	"senateway/internal/handlers/room"
	"senateway/internal/handlers/user"
	"senateway/internal/handlers/weather"
	"senateway/transport/http/middleware"
)

type DomainHandlers struct {
	Analytics analytics.Handler
	Auth      auth.Handler
	Booking   booking.Handler
	Chat      chat.Handler
	Health    health.Handler
	Review    review.Handler
	Room      room.Handler
	User      user.Handler
	Weather   weather.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.App
	authRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.app.Tracing)
		routerGroup.Use(r.app.RateLimit())
		routerGroup.Use(r.authRole.APIKey)
		routerGroup.Use(r.authRole.Auth)
		routerGroup.Use(r.authRole.RBAC)

		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Analytics.Router(routerGroup)
		r.DomainHandlers.Chat.Router(routerGroup)
		r.DomainHandlers.Weather.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.App, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		authRole:       authRole,
	}
}
