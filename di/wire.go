//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"senateway/config"
	"senateway/infras/accuweather"
	"senateway/infras/emailjs"
	"senateway/infras/gemini"
	"senateway/infras/jwt"
	"senateway/infras/kafka"
	"senateway/infras/otel"
	"senateway/infras/postgres"
	"senateway/infras/redis"
	"senateway/permissions"
	"senateway/shared/cache"
	"senateway/transport/http"
	"senateway/transport/http/middleware"
	"senateway/transport/http/router"

	analyticsRepository "senateway/internal/domains/analytics/repository"
	analyticsService "senateway/internal/domains/analytics/service"
	authService "senateway/internal/domains/auth/service"
	bookingRepository "senateway/internal/domains/booking/repository"
	bookingService "senateway/internal/domains/booking/service"
	chatService "senateway/internal/domains/chat/service"
	reviewRepository "senateway/internal/domains/review/repository"
	reviewService "senateway/internal/domains/review/service"
	roomRepository "senateway/internal/domains/room/repository"
	roomService "senateway/internal/domains/room/service"
	userRepository "senateway/internal/domains/user/repository"
	userService "senateway/internal/domains/user/service"

	analyticsHandler "senateway/internal/handlers/analytics"
	authHandler "senateway/internal/handlers/auth"
	bookingHandler "senateway/internal/handlers/booking"
	chatHandler "senateway/internal/handlers/chat"
	healthHandler "senateway/internal/handlers/health"
	reviewHandler "senateway/internal/handlers/review"
	roomHandler "senateway/internal/handlers/room"
	userHandler "senateway/internal/handlers/user"
	weatherHandler "senateway/internal/handlers/weather"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	emailjs.New,
	gemini.New,
	accuweather.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var analyticsDomain = wire.NewSet(
	analyticsRepository.New,
	analyticsService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var chatDomain = wire.NewSet(
	chatService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var domains = wire.NewSet(
	analyticsDomain,
	bookingDomain,
	reviewDomain,
	roomDomain,
	chatDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	analyticsHandler.New,
	authHandler.New,
	bookingHandler.New,
	chatHandler.New,
	healthHandler.New,
	reviewHandler.New,
	roomHandler.New,
	userHandler.New,
	weatherHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
