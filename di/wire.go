//go:build wireinject
// +build wireinject

package di

import (
	"hippo/config"
	"hippo/infras/jwt"
	"hippo/infras/kafka"
	"hippo/infras/otel"
	"hippo/infras/postgres"
	"hippo/infras/redis"
	"hippo/infras/s3"
	"hippo/internal/guard"
	"hippo/permissions"
	"hippo/shared/cache"
	"hippo/transport/http"
	"hippo/transport/http/middleware"
	"hippo/transport/http/router"

	"github.com/google/wire"

	authService "hippo/internal/domains/auth/service"
	galleryRepository "hippo/internal/domains/gallery/repository"
	galleryService "hippo/internal/domains/gallery/service"
	itemRepository "hippo/internal/domains/item/repository"
	itemService "hippo/internal/domains/item/service"
	userRepository "hippo/internal/domains/user/repository"
	userService "hippo/internal/domains/user/service"
	authHandler "hippo/internal/handlers/auth"
	galleryHandler "hippo/internal/handlers/gallery"
	itemHandler "hippo/internal/handlers/item"
	userHandler "hippo/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	middleware.NewOwnershipMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var itemDomain = wire.NewSet(
	itemRepository.New,
	itemService.New,
	wire.Bind(new(guard.Directory), new(itemService.Item)),
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var ownership = wire.NewSet(
	guard.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	itemDomain,
	galleryDomain,
	ownership,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	itemHandler.New,
	galleryHandler.New,
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
