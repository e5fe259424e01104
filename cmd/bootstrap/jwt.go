package bootstrap

import (
	"time"

	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewTokenService,
	),
)

func NewTokenService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.Auth.TokenDuration)
	if err != nil {
		panic("invalid AUTH_TOKEN_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.Auth.TokenSecret, tokenDuration)
}
