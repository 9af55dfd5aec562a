package middleware

import (
	"golang.org/x/time/rate"

	"georeminder/config"
	pkgLog "georeminder/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	config  config.HTTPServerConfig
	limiter *rate.Limiter
}

func New(l pkgLog.Logger, cfg config.HTTPServerConfig) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.WebhookRatePerSecond), cfg.WebhookBurst),
	}
}
