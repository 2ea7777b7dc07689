package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dataserve/dataserve/modules/auth"
	"github.com/dataserve/dataserve/pkg/actor"
	"github.com/dataserve/dataserve/pkg/bootstrap"
	"github.com/dataserve/dataserve/pkg/config"
	"github.com/dataserve/dataserve/pkg/flash"
	"github.com/dataserve/dataserve/pkg/httpserver"
	"github.com/dataserve/dataserve/pkg/logger"
	"github.com/dataserve/dataserve/pkg/requestid"
	"github.com/dataserve/dataserve/pkg/signer"
)

type appConfig struct {
	Signer signer.Config
	Logger logger.Config
	Server httpserver.Config

	SecureCookies bool `env:"DS_SECURE_COOKIES" envDefault:"false"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger,
		logger.WithAttr(slog.String("service", "dataserve")),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg appConfig, log *slog.Logger) error {
	sgn, err := signer.NewFromConfig(cfg.Signer)
	if err != nil {
		return fmt.Errorf("configure signer: %w", err)
	}

	boot := bootstrap.New()
	resolver := actor.NewResolver(sgn)
	messages := flash.NewStoreWithSecurity(sgn, cfg.SecureCookies)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requestLogger(log))
	r.Use(resolver.Middleware)

	r.Mount("/-", auth.Router(auth.RouterOptions{
		Signer:        sgn,
		Bootstrap:     boot,
		Flash:         messages,
		SecureCookies: cfg.SecureCookies,
		Logger:        log,
	}))
	r.Get("/", indexHandler(messages))

	// The bootstrap URL is printed exactly once; after the first successful
	// redemption the token is gone for the life of the process.
	if token, ok := boot.Token(); ok {
		log.Info("root account bootstrap URL",
			slog.String("url", fmt.Sprintf("http://%s/-/auth-token?token=%s", displayAddr(cfg.Server.Addr), token)))
	}

	return httpserver.New(cfg.Server, log).Run(context.Background(), r)
}

// displayAddr turns a listen address like ":8080" into one a browser can use.
func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "127.0.0.1" + addr
	}
	return addr
}
