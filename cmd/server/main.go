package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vactrack/clinic-gateway/internal/apiclient"
	"github.com/vactrack/clinic-gateway/internal/booking"
	"github.com/vactrack/clinic-gateway/internal/captcha"
	"github.com/vactrack/clinic-gateway/internal/catalog"
	"github.com/vactrack/clinic-gateway/internal/config"
	"github.com/vactrack/clinic-gateway/internal/email"
	adminHandler "github.com/vactrack/clinic-gateway/internal/handler/admin"
	authHandler "github.com/vactrack/clinic-gateway/internal/handler/auth"
	bookingHandler "github.com/vactrack/clinic-gateway/internal/handler/booking"
	childrenHandler "github.com/vactrack/clinic-gateway/internal/handler/children"
	contactHandler "github.com/vactrack/clinic-gateway/internal/handler/contact"
	oauthHandler "github.com/vactrack/clinic-gateway/internal/handler/oauth"
	paymentHandler "github.com/vactrack/clinic-gateway/internal/handler/payment"
	"github.com/vactrack/clinic-gateway/internal/middleware"
	"github.com/vactrack/clinic-gateway/internal/payment"
	"github.com/vactrack/clinic-gateway/internal/router"
	"github.com/vactrack/clinic-gateway/internal/session"
	"github.com/vactrack/clinic-gateway/pkg/logger"
)

const captchaTTL = 5 * time.Minute

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	store, err := newSessionStore(cfg.Session)
	if err != nil {
		log.Fatal(err, "failed to initialize session store")
	}

	api := apiclient.New(cfg.Upstream)
	sessions := session.NewManager(api, store, log)
	cat := catalog.New()
	mailer := email.NewService(cfg.SMTP)

	bookingSvc := booking.NewService(api, cat, mailer, log)
	paymentSvc := payment.NewService(api, cfg.Payment, log)
	captchaSvc := captcha.NewService(captchaTTL)

	authMW := middleware.NewAuthMiddleware(sessions, cfg.Session.CookieName)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}

	r := router.NewRouter(
		authHandler.NewHandler(sessions, authMW, cfg.Session.CookieName),
		oauthHandler.NewHandler(sessions, cfg.Session.CookieName),
		bookingHandler.NewHandler(bookingSvc, cat, authMW),
		paymentHandler.NewHandler(paymentSvc, mailer, authMW, log),
		childrenHandler.NewHandler(api, authMW),
		contactHandler.NewHandler(api, captchaSvc, sessions, cfg.Session.CookieName),
		adminHandler.NewHandler(api, authMW),
		router.Config{
			RateRPS:       cfg.Rate.RPS,
			RateBurst:     cfg.Rate.Burst,
			CORSConfig:    corsConfig,
			MetricsPrefix: "vactrack_gateway",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "forced shutdown")
	}

	if closer, ok := store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Error(err, "failed to close session store")
		}
	}
	log.Info("server stopped")
}

// newSessionStore picks the backing store from config: redis when a URL is
// set, a file when a path is set, otherwise process memory.
func newSessionStore(cfg config.SessionConfig) (session.Store, error) {
	switch {
	case cfg.RedisURL != "":
		return session.NewRedisStore(cfg.RedisURL, cfg.TTL)
	case cfg.FilePath != "":
		return session.NewFileStore(cfg.FilePath)
	default:
		return session.NewMemoryStore(cfg.TTL), nil
	}
}
