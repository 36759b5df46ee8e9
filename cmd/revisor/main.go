package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/revisor/internal/config"
	"github.com/aliskhannn/revisor/internal/delivery/httpapi"
	"github.com/aliskhannn/revisor/internal/delivery/telegram"
	"github.com/aliskhannn/revisor/internal/infra/postgres"
	"github.com/aliskhannn/revisor/internal/infra/postgres/repository"
	"github.com/aliskhannn/revisor/internal/logger"
	"github.com/aliskhannn/revisor/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg := logger.Must(cfg)
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("revisor stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		lg.Info("database schema is up to date")
	}

	policy, err := service.ParseDeletePolicy(cfg.Topics.DeletePolicy)
	if err != nil {
		return err
	}

	// Initialize repositories and services.
	topicRepo := repository.NewTopicRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	tr := postgres.NewTransactor(pool)

	topicService := service.NewTopicService(tr, topicRepo, questionRepo, policy)
	questionService := service.NewQuestionService(tr, topicRepo, questionRepo, lg)
	userService := service.NewUserService(userRepo)

	sessions := httpapi.NewSessionManager(cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.TTL, cfg.Session.Secure)
	handler := httpapi.NewHandler(lg, sessions, topicService, questionService, userService)
	router := httpapi.NewRouter(handler, httpapi.RouterOptions{
		Health:      pool,
		Metrics:     httpapi.NewMetrics(),
		AuthLimiter: httpapi.NewIPRateLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst),
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	var tg botRunner
	if cfg.TelegramAPIToken != "" {
		bot, err := newBot(cfg, lg)
		if err != nil {
			return err
		}
		tg = telegram.NewHandler(bot, lg, topicService, questionService)
	} else {
		lg.Info("telegram bot disabled, no token configured")
	}

	return serve(ctx, lg, srv, cfg.HTTP.ShutdownTimeout, tg)
}

type botRunner interface {
	Run(ctx context.Context) error
}

// serve runs the HTTP server, and the bot when tg is not nil, until ctx is
// done or one of them fails.
func serve(ctx context.Context, lg *zap.Logger, srv *http.Server, shutdownTimeout time.Duration, tg botRunner) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lg.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		lg.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if tg != nil {
		g.Go(func() error {
			if err := tg.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}

func newBot(cfg *config.Config, lg *zap.Logger) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = cfg.Env == "local"

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "topics",
			Description: "Pick a topic and get a question",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("telegram bot authorized", zap.String("account", bot.Self.UserName))
	return bot, nil
}
