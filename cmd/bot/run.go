package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"affiliate_bot/internal/caption"
	"affiliate_bot/internal/config"
	"affiliate_bot/internal/fanout"
	"affiliate_bot/internal/media"
	"affiliate_bot/internal/publisher"
	"affiliate_bot/internal/scheduler"
	"affiliate_bot/internal/service"
	"affiliate_bot/internal/source/retail"
	"affiliate_bot/internal/storage/postgres"
	"affiliate_bot/internal/telegram"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the bot and poll Telegram for updates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			logger.Error("invalid config", "error", err)
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			logger.Info("received shutdown signal", "signal", sig)
			cancel()
		}()

		return run(ctx, cfg, logger)
	},
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	catalog, err := caption.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load caption catalog: %w", err)
	}
	renderer := caption.NewRenderer(catalog, cfg.Categories)

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("connect to telegram: %w", err)
	}
	bot.Debug = cfg.Telegram.Debug
	logger.Info("authorized on telegram", "bot", bot.Self.UserName)

	client := telegram.NewClient(bot, logger)

	cache, err := media.New(media.Config{
		Dir:       cfg.Media.Dir,
		MaxBytes:  cfg.Media.MaxBytes,
		Timeout:   cfg.Scraper.Timeout,
		UserAgent: cfg.Scraper.UserAgent,
	}, logger)
	if err != nil {
		return err
	}

	timers := scheduler.NewTimers()
	defer timers.Stop()

	fanOut := fanout.New(client, renderer, cache, cfg.Publish.Concurrency, logger)

	options := []service.Option{service.WithDownloader(cache)}

	if cfg.Scraper.Enabled {
		scraper := retail.New(retail.Config{
			Timeout:        cfg.Scraper.Timeout,
			UserAgent:      cfg.Scraper.UserAgent,
			MaxAttempts:    cfg.Scraper.Retry.MaxAttempts,
			InitialBackoff: cfg.Scraper.Retry.InitialBackoff,
			MaxBackoff:     cfg.Scraper.Retry.MaxBackoff,
		}, logger)
		lookups := retail.NewCached(scraper, cfg.Scraper.CacheTTL, logger)
		go lookups.Start()
		defer lookups.Stop()

		options = append(options, service.WithPrefiller(lookups))
	}

	recorder := service.NewRecorder(logger)

	if cfg.Database.Enabled {
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()
		logger.Info("connected to database")

		history := service.NewHistory(
			postgres.NewPublicationStore(db),
			postgres.NewTransactionManager(db),
			logger,
		)
		recorder.Add("postgres", history)
		options = append(options, service.WithHistory(history))
	}

	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer rabbitMQ.Close()

		recorder.Add("rabbitmq", service.SinkFunc(rabbitMQ.Publish))
	}

	if recorder.Len() > 0 {
		options = append(options, service.WithRecorder(recorder))
	}

	machine := service.NewMachine(service.Options{
		OperatorID:    cfg.Operator.ID,
		Locale:        cfg.Operator.Locale,
		Targets:       cfg.Destinations,
		Categories:    cfg.CategoryKeys(),
		QuietWindow:   cfg.Aggregator.QuietWindow,
		MaxPhotos:     cfg.Publish.MaxPhotos,
		PreviewLength: cfg.Publish.PreviewLength,
		HistoryLimit:  cfg.Publish.HistoryLimit,
	}, client, fanOut, renderer, timers, logger, options...)
	defer machine.Close()

	prune := scheduler.NewPeriodic(media.NewPrune(cache.Dir(), cfg.Media.Retention, logger), cfg.Media.PruneInterval, logger)
	poller := telegram.NewPoller(bot, machine, cfg.Telegram.PollTimeout, logger)

	logger.Info("starting affiliate bot",
		"operator_id", cfg.Operator.ID,
		"destinations", len(cfg.Destinations),
		"categories", len(cfg.Categories),
		"quiet_window", cfg.Aggregator.QuietWindow,
		"prefill", cfg.Scraper.Enabled,
		"sinks", recorder.Len(),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return prune.Start(gctx) })
	g.Go(func() error { return poller.Run(gctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("bot stopped with error", "error", err)
		return err
	}
	logger.Info("bot stopped")
	return nil
}
