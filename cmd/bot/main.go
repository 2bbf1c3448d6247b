package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/verifybot/internal/adapters/handler/discord"
	"github.com/vncsmyrnk/verifybot/internal/adapters/handler/http"
	"github.com/vncsmyrnk/verifybot/internal/adapters/repository/jsonfile"
	"github.com/vncsmyrnk/verifybot/internal/config"
	"github.com/vncsmyrnk/verifybot/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Repositories
	ledgerRepo := jsonfile.NewLedgerRepository(cfg.LedgerPath, logger)
	ledger, err := ledgerRepo.Load(ctx)
	if err != nil {
		// Not fatal: the bot keeps the empty ledger and retries on the next vote.
		logger.Error("failed to initialize ledger file", "path", cfg.LedgerPath, "error", err)
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		logger.Error("failed to create discord session", "error", err)
		os.Exit(1)
	}
	session.Identify.Intents = discord.Intents

	// Initialize Services
	voteService := services.NewVoteService(ledgerRepo, ledger, cfg.PollCapacity, logger)
	verificationService := services.NewVerificationService(discord.NewRoleManager(session), cfg.RestrictedRoleID, cfg.VerifiedRoleID)

	bot := discord.NewBot(session, voteService, verificationService, discord.Config{
		VerificationChannelID: cfg.VerificationChannelID,
		PollChannelID:         cfg.PollChannelID,
	}, logger)
	removeHandlers := bot.Register(ctx, session)
	defer removeHandlers()

	if err := session.Open(); err != nil {
		logger.Error("failed to open discord gateway", "error", err)
		os.Exit(1)
	}

	var server *stdhttp.Server
	if cfg.StatusAddr != "" {
		handler := http.NewHandler(http.NewPollHandler(voteService))
		server = &stdhttp.Server{Addr: cfg.StatusAddr, Handler: handler}

		go func() {
			logger.Info("status api listening", "addr", cfg.StatusAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
				logger.Error("status api stopped", "error", err)
			}
		}()
	}

	logger.Info("bot running", "poll_capacity", cfg.PollCapacity, "ledger_path", cfg.LedgerPath)
	<-ctx.Done()
	logger.Info("Gracefully shutting down...")

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("status api shutdown failed", "error", err)
		}
	}

	if err := session.Close(); err != nil {
		logger.Error("failed to close discord session", "error", err)
	}
}
