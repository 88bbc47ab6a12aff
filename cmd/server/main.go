package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/emrebktas/modpack-assistant/config"
	"github.com/emrebktas/modpack-assistant/internal/application"
	"github.com/emrebktas/modpack-assistant/internal/handler"
	"github.com/emrebktas/modpack-assistant/internal/infrastructure/email"
	"github.com/emrebktas/modpack-assistant/internal/infrastructure/llm"
	"github.com/emrebktas/modpack-assistant/internal/infrastructure/persistence/db"
	"github.com/emrebktas/modpack-assistant/internal/infrastructure/persistence/repository"
	"github.com/emrebktas/modpack-assistant/internal/infrastructure/security"
	"github.com/emrebktas/modpack-assistant/internal/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	var log *zap.Logger
	if cfg.Environment == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}
	defer log.Sync()

	gdb, err := db.InitGorm(&cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Address, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})
	defer redisClient.Close()

	sender, err := email.NewSender(&cfg.Email)
	if err != nil {
		log.Fatal("failed to init email backend", zap.Error(err))
	}
	notifier := email.NewNotifier(sender, cfg.BaseURL, cfg.Admin.Email, cfg.Email.Timeout, log)

	userRepo := repository.NewUserRepository(gdb)
	conversationRepo := repository.NewConversationRepository(gdb)
	messageRepo := repository.NewMessageRepository(gdb)

	passwords := security.NewBcryptService()
	tokens := security.NewJWTService(cfg.Auth.JwtSecret, cfg.Auth.ExpireAccessH)
	approvals := security.NewApprovalTokenService(cfg.Auth.JwtSecret, cfg.Auth.ExpireApprovalH)
	gemini := llm.NewGeminiClient(&cfg.LLM, log)

	authService := application.NewAuthService(userRepo, passwords, tokens, approvals, notifier, log)
	chatService := application.NewChatService(conversationRepo, messageRepo, gemini, log)

	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   cfg.ServerName,
			"timestamp": time.Now(),
		})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/approve-user", authHandler.ApproveUser)
		}

		chat := api.Group("/llm")
		chat.Use(
			middleware.RateLimit(redisClient, cfg.Redis.RateLimitQPS, log),
			middleware.Auth(tokens, userRepo),
		)
		{
			chat.POST("/chat", chatHandler.Chat)
			chat.POST("/conversations", chatHandler.CreateConversation)
			chat.GET("/conversations", chatHandler.ListConversations)
			chat.GET("/conversations/:id/messages", chatHandler.ListMessages)
			chat.PUT("/conversations/:id/title", chatHandler.UpdateTitle)
			chat.DELETE("/conversations/:id", chatHandler.DeleteConversation)
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
