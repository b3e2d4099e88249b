package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/therapy-chatbot-api/internal/adapter/api/route"
	"github.com/hugohenrick/therapy-chatbot-api/internal/config"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/completion"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	config *config.Config
	logger logger.Logger
	router *gin.Engine
	server *http.Server
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, err
	}

	// Cliente do provedor criado uma única vez e compartilhado entre requisições
	client, err := completion.NewGroqClient(cfg.GroqConfig(), log)
	if err != nil {
		return nil, fmt.Errorf("completion client: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	router := route.NewRouter(cfg.BasePath, client, log)

	// WriteTimeout precisa cobrir a chamada ao provedor
	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.ProviderTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &App{
		config: cfg,
		logger: log,
		router: router,
		server: server,
	}, nil
}

// Start serve HTTP até ctx ser cancelado e então encerra com graceful shutdown
func (a *App) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Servidor iniciado",
			"address", a.server.Addr,
			"base_path", a.config.BasePath,
			"model", a.config.Model)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Encerrando servidor", "timeout", a.config.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}
