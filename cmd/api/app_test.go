package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_BASE_URL", "http://127.0.0.1:1/v1")
	t.Setenv("GIN_MODE", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("PORT", "5000")
	t.Setenv("HOST", "127.0.0.1")
}

func TestNewApp(t *testing.T) {
	t.Run("should refuse to start without credentials", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("GROQ_API_KEY", "")
		req.NoError(os.Unsetenv("GROQ_API_KEY"))
		t.Setenv("GROQ_BASE_URL", "https://api.groq.com/openai/v1")

		app, err := NewApp()

		req.Error(err)
		req.Nil(app)
	})

	t.Run("should return an error for an unknown gin mode", func(t *testing.T) {
		req := require.New(t)
		setRequiredEnv(t)
		t.Setenv("GIN_MODE", "production")

		var app *App
		var err error
		req.NotPanics(func() { app, err = NewApp() })

		req.Error(err)
		req.Nil(app)
		req.Contains(err.Error(), "GIN_MODE")
	})

	t.Run("should serve the health check", func(t *testing.T) {
		req := require.New(t)
		setRequiredEnv(t)

		app, err := NewApp()
		req.NoError(err)

		w := httptest.NewRecorder()
		app.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		req.Equal(http.StatusOK, w.Code)
		req.JSONEq(`{"status": "healthy", "service": "therapy-chatbot-api"}`, w.Body.String())
	})

	t.Run("should fall back when the provider is unreachable", func(t *testing.T) {
		req := require.New(t)
		setRequiredEnv(t)
		t.Setenv("PROVIDER_TIMEOUT", "2s")

		app, err := NewApp()
		req.NoError(err)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": "hello"}`))
		app.GetRouter().ServeHTTP(w, r)

		req.Equal(http.StatusOK, w.Code)
		req.Contains(w.Body.String(), "having trouble connecting")
	})
}

func TestApp_Start(t *testing.T) {
	t.Run("should stop when the context is canceled", func(t *testing.T) {
		req := require.New(t)
		setRequiredEnv(t)

		app, err := NewApp()
		req.NoError(err)
		app.server.Addr = "127.0.0.1:0"

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- app.Start(ctx) }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			req.NoError(err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
	})
}
