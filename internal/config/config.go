package config

import (
	"errors"
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/completion"
	"github.com/samber/lo"
)

// Config reúne as configurações do serviço lidas do ambiente
type Config struct {
	GroqAPIKey      string        `env:"GROQ_API_KEY,required=true"`
	GroqBaseURL     string        `env:"GROQ_BASE_URL,required=true"`
	Model           string        `env:"CHAT_MODEL,default=llama-3.1-8b-instant"`
	MaxTokens       int           `env:"CHAT_MAX_TOKENS,default=500"`
	Temperature     float64       `env:"CHAT_TEMPERATURE,default=0.7"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT,default=15s"`
	Host            string        `env:"HOST,default=0.0.0.0"`
	Port            int           `env:"PORT,default=5000"`
	BasePath        string        `env:"API_BASE_PATH"`
	GinMode         string        `env:"GIN_MODE,default=release"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	LogFormat       string        `env:"LOG_FORMAT,default=json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Load lê e valida a configuração a partir das variáveis de ambiente
func Load() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate verifica limites que as tags não conseguem expressar
func (c *Config) Validate() error {
	var errs []error
	if c.GroqAPIKey == "" {
		errs = append(errs, errors.New("GROQ_API_KEY must not be empty"))
	}
	if c.GroqBaseURL == "" {
		errs = append(errs, errors.New("GROQ_BASE_URL must not be empty"))
	}
	if c.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("CHAT_MAX_TOKENS must be positive, got %d", c.MaxTokens))
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		errs = append(errs, fmt.Errorf("CHAT_TEMPERATURE must be between 0 and 2, got %v", c.Temperature))
	}
	if c.ProviderTimeout <= 0 {
		errs = append(errs, fmt.Errorf("PROVIDER_TIMEOUT must be positive, got %s", c.ProviderTimeout))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	if !lo.Contains([]string{gin.DebugMode, gin.ReleaseMode, gin.TestMode}, c.GinMode) {
		errs = append(errs, fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", c.GinMode))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config error: %w", errors.Join(errs...))
	}
	return nil
}

// Address retorna o endereço de escuta do servidor HTTP
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GroqConfig converte a configuração para o cliente do provedor
func (c *Config) GroqConfig() completion.GroqConfig {
	return completion.GroqConfig{
		APIKey:      c.GroqAPIKey,
		BaseURL:     c.GroqBaseURL,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: float32(c.Temperature),
		Timeout:     c.ProviderTimeout,
	}
}
