//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../../mocks/mock_completion_client.go -package=mocks
package completion

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/hugohenrick/therapy-chatbot-api/pkg/chat"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/logger"
	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"
)

// Client envia a mensagem do usuário ao provedor e devolve o texto gerado.
// Erros devolvidos são sempre *Error.
type Client interface {
	Complete(ctx context.Context, message string) (string, error)
}

// GroqConfig contém os parâmetros de acesso ao provedor compatível com OpenAI
type GroqConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// GroqClient implementa Client usando a API de Chat Completions da Groq
type GroqClient struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	logger      logger.Logger
}

// NewGroqClient cria um novo cliente para o provedor
func NewGroqClient(cfg GroqConfig, log logger.Logger) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("groq: API key not set")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("groq: base URL not set")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.New("groq: timeout must be positive")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &GroqClient{
		api:         openai.NewClientWithConfig(clientConfig),
		model:       lo.Ternary(cfg.Model == "", DefaultModel, cfg.Model),
		maxTokens:   lo.Ternary(cfg.MaxTokens <= 0, DefaultMaxTokens, cfg.MaxTokens),
		temperature: sendableTemperature(cfg.Temperature),
		timeout:     cfg.Timeout,
		logger:      log,
	}, nil
}

// Complete envia o prompt de sistema e a mensagem do usuário e retorna o texto
// da primeira escolha, sem espaços nas bordas.
func (c *GroqClient) Complete(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	request := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toOpenAIMessages(chat.BuildConversation(SystemPrompt, message)),
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	c.logger.Debug("Enviando requisição para o provedor",
		"model", request.Model,
		"num_messages", len(request.Messages))

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", classify(err)
	}

	choice, ok := lo.First(resp.Choices)
	if !ok {
		return "", classify(errNoChoices)
	}

	c.logger.Info("Resposta gerada com sucesso",
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", string(choice.FinishReason),
		"latency_ms", time.Since(start).Milliseconds())

	return strings.TrimSpace(choice.Message.Content), nil
}

// sendableTemperature evita que temperatura zero seja omitida do JSON
// (omitempty no go-openai), o que faria o provedor usar o padrão dele.
func sendableTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}

func toOpenAIMessages(messages []chat.Message) []openai.ChatCompletionMessage {
	return lo.Map(messages, func(m chat.Message, _ int) openai.ChatCompletionMessage {
		return openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	})
}
