package dto

import "time"

// ChatRequest representa a mensagem enviada pelo usuário.
// Message é ponteiro para distinguir chave ausente de texto vazio.
type ChatRequest struct {
	Message *string `json:"message" binding:"required"`
}

// ChatResponse representa a resposta do assistente
type ChatResponse struct {
	Response  string  `json:"response"`
	Timestamp float64 `json:"timestamp"`
}

// NewChatResponse cria uma resposta com o horário atual em segundos desde a época
func NewChatResponse(response string, now time.Time) ChatResponse {
	return ChatResponse{
		Response:  response,
		Timestamp: float64(now.Unix()) + float64(now.Nanosecond())/float64(time.Second),
	}
}
