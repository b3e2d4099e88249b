package dto

// Mensagens de erro expostas ao cliente
const (
	ErrMessageRequired = "Message is required"
	ErrInternalServer  = "Internal server error"
)

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
