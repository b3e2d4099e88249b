package dto

// ServiceName identifica o serviço no health check
const ServiceName = "therapy-chatbot-api"

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NewHealthResponse cria a resposta padrão de serviço saudável
func NewHealthResponse() HealthResponse {
	return HealthResponse{Status: "healthy", Service: ServiceName}
}
