package chat

// Papéis aceitos pelo provedor de completions
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message representa um turno da conversa enviado ao provedor
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildConversation monta a lista de mensagens de uma requisição: o prompt de
// sistema seguido da mensagem do usuário, sem alterações no texto.
func BuildConversation(systemPrompt, userMessage string) []Message {
	return []Message{
		{Role: RoleSystem, Content: systemPrompt},
		{Role: RoleUser, Content: userMessage},
	}
}
