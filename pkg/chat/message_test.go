package chat_test

import (
	"strings"
	"testing"

	"github.com/hugohenrick/therapy-chatbot-api/pkg/chat"
	"github.com/stretchr/testify/require"
)

func TestBuildConversation(t *testing.T) {
	t.Run("should put the system prompt first and the user message second", func(t *testing.T) {
		req := require.New(t)

		messages := chat.BuildConversation("be nice", "hello")

		req.Equal([]chat.Message{
			{Role: chat.RoleSystem, Content: "be nice"},
			{Role: chat.RoleUser, Content: "hello"},
		}, messages)
	})

	t.Run("should keep the user text untouched", func(t *testing.T) {
		req := require.New(t)
		raw := "  multi\nline 💙 " + strings.Repeat("x", 4096) + "  "

		messages := chat.BuildConversation("prompt", raw)

		req.Len(messages, 2)
		req.Equal(raw, messages[1].Content)
	})
}
