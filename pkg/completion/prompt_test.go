package completion_test

import (
	"testing"

	"github.com/hugohenrick/therapy-chatbot-api/pkg/completion"
	"github.com/stretchr/testify/require"
)

func TestSystemPrompt(t *testing.T) {
	t.Run("should keep the persona text as written", func(t *testing.T) {
		req := require.New(t)

		req.Contains(completion.SystemPrompt, "consise but presiceYou care deeply")
		req.Contains(completion.SystemPrompt, "from funny to emphasizing — like a soulmate who always gets them.")
	})
}
