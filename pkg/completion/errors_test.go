package completion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind Kind
	}{
		{"api 4xx", &openai.APIError{HTTPStatusCode: 400, Message: "bad"}, KindProvider4xx},
		{"api 5xx", &openai.APIError{HTTPStatusCode: 503, Message: "down"}, KindProvider5xx},
		{"request error", &openai.RequestError{HTTPStatusCode: 500, Err: errors.New("eof")}, KindProvider5xx},
		{"wrapped deadline", fmt.Errorf("post: %w", context.DeadlineExceeded), KindTimeout},
		{"canceled", context.Canceled, KindCanceled},
		{"no choices", errNoChoices, KindParse},
		{"anything else", errors.New("boom"), KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)

			cerr := classify(tc.err)

			req.Equal(tc.kind, cerr.Kind)
			req.ErrorIs(cerr, tc.err)
		})
	}
}

func TestError(t *testing.T) {
	t.Run("should include the status code when present", func(t *testing.T) {
		req := require.New(t)
		err := &Error{Kind: KindProvider5xx, StatusCode: 502, Err: errors.New("bad gateway")}

		req.Equal("completion provider_5xx (status 502): bad gateway", err.Error())
		req.Equal(KindProvider5xx, KindOf(fmt.Errorf("wrapped: %w", err)))
	})

	t.Run("should fall back to unknown for foreign errors", func(t *testing.T) {
		req := require.New(t)

		req.Equal(KindUnknown, KindOf(errors.New("plain")))
	})
}
