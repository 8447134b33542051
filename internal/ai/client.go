package ai

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries the prompt messages plus an optional response schema.
// The schema is forwarded to providers that support constrained output;
// the parsed response is still validated locally either way.
type Request struct {
	Messages []Message
	Schema   map[string]interface{}
}

type Client interface {
	Generate(ctx context.Context, req Request) (string, []byte, error)
}

func resolveMaxTokens(value int) int {
	if value > 0 {
		return value
	}

	return defaultMaxTokens
}
