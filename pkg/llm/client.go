// Package llm provides the completion-provider client used to draft email
// content. The wire format is the OpenAI-compatible chat completions API,
// which the Llama hosted endpoint speaks.
package llm

import "context"

// CompletionClient generates a text completion for a prompt. The system
// prompt frames the assistant role; callers own all prompt construction.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, prompt string) (string, error)
	Health(ctx context.Context) error
}

// Usage tracks token consumption reported by the provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
