package service

import (
	"context"

	"github.com/mastersolis/marketing-api/internal/ai"
)

// chatService is a pure generation passthrough with the fixed business
// preamble; nothing is persisted
type chatService struct {
	gen ai.Generator
}

func newChatService(gen ai.Generator) ChatService {
	return &chatService{gen: gen}
}

// Chat answers a visitor question via the assistant prompt
func (s *chatService) Chat(ctx context.Context, message string) string {
	return s.gen.Generate(ctx, ai.ChatPrompt(message), ai.TokensChat)
}
