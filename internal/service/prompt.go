package service

import (
	"fmt"

	"github.com/xiaot623/chatshare/internal/adapter/llm"
	"github.com/xiaot623/chatshare/internal/domain"
)

const (
	// historyWindow is how many of the latest messages are replayed to the model.
	historyWindow   = 4
	maxOutputTokens = 1024
)

const instructionTemplate = "This is your system prompt: %s.\n" +
	"You should act as the system prompt say and answer only to prompts that related to the system prompt. " +
	"The next message are our chat history. Please respond to the last message in the chat history."

// buildGenerateRequest turns a session into one instruction turn followed by
// the latest messages of its history.
func buildGenerateRequest(session *domain.Session) *llm.GenerateRequest {
	recent := session.RecentMessages(historyWindow)

	turns := make([]llm.Turn, 0, len(recent)+1)
	turns = append(turns, llm.Turn{
		Role:  llm.RoleUser,
		Parts: []string{fmt.Sprintf(instructionTemplate, session.SystemPrompt)},
	})
	for _, m := range recent {
		turns = append(turns, llm.Turn{Role: m.Role, Parts: []string{m.Content}})
	}

	temperature, _ := session.Temperature.Float64()
	return &llm.GenerateRequest{
		Model:           session.Model,
		Turns:           turns,
		Temperature:     temperature,
		MaxOutputTokens: maxOutputTokens,
	}
}
