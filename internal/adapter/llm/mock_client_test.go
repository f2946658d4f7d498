package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xiaot623/chatshare/internal/config"
)

func TestMockClientEchoesLastUserTurn(t *testing.T) {
	m := NewMockClient()
	resp, err := m.GenerateContent(context.Background(), &GenerateRequest{
		Model: "mock",
		Turns: []Turn{
			{Role: RoleUser, Parts: []string{"instructions"}},
			{Role: RoleUser, Parts: []string{"hello"}},
		},
	})
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}
	if !strings.Contains(resp.Text, `"hello"`) {
		t.Fatalf("unexpected reply: %s", resp.Text)
	}

	reqs := m.Requests()
	if len(reqs) != 1 || len(reqs[0].Turns) != 2 {
		t.Fatalf("unexpected recorded requests: %+v", reqs)
	}
}

func TestMockClientOverrides(t *testing.T) {
	m := NewMockClient()
	m.Reply = "fixed"
	resp, err := m.GenerateContent(context.Background(), &GenerateRequest{})
	if err != nil || resp.Text != "fixed" {
		t.Fatalf("expected fixed reply, got %+v, %v", resp, err)
	}

	m.Err = errors.New("boom")
	if _, err := m.GenerateContent(context.Background(), &GenerateRequest{}); err == nil {
		t.Fatalf("expected error")
	}
	if len(m.Requests()) != 2 {
		t.Fatalf("expected both calls recorded")
	}
}

func TestNewGeneratorMock(t *testing.T) {
	g, err := NewGenerator(context.Background(), config.LLMConfig{Provider: config.LLMProviderMock})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	if _, ok := g.(*MockClient); !ok {
		t.Fatalf("expected *MockClient, got %T", g)
	}
}

func TestNewGeneratorOpenAI(t *testing.T) {
	g, err := NewGenerator(context.Background(), config.LLMConfig{
		Provider: config.LLMProviderOpenAI,
		BaseURL:  "http://localhost:4000/",
		APIKey:   "sk-test",
	})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	if _, ok := g.(*LangChainClient); !ok {
		t.Fatalf("expected *LangChainClient, got %T", g)
	}
}
