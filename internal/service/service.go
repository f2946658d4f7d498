package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/xiaot623/chatshare/internal/adapter/llm"
	"github.com/xiaot623/chatshare/internal/config"
	"github.com/xiaot623/chatshare/internal/repository"
	"github.com/xiaot623/chatshare/policy"
)

type Service struct {
	sessions     repository.SessionStore
	configs      *repository.ChatConfigStore
	generator    llm.Generator
	config       *config.Config
	policyEngine *policy.Engine

	now   func() time.Time
	newID func() string
}

func New(sessions repository.SessionStore, configs *repository.ChatConfigStore, generator llm.Generator, cfg *config.Config, policyEngine *policy.Engine) *Service {
	return &Service{
		sessions:     sessions,
		configs:      configs,
		generator:    generator,
		config:       cfg,
		policyEngine: policyEngine,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}
