package quiz

import (
	"github.com/saulo-duarte/quizchat/internal/config"
	"github.com/saulo-duarte/quizchat/internal/dify"
)

type QuizContainer struct {
	Handler *Handler
}

func NewQuizContainer(cfg *config.Config) *QuizContainer {
	client := dify.NewClient(cfg.DifyAPIKey, cfg.DifyBaseURL)
	store := NewAnswerStore(cfg.MaxStoredAnswers)
	sessions := NewSessionRegistry()
	service := NewService(client, store, sessions)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
	}
}
