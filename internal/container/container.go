package container

import (
	"github.com/saulo-duarte/quizchat/internal/config"
	"github.com/saulo-duarte/quizchat/internal/quiz"
	"github.com/saulo-duarte/quizchat/internal/web"
)

type Container struct {
	Config        *config.Config
	QuizContainer *quiz.QuizContainer
	WebHandler    *web.Handler
}

func New() *Container {
	config.Init()
	cfg := config.Load()

	return &Container{
		Config:        cfg,
		QuizContainer: quiz.NewQuizContainer(cfg),
		WebHandler:    web.NewHandler(),
	}
}
