package main

import (
	"net"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quizchat/internal/container"
	"github.com/saulo-duarte/quizchat/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	c := container.New()

	if c.Config.DifyAPIKey == "" {
		logrus.Warn("DIFY_API_KEY não configurada; /api/generate-quiz retornará erro até que seja definida")
	}

	r := router.New(router.RouterConfig{
		QuizHandler: c.QuizContainer.Handler,
		WebHandler:  c.WebHandler,
	})

	addr := net.JoinHostPort(c.Config.Host, c.Config.Port)
	logrus.Infof("Servidor iniciado em %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logrus.WithError(err).Fatal("Falha ao iniciar o servidor HTTP")
	}
}
