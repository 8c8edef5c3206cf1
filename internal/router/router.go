package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/quizchat/internal/quiz"
	"github.com/saulo-duarte/quizchat/internal/web"
)

type RouterConfig struct {
	QuizHandler *quiz.Handler
	WebHandler  *web.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", cfg.WebHandler.Home)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/", quiz.Routes(cfg.QuizHandler))
	})

	return r
}
