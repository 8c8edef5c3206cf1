package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate-quiz", h.GenerateQuiz)
	r.Post("/submit-answer", h.SubmitAnswer)
	r.Get("/quiz-history", h.QuizHistory)
	return r
}
