package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/quizchat/internal/config"
	"github.com/saulo-duarte/quizchat/internal/dify"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para gerar quiz")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Topic == "" {
		log.Warn("Tentativa de gerar quiz sem tema")
		config.Error(w, http.StatusBadRequest, "topic is required")
		return
	}

	questions, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		config.Error(w, generateStatus(err), err.Error())
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

// Erros da API Dify preservam o status devolvido por ela; qualquer outra
// falha vira 500.
func generateStatus(err error) int {
	var upstreamErr *dify.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Status
	}
	return http.StatusInternalServerError
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para enviar resposta")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.Error(w, http.StatusNotFound, "questão não existe")
			return
		}
		log.WithError(err).Error("Erro ao verificar resposta")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) QuizHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = defaultUserID
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "histórico de respostas ainda não implementado",
		"user_id": userID,
	})
}
