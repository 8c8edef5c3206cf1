package quiz

import (
	"context"

	"github.com/saulo-duarte/quizchat/internal/config"
)

const (
	defaultDifficulty    = "medium"
	defaultQuestionCount = 1
	defaultUserID        = "default_user"
)

// Upstream é o serviço conversacional que gera o texto das questões.
type Upstream interface {
	Send(ctx context.Context, query, conversationID string) (answer, newConversationID string, err error)
}

type Service interface {
	GenerateQuiz(ctx context.Context, req GenerateRequest) ([]Question, error)
	SubmitAnswer(ctx context.Context, req AnswerRequest) (*VerifyResult, error)
}

type service struct {
	upstream Upstream
	store    *AnswerStore
	sessions *SessionRegistry
}

func NewService(upstream Upstream, store *AnswerStore, sessions *SessionRegistry) Service {
	return &service{
		upstream: upstream,
		store:    store,
		sessions: sessions,
	}
}

func (s *service) GenerateQuiz(ctx context.Context, req GenerateRequest) ([]Question, error) {
	log := config.WithContext(ctx)

	if req.Difficulty == "" {
		req.Difficulty = defaultDifficulty
	}
	if req.QuestionCount <= 0 {
		req.QuestionCount = defaultQuestionCount
	}
	if req.UserID == "" {
		req.UserID = defaultUserID
	}

	prompt := BuildPrompt(req.Topic, req.Difficulty, req.QuestionCount)

	sessionID, conversationID := s.sessions.Conversation(req.UserID)
	log = log.WithField("session_id", sessionID)

	answer, newConversationID, err := s.upstream.Send(ctx, prompt, conversationID)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar questões no Dify")
		return nil, err
	}
	s.sessions.SetConversation(req.UserID, newConversationID)

	questions := ParseQuestions(ctx, answer)
	for _, question := range questions {
		s.store.Record(question.QuestionID, question.CorrectAnswer, question.Explanation, req.Topic)
	}

	log.Infof("Geradas %d questões sobre %q", len(questions), req.Topic)
	return questions, nil
}

func (s *service) SubmitAnswer(ctx context.Context, req AnswerRequest) (*VerifyResult, error) {
	log := config.WithContext(ctx)

	result, err := s.store.Verify(req.QuestionID, req.SelectedAnswer)
	if err != nil {
		log.WithField("question_id", req.QuestionID).Warn("Questão não encontrada para verificação")
		return nil, err
	}

	return result, nil
}
