package quiz

import (
	"errors"
	"strings"
	"sync"
)

var ErrQuestionNotFound = errors.New("questão não encontrada")

const (
	correctScore      = 10
	defaultMaxEntries = 10000
)

type storedAnswer struct {
	CorrectAnswer string
	Explanation   string
	Topic         string
}

// AnswerStore guarda em memória o gabarito de cada questão gerada. O limite
// de entradas evita crescimento sem fim: ao estourar, a entrada mais antiga
// é descartada.
type AnswerStore struct {
	mu         sync.RWMutex
	entries    map[string]storedAnswer
	order      []string
	maxEntries int
}

func NewAnswerStore(maxEntries int) *AnswerStore {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &AnswerStore{
		entries:    make(map[string]storedAnswer),
		maxEntries: maxEntries,
	}
}

// Record insere ou sobrescreve o gabarito da questão. Colisão de id substitui
// a entrada anterior sem aviso.
func (s *AnswerStore) Record(questionID, correctAnswer, explanation, topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[questionID]; !exists {
		s.order = append(s.order, questionID)
		for len(s.order) > s.maxEntries {
			oldest := s.order[0]
			s.order = s.order[1:]
			delete(s.entries, oldest)
		}
	}

	s.entries[questionID] = storedAnswer{
		CorrectAnswer: correctAnswer,
		Explanation:   explanation,
		Topic:         topic,
	}
}

// Verify compara a alternativa enviada com o gabarito, ignorando maiúsculas
// e minúsculas. Acerto vale 10 pontos, erro vale 0.
func (s *AnswerStore) Verify(questionID, selectedAnswer string) (*VerifyResult, error) {
	s.mu.RLock()
	stored, ok := s.entries[questionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrQuestionNotFound
	}

	isCorrect := strings.EqualFold(selectedAnswer, stored.CorrectAnswer)
	score := 0
	if isCorrect {
		score = correctScore
	}

	return &VerifyResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: stored.CorrectAnswer,
		Explanation:   stored.Explanation,
		Score:         score,
	}, nil
}

func (s *AnswerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
