package quiz

import (
	"sync"

	"github.com/google/uuid"
)

type upstreamSession struct {
	ID             string
	ConversationID string
}

// SessionRegistry mantém uma conversa do Dify por user_id, para que as
// gerações de um usuário continuem o mesmo contexto sem vazar para outros.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*upstreamSession
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*upstreamSession)}
}

// Conversation retorna o id da sessão e o conversation_id atual do usuário,
// criando a sessão na primeira chamada.
func (r *SessionRegistry) Conversation(userID string) (sessionID, conversationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[userID]
	if !ok {
		session = &upstreamSession{ID: uuid.NewString()}
		r.sessions[userID] = session
	}
	return session.ID, session.ConversationID
}

// SetConversation registra o conversation_id devolvido pelo Dify após uma
// chamada bem-sucedida.
func (r *SessionRegistry) SetConversation(userID, conversationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[userID]; ok {
		session.ConversationID = conversationID
	}
}
