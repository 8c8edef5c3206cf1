package dify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/saulo-duarte/quizchat/internal/config"
)

const (
	chatMessagesPath = "/chat-messages"
	requestTimeout   = 60 * time.Second
)

var ErrNotConfigured = errors.New("configuração do Dify ausente (DIFY_API_KEY)")

// UpstreamError indica que a API Dify respondeu com status diferente de 200.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("erro da API Dify (status %d): %s", e.Status, e.Body)
}

// TransportError indica falha de rede antes de obter qualquer resposta.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("erro de requisição ao Dify: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type chatRequest struct {
	Inputs         map[string]interface{} `json:"inputs"`
	Query          string                 `json:"query"`
	ResponseMode   string                 `json:"response_mode"`
	ConversationID string                 `json:"conversation_id"`
	User           string                 `json:"user"`
}

type chatResponse struct {
	ConversationID string `json:"conversation_id"`
	Answer         string `json:"answer"`
}

// Send envia um prompt no modo blocking e retorna o texto da resposta junto
// com o conversation_id devolvido pela API (vazio quando ausente).
func (c *Client) Send(ctx context.Context, query, conversationID string) (string, string, error) {
	log := config.WithContext(ctx)

	if c.apiKey == "" || c.baseURL == "" {
		return "", "", ErrNotConfigured
	}

	payload, err := json.Marshal(chatRequest{
		Inputs:         map[string]interface{}{},
		Query:          query,
		ResponseMode:   "blocking",
		ConversationID: conversationID,
		User:           "quiz_generator",
	})
	if err != nil {
		return "", "", fmt.Errorf("falha ao serializar requisição ao Dify: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatMessagesPath, bytes.NewReader(payload))
	if err != nil {
		return "", "", fmt.Errorf("falha ao montar requisição ao Dify: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Erro de rede ao chamar a API Dify")
		return "", "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("Erro ao ler resposta da API Dify")
		return "", "", &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		log.Errorf("API Dify retornou status %d", resp.StatusCode)
		return "", "", &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", "", fmt.Errorf("falha ao decodificar resposta do Dify: %w", err)
	}

	log.Debugf("[DIFY] Resposta bruta:\n%s", chatResp.Answer)
	return chatResp.Answer, chatResp.ConversationID, nil
}
