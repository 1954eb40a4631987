package apiclient

import (
	"context"
	"net/http"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
)

// TrainerAPI wraps the AI-trainer conversation endpoints.
type TrainerAPI struct {
	client *Client
}

func NewTrainerAPI(client *Client) *TrainerAPI {
	return &TrainerAPI{client: client}
}

// GetChatHistory returns the user's conversations, newest first.
func (a *TrainerAPI) GetChatHistory(ctx context.Context) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	if err := a.client.do(ctx, http.MethodGet, "/trainer/conversations", nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// CreateNewConversation starts an empty conversation and returns its id.
func (a *TrainerAPI) CreateNewConversation(ctx context.Context) (string, error) {
	var conversation domain.Conversation
	if err := a.client.do(ctx, http.MethodPost, "/trainer/conversations", nil, &conversation); err != nil {
		return "", err
	}
	return conversation.ID, nil
}

type sendMessageRequest struct {
	ConversationID string `json:"conversationId"`
	Text           string `json:"text"`
	Locale         string `json:"locale,omitempty"`
}

// SendMessage posts a user message and returns the trainer's reply.
func (a *TrainerAPI) SendMessage(ctx context.Context, conversationID, text, locale string) (*domain.ChatMessage, error) {
	var reply domain.ChatMessage
	req := sendMessageRequest{ConversationID: conversationID, Text: text, Locale: locale}
	if err := a.client.do(ctx, http.MethodPost, "/trainer/messages", req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
