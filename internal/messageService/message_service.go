package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-market/internal/marketerrors"
	"campus-market/internal/models"
	"campus-market/internal/repository"
	"campus-market/utils"
)

// MessageService records and queries the direct messages between users.
// History is append-only: no edit, no delete, ordering by timestamp only.
type MessageService struct {
	messages repository.MessageStore
	accounts repository.AccountStore
}

// NewMessageService creates a new MessageService instance
func NewMessageService(messages repository.MessageStore, accounts repository.AccountStore) *MessageService {
	return &MessageService{
		messages: messages,
		accounts: accounts,
	}
}

// Send appends a message from fromID to the user addressed by toRef, which
// may be an internal user id or a public account handle. A message must
// carry text, an image path, or both.
func (s *MessageService) Send(ctx context.Context, fromID, toRef, content, imagePath string) (models.Message, error) {
	if content == "" && imagePath == "" {
		return models.Message{}, fmt.Errorf("service: %w - message must include text or image", marketerrors.ErrValidation)
	}
	to, err := s.resolve(ctx, toRef)
	if err != nil {
		return models.Message{}, fmt.Errorf("service: send message: %w", err)
	}

	m := models.Message{
		ID:      utils.GenerateID(),
		From:    fromID,
		To:      to.ID,
		Content: content,
		Image:   imagePath,
		SentAt:  time.Now().UTC(),
	}
	if err := s.messages.AppendMessage(ctx, m); err != nil {
		return models.Message{}, fmt.Errorf("service: failed to record message: %w", err)
	}
	return m, nil
}

// History returns both directions of the exchange with the addressed user,
// oldest first.
func (s *MessageService) History(ctx context.Context, userID, otherRef string) ([]models.Message, error) {
	other, err := s.resolve(ctx, otherRef)
	if err != nil {
		return nil, fmt.Errorf("service: message history: %w", err)
	}
	msgs, err := s.messages.MessagesBetween(ctx, userID, other.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load history with %s: %w", other.ID, err)
	}
	return msgs, nil
}

// Conversations returns the latest message per counterpart, newest first
func (s *MessageService) Conversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	convos, err := s.messages.LatestByCounterpart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load conversations for %s: %w", userID, err)
	}
	return convos, nil
}

// resolve looks the reference up as a user id first, then as an account
// handle
func (s *MessageService) resolve(ctx context.Context, ref string) (models.User, error) {
	u, err := s.accounts.GetUser(ctx, ref)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, marketerrors.ErrUserNotFound) {
		return models.User{}, err
	}
	return s.accounts.GetUserByAccountID(ctx, ref)
}
