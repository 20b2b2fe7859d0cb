//go:generate mockgen -destination=mock_handler_test.go -package=${GOPACKAGE} -source=handler.go
package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

type DBRepo interface {
	AddNewUser(ctx context.Context, userInfo *model.UserParams) error
}

// Handler keeps the local users projection in sync with the platform user
// topic. Lookups against counterparts never call the user service inline,
// they read this projection.
type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdatedHandler")

	var event model.UserUpdatedEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user event: %v", err))
		return fmt.Errorf("failed to unmarshal user event: %w", err)
	}

	// A message without a user id can never apply, retrying won't help.
	if event.UserID == "" {
		logger.Error("user event without user_id, skipping")
		return nil
	}

	err := h.repository.AddNewUser(ctx, &model.UserParams{
		UserID:    event.UserID,
		Nickname:  event.Nickname,
		AvatarURL: event.AvatarURL,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upsert user %s: %v", event.UserID, err))
		return fmt.Errorf("failed to upsert user %s: %w", event.UserID, err)
	}

	return nil
}
