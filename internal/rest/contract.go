//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	api "github.com/s21platform/messenger-service/internal/generated"
	"github.com/s21platform/messenger-service/internal/model"
)

type DBRepo interface {
	GetUser(ctx context.Context, userID string) (*model.UserParams, error)

	GetOrCreateConversation(ctx context.Context, userA, userB uuid.UUID) (*model.Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error)
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)
	GetConversationPreviews(ctx context.Context, requesterID string) (*model.ConversationPreviewList, error)
	SetLastMessage(ctx context.Context, conversationID, messageID uuid.UUID, sentAt time.Time) error

	SaveMessage(ctx context.Context, message *model.Message) (*model.Message, bool, error)
	GetConversationMessages(ctx context.Context, conversationID string, before *time.Time, limit int) (model.MessageList, error)
	GetMessage(ctx context.Context, messageID string) (*model.Message, error)
	GetMessageForUpdate(ctx context.Context, messageID string) (*model.Message, error)
	UpdateMessageContent(ctx context.Context, messageID, content string, updatedAt time.Time) error
	SoftDeleteMessage(ctx context.Context, messageID string, deletedAt time.Time) error
	MarkMessagesRead(ctx context.Context, conversationID, userID string, messageIDs []string) ([]string, error)

	ToggleReaction(ctx context.Context, messageID, userID, reactionType string) (bool, error)
	GetMessageReactions(ctx context.Context, messageID string) ([]model.Reaction, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type CentrifugeClient interface {
	Publish(ctx context.Context, channel string, event model.MessageEvent) error
}

type EventProducer interface {
	ProduceNewMessage(ctx context.Context, message *model.Message) error
}

type Validator interface {
	ValidateCreateConversation(req *api.CreateConversationRequest, callerID string) error
	ValidateContent(content string) error
	ValidateListParams(limit *int, before *string) (int, *time.Time, error)
	ValidateReactionType(reactionType string) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, conversationID string) (string, int64, error)
	ValidateConnectToken(tokenString string) (*model.CentrifugoConnectClaims, error)
	ValidateSubscribeToken(tokenString string) (*model.CentrifugoSubscribeClaims, error)
}
