package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

type MessageList []Message

type Message struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	ConversationID uuid.UUID      `db:"conversation_id" json:"conversation_id"`
	SenderID       uuid.UUID      `db:"sender_id" json:"sender_id"`
	Content        string         `db:"content" json:"content"`
	Attachments    types.JSONText `db:"attachments" json:"attachments,omitempty"`
	Metadata       types.JSONText `db:"metadata" json:"metadata,omitempty"`
	ReadBy         pq.StringArray `db:"read_by" json:"read_by"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time     `db:"updated_at" json:"updated_at,omitempty"`
	DeletedAt      *time.Time     `db:"deleted_at" json:"-"`
	IdempotencyKey *string        `db:"idempotency_key" json:"-"`
}

// IsReadBy reports whether userID is already in the read_by set.
func (m *Message) IsReadBy(userID string) bool {
	for _, id := range m.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}

type MessageEventType string

const (
	MessageInsertEvent MessageEventType = "message.insert"
	MessageUpdateEvent MessageEventType = "message.update"
	MessageDeleteEvent MessageEventType = "message.delete"
)

// MessageEvent is the payload pushed to live subscribers. Delete events
// carry the message with its id and conversation id only.
type MessageEvent struct {
	Type    MessageEventType `json:"type"`
	Message Message          `json:"message"`
}
