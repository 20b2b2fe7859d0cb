package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	UserA         uuid.UUID  `db:"user_a" json:"user_a"`
	UserB         uuid.UUID  `db:"user_b" json:"user_b"`
	LastMessageID *uuid.UUID `db:"last_message_id" json:"last_message_id,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// NormalizePair orders two participant ids so that (A,B) and (B,A) address
// the same conversation row.
func NormalizePair(first, second uuid.UUID) (uuid.UUID, uuid.UUID) {
	if strings.Compare(first.String(), second.String()) > 0 {
		return second, first
	}
	return first, second
}

type ConversationPreviewList []ConversationPreview

type ConversationPreview struct {
	ConversationID       string     `db:"conversation_id"`
	CompanionID          string     `db:"companion_id"`
	CompanionNickname    string     `db:"companion_nickname"`
	CompanionAvatarURL   string     `db:"companion_avatar_url"`
	LastMessageContent   *string    `db:"last_message_content"`
	LastMessageTimestamp *time.Time `db:"last_message_timestamp"`
}
