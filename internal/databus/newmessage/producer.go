package newmessage

import (
	"context"
	"fmt"
	"time"

	kafkalib "github.com/s21platform/kafka-lib"

	"github.com/s21platform/messenger-service/internal/model"
)

// NewMessageEvent is what downstream consumers (search indexing, activity
// scoring) get for every persisted message. They only consume, the
// messenger never reads this topic back.
type NewMessageEvent struct {
	MessageID      string `json:"message_id"`
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
	SentAt         string `json:"sent_at"`
}

type Producer struct {
	producer *kafkalib.KafkaProducer
}

func New(producer *kafkalib.KafkaProducer) *Producer {
	return &Producer{
		producer: producer,
	}
}

func (p *Producer) ProduceNewMessage(ctx context.Context, message *model.Message) error {
	event := NewMessageEvent{
		MessageID:      message.ID.String(),
		ConversationID: message.ConversationID.String(),
		SenderID:       message.SenderID.String(),
		SentAt:         message.CreatedAt.Format(time.RFC3339Nano),
	}

	if err := p.producer.ProduceMessage(ctx, event, message.ConversationID.String()); err != nil {
		return fmt.Errorf("failed to produce new message event: %w", err)
	}

	return nil
}
