package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/errs"
)

type ctxKey string

const keySqlTx = ctxKey("sqlTx")

var messageColumns = []string{
	"id",
	"conversation_id",
	"sender_id",
	"content",
	"attachments",
	"metadata",
	"read_by",
	"created_at",
	"updated_at",
	"deleted_at",
}

// DB is the executor resolved per call: the open transaction when one is
// carried in context, the pooled connection otherwise.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	transaction, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := cb(context.WithValue(ctx, keySqlTx, transaction)); err != nil {
		_ = transaction.Rollback()
		return err
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *Repository) Chk(ctx context.Context) DB {
	if transaction, ok := ctx.Value(keySqlTx).(*sqlx.Tx); ok {
		return transaction
	}
	return r.connection
}

// ----------------------------- users -----------------------------

func (r *Repository) AddNewUser(ctx context.Context, userInfo *model.UserParams) error {
	query, args, err := sq.Insert("users").
		Columns("id", "nickname", "avatar_url").
		Values(userInfo.UserID, userInfo.Nickname, userInfo.AvatarURL).
		Suffix("ON CONFLICT (id) DO UPDATE SET nickname = EXCLUDED.nickname, avatar_url = EXCLUDED.avatar_url").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateUserNickname(ctx context.Context, userUUID, newNickname string) error {
	query, args, err := sq.Update("users").
		Set("nickname", newNickname).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateUserAvatar(ctx context.Context, userUUID, avatarLink string) error {
	query, args, err := sq.Update("users").
		Set("avatar_url", avatarLink).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetUser(ctx context.Context, userID string) (*model.UserParams, error) {
	query, args, err := sq.Select("id", "nickname", "avatar_url").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.UserParams
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFoundf("user %s not found", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return &user, nil
}

// ----------------------------- conversations -----------------------------

// GetOrCreateConversation resolves the normalized pair to exactly one row.
// The no-op DO UPDATE makes RETURNING yield the existing row on conflict,
// so concurrent (A,B) and (B,A) calls land on the same conversation without
// a read-then-insert race.
func (r *Repository) GetOrCreateConversation(ctx context.Context, userA, userB uuid.UUID) (*model.Conversation, error) {
	first, second := model.NormalizePair(userA, userB)

	query, args, err := sq.Insert("conversations").
		Columns("user_a", "user_b").
		Values(first, second).
		Suffix("ON CONFLICT (user_a, user_b) DO UPDATE SET user_a = EXCLUDED.user_a " +
			"RETURNING id, user_a, user_b, last_message_id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create conversation: %v", err)
	}

	return &conversation, nil
}

func (r *Repository) GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error) {
	query, args, err := sq.Select("id", "user_a", "user_b", "last_message_id", "created_at", "updated_at").
		From("conversations").
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFoundf("conversation not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %v", err)
	}

	return &conversation, nil
}

func (r *Repository) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	query, args, err := sq.
		Select("COUNT(*) > 0").
		From("conversations").
		Where(sq.Eq{"id": conversationID}).
		Where(sq.Or{
			sq.Eq{"user_a": userID},
			sq.Eq{"user_b": userID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var isParticipant bool
	err = r.Chk(ctx).GetContext(ctx, &isParticipant, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check conversation membership: %v", err)
	}

	return isParticipant, nil
}

func (r *Repository) GetConversationPreviews(ctx context.Context, requesterID string) (*model.ConversationPreviewList, error) {
	query := sq.Select(
		"c.id AS conversation_id",
		"u.id AS companion_id",
		"u.nickname AS companion_nickname",
		"u.avatar_url AS companion_avatar_url",
		"(SELECT m.content FROM messages m WHERE m.conversation_id = c.id AND m.deleted_at IS NULL "+
			"ORDER BY m.created_at DESC, m.id DESC LIMIT 1) AS last_message_content",
		"(SELECT m.created_at FROM messages m WHERE m.conversation_id = c.id AND m.deleted_at IS NULL "+
			"ORDER BY m.created_at DESC, m.id DESC LIMIT 1) AS last_message_timestamp",
	).
		From("conversations c").
		Join("users u ON u.id = CASE WHEN c.user_a = ? THEN c.user_b ELSE c.user_a END", requesterID).
		Where(sq.Or{
			sq.Eq{"c.user_a": requesterID},
			sq.Eq{"c.user_b": requesterID},
		}).
		OrderBy("c.updated_at DESC").
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var previews model.ConversationPreviewList
	err = r.Chk(ctx).SelectContext(ctx, &previews, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation previews: %v", err)
	}

	return &previews, nil
}

func (r *Repository) SetLastMessage(ctx context.Context, conversationID, messageID uuid.UUID, sentAt time.Time) error {
	query, args, err := sq.Update("conversations").
		Set("last_message_id", messageID).
		Set("updated_at", sentAt).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set last message: %v", err)
	}

	return nil
}

// ----------------------------- messages -----------------------------

// SaveMessage persists a message. When an idempotency key is supplied and a
// message with the same key already exists in the conversation, the
// original row is returned with duplicated = true and nothing is written.
func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) (*model.Message, bool, error) {
	returning := "RETURNING " + strings.Join(messageColumns, ", ")

	suffix := returning
	if message.IdempotencyKey != nil {
		suffix = "ON CONFLICT (conversation_id, idempotency_key) WHERE idempotency_key IS NOT NULL DO NOTHING " + returning
	}

	query, args, err := sq.Insert("messages").
		Columns("id", "conversation_id", "sender_id", "content", "attachments", "metadata", "idempotency_key").
		Values(message.ID, message.ConversationID, message.SenderID, message.Content,
			message.Attachments, message.Metadata, message.IdempotencyKey).
		Suffix(suffix).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stored model.Message
	err = r.Chk(ctx).GetContext(ctx, &stored, query, args...)
	if errors.Is(err, sql.ErrNoRows) && message.IdempotencyKey != nil {
		original, err := r.getMessageByIdempotencyKey(ctx, message.ConversationID.String(), *message.IdempotencyKey)
		if err != nil {
			return nil, false, err
		}
		return original, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to save message: %v", err)
	}

	return &stored, false, nil
}

func (r *Repository) getMessageByIdempotencyKey(ctx context.Context, conversationID, key string) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID, "idempotency_key": key}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get message by idempotency key: %v", err)
	}

	return &message, nil
}

// GetConversationMessages returns up to limit messages ordered newest first
// by (created_at, id). Messages at or after the before cursor are excluded,
// so the cursor value itself never reappears on the next page.
func (r *Repository) GetConversationMessages(ctx context.Context, conversationID string, before *time.Time, limit int) (model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	if before != nil {
		queryBuilder = queryBuilder.Where(sq.Lt{"created_at": *before})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation messages: %v", err)
	}

	return messages, nil
}

func (r *Repository) GetMessage(ctx context.Context, messageID string) (*model.Message, error) {
	return r.getMessage(ctx, messageID, false)
}

// GetMessageForUpdate locks the row for the rest of the transaction, so
// edit-window and sender checks cannot race a concurrent mutation.
func (r *Repository) GetMessageForUpdate(ctx context.Context, messageID string) (*model.Message, error) {
	return r.getMessage(ctx, messageID, true)
}

func (r *Repository) getMessage(ctx context.Context, messageID string, forUpdate bool) (*model.Message, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": messageID}).
		Where(sq.Eq{"deleted_at": nil})

	if forUpdate {
		queryBuilder = queryBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFoundf("message not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	return &message, nil
}

func (r *Repository) UpdateMessageContent(ctx context.Context, messageID, content string, updatedAt time.Time) error {
	query, args, err := sq.Update("messages").
		Set("content", content).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": messageID}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update message content: %v", err)
	}

	return nil
}

func (r *Repository) SoftDeleteMessage(ctx context.Context, messageID string, deletedAt time.Time) error {
	query, args, err := sq.Update("messages").
		Set("deleted_at", deletedAt).
		Where(sq.Eq{"id": messageID}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to soft delete message: %v", err)
	}

	return nil
}

// MarkMessagesRead appends the reader to read_by on every eligible message
// in one statement. The append is a set union guarded by the containment
// check, so concurrent readers and devices never overwrite each other's
// marks. Returns the ids actually touched; already-read and own messages
// fall through untouched.
func (r *Repository) MarkMessagesRead(ctx context.Context, conversationID, userID string, messageIDs []string) ([]string, error) {
	queryBuilder := sq.Update("messages").
		Set("read_by", sq.Expr("array_append(read_by, ?)", userID)).
		Where(sq.Eq{"conversation_id": conversationID}).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.NotEq{"sender_id": userID}).
		Where(sq.Expr("NOT (read_by @> ARRAY[?])", userID)).
		Suffix("RETURNING id")

	if len(messageIDs) > 0 {
		queryBuilder = queryBuilder.Where(sq.Eq{"id": messageIDs})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var touchedIDs []string
	err = r.Chk(ctx).SelectContext(ctx, &touchedIDs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %v", err)
	}

	return touchedIDs, nil
}

// ----------------------------- reactions -----------------------------

// ToggleReaction removes the live fact for (message, user, type) when it
// exists and inserts it otherwise. Returns true when the toggle added the
// reaction.
func (r *Repository) ToggleReaction(ctx context.Context, messageID, userID, reactionType string) (bool, error) {
	query, args, err := sq.Delete("message_reactions").
		Where(sq.Eq{
			"message_id": messageID,
			"user_id":    userID,
			"type":       reactionType,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete reaction: %v", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %v", err)
	}
	if deleted > 0 {
		return false, nil
	}

	query, args, err = sq.Insert("message_reactions").
		Columns("message_id", "user_id", "type").
		Values(messageID, userID, reactionType).
		Suffix("ON CONFLICT (message_id, user_id, type) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to insert reaction: %v", err)
	}

	return true, nil
}

func (r *Repository) GetMessageReactions(ctx context.Context, messageID string) ([]model.Reaction, error) {
	query, args, err := sq.Select("message_id", "user_id", "type", "created_at").
		From("message_reactions").
		Where(sq.Eq{"message_id": messageID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reactions []model.Reaction
	err = r.Chk(ctx).SelectContext(ctx, &reactions, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get message reactions: %v", err)
	}

	return reactions, nil
}
