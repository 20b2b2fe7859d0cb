package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	api "github.com/s21platform/messenger-service/internal/generated"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/editwindow"
	"github.com/s21platform/messenger-service/internal/pkg/errs"
	"github.com/s21platform/messenger-service/internal/pkg/tx"
)

type Handler struct {
	repository       DBRepo
	centrifugeClient CentrifugeClient
	eventProducer    EventProducer
	validator        Validator
	jwtGenerator     JWTGenerator
}

func New(
	repo DBRepo,
	centrifugeClient CentrifugeClient,
	eventProducer EventProducer,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		repository:       repo,
		centrifugeClient: centrifugeClient,
		eventProducer:    eventProducer,
		validator:        validator,
		jwtGenerator:     jwtGenerator,
	}
}

func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateConversation")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	var req api.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateConversation(&req, callerID); err != nil {
		h.handleError(w, logger, err)
		return
	}

	otherUser, err := h.repository.GetUser(r.Context(), req.OtherUserId)
	if err != nil {
		h.handleError(w, logger, err)
		return
	}

	callerUser, err := h.repository.GetUser(r.Context(), callerID)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		h.handleError(w, logger, err)
		return
	}
	if callerUser == nil {
		callerUser = &model.UserParams{UserID: callerID}
	}

	conversation, err := h.repository.GetOrCreateConversation(
		r.Context(), uuid.MustParse(callerID), uuid.MustParse(req.OtherUserId))
	if err != nil {
		h.handleError(w, logger, err)
		return
	}

	response := api.CreateConversationResponse{
		Conversation: toAPIConversation(conversation, []*model.UserParams{callerUser, otherUser}),
	}

	h.writeJSON(w, response, http.StatusCreated)
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	previews, err := h.repository.GetConversationPreviews(r.Context(), callerID)
	if err != nil {
		h.handleError(w, logger, err)
		return
	}

	conversations := make([]api.ConversationPreview, len(*previews))
	for i, preview := range *previews {
		var lastMessageTimestamp *string
		if preview.LastMessageTimestamp != nil {
			timestamp := preview.LastMessageTimestamp.Format(time.RFC3339Nano)
			lastMessageTimestamp = &timestamp
		}

		avatarURL := preview.CompanionAvatarURL
		conversations[i] = api.ConversationPreview{
			ConversationId:       preview.ConversationID,
			CompanionId:          preview.CompanionID,
			CompanionNickname:    preview.CompanionNickname,
			CompanionAvatarUrl:   &avatarURL,
			LastMessageContent:   preview.LastMessageContent,
			LastMessageTimestamp: lastMessageTimestamp,
		}
	}

	response := api.GetConversationsResponse{
		Conversations: conversations,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConversationMessages(w http.ResponseWriter, r *http.Request, conversationId string, params api.GetConversationMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationMessages")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := validatePathID(conversationId, "conversation_id"); err != nil {
		h.handleError(w, logger, err)
		return
	}

	limit, before, err := h.validator.ValidateListParams(params.Limit, params.Before)
	if err != nil {
		h.handleError(w, logger, err)
		return
	}

	if _, err := h.repository.GetConversation(r.Context(), conversationId); err != nil {
		h.handleError(w, logger, err)
		return
	}

	if err := h.requireParticipant(r.Context(), conversationId, callerID); err != nil {
		h.handleError(w, logger, err)
		return
	}

	// Over-fetch one row so has_more reflects actual remaining data rather
	// than page fullness.
	fetched, err := h.repository.GetConversationMessages(r.Context(), conversationId, before, limit+1)
	if err != nil {
		h.handleError(w, logger, err)
		return
	}

	hasMore := len(fetched) > limit
	if hasMore {
		fetched = fetched[:limit]
	}

	messages := make([]api.Message, len(fetched))
	for i := range fetched {
		messages[i] = toAPIMessage(&fetched[i])
	}

	pagination := api.Pagination{
		Limit:   limit,
		Before:  params.Before,
		HasMore: hasMore,
	}
	if len(fetched) > 0 {
		// Cursor is the createdAt of the oldest returned item; the next page
		// uses it with strictly-less-than semantics, so the boundary item is
		// neither repeated nor skipped.
		nextCursor := fetched[len(fetched)-1].CreatedAt.Format(time.RFC3339Nano)
		pagination.NextCursor = &nextCursor
	}

	response := api.GetConversationMessagesResponse{
		Messages:   messages,
		Pagination: pagination,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := validatePathID(conversationId, "conversation_id"); err != nil {
		h.handleError(w, logger, err)
		return
	}

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateContent(req.Content); err != nil {
		h.handleError(w, logger, err)
		return
	}

	var stored *model.Message
	var duplicated bool
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if _, err := h.repository.GetConversation(ctx, conversationId); err != nil {
			return err
		}

		if err := h.requireParticipant(ctx, conversationId, callerID); err != nil {
			return err
		}

		message := &model.Message{
			ID:             uuid.New(),
			ConversationID: uuid.MustParse(conversationId),
			SenderID:       uuid.MustParse(callerID),
			Content:        req.Content,
			IdempotencyKey: req.IdempotencyKey,
		}
		if req.Attachments != nil {
			message.Attachments = types.JSONText(*req.Attachments)
		}

		var err error
		stored, duplicated, err = h.repository.SaveMessage(ctx, message)
		if err != nil {
			return err
		}

		if duplicated {
			return nil
		}

		return h.repository.SetLastMessage(ctx, stored.ConversationID, stored.ID, stored.CreatedAt)
	})
	if err != nil {
		h.handleError(w, logger, err)
		return
	}

	if !duplicated {
		event := model.MessageEvent{Type: model.MessageInsertEvent, Message: *stored}
		if err := h.centrifugeClient.Publish(r.Context(), model.ConversationChannel(conversationId), event); err != nil {
			logger.Error(fmt.Sprintf("failed to publish message event: %v", err))
		}

		if err := h.eventProducer.ProduceNewMessage(r.Context(), stored); err != nil {
			logger.Error(fmt.Sprintf("failed to produce new message event: %v", err))
		}
	}

	response := api.SendMessageResponse{
		Message: toAPIMessage(stored),
	}

	h.writeJSON(w, response, http.StatusCreated)
}

func (h *Handler) MarkConversationRead(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkConversationRead")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := validatePathID(conversationId, "conversation_id"); err != nil {
		h.handleError(w, logger, err)
		return
	}

	// Body is optional: an absent message_ids field means "mark the whole
	// conversation".
	var req api.MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := h.repository.GetConversation(r.Context(), conversationId); err != nil {
		h.handleError(w, logger, err)
		return
	}

	if err := h.requireParticipant(r.Context(), conversationId, callerID); err != nil {
		h.handleError(w, logger, err)
		return
	}

	var messageIDs []string
	if req.MessageIds != nil {
		// Ids that are not uuids can never match a row; dropping them keeps
		// the rest of the batch applying instead of aborting the statement.
		for _, id := range *req.MessageIds {
			if _, err := uuid.Parse(id); err != nil {
				logger.Warn(fmt.Sprintf("dropping malformed message id %q", id))
				continue
			}
			messageIDs = append(messageIDs, id)
		}

		// A present-but-empty filter selects nothing, unlike an absent one.
		if len(messageIDs) == 0 {
			h.writeJSON(w, api.MarkReadResponse{UpdatedCount: 0, MessageIds: []string{}}, http.StatusOK)
			return
		}
	}

	touchedIDs, err := h.repository.MarkMessagesRead(r.Context(), conversationId, callerID, messageIDs)
	if err != nil {
		h.handleError(w, logger, err)
		return
	}

	if touchedIDs == nil {
		touchedIDs = []string{}
	}

	response := api.MarkReadResponse{
		UpdatedCount: len(touchedIDs),
		MessageIds:   touchedIDs,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) ToggleReaction(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ToggleReaction")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := validatePathID(messageId, "message_id"); err != nil {
		h.handleError(w, logger, err)
		return
	}

	var req api.ToggleReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateReactionType(req.Type); err != nil {
		h.handleError(w, logger, err)
		return
	}

	var facts []model.Reaction
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		message, err := h.repository.GetMessage(ctx, messageId)
		if err != nil {
			return err
		}

		if err := h.requireParticipant(ctx, message.ConversationID.String(), callerID); err != nil {
			return err
		}

		if _, err := h.repository.ToggleReaction(ctx, messageId, callerID, req.Type); err != nil {
			return err
		}

		facts, err = h.repository.GetMessageReactions(ctx, messageId)
		return err
	})
	if err != nil {
		h.handleError(w, logger, err)
		return
	}

	groups := model.GroupReactions(facts, callerID)
	reactions := make([]api.ReactionGroup, len(groups))
	for i, group := range groups {
		reactions[i] = api.ReactionGroup{
			Type:           group.Type,
			Count:          group.Count,
			Users:          group.Users,
			HasUserReacted: group.HasUserReacted,
		}
	}

	response := api.ToggleReactionResponse{
		Reactions: reactions,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EditMessage")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := validatePathID(messageId, "message_id"); err != nil {
		h.handleError(w, logger, err)
		return
	}

	var req api.EditMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateContent(req.Content); err != nil {
		h.handleError(w, logger, err)
		return
	}

	var edited *model.Message
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		message, err := h.repository.GetMessageForUpdate(ctx, messageId)
		if err != nil {
			return err
		}

		if message.SenderID.String() != callerID {
			return fmt.Errorf("%w: only the sender may edit", errs.ErrAccessDenied)
		}

		now := time.Now()
		if !editwindow.CanEdit(message.CreatedAt, now) {
			return errs.Validationf("edit window expired")
		}

		if err := h.repository.UpdateMessageContent(ctx, messageId, req.Content, now); err != nil {
			return err
		}

		message.Content = req.Content
		message.UpdatedAt = &now
		edited = message
		return nil
	})
	if err != nil {
		h.handleError(w, logger, err)
		return
	}

	event := model.MessageEvent{Type: model.MessageUpdateEvent, Message: *edited}
	if err := h.centrifugeClient.Publish(r.Context(), model.ConversationChannel(edited.ConversationID.String()), event); err != nil {
		logger.Error(fmt.Sprintf("failed to publish message event: %v", err))
	}

	response := api.EditMessageResponse{
		Message: toAPIMessage(edited),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := validatePathID(messageId, "message_id"); err != nil {
		h.handleError(w, logger, err)
		return
	}

	var removed *model.Message
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		message, err := h.repository.GetMessageForUpdate(ctx, messageId)
		if err != nil {
			return err
		}

		if message.SenderID.String() != callerID {
			return fmt.Errorf("%w: only the sender may delete", errs.ErrAccessDenied)
		}

		if err := h.repository.SoftDeleteMessage(ctx, messageId, time.Now()); err != nil {
			return err
		}

		removed = message
		return nil
	})
	if err != nil {
		h.handleError(w, logger, err)
		return
	}

	event := model.MessageEvent{
		Type: model.MessageDeleteEvent,
		Message: model.Message{
			ID:             removed.ID,
			ConversationID: removed.ConversationID,
			SenderID:       removed.SenderID,
			CreatedAt:      removed.CreatedAt,
		},
	}
	if err := h.centrifugeClient.Publish(r.Context(), model.ConversationChannel(removed.ConversationID.String()), event); err != nil {
		logger.Error(fmt.Sprintf("failed to publish message event: %v", err))
	}

	response := api.DeleteMessageResponse{
		Id: removed.ID.String(),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(callerID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, "failed to generate access token", http.StatusInternalServerError)
		return
	}

	response := api.GetConnectTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := validatePathID(conversationId, "conversation_id"); err != nil {
		h.handleError(w, logger, err)
		return
	}

	if _, err := h.repository.GetConversation(r.Context(), conversationId); err != nil {
		h.handleError(w, logger, err)
		return
	}

	if err := h.requireParticipant(r.Context(), conversationId, callerID); err != nil {
		h.handleError(w, logger, err)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(callerID, conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, "failed to generate subscribe token", http.StatusInternalServerError)
		return
	}

	response := api.GetSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   model.ConversationChannel(conversationId),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetBatchSubscribeTokens(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetBatchSubscribeTokens")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	var req api.GetBatchSubscribeTokensRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var subscriptions []api.ConversationSubscription

	for _, conversationID := range req.ConversationIds {
		if err := validatePathID(conversationID, "conversation_id"); err != nil {
			logger.Warn(fmt.Sprintf("skipping malformed conversation id %q", conversationID))
			continue
		}

		isParticipant, err := h.repository.IsParticipant(r.Context(), conversationID, callerID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to check membership for %s: %v", conversationID, err))
			continue
		}

		if !isParticipant {
			logger.Warn(fmt.Sprintf("user %s is not a participant of conversation %s, skipping", callerID, conversationID))
			continue
		}

		token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(callerID, conversationID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to generate subscribe token for conversation %s: %v", conversationID, err))
			continue
		}

		subscriptions = append(subscriptions, api.ConversationSubscription{
			ConversationId: conversationID,
			Token:          token,
			Channel:        model.ConversationChannel(conversationID),
			ExpiresAt:      expiresAt,
		})
	}

	response := api.GetBatchSubscribeTokensResponse{
		Subscriptions: subscriptions,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

// validatePathID rejects ids that could never address a row, so a garbage
// path segment surfaces as a 400 instead of a store-level failure.
func validatePathID(id, field string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errs.Validationf("%s is not a valid uuid", field)
	}
	return nil
}

func (h *Handler) requireParticipant(ctx context.Context, conversationID, userID string) error {
	isParticipant, err := h.repository.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return err
	}

	if !isParticipant {
		return errs.ErrAccessDenied
	}

	return nil
}

// handleError maps taxonomy errors to statuses; anything unclassified is
// logged in full and surfaced as an opaque internal failure.
func (h *Handler) handleError(w http.ResponseWriter, logger logger_lib.LoggerInterface, err error) {
	logger.Error(err.Error())
	h.writeError(w, errs.Message(err), errs.HTTPStatus(err))
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}

func toAPIMessage(message *model.Message) api.Message {
	readBy := make([]string, 0, len(message.ReadBy))
	readBy = append(readBy, message.ReadBy...)

	var attachments *json.RawMessage
	if len(message.Attachments) > 0 {
		raw := json.RawMessage(message.Attachments)
		attachments = &raw
	}

	var updatedAt *string
	if message.UpdatedAt != nil {
		timestamp := message.UpdatedAt.Format(time.RFC3339Nano)
		updatedAt = &timestamp
	}

	return api.Message{
		Id:             message.ID.String(),
		ConversationId: message.ConversationID.String(),
		SenderId:       message.SenderID.String(),
		Content:        message.Content,
		Attachments:    attachments,
		ReadBy:         readBy,
		IsEdited:       editwindow.IsEdited(message.CreatedAt, message.UpdatedAt),
		CreatedAt:      message.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:      updatedAt,
	}
}

func toAPIConversation(conversation *model.Conversation, participants []*model.UserParams) api.Conversation {
	apiParticipants := make([]api.Participant, 0, len(participants))
	for _, participant := range participants {
		avatarURL := participant.AvatarURL
		apiParticipants = append(apiParticipants, api.Participant{
			Id:        participant.UserID,
			Nickname:  participant.Nickname,
			AvatarUrl: &avatarURL,
		})
	}

	var lastMessageID *string
	if conversation.LastMessageID != nil {
		id := conversation.LastMessageID.String()
		lastMessageID = &id
	}

	return api.Conversation{
		Id:            conversation.ID.String(),
		Participants:  apiParticipants,
		LastMessageId: lastMessageID,
		CreatedAt:     conversation.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:     conversation.UpdatedAt.Format(time.RFC3339Nano),
	}
}
