package validator

import (
	"strings"
	"time"

	"github.com/google/uuid"

	api "github.com/s21platform/messenger-service/internal/generated"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/errs"
)

const (
	maxContentLength = 2000

	MinPageLimit = 1
	MaxPageLimit = 100

	defaultPageLimit = 20
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateConversation(req *api.CreateConversationRequest, callerID string) error {
	otherID := strings.TrimSpace(req.OtherUserId)
	if otherID == "" {
		return errs.Validationf("other_user_id is required")
	}

	if _, err := uuid.Parse(otherID); err != nil {
		return errs.Validationf("other_user_id is not a valid uuid")
	}

	if otherID == callerID {
		return errs.Validationf("cannot start a conversation with yourself")
	}

	return nil
}

func (v *Validator) ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errs.Validationf("content cannot be empty")
	}

	if len([]rune(content)) > maxContentLength {
		return errs.Validationf("content exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}

// ValidateListParams checks the pagination contract and parses the cursor.
// A nil limit falls back to the default page size.
func (v *Validator) ValidateListParams(limit *int, before *string) (int, *time.Time, error) {
	pageLimit := defaultPageLimit
	if limit != nil {
		pageLimit = *limit
	}

	if pageLimit < MinPageLimit || pageLimit > MaxPageLimit {
		return 0, nil, errs.Validationf("limit must be between %d and %d", MinPageLimit, MaxPageLimit)
	}

	if before == nil || *before == "" {
		return pageLimit, nil, nil
	}

	cursor, err := time.Parse(time.RFC3339Nano, *before)
	if err != nil {
		return 0, nil, errs.Validationf("before is not a valid timestamp")
	}

	return pageLimit, &cursor, nil
}

func (v *Validator) ValidateReactionType(reactionType string) error {
	if !model.IsKnownReactionType(reactionType) {
		return errs.Validationf("reaction type '%s' is not supported", reactionType)
	}

	return nil
}
