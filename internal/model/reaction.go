package model

import (
	"time"
)

// ReactionCatalog is the fixed set of reaction types in display order.
// Groups are always returned in this order regardless of insertion order.
var ReactionCatalog = []string{"like", "love", "haha", "wow", "sad", "angry"}

func IsKnownReactionType(reactionType string) bool {
	for _, t := range ReactionCatalog {
		if t == reactionType {
			return true
		}
	}
	return false
}

type Reaction struct {
	MessageID string    `db:"message_id" json:"message_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Type      string    `db:"type" json:"type"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ReactionGroup struct {
	Type           string   `json:"type"`
	Count          int      `json:"count"`
	Users          []string `json:"users"`
	HasUserReacted bool     `json:"has_user_reacted"`
}

// GroupReactions projects raw reaction facts into per-type aggregates for a
// given viewer. Types with no live facts are omitted. The projection is
// computed from current facts on every call, it is never cached.
func GroupReactions(facts []Reaction, viewerID string) []ReactionGroup {
	byType := make(map[string][]Reaction, len(ReactionCatalog))
	for _, fact := range facts {
		byType[fact.Type] = append(byType[fact.Type], fact)
	}

	groups := make([]ReactionGroup, 0, len(byType))
	for _, reactionType := range ReactionCatalog {
		typeFacts := byType[reactionType]
		if len(typeFacts) == 0 {
			continue
		}

		group := ReactionGroup{
			Type:  reactionType,
			Count: len(typeFacts),
			Users: make([]string, 0, len(typeFacts)),
		}
		for _, fact := range typeFacts {
			group.Users = append(group.Users, fact.UserID)
			if fact.UserID == viewerID {
				group.HasUserReacted = true
			}
		}
		groups = append(groups, group)
	}

	return groups
}
