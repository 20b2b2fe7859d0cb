package model

import "github.com/golang-jwt/jwt/v5"

// ConversationChannel is the Centrifugo channel carrying live events for
// one conversation.
func ConversationChannel(conversationID string) string {
	return "conversation:" + conversationID
}

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string       `json:"channel"`
	Data    MessageEvent `json:"data"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID         string `json:"user_id"`
	ConversationID string `json:"conversation_id"`
}
