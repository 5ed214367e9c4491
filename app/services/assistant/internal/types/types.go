// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ChatRequest struct {
	ConversationId string `json:"conversation_id"`
	Text           string `json:"text"`
}

type ChatResponse struct {
	Text     string     `json:"text"`
	Keyboard [][]string `json:"keyboard,omitempty"`
}
