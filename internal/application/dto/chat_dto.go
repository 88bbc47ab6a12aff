package dto

import "time"

type ChatReq struct {
	Prompt         string `json:"prompt" binding:"required"`
	ConversationID string `json:"conversationId"`
}

type ChatResp struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
}

type CreateConversationReq struct {
	Title string `json:"title"`
}

type UpdateTitleReq struct {
	Title string `json:"title" binding:"required,max=100"`
}

type ConversationResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MessageResp struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
