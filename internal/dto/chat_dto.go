package dto

import "time"

type ChatRequest struct {
	Message   string `json:"message" validate:"required,max=1000"`
	SessionId string `json:"session_id,omitempty" validate:"omitempty,max=64"`
}

// ChatResponse is the fixed-shape turn response. Every handler fills Message
// and Type; Suggestions are the quick-reply chips.
type ChatResponse struct {
	SessionId   string   `json:"session_id"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	Type        string   `json:"type"`
}

type TranscriptEntry struct {
	Speaker string    `json:"speaker"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

type TranscriptResponse struct {
	SessionId string            `json:"session_id"`
	Turns     []TranscriptEntry `json:"turns"`
}
