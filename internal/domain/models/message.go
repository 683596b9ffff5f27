// internal/domain/models/message.go
package models

import "time"

// Message is a chat entry in a group. Messages are append-only: once
// created they are never edited or deleted.
//
// NOTE:
//   - SenderName and SenderAvatar are a denormalized snapshot of the
//     sender's identity at send time, not a live reference.
//   - Display order is append order. SentAt is informational; the store
//     never re-sorts, so a wall clock stepping backwards between sends can
//     make timestamps disagree with display order but cannot reorder the
//     conversation.
type Message struct {
	ID           string `json:"id"`
	GroupID      string `json:"group_id"`
	Text         string `json:"text"`
	SenderID     string `json:"sender_id"`
	SenderName   string `json:"sender_name"`
	SenderAvatar string `json:"sender_avatar"`

	SentAt time.Time `json:"sent_at"`
}
