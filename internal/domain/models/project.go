// internal/domain/models/project.go
package models

import "time"

// Project is a deadline-bound goal inside a group, broken down into tasks.
//
// NOTE:
//   - Deadline may already be in the past at creation time (a non-positive
//     duration is legal); the countdown simply reports it as passed.
//   - Projects are never updated or deleted once created.
type Project struct {
	ID          string `json:"id"`
	GroupID     string `json:"group_id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Deadline  time.Time `json:"deadline"`
	CreatedAt time.Time `json:"created_at"`
}
