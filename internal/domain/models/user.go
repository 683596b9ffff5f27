// internal/domain/models/user.go
package models

// User is the identity the authentication collaborator resolves at login.
//
// NOTE:
//   - The identity is immutable for the lifetime of the session.
//   - No collection of users exists; the session carries only its own
//     identity, and messages snapshot the sender fields they need.
type User struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatar_url"`
}
