// internal/app/system/ids/ids.go

// Package ids generates identifiers for workspace entities.
//
// Entity ids are full UUIDv4 strings, so uniqueness within a process
// lifetime holds with negligible collision probability. Invite codes keep
// the short, human-shareable uppercase shape but also draw their entropy
// from a UUID.
package ids

import (
	"strings"

	"github.com/google/uuid"
)

// InviteCodeLen is the length of a group invite code.
const InviteCodeLen = 10

// New returns a fresh entity id.
func New() string {
	return uuid.New().String()
}

// InviteCode returns a short uppercase join code for a group.
func InviteCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:InviteCodeLen])
}
