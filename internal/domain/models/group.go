// internal/domain/models/group.go
package models

import "time"

// Group is a collaboration space owning messages and projects.
//
// NOTE:
//   - CreatedBy is always present in Members; the store establishes the
//     creator as the sole initial member.
//   - InviteCode is an opaque join token, unique per group. Join-by-code
//     itself is not implemented; the code exists so a group can be shared.
//   - Groups are never updated or deleted once created.
type Group struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameCI      string   `json:"name_ci"` // lowercase, diacritics-stripped
	Description string   `json:"description"`
	CreatedBy   string   `json:"created_by"`
	Members     []string `json:"members"`
	InviteCode  string   `json:"invite_code"`

	CreatedAt time.Time `json:"created_at"`
}

// HasMember reports whether the user id is in the member set.
func (g Group) HasMember(uid string) bool {
	for _, m := range g.Members {
		if m == uid {
			return true
		}
	}
	return false
}
