// internal/app/store/workspace/groups.go
package workspace

import (
	"strings"

	"github.com/dalemusser/syncgroup/internal/app/system/htmlsanitize"
	"github.com/dalemusser/syncgroup/internal/app/system/ids"
	"github.com/dalemusser/syncgroup/internal/app/system/normalize"
	"github.com/dalemusser/syncgroup/internal/domain/models"
	"go.uber.org/zap"
)

// CreateGroup appends a new group with the creator as its sole member and
// makes it the active group. Returns the created group and true, or a zero
// group and false when the name is blank or no creator identity exists.
func (s *Store) CreateGroup(name, description string, creator models.User) (models.Group, bool) {
	name = normalize.Name(name)
	if name == "" || creator.UID == "" {
		return models.Group{}, false
	}

	g := models.Group{
		ID:          ids.New(),
		Name:        name,
		NameCI:      normalize.Fold(name),
		Description: htmlsanitize.Sanitize(strings.TrimSpace(description)),
		CreatedBy:   creator.UID,
		Members:     []string{creator.UID},
		InviteCode:  ids.InviteCode(),
		CreatedAt:   s.now().UTC(),
	}

	s.mu.Lock()
	s.groups = append(s.groups, g)
	s.activeGroupID = g.ID
	s.mu.Unlock()

	s.log.Info("group created",
		zap.String("group_id", g.ID),
		zap.String("name", g.Name),
		zap.String("created_by", creator.UID))
	return cloneGroup(g), true
}

// Groups returns all groups in creation order.
func (s *Store) Groups() []models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Group, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, cloneGroup(g))
	}
	return out
}

// ActiveGroup returns the currently selected group, if any.
func (s *Store) ActiveGroup() (models.Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.groups {
		if g.ID == s.activeGroupID {
			return cloneGroup(g), true
		}
	}
	return models.Group{}, false
}

// ActiveGroupID returns the active-group pointer, empty when none is set.
func (s *Store) ActiveGroupID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeGroupID
}

// SetActiveGroup moves the active-group pointer. Selecting an unknown id
// is a no-op and returns false.
func (s *Store) SetActiveGroup(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasGroup(id) {
		return false
	}
	s.activeGroupID = id
	return true
}

// SearchGroups returns groups whose name contains the query, matched
// case- and diacritic-insensitively. A blank query returns all groups.
func (s *Store) SearchGroups(query string) []models.Group {
	q := normalize.Fold(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Group, 0, len(s.groups))
	for _, g := range s.groups {
		if q == "" || strings.Contains(g.NameCI, q) {
			out = append(out, cloneGroup(g))
		}
	}
	return out
}
