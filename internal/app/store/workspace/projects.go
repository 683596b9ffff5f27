// internal/app/store/workspace/projects.go
package workspace

import (
	"strings"
	"time"

	"github.com/dalemusser/syncgroup/internal/app/system/htmlsanitize"
	"github.com/dalemusser/syncgroup/internal/app/system/ids"
	"github.com/dalemusser/syncgroup/internal/app/system/normalize"
	"github.com/dalemusser/syncgroup/internal/domain/models"
	"go.uber.org/zap"
)

// CreateProject appends a project to the group with a deadline of now plus
// durationDays. A non-positive duration is legal and yields a past or
// immediate deadline. Silent no-op when the title is blank or the group id
// references nothing.
func (s *Store) CreateProject(groupID, title, description string, durationDays int) (models.Project, bool) {
	title = normalize.Title(title)
	if groupID == "" || title == "" {
		return models.Project{}, false
	}

	now := s.now().UTC()
	p := models.Project{
		ID:          ids.New(),
		GroupID:     groupID,
		Title:       title,
		Description: htmlsanitize.Sanitize(strings.TrimSpace(description)),
		Deadline:    now.Add(time.Duration(durationDays) * 24 * time.Hour),
		CreatedAt:   now,
	}

	s.mu.Lock()
	if !s.hasGroup(groupID) {
		s.mu.Unlock()
		return models.Project{}, false
	}
	s.projects = append(s.projects, p)
	s.mu.Unlock()

	s.log.Info("project created",
		zap.String("project_id", p.ID),
		zap.String("group_id", groupID),
		zap.String("title", p.Title),
		zap.Time("deadline", p.Deadline))
	return p, true
}

// ProjectsForGroup returns the group's projects in creation order.
func (s *Store) ProjectsForGroup(groupID string) []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Project
	for _, p := range s.projects {
		if p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return out
}
