// internal/app/store/workspace/snapshot.go
package workspace

import "github.com/dalemusser/syncgroup/internal/domain/models"

// Snapshot is the read-only view handed to the presentation layer after a
// mutation: the four collections plus the active-group pointer. All slices
// are copies; mutating a snapshot never touches store state.
type Snapshot struct {
	Groups        []models.Group   `json:"groups"`
	Messages      []models.Message `json:"messages"`
	Projects      []models.Project `json:"projects"`
	Tasks         []models.Task    `json:"tasks"`
	ActiveGroupID string           `json:"active_group_id"`
}

// Snapshot exports the current state for read-only consumption.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Groups:        make([]models.Group, 0, len(s.groups)),
		Messages:      append([]models.Message(nil), s.messages...),
		Projects:      append([]models.Project(nil), s.projects...),
		Tasks:         make([]models.Task, 0, len(s.tasks)),
		ActiveGroupID: s.activeGroupID,
	}
	for _, g := range s.groups {
		snap.Groups = append(snap.Groups, cloneGroup(g))
	}
	for _, t := range s.tasks {
		snap.Tasks = append(snap.Tasks, cloneTask(t))
	}
	return snap
}
