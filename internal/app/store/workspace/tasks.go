// internal/app/store/workspace/tasks.go
package workspace

import (
	"math"

	"github.com/dalemusser/syncgroup/internal/app/system/ids"
	"github.com/dalemusser/syncgroup/internal/app/system/normalize"
	"github.com/dalemusser/syncgroup/internal/domain/models"
	"go.uber.org/zap"
)

// AddTask appends a pending task to the project, assigned to the default
// assignee. An empty assignee is tolerated as a placeholder when no user
// context exists. Silent no-op when the title is blank or the project id
// references nothing.
func (s *Store) AddTask(projectID, title, defaultAssignee string) (models.Task, bool) {
	title = normalize.Title(title)
	if projectID == "" || title == "" {
		return models.Task{}, false
	}

	t := models.Task{
		ID:         ids.New(),
		ProjectID:  projectID,
		Title:      title,
		Status:     models.StatusPending,
		AssignedTo: []string{defaultAssignee},
	}

	s.mu.Lock()
	if !s.hasProject(projectID) {
		s.mu.Unlock()
		return models.Task{}, false
	}
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()

	s.log.Info("task added",
		zap.String("task_id", t.ID),
		zap.String("project_id", projectID),
		zap.String("title", t.Title))
	return cloneTask(t), true
}

// UpdateTaskStatus replaces the status of the matching task. An unknown
// task id leaves the collection unchanged, and re-applying the current
// status is a no-op, so the operation is idempotent.
func (s *Store) UpdateTaskStatus(taskID string, status models.TaskStatus) {
	s.mu.Lock()
	changed := false
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			if s.tasks[i].Status != status {
				s.tasks[i].Status = status
				changed = true
			}
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.log.Info("task status updated",
			zap.String("task_id", taskID),
			zap.String("status", string(status)))
	}
}

// AssignTask appends a user to the task's assignee set. No-op when the
// user id is empty, already assigned, or the task id references nothing.
func (s *Store) AssignTask(taskID, userID string) {
	if userID == "" {
		return
	}

	s.mu.Lock()
	assigned := false
	for i := range s.tasks {
		if s.tasks[i].ID != taskID {
			continue
		}
		already := false
		for _, a := range s.tasks[i].AssignedTo {
			if a == userID {
				already = true
				break
			}
		}
		if !already {
			s.tasks[i].AssignedTo = append(s.tasks[i].AssignedTo, userID)
			assigned = true
		}
		break
	}
	s.mu.Unlock()

	if assigned {
		s.log.Info("task assigned",
			zap.String("task_id", taskID),
			zap.String("user_id", userID))
	}
}

// TasksForProject returns the project's tasks in creation order.
func (s *Store) TasksForProject(projectID string) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Task
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// CompletionRatio returns completed/total for the project's tasks, and 0
// when the project has no tasks.
func (s *Store) CompletionRatio(projectID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total, completed := 0, 0
	for _, t := range s.tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == models.StatusCompleted {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// Progress is the roll-up shown on a project card.
type Progress struct {
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Percent   int    `json:"percent"`
	Label     string `json:"label"`
}

// Progress derives the project's completion summary. The label reads
// "Completed" only when every task is done and at least one task exists;
// otherwise "In Progress".
func (s *Store) Progress(projectID string) Progress {
	s.mu.RLock()
	total, completed := 0, 0
	for _, t := range s.tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == models.StatusCompleted {
			completed++
		}
	}
	s.mu.RUnlock()

	p := Progress{Total: total, Completed: completed, Label: "In Progress"}
	if total > 0 {
		p.Percent = int(math.Round(float64(completed) / float64(total) * 100))
		if completed == total {
			p.Label = "Completed"
		}
	}
	return p
}
