// internal/domain/models/task.go
package models

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// Task is a unit of work inside a project.
//
// NOTE:
//   - Status is the only mutable field. Tasks always start pending and are
//     never deleted.
//   - AssignedTo is a collection even though task creation only ever
//     records a single assignee; additional assignees can be appended.
type Task struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	Title      string     `json:"title"`
	Status     TaskStatus `json:"status"`
	AssignedTo []string   `json:"assigned_to"`
}
