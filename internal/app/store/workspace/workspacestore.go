// internal/app/store/workspace/workspacestore.go

// Package workspace holds the session's collaborative state: the group,
// message, project, and task collections plus the active-group pointer.
//
// The store is purely in-process and ephemeral. It is constructed when a
// session starts and discarded at logout; nothing is persisted.
//
// Failure semantics are deliberate: mutations never return errors. A
// mutation whose required context is missing (blank title, no sender, an
// id that references nothing) degrades to a silent no-op, because the
// interactive surface already disables the triggering controls when
// preconditions fail. Queries are pure reads over the collections and
// return copies, so callers can never mutate store state through a result.
package workspace

import (
	"sync"
	"time"

	"github.com/dalemusser/syncgroup/internal/domain/models"
	"go.uber.org/zap"
)

// Store owns the four entity collections and the active-group selector.
// Every mutation is atomic with respect to any query that runs after it
// completes; no query observes a partially applied mutation.
type Store struct {
	log *zap.Logger
	now func() time.Time

	mu            sync.RWMutex
	groups        []models.Group
	messages      []models.Message
	projects      []models.Project
	tasks         []models.Task
	activeGroupID string
}

// New creates an empty store.
func New(logger *zap.Logger) *Store {
	return NewWithClock(logger, time.Now)
}

// NewWithClock creates an empty store that reads the current time from now.
// Tests use this to pin timestamps and deadlines.
func NewWithClock(logger *zap.Logger, now func() time.Time) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{log: logger, now: now}
}

// hasGroup reports whether a group with the id exists. Callers must hold
// the lock.
func (s *Store) hasGroup(id string) bool {
	for i := range s.groups {
		if s.groups[i].ID == id {
			return true
		}
	}
	return false
}

// hasProject reports whether a project with the id exists. Callers must
// hold the lock.
func (s *Store) hasProject(id string) bool {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return true
		}
	}
	return false
}

func cloneGroup(g models.Group) models.Group {
	out := g
	out.Members = append([]string(nil), g.Members...)
	return out
}

func cloneTask(t models.Task) models.Task {
	out := t
	out.AssignedTo = append([]string(nil), t.AssignedTo...)
	return out
}
