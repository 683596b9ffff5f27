package testutil

import (
	"testing"
	"time"

	"github.com/dalemusser/syncgroup/internal/app/store/workspace"
	"github.com/dalemusser/syncgroup/internal/domain/models"
	"go.uber.org/zap"
)

// NewStore creates an empty workspace store with a no-op logger.
func NewStore(t *testing.T) *workspace.Store {
	t.Helper()
	return workspace.New(zap.NewNop())
}

// NewStoreAt creates a store whose clock always reads the instant pointed
// to by now. Tests advance time by updating *now.
func NewStoreAt(t *testing.T, now *time.Time) *workspace.Store {
	t.Helper()
	return workspace.NewWithClock(zap.NewNop(), func() time.Time { return *now })
}

// User returns a session identity for tests.
func User(uid, name string) models.User {
	return models.User{
		UID:         uid,
		DisplayName: name,
		Email:       name + "@example.com",
		AvatarURL:   "https://picsum.photos/seed/" + uid + "/200",
	}
}

// Fixtures provides helper methods for creating test data in a store.
type Fixtures struct {
	st *workspace.Store
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given store.
func NewFixtures(t *testing.T, st *workspace.Store) *Fixtures {
	t.Helper()
	return &Fixtures{st: st, t: t}
}

// CreateGroup creates a group and fails the test if the store refuses it.
func (f *Fixtures) CreateGroup(name string, creator models.User) models.Group {
	f.t.Helper()
	g, ok := f.st.CreateGroup(name, "fixture group", creator)
	if !ok {
		f.t.Fatalf("failed to create test group %q", name)
	}
	return g
}

// CreateProject creates a project in the group and fails the test if the
// store refuses it.
func (f *Fixtures) CreateProject(groupID, title string, durationDays int) models.Project {
	f.t.Helper()
	p, ok := f.st.CreateProject(groupID, title, "fixture project", durationDays)
	if !ok {
		f.t.Fatalf("failed to create test project %q", title)
	}
	return p
}

// AddTask adds a task to the project and fails the test if the store
// refuses it.
func (f *Fixtures) AddTask(projectID, title, assignee string) models.Task {
	f.t.Helper()
	task, ok := f.st.AddTask(projectID, title, assignee)
	if !ok {
		f.t.Fatalf("failed to add test task %q", title)
	}
	return task
}
