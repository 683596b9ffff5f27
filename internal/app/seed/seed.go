// internal/app/seed/seed.go

// Package seed loads the starter workspace content presented on first
// sign-in, so the demo session opens with a group, a project under way,
// and tasks in every status.
package seed

import (
	"github.com/dalemusser/syncgroup/internal/app/store/workspace"
	"github.com/dalemusser/syncgroup/internal/domain/models"
)

// Demo populates st with the demo workspace for the signed-in owner:
// one group, one five-day project, and three tasks (one completed, one in
// progress, one pending). The group ends up active.
func Demo(st *workspace.Store, owner models.User) {
	g, ok := st.CreateGroup("Product Design Team", "Building the next generation of social apps", owner)
	if !ok {
		return
	}

	p, ok := st.CreateProject(g.ID, "Launch MVP v1.0", "Complete all features for the initial public release.", 5)
	if !ok {
		return
	}

	if t, ok := st.AddTask(p.ID, "Setup Database", owner.UID); ok {
		st.UpdateTaskStatus(t.ID, models.StatusCompleted)
	}
	if t, ok := st.AddTask(p.ID, "Design Auth Flow", owner.UID); ok {
		st.UpdateTaskStatus(t.ID, models.StatusInProgress)
	}
	st.AddTask(p.ID, "Deploy to Cloud", owner.UID)
}
