// cmd/syncgroup/main.go

// Command syncgroup runs a demo session against the workspace state core:
// it signs in through the stubbed provider, walks the seeded group through
// a chat exchange and the project tracker, and keeps a countdown running
// for the active project's deadline until interrupted.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dalemusser/syncgroup/internal/app/bootstrap"
	"github.com/dalemusser/syncgroup/internal/app/session"
	"github.com/dalemusser/syncgroup/internal/app/store/workspace"
	"github.com/dalemusser/syncgroup/internal/app/system/deadline"
	"github.com/dalemusser/syncgroup/internal/app/system/workers"
	"github.com/dalemusser/syncgroup/internal/domain/models"
	"go.uber.org/zap"
)

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := bootstrap.NewLogger(cfg.LogDev)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("syncgroup exited", zap.Error(err))
	}
}

func run(cfg bootstrap.AppConfig, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mgr := session.NewManager(session.Config{
		LoginDelay:  cfg.LoginDelay,
		DisplayName: cfg.DisplayName,
		Email:       cfg.Email,
		AvatarURL:   cfg.AvatarURL,
		SeedDemo:    cfg.SeedDemo,
	}, logger)

	logger.Info("signing in")
	user, st, err := mgr.Login(ctx)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer mgr.Logout()

	group, ok := st.ActiveGroup()
	if !ok {
		if group, ok = st.CreateGroup("General", "Default workspace group", user); !ok {
			return fmt.Errorf("no active group and unable to create one")
		}
	}
	logger.Info("workspace ready",
		zap.String("group", group.Name),
		zap.String("invite_code", group.InviteCode),
		zap.Int("members", len(group.Members)))

	st.SendMessage(group.ID, user, "Kicking off the week. MVP tasks are on the board.")
	st.SendMessage(group.ID, user, "Ping me here if anything is blocked.")
	for _, m := range st.MessagesForGroup(group.ID) {
		logger.Info("chat",
			zap.String("from", m.SenderName),
			zap.String("text", m.Text))
	}

	project := activeProject(st, group, user)
	if project == nil {
		return fmt.Errorf("no project to track")
	}
	for _, task := range st.TasksForProject(project.ID) {
		logger.Info("task",
			zap.String("title", task.Title),
			zap.String("status", string(task.Status)))
	}
	progress := st.Progress(project.ID)
	logger.Info("project progress",
		zap.String("project", project.Title),
		zap.Int("percent", progress.Percent),
		zap.String("label", progress.Label))

	watcher := workers.NewCountdownWatcher(project.Deadline, logger, cfg.CountdownTick, func(rem deadline.Remaining) {
		if rem.Passed {
			logger.Warn("deadline passed", zap.String("project", project.Title))
			return
		}
		logger.Info("time remaining",
			zap.String("project", project.Title),
			zap.Int("days", rem.Days),
			zap.Int("hours", rem.Hours),
			zap.Int("minutes", rem.Minutes))
	})
	watcher.Start()
	defer watcher.Stop()

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}

// activeProject returns the group's first project, creating a starter one
// when the workspace came up unseeded.
func activeProject(st *workspace.Store, group models.Group, user models.User) *models.Project {
	if projects := st.ProjectsForGroup(group.ID); len(projects) > 0 {
		return &projects[0]
	}
	p, ok := st.CreateProject(group.ID, "First Milestone", "Get the workspace off the ground.", 7)
	if !ok {
		return nil
	}
	st.AddTask(p.ID, "Invite the team", user.UID)
	st.AddTask(p.ID, "Write the brief", user.UID)
	return &p
}
