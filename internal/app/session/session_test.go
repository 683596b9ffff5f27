package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/syncgroup/internal/app/session"
	"go.uber.org/zap"
)

func TestManager_Login(t *testing.T) {
	mgr := session.NewManager(session.Config{
		LoginDelay: time.Millisecond,
		SeedDemo:   true,
	}, zap.NewNop())

	if _, ok := mgr.CurrentUser(); ok {
		t.Fatal("expected no user before login")
	}

	user, st, err := mgr.Login(context.Background())
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.UID == "" || user.DisplayName != "John Doe" {
		t.Errorf("unexpected identity: %+v", user)
	}
	if st == nil {
		t.Fatal("expected a workspace store")
	}

	// The demo content is loaded and active.
	if _, ok := st.ActiveGroup(); !ok {
		t.Error("expected an active group after seeded login")
	}

	got, ok := mgr.CurrentUser()
	if !ok || got.UID != user.UID {
		t.Errorf("CurrentUser = %+v ok=%v", got, ok)
	}
	if _, ok := mgr.Store(); !ok {
		t.Error("expected Store to be available after login")
	}
}

func TestManager_Login_Canceled(t *testing.T) {
	mgr := session.NewManager(session.Config{
		LoginDelay: time.Hour, // never elapses
	}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := mgr.Login(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	// An abandoned login leaves no session state behind.
	if _, ok := mgr.CurrentUser(); ok {
		t.Error("expected no user after canceled login")
	}
	if _, ok := mgr.Store(); ok {
		t.Error("expected no store after canceled login")
	}
}

func TestManager_Logout_DiscardsState(t *testing.T) {
	mgr := session.NewManager(session.Config{
		LoginDelay: time.Millisecond,
		SeedDemo:   true,
	}, zap.NewNop())

	user, st, err := mgr.Login(context.Background())
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	st.SendMessage(st.ActiveGroupID(), user, "ephemeral")

	mgr.Logout()

	if _, ok := mgr.CurrentUser(); ok {
		t.Error("expected no user after logout")
	}
	if _, ok := mgr.Store(); ok {
		t.Error("expected no store after logout")
	}

	// A later login starts a fresh, separate workspace.
	_, st2, err := mgr.Login(context.Background())
	if err != nil {
		t.Fatalf("second Login failed: %v", err)
	}
	if st2 == st {
		t.Error("expected a new store for the new session")
	}
	msgs := st2.MessagesForGroup(st2.ActiveGroupID())
	if len(msgs) != 0 {
		t.Errorf("expected no messages to survive logout, got %d", len(msgs))
	}
}

func TestNewManager_Defaults(t *testing.T) {
	mgr := session.NewManager(session.Config{}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	user, _, err := mgr.Login(ctx)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < session.DefaultLoginDelay {
		t.Errorf("login resolved after %v, want at least %v", elapsed, session.DefaultLoginDelay)
	}
	if user.Email != "john@example.com" {
		t.Errorf("Email = %q, want default", user.Email)
	}
}
