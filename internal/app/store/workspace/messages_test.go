package workspace_test

import (
	"testing"

	"github.com/dalemusser/syncgroup/internal/domain/models"
	"github.com/dalemusser/syncgroup/internal/testutil"
)

func TestStore_SendMessage(t *testing.T) {
	st := testutil.NewStore(t)
	fixtures := testutil.NewFixtures(t, st)
	sender := testutil.User("user-1", "John Doe")

	g := fixtures.CreateGroup("Design", sender)

	m, ok := st.SendMessage(g.ID, sender, "Hello, team!")
	if !ok {
		t.Fatal("SendMessage failed")
	}

	if m.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if m.GroupID != g.ID {
		t.Errorf("GroupID = %q, want %q", m.GroupID, g.ID)
	}
	if m.SentAt.IsZero() {
		t.Error("expected SentAt to be set")
	}

	// Sender fields are a snapshot of the identity at send time.
	if m.SenderID != sender.UID || m.SenderName != sender.DisplayName || m.SenderAvatar != sender.AvatarURL {
		t.Errorf("sender snapshot = %q/%q/%q, want %q/%q/%q",
			m.SenderID, m.SenderName, m.SenderAvatar,
			sender.UID, sender.DisplayName, sender.AvatarURL)
	}
}

func TestStore_SendMessage_Preconditions(t *testing.T) {
	st := testutil.NewStore(t)
	fixtures := testutil.NewFixtures(t, st)
	sender := testutil.User("user-1", "John Doe")

	g := fixtures.CreateGroup("Design", sender)

	tests := []struct {
		name    string
		groupID string
		sender  models.User
		text    string
	}{
		{"empty text", g.ID, sender, ""},
		{"whitespace text", g.ID, sender, "   "},
		{"no group", "", sender, "hi"},
		{"unknown group", "nonexistent-id", sender, "hi"},
		{"no sender", g.ID, models.User{}, "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(st.MessagesForGroup(g.ID))
			if _, ok := st.SendMessage(tt.groupID, tt.sender, tt.text); ok {
				t.Error("expected no-op")
			}
			if after := len(st.MessagesForGroup(g.ID)); after != before {
				t.Errorf("messages length changed: %d -> %d", before, after)
			}
		})
	}
}

func TestStore_MessagesForGroup_FiltersAndOrders(t *testing.T) {
	st := testutil.NewStore(t)
	fixtures := testutil.NewFixtures(t, st)
	sender := testutil.User("user-1", "John Doe")

	a := fixtures.CreateGroup("Alpha", sender)
	b := fixtures.CreateGroup("Beta", sender)

	st.SendMessage(a.ID, sender, "a1")
	st.SendMessage(b.ID, sender, "b1")
	st.SendMessage(a.ID, sender, "a2")
	st.SendMessage(a.ID, sender, "a3")

	got := st.MessagesForGroup(a.ID)
	want := []string{"a1", "a2", "a3"}
	if len(got) != len(want) {
		t.Fatalf("got %d messages, want %d", len(got), len(want))
	}
	for i, m := range got {
		if m.Text != want[i] {
			t.Errorf("message %d = %q, want %q (append order)", i, m.Text, want[i])
		}
		if m.GroupID != a.ID {
			t.Errorf("message %d belongs to %q, want %q", i, m.GroupID, a.ID)
		}
	}

	if n := len(st.MessagesForGroup(b.ID)); n != 1 {
		t.Errorf("group b has %d messages, want 1", n)
	}
}

func TestStore_SendMessage_SanitizesBody(t *testing.T) {
	st := testutil.NewStore(t)
	fixtures := testutil.NewFixtures(t, st)
	sender := testutil.User("user-1", "John Doe")

	g := fixtures.CreateGroup("Design", sender)

	m, ok := st.SendMessage(g.ID, sender, "<p>Hi</p><script>alert('x')</script>")
	if !ok {
		t.Fatal("SendMessage failed")
	}
	if m.Text != "<p>Hi</p>" {
		t.Errorf("Text = %q, want script stripped", m.Text)
	}
}
