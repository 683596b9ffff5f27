// internal/app/store/workspace/messages.go
package workspace

import (
	"github.com/dalemusser/syncgroup/internal/app/system/htmlsanitize"
	"github.com/dalemusser/syncgroup/internal/app/system/ids"
	"github.com/dalemusser/syncgroup/internal/app/system/normalize"
	"github.com/dalemusser/syncgroup/internal/domain/models"
	"go.uber.org/zap"
)

// SendMessage appends a message to the group, snapshotting the sender's
// current display name and avatar. It is a silent no-op when the text is
// empty or whitespace-only, when no sender identity exists, or when the
// group id references nothing.
func (s *Store) SendMessage(groupID string, sender models.User, text string) (models.Message, bool) {
	if groupID == "" || sender.UID == "" || normalize.Blank(text) {
		return models.Message{}, false
	}

	m := models.Message{
		ID:           ids.New(),
		GroupID:      groupID,
		Text:         htmlsanitize.Sanitize(text),
		SenderID:     sender.UID,
		SenderName:   sender.DisplayName,
		SenderAvatar: sender.AvatarURL,
		SentAt:       s.now().UTC(),
	}

	s.mu.Lock()
	if !s.hasGroup(groupID) {
		s.mu.Unlock()
		return models.Message{}, false
	}
	s.messages = append(s.messages, m)
	s.mu.Unlock()

	s.log.Debug("message sent",
		zap.String("message_id", m.ID),
		zap.String("group_id", groupID),
		zap.String("sender_id", sender.UID))
	return m, true
}

// MessagesForGroup returns the group's messages in append order. Messages
// belonging to other groups never surface.
func (s *Store) MessagesForGroup(groupID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Message
	for _, m := range s.messages {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out
}
