// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . Store

const (
	ProviderGeneric = "generic"
	ProviderGmail   = "gmail"
)

type Group struct {
	ID            int64
	Name          string
	EmailUsername string

	ImapServer      string
	ImapPort        int
	ImapSSL         bool
	ImapUsername    string
	ImapPassword    string
	ImapMailboxName string
	ImapProvider    string

	ImapUidValidity uint32
	ImapLastUid     uint32
	ImapOldEmails   int
	ImapNewEmails   int
	ImapLastError   *string

	ImapEnabled      bool
	ImapIdleEnabled  bool
	ImapWriteEnabled bool

	UpdatedAt time.Time
}

// ImapConfigured reports whether the group has a mailbox to sync.
func (g *Group) ImapConfigured() bool {
	return g.ImapEnabled &&
		len(g.ImapServer) > 0 &&
		len(g.ImapUsername) > 0 &&
		len(g.ImapPassword) > 0 &&
		len(g.ImapMailboxName) > 0
}

type IncomingEmail struct {
	ID          int64
	MessageID   string
	FromAddress string
	ToAddresses string
	CcAddresses string
	Subject     string
	Raw         []byte
	Error       *string
	Rejected    bool

	TopicID *int64
	PostID  *int64

	ImapUidValidity *uint32
	ImapUid         *uint32
	ImapGroupID     *int64
	ImapSync        bool
	ImapMissing     bool

	CreatedAt time.Time
}

type Topic struct {
	ID             int64
	Title          string
	Tags           []string
	ArchivedGroups []int64
	DeletedAt      *time.Time
	CreatedAt      time.Time
}

func (t *Topic) ArchivedFor(groupID int64) bool {
	for _, id := range t.ArchivedGroups {
		if id == groupID {
			return true
		}
	}
	return false
}

func (t *Topic) Deleted() bool {
	return t.DeletedAt != nil
}

type Post struct {
	ID         int64
	TopicID    int64
	PostNumber int
	Raw        string
	DeletedAt  *time.Time
	CreatedAt  time.Time
}

func (p *Post) Deleted() bool {
	return p.DeletedAt != nil
}

type ImapSyncLog struct {
	ID        int64
	GroupID   int64
	Level     string
	Message   string
	CreatedAt time.Time
}

type Notification struct {
	ID        int64
	PostID    int64
	GroupID   int64
	CreatedAt time.Time
}

type Store interface {
	Close() error

	CreateGroup(g *Group) (int64, error)
	GetGroup(id int64) (*Group, error)
	AllGroups() ([]*Group, error)
	ImapGroups() ([]*Group, error)
	UpdateGroupImapState(groupID int64, uidValidity uint32, lastUid uint32, oldEmails int, newEmails int) error
	UpdateGroupCounts(groupID int64, oldEmails int, newEmails int) error
	SetGroupLastError(groupID int64, lastError *string) error
	SetGroupImapEnabled(groupID int64, enabled bool) error
	UpdateGroupImapSettings(g *Group) error

	FindIncomingByUID(groupID int64, uidValidity uint32, uid uint32) (*IncomingEmail, error)
	FindIncomingByMessageID(messageID string) (*IncomingEmail, error)
	FindUnlinkedIncomingByMessageID(messageID string, emailUsername string) (*IncomingEmail, error)
	FindIncomingByMessageIDs(messageIDs []string) ([]*IncomingEmail, error)
	LinkIncomingEmail(id int64, groupID int64, uidValidity uint32, uid uint32) error
	LinkedIncomingEmails(groupID int64, uidValidity uint32) ([]*IncomingEmail, error)
	MarkIncomingMissing(ids []int64) error
	DirtyIncomingEmails(groupID int64, uidValidity uint32) ([]*IncomingEmail, error)
	SetIncomingImapSync(id int64, dirty bool) error
	CreateIncomingEmail(e *IncomingEmail) (int64, error)
	UpdateIncomingEmail(e *IncomingEmail) error

	CreateTopic(t *Topic) (int64, error)
	GetTopic(id int64) (*Topic, error)
	CreatePost(p *Post) (int64, error)
	GetPost(id int64) (*Post, error)
	FirstPost(topicID int64) (*Post, error)
	SetTopicTags(topicID int64, tags []string) error
	SetTopicArchived(groupID int64, topicID int64, archived bool) error
	SoftDeletePost(postID int64) error
	SoftDeleteTopic(topicID int64) error
	MarkTopicIncomingEmailsDirty(topicID int64) error

	CreateNotification(postID int64, groupID int64) error
	Notifications(groupID int64) ([]*Notification, error)

	AddSyncLog(groupID int64, level string, message string) error
	SyncLogs(groupID int64, limit int) ([]*ImapSyncLog, error)
	PruneSyncLogs(before time.Time) (int64, error)

	ClaimHeartbeat(key string, owner string, staleAfter time.Duration) (bool, error)
	ReleaseHeartbeat(key string, owner string) error
}
