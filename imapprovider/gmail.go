// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

import (
	"context"
	"fmt"
	"strings"

	"github.com/CrawX/go-imap-groupsync/domain"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/commands"
	"github.com/emersion/go-imap/responses"
	"github.com/sirupsen/logrus"
)

const (
	gmailLabels   = imap.FetchItem("X-GM-LABELS")
	gmailThreadID = imap.FetchItem("X-GM-THRID")

	gmailTrash   = "[Gmail]/Trash"
	gmailSpam    = "[Gmail]/Spam"
	gmailAllMail = "[Gmail]/All Mail"
	gmailPrefix  = "[Gmail]/"

	gmailImportant = `\Important`
	gmailStarred   = `\Starred`
)

// Gmail keeps labels in X-GM-LABELS and works on whole threads when
// archiving or trashing.
type Gmail struct {
	*Generic
}

func (g *Gmail) Emails(ctx context.Context, uids []uint32, fields []domain.EmailField) ([]*domain.RemoteEmail, error) {
	messages, emails, err := g.emails(ctx, uids, fields, gmailLabels)
	if err != nil {
		return nil, err
	}

	if wants(fields, domain.FieldLabels) {
		for i, e := range emails {
			e.Labels = gmailLabelsOf(messages[i], g.openMailbox)
		}
	}
	return emails, nil
}

// gmailLabelsOf reads X-GM-LABELS. Gmail leaves out the label of the
// mailbox the message is read from, for INBOX that is \Inbox.
func gmailLabelsOf(msg *imap.Message, openMailbox string) []string {
	labels := []string{}
	seen := map[string]bool{}
	add := func(l string) {
		if len(l) > 0 && !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}

	if raw, ok := msg.Items[gmailLabels].([]interface{}); ok {
		for _, v := range raw {
			l, err := imap.ParseString(v)
			if err != nil {
				l = fmt.Sprint(v)
			}
			add(l)
		}
	}

	if strings.EqualFold(openMailbox, "INBOX") {
		add(domain.InboxLabel)
	}
	return labels
}

func (g *Gmail) Store(ctx context.Context, uid uint32, attribute domain.Attribute, oldValues, newValues []string) error {
	switch attribute {
	case domain.AttributeFlags:
		return g.storeFlags(ctx, uid, oldValues, newValues)
	case domain.AttributeLabels:
		added, removed := diff(oldValues, newValues)
		err := g.store(ctx, []uint32{uid}, imap.StoreItem("+"+gmailLabels), added)
		if err != nil {
			return err
		}
		return g.store(ctx, []uint32{uid}, imap.StoreItem("-"+gmailLabels), removed)
	default:
		return fmt.Errorf("unknown attribute %s", attribute)
	}
}

// Archive takes the whole conversation out of the inbox.
func (g *Gmail) Archive(ctx context.Context, uid uint32) error {
	uids, err := g.threadUids(ctx, uid)
	if err != nil {
		return err
	}

	g.l.WithFields(logrus.Fields{"uid": uid, "thread": len(uids)}).Debug("Archiving thread")
	return g.store(ctx, uids, imap.StoreItem("-"+gmailLabels), []string{domain.InboxLabel})
}

// Trash moves the whole conversation to the trash.
func (g *Gmail) Trash(ctx context.Context, uid uint32) error {
	uids, err := g.threadUids(ctx, uid)
	if err != nil {
		return err
	}

	trash, err := g.gmailMailbox(ctx, TrashAttribute, gmailTrash)
	if err != nil {
		return err
	}

	g.l.WithFields(logrus.Fields{"uid": uid, "thread": len(uids), "trash": trash}).Debug("Trashing thread")
	return g.mailMover.move(ctx, uids, trash)
}

func (g *Gmail) FindTrashedByMessageIDs(ctx context.Context, messageIDs []string) (*domain.TrashedMailResponse, error) {
	trash, err := g.gmailMailbox(ctx, TrashAttribute, gmailTrash)
	if err != nil {
		return nil, err
	}
	return g.findByMessageIDs(ctx, trash, messageIDs)
}

func (g *Gmail) FindSpamByMessageIDs(ctx context.Context, messageIDs []string) (*domain.TrashedMailResponse, error) {
	spam, err := g.gmailMailbox(ctx, JunkAttribute, gmailSpam)
	if err != nil {
		return nil, err
	}
	return g.findByMessageIDs(ctx, spam, messageIDs)
}

func (g *Gmail) gmailMailbox(ctx context.Context, attribute string, fallback string) (string, error) {
	name, err := g.specialMailbox(ctx, attribute)
	if err != nil {
		return "", err
	}
	if len(name) == 0 {
		name = fallback
	}
	return name, nil
}

func (g *Gmail) threadUids(ctx context.Context, uid uint32) ([]uint32, error) {
	messages, err := g.fetch(ctx, []uint32{uid}, []imap.FetchItem{imap.FetchUid, gmailThreadID})
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("uid %d: %w", uid, domain.ErrNotFound)
	}

	value, ok := messages[0].Items[gmailThreadID]
	if !ok || value == nil {
		return nil, fmt.Errorf("server returned no thread id for uid %d", uid)
	}
	threadID := fmt.Sprint(value)

	imapClient, err := g.live(ctx)
	if err != nil {
		return nil, err
	}

	search := &responses.Search{}
	status, err := imapClient.Execute(&commands.Uid{Cmd: &threadSearch{threadID: threadID}}, search)
	if err == nil {
		err = status.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("could not search thread %s: %w", threadID, err)
	}

	if len(search.Ids) == 0 {
		return []uint32{uid}, nil
	}
	return search.Ids, nil
}

// threadSearch is SEARCH X-GM-THRID, which go-imap's criteria cannot express.
type threadSearch struct {
	threadID string
}

func (cmd *threadSearch) Command() *imap.Command {
	return &imap.Command{
		Name:      "SEARCH",
		Arguments: []interface{}{imap.RawString(gmailThreadID), imap.RawString(cmd.threadID)},
	}
}

func (g *Gmail) TagToFlag(tag string) string {
	if tag == "starred" {
		return imap.FlaggedFlag
	}
	return g.Generic.TagToFlag(tag)
}

func (g *Gmail) TagToLabel(tag string) string {
	switch tag {
	case "important":
		return gmailImportant
	case "starred":
		return gmailStarred
	}
	return g.Generic.TagToLabel(tag)
}

func (g *Gmail) ToTag(label string) string {
	if label == imap.FlaggedFlag {
		return "starred"
	}
	if label == gmailAllMail {
		return ""
	}
	return g.Generic.ToTag(strings.TrimPrefix(label, gmailPrefix))
}
