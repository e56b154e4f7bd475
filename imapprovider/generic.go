// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

import (
	"context"
	"fmt"

	"github.com/CrawX/go-imap-groupsync/domain"
	"github.com/CrawX/go-imap-groupsync/log"

	"github.com/emersion/go-imap"
	"github.com/sirupsen/logrus"
)

// New returns the provider for the group's server family.
func New(group *domain.Group, loggers *log.Loggers, configFuncs ...ConfigFunc) (domain.Provider, error) {
	conn, err := newConnection(group, loggers, configFuncs)
	if err != nil {
		return nil, err
	}

	switch group.ImapProvider {
	case domain.ProviderGeneric, "":
		return &Generic{conn}, nil
	case domain.ProviderGmail:
		return &Gmail{&Generic{conn}}, nil
	default:
		return nil, fmt.Errorf("unknown imap provider %q", group.ImapProvider)
	}
}

// Generic talks to a plain RFC 3501 server. Such servers have no labels, a
// message in the synced mailbox counts as being in the inbox.
type Generic struct {
	*connection
}

func (g *Generic) Emails(ctx context.Context, uids []uint32, fields []domain.EmailField) ([]*domain.RemoteEmail, error) {
	_, emails, err := g.emails(ctx, uids, fields, "")
	if err != nil {
		return nil, err
	}

	if wants(fields, domain.FieldLabels) {
		for _, e := range emails {
			e.Labels = []string{domain.InboxLabel}
		}
	}
	return emails, nil
}

func (g *Generic) Store(ctx context.Context, uid uint32, attribute domain.Attribute, oldValues, newValues []string) error {
	switch attribute {
	case domain.AttributeFlags:
		return g.storeFlags(ctx, uid, oldValues, newValues)
	case domain.AttributeLabels:
		return nil
	default:
		return fmt.Errorf("unknown attribute %s", attribute)
	}
}

func (g *Generic) Trash(ctx context.Context, uid uint32) error {
	trash, err := g.specialMailbox(ctx, TrashAttribute)
	if err != nil {
		return err
	}

	g.l.WithFields(logrus.Fields{"uid": uid, "trash": trash}).Debug("Trashing message")
	return g.moveTo(ctx, []uint32{uid}, trash)
}

func (g *Generic) Archive(ctx context.Context, uid uint32) error {
	archive, err := g.specialMailbox(ctx, ArchiveAttribute)
	if err != nil {
		return err
	}
	if len(archive) == 0 {
		g.l.WithField("uid", uid).Info("Server has no archive mailbox, leaving message in place")
		return nil
	}

	g.l.WithFields(logrus.Fields{"uid": uid, "archive": archive}).Debug("Archiving message")
	return g.mailMover.move(ctx, []uint32{uid}, archive)
}

func (g *Generic) FindTrashedByMessageIDs(ctx context.Context, messageIDs []string) (*domain.TrashedMailResponse, error) {
	trash, err := g.specialMailbox(ctx, TrashAttribute)
	if err != nil {
		return nil, err
	}
	return g.findByMessageIDs(ctx, trash, messageIDs)
}

func (g *Generic) FindSpamByMessageIDs(ctx context.Context, messageIDs []string) (*domain.TrashedMailResponse, error) {
	junk, err := g.specialMailbox(ctx, JunkAttribute)
	if err != nil {
		return nil, err
	}
	return g.findByMessageIDs(ctx, junk, messageIDs)
}

func (g *Generic) TagToFlag(tag string) string {
	if tag == "seen" {
		return imap.SeenFlag
	}
	return ""
}

func (g *Generic) TagToLabel(tag string) string {
	return tag
}

// ToTag turns a flag or label into a tag name, empty when it makes no tag.
func (g *Generic) ToTag(label string) string {
	tag := domain.CleanTag(label)
	if tag == "inbox" || tag == "sent" {
		return ""
	}
	return tag
}
