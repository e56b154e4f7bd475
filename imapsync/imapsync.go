// SPDX-License-Identifier: GPL-3.0-or-later
package imapsync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/CrawX/go-imap-groupsync/domain"
	"github.com/CrawX/go-imap-groupsync/log"
	"github.com/CrawX/go-imap-groupsync/mail"

	"github.com/sirupsen/logrus"
)

const (
	BatchSize = 50
)

var (
	oldFields  = []domain.EmailField{domain.FieldUID, domain.FieldFlags, domain.FieldLabels, domain.FieldEnvelope}
	newFields  = []domain.EmailField{domain.FieldUID, domain.FieldFlags, domain.FieldLabels, domain.FieldBody}
	pushFields = []domain.EmailField{domain.FieldUID, domain.FieldFlags, domain.FieldLabels}
)

// ProcessOptions overrides the configured limits for one pass, nil keeps
// the configured value.
type ProcessOptions struct {
	Idle           bool
	ImportLimit    *int
	OldEmailsLimit *int
	NewEmailsLimit *int
}

type ProcessResult struct {
	// Remaining is the number of new mails left for the next pass.
	Remaining int
}

// Syncer reconciles one group's mailbox with the local topics.
type Syncer struct {
	group    *domain.Group
	provider domain.Provider
	store    domain.Store
	receiver domain.Receiver
	topics   domain.TopicService

	configuration *configuration

	l *logrus.Entry
}

func NewSyncer(group *domain.Group, provider domain.Provider, store domain.Store, receiver domain.Receiver, topics domain.TopicService, loggers *log.Loggers, configFuncs ...ConfigFunc) (*Syncer, error) {
	config := defaultConfiguration()
	for _, f := range configFuncs {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	fields := logrus.Fields{"group": group.Name, log.FieldGroupID: group.ID}
	if len(config.Site) > 0 {
		fields[log.FieldSite] = config.Site
	}

	return &Syncer{
		group:         group,
		provider:      provider,
		store:         store,
		receiver:      receiver,
		topics:        topics,
		configuration: config,
		l:             loggers.Logger(log.LOG_SYNC).WithFields(fields),
	}, nil
}

func (s *Syncer) Group() *domain.Group {
	return s.group
}

// Refresh takes over the settings of group as they are stored now, the sync
// progress of the syncer is kept. It reports false and changes nothing when
// the mailbox connection settings differ, those need a new syncer.
func (s *Syncer) Refresh(group *domain.Group) bool {
	if connectionChanged(s.group, group) {
		return false
	}

	s.group.Name = group.Name
	s.group.EmailUsername = group.EmailUsername
	s.group.ImapEnabled = group.ImapEnabled
	s.group.ImapIdleEnabled = group.ImapIdleEnabled
	s.group.ImapWriteEnabled = group.ImapWriteEnabled
	return true
}

func connectionChanged(current, stored *domain.Group) bool {
	return current.ImapServer != stored.ImapServer ||
		current.ImapPort != stored.ImapPort ||
		current.ImapSSL != stored.ImapSSL ||
		current.ImapUsername != stored.ImapUsername ||
		current.ImapPassword != stored.ImapPassword ||
		current.ImapMailboxName != stored.ImapMailboxName ||
		current.ImapProvider != stored.ImapProvider
}

func (s *Syncer) PollingPeriod() time.Duration {
	return s.configuration.PollingPeriod
}

// CanIdle needs idle enabled for the site and the group, and a server that
// advertises IDLE.
func (s *Syncer) CanIdle() bool {
	return s.configuration.IdleEnabled && s.group.ImapIdleEnabled && s.provider.Can(domain.CapabilityIdle)
}

func (s *Syncer) Disconnect() error {
	return s.provider.Disconnect()
}

func (s *Syncer) Disconnected() bool {
	return s.provider.Disconnected()
}

func limitOr(override *int, configured int) int {
	if override != nil {
		return *override
	}
	return configured
}

// Process runs one pass: validate the uid validity, optionally idle,
// revisit known mails, receive new ones and push local changes.
func (s *Syncer) Process(ctx context.Context, opts ProcessOptions) (*ProcessResult, error) {
	importLimit := limitOr(opts.ImportLimit, s.configuration.ImportLimit)
	oldLimit := limitOr(opts.OldEmailsLimit, s.configuration.OldEmailsLimit)
	newLimit := limitOr(opts.NewEmailsLimit, s.configuration.NewEmailsLimit)

	status, err := s.provider.OpenMailbox(ctx, s.group.ImapMailboxName, false)
	if err != nil {
		return nil, fmt.Errorf("could not open mailbox %s: %w", s.group.ImapMailboxName, err)
	}

	if status.UidValidity != s.group.ImapUidValidity {
		s.l.WithFields(logrus.Fields{"old": s.group.ImapUidValidity, "new": status.UidValidity}).Warn("UID validity changed, resyncing mailbox from the start")
		err = s.store.UpdateGroupImapState(s.group.ID, status.UidValidity, 0, s.group.ImapOldEmails, s.group.ImapNewEmails)
		if err != nil {
			return nil, fmt.Errorf("could not reset uid validity: %w", err)
		}
		s.group.ImapUidValidity = status.UidValidity
		s.group.ImapLastUid = 0
	}

	if opts.Idle {
		if s.CanIdle() {
			s.l.WithField("timeout", s.configuration.PollingPeriod).Debug("Waiting for new mail")
			err = s.provider.WaitForNewMail(ctx, s.configuration.PollingPeriod)
			if err != nil {
				return nil, fmt.Errorf("could not wait for new mail: %w", err)
			}
		} else {
			s.l.Warn("IMAP IDLE requested but not available for this group, polling instead")
		}
	}

	oldUids, newUids, err := s.partition(ctx, s.group.ImapLastUid)
	if err != nil {
		return nil, err
	}

	s.group.ImapOldEmails = len(oldUids)
	s.group.ImapNewEmails = len(newUids)
	err = s.store.UpdateGroupCounts(s.group.ID, len(oldUids), len(newUids))
	if err != nil {
		return nil, fmt.Errorf("could not save mail counts: %w", err)
	}
	err = s.store.SetGroupLastError(s.group.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("could not clear last error: %w", err)
	}

	importMode := importLimit > -1 && len(newUids) > importLimit

	sampledOld := oldUids
	if oldLimit > -1 {
		sampledOld = sampleUids(s.configuration.Rand, oldUids, oldLimit)
	}
	batch := newUids
	if newLimit > 0 && len(batch) > newLimit {
		batch = batch[:newLimit]
	}

	s.l.WithFields(logrus.Fields{
		"uidvalidity": status.UidValidity,
		"old":         len(oldUids),
		"new":         len(newUids),
		"sampled":     len(sampledOld),
		"batch":       len(batch),
		"import":      importMode,
	}).Info("Syncing mailbox")

	err = s.processOldUids(ctx, status.UidValidity, sampledOld, uidSet(oldUids, newUids))
	if err != nil {
		return nil, err
	}

	err = s.processNewUids(ctx, status.UidValidity, batch, importMode, len(oldUids), len(newUids))
	if err != nil {
		return nil, err
	}

	if s.configuration.WriteEnabled && s.group.ImapWriteEnabled {
		err = s.syncToServer(ctx, status.UidValidity)
		if err != nil {
			return nil, err
		}
	}

	return &ProcessResult{Remaining: len(newUids) - len(batch)}, nil
}

// partition splits the mailbox at the high-water mark. A uid reported on
// both sides only counts as old.
func (s *Syncer) partition(ctx context.Context, lastUid uint32) ([]uint32, []uint32, error) {
	oldUids := []uint32{}
	if lastUid > 0 {
		found, err := s.provider.Uids(ctx, 1, lastUid)
		if err != nil {
			return nil, nil, fmt.Errorf("could not list old uids: %w", err)
		}
		oldUids = found
	}

	newUids, err := s.provider.Uids(ctx, lastUid+1, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("could not list new uids: %w", err)
	}

	return oldUids, subtractUids(newUids, oldUids), nil
}

func (s *Syncer) fetch(ctx context.Context, uids []uint32, fields []domain.EmailField) ([]*domain.RemoteEmail, error) {
	emails := []*domain.RemoteEmail{}
	if len(uids) == 0 {
		return emails, nil
	}

	for _, batch := range partitionUids(uids, BatchSize) {
		start := time.Now()
		fetched, err := s.provider.Emails(ctx, batch, fields)
		if err != nil {
			return nil, fmt.Errorf("could not fetch mail batch: %w", err)
		}
		s.l.WithFields(logrus.Fields{"batchsize": len(batch), "duration": time.Since(start)}).Debug("Fetched mail batch")
		emails = append(emails, fetched...)
	}

	sort.Slice(emails, func(i, j int) bool { return emails[i].UID < emails[j].UID })
	return emails, nil
}

func (s *Syncer) processOldUids(ctx context.Context, uidValidity uint32, uids []uint32, onServer map[uint32]bool) error {
	emails, err := s.fetch(ctx, uids, oldFields)
	if err != nil {
		return err
	}

	for _, e := range emails {
		incoming, err := s.store.FindIncomingByUID(s.group.ID, uidValidity, e.UID)
		if err != nil {
			return fmt.Errorf("could not find incoming email for uid %d: %w", e.UID, err)
		}

		if incoming == nil && len(e.MessageID) > 0 {
			incoming, err = s.store.FindUnlinkedIncomingByMessageID(e.MessageID, s.group.EmailUsername)
			if err != nil {
				return fmt.Errorf("could not find incoming email for %s: %w", e.MessageID, err)
			}
			if incoming != nil {
				err = s.store.LinkIncomingEmail(incoming.ID, s.group.ID, uidValidity, e.UID)
				if err != nil {
					return fmt.Errorf("could not link incoming email %d: %w", incoming.ID, err)
				}
				s.l.WithFields(logrus.Fields{"uidvalidity": uidValidity, "uid": e.UID, "messageid": e.MessageID}).Debug("Linked known mail to its uid")
			}
		}

		if incoming == nil {
			continue
		}

		err = s.updateTopic(ctx, e, incoming)
		if err != nil {
			return err
		}
	}

	return s.handleMissingUids(ctx, uidValidity, onServer)
}

// updateTopic pulls the archive state and tags of a mail into its topic.
// Records with pending local changes are left alone, those win.
func (s *Syncer) updateTopic(ctx context.Context, e *domain.RemoteEmail, incoming *domain.IncomingEmail) error {
	if incoming.ImapSync || incoming.TopicID == nil || incoming.PostID == nil {
		return nil
	}

	first, err := s.store.FirstPost(*incoming.TopicID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not load first post of topic %d: %w", *incoming.TopicID, err)
	}
	if first.ID != *incoming.PostID {
		return nil
	}

	topic, err := s.store.GetTopic(*incoming.TopicID)
	if err != nil {
		return fmt.Errorf("could not load topic %d: %w", *incoming.TopicID, err)
	}
	if topic.Deleted() {
		return nil
	}

	opts := domain.TopicOptions{SkipImapSync: true}
	archived := !inInbox(e.Labels)
	if archived && !topic.ArchivedFor(s.group.ID) {
		s.l.WithFields(logrus.Fields{"uid": e.UID, "topic": topic.ID}).Debug("Archiving topic, mail left the inbox")
		err = s.topics.Archive(ctx, s.group.ID, topic.ID, opts)
	} else if !archived && topic.ArchivedFor(s.group.ID) {
		s.l.WithFields(logrus.Fields{"uid": e.UID, "topic": topic.ID}).Debug("Moving topic to inbox, mail is back in the inbox")
		err = s.topics.MoveToInbox(ctx, s.group.ID, topic.ID, opts)
	}
	if err != nil {
		return fmt.Errorf("could not update archive state of topic %d: %w", topic.ID, err)
	}

	if !s.configuration.TaggingEnabled {
		return nil
	}

	tags := s.tags(e, incoming)
	err = s.topics.TagTopicByNames(ctx, domain.SystemGuardian(true), topic.ID, tags, opts)
	if err != nil {
		return fmt.Errorf("could not tag topic %d: %w", topic.ID, err)
	}
	return nil
}

// tags are the plus parts the mail was addressed to, the mailbox name and
// every flag and label that maps to a tag.
func (s *Syncer) tags(e *domain.RemoteEmail, incoming *domain.IncomingEmail) []string {
	tags := []string{}
	add := func(tag string) {
		if len(tag) > 0 {
			tags = append(tags, tag)
		}
	}

	addresses := strings.Split(incoming.ToAddresses, ";")
	addresses = append(addresses, strings.Split(incoming.CcAddresses, ";")...)
	for _, address := range addresses {
		if plus := mail.PlusPart(address, s.group.EmailUsername); len(plus) > 0 {
			add("plus:" + plus)
		}
	}

	add(s.provider.ToTag(s.group.ImapMailboxName))
	for _, flag := range e.Flags {
		add(s.provider.ToTag(flag))
	}
	for _, label := range e.Labels {
		add(s.provider.ToTag(label))
	}

	return domain.CleanTags(tags)
}

func inInbox(labels []string) bool {
	for _, l := range labels {
		if strings.EqualFold(l, domain.InboxLabel) || strings.EqualFold(l, "INBOX") {
			return true
		}
	}
	return false
}

// handleMissingUids looks for linked mails that are gone from the mailbox.
// Those found in the trash or spam mailbox are relinked there and their post
// is destroyed, the rest are marked missing.
func (s *Syncer) handleMissingUids(ctx context.Context, uidValidity uint32, onServer map[uint32]bool) error {
	linked, err := s.store.LinkedIncomingEmails(s.group.ID, uidValidity)
	if err != nil {
		return fmt.Errorf("could not list linked incoming emails: %w", err)
	}

	missing := map[string]*domain.IncomingEmail{}
	messageIDs := []string{}
	for _, incoming := range linked {
		if incoming.ImapUid == nil || onServer[*incoming.ImapUid] {
			continue
		}
		if _, ok := missing[incoming.MessageID]; !ok {
			messageIDs = append(messageIDs, incoming.MessageID)
		}
		missing[incoming.MessageID] = incoming
	}
	if len(missing) == 0 {
		return nil
	}

	s.l.WithField("missing", len(missing)).Debug("Linked mails are gone from the mailbox, searching trash")
	trashed, err := s.provider.FindTrashedByMessageIDs(ctx, messageIDs)
	if err != nil {
		return fmt.Errorf("could not search trash: %w", err)
	}
	err = s.relinkRemoved(ctx, trashed, missing, "trash")
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	messageIDs = messageIDs[:0]
	for id := range missing {
		messageIDs = append(messageIDs, id)
	}
	sort.Strings(messageIDs)

	spam, err := s.provider.FindSpamByMessageIDs(ctx, messageIDs)
	if err != nil {
		return fmt.Errorf("could not search spam: %w", err)
	}
	err = s.relinkRemoved(ctx, spam, missing, "spam")
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(missing))
	for _, incoming := range missing {
		ids = append(ids, incoming.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	s.l.WithField("missing", len(ids)).Info("Linked mails are gone from the mailbox and not in trash or spam")
	err = s.store.MarkIncomingMissing(ids)
	if err != nil {
		return fmt.Errorf("could not mark incoming emails missing: %w", err)
	}
	return nil
}

// relinkRemoved handles the mails found in the trash or spam mailbox and
// takes them out of missing. The relinked records keep the missing marker,
// their uid belongs to another mailbox.
func (s *Syncer) relinkRemoved(ctx context.Context, found *domain.TrashedMailResponse, missing map[string]*domain.IncomingEmail, mailbox string) (err error) {
	relinked := []int64{}
	defer func() {
		if len(relinked) == 0 {
			return
		}
		markErr := s.store.MarkIncomingMissing(relinked)
		if markErr != nil && err == nil {
			err = fmt.Errorf("could not mark relinked incoming emails missing: %w", markErr)
		}
	}()

	for _, m := range found.Emails {
		incoming, ok := missing[m.MessageID]
		if !ok {
			continue
		}
		delete(missing, m.MessageID)

		err := s.store.LinkIncomingEmail(incoming.ID, s.group.ID, found.UidValidity, m.UID)
		if err != nil {
			return fmt.Errorf("could not relink incoming email %d: %w", incoming.ID, err)
		}
		relinked = append(relinked, incoming.ID)

		l := s.l.WithFields(logrus.Fields{"messageid": m.MessageID, "mailbox": mailbox, "uidvalidity": found.UidValidity, "uid": m.UID})
		if incoming.PostID == nil {
			l.Debug("Relinked removed mail")
			continue
		}

		post, err := s.store.GetPost(*incoming.PostID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("could not load post %d: %w", *incoming.PostID, err)
		}
		if post.Deleted() {
			l.Debug("Relinked removed mail, post was already deleted")
			continue
		}

		err = s.topics.DestroyPost(ctx, domain.SystemGuardian(s.configuration.TaggingEnabled), post.ID, domain.TopicOptions{SkipImapSync: true})
		if err != nil {
			return fmt.Errorf("could not destroy post %d: %w", post.ID, err)
		}
		l.WithField("post", post.ID).Info("Destroyed post, mail was removed from the mailbox")
	}
	return nil
}

// processNewUids receives mails oldest first so replies find their parent.
// The high-water mark moves after every mail, rejected ones included.
func (s *Syncer) processNewUids(ctx context.Context, uidValidity uint32, uids []uint32, importMode bool, oldCount int, newCount int) error {
	emails, err := s.fetch(ctx, uids, newFields)
	if err != nil {
		return err
	}

	processed := 0
	for _, e := range emails {
		if err := ctx.Err(); err != nil {
			return err
		}

		l := s.l.WithFields(logrus.Fields{"uidvalidity": uidValidity, "uid": e.UID})
		incoming, err := s.receiver.Receive(ctx, e.Body, domain.ReceiveOptions{
			Group:       s.group,
			UidValidity: uidValidity,
			Uid:         e.UID,
			ImportMode:  importMode,
		})

		var processingErr *domain.ProcessingError
		if errors.As(err, &processingErr) {
			l.WithError(processingErr).Warn("Could not process mail, skipping")
		} else if err != nil {
			return fmt.Errorf("could not receive uid %d: %w", e.UID, err)
		} else if incoming != nil {
			err = s.updateTopic(ctx, e, incoming)
			if err != nil {
				return err
			}
		}

		processed++
		s.group.ImapLastUid = e.UID
		s.group.ImapOldEmails = oldCount + processed
		s.group.ImapNewEmails = newCount - processed
		err = s.store.UpdateGroupImapState(s.group.ID, uidValidity, e.UID, s.group.ImapOldEmails, s.group.ImapNewEmails)
		if err != nil {
			return fmt.Errorf("could not save sync progress: %w", err)
		}
	}

	if processed > 0 {
		s.l.WithFields(logrus.Fields{"processed": processed, "lastuid": s.group.ImapLastUid}).Info("Received new mails")
	}
	return nil
}

// syncToServer pushes tags, archive state and deletions of dirty records.
// The first failure ends the push, the remaining records stay dirty.
func (s *Syncer) syncToServer(ctx context.Context, uidValidity uint32) error {
	dirty, err := s.store.DirtyIncomingEmails(s.group.ID, uidValidity)
	if err != nil {
		return fmt.Errorf("could not list changed incoming emails: %w", err)
	}
	if len(dirty) == 0 {
		return nil
	}

	_, err = s.provider.OpenMailbox(ctx, s.group.ImapMailboxName, true)
	if err != nil {
		return fmt.Errorf("could not open mailbox %s for writing: %w", s.group.ImapMailboxName, err)
	}

	for _, incoming := range dirty {
		err = s.updateEmail(ctx, incoming)
		if err != nil {
			return fmt.Errorf("could not push changes of uid %d: %w", *incoming.ImapUid, err)
		}

		err = s.store.SetIncomingImapSync(incoming.ID, false)
		if err != nil {
			return fmt.Errorf("could not clear changed flag of incoming email %d: %w", incoming.ID, err)
		}
	}

	s.l.WithField("pushed", len(dirty)).Info("Pushed local changes to mailbox")
	return nil
}

func (s *Syncer) updateEmail(ctx context.Context, incoming *domain.IncomingEmail) error {
	if incoming.TopicID == nil || incoming.PostID == nil {
		return nil
	}
	uid := *incoming.ImapUid
	l := s.l.WithFields(logrus.Fields{"uid": uid, "topic": *incoming.TopicID})

	first, err := s.store.FirstPost(*incoming.TopicID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("could not load first post of topic %d: %w", *incoming.TopicID, err)
	}
	if first != nil && first.ID != *incoming.PostID {
		return nil
	}

	emails, err := s.provider.Emails(ctx, []uint32{uid}, pushFields)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		l.Debug("Mail is no longer in the mailbox, nothing to push")
		return nil
	}
	remote := emails[0]

	topic, err := s.store.GetTopic(*incoming.TopicID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("could not load topic %d: %w", *incoming.TopicID, err)
	}
	if topic == nil || topic.Deleted() {
		l.Info("Topic was deleted, trashing mail")
		return s.provider.Trash(ctx, uid)
	}

	newFlags, newLabels := remote.Flags, labelsWithout(remote.Labels, domain.InboxLabel)
	if s.configuration.TaggingEnabled {
		newFlags, newLabels = []string{}, []string{}
		for _, tag := range topic.Tags {
			if flag := s.provider.TagToFlag(tag); len(flag) > 0 {
				newFlags = append(newFlags, flag)
			}
			if label := s.provider.TagToLabel(tag); len(label) > 0 {
				newLabels = append(newLabels, label)
			}
		}
	}

	archived := topic.ArchivedFor(s.group.ID)
	if !archived {
		newLabels = append(newLabels, domain.InboxLabel)
	}

	err = s.provider.Store(ctx, uid, domain.AttributeFlags, remote.Flags, newFlags)
	if err != nil {
		return err
	}
	err = s.provider.Store(ctx, uid, domain.AttributeLabels, remote.Labels, newLabels)
	if err != nil {
		return err
	}

	if archived {
		l.Debug("Topic is archived, archiving mail")
		return s.provider.Archive(ctx, uid)
	}
	return nil
}

func labelsWithout(labels []string, remove string) []string {
	result := []string{}
	for _, l := range labels {
		if !strings.EqualFold(l, remove) {
			result = append(result, l)
		}
	}
	return result
}
