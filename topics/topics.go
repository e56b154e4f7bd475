// SPDX-License-Identifier: GPL-3.0-or-later
package topics

import (
	"context"
	"fmt"

	"github.com/CrawX/go-imap-groupsync/domain"
	"github.com/CrawX/go-imap-groupsync/log"

	"github.com/sirupsen/logrus"
)

// Service applies local topic changes. Unless told otherwise every change
// flags the linked email of the first post so it is pushed to the mailbox.
type Service struct {
	store domain.Store
	l     *logrus.Logger
}

func NewService(store domain.Store, loggers *log.Loggers) *Service {
	return &Service{
		store: store,
		l:     loggers.Logger(log.LOG_TOPICS),
	}
}

func (s *Service) TagTopicByNames(ctx context.Context, guardian domain.Guardian, topicID int64, names []string, opts domain.TopicOptions) error {
	if !guardian.CanTag() {
		return fmt.Errorf("%s may not tag topic %d: %w", guardian.Identity(), topicID, domain.ErrForbidden)
	}

	topic, err := s.store.GetTopic(topicID)
	if err != nil {
		return fmt.Errorf("could not load topic: %w", err)
	}

	tags := domain.CleanTags(names)
	if equalTags(topic.Tags, tags) {
		return nil
	}

	err = s.store.SetTopicTags(topicID, tags)
	if err != nil {
		return fmt.Errorf("could not tag topic: %w", err)
	}

	s.l.WithFields(logrus.Fields{"topic": topicID, "tags": tags, "by": guardian.Identity()}).Debug("Tagged topic")
	return s.markDirty(topicID, opts)
}

func (s *Service) Archive(ctx context.Context, groupID int64, topicID int64, opts domain.TopicOptions) error {
	return s.setArchived(groupID, topicID, true, opts)
}

func (s *Service) MoveToInbox(ctx context.Context, groupID int64, topicID int64, opts domain.TopicOptions) error {
	return s.setArchived(groupID, topicID, false, opts)
}

func (s *Service) setArchived(groupID int64, topicID int64, archived bool, opts domain.TopicOptions) error {
	topic, err := s.store.GetTopic(topicID)
	if err != nil {
		return fmt.Errorf("could not load topic: %w", err)
	}
	if topic.ArchivedFor(groupID) == archived {
		return nil
	}

	err = s.store.SetTopicArchived(groupID, topicID, archived)
	if err != nil {
		return err
	}

	s.l.WithFields(logrus.Fields{"topic": topicID, "groupid": groupID, "archived": archived}).Debug("Changed archive state")
	return s.markDirty(topicID, opts)
}

// DestroyPost soft deletes a post. Destroying the first post takes the
// whole topic with it.
func (s *Service) DestroyPost(ctx context.Context, guardian domain.Guardian, postID int64, opts domain.TopicOptions) error {
	if !guardian.CanDestroy() {
		return fmt.Errorf("%s may not destroy post %d: %w", guardian.Identity(), postID, domain.ErrForbidden)
	}

	post, err := s.store.GetPost(postID)
	if err != nil {
		return fmt.Errorf("could not load post: %w", err)
	}
	if post.Deleted() {
		return nil
	}

	err = s.store.SoftDeletePost(postID)
	if err != nil {
		return err
	}

	if post.PostNumber == 1 {
		err = s.store.SoftDeleteTopic(post.TopicID)
		if err != nil {
			return err
		}
	}

	s.l.WithFields(logrus.Fields{"post": postID, "topic": post.TopicID, "by": guardian.Identity()}).Info("Destroyed post")
	return s.markDirty(post.TopicID, opts)
}

func (s *Service) markDirty(topicID int64, opts domain.TopicOptions) error {
	if opts.SkipImapSync {
		return nil
	}

	err := s.store.MarkTopicIncomingEmailsDirty(topicID)
	if err != nil {
		return fmt.Errorf("could not flag topic %d for imap sync: %w", topicID, err)
	}
	return nil
}

func equalTags(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	for _, t := range b {
		if !set[t] {
			return false
		}
	}
	return true
}
