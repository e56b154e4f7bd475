// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "context"

//go:generate mockgen -destination=mocks/topics.go -package=mocks . TopicService

type Guardian interface {
	Identity() string
	CanTag() bool
	CanDestroy() bool
}

type TopicOptions struct {
	// SkipImapSync leaves the linked emails clean, used when the change came
	// from the mailbox itself.
	SkipImapSync bool
}

type TopicService interface {
	TagTopicByNames(ctx context.Context, guardian Guardian, topicID int64, tags []string, opts TopicOptions) error
	Archive(ctx context.Context, groupID int64, topicID int64, opts TopicOptions) error
	MoveToInbox(ctx context.Context, groupID int64, topicID int64, opts TopicOptions) error
	DestroyPost(ctx context.Context, guardian Guardian, postID int64, opts TopicOptions) error
}

type systemGuardian struct {
	taggingEnabled bool
}

// SystemGuardian acts for changes that originate from a mailbox.
func SystemGuardian(taggingEnabled bool) Guardian {
	return &systemGuardian{taggingEnabled: taggingEnabled}
}

func (g *systemGuardian) Identity() string {
	return "system"
}

func (g *systemGuardian) CanTag() bool {
	return g.taggingEnabled
}

func (g *systemGuardian) CanDestroy() bool {
	return true
}
