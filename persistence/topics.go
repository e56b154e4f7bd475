// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CrawX/go-imap-groupsync/domain"
)

func (p *Persistence) CreateTopic(t *domain.Topic) (int64, error) {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return 0, fmt.Errorf("could not start transaction: %w", err)
	}

	result, err := tx.Exec(`INSERT INTO topics (title, created_at) VALUES (?, ?)`, t.Title, p.now())
	if err != nil {
		return 0, txEnd(tx, fmt.Errorf("could not save topic: %w", err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, txEnd(tx, fmt.Errorf("could not get topic id: %w", err))
	}

	for _, tag := range t.Tags {
		_, err = tx.Exec(`INSERT OR IGNORE INTO topic_tags (topic_id, name) VALUES (?, ?)`, id, tag)
		if err != nil {
			return 0, txEnd(tx, fmt.Errorf("could not save topic tag: %w", err))
		}
	}

	return id, txEnd(tx, nil)
}

func (p *Persistence) GetTopic(id int64) (*domain.Topic, error) {
	dbTopic := struct {
		ID        int64      `db:"id"`
		Title     string     `db:"title"`
		DeletedAt *time.Time `db:"deleted_at"`
		CreatedAt time.Time  `db:"created_at"`
	}{}

	err := p.db.Get(&dbTopic, `SELECT id, title, deleted_at, created_at FROM topics WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("topic %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	tags := []string{}
	err = p.db.Select(&tags, `SELECT name FROM topic_tags WHERE topic_id = ? ORDER BY name`, id)
	if err != nil {
		return nil, fmt.Errorf("could not query topic tags: %w", err)
	}

	archived := []int64{}
	err = p.db.Select(&archived, `SELECT group_id FROM group_archived_messages WHERE topic_id = ? ORDER BY group_id`, id)
	if err != nil {
		return nil, fmt.Errorf("could not query archived groups: %w", err)
	}

	return &domain.Topic{
		ID:             dbTopic.ID,
		Title:          dbTopic.Title,
		Tags:           tags,
		ArchivedGroups: archived,
		DeletedAt:      dbTopic.DeletedAt,
		CreatedAt:      dbTopic.CreatedAt,
	}, nil
}

type dbPost struct {
	ID         int64      `db:"id"`
	TopicID    int64      `db:"topic_id"`
	PostNumber int        `db:"post_number"`
	Raw        string     `db:"raw"`
	DeletedAt  *time.Time `db:"deleted_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (p *dbPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:         p.ID,
		TopicID:    p.TopicID,
		PostNumber: p.PostNumber,
		Raw:        p.Raw,
		DeletedAt:  p.DeletedAt,
		CreatedAt:  p.CreatedAt,
	}
}

// CreatePost appends the post to its topic, the post number is assigned here.
func (p *Persistence) CreatePost(post *domain.Post) (int64, error) {
	result, err := p.db.Exec(
		`INSERT INTO posts (topic_id, post_number, raw, created_at)
		VALUES (?, (SELECT COALESCE(MAX(post_number), 0) + 1 FROM posts WHERE topic_id = ?), ?, ?)`,
		post.TopicID, post.TopicID, post.Raw, p.now(),
	)
	if err != nil {
		return 0, fmt.Errorf("could not save post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not get post id: %w", err)
	}

	return id, nil
}

func (p *Persistence) GetPost(id int64) (*domain.Post, error) {
	return p.getPost(`SELECT id, topic_id, post_number, raw, deleted_at, created_at FROM posts WHERE id = ?`, id)
}

func (p *Persistence) FirstPost(topicID int64) (*domain.Post, error) {
	return p.getPost(`SELECT id, topic_id, post_number, raw, deleted_at, created_at FROM posts WHERE topic_id = ? AND post_number = 1`, topicID)
}

func (p *Persistence) getPost(query string, args ...interface{}) (*domain.Post, error) {
	dbPost := dbPost{}
	err := p.db.Get(&dbPost, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("post: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return dbPost.toDomain(), nil
}

// SetTopicTags replaces the tag set of a topic.
func (p *Persistence) SetTopicTags(topicID int64, tags []string) error {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	_, err = tx.Exec(`DELETE FROM topic_tags WHERE topic_id = ?`, topicID)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not clear topic tags: %w", err))
	}

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO topic_tags (topic_id, name) VALUES (?, ?)`)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not prepare statement: %w", err))
	}
	defer stmt.Close()

	for _, tag := range tags {
		_, err = stmt.Exec(topicID, tag)
		if err != nil {
			return txEnd(tx, fmt.Errorf("could not save topic tag: %w", err))
		}
	}

	return txEnd(tx, nil)
}

func (p *Persistence) SetTopicArchived(groupID int64, topicID int64, archived bool) error {
	var err error
	if archived {
		_, err = p.db.Exec(`INSERT OR IGNORE INTO group_archived_messages (group_id, topic_id) VALUES (?, ?)`, groupID, topicID)
	} else {
		_, err = p.db.Exec(`DELETE FROM group_archived_messages WHERE group_id = ? AND topic_id = ?`, groupID, topicID)
	}
	if err != nil {
		return fmt.Errorf("could not update archive state: %w", err)
	}

	return nil
}

func (p *Persistence) SoftDeletePost(postID int64) error {
	result, err := p.db.Exec(`UPDATE posts SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, p.now(), postID)
	if err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}

	return expectOneRow(result)
}

func (p *Persistence) SoftDeleteTopic(topicID int64) error {
	_, err := p.db.Exec(`UPDATE topics SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, p.now(), topicID)
	if err != nil {
		return fmt.Errorf("could not delete topic: %w", err)
	}

	return nil
}

// MarkTopicIncomingEmailsDirty flags the linked email of the first post for
// a push to the mailbox.
func (p *Persistence) MarkTopicIncomingEmailsDirty(topicID int64) error {
	_, err := p.db.Exec(
		`UPDATE incoming_emails SET imap_sync = 1
		WHERE topic_id = ? AND imap_uid IS NOT NULL
			AND post_id IN (SELECT id FROM posts WHERE topic_id = ? AND post_number = 1)`,
		topicID, topicID,
	)
	if err != nil {
		return fmt.Errorf("could not mark incoming emails for sync: %w", err)
	}

	return nil
}

func (p *Persistence) CreateNotification(postID int64, groupID int64) error {
	_, err := p.db.Exec(
		`INSERT INTO post_notifications (post_id, group_id, created_at) VALUES (?, ?, ?)`,
		postID, groupID, p.now(),
	)
	if err != nil {
		return fmt.Errorf("could not save notification: %w", err)
	}

	return nil
}

func (p *Persistence) Notifications(groupID int64) ([]*domain.Notification, error) {
	dbNotifications := []struct {
		ID        int64     `db:"id"`
		PostID    int64     `db:"post_id"`
		GroupID   int64     `db:"group_id"`
		CreatedAt time.Time `db:"created_at"`
	}{}

	err := p.db.Select(
		&dbNotifications,
		`SELECT id, post_id, group_id, created_at FROM post_notifications WHERE group_id = ? ORDER BY id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	notifications := []*domain.Notification{}
	for _, n := range dbNotifications {
		notifications = append(notifications, &domain.Notification{
			ID:        n.ID,
			PostID:    n.PostID,
			GroupID:   n.GroupID,
			CreatedAt: n.CreatedAt,
		})
	}
	return notifications, nil
}
