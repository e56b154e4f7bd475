// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CrawX/go-imap-groupsync/domain"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type dbIncomingEmail struct {
	ID              int64     `db:"id"`
	MessageID       string    `db:"message_id"`
	FromAddress     string    `db:"from_address"`
	ToAddresses     string    `db:"to_addresses"`
	CcAddresses     string    `db:"cc_addresses"`
	Subject         string    `db:"subject"`
	Raw             []byte    `db:"raw"`
	Error           *string   `db:"error"`
	Rejected        bool      `db:"rejected"`
	TopicID         *int64    `db:"topic_id"`
	PostID          *int64    `db:"post_id"`
	ImapUidValidity *uint32   `db:"imap_uid_validity"`
	ImapUid         *uint32   `db:"imap_uid"`
	ImapGroupID     *int64    `db:"imap_group_id"`
	ImapSync        bool      `db:"imap_sync"`
	ImapMissing     bool      `db:"imap_missing"`
	CreatedAt       time.Time `db:"created_at"`
}

const incomingColumns = `id, message_id, from_address, to_addresses, cc_addresses, subject, raw, error, rejected,
	topic_id, post_id, imap_uid_validity, imap_uid, imap_group_id, imap_sync, imap_missing, created_at`

func (e *dbIncomingEmail) toDomain() *domain.IncomingEmail {
	return &domain.IncomingEmail{
		ID:              e.ID,
		MessageID:       e.MessageID,
		FromAddress:     e.FromAddress,
		ToAddresses:     e.ToAddresses,
		CcAddresses:     e.CcAddresses,
		Subject:         e.Subject,
		Raw:             e.Raw,
		Error:           e.Error,
		Rejected:        e.Rejected,
		TopicID:         e.TopicID,
		PostID:          e.PostID,
		ImapUidValidity: e.ImapUidValidity,
		ImapUid:         e.ImapUid,
		ImapGroupID:     e.ImapGroupID,
		ImapSync:        e.ImapSync,
		ImapMissing:     e.ImapMissing,
		CreatedAt:       e.CreatedAt,
	}
}

func (p *Persistence) getIncoming(query string, args ...interface{}) (*domain.IncomingEmail, error) {
	dbEmail := dbIncomingEmail{}
	err := p.db.Get(&dbEmail, query, args...)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return dbEmail.toDomain(), nil
}

func (p *Persistence) selectIncoming(query string, args ...interface{}) ([]*domain.IncomingEmail, error) {
	dbEmails := []dbIncomingEmail{}
	err := p.db.Select(&dbEmails, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	emails := []*domain.IncomingEmail{}
	for i := range dbEmails {
		emails = append(emails, dbEmails[i].toDomain())
	}
	return emails, nil
}

// FindIncomingByUID skips records marked missing, their linkage points into
// the trash or spam mailbox.
func (p *Persistence) FindIncomingByUID(groupID int64, uidValidity uint32, uid uint32) (*domain.IncomingEmail, error) {
	return p.getIncoming(
		`SELECT `+incomingColumns+` FROM incoming_emails
		WHERE imap_group_id = ? AND imap_uid_validity = ? AND imap_uid = ? AND imap_missing = 0`,
		groupID, uidValidity, uid,
	)
}

func (p *Persistence) FindIncomingByMessageID(messageID string) (*domain.IncomingEmail, error) {
	return p.getIncoming(
		`SELECT `+incomingColumns+` FROM incoming_emails WHERE message_id = ? ORDER BY id LIMIT 1`,
		messageID,
	)
}

// FindUnlinkedIncomingByMessageID finds a record that has no mailbox linkage
// yet and was addressed to emailUsername.
func (p *Persistence) FindUnlinkedIncomingByMessageID(messageID string, emailUsername string) (*domain.IncomingEmail, error) {
	pattern := "%" + emailUsername + "%"
	return p.getIncoming(
		`SELECT `+incomingColumns+` FROM incoming_emails
		WHERE message_id = ? AND imap_uid IS NULL AND imap_uid_validity IS NULL
			AND (to_addresses LIKE ? OR cc_addresses LIKE ?)
		ORDER BY id LIMIT 1`,
		messageID, pattern, pattern,
	)
}

func (p *Persistence) FindIncomingByMessageIDs(messageIDs []string) ([]*domain.IncomingEmail, error) {
	if len(messageIDs) == 0 {
		return []*domain.IncomingEmail{}, nil
	}

	qry, args, err := sqlx.In(
		`SELECT `+incomingColumns+` FROM incoming_emails WHERE message_id IN (?) ORDER BY id`,
		messageIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("could not replace IN in query: %w", err)
	}

	return p.selectIncoming(qry, args...)
}

// LinkIncomingEmail points the record at a mailbox location and clears the
// missing marker.
func (p *Persistence) LinkIncomingEmail(id int64, groupID int64, uidValidity uint32, uid uint32) error {
	result, err := p.db.Exec(
		`UPDATE incoming_emails SET imap_group_id = ?, imap_uid_validity = ?, imap_uid = ?, imap_missing = 0 WHERE id = ?`,
		groupID, uidValidity, uid, id,
	)
	if err != nil {
		return fmt.Errorf("could not link incoming email: %w", err)
	}

	p.l.WithFields(logrus.Fields{"id": id, "groupid": groupID, "uidvalidity": uidValidity, "uid": uid}).Debug("Linked incoming email")
	return expectOneRow(result)
}

func (p *Persistence) LinkedIncomingEmails(groupID int64, uidValidity uint32) ([]*domain.IncomingEmail, error) {
	return p.selectIncoming(
		`SELECT `+incomingColumns+` FROM incoming_emails
		WHERE imap_group_id = ? AND imap_uid_validity = ? AND imap_uid IS NOT NULL AND imap_missing = 0
		ORDER BY imap_uid`,
		groupID, uidValidity,
	)
}

func (p *Persistence) MarkIncomingMissing(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	qry, args, err := sqlx.In(`UPDATE incoming_emails SET imap_missing = 1 WHERE id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("could not replace IN in query: %w", err)
	}

	_, err = p.db.Exec(qry, args...)
	if err != nil {
		return fmt.Errorf("could not mark incoming emails missing: %w", err)
	}

	return nil
}

func (p *Persistence) DirtyIncomingEmails(groupID int64, uidValidity uint32) ([]*domain.IncomingEmail, error) {
	return p.selectIncoming(
		`SELECT `+incomingColumns+` FROM incoming_emails
		WHERE imap_group_id = ? AND imap_uid_validity = ? AND imap_uid IS NOT NULL AND imap_sync = 1 AND imap_missing = 0
		ORDER BY imap_uid`,
		groupID, uidValidity,
	)
}

func (p *Persistence) SetIncomingImapSync(id int64, dirty bool) error {
	result, err := p.db.Exec(`UPDATE incoming_emails SET imap_sync = ? WHERE id = ?`, dirty, id)
	if err != nil {
		return fmt.Errorf("could not update imap sync flag: %w", err)
	}

	return expectOneRow(result)
}

func (p *Persistence) CreateIncomingEmail(e *domain.IncomingEmail) (int64, error) {
	result, err := p.db.Exec(
		`INSERT INTO incoming_emails (message_id, from_address, to_addresses, cc_addresses, subject, raw, error, rejected,
			topic_id, post_id, imap_uid_validity, imap_uid, imap_group_id, imap_sync, imap_missing, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.MessageID, e.FromAddress, e.ToAddresses, e.CcAddresses, e.Subject, e.Raw, e.Error, e.Rejected,
		e.TopicID, e.PostID, e.ImapUidValidity, e.ImapUid, e.ImapGroupID, e.ImapSync, e.ImapMissing, p.now(),
	)
	if err != nil {
		return 0, fmt.Errorf("could not save incoming email: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not get incoming email id: %w", err)
	}

	return id, nil
}

func (p *Persistence) UpdateIncomingEmail(e *domain.IncomingEmail) error {
	result, err := p.db.Exec(
		`UPDATE incoming_emails SET error = ?, rejected = ?, topic_id = ?, post_id = ? WHERE id = ?`,
		e.Error, e.Rejected, e.TopicID, e.PostID, e.ID,
	)
	if err != nil {
		return fmt.Errorf("could not update incoming email: %w", err)
	}

	return expectOneRow(result)
}
