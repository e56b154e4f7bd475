// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CrawX/go-imap-groupsync/domain"

	"github.com/sirupsen/logrus"
)

type dbGroup struct {
	ID               int64     `db:"id"`
	Name             string    `db:"name"`
	EmailUsername    string    `db:"email_username"`
	ImapServer       string    `db:"imap_server"`
	ImapPort         int       `db:"imap_port"`
	ImapSSL          bool      `db:"imap_ssl"`
	ImapUsername     string    `db:"imap_username"`
	ImapPassword     string    `db:"imap_password"`
	ImapMailboxName  string    `db:"imap_mailbox_name"`
	ImapProvider     string    `db:"imap_provider"`
	ImapUidValidity  uint32    `db:"imap_uid_validity"`
	ImapLastUid      uint32    `db:"imap_last_uid"`
	ImapOldEmails    int       `db:"imap_old_emails"`
	ImapNewEmails    int       `db:"imap_new_emails"`
	ImapLastError    *string   `db:"imap_last_error"`
	ImapEnabled      bool      `db:"imap_enabled"`
	ImapIdleEnabled  bool      `db:"imap_idle_enabled"`
	ImapWriteEnabled bool      `db:"imap_write_enabled"`
	UpdatedAt        time.Time `db:"updated_at"`
}

const groupColumns = `id, name, email_username, imap_server, imap_port, imap_ssl, imap_username, imap_password,
	imap_mailbox_name, imap_provider, imap_uid_validity, imap_last_uid, imap_old_emails, imap_new_emails,
	imap_last_error, imap_enabled, imap_idle_enabled, imap_write_enabled, updated_at`

func (g *dbGroup) toDomain() *domain.Group {
	return &domain.Group{
		ID:               g.ID,
		Name:             g.Name,
		EmailUsername:    g.EmailUsername,
		ImapServer:       g.ImapServer,
		ImapPort:         g.ImapPort,
		ImapSSL:          g.ImapSSL,
		ImapUsername:     g.ImapUsername,
		ImapPassword:     g.ImapPassword,
		ImapMailboxName:  g.ImapMailboxName,
		ImapProvider:     g.ImapProvider,
		ImapUidValidity:  g.ImapUidValidity,
		ImapLastUid:      g.ImapLastUid,
		ImapOldEmails:    g.ImapOldEmails,
		ImapNewEmails:    g.ImapNewEmails,
		ImapLastError:    g.ImapLastError,
		ImapEnabled:      g.ImapEnabled,
		ImapIdleEnabled:  g.ImapIdleEnabled,
		ImapWriteEnabled: g.ImapWriteEnabled,
		UpdatedAt:        g.UpdatedAt,
	}
}

func (p *Persistence) CreateGroup(g *domain.Group) (int64, error) {
	provider := g.ImapProvider
	if len(provider) == 0 {
		provider = domain.ProviderGeneric
	}

	result, err := p.db.Exec(
		`INSERT INTO mail_groups (name, email_username, imap_server, imap_port, imap_ssl, imap_username, imap_password,
			imap_mailbox_name, imap_provider, imap_enabled, imap_idle_enabled, imap_write_enabled, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.Name, g.EmailUsername, g.ImapServer, g.ImapPort, g.ImapSSL, g.ImapUsername, g.ImapPassword,
		g.ImapMailboxName, provider, g.ImapEnabled, g.ImapIdleEnabled, g.ImapWriteEnabled, p.now(),
	)
	if err != nil {
		return 0, fmt.Errorf("could not save group: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not get group id: %w", err)
	}

	p.l.WithFields(logrus.Fields{"id": id, "name": g.Name}).Info("Persisted group")
	return id, nil
}

func (p *Persistence) GetGroup(id int64) (*domain.Group, error) {
	dbGroup := dbGroup{}
	err := p.db.Get(
		&dbGroup,
		`SELECT `+groupColumns+` FROM mail_groups WHERE id = ?`,
		id,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return dbGroup.toDomain(), nil
}

func (p *Persistence) AllGroups() ([]*domain.Group, error) {
	return p.selectGroups(`SELECT ` + groupColumns + ` FROM mail_groups ORDER BY id`)
}

// ImapGroups lists groups with a complete mailbox configuration.
func (p *Persistence) ImapGroups() ([]*domain.Group, error) {
	groups, err := p.selectGroups(
		`SELECT ` + groupColumns + ` FROM mail_groups
		WHERE imap_enabled = 1 AND imap_server != '' AND imap_username != '' AND imap_password != '' AND imap_mailbox_name != ''
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}

	p.l.WithField("count", len(groups)).Debug("Found imap groups")
	return groups, nil
}

func (p *Persistence) selectGroups(query string, args ...interface{}) ([]*domain.Group, error) {
	dbGroups := []dbGroup{}
	err := p.db.Select(&dbGroups, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	groups := []*domain.Group{}
	for i := range dbGroups {
		groups = append(groups, dbGroups[i].toDomain())
	}
	return groups, nil
}

func (p *Persistence) UpdateGroupImapState(groupID int64, uidValidity uint32, lastUid uint32, oldEmails int, newEmails int) error {
	result, err := p.db.Exec(
		`UPDATE mail_groups SET imap_uid_validity = ?, imap_last_uid = ?, imap_old_emails = ?, imap_new_emails = ?, updated_at = ?
		WHERE id = ?`,
		uidValidity, lastUid, oldEmails, newEmails, p.now(), groupID,
	)
	if err != nil {
		return fmt.Errorf("could not update group imap state: %w", err)
	}

	return expectOneRow(result)
}

// UpdateGroupCounts records the counts of a pass and clears the last error.
func (p *Persistence) UpdateGroupCounts(groupID int64, oldEmails int, newEmails int) error {
	result, err := p.db.Exec(
		`UPDATE mail_groups SET imap_old_emails = ?, imap_new_emails = ?, imap_last_error = NULL, updated_at = ?
		WHERE id = ?`,
		oldEmails, newEmails, p.now(), groupID,
	)
	if err != nil {
		return fmt.Errorf("could not update group counts: %w", err)
	}

	return expectOneRow(result)
}

func (p *Persistence) SetGroupLastError(groupID int64, lastError *string) error {
	result, err := p.db.Exec(
		`UPDATE mail_groups SET imap_last_error = ?, updated_at = ? WHERE id = ?`,
		lastError, p.now(), groupID,
	)
	if err != nil {
		return fmt.Errorf("could not update group error: %w", err)
	}

	return expectOneRow(result)
}

func (p *Persistence) SetGroupImapEnabled(groupID int64, enabled bool) error {
	result, err := p.db.Exec(
		`UPDATE mail_groups SET imap_enabled = ?, updated_at = ? WHERE id = ?`,
		enabled, p.now(), groupID,
	)
	if err != nil {
		return fmt.Errorf("could not update group: %w", err)
	}

	return expectOneRow(result)
}

// UpdateGroupImapSettings saves the mailbox settings of g, the sync state is
// left untouched.
func (p *Persistence) UpdateGroupImapSettings(g *domain.Group) error {
	provider := g.ImapProvider
	if len(provider) == 0 {
		provider = domain.ProviderGeneric
	}

	result, err := p.db.Exec(
		`UPDATE mail_groups SET email_username = ?, imap_server = ?, imap_port = ?, imap_ssl = ?, imap_username = ?,
			imap_password = ?, imap_mailbox_name = ?, imap_provider = ?, imap_enabled = ?, imap_idle_enabled = ?,
			imap_write_enabled = ?, updated_at = ?
		WHERE id = ?`,
		g.EmailUsername, g.ImapServer, g.ImapPort, g.ImapSSL, g.ImapUsername,
		g.ImapPassword, g.ImapMailboxName, provider, g.ImapEnabled, g.ImapIdleEnabled,
		g.ImapWriteEnabled, p.now(), g.ID,
	)
	if err != nil {
		return fmt.Errorf("could not update group: %w", err)
	}

	return expectOneRow(result)
}
