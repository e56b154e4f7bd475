// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CrawX/go-imap-groupsync/domain"

	"github.com/sirupsen/logrus"
)

func (p *Persistence) AddSyncLog(groupID int64, level string, message string) error {
	_, err := p.db.Exec(
		`INSERT INTO imap_sync_logs (group_id, level, message, created_at) VALUES (?, ?, ?, ?)`,
		groupID, level, message, p.now(),
	)
	if err != nil {
		return fmt.Errorf("could not save sync log: %w", err)
	}

	return nil
}

// SyncLogs returns the newest entries first.
func (p *Persistence) SyncLogs(groupID int64, limit int) ([]*domain.ImapSyncLog, error) {
	dbLogs := []struct {
		ID        int64     `db:"id"`
		GroupID   int64     `db:"group_id"`
		Level     string    `db:"level"`
		Message   string    `db:"message"`
		CreatedAt time.Time `db:"created_at"`
	}{}

	err := p.db.Select(
		&dbLogs,
		`SELECT id, group_id, level, message, created_at FROM imap_sync_logs WHERE group_id = ? ORDER BY id DESC LIMIT ?`,
		groupID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	logs := []*domain.ImapSyncLog{}
	for _, l := range dbLogs {
		logs = append(logs, &domain.ImapSyncLog{
			ID:        l.ID,
			GroupID:   l.GroupID,
			Level:     l.Level,
			Message:   l.Message,
			CreatedAt: l.CreatedAt,
		})
	}
	return logs, nil
}

func (p *Persistence) PruneSyncLogs(before time.Time) (int64, error) {
	result, err := p.db.Exec(`DELETE FROM imap_sync_logs WHERE created_at < ?`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("could not prune sync logs: %w", err)
	}

	pruned, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get num of affected rows: %w", err)
	}

	p.l.WithField("pruned", pruned).Debug("Pruned sync logs")
	return pruned, nil
}

// ClaimHeartbeat takes or refreshes the named heartbeat for owner. It fails
// to claim while another owner beat within staleAfter.
func (p *Persistence) ClaimHeartbeat(key string, owner string, staleAfter time.Duration) (bool, error) {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return false, fmt.Errorf("could not start transaction: %w", err)
	}

	now := p.now()
	current := struct {
		Owner  string    `db:"owner"`
		BeatAt time.Time `db:"beat_at"`
	}{}
	err = tx.Get(&current, `SELECT owner, beat_at FROM heartbeats WHERE name = ?`, key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return false, txEnd(tx, fmt.Errorf("could not query heartbeat: %w", err))
	case current.Owner != owner && now.Sub(current.BeatAt) < staleAfter:
		return false, txEnd(tx, nil)
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO heartbeats (name, owner, beat_at) VALUES (?, ?, ?)`, key, owner, now)
	if err != nil {
		return false, txEnd(tx, fmt.Errorf("could not save heartbeat: %w", err))
	}

	if current.Owner != owner {
		p.l.WithFields(logrus.Fields{"heartbeat": key, "owner": owner, "previous": current.Owner}).Info("Claimed heartbeat")
	}

	err = txEnd(tx, nil)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Persistence) ReleaseHeartbeat(key string, owner string) error {
	_, err := p.db.Exec(`DELETE FROM heartbeats WHERE name = ? AND owner = ?`, key, owner)
	if err != nil {
		return fmt.Errorf("could not release heartbeat: %w", err)
	}

	return nil
}
