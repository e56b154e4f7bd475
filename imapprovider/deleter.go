// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

//go:generate mockgen -destination=deleter_mocks_test.go -package=imapprovider -source deleter.go
import (
	"context"
	"errors"
	"fmt"

	"github.com/emersion/go-imap"
)

type deletedFlagger interface {
	flagDeleted(ctx context.Context, uids []uint32) (*imap.SeqSet, error)
}

type deletedFlaggerAndUidExpunger interface {
	deletedFlagger
	uidExpunge(ctx context.Context, seqset *imap.SeqSet, ch chan uint32) error
}

// uidPlusDeleter removes exactly the given messages with UID EXPUNGE.
type uidPlusDeleter struct {
	conn deletedFlaggerAndUidExpunger
}

func (u *uidPlusDeleter) delete(ctx context.Context, uids []uint32) error {
	seqset, err := u.conn.flagDeleted(ctx, uids)
	if err != nil {
		return fmt.Errorf("could not flag messages as deleted: %w", err)
	}

	expunged, err := collectExpunged(func(ch chan uint32) error {
		return u.conn.uidExpunge(ctx, seqset, ch)
	})
	if err != nil {
		return err
	}

	if expunged != len(uids) {
		return fmt.Errorf("unexpected number of expunges, expected %d got %d", len(uids), expunged)
	}

	return nil
}

func (u *uidPlusDeleter) deleteReady(ctx context.Context) (error, error) {
	return nil, nil
}

type deleteFlaggerAndExpunger interface {
	deletedFlagger
	expunge(ctx context.Context, ch chan uint32) error
	uidSearch(ctx context.Context, criteria *imap.SearchCriteria) ([]uint32, error)
}

// compatibilityDeleter falls back to a plain EXPUNGE. That removes every
// message flagged \Deleted, so it refuses to run while other messages carry
// the flag.
type compatibilityDeleter struct {
	conn deleteFlaggerAndExpunger
}

func (c *compatibilityDeleter) delete(ctx context.Context, uids []uint32) error {
	notDeleteReadyReason, err := c.deleteReady(ctx)
	if err != nil {
		return fmt.Errorf("could not check for delete readiness: %w", err)
	}

	if notDeleteReadyReason != nil {
		return fmt.Errorf("mailbox is not ready for delete: %w", notDeleteReadyReason)
	}

	_, err = c.conn.flagDeleted(ctx, uids)
	if err != nil {
		return fmt.Errorf("could not flag messages as deleted: %w", err)
	}

	expunged, err := collectExpunged(func(ch chan uint32) error {
		return c.conn.expunge(ctx, ch)
	})
	if err != nil {
		return err
	}

	if expunged != len(uids) {
		return fmt.Errorf("unexpected number of expunges, expected %d got %d", len(uids), expunged)
	}

	return nil
}

var ErrDeletedFlagPresent = errors.New("mailbox has other messages with the deleted flag set")

func (c *compatibilityDeleter) deleteReady(ctx context.Context) (error, error) {
	criteria := imap.NewSearchCriteria()
	criteria.WithFlags = []string{imap.DeletedFlag}
	uids, err := c.conn.uidSearch(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search for deleted messages: %w", err)
	}

	if len(uids) > 0 {
		return ErrDeletedFlagPresent, nil
	}
	return nil, nil
}

func collectExpunged(expunge func(ch chan uint32) error) (int, error) {
	out := make(chan uint32)
	done := make(chan error, 1)
	go func() {
		done <- expunge(out)
	}()

	expunged := 0
	for range out {
		expunged++
	}

	err := <-done
	if err != nil {
		return 0, fmt.Errorf("could not expunge messages: %w", err)
	}
	return expunged, nil
}
