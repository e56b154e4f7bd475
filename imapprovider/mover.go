// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

//go:generate mockgen -destination=mover_mocks_test.go -package=imapprovider -source mover.go
import (
	"context"
	"fmt"

	"github.com/emersion/go-imap"
)

type moveClient interface {
	uidMove(ctx context.Context, seqset *imap.SeqSet, mailbox string) error
}

type moveMover struct {
	conn moveClient
}

func (m *moveMover) move(ctx context.Context, uids []uint32, mailbox string) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	return m.conn.uidMove(ctx, seqset, mailbox)
}

func (m *moveMover) moveReady(ctx context.Context) (error, error) {
	return nil, nil
}

// compatibilityMover copies and then deletes the originals.
type compatibilityMover struct {
	conn copyAndDeleteMoveClient
}

func (c *compatibilityMover) move(ctx context.Context, uids []uint32, mailbox string) error {
	notDeleteReadyReason, err := c.moveReady(ctx)
	if err != nil {
		return fmt.Errorf("could not check for delete readiness to move: %w", err)
	}

	if notDeleteReadyReason != nil {
		return fmt.Errorf("mailbox is not ready for delete, cannot move (copy&delete): %w", notDeleteReadyReason)
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err = c.conn.uidCopy(ctx, seqset, mailbox)
	if err != nil {
		return fmt.Errorf("could not copy messages to %s: %w", mailbox, err)
	}

	err = c.conn.delete(ctx, uids)
	if err != nil {
		return fmt.Errorf("could not delete copied messages: %w", err)
	}

	return nil
}

func (c *compatibilityMover) moveReady(ctx context.Context) (error, error) {
	return c.conn.deleteReady(ctx)
}
