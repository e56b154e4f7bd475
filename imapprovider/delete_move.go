// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

import (
	"context"

	"github.com/emersion/go-imap"
)

//go:generate mockgen -destination=delete_move_mocks_test.go -package=imapprovider -source delete_move.go

// The deleter and mover strategies plus the copyAndDeleteMoveClient live in
// one file because mockgen source mode cannot resolve interfaces embedded
// across files.

type deleter interface {
	delete(ctx context.Context, uids []uint32) error
	deleteReady(ctx context.Context) (error, error)
}

type mover interface {
	move(ctx context.Context, uids []uint32, mailbox string) error
	moveReady(ctx context.Context) (error, error)
}

type copyAndDeleteMoveClient interface {
	deleter
	uidCopy(ctx context.Context, seqset *imap.SeqSet, mailbox string) error
}
