// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

import (
	"context"
	"errors"
	"testing"

	"github.com/emersion/go-imap"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestMoveMover_MoveReady(t *testing.T) {
	mover := moveMover{nil}

	notMoveReadyReason, err := mover.moveReady(context.Background())
	assert.NoError(t, notMoveReadyReason)
	assert.NoError(t, err)
}

func TestMoveMover_Move(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	conn := NewMockmoveClient(ctrl)
	mover := moveMover{conn}

	seqset := &imap.SeqSet{}
	seqset.AddNum(u32a(1, 2, 3)...)
	conn.EXPECT().
		uidMove(ctx, gomock.Eq(seqset), gomock.Eq("Trash")).
		Return(nil)

	err := mover.move(ctx, u32a(1, 2, 3), "Trash")
	assert.NoError(t, err)
}

func TestCompatibilityMover_MoveReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	conn := NewMockcopyAndDeleteMoveClient(ctrl)
	mover := compatibilityMover{conn}

	notReadyErr := errors.New("delete not ready")
	conn.EXPECT().deleteReady(ctx).Return(nil, nil)
	conn.EXPECT().deleteReady(ctx).Return(notReadyErr, nil)

	notMoveReadyReason, err := mover.moveReady(ctx)
	assert.NoError(t, notMoveReadyReason)
	assert.NoError(t, err)

	notMoveReadyReason, err = mover.moveReady(ctx)
	assert.EqualError(t, notMoveReadyReason, notReadyErr.Error())
	assert.NoError(t, err)
}

func TestCompatibilityMover_Move(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	conn := NewMockcopyAndDeleteMoveClient(ctrl)
	mover := compatibilityMover{conn}

	seqset := &imap.SeqSet{}
	seqset.AddNum(u32a(1, 2, 3)...)
	gomock.InOrder(
		conn.EXPECT().deleteReady(ctx).Return(nil, nil),
		conn.EXPECT().uidCopy(ctx, gomock.Eq(seqset), "Archive").Return(nil),
		conn.EXPECT().delete(ctx, u32a(1, 2, 3)).Return(nil),
	)

	err := mover.move(ctx, u32a(1, 2, 3), "Archive")
	assert.NoError(t, err)
}

func TestCompatibilityMover_MoveButNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	conn := NewMockcopyAndDeleteMoveClient(ctrl)
	mover := compatibilityMover{conn}

	conn.EXPECT().
		deleteReady(ctx).
		Return(errors.New("delete not ready"), nil)

	err := mover.move(ctx, u32a(1, 2, 3), "Archive")
	assert.EqualError(t, err, "mailbox is not ready for delete, cannot move (copy&delete): delete not ready")
}

func TestCompatibilityMover_CopyFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	conn := NewMockcopyAndDeleteMoveClient(ctrl)
	mover := compatibilityMover{conn}

	conn.EXPECT().deleteReady(ctx).Return(nil, nil)
	conn.EXPECT().uidCopy(ctx, gomock.Any(), "Archive").Return(errors.New("NO [TRYCREATE]"))

	err := mover.move(ctx, u32a(1), "Archive")
	assert.EqualError(t, err, "could not copy messages to Archive: NO [TRYCREATE]")
}
