// SPDX-License-Identifier: GPL-3.0-or-later
package spamcheck

import (
	"context"

	"github.com/CrawX/go-imap-groupsync/domain"
)

// Retrying gives every check a second attempt, spam daemons drop the odd
// connection under load.
type Retrying struct {
	domain.SpamChecker
}

func (r *Retrying) Check(ctx context.Context, rawMail []byte) (*domain.SpamResult, error) {
	result, err := r.SpamChecker.Check(ctx, rawMail)
	if err != nil && ctx.Err() == nil {
		result, err = r.SpamChecker.Check(ctx, rawMail)
	}
	return result, err
}
