// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/spamchecker.go -package=mocks . SpamChecker
package domain

import "context"

type SpamResult struct {
	IsSpam bool
	Score  float64
}

type SpamChecker interface {
	Check(ctx context.Context, rawMail []byte) (*SpamResult, error)
}
