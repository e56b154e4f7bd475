// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination=mocks/receiver.go -package=mocks . Receiver

type ReceiveOptions struct {
	Group       *Group
	UidValidity uint32
	Uid         uint32
	ImportMode  bool
}

type Receiver interface {
	Receive(ctx context.Context, rawMail []byte, opts ReceiveOptions) (*IncomingEmail, error)
}

const (
	ReasonTooLarge   = "too_large"
	ReasonUnparsable = "unparsable"
	ReasonSpam       = "spam"
	ReasonEmptyBody  = "empty_body"
)

// ProcessingError is a rejection of a single message. The message is done
// with, the caller moves on to the next one.
type ProcessingError struct {
	Reason string
	Err    error
}

func (e *ProcessingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("email rejected: %s", e.Reason)
	}
	return fmt.Sprintf("email rejected: %s: %v", e.Reason, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
