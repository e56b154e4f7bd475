// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "errors"

var (
	ErrDisconnected  = errors.New("imap session is not connected")
	ErrWriteDisabled = errors.New("writing to the mailbox is disabled")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("not allowed")
)
