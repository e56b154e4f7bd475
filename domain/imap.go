// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/imap.go -package=mocks . Provider

type EmailField string

const (
	FieldUID      = EmailField("UID")
	FieldFlags    = EmailField("FLAGS")
	FieldLabels   = EmailField("LABELS")
	FieldEnvelope = EmailField("ENVELOPE")
	FieldBody     = EmailField("BODY")
)

type Attribute string

const (
	AttributeFlags  = Attribute("FLAGS")
	AttributeLabels = Attribute("LABELS")
)

const (
	CapabilityIdle = "IDLE"

	InboxLabel = `\Inbox`
)

type MailboxStatus struct {
	Name        string
	UidValidity uint32
	UidNext     uint32
	Messages    uint32
}

// RemoteEmail is what a fetch returned for one message. Only the requested
// fields are filled.
type RemoteEmail struct {
	UID       uint32
	Flags     []string
	Labels    []string
	MessageID string
	Subject   string
	Body      []byte
}

type BasicMail struct {
	MessageID string
	UID       uint32
}

type TrashedMailResponse struct {
	UidValidity uint32
	Emails      []BasicMail
}

// Provider speaks to one mailbox on one IMAP server family.
type Provider interface {
	Connect(ctx context.Context) error
	Disconnect() error
	Disconnected() bool
	Can(capability string) bool

	OpenMailbox(ctx context.Context, name string, write bool) (*MailboxStatus, error)
	// Uids lists UIDs in [from, to], to == 0 leaves the range open.
	Uids(ctx context.Context, from, to uint32) ([]uint32, error)
	Emails(ctx context.Context, uids []uint32, fields []EmailField) ([]*RemoteEmail, error)
	Store(ctx context.Context, uid uint32, attribute Attribute, oldValues, newValues []string) error
	Trash(ctx context.Context, uid uint32) error
	Archive(ctx context.Context, uid uint32) error

	FindTrashedByMessageIDs(ctx context.Context, messageIDs []string) (*TrashedMailResponse, error)
	FindSpamByMessageIDs(ctx context.Context, messageIDs []string) (*TrashedMailResponse, error)

	TagToFlag(tag string) string
	TagToLabel(tag string) string
	ToTag(label string) string

	WaitForNewMail(ctx context.Context, timeout time.Duration) error
}
