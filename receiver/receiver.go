// SPDX-License-Identifier: GPL-3.0-or-later
package receiver

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/CrawX/go-imap-groupsync/domain"
	"github.com/CrawX/go-imap-groupsync/log"
	"github.com/CrawX/go-imap-groupsync/mail"

	"github.com/jhillyerd/enmime"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxEmailSizeKB = 10240
	NoSubject             = "(no subject)"
)

type ConfigFunc func(r *Receiver)

func MaxEmailSizeKB(kb int) ConfigFunc {
	return func(r *Receiver) {
		r.maxEmailSize = kb * 1024
	}
}

// WithSpamChecker vetoes mails the checker classifies as spam.
func WithSpamChecker(checker domain.SpamChecker) ConfigFunc {
	return func(r *Receiver) {
		r.spamChecker = checker
	}
}

// Receiver turns raw mails into topics and posts.
type Receiver struct {
	store        domain.Store
	spamChecker  domain.SpamChecker
	maxEmailSize int
	l            *logrus.Logger
}

func NewReceiver(store domain.Store, loggers *log.Loggers, configFuncs ...ConfigFunc) *Receiver {
	r := &Receiver{
		store:        store,
		maxEmailSize: DefaultMaxEmailSizeKB * 1024,
		l:            loggers.Logger(log.LOG_RECEIVER),
	}
	for _, f := range configFuncs {
		f(r)
	}
	return r
}

// Receive stores rawMail as a post. A mail whose Message-Id was seen before
// is not imported twice, it only gains the mailbox linkage when it had none,
// when it was marked missing or when the group's mailbox got a new uid
// validity since it was linked.
// Rejections are recorded and returned as *domain.ProcessingError, any other
// error is a failure of the store.
func (r *Receiver) Receive(ctx context.Context, rawMail []byte, opts domain.ReceiveOptions) (*domain.IncomingEmail, error) {
	infos, parseErr := mail.MailHeaderInfos(rawMail)
	if parseErr != nil {
		infos = &mail.HeaderInfos{}
	}
	if len(infos.MessageID) == 0 {
		infos.MessageID = mail.SyntheticMessageID(rawMail)
	}

	l := r.l.WithFields(logrus.Fields{"messageid": infos.MessageID, "uid": opts.Uid})

	existing, err := r.store.FindIncomingByMessageID(infos.MessageID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if opts.Group != nil && (existing.ImapUid == nil || staleLink(existing, opts)) {
			err = r.store.LinkIncomingEmail(existing.ID, opts.Group.ID, opts.UidValidity, opts.Uid)
			if err != nil {
				return nil, err
			}
			existing.ImapGroupID = &opts.Group.ID
			existing.ImapUidValidity = &opts.UidValidity
			existing.ImapUid = &opts.Uid
			existing.ImapMissing = false
			l.Debug("Linked already imported mail")
		} else {
			l.Debug("Mail was already imported")
		}
		return existing, nil
	}

	if parseErr != nil {
		return r.reject(rawMail, infos, opts, domain.ReasonUnparsable, parseErr)
	}

	if len(rawMail) > r.maxEmailSize {
		return r.reject(nil, infos, opts, domain.ReasonTooLarge, fmt.Errorf("%d bytes exceed the limit of %d", len(rawMail), r.maxEmailSize))
	}

	envelope, err := enmime.ReadEnvelope(bytes.NewReader(rawMail))
	if err != nil {
		return r.reject(rawMail, infos, opts, domain.ReasonUnparsable, err)
	}

	if r.spamChecker != nil {
		result, err := r.spamChecker.Check(ctx, rawMail)
		if err != nil {
			return nil, fmt.Errorf("could not check mail for spam: %w", err)
		}
		if result.IsSpam {
			return r.reject(rawMail, infos, opts, domain.ReasonSpam, fmt.Errorf("score %.1f", result.Score))
		}
	}

	body := strings.TrimSpace(envelope.Text)
	if len(body) == 0 {
		body = strings.TrimSpace(envelope.HTML)
	}
	if len(body) == 0 {
		return r.reject(rawMail, infos, opts, domain.ReasonEmptyBody, nil)
	}

	topicID, err := r.parentTopic(infos)
	if err != nil {
		return nil, err
	}
	if topicID == 0 {
		title := strings.TrimSpace(infos.Subject)
		if len(title) == 0 {
			title = NoSubject
		}
		topicID, err = r.store.CreateTopic(&domain.Topic{Title: title})
		if err != nil {
			return nil, err
		}
	}

	postID, err := r.store.CreatePost(&domain.Post{TopicID: topicID, Raw: body})
	if err != nil {
		return nil, err
	}

	email := r.incomingEmail(rawMail, infos, opts)
	email.TopicID = &topicID
	email.PostID = &postID
	email.ID, err = r.store.CreateIncomingEmail(email)
	if err != nil {
		return nil, err
	}

	if !opts.ImportMode && opts.Group != nil {
		err = r.store.CreateNotification(postID, opts.Group.ID)
		if err != nil {
			return nil, err
		}
	}

	l.WithFields(logrus.Fields{
		"topic":       topicID,
		"post":        postID,
		"attachments": len(envelope.Attachments),
		"subject":     mail.ShortSubject(infos.Subject),
	}).Info("Received mail")

	return email, nil
}

// staleLink reports whether existing is linked to the group of opts but
// no longer points at its mailbox.
func staleLink(existing *domain.IncomingEmail, opts domain.ReceiveOptions) bool {
	if existing.ImapGroupID == nil || *existing.ImapGroupID != opts.Group.ID {
		return false
	}
	return existing.ImapMissing || existing.ImapUidValidity == nil || *existing.ImapUidValidity != opts.UidValidity
}

// parentTopic follows In-Reply-To, then References, to a live topic. Zero
// means the mail starts a new one.
func (r *Receiver) parentTopic(infos *mail.HeaderInfos) (int64, error) {
	for _, ids := range [][]string{infos.InReplyTo, infos.References} {
		if len(ids) == 0 {
			continue
		}
		parents, err := r.store.FindIncomingByMessageIDs(ids)
		if err != nil {
			return 0, err
		}
		for _, p := range parents {
			if p.TopicID == nil {
				continue
			}
			topic, err := r.store.GetTopic(*p.TopicID)
			if err != nil {
				return 0, err
			}
			if !topic.Deleted() {
				return topic.ID, nil
			}
		}
	}
	return 0, nil
}

func (r *Receiver) incomingEmail(rawMail []byte, infos *mail.HeaderInfos, opts domain.ReceiveOptions) *domain.IncomingEmail {
	email := &domain.IncomingEmail{
		MessageID:   infos.MessageID,
		FromAddress: infos.From,
		ToAddresses: strings.Join(infos.To, ";"),
		CcAddresses: strings.Join(infos.Cc, ";"),
		Subject:     infos.Subject,
		Raw:         rawMail,
	}
	if opts.Group != nil {
		email.ImapGroupID = &opts.Group.ID
		email.ImapUidValidity = &opts.UidValidity
		email.ImapUid = &opts.Uid
	}
	return email
}

func (r *Receiver) reject(rawMail []byte, infos *mail.HeaderInfos, opts domain.ReceiveOptions, reason string, cause error) (*domain.IncomingEmail, error) {
	rejection := &domain.ProcessingError{Reason: reason, Err: cause}
	message := rejection.Error()

	email := r.incomingEmail(rawMail, infos, opts)
	email.Rejected = true
	email.Error = &message

	_, err := r.store.CreateIncomingEmail(email)
	if err != nil {
		return nil, fmt.Errorf("could not record rejected mail: %w", err)
	}

	r.l.WithFields(logrus.Fields{"messageid": infos.MessageID, "reason": reason}).Debug("Rejected mail")
	return nil, rejection
}
