// SPDX-License-Identifier: GPL-3.0-or-later
package imapprovider

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/CrawX/go-imap-groupsync/domain"
	"github.com/CrawX/go-imap-groupsync/log"
	"github.com/CrawX/go-imap-groupsync/mail"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap-compress"
	"github.com/emersion/go-imap-idle"
	"github.com/emersion/go-imap-move"
	"github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

const (
	ConnectTimeout          = 30 * time.Second
	LogoutTimeout           = 5 * time.Second
	DefaultIdlePollInterval = time.Minute
	SpecialMailboxTTL       = 30 * time.Minute

	TrashAttribute   = `\Trash`
	JunkAttribute    = `\Junk`
	ArchiveAttribute = `\Archive`
)

// connection is the part shared by every server family: session handling,
// searching, fetching and storing on the open mailbox.
type connection struct {
	group  *domain.Group
	config *configuration

	mu            sync.Mutex
	client        *client.Client
	uidplusClient *uidplus.Client
	moveClient    *move.Client

	mailDeleter deleter
	mailMover   mover

	openMailbox  string
	openWritable bool

	specialMailboxes   map[string]string
	specialMailboxesAt time.Time
	now                func() time.Time

	l *logrus.Entry
}

func newConnection(group *domain.Group, loggers *log.Loggers, configFuncs []ConfigFunc) (*connection, error) {
	config := &configuration{
		IdlePollInterval: DefaultIdlePollInterval,
	}
	for _, f := range configFuncs {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &connection{
		group:  group,
		config: config,
		now:    time.Now,
		l:      loggers.Logger(log.LOG_IMAP).WithFields(logrus.Fields{"group": group.Name, "server": group.ImapServer}),
	}, nil
}

func (c *connection) address() string {
	port := c.group.ImapPort
	if port == 0 {
		port = 143
		if c.group.ImapSSL {
			port = 993
		}
	}
	return net.JoinHostPort(c.group.ImapServer, strconv.Itoa(port))
}

func (c *connection) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dialer := &net.Dialer{Timeout: ConnectTimeout}
	var imapClient *client.Client
	var err error
	if c.group.ImapSSL {
		imapClient, err = client.DialWithDialerTLS(dialer, c.address(), &tls.Config{ServerName: c.group.ImapServer})
	} else {
		imapClient, err = client.DialWithDialer(dialer, c.address())
	}
	if err != nil {
		return fmt.Errorf("could not dial to imap: %w", err)
	}

	err = imapClient.Login(c.group.ImapUsername, c.group.ImapPassword)
	if err != nil {
		_ = imapClient.Terminate()
		return fmt.Errorf("could not login to imap: %w", err)
	}
	c.l.Debug("Logged in to server")

	if c.config.Compress {
		compressClient := compress.NewClient(imapClient)
		supported, err := compressClient.SupportCompress(compress.Deflate)
		if err != nil {
			_ = imapClient.Terminate()
			return fmt.Errorf("could not check for COMPRESS support: %w", err)
		}
		if supported {
			err = compressClient.Compress(compress.Deflate)
			if err != nil {
				_ = imapClient.Terminate()
				return fmt.Errorf("could not enable compression: %w", err)
			}
			c.l.Debug("Enabled COMPRESS=DEFLATE")
		} else {
			c.l.Info("COMPRESS=DEFLATE not supported on server, continuing uncompressed")
		}
	}

	uidPlusClient := uidplus.NewClient(imapClient)
	uidPlusSupported, err := uidPlusClient.SupportUidPlus()
	if err != nil {
		_ = imapClient.Terminate()
		return fmt.Errorf("could not check for UIDPLUS support: %w", err)
	}

	moveClient := move.NewClient(imapClient)
	moveSupported, err := moveClient.SupportMove()
	if err != nil {
		_ = imapClient.Terminate()
		return fmt.Errorf("could not check for MOVE support: %w", err)
	}

	c.mu.Lock()
	c.client = imapClient
	c.uidplusClient = uidPlusClient
	c.moveClient = moveClient
	c.openMailbox = ""
	c.openWritable = false
	c.mu.Unlock()

	if uidPlusSupported {
		c.l.Debug("UIDPLUS supported on server, using UID EXPUNGE")
		c.mailDeleter = &uidPlusDeleter{conn: c}
	} else {
		c.l.Debug("UIDPLUS not supported on server, falling back to flag&expunge")
		c.mailDeleter = &compatibilityDeleter{conn: c}
	}

	if moveSupported {
		c.l.Debug("MOVE supported on server")
		c.mailMover = &moveMover{conn: c}
	} else {
		c.l.Debug("MOVE not supported on server, falling back to copy&delete")
		c.mailMover = &compatibilityMover{conn: c}
	}

	return nil
}

// Disconnect logs out and drops the session. It is safe to call from another
// goroutine to break a blocking IDLE, and safe to call more than once.
func (c *connection) Disconnect() error {
	c.mu.Lock()
	imapClient := c.client
	c.client = nil
	c.mu.Unlock()

	if imapClient == nil {
		return nil
	}

	select {
	case <-imapClient.LoggedOut():
		return nil
	default:
	}

	done := make(chan error, 1)
	go func() {
		done <- imapClient.Logout()
	}()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, client.ErrAlreadyLoggedOut) {
			c.l.WithError(err).Debug("Logout failed, closing connection")
			_ = imapClient.Terminate()
		}
	case <-time.After(LogoutTimeout):
		c.l.Debug("Logout timed out, closing connection")
		_ = imapClient.Terminate()
	}

	c.l.Debug("Disconnected")
	return nil
}

func (c *connection) Disconnected() bool {
	c.mu.Lock()
	imapClient := c.client
	c.mu.Unlock()

	if imapClient == nil {
		return true
	}

	select {
	case <-imapClient.LoggedOut():
		return true
	default:
		return false
	}
}

// live returns the session for the next round-trip, waiting for the rate
// limiter when one is configured.
func (c *connection) live(ctx context.Context) (*client.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	imapClient := c.client
	c.mu.Unlock()

	if imapClient == nil {
		return nil, domain.ErrDisconnected
	}
	select {
	case <-imapClient.LoggedOut():
		return nil, domain.ErrDisconnected
	default:
	}

	if c.config.Limiter != nil {
		err := c.config.Limiter.Wait(ctx)
		if err != nil {
			return nil, err
		}
	}

	return imapClient, nil
}

func (c *connection) Can(capability string) bool {
	imapClient, err := c.live(context.Background())
	if err != nil {
		return false
	}

	supported, err := imapClient.Support(capability)
	if err != nil {
		c.l.WithError(err).Debug("Could not query capabilities")
		return false
	}
	return supported
}

func (c *connection) OpenMailbox(ctx context.Context, name string, write bool) (*domain.MailboxStatus, error) {
	if write && !c.config.WriteEnabled {
		return nil, domain.ErrWriteDisabled
	}

	imapClient, err := c.live(ctx)
	if err != nil {
		return nil, err
	}

	status, err := imapClient.Select(name, !write)
	if err != nil {
		return nil, fmt.Errorf("could not open mailbox %s: %w", name, err)
	}

	c.openMailbox = name
	c.openWritable = write

	c.l.WithFields(logrus.Fields{"mailbox": name, "write": write, "uidvalidity": status.UidValidity}).Debug("Opened mailbox")
	return &domain.MailboxStatus{
		Name:        name,
		UidValidity: status.UidValidity,
		UidNext:     status.UidNext,
		Messages:    status.Messages,
	}, nil
}

func (c *connection) Uids(ctx context.Context, from, to uint32) ([]uint32, error) {
	if from == 0 {
		from = 1
	}
	if to != 0 && to < from {
		return []uint32{}, nil
	}

	seqset := &imap.SeqSet{}
	seqset.AddRange(from, to)
	criteria := imap.NewSearchCriteria()
	criteria.Uid = seqset

	found, err := c.uidSearch(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("could not list uids: %w", err)
	}

	// "n:*" always matches the last message, even when its uid is below n
	uids := make([]uint32, 0, len(found))
	for _, uid := range found {
		if uid >= from && (to == 0 || uid <= to) {
			uids = append(uids, uid)
		}
	}
	sort.Slice(uids, func(i, j int) bool { return uids[i] < uids[j] })

	return uids, nil
}

func (c *connection) uidSearch(ctx context.Context, criteria *imap.SearchCriteria) ([]uint32, error) {
	imapClient, err := c.live(ctx)
	if err != nil {
		return nil, err
	}
	return imapClient.UidSearch(criteria)
}

func fetchItems(fields []domain.EmailField, labels imap.FetchItem) ([]imap.FetchItem, *imap.BodySectionName) {
	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchUid}
	for _, f := range fields {
		switch f {
		case domain.FieldFlags:
			items = append(items, imap.FetchFlags)
		case domain.FieldEnvelope:
			items = append(items, imap.FetchEnvelope)
		case domain.FieldBody:
			items = append(items, section.FetchItem())
		case domain.FieldLabels:
			if len(labels) > 0 {
				items = append(items, labels)
			}
		}
	}
	return items, section
}

func wants(fields []domain.EmailField, field domain.EmailField) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}

func (c *connection) fetch(ctx context.Context, uids []uint32, items []imap.FetchItem) ([]*imap.Message, error) {
	if len(uids) == 0 {
		return []*imap.Message{}, nil
	}

	imapClient, err := c.live(ctx)
	if err != nil {
		return nil, err
	}

	requested := make(map[uint32]bool, len(uids))
	seqset := &imap.SeqSet{}
	for _, uid := range uids {
		requested[uid] = true
		seqset.AddNum(uid)
	}

	out := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- imapClient.UidFetch(seqset, items, out)
	}()

	messages := []*imap.Message{}
	for msg := range out {
		if requested[msg.Uid] {
			messages = append(messages, msg)
		}
	}

	err = <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch messages: %w", err)
	}

	sort.Slice(messages, func(i, j int) bool { return messages[i].Uid < messages[j].Uid })
	return messages, nil
}

func toRemoteEmail(msg *imap.Message, fields []domain.EmailField, section *imap.BodySectionName) (*domain.RemoteEmail, error) {
	email := &domain.RemoteEmail{UID: msg.Uid}

	if wants(fields, domain.FieldFlags) {
		email.Flags = append([]string{}, msg.Flags...)
	}

	if wants(fields, domain.FieldEnvelope) && msg.Envelope != nil {
		email.MessageID = mail.CleanMessageID(msg.Envelope.MessageId)
		subject, err := mail.DecodeHeader(msg.Envelope.Subject)
		if err != nil {
			subject = msg.Envelope.Subject
		}
		email.Subject = subject
	}

	if wants(fields, domain.FieldBody) {
		r := msg.GetBody(section)
		if r == nil {
			return nil, fmt.Errorf("server returned no body for uid %d", msg.Uid)
		}
		body, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("could not read message body: %w", err)
		}
		email.Body = body
	}

	return email, nil
}

func (c *connection) emails(ctx context.Context, uids []uint32, fields []domain.EmailField, labels imap.FetchItem) ([]*imap.Message, []*domain.RemoteEmail, error) {
	items, section := fetchItems(fields, labels)
	messages, err := c.fetch(ctx, uids, items)
	if err != nil {
		return nil, nil, err
	}

	emails := make([]*domain.RemoteEmail, 0, len(messages))
	for _, msg := range messages {
		email, err := toRemoteEmail(msg, fields, section)
		if err != nil {
			return nil, nil, err
		}
		emails = append(emails, email)
	}
	return messages, emails, nil
}

func (c *connection) store(ctx context.Context, uids []uint32, item imap.StoreItem, values []string) error {
	if len(uids) == 0 || len(values) == 0 {
		return nil
	}
	if !c.openWritable {
		return fmt.Errorf("mailbox %s is opened read-only: %w", c.openMailbox, domain.ErrWriteDisabled)
	}

	imapClient, err := c.live(ctx)
	if err != nil {
		return err
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	value := make([]interface{}, 0, len(values))
	for _, v := range values {
		value = append(value, v)
	}

	err = imapClient.UidStore(seqset, item, value, nil)
	if err != nil {
		return fmt.Errorf("could not store %s: %w", item, err)
	}
	return nil
}

// diff returns what is in newValues but not in oldValues and the reverse.
func diff(oldValues, newValues []string) ([]string, []string) {
	in := func(values []string, v string) bool {
		for _, o := range values {
			if o == v {
				return true
			}
		}
		return false
	}

	added, removed := []string{}, []string{}
	for _, v := range newValues {
		if !in(oldValues, v) && !in(added, v) {
			added = append(added, v)
		}
	}
	for _, v := range oldValues {
		if !in(newValues, v) && !in(removed, v) {
			removed = append(removed, v)
		}
	}
	return added, removed
}

func withoutRecent(flags []string) []string {
	result := []string{}
	for _, f := range flags {
		if !strings.EqualFold(f, imap.RecentFlag) {
			result = append(result, f)
		}
	}
	return result
}

func (c *connection) storeFlags(ctx context.Context, uid uint32, oldFlags, newFlags []string) error {
	added, removed := diff(withoutRecent(oldFlags), withoutRecent(newFlags))

	err := c.store(ctx, []uint32{uid}, imap.FormatFlagsOp(imap.AddFlags, true), added)
	if err != nil {
		return err
	}
	return c.store(ctx, []uint32{uid}, imap.FormatFlagsOp(imap.RemoveFlags, true), removed)
}

func (c *connection) flagDeleted(ctx context.Context, uids []uint32) (*imap.SeqSet, error) {
	err := c.store(ctx, uids, imap.FormatFlagsOp(imap.AddFlags, true), []string{imap.DeletedFlag})
	if err != nil {
		return nil, err
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	return seqset, nil
}

func (c *connection) expunge(ctx context.Context, ch chan uint32) error {
	imapClient, err := c.live(ctx)
	if err != nil {
		close(ch)
		return err
	}
	return imapClient.Expunge(ch)
}

func (c *connection) uidExpunge(ctx context.Context, seqset *imap.SeqSet, ch chan uint32) error {
	_, err := c.live(ctx)
	if err != nil {
		close(ch)
		return err
	}
	return c.uidplusClient.UidExpunge(seqset, ch)
}

func (c *connection) uidCopy(ctx context.Context, seqset *imap.SeqSet, mailbox string) error {
	imapClient, err := c.live(ctx)
	if err != nil {
		return err
	}
	return imapClient.UidCopy(seqset, mailbox)
}

func (c *connection) uidMove(ctx context.Context, seqset *imap.SeqSet, mailbox string) error {
	_, err := c.live(ctx)
	if err != nil {
		return err
	}
	return c.moveClient.UidMove(seqset, mailbox)
}

func (c *connection) delete(ctx context.Context, uids []uint32) error {
	return c.mailDeleter.delete(ctx, uids)
}

func (c *connection) deleteReady(ctx context.Context) (error, error) {
	return c.mailDeleter.deleteReady(ctx)
}

// moveTo moves uids out of the open mailbox. Without a destination they are
// deleted.
func (c *connection) moveTo(ctx context.Context, uids []uint32, mailbox string) error {
	if len(mailbox) == 0 || mailbox == c.openMailbox {
		return c.mailDeleter.delete(ctx, uids)
	}
	return c.mailMover.move(ctx, uids, mailbox)
}

func (c *connection) list(ctx context.Context) ([]*imap.MailboxInfo, error) {
	imapClient, err := c.live(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan *imap.MailboxInfo, 10)
	done := make(chan error, 1)
	go func() {
		done <- imapClient.List("", "*", out)
	}()

	mailboxes := []*imap.MailboxInfo{}
	for m := range out {
		mailboxes = append(mailboxes, m)
	}

	err = <-done
	if err != nil {
		return nil, fmt.Errorf("could not list mailboxes: %w", err)
	}
	return mailboxes, nil
}

// specialMailbox finds the mailbox carrying a SPECIAL-USE attribute, an
// empty name means there is none. The listing is cached.
func (c *connection) specialMailbox(ctx context.Context, attribute string) (string, error) {
	if c.specialMailboxes == nil || c.now().Sub(c.specialMailboxesAt) > SpecialMailboxTTL {
		mailboxes, err := c.list(ctx)
		if err != nil {
			return "", err
		}

		special := map[string]string{}
		for _, m := range mailboxes {
			for _, a := range m.Attributes {
				key := strings.ToLower(a)
				if _, ok := special[key]; !ok {
					special[key] = m.Name
				}
			}
		}
		c.specialMailboxes = special
		c.specialMailboxesAt = c.now()
	}

	return c.specialMailboxes[strings.ToLower(attribute)], nil
}

func messageIDCriteria(messageIDs []string) *imap.SearchCriteria {
	var criteria *imap.SearchCriteria
	for _, id := range messageIDs {
		leaf := imap.NewSearchCriteria()
		leaf.Header.Add("Message-Id", mail.RFCMessageID(id))
		if criteria == nil {
			criteria = leaf
			continue
		}

		or := imap.NewSearchCriteria()
		or.Or = [][2]*imap.SearchCriteria{{criteria, leaf}}
		criteria = or
	}
	return criteria
}

// findByMessageIDs searches another mailbox and reopens the previously open
// one afterwards, also when the search failed.
func (c *connection) findByMessageIDs(ctx context.Context, mailbox string, messageIDs []string) (*domain.TrashedMailResponse, error) {
	if len(mailbox) == 0 || len(messageIDs) == 0 {
		return &domain.TrashedMailResponse{Emails: []domain.BasicMail{}}, nil
	}

	previous, previousWritable := c.openMailbox, c.openWritable
	response, err := c.searchMailbox(ctx, mailbox, messageIDs)
	if len(previous) > 0 && previous != mailbox {
		_, reopenErr := c.OpenMailbox(ctx, previous, previousWritable)
		if reopenErr != nil && err == nil {
			err = fmt.Errorf("could not reopen mailbox %s: %w", previous, reopenErr)
		}
	}
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *connection) searchMailbox(ctx context.Context, mailbox string, messageIDs []string) (*domain.TrashedMailResponse, error) {
	status, err := c.OpenMailbox(ctx, mailbox, false)
	if err != nil {
		return nil, err
	}

	uids, err := c.uidSearch(ctx, messageIDCriteria(messageIDs))
	if err != nil {
		return nil, fmt.Errorf("could not search %s: %w", mailbox, err)
	}

	fields := []domain.EmailField{domain.FieldUID, domain.FieldEnvelope}
	_, emails, err := c.emails(ctx, uids, fields, "")
	if err != nil {
		return nil, err
	}

	response := &domain.TrashedMailResponse{
		UidValidity: status.UidValidity,
		Emails:      make([]domain.BasicMail, 0, len(emails)),
	}
	for _, e := range emails {
		response.Emails = append(response.Emails, domain.BasicMail{MessageID: e.MessageID, UID: e.UID})
	}

	c.l.WithFields(logrus.Fields{"mailbox": mailbox, "searched": len(messageIDs), "found": len(response.Emails)}).Debug("Searched mailbox by message id")
	return response, nil
}

// awaitIdleEnd waits for the idle command to finish. Updates keep coming in
// until the server confirms DONE and are dropped, the client's reader would
// block on a full channel otherwise.
func awaitIdleEnd(updates <-chan client.Update, done <-chan error) error {
	for {
		select {
		case err := <-done:
			return err
		case <-updates:
		}
	}
}

// WaitForNewMail idles until the server reports a mailbox change, the
// timeout passes or ctx is done. Servers without IDLE are polled.
func (c *connection) WaitForNewMail(ctx context.Context, timeout time.Duration) error {
	imapClient, err := c.live(ctx)
	if err != nil {
		return err
	}

	updates := make(chan client.Update, 10)
	imapClient.Updates = updates
	defer func() {
		imapClient.Updates = nil
	}()

	idleClient := idle.NewClient(imapClient)
	stop := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- idleClient.IdleWithFallback(stop, c.config.IdlePollInterval)
	}()

	stopIdle := func() error {
		close(stop)
		return awaitIdleEnd(updates, done)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = stopIdle()
			return ctx.Err()
		case <-timer.C:
			return stopIdle()
		case err := <-done:
			if err != nil {
				return fmt.Errorf("idle ended: %w", err)
			}
			return nil
		case update := <-updates:
			if u, ok := update.(*client.MailboxUpdate); ok && u.Mailbox != nil {
				c.l.WithField("messages", u.Mailbox.Messages).Debug("Mailbox changed while idling")
				return stopIdle()
			}
		}
	}
}
