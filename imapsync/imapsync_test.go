// SPDX-License-Identifier: GPL-3.0-or-later
package imapsync

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/CrawX/go-imap-groupsync/domain"
	"github.com/CrawX/go-imap-groupsync/domain/mocks"
	"github.com/CrawX/go-imap-groupsync/log"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	groupID  = int64(1)
	validity = uint32(100)
)

type testSyncer struct {
	syncer   *Syncer
	provider *mocks.MockProvider
	store    *mocks.MockStore
	receiver *mocks.MockReceiver
	topics   *mocks.MockTopicService
	hook     *test.Hook
}

func testGroup(lastUid uint32) *domain.Group {
	return &domain.Group{
		ID:              groupID,
		Name:            "support",
		EmailUsername:   "support@example.com",
		ImapServer:      "imap.example.com",
		ImapUsername:    "support@example.com",
		ImapPassword:    "secret",
		ImapMailboxName: "INBOX",
		ImapEnabled:     true,
		ImapUidValidity: validity,
		ImapLastUid:     lastUid,
	}
}

func newTestSyncer(t *testing.T, group *domain.Group, configFuncs ...ConfigFunc) *testSyncer {
	ctrl := gomock.NewController(t)

	loggers := log.NullLoggers()
	loggers.SetLevel("debug")

	ts := &testSyncer{
		provider: mocks.NewMockProvider(ctrl),
		store:    mocks.NewMockStore(ctrl),
		receiver: mocks.NewMockReceiver(ctrl),
		topics:   mocks.NewMockTopicService(ctrl),
		hook:     test.NewLocal(loggers.Logger(log.LOG_SYNC)),
	}

	configFuncs = append([]ConfigFunc{RandSource(rand.NewSource(1))}, configFuncs...)
	syncer, err := NewSyncer(group, ts.provider, ts.store, ts.receiver, ts.topics, loggers, configFuncs...)
	require.NoError(t, err)
	ts.syncer = syncer

	return ts
}

func (ts *testSyncer) expectOpen(uidValidity uint32) {
	ts.provider.EXPECT().
		OpenMailbox(gomock.Any(), "INBOX", false).
		Return(&domain.MailboxStatus{Name: "INBOX", UidValidity: uidValidity}, nil)
}

func (ts *testSyncer) expectCounts(old, new int) {
	ts.store.EXPECT().UpdateGroupCounts(groupID, old, new).Return(nil)
	ts.store.EXPECT().SetGroupLastError(groupID, gomock.Nil()).Return(nil)
}

func (ts *testSyncer) warnings(message string) int {
	count := 0
	for _, e := range ts.hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == message {
			count++
		}
	}
	return count
}

func uidRange(from, to uint32) []uint32 {
	uids := []uint32{}
	for uid := from; uid <= to; uid++ {
		uids = append(uids, uid)
	}
	return uids
}

func intp(i int) *int {
	return &i
}

func i64p(i int64) *int64 {
	return &i
}

func u32p(i uint32) *uint32 {
	return &i
}

func remoteMails(uids []uint32) []*domain.RemoteEmail {
	emails := []*domain.RemoteEmail{}
	for i := len(uids) - 1; i >= 0; i-- {
		emails = append(emails, &domain.RemoteEmail{UID: uids[i], Body: []byte{byte(uids[i])}})
	}
	return emails
}

func TestNewSyncer(t *testing.T) {
	tests := []struct {
		name string
		cfgs []ConfigFunc
		err  string
	}{
		{"ok", []ConfigFunc{EnableIdle(), EnableWrite(), EnableTagging(), ImportLimit(-1), OldEmailsLimit(-1), NewEmailsLimit(0)}, ""},
		{"polling period", []ConfigFunc{PollingPeriod(0)}, "error applying configuration: PollingPeriod must be positive"},
		{"import limit", []ConfigFunc{ImportLimit(-2)}, "error applying configuration: ImportLimit cannot be below -1"},
		{"old limit", []ConfigFunc{OldEmailsLimit(-2)}, "error applying configuration: OldEmailsLimit cannot be below -1"},
		{"new limit", []ConfigFunc{NewEmailsLimit(-1)}, "error applying configuration: NewEmailsLimit cannot be negative"},
		{"rand", []ConfigFunc{RandSource(nil)}, "error applying configuration: RandSource cannot be nil"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			syncer, err := NewSyncer(testGroup(0), nil, nil, nil, nil, log.NullLoggers(), tc.cfgs...)
			if len(tc.err) == 0 {
				assert.NotNil(t, syncer)
				assert.NoError(t, err)
			} else {
				assert.Nil(t, syncer)
				assert.EqualError(t, err, tc.err)
			}
		})
	}
}

func TestSyncer_CanIdle(t *testing.T) {
	group := testGroup(0)
	ts := newTestSyncer(t, group, EnableIdle())

	assert.False(t, ts.syncer.CanIdle())

	group.ImapIdleEnabled = true
	ts.provider.EXPECT().Can(domain.CapabilityIdle).Return(false)
	assert.False(t, ts.syncer.CanIdle())

	ts.provider.EXPECT().Can(domain.CapabilityIdle).Return(true)
	assert.True(t, ts.syncer.CanIdle())

	ts = newTestSyncer(t, group)
	assert.False(t, ts.syncer.CanIdle())
}

// Validity matches, high-water mark 50, UIDs 1-60 on the server.
func TestProcess_OldAndNewUids(t *testing.T) {
	group := testGroup(50)
	ts := newTestSyncer(t, group)
	ctx := context.Background()

	ts.expectOpen(validity)
	ts.provider.EXPECT().Uids(gomock.Any(), uint32(1), uint32(50)).Return(uidRange(1, 50), nil)
	ts.provider.EXPECT().Uids(gomock.Any(), uint32(51), uint32(0)).Return(uidRange(51, 60), nil)
	ts.expectCounts(50, 10)

	var sampled []uint32
	ts.provider.EXPECT().
		Emails(gomock.Any(), gomock.Any(), oldFields).
		DoAndReturn(func(_ context.Context, uids []uint32, _ []domain.EmailField) ([]*domain.RemoteEmail, error) {
			sampled = uids
			return []*domain.RemoteEmail{}, nil
		})
	ts.store.EXPECT().LinkedIncomingEmails(groupID, validity).Return(nil, nil)

	ts.provider.EXPECT().Emails(gomock.Any(), uidRange(51, 60), newFields).Return(remoteMails(uidRange(51, 60)), nil)

	received := []uint32{}
	ts.receiver.EXPECT().
		Receive(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(10).
		DoAndReturn(func(_ context.Context, raw []byte, opts domain.ReceiveOptions) (*domain.IncomingEmail, error) {
			assert.Equal(t, []byte{byte(opts.Uid)}, raw)
			assert.Equal(t, validity, opts.UidValidity)
			assert.Equal(t, group, opts.Group)
			assert.True(t, opts.ImportMode)
			received = append(received, opts.Uid)
			return &domain.IncomingEmail{}, nil
		})
	for i, uid := range uidRange(51, 60) {
		ts.store.EXPECT().UpdateGroupImapState(groupID, validity, uid, 50+i+1, 10-i-1).Return(nil)
	}

	result, err := ts.syncer.Process(ctx, ProcessOptions{ImportLimit: intp(5), OldEmailsLimit: intp(5)})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Remaining)

	require.Len(t, sampled, 5)
	for i, uid := range sampled {
		assert.True(t, uid >= 1 && uid <= 50)
		if i > 0 {
			assert.True(t, sampled[i-1] < uid)
		}
	}
	assert.Equal(t, uidRange(51, 60), received)
	assert.Equal(t, uint32(60), group.ImapLastUid)
	assert.Equal(t, 60, group.ImapOldEmails)
	assert.Equal(t, 0, group.ImapNewEmails)
}

// The server reports validity 101 where 100 was stored.
func TestProcess_UidValidityChanged(t *testing.T) {
	group := testGroup(50)
	ts := newTestSyncer(t, group)
	ctx := context.Background()

	ts.expectOpen(101)
	ts.store.EXPECT().UpdateGroupImapState(groupID, uint32(101), uint32(0), 0, 0).Return(nil)
	ts.provider.EXPECT().Uids(gomock.Any(), uint32(1), uint32(0)).Return(uidRange(1, 3), nil)
	ts.expectCounts(0, 3)
	ts.store.EXPECT().LinkedIncomingEmails(groupID, uint32(101)).Return(nil, nil)

	ts.provider.EXPECT().Emails(gomock.Any(), uidRange(1, 3), newFields).Return(remoteMails(uidRange(1, 3)), nil)
	ts.receiver.EXPECT().
		Receive(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(3).
		DoAndReturn(func(_ context.Context, _ []byte, opts domain.ReceiveOptions) (*domain.IncomingEmail, error) {
			assert.Equal(t, uint32(101), opts.UidValidity)
			// already imported before the reset, the receiver hands back the old record
			return &domain.IncomingEmail{ID: int64(opts.Uid)}, nil
		})
	for i, uid := range uidRange(1, 3) {
		ts.store.EXPECT().UpdateGroupImapState(groupID, uint32(101), uid, i+1, 3-i-1).Return(nil)
	}

	result, err := ts.syncer.Process(ctx, ProcessOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Remaining)
	assert.Equal(t, uint32(101), group.ImapUidValidity)
	assert.Equal(t, uint32(3), group.ImapLastUid)
	assert.Equal(t, 1, ts.warnings("UID validity changed, resyncing mailbox from the start"))
}

// Five new UIDs, the third is rejected by the receiver.
func TestProcess_ProcessingErrorSkipsMail(t *testing.T) {
	group := testGroup(0)
	ts := newTestSyncer(t, group)

	ts.expectOpen(validity)
	ts.provider.EXPECT().Uids(gomock.Any(), uint32(1), uint32(0)).Return(uidRange(1, 5), nil)
	ts.expectCounts(0, 5)
	ts.store.EXPECT().LinkedIncomingEmails(groupID, validity).Return(nil, nil)
	ts.provider.EXPECT().Emails(gomock.Any(), uidRange(1, 5), newFields).Return(remoteMails(uidRange(1, 5)), nil)

	received := []uint32{}
	ts.receiver.EXPECT().
		Receive(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(5).
		DoAndReturn(func(_ context.Context, _ []byte, opts domain.ReceiveOptions) (*domain.IncomingEmail, error) {
			if opts.Uid == 3 {
				return nil, &domain.ProcessingError{Reason: domain.ReasonUnparsable, Err: errors.New("broken mime")}
			}
			received = append(received, opts.Uid)
			return &domain.IncomingEmail{}, nil
		})
	for i, uid := range uidRange(1, 5) {
		ts.store.EXPECT().UpdateGroupImapState(groupID, validity, uid, i+1, 5-i-1).Return(nil)
	}

	_, err := ts.syncer.Process(context.Background(), ProcessOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 4, 5}, received)
	assert.Equal(t, uint32(5), group.ImapLastUid)
	assert.Equal(t, 1, ts.warnings("Could not process mail, skipping"))
}

func TestProcess_ReceiveFailureAborts(t *testing.T) {
	group := testGroup(0)
	ts := newTestSyncer(t, group)

	ts.expectOpen(validity)
	ts.provider.EXPECT().Uids(gomock.Any(), uint32(1), uint32(0)).Return(uidRange(1, 3), nil)
	ts.expectCounts(0, 3)
	ts.store.EXPECT().LinkedIncomingEmails(groupID, validity).Return(nil, nil)
	ts.provider.EXPECT().Emails(gomock.Any(), uidRange(1, 3), newFields).Return(remoteMails(uidRange(1, 3)), nil)

	gomock.InOrder(
		ts.receiver.EXPECT().Receive(gomock.Any(), []byte{1}, gomock.Any()).Return(&domain.IncomingEmail{}, nil),
		ts.store.EXPECT().UpdateGroupImapState(groupID, validity, uint32(1), 1, 2).Return(nil),
		ts.receiver.EXPECT().Receive(gomock.Any(), []byte{2}, gomock.Any()).Return(nil, errors.New("database is locked")),
	)

	_, err := ts.syncer.Process(context.Background(), ProcessOptions{})
	assert.ErrorContains(t, err, "could not receive uid 2: database is locked")
	assert.Equal(t, uint32(1), group.ImapLastUid)
}

func TestProcess_NewEmailsLimit(t *testing.T) {
	group := testGroup(0)
	ts := newTestSyncer(t, group, NewEmailsLimit(2), ImportLimit(-1))

	ts.expectOpen(validity)
	ts.provider.EXPECT().Uids(gomock.Any(), uint32(1), uint32(0)).Return(uidRange(1, 5), nil)
	ts.expectCounts(0, 5)
	ts.store.EXPECT().LinkedIncomingEmails(groupID, validity).Return(nil, nil)
	ts.provider.EXPECT().Emails(gomock.Any(), []uint32{1, 2}, newFields).Return(remoteMails([]uint32{1, 2}), nil)
	ts.receiver.EXPECT().
		Receive(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, _ []byte, opts domain.ReceiveOptions) (*domain.IncomingEmail, error) {
			assert.False(t, opts.ImportMode)
			return &domain.IncomingEmail{}, nil
		})
	ts.store.EXPECT().UpdateGroupImapState(groupID, validity, uint32(1), 1, 4).Return(nil)
	ts.store.EXPECT().UpdateGroupImapState(groupID, validity, uint32(2), 2, 3).Return(nil)

	result, err := ts.syncer.Process(context.Background(), ProcessOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Remaining)
}

func TestProcess_Idle(t *testing.T) {
	group := testGroup(0)
	group.ImapIdleEnabled = true
	ts := newTestSyncer(t, group, EnableIdle(), PollingPeriod(time.Minute))

	ts.expectOpen(validity)
	ts.provider.EXPECT().Can(domain.CapabilityIdle).Return(true)
	ts.provider.EXPECT().WaitForNewMail(gomock.Any(), time.Minute).Return(context.Canceled)

	_, err := ts.syncer.Process(context.Background(), ProcessOptions{Idle: true})
	assert.True(t, errors.Is(err, context.Canceled))

	// without server support the pass polls
	ts.expectOpen(validity)
	ts.provider.EXPECT().Can(domain.CapabilityIdle).Return(false)
	ts.provider.EXPECT().Uids(gomock.Any(), uint32(1), uint32(0)).Return([]uint32{}, nil)
	ts.expectCounts(0, 0)
	ts.store.EXPECT().LinkedIncomingEmails(groupID, validity).Return(nil, nil)

	result, err := ts.syncer.Process(context.Background(), ProcessOptions{Idle: true})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Remaining)
	assert.Equal(t, 1, ts.warnings("IMAP IDLE requested but not available for this group, polling instead"))
}

func TestProcess_OpenFails(t *testing.T) {
	ts := newTestSyncer(t, testGroup(0))

	ts.provider.EXPECT().OpenMailbox(gomock.Any(), "INBOX", false).Return(nil, domain.ErrDisconnected)

	_, err := ts.syncer.Process(context.Background(), ProcessOptions{})
	assert.True(t, errors.Is(err, domain.ErrDisconnected))
}

func TestPartition_Disjoint(t *testing.T) {
	ts := newTestSyncer(t, testGroup(50))

	// some servers report the last known uid for 51:* as well
	ts.provider.EXPECT().Uids(gomock.Any(), uint32(1), uint32(50)).Return([]uint32{48, 49, 50}, nil)
	ts.provider.EXPECT().Uids(gomock.Any(), uint32(51), uint32(0)).Return([]uint32{50, 51, 52}, nil)

	oldUids, newUids, err := ts.syncer.partition(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, []uint32{48, 49, 50}, oldUids)
	assert.Equal(t, []uint32{51, 52}, newUids)
}

func TestFetch_EmptyDoesNotFetch(t *testing.T) {
	ts := newTestSyncer(t, testGroup(0))

	emails, err := ts.syncer.fetch(context.Background(), []uint32{}, newFields)
	require.NoError(t, err)
	assert.Empty(t, emails)

	require.NoError(t, ts.syncer.processNewUids(context.Background(), validity, nil, false, 0, 0))
}

func TestFetch_Batches(t *testing.T) {
	ts := newTestSyncer(t, testGroup(0))
	uids := uidRange(1, BatchSize+3)

	ts.provider.EXPECT().Emails(gomock.Any(), uids[:BatchSize], oldFields).Return(remoteMails(uids[:BatchSize]), nil)
	ts.provider.EXPECT().Emails(gomock.Any(), uids[BatchSize:], oldFields).Return(remoteMails(uids[BatchSize:]), nil)

	emails, err := ts.syncer.fetch(context.Background(), uids, oldFields)
	require.NoError(t, err)
	require.Len(t, emails, len(uids))
	for i, e := range emails {
		assert.Equal(t, uids[i], e.UID)
	}
}

func linkedRecord(id int64, uid uint32, messageID string) *domain.IncomingEmail {
	return &domain.IncomingEmail{
		ID:              id,
		MessageID:       messageID,
		TopicID:         i64p(id * 10),
		PostID:          i64p(id * 100),
		ImapGroupID:     i64p(groupID),
		ImapUidValidity: u32p(validity),
		ImapUid:         u32p(uid),
	}
}

// UID 42 is gone from the mailbox and sits in the trash as UID 999.
func TestHandleMissingUids_Trashed(t *testing.T) {
	tests := []struct {
		name       string
		postAlive  bool
		expectKill bool
	}{
		{"live post is destroyed", true, true},
		{"deleted post stays deleted", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestSyncer(t, testGroup(50))
			onServer := uidSet(subtractUids(uidRange(1, 50), []uint32{42}))

			gone := linkedRecord(7, 42, "gone@example.org")
			ts.store.EXPECT().LinkedIncomingEmails(groupID, validity).Return([]*domain.IncomingEmail{linkedRecord(6, 41, "here@example.org"), gone}, nil)
			ts.provider.EXPECT().FindTrashedByMessageIDs(gomock.Any(), []string{"gone@example.org"}).Return(&domain.TrashedMailResponse{
				UidValidity: 55,
				Emails:      []domain.BasicMail{{MessageID: "gone@example.org", UID: 999}},
			}, nil)
			ts.store.EXPECT().LinkIncomingEmail(int64(7), groupID, uint32(55), uint32(999)).Return(nil)
			ts.store.EXPECT().MarkIncomingMissing([]int64{7}).Return(nil)

			post := &domain.Post{ID: 700, TopicID: 70, PostNumber: 1}
			if !tc.postAlive {
				now := time.Now()
				post.DeletedAt = &now
			}
			ts.store.EXPECT().GetPost(int64(700)).Return(post, nil)
			if tc.expectKill {
				ts.topics.EXPECT().DestroyPost(gomock.Any(), gomock.Any(), int64(700), domain.TopicOptions{SkipImapSync: true}).Return(nil)
			}

			err := ts.syncer.handleMissingUids(context.Background(), validity, onServer)
			require.NoError(t, err)
		})
	}
}

func TestHandleMissingUids_SpamAndMissing(t *testing.T) {
	ts := newTestSyncer(t, testGroup(50))

	spam := linkedRecord(3, 10, "spam@example.org")
	spam.PostID = nil
	lost := linkedRecord(4, 11, "lost@example.org")
	ts.store.EXPECT().LinkedIncomingEmails(groupID, validity).Return([]*domain.IncomingEmail{spam, lost}, nil)

	ts.provider.EXPECT().FindTrashedByMessageIDs(gomock.Any(), []string{"spam@example.org", "lost@example.org"}).Return(&domain.TrashedMailResponse{Emails: []domain.BasicMail{}}, nil)
	ts.provider.EXPECT().FindSpamByMessageIDs(gomock.Any(), []string{"lost@example.org", "spam@example.org"}).Return(&domain.TrashedMailResponse{
		UidValidity: 9,
		Emails:      []domain.BasicMail{{MessageID: "spam@example.org", UID: 5}},
	}, nil)
	ts.store.EXPECT().LinkIncomingEmail(int64(3), groupID, uint32(9), uint32(5)).Return(nil)
	ts.store.EXPECT().MarkIncomingMissing([]int64{3}).Return(nil)
	ts.store.EXPECT().MarkIncomingMissing([]int64{4}).Return(nil)

	err := ts.syncer.handleMissingUids(context.Background(), validity, uidSet(uidRange(1, 9)))
	require.NoError(t, err)
}

func TestHandleMissingUids_NothingMissing(t *testing.T) {
	ts := newTestSyncer(t, testGroup(50))

	ts.store.EXPECT().LinkedIncomingEmails(groupID, validity).Return([]*domain.IncomingEmail{linkedRecord(1, 5, "a@example.org")}, nil)

	err := ts.syncer.handleMissingUids(context.Background(), validity, uidSet([]uint32{5}))
	require.NoError(t, err)
}

// An unlinked record with the same message id gets the uid instead of a
// second post.
func TestProcessOldUids_BackfillsLinkage(t *testing.T) {
	group := testGroup(10)
	ts := newTestSyncer(t, group, EnableTagging())
	ctx := context.Background()

	remote := &domain.RemoteEmail{UID: 10, MessageID: "known@example.org", Flags: []string{`\Seen`}, Labels: []string{domain.InboxLabel}}
	ts.provider.EXPECT().Emails(gomock.Any(), []uint32{10}, oldFields).Return([]*domain.RemoteEmail{remote}, nil)

	unlinked := &domain.IncomingEmail{
		ID:          3,
		MessageID:   "known@example.org",
		ToAddresses: "support+billing@example.com",
		CcAddresses: "someone@example.org",
		TopicID:     i64p(30),
		PostID:      i64p(300),
	}
	ts.store.EXPECT().FindIncomingByUID(groupID, validity, uint32(10)).Return(nil, nil)
	ts.store.EXPECT().FindUnlinkedIncomingByMessageID("known@example.org", "support@example.com").Return(unlinked, nil)
	ts.store.EXPECT().LinkIncomingEmail(int64(3), groupID, validity, uint32(10)).Return(nil)

	ts.store.EXPECT().FirstPost(int64(30)).Return(&domain.Post{ID: 300, TopicID: 30, PostNumber: 1}, nil)
	ts.store.EXPECT().GetTopic(int64(30)).Return(&domain.Topic{ID: 30}, nil)
	ts.provider.EXPECT().ToTag("INBOX").Return("")
	ts.provider.EXPECT().ToTag(`\Seen`).Return("seen")
	ts.provider.EXPECT().ToTag(domain.InboxLabel).Return("")
	ts.topics.EXPECT().TagTopicByNames(gomock.Any(), gomock.Any(), int64(30), []string{"plus:billing", "seen"}, domain.TopicOptions{SkipImapSync: true}).Return(nil)

	ts.store.EXPECT().LinkedIncomingEmails(groupID, validity).Return(nil, nil)

	err := ts.syncer.processOldUids(ctx, validity, []uint32{10}, uidSet([]uint32{10}))
	require.NoError(t, err)
}

func TestUpdateTopic(t *testing.T) {
	ctx := context.Background()
	archived := &domain.Topic{ID: 30, ArchivedGroups: []int64{groupID}}

	t.Run("leaving the inbox archives", func(t *testing.T) {
		ts := newTestSyncer(t, testGroup(10))
		ts.store.EXPECT().FirstPost(int64(30)).Return(&domain.Post{ID: 300}, nil)
		ts.store.EXPECT().GetTopic(int64(30)).Return(&domain.Topic{ID: 30}, nil)
		ts.topics.EXPECT().Archive(gomock.Any(), groupID, int64(30), domain.TopicOptions{SkipImapSync: true}).Return(nil)

		err := ts.syncer.updateTopic(ctx, &domain.RemoteEmail{UID: 1, Labels: []string{"billing"}}, linkedRecord(3, 1, "a@example.org"))
		require.NoError(t, err)
	})

	t.Run("back in the inbox", func(t *testing.T) {
		ts := newTestSyncer(t, testGroup(10))
		ts.store.EXPECT().FirstPost(int64(30)).Return(&domain.Post{ID: 300}, nil)
		ts.store.EXPECT().GetTopic(int64(30)).Return(archived, nil)
		ts.topics.EXPECT().MoveToInbox(gomock.Any(), groupID, int64(30), domain.TopicOptions{SkipImapSync: true}).Return(nil)

		err := ts.syncer.updateTopic(ctx, &domain.RemoteEmail{UID: 1, Labels: []string{"INBOX"}}, linkedRecord(3, 1, "a@example.org"))
		require.NoError(t, err)
	})

	t.Run("pending local changes win", func(t *testing.T) {
		ts := newTestSyncer(t, testGroup(10))
		dirty := linkedRecord(3, 1, "a@example.org")
		dirty.ImapSync = true

		err := ts.syncer.updateTopic(ctx, &domain.RemoteEmail{UID: 1}, dirty)
		require.NoError(t, err)
	})

	t.Run("reply posts are skipped", func(t *testing.T) {
		ts := newTestSyncer(t, testGroup(10))
		ts.store.EXPECT().FirstPost(int64(30)).Return(&domain.Post{ID: 299}, nil)

		err := ts.syncer.updateTopic(ctx, &domain.RemoteEmail{UID: 1}, linkedRecord(3, 1, "a@example.org"))
		require.NoError(t, err)
	})
}

func dirtyRecord(id int64, uid uint32) *domain.IncomingEmail {
	r := linkedRecord(id, uid, "dirty@example.org")
	r.ImapSync = true
	return r
}

func TestSyncToServer(t *testing.T) {
	ctx := context.Background()
	pushed := &domain.RemoteEmail{UID: 5, Flags: []string{`\Seen`}, Labels: []string{domain.InboxLabel, "billing"}}

	t.Run("inbox", func(t *testing.T) {
		ts := newTestSyncer(t, testGroup(10))
		ts.store.EXPECT().DirtyIncomingEmails(groupID, validity).Return([]*domain.IncomingEmail{dirtyRecord(1, 5)}, nil)
		ts.provider.EXPECT().OpenMailbox(gomock.Any(), "INBOX", true).Return(&domain.MailboxStatus{UidValidity: validity}, nil)
		ts.store.EXPECT().FirstPost(int64(10)).Return(&domain.Post{ID: 100}, nil)
		ts.provider.EXPECT().Emails(gomock.Any(), []uint32{5}, pushFields).Return([]*domain.RemoteEmail{pushed}, nil)
		ts.store.EXPECT().GetTopic(int64(10)).Return(&domain.Topic{ID: 10}, nil)
		gomock.InOrder(
			ts.provider.EXPECT().Store(gomock.Any(), uint32(5), domain.AttributeFlags, pushed.Flags, pushed.Flags).Return(nil),
			ts.provider.EXPECT().Store(gomock.Any(), uint32(5), domain.AttributeLabels, pushed.Labels, []string{"billing", domain.InboxLabel}).Return(nil),
			ts.store.EXPECT().SetIncomingImapSync(int64(1), false).Return(nil),
		)

		require.NoError(t, ts.syncer.syncToServer(ctx, validity))
	})

	t.Run("archived with tagging", func(t *testing.T) {
		ts := newTestSyncer(t, testGroup(10), EnableTagging())
		ts.store.EXPECT().DirtyIncomingEmails(groupID, validity).Return([]*domain.IncomingEmail{dirtyRecord(1, 5)}, nil)
		ts.provider.EXPECT().OpenMailbox(gomock.Any(), "INBOX", true).Return(&domain.MailboxStatus{UidValidity: validity}, nil)
		ts.store.EXPECT().FirstPost(int64(10)).Return(&domain.Post{ID: 100}, nil)
		ts.provider.EXPECT().Emails(gomock.Any(), []uint32{5}, pushFields).Return([]*domain.RemoteEmail{pushed}, nil)
		ts.store.EXPECT().GetTopic(int64(10)).Return(&domain.Topic{ID: 10, Tags: []string{"starred", "urgent"}, ArchivedGroups: []int64{groupID}}, nil)
		ts.provider.EXPECT().TagToFlag("starred").Return(`\Flagged`)
		ts.provider.EXPECT().TagToFlag("urgent").Return("")
		ts.provider.EXPECT().TagToLabel("starred").Return(`\Starred`)
		ts.provider.EXPECT().TagToLabel("urgent").Return("urgent")
		gomock.InOrder(
			ts.provider.EXPECT().Store(gomock.Any(), uint32(5), domain.AttributeFlags, pushed.Flags, []string{`\Flagged`}).Return(nil),
			ts.provider.EXPECT().Store(gomock.Any(), uint32(5), domain.AttributeLabels, pushed.Labels, []string{`\Starred`, "urgent"}).Return(nil),
			ts.provider.EXPECT().Archive(gomock.Any(), uint32(5)).Return(nil),
			ts.store.EXPECT().SetIncomingImapSync(int64(1), false).Return(nil),
		)

		require.NoError(t, ts.syncer.syncToServer(ctx, validity))
	})

	t.Run("deleted topic is trashed", func(t *testing.T) {
		ts := newTestSyncer(t, testGroup(10))
		now := time.Now()
		ts.store.EXPECT().DirtyIncomingEmails(groupID, validity).Return([]*domain.IncomingEmail{dirtyRecord(1, 5)}, nil)
		ts.provider.EXPECT().OpenMailbox(gomock.Any(), "INBOX", true).Return(&domain.MailboxStatus{UidValidity: validity}, nil)
		ts.store.EXPECT().FirstPost(int64(10)).Return(&domain.Post{ID: 100}, nil)
		ts.provider.EXPECT().Emails(gomock.Any(), []uint32{5}, pushFields).Return([]*domain.RemoteEmail{pushed}, nil)
		ts.store.EXPECT().GetTopic(int64(10)).Return(&domain.Topic{ID: 10, DeletedAt: &now}, nil)
		ts.provider.EXPECT().Trash(gomock.Any(), uint32(5)).Return(nil)
		ts.store.EXPECT().SetIncomingImapSync(int64(1), false).Return(nil)

		require.NoError(t, ts.syncer.syncToServer(ctx, validity))
	})

	t.Run("gone from the mailbox", func(t *testing.T) {
		ts := newTestSyncer(t, testGroup(10))
		ts.store.EXPECT().DirtyIncomingEmails(groupID, validity).Return([]*domain.IncomingEmail{dirtyRecord(1, 5)}, nil)
		ts.provider.EXPECT().OpenMailbox(gomock.Any(), "INBOX", true).Return(&domain.MailboxStatus{UidValidity: validity}, nil)
		ts.store.EXPECT().FirstPost(int64(10)).Return(&domain.Post{ID: 100}, nil)
		ts.provider.EXPECT().Emails(gomock.Any(), []uint32{5}, pushFields).Return([]*domain.RemoteEmail{}, nil)
		ts.store.EXPECT().SetIncomingImapSync(int64(1), false).Return(nil)

		require.NoError(t, ts.syncer.syncToServer(ctx, validity))
	})

	t.Run("failed push keeps records dirty", func(t *testing.T) {
		ts := newTestSyncer(t, testGroup(10))
		ts.store.EXPECT().DirtyIncomingEmails(groupID, validity).Return([]*domain.IncomingEmail{dirtyRecord(1, 5), dirtyRecord(2, 6)}, nil)
		ts.provider.EXPECT().OpenMailbox(gomock.Any(), "INBOX", true).Return(&domain.MailboxStatus{UidValidity: validity}, nil)
		ts.store.EXPECT().FirstPost(int64(10)).Return(&domain.Post{ID: 100}, nil)
		ts.provider.EXPECT().Emails(gomock.Any(), []uint32{5}, pushFields).Return([]*domain.RemoteEmail{pushed}, nil)
		ts.store.EXPECT().GetTopic(int64(10)).Return(&domain.Topic{ID: 10}, nil)
		ts.provider.EXPECT().Store(gomock.Any(), uint32(5), domain.AttributeFlags, gomock.Any(), gomock.Any()).Return(domain.ErrDisconnected)

		err := ts.syncer.syncToServer(ctx, validity)
		assert.True(t, errors.Is(err, domain.ErrDisconnected))
		assert.ErrorContains(t, err, "could not push changes of uid 5")
	})

	t.Run("nothing dirty", func(t *testing.T) {
		ts := newTestSyncer(t, testGroup(10))
		ts.store.EXPECT().DirtyIncomingEmails(groupID, validity).Return(nil, nil)

		require.NoError(t, ts.syncer.syncToServer(ctx, validity))
	})
}

func TestProcess_PushNeedsGroupWrite(t *testing.T) {
	group := testGroup(0)
	group.ImapWriteEnabled = true
	ts := newTestSyncer(t, group, EnableWrite())

	ts.expectOpen(validity)
	ts.provider.EXPECT().Uids(gomock.Any(), uint32(1), uint32(0)).Return([]uint32{}, nil)
	ts.expectCounts(0, 0)
	ts.store.EXPECT().LinkedIncomingEmails(groupID, validity).Return(nil, nil)
	ts.store.EXPECT().DirtyIncomingEmails(groupID, validity).Return(nil, nil)

	_, err := ts.syncer.Process(context.Background(), ProcessOptions{})
	require.NoError(t, err)
}

func TestSyncer_Refresh(t *testing.T) {
	group := testGroup(5)
	ts := newTestSyncer(t, group, EnableWrite())
	ctx := context.Background()

	pass := func() {
		ts.expectOpen(validity)
		ts.provider.EXPECT().Uids(gomock.Any(), uint32(1), uint32(5)).Return(uidRange(1, 5), nil)
		ts.provider.EXPECT().Uids(gomock.Any(), uint32(6), uint32(0)).Return([]uint32{}, nil)
		ts.provider.EXPECT().Emails(gomock.Any(), gomock.Any(), oldFields).Return([]*domain.RemoteEmail{}, nil)
		ts.expectCounts(5, 0)
		ts.store.EXPECT().LinkedIncomingEmails(groupID, validity).Return(nil, nil)
	}

	pass()
	_, err := ts.syncer.Process(ctx, ProcessOptions{})
	require.NoError(t, err)

	// the stored copy lags behind the progress of the running syncer
	stored := *testGroup(0)
	stored.ImapUidValidity = 0
	stored.ImapWriteEnabled = true
	require.True(t, ts.syncer.Refresh(&stored))
	assert.True(t, group.ImapWriteEnabled)
	assert.Equal(t, uint32(5), group.ImapLastUid)
	assert.Equal(t, validity, group.ImapUidValidity)

	pass()
	ts.store.EXPECT().DirtyIncomingEmails(groupID, validity).Return(nil, nil)
	_, err = ts.syncer.Process(ctx, ProcessOptions{})
	require.NoError(t, err)

	moved := *testGroup(5)
	moved.ImapServer = "imap.example.org"
	moved.ImapWriteEnabled = false
	assert.False(t, ts.syncer.Refresh(&moved))
	assert.True(t, group.ImapWriteEnabled, "nothing is taken over from a group on another server")
	assert.Equal(t, "imap.example.com", group.ImapServer)
}

func TestSampleUids(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	uids := uidRange(1, 100)

	sample := sampleUids(r, uids, 10)
	require.Len(t, sample, 10)
	seen := map[uint32]bool{}
	for i, uid := range sample {
		assert.False(t, seen[uid])
		seen[uid] = true
		assert.True(t, uid >= 1 && uid <= 100)
		if i > 0 {
			assert.True(t, sample[i-1] < uid)
		}
	}
	assert.Equal(t, uidRange(1, 100), uids)

	assert.Equal(t, []uint32{1, 2, 3}, sampleUids(r, []uint32{3, 1, 2}, 10))
	assert.Empty(t, sampleUids(r, uids, 0))
}

func TestPartitionUids(t *testing.T) {
	assert.Equal(t, [][]uint32{{1, 2}, {3, 4}, {5}}, partitionUids(uidRange(1, 5), 2))
	assert.Equal(t, [][]uint32{{1, 2}}, partitionUids(uidRange(1, 2), 2))
}
