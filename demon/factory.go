// SPDX-License-Identifier: GPL-3.0-or-later
package demon

import (
	"context"
	"fmt"

	"github.com/CrawX/go-imap-groupsync/config"
	"github.com/CrawX/go-imap-groupsync/domain"
	"github.com/CrawX/go-imap-groupsync/imapprovider"
	"github.com/CrawX/go-imap-groupsync/imapsync"
	"github.com/CrawX/go-imap-groupsync/log"
	"github.com/CrawX/go-imap-groupsync/receiver"
	"github.com/CrawX/go-imap-groupsync/spamcheck"
	"github.com/CrawX/go-imap-groupsync/topics"
)

// NewSpamChecker returns the checker the site configured, nil when it has
// none.
func NewSpamChecker(ctx context.Context, site *config.Site, loggers *log.Loggers) (domain.SpamChecker, error) {
	switch {
	case len(site.SpamassassinHost) > 0:
		sa, err := spamcheck.NewSpamassassin(ctx, site.SpamassassinHost, loggers)
		if err != nil {
			return nil, err
		}
		return &spamcheck.Retrying{SpamChecker: sa}, nil
	case len(site.RspamdController) > 0:
		rs, err := spamcheck.NewRspamd(ctx, site.RspamdController, site.RspamdPassword, loggers)
		if err != nil {
			return nil, err
		}
		return &spamcheck.Retrying{SpamChecker: rs}, nil
	}
	return nil, nil
}

// NewSyncer wires a provider and a syncer for group as site configures them
// and connects to the server.
func NewSyncer(ctx context.Context, site *config.Site, store domain.Store, group *domain.Group, loggers *log.Loggers) (*imapsync.Syncer, error) {
	receiverConfig := []receiver.ConfigFunc{receiver.MaxEmailSizeKB(site.MaxEmailSizeKB)}
	checker, err := NewSpamChecker(ctx, site, loggers)
	if err != nil {
		return nil, fmt.Errorf("could not start spam checker: %w", err)
	}
	if checker != nil {
		receiverConfig = append(receiverConfig, receiver.WithSpamChecker(checker))
	}

	providerConfig := []imapprovider.ConfigFunc{imapprovider.RequestsPerSecond(site.RequestsPerSecond)}
	if site.EnableImapWrite {
		providerConfig = append(providerConfig, imapprovider.EnableWrite())
	}
	if site.Compress {
		providerConfig = append(providerConfig, imapprovider.EnableCompress())
	}

	provider, err := imapprovider.New(group, loggers, providerConfig...)
	if err != nil {
		return nil, err
	}

	syncConfig := []imapsync.ConfigFunc{
		imapsync.Site(site.Name),
		imapsync.PollingPeriod(site.PollingPeriod.Duration),
		imapsync.ImportLimit(site.BatchImportEmail),
		imapsync.OldEmailsLimit(site.PollingOldEmails),
		imapsync.NewEmailsLimit(site.PollingNewEmails),
	}
	if site.EnableImapIdle {
		syncConfig = append(syncConfig, imapsync.EnableIdle())
	}
	if site.EnableImapWrite {
		syncConfig = append(syncConfig, imapsync.EnableWrite())
	}
	if site.TaggingEnabled {
		syncConfig = append(syncConfig, imapsync.EnableTagging())
	}

	syncer, err := imapsync.NewSyncer(
		group,
		provider,
		store,
		receiver.NewReceiver(store, loggers, receiverConfig...),
		topics.NewService(store, loggers),
		loggers,
		syncConfig...,
	)
	if err != nil {
		return nil, err
	}

	err = provider.Connect(ctx)
	if err != nil {
		return nil, err
	}

	return syncer, nil
}

// DefaultSyncerFactory builds syncers with NewSyncer.
func DefaultSyncerFactory(loggers *log.Loggers) SyncerFactory {
	return func(ctx context.Context, site *config.Site, store domain.Store, group *domain.Group) (GroupSyncer, error) {
		syncer, err := NewSyncer(ctx, site, store, group, loggers)
		if err != nil {
			return nil, err
		}
		return syncer, nil
	}
}
