// SPDX-License-Identifier: GPL-3.0-or-later
package demon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/CrawX/go-imap-groupsync/config"
	"github.com/CrawX/go-imap-groupsync/domain"
	"github.com/CrawX/go-imap-groupsync/imapsync"
	"github.com/CrawX/go-imap-groupsync/log"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	HeartbeatKey = "email_sync"

	SyncLogRetention = 5 * 24 * time.Hour
	PruneInterval    = time.Hour

	// ParentGoneExitDelay is the grace period between noticing the parent is
	// gone and exiting hard.
	ParentGoneExitDelay = 10 * time.Second
	parentCheckInterval = time.Second
)

// GroupSyncer is the part of imapsync.Syncer a group goroutine drives.
type GroupSyncer interface {
	Process(ctx context.Context, opts imapsync.ProcessOptions) (*imapsync.ProcessResult, error)
	Refresh(group *domain.Group) bool
	CanIdle() bool
	PollingPeriod() time.Duration
	Disconnect() error
	Disconnected() bool
}

// SyncerFactory builds a connected syncer for one group.
type SyncerFactory func(ctx context.Context, site *config.Site, store domain.Store, group *domain.Group) (GroupSyncer, error)

type Site struct {
	Conf  *config.Site
	Store domain.Store
}

type groupKey struct {
	Site    string
	GroupID int64
}

type groupEntry struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	syncer GroupSyncer
}

func (e *groupEntry) setSyncer(s GroupSyncer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.syncer = s
}

func (e *groupEntry) getSyncer() GroupSyncer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.syncer
}

func (e *groupEntry) exited() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// EmailSync is the worker running inside a child process. It keeps one
// goroutine per configured group of every site.
type EmailSync struct {
	sites   []Site
	factory SyncerFactory

	reconcileInterval time.Duration
	heartbeatInterval time.Duration

	owner     string
	parentPid int

	parentAlive func(pid int) bool
	exit        func(code int)
	exitDelay   time.Duration
	now         func() time.Time

	mu     sync.Mutex
	groups map[groupKey]*groupEntry

	lastPrune time.Time

	l *logrus.Logger
}

func NewEmailSync(conf *config.Config, sites []Site, factory SyncerFactory, parentPid int, loggers *log.Loggers) *EmailSync {
	return &EmailSync{
		sites:             sites,
		factory:           factory,
		reconcileInterval: conf.ReconcileInterval.Duration,
		heartbeatInterval: conf.HeartbeatInterval.Duration,
		owner:             uuid.NewString(),
		parentPid:         parentPid,
		parentAlive:       processAlive,
		exit:              os.Exit,
		exitDelay:         ParentGoneExitDelay,
		now:               time.Now,
		groups:            map[groupKey]*groupEntry{},
		l:                 loggers.Logger(log.LOG_DEMON),
	}
}

// Run blocks until ctx is done or the parent process is gone. All group
// goroutines have returned when it does.
func (e *EmailSync) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if e.parentPid > 0 {
		go e.monitorParent(ctx, cancel)
	}

	err := e.acquireHeartbeat(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	defer e.releaseHeartbeat()

	e.l.WithField("owner", e.owner).Info("Email sync started")

	ticker := time.NewTicker(e.reconcileInterval)
	defer ticker.Stop()

	for {
		e.tick(ctx)

		select {
		case <-ctx.Done():
			e.l.Info("Email sync stopping")
			return e.killAll()
		case <-ticker.C:
		}
	}
}

func (e *EmailSync) tick(ctx context.Context) {
	_, err := e.claimHeartbeat()
	if err != nil {
		e.l.WithError(err).Warn("Could not refresh heartbeat")
	}

	err = e.reconcile(ctx)
	if err != nil {
		e.l.WithError(err).Error("Could not reconcile groups")
	}

	if e.now().Sub(e.lastPrune) >= PruneInterval {
		e.pruneSyncLogs()
		e.lastPrune = e.now()
	}
}

func (e *EmailSync) monitorParent(ctx context.Context, cancel context.CancelFunc) {
	ticker := time.NewTicker(parentCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if e.parentAlive(e.parentPid) {
			continue
		}

		e.l.WithField("parent", e.parentPid).Warn("Parent process is gone, stopping")
		cancel()
		time.Sleep(e.exitDelay)
		e.exit(1)
		return
	}
}

// claimHeartbeat claims on every site store, it succeeds when all of them
// accepted this worker.
func (e *EmailSync) claimHeartbeat() (bool, error) {
	claimed := true
	for _, s := range e.sites {
		ok, err := s.Store.ClaimHeartbeat(HeartbeatKey, e.owner, e.heartbeatInterval)
		if err != nil {
			return false, fmt.Errorf("could not claim heartbeat of site %s: %w", s.Conf.Name, err)
		}
		claimed = claimed && ok
	}
	return claimed, nil
}

func (e *EmailSync) acquireHeartbeat(ctx context.Context) error {
	wait := e.heartbeatInterval / 10
	if wait <= 0 {
		wait = time.Second
	}

	for {
		claimed, err := e.claimHeartbeat()
		if err != nil {
			e.l.WithError(err).Warn("Could not claim heartbeat")
		} else if claimed {
			return nil
		} else {
			e.l.Debug("Another worker holds the heartbeat, waiting")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (e *EmailSync) releaseHeartbeat() {
	for _, s := range e.sites {
		err := s.Store.ReleaseHeartbeat(HeartbeatKey, e.owner)
		if err != nil {
			e.l.WithError(err).WithField(log.FieldSite, s.Conf.Name).Warn("Could not release heartbeat")
		}
	}
}

func (e *EmailSync) pruneSyncLogs() {
	before := e.now().Add(-SyncLogRetention)
	for _, s := range e.sites {
		pruned, err := s.Store.PruneSyncLogs(before)
		if err != nil {
			e.l.WithError(err).WithField(log.FieldSite, s.Conf.Name).Warn("Could not prune sync logs")
			continue
		}
		if pruned > 0 {
			e.l.WithFields(logrus.Fields{log.FieldSite: s.Conf.Name, "pruned": pruned}).Info("Pruned sync logs")
		}
	}
}

type wantedGroup struct {
	site  Site
	group *domain.Group
}

// reconcile brings the registry in line with the configured groups. The
// registry lock is never held while stopping or starting goroutines.
func (e *EmailSync) reconcile(ctx context.Context) error {
	wanted := map[groupKey]wantedGroup{}
	unknown := map[string]bool{}
	var errs []error
	for _, s := range e.sites {
		if !s.Conf.EnableImap {
			continue
		}

		groups, err := s.Store.ImapGroups()
		if err != nil {
			errs = append(errs, fmt.Errorf("could not load groups of site %s: %w", s.Conf.Name, err))
			unknown[s.Conf.Name] = true
			continue
		}
		for _, g := range groups {
			if g.ImapConfigured() {
				wanted[groupKey{s.Conf.Name, g.ID}] = wantedGroup{s, g}
			}
		}
	}

	e.mu.Lock()
	drop := map[groupKey]*groupEntry{}
	for key, entry := range e.groups {
		_, ok := wanted[key]
		ok = ok || unknown[key.Site]
		syncer := entry.getSyncer()
		if !ok || entry.exited() || (syncer != nil && syncer.Disconnected()) {
			drop[key] = entry
			delete(e.groups, key)
		}
	}

	var spawn []groupKey
	for key := range wanted {
		if _, ok := e.groups[key]; !ok {
			spawn = append(spawn, key)
		}
	}
	sort.Slice(spawn, func(i, j int) bool {
		if spawn[i].Site != spawn[j].Site {
			return spawn[i].Site < spawn[j].Site
		}
		return spawn[i].GroupID < spawn[j].GroupID
	})

	started := make(map[groupKey]*groupEntry, len(spawn))
	for _, key := range spawn {
		entry := &groupEntry{done: make(chan struct{})}
		e.groups[key] = entry
		started[key] = entry
	}
	e.mu.Unlock()

	err := e.kill(drop)
	if err != nil {
		errs = append(errs, err)
	}

	for _, key := range spawn {
		w := wanted[key]
		e.start(ctx, w.site, w.group, started[key])
	}

	return errors.Join(errs...)
}

func (e *EmailSync) start(ctx context.Context, site Site, group *domain.Group, entry *groupEntry) {
	groupCtx, cancel := context.WithCancel(ctx)
	entry.cancel = cancel

	e.l.WithFields(logrus.Fields{log.FieldSite: site.Conf.Name, log.FieldGroupID: group.ID, "group": group.Name}).Info("Starting group sync")
	go func() {
		defer close(entry.done)
		e.syncGroup(groupCtx, site, group, entry)
	}()
}

func (e *EmailSync) kill(entries map[groupKey]*groupEntry) error {
	var eg errgroup.Group
	for key, entry := range entries {
		key, entry := key, entry
		eg.Go(func() error {
			e.l.WithFields(logrus.Fields{log.FieldSite: key.Site, log.FieldGroupID: key.GroupID}).Debug("Stopping group sync")
			if entry.cancel != nil {
				entry.cancel()
			}
			if s := entry.getSyncer(); s != nil && !s.Disconnected() {
				err := s.Disconnect()
				if err != nil {
					e.l.WithError(err).WithField(log.FieldGroupID, key.GroupID).Debug("Could not disconnect")
				}
			}
			<-entry.done
			return nil
		})
	}
	return eg.Wait()
}

func (e *EmailSync) killAll() error {
	e.mu.Lock()
	all := e.groups
	e.groups = map[groupKey]*groupEntry{}
	e.mu.Unlock()

	return e.kill(all)
}

// Running lists the groups that have a live goroutine.
func (e *EmailSync) Running() map[string][]int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	running := map[string][]int64{}
	for key, entry := range e.groups {
		if !entry.exited() {
			running[key.Site] = append(running[key.Site], key.GroupID)
		}
	}
	for _, ids := range running {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	return running
}

// syncGroup runs passes for one group until ctx is done, the group is no
// longer configured, its mailbox settings change or a pass fails. Failures
// are stored on the group and the next reconcile starts it again.
func (e *EmailSync) syncGroup(ctx context.Context, site Site, group *domain.Group, entry *groupEntry) {
	l := e.l.WithFields(logrus.Fields{log.FieldSite: site.Conf.Name, log.FieldGroupID: group.ID, "group": group.Name})

	syncer, err := e.factory(ctx, site.Conf, site.Store, group)
	if err != nil {
		if ctx.Err() == nil {
			l.WithError(err).Error("Could not start group sync")
			e.setLastError(site, group.ID, err)
		}
		return
	}
	entry.setSyncer(syncer)
	defer func() {
		if !syncer.Disconnected() {
			_ = syncer.Disconnect()
		}
	}()

	remaining := 0
	for ctx.Err() == nil {
		current, err := site.Store.GetGroup(group.ID)
		if err != nil {
			l.WithError(err).Error("Could not reload group")
			return
		}
		if !current.ImapConfigured() {
			l.Info("Group is no longer configured, stopping")
			return
		}
		if !syncer.Refresh(current) {
			l.Info("Mailbox settings changed, reconnecting")
			return
		}

		opts := imapsync.ProcessOptions{Idle: syncer.CanIdle() && remaining == 0}
		if remaining > 0 {
			none := 0
			opts.OldEmailsLimit = &none
		}

		result, err := syncer.Process(ctx, opts)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			l.WithError(err).Error("Sync pass failed")
			e.setLastError(site, group.ID, err)
			return
		}
		remaining = result.Remaining

		if !syncer.CanIdle() && remaining == 0 {
			select {
			case <-ctx.Done():
			case <-time.After(syncer.PollingPeriod()):
			}
		}
	}
}

func (e *EmailSync) setLastError(site Site, groupID int64, cause error) {
	msg := cause.Error()
	err := site.Store.SetGroupLastError(groupID, &msg)
	if err != nil {
		e.l.WithError(err).WithField(log.FieldGroupID, groupID).Warn("Could not store last error")
	}
}
