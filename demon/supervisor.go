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
	"github.com/CrawX/go-imap-groupsync/log"

	"github.com/sirupsen/logrus"
)

const (
	EnsureRunningInterval = time.Second
)

// Supervisor owns the worker demons of this process.
type Supervisor struct {
	config  *config.Config
	spawner Spawner

	mu     sync.Mutex
	demons map[string]*Demon

	l *logrus.Logger
}

func NewSupervisor(conf *config.Config, spawner Spawner, loggers *log.Loggers) *Supervisor {
	return &Supervisor{
		config:  conf,
		spawner: spawner,
		demons:  map[string]*Demon{},
		l:       loggers.Logger(log.LOG_DEMON),
	}
}

func (s *Supervisor) sorted() []*Demon {
	s.mu.Lock()
	defer s.mu.Unlock()

	demons := make([]*Demon, 0, len(s.demons))
	for _, d := range s.demons {
		demons = append(demons, d)
	}
	sort.Slice(demons, func(i, j int) bool { return demons[i].index < demons[j].index })
	return demons
}

func (s *Supervisor) Demons() []*Demon {
	return s.sorted()
}

// Start registers count demons and starts each of them, already running
// ones are left alone.
func (s *Supervisor) Start(count int) error {
	s.mu.Lock()
	for i := 0; i < count; i++ {
		name := demonName(i)
		if _, ok := s.demons[name]; !ok {
			s.demons[name] = newDemon(i, s.config.PidDir, s.config.StopTimeout.Duration, s.spawner, s.l)
		}
	}
	s.mu.Unlock()

	var errs []error
	for _, d := range s.sorted() {
		err := d.Start()
		if err != nil {
			errs = append(errs, fmt.Errorf("could not start %s: %w", d.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (s *Supervisor) Stop() error {
	var errs []error
	for _, d := range s.sorted() {
		err := d.Stop()
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Supervisor) Restart() error {
	var errs []error
	for _, d := range s.sorted() {
		err := d.Restart()
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Supervisor) EnsureRunning() error {
	var errs []error
	for _, d := range s.sorted() {
		err := d.EnsureRunning()
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Supervisor) Kill(sig os.Signal) error {
	var errs []error
	for _, d := range s.sorted() {
		err := d.Kill(sig)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run starts the configured replicas and restarts dead ones until ctx is
// done, then stops all of them.
func (s *Supervisor) Run(ctx context.Context) error {
	err := s.Start(s.config.Replicas)
	if err != nil {
		s.l.WithError(err).Error("Could not start all workers")
	}

	ticker := time.NewTicker(EnsureRunningInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Info("Stopping workers")
			return s.Stop()
		case <-ticker.C:
			err = s.EnsureRunning()
			if err != nil {
				s.l.WithError(err).Error("Could not restart worker")
			}
		}
	}
}
