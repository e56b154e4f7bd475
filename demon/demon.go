// SPDX-License-Identifier: GPL-3.0-or-later
package demon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	NamePrefix = "email_sync"

	// StopSignal asks a worker to shut down cleanly.
	StopSignal = syscall.SIGHUP
)

func demonName(index int) string {
	return fmt.Sprintf("%s_%d", NamePrefix, index)
}

// Demon keeps one worker child running. It goes from stopped to started
// with a running pid, and is restarted when the child is found dead.
type Demon struct {
	index       int
	name        string
	pidFile     string
	stopTimeout time.Duration
	spawner     Spawner

	mu      sync.Mutex
	started bool
	process Process

	l *logrus.Entry
}

func newDemon(index int, pidDir string, stopTimeout time.Duration, spawner Spawner, l *logrus.Logger) *Demon {
	name := demonName(index)
	return &Demon{
		index:       index,
		name:        name,
		pidFile:     filepath.Join(pidDir, name+".pid"),
		stopTimeout: stopTimeout,
		spawner:     spawner,
		l:           l.WithField("demon", name),
	}
}

func (d *Demon) Name() string {
	return d.name
}

func (d *Demon) Pid() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.process == nil {
		return 0
	}
	return d.process.Pid()
}

func (d *Demon) Alive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.process != nil && !d.process.Exited()
}

// Start spawns the child unless it is already running. A live process left
// behind in the pid file by an earlier supervisor is killed first.
func (d *Demon) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.started = true
	if d.process != nil && !d.process.Exited() {
		return nil
	}

	d.killStale()
	return d.spawn()
}

func (d *Demon) spawn() error {
	p, err := d.spawner.Spawn(d.index)
	if err != nil {
		d.process = nil
		return err
	}
	d.process = p

	err = os.WriteFile(d.pidFile, []byte(strconv.Itoa(p.Pid())), 0644)
	if err != nil {
		return fmt.Errorf("could not write pid file %s: %w", d.pidFile, err)
	}

	d.l.WithField("pid", p.Pid()).Info("Started worker")
	return nil
}

func (d *Demon) killStale() {
	content, err := os.ReadFile(d.pidFile)
	if err != nil {
		return
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err == nil && pid != os.Getpid() && processAlive(pid) {
		d.l.WithField("pid", pid).Warn("Killing stale worker")
		err = killPid(pid)
		if err != nil {
			d.l.WithError(err).WithField("pid", pid).Warn("Could not kill stale worker")
		}
	}
	_ = os.Remove(d.pidFile)
}

// Stop sends StopSignal and waits up to the stop timeout before killing the
// child. Liveness is checked again after the kill.
func (d *Demon) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.started = false
	if d.process == nil {
		return nil
	}
	p := d.process

	if !p.Exited() {
		d.l.WithField("pid", p.Pid()).Info("Stopping worker")
		err := p.Signal(StopSignal)
		if err != nil {
			d.l.WithError(err).Debug("Could not send stop signal")
		}

		if !d.waitExit(p) {
			d.l.WithField("pid", p.Pid()).Warn("Worker did not stop in time, killing it")
			err = p.Signal(syscall.SIGKILL)
			if err != nil {
				d.l.WithError(err).Debug("Could not send kill signal")
			}
			if !d.waitExit(p) {
				d.l.WithField("pid", p.Pid()).Error("Worker is still alive after kill")
			}
		}
	}

	d.process = nil
	err := os.Remove(d.pidFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not remove pid file %s: %w", d.pidFile, err)
	}
	return nil
}

// waitExit polls in tenths of the stop timeout.
func (d *Demon) waitExit(p Process) bool {
	step := d.stopTimeout / 10
	for i := 0; i < 10; i++ {
		if p.Exited() {
			return true
		}
		time.Sleep(step)
	}
	return p.Exited()
}

func (d *Demon) Restart() error {
	err := d.Stop()
	if err != nil {
		return err
	}
	return d.Start()
}

// EnsureRunning restarts a started demon whose child has exited.
func (d *Demon) EnsureRunning() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.started {
		return nil
	}
	if d.process != nil && !d.process.Exited() {
		return nil
	}

	if d.process != nil {
		d.l.WithField("pid", d.process.Pid()).Warn("Worker died, restarting")
	}
	return d.spawn()
}

func (d *Demon) Kill(sig os.Signal) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.process == nil || d.process.Exited() {
		return nil
	}
	return d.process.Signal(sig)
}
