// SPDX-License-Identifier: GPL-3.0-or-later
package demon

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// Process is a started worker child.
type Process interface {
	Pid() int
	Signal(sig os.Signal) error
	// Exited reports without blocking whether the child is gone.
	Exited() bool
}

type Spawner interface {
	Spawn(index int) (Process, error)
}

// ExecSpawner starts the worker by running Executable again with the worker
// subcommand.
type ExecSpawner struct {
	Executable string
	ConfigFile string
	Stdout     io.Writer
	Stderr     io.Writer
}

func NewExecSpawner(configFile string) (*ExecSpawner, error) {
	executable, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("could not find own executable: %w", err)
	}

	return &ExecSpawner{
		Executable: executable,
		ConfigFile: configFile,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}, nil
}

func (s *ExecSpawner) Spawn(index int) (Process, error) {
	cmd := exec.Command(
		s.Executable,
		"--config", s.ConfigFile,
		"worker",
		"--index", strconv.Itoa(index),
		"--parent-pid", strconv.Itoa(os.Getpid()),
	)
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	err := cmd.Start()
	if err != nil {
		return nil, fmt.Errorf("could not start worker %d: %w", index, err)
	}

	p := &execProcess{cmd: cmd, done: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(p.done)
	}()
	return p, nil
}

type execProcess struct {
	cmd  *exec.Cmd
	done chan struct{}
}

func (p *execProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *execProcess) Signal(sig os.Signal) error {
	if p.Exited() {
		return nil
	}
	return p.cmd.Process.Signal(sig)
}

func (p *execProcess) Exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// processAlive probes pid with signal 0.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}

	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = p.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}

func killPid(pid int) error {
	p, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return p.Signal(syscall.SIGKILL)
}
