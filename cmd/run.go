// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/CrawX/go-imap-groupsync/demon"
	"github.com/CrawX/go-imap-groupsync/log"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the sync workers and restart them when they die",
	RunE:  runRun,
}

type WorkerFlags struct {
	index     int
	parentPid int
}

var workerFlags WorkerFlags

var workerCmd = &cobra.Command{
	Use:    "worker",
	Short:  "Sync every configured group, started by run",
	Hidden: true,
	RunE:   runWorker,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(workerCmd)

	flag := workerCmd.Flags()
	flag.IntVar(&workerFlags.index, "index", 0, "replica index")
	flag.IntVar(&workerFlags.parentPid, "parent-pid", 0, "stop when this process is gone")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configFile, err := filepath.Abs(global.configFile)
	if err != nil {
		return fmt.Errorf("cannot resolve configuration file: %w", err)
	}
	spawner, err := demon.NewExecSpawner(configFile)
	if err != nil {
		return err
	}

	l := loggers.Logger(log.LOG_MAIN)
	l.WithField("replicas", conf.Replicas).Info("Starting workers")

	supervisor := demon.NewSupervisor(conf, spawner, loggers)
	return supervisor.Run(ctx)
}

func runWorker(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, demon.StopSignal)
	defer stop()

	l := loggers.Logger(log.LOG_MAIN).WithField("index", workerFlags.index)
	hook := log.NewSyncLogHook(func(err error) {
		l.WithError(err).Debug("Could not write sync log")
	})

	sites := make([]demon.Site, 0, len(conf.Sites))
	for _, s := range conf.Sites {
		_, p, err := openSite(s.Name)
		if err != nil {
			return err
		}
		defer p.Close()

		hook.Register(s.Name, p)
		sites = append(sites, demon.Site{Conf: s, Store: p})
	}
	loggers.AddHook(hook)

	l.WithField("parent", workerFlags.parentPid).Info("Worker started")
	worker := demon.NewEmailSync(conf, sites, demon.DefaultSyncerFactory(loggers), workerFlags.parentPid, loggers)
	err := worker.Run(ctx)
	l.Info("Worker stopped")
	return err
}
