// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/CrawX/go-imap-groupsync/demon"
	"github.com/CrawX/go-imap-groupsync/imapsync"
	"github.com/CrawX/go-imap-groupsync/log"

	"github.com/spf13/cobra"
)

type SyncFlags struct {
	site    string
	groupID int64
	idle    bool
}

var syncFlags SyncFlags

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync pass for a group in the foreground",
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	flag := syncCmd.Flags()
	flag.StringVar(&syncFlags.site, "site", "", "site of the group")
	flag.Int64Var(&syncFlags.groupID, "group", 0, "group id")
	flag.BoolVar(&syncFlags.idle, "idle", false, "wait for new mail before the pass")
	_ = syncCmd.MarkFlagRequired("group")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	site, p, err := openSite(syncFlags.site)
	if err != nil {
		return err
	}
	defer p.Close()

	hook := log.NewSyncLogHook(nil)
	hook.Register(site.Name, p)
	loggers.AddHook(hook)

	group, err := p.GetGroup(syncFlags.groupID)
	if err != nil {
		return fmt.Errorf("cannot load group %d: %w", syncFlags.groupID, err)
	}
	if !group.ImapConfigured() {
		return fmt.Errorf("group %s has no enabled mailbox", group.Name)
	}

	syncer, err := demon.NewSyncer(ctx, site, p, group, loggers)
	if err != nil {
		return err
	}
	defer syncer.Disconnect()

	result, err := syncer.Process(ctx, imapsync.ProcessOptions{Idle: syncFlags.idle})
	if err != nil {
		msg := err.Error()
		_ = p.SetGroupLastError(group.ID, &msg)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "group %s synced, %d new emails remaining\n", group.Name, result.Remaining)
	return nil
}
