// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/CrawX/go-imap-groupsync/config"
	"github.com/CrawX/go-imap-groupsync/log"
	"github.com/CrawX/go-imap-groupsync/persistence"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "imapsync",
	Short:             "Sync group mailboxes over IMAP",
	Long:              "\nKeeps the topics of every group in sync with the group's IMAP mailbox",
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func init() {
	flag := rootCmd.PersistentFlags()
	flag.StringVarP(&global.configFile, "config", "c", "config.toml", "configuration file")
	flag.BoolVarP(&global.quiet, "quiet", "q", false, "only display warnings and errors")
	flag.BoolVarP(&global.verbose, "verbose", "v", false, "display debugging information")
}

func initConfig(cmd *cobra.Command, args []string) error {
	var err error
	conf, err = config.ReadConfig(global.configFile)
	if err != nil {
		return fmt.Errorf("cannot open or read configuration file: %w", err)
	}

	level := "info"
	if conf.Loglevel != nil {
		level = *conf.Loglevel
	}
	switch {
	case global.verbose:
		level = "debug"
	case global.quiet:
		level = "warn"
	}
	loggers = log.NewLoggers(level)
	loggers.SetOutput(cmd.ErrOrStderr())
	return nil
}

// openSite opens the database of the named site. The name may be left
// empty when only one site is configured.
func openSite(name string) (*config.Site, *persistence.Persistence, error) {
	var site *config.Site
	switch {
	case len(name) > 0:
		s, err := conf.Site(name)
		if err != nil {
			return nil, nil, err
		}
		site = s
	case len(conf.Sites) == 1:
		site = conf.Sites[0]
	default:
		return nil, nil, errors.New("more than one site is configured, select one with --site")
	}

	p, err := persistence.NewPersistence(site.Database, loggers)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open database of site %s: %w", site.Name, err)
	}
	return site, p, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
