// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"github.com/CrawX/go-imap-groupsync/config"
	"github.com/CrawX/go-imap-groupsync/log"
)

type GlobalFlags struct {
	configFile string
	quiet      bool
	verbose    bool
}

var (
	global  GlobalFlags
	conf    *config.Config
	loggers *log.Loggers
)
