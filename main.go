// SPDX-License-Identifier: GPL-3.0-or-later
package main

import "github.com/CrawX/go-imap-groupsync/cmd"

func main() {
	cmd.Execute()
}
