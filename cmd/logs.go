// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type LogsFlags struct {
	site    string
	groupID int64
	limit   int
}

var logsFlags LogsFlags

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Display the latest sync log of a group",
	RunE:  runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	flag := logsCmd.Flags()
	flag.StringVar(&logsFlags.site, "site", "", "site of the group")
	flag.Int64Var(&logsFlags.groupID, "group", 0, "group id")
	flag.IntVar(&logsFlags.limit, "limit", 50, "number of entries")
	_ = logsCmd.MarkFlagRequired("group")
}

func runLogs(cmd *cobra.Command, args []string) error {
	_, p, err := openSite(logsFlags.site)
	if err != nil {
		return err
	}
	defer p.Close()

	logs, err := p.SyncLogs(logsFlags.groupID, logsFlags.limit)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Time", "Level", "Message"})
	table.SetAutoWrapText(false)
	for _, l := range logs {
		table.Append([]string{l.CreatedAt.Local().Format("2006-01-02 15:04:05"), l.Level, l.Message})
	}
	table.Render()
	return nil
}
