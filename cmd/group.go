// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/CrawX/go-imap-groupsync/domain"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type GroupFlags struct {
	site string

	name     string
	email    string
	server   string
	port     int
	ssl      bool
	username string
	password string
	mailbox  string
	provider string
	idle     bool
	write    bool
}

var groupFlags GroupFlags

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage the groups of a site",
}

var groupAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a group with its mailbox",
	RunE:  runGroupAdd,
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display the groups and their sync state",
	RunE:  runGroupList,
}

var groupUpdateCmd = &cobra.Command{
	Use:   "update <group id>",
	Short: "Change the mailbox settings of a group, a running worker picks them up",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupUpdate,
}

var groupEnableCmd = &cobra.Command{
	Use:   "enable <group id>",
	Short: "Enable syncing the group's mailbox",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setGroupEnabled(cmd, args[0], true) },
}

var groupDisableCmd = &cobra.Command{
	Use:   "disable <group id>",
	Short: "Stop syncing the group's mailbox",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setGroupEnabled(cmd, args[0], false) },
}

func init() {
	rootCmd.AddCommand(groupCmd)
	groupCmd.AddCommand(groupAddCmd, groupListCmd, groupUpdateCmd, groupEnableCmd, groupDisableCmd)

	groupCmd.PersistentFlags().StringVar(&groupFlags.site, "site", "", "site of the group")

	flag := groupAddCmd.Flags()
	flag.StringVar(&groupFlags.name, "name", "", "group name")
	flag.StringVar(&groupFlags.email, "email", "", "address the group receives mail on")
	flag.StringVar(&groupFlags.server, "server", "", "imap server host")
	flag.IntVar(&groupFlags.port, "port", 993, "imap server port")
	flag.BoolVar(&groupFlags.ssl, "ssl", true, "connect with TLS")
	flag.StringVar(&groupFlags.username, "username", "", "imap username")
	flag.StringVar(&groupFlags.password, "password", "", "imap password")
	flag.StringVar(&groupFlags.mailbox, "mailbox", "INBOX", "mailbox to sync")
	flag.StringVar(&groupFlags.provider, "provider", domain.ProviderGeneric, "server family: generic or gmail")
	flag.BoolVar(&groupFlags.idle, "idle", false, "wait for new mail with IDLE")
	flag.BoolVar(&groupFlags.write, "write", false, "push topic changes back to the mailbox")
	_ = groupAddCmd.MarkFlagRequired("name")

	flag = groupUpdateCmd.Flags()
	flag.StringVar(&groupFlags.email, "email", "", "address the group receives mail on")
	flag.StringVar(&groupFlags.server, "server", "", "imap server host")
	flag.IntVar(&groupFlags.port, "port", 993, "imap server port")
	flag.BoolVar(&groupFlags.ssl, "ssl", true, "connect with TLS")
	flag.StringVar(&groupFlags.username, "username", "", "imap username")
	flag.StringVar(&groupFlags.password, "password", "", "imap password")
	flag.StringVar(&groupFlags.mailbox, "mailbox", "INBOX", "mailbox to sync")
	flag.StringVar(&groupFlags.provider, "provider", domain.ProviderGeneric, "server family: generic or gmail")
	flag.BoolVar(&groupFlags.idle, "idle", false, "wait for new mail with IDLE")
	flag.BoolVar(&groupFlags.write, "write", false, "push topic changes back to the mailbox")
}

func runGroupAdd(cmd *cobra.Command, args []string) error {
	if groupFlags.provider != domain.ProviderGeneric && groupFlags.provider != domain.ProviderGmail {
		return fmt.Errorf("unknown imap provider %q", groupFlags.provider)
	}

	_, p, err := openSite(groupFlags.site)
	if err != nil {
		return err
	}
	defer p.Close()

	g := &domain.Group{
		Name:             groupFlags.name,
		EmailUsername:    groupFlags.email,
		ImapServer:       groupFlags.server,
		ImapPort:         groupFlags.port,
		ImapSSL:          groupFlags.ssl,
		ImapUsername:     groupFlags.username,
		ImapPassword:     groupFlags.password,
		ImapMailboxName:  groupFlags.mailbox,
		ImapProvider:     groupFlags.provider,
		ImapIdleEnabled:  groupFlags.idle,
		ImapWriteEnabled: groupFlags.write,
	}
	g.ImapEnabled = len(g.ImapServer) > 0
	id, err := p.CreateGroup(g)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "group %s added with id %d\n", g.Name, id)
	return nil
}

func parseGroupID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid group id %q", arg)
	}
	return id, nil
}

func loadGroup(p domain.Store, id int64) (*domain.Group, error) {
	g, err := p.GetGroup(id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("group %d does not exist", id)
	}
	return g, err
}

// runGroupUpdate only touches the settings given on the command line.
func runGroupUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseGroupID(args[0])
	if err != nil {
		return err
	}
	if groupFlags.provider != domain.ProviderGeneric && groupFlags.provider != domain.ProviderGmail {
		return fmt.Errorf("unknown imap provider %q", groupFlags.provider)
	}

	_, p, err := openSite(groupFlags.site)
	if err != nil {
		return err
	}
	defer p.Close()

	g, err := loadGroup(p, id)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("email") {
		g.EmailUsername = groupFlags.email
	}
	if flags.Changed("server") {
		g.ImapServer = groupFlags.server
	}
	if flags.Changed("port") {
		g.ImapPort = groupFlags.port
	}
	if flags.Changed("ssl") {
		g.ImapSSL = groupFlags.ssl
	}
	if flags.Changed("username") {
		g.ImapUsername = groupFlags.username
	}
	if flags.Changed("password") {
		g.ImapPassword = groupFlags.password
	}
	if flags.Changed("mailbox") {
		g.ImapMailboxName = groupFlags.mailbox
	}
	if flags.Changed("provider") {
		g.ImapProvider = groupFlags.provider
	}
	if flags.Changed("idle") {
		g.ImapIdleEnabled = groupFlags.idle
	}
	if flags.Changed("write") {
		g.ImapWriteEnabled = groupFlags.write
	}

	err = p.UpdateGroupImapSettings(g)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "group %s updated\n", g.Name)
	return nil
}

func runGroupList(cmd *cobra.Command, args []string) error {
	_, p, err := openSite(groupFlags.site)
	if err != nil {
		return err
	}
	defer p.Close()

	groups, err := p.AllGroups()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"ID", "Name", "Mailbox", "Enabled", "Validity", "Last UID", "Old", "New", "Last error"})
	for _, g := range groups {
		mailbox := ""
		if len(g.ImapServer) > 0 {
			mailbox = fmt.Sprintf("%s@%s:%d/%s", g.ImapUsername, g.ImapServer, g.ImapPort, g.ImapMailboxName)
		}
		lastError := ""
		if g.ImapLastError != nil {
			lastError = *g.ImapLastError
		}
		table.Append([]string{
			strconv.FormatInt(g.ID, 10),
			g.Name,
			mailbox,
			strconv.FormatBool(g.ImapConfigured()),
			strconv.FormatUint(uint64(g.ImapUidValidity), 10),
			strconv.FormatUint(uint64(g.ImapLastUid), 10),
			strconv.Itoa(g.ImapOldEmails),
			strconv.Itoa(g.ImapNewEmails),
			lastError,
		})
	}
	table.Render()
	return nil
}

func setGroupEnabled(cmd *cobra.Command, arg string, enabled bool) error {
	id, err := parseGroupID(arg)
	if err != nil {
		return err
	}

	_, p, err := openSite(groupFlags.site)
	if err != nil {
		return err
	}
	defer p.Close()

	g, err := loadGroup(p, id)
	if err != nil {
		return err
	}

	err = p.SetGroupImapEnabled(id, enabled)
	if err != nil {
		return err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "sync of group %s %s\n", g.Name, state)
	return nil
}
