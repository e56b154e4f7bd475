// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/CrawX/go-imap-groupsync/domain"
	"github.com/CrawX/go-imap-groupsync/topics"

	"github.com/spf13/cobra"
)

type TopicFlags struct {
	site    string
	groupID int64
}

var topicFlags TopicFlags

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Change topics, the linked emails are updated on the next sync",
}

var topicTagCmd = &cobra.Command{
	Use:   "tag <topic id> [tag...]",
	Short: "Replace the tags of a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTopicTag,
}

var topicArchiveCmd = &cobra.Command{
	Use:   "archive <topic id>",
	Short: "Archive a topic for a group",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runTopicArchive(cmd, args[0], true) },
}

var topicInboxCmd = &cobra.Command{
	Use:   "inbox <topic id>",
	Short: "Move a topic back to a group's inbox",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runTopicArchive(cmd, args[0], false) },
}

var topicDeleteCmd = &cobra.Command{
	Use:   "delete <post id>",
	Short: "Delete a post, deleting the first post deletes the topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicDelete,
}

func init() {
	rootCmd.AddCommand(topicCmd)
	topicCmd.AddCommand(topicTagCmd, topicArchiveCmd, topicInboxCmd, topicDeleteCmd)

	topicCmd.PersistentFlags().StringVar(&topicFlags.site, "site", "", "site of the topic")
	for _, c := range []*cobra.Command{topicArchiveCmd, topicInboxCmd} {
		c.Flags().Int64Var(&topicFlags.groupID, "group", 0, "group id")
		_ = c.MarkFlagRequired("group")
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func runTopicTag(cmd *cobra.Command, args []string) error {
	topicID, err := parseID(args[0])
	if err != nil {
		return err
	}

	site, p, err := openSite(topicFlags.site)
	if err != nil {
		return err
	}
	defer p.Close()

	service := topics.NewService(p, loggers)
	err = service.TagTopicByNames(context.Background(), domain.SystemGuardian(site.TaggingEnabled), topicID, args[1:], domain.TopicOptions{})
	if err != nil {
		return err
	}

	topic, err := p.GetTopic(topicID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "topic %d tagged %v\n", topicID, topic.Tags)
	return nil
}

func runTopicArchive(cmd *cobra.Command, arg string, archive bool) error {
	topicID, err := parseID(arg)
	if err != nil {
		return err
	}

	_, p, err := openSite(topicFlags.site)
	if err != nil {
		return err
	}
	defer p.Close()

	service := topics.NewService(p, loggers)
	if archive {
		err = service.Archive(context.Background(), topicFlags.groupID, topicID, domain.TopicOptions{})
	} else {
		err = service.MoveToInbox(context.Background(), topicFlags.groupID, topicID, domain.TopicOptions{})
	}
	return err
}

func runTopicDelete(cmd *cobra.Command, args []string) error {
	postID, err := parseID(args[0])
	if err != nil {
		return err
	}

	site, p, err := openSite(topicFlags.site)
	if err != nil {
		return err
	}
	defer p.Close()

	service := topics.NewService(p, loggers)
	return service.DestroyPost(context.Background(), domain.SystemGuardian(site.TaggingEnabled), postID, domain.TopicOptions{})
}
