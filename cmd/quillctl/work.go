package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Decentr-net/quill/internal/service"
)

// nolint:gochecknoglobals
var (
	workInput   service.WorkInput
	contentFile string
	owner       string

	pageLimit  int
	pageCursor string
	top        bool
	authorID   string
	followerID string
	topicID    string
)

var workCmd = &cobra.Command{
	Use:   "work",
	Short: "Manage works",
}

var workAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new work",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := readContent(); err != nil {
			return err
		}

		return printReceipt(srv.AddWork(cmd.Context(), workInput, fund))
	},
}

var workUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update content of the work",
	Long: `Update commits a new version of the work. Title, description and author identify the work
and must be the same as in the prior version.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := readContent(); err != nil {
			return err
		}

		return printReceipt(srv.UpdateWork(cmd.Context(), args[0], workInput, owner, fund))
	},
}

var workRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove the work",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReceipt(srv.RemoveWork(cmd.Context(), args[0], owner, fund))
	},
}

var workGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get current version of the work",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := srv.GetWork(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if w == nil {
			return fmt.Errorf("work %s not found", args[0])
		}

		return output(w)
	},
}

var workListCmd = &cobra.Command{
	Use:   "list",
	Short: "List works",
	Long: `List returns a page of works. Works are filtered by author, by followed authors or by topic,
and are ordered by like count with --top.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		switch {
		case followerID != "":
			return outputPage(srv.GetWorksByAllFollowed(ctx, followerID, pageLimit, pageCursor))
		case topicID != "":
			return outputPage(srv.GetWorksByTopic(ctx, topicID, pageLimit, pageCursor))
		case authorID != "" && top:
			return outputPage(srv.GetAuthorWorksTop(ctx, authorID, pageLimit, pageCursor))
		case authorID != "":
			return outputPage(srv.GetAuthorWorks(ctx, authorID, pageLimit, pageCursor))
		case top:
			return outputPage(srv.GetWorksTop(ctx, pageLimit, pageCursor))
		default:
			return outputPage(srv.GetLatestWorks(ctx, pageLimit, pageCursor))
		}
	},
}

var workLikesCmd = &cobra.Command{
	Use:   "likes <id>",
	Short: "Count likes of the work",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := srv.GetWorkLikeCount(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return output(map[string]int{"count": n})
	},
}

func init() {
	for _, c := range []*cobra.Command{workAddCmd, workUpdateCmd} {
		c.Flags().StringVar(&workInput.Title, "title", "", "title of the work")
		c.Flags().StringVar(&workInput.Description, "description", "", "description of the work")
		c.Flags().StringVar(&workInput.AuthorID, "author", "", "id of author's profile")
		c.Flags().StringVar(&workInput.Content, "content", "", "content of the work")
		c.Flags().StringVar(&contentFile, "content-file", "", "file with content of the work")
		_ = c.MarkFlagRequired("title")
		_ = c.MarkFlagRequired("description")
		_ = c.MarkFlagRequired("author")
	}

	for _, c := range []*cobra.Command{workUpdateCmd, workRemoveCmd} {
		c.Flags().StringVar(&owner, "owner", "", "address of the work's owner")
		_ = c.MarkFlagRequired("owner")
	}

	workListCmd.Flags().BoolVar(&top, "top", false, "order works of page by like count")
	workListCmd.Flags().StringVar(&authorID, "author", "", "list works of author")
	workListCmd.Flags().StringVar(&followerID, "followed-by", "", "list works of authors followed by profile")
	workListCmd.Flags().StringVar(&topicID, "topic", "", "list works of topic")
	pageFlags(workListCmd)

	workCmd.AddCommand(workAddCmd, workUpdateCmd, workRemoveCmd, workGetCmd, workListCmd, workLikesCmd)
}

func pageFlags(c *cobra.Command) {
	c.Flags().IntVar(&pageLimit, "limit", 20, "count of scanned records")
	c.Flags().StringVar(&pageCursor, "cursor", "", "cursor of previous page")
}

func readContent() error {
	if contentFile == "" {
		return nil
	}

	b, err := os.ReadFile(contentFile)
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}
	workInput.Content = string(b)

	return nil
}

func outputPage(p interface{}, err error) error {
	if err != nil {
		return err
	}

	return output(p)
}
