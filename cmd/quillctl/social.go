package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Decentr-net/quill/internal/service"
)

// nolint:gochecknoglobals
var responseInput service.ResponseInput

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Manage topics and their links to works",
}

var followCmd = &cobra.Command{
	Use:   "follow",
	Short: "Manage follows",
}

var likeCmd = &cobra.Command{
	Use:   "like",
	Short: "Manage likes of works",
}

var responseCmd = &cobra.Command{
	Use:   "response",
	Short: "Manage responses to works",
}

func init() {
	topicCmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Add a topic",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printReceipt(srv.AddTopic(cmd.Context(), args[0], fund))
			},
		},
		&cobra.Command{
			Use:   "remove <name>",
			Short: "Remove the topic",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printReceipt(srv.RemoveTopic(cmd.Context(), args[0], fund))
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List topics",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return outputPage(srv.GetTopics(cmd.Context()))
			},
		},
		&cobra.Command{
			Use:   "get <name>",
			Short: "Get topic by name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := srv.GetTopicByName(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if t == nil {
					return fmt.Errorf("topic %s not found", args[0])
				}

				return output(t)
			},
		},
		&cobra.Command{
			Use:   "link <work> <topic>",
			Short: "Link the work to the topic",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printReceipt(srv.AddWorkTopic(cmd.Context(), args[0], args[1], fund))
			},
		},
		&cobra.Command{
			Use:   "unlink <work> <topic>",
			Short: "Unlink the work from the topic",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printReceipt(srv.RemoveWorkTopic(cmd.Context(), args[0], args[1], fund))
			},
		},
		&cobra.Command{
			Use:   "of <work>",
			Short: "List topics of the work",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return outputPage(srv.GetWorkTopics(cmd.Context(), args[0]))
			},
		},
	)

	followCmd.AddCommand(
		&cobra.Command{
			Use:   "add <follower> <followed>",
			Short: "Follow the profile",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printReceipt(srv.AddFollow(cmd.Context(), args[0], args[1], fund))
			},
		},
		&cobra.Command{
			Use:   "remove <follower> <followed>",
			Short: "Unfollow the profile",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printReceipt(srv.RemoveFollow(cmd.Context(), args[0], args[1], fund))
			},
		},
	)

	likeListCmd := &cobra.Command{
		Use:   "list <work>",
		Short: "List current likes of the work",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return outputPage(srv.GetWorkLikes(cmd.Context(), args[0], pageLimit, pageCursor))
		},
	}
	pageFlags(likeListCmd)

	likeCmd.AddCommand(
		&cobra.Command{
			Use:   "add <work> <liker>",
			Short: "Like the work",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printReceipt(srv.AddWorkLike(cmd.Context(), args[0], args[1], fund))
			},
		},
		&cobra.Command{
			Use:   "remove <work> <liker>",
			Short: "Remove like of the work",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printReceipt(srv.RemoveWorkLike(cmd.Context(), args[0], args[1], fund))
			},
		},
		&cobra.Command{
			Use:   "has <work> <liker>",
			Short: "Check whether the profile liked the work",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ok, err := srv.HasLiked(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}

				return output(map[string]bool{"liked": ok})
			},
		},
		likeListCmd,
	)

	responseAddCmd := &cobra.Command{
		Use:   "add",
		Short: "Respond to the work",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printReceipt(srv.AddWorkResponse(cmd.Context(), responseInput, fund))
		},
	}
	responseAddCmd.Flags().StringVar(&responseInput.WorkID, "work", "", "id of the work")
	responseAddCmd.Flags().StringVar(&responseInput.WorkTitle, "work-title", "", "title of the work")
	responseAddCmd.Flags().StringVar(&responseInput.ResponderID, "responder", "", "id of responder's profile")
	responseAddCmd.Flags().StringVar(&responseInput.Content, "content", "", "content of the response")
	_ = responseAddCmd.MarkFlagRequired("work")
	_ = responseAddCmd.MarkFlagRequired("responder")
	_ = responseAddCmd.MarkFlagRequired("content")

	responseListCmd := &cobra.Command{
		Use:   "list <work>",
		Short: "List responses to the work, or of the profile with --by-profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if byProfile, _ := cmd.Flags().GetBool("by-profile"); byProfile {
				return outputPage(srv.GetWorkResponsesByProfile(cmd.Context(), args[0], pageLimit, pageCursor))
			}

			return outputPage(srv.GetWorkResponses(cmd.Context(), args[0], pageLimit, pageCursor))
		},
	}
	responseListCmd.Flags().Bool("by-profile", false, "treat argument as responder's profile id")
	pageFlags(responseListCmd)

	responseRemoveCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove the response uploaded by --owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printReceipt(srv.RemoveWorkResponse(cmd.Context(), args[0], owner, fund))
		},
	}
	responseRemoveCmd.Flags().StringVar(&owner, "owner", "", "address of the response's uploader")
	_ = responseRemoveCmd.MarkFlagRequired("owner")

	responseCmd.AddCommand(responseAddCmd, responseRemoveCmd, responseListCmd)
}
