package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/Decentr-net/quill/internal/service"
)

// nolint:gochecknoglobals
var (
	profileInput service.ProfileInput
	socialFirst  string
	socialSecond string
	avatarFile   string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage profiles",
}

var profileAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new profile owned by --owner",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := readProfile(cmd); err != nil {
			return err
		}

		return printReceipt(srv.AddProfile(cmd.Context(), profileInput, owner, fund))
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update the profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := readProfile(cmd); err != nil {
			return err
		}

		return printReceipt(srv.UpdateProfile(cmd.Context(), args[0], profileInput, owner, fund))
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove the profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReceipt(srv.RemoveProfile(cmd.Context(), args[0], owner, fund))
	},
}

var profileGetCmd = &cobra.Command{
	Use:   "get <id|address>",
	Short: "Get current version of the profile by id or by owner address with --by-owner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		byOwner, _ := cmd.Flags().GetBool("by-owner")

		get := srv.GetProfile
		if byOwner {
			get = srv.GetProfileByOwner
		}

		p, err := get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("profile %s not found", args[0])
		}

		return output(p)
	},
}

var profileAvatarCmd = &cobra.Command{
	Use:   "avatar <id> <file>",
	Short: "Save avatar of the profile to file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := srv.GetAvatar(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(b) == 0 {
			return fmt.Errorf("profile %s has no avatar", args[0])
		}

		return os.WriteFile(args[1], b, 0600)
	},
}

var followersCmd = &cobra.Command{
	Use:   "followers <id>",
	Short: "List followers of the profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return outputPage(srv.GetFollowers(cmd.Context(), args[0], pageLimit, pageCursor))
	},
}

var followedCmd = &cobra.Command{
	Use:   "followed <id>",
	Short: "List profiles followed by the profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return outputPage(srv.GetFollowed(cmd.Context(), args[0], pageLimit, pageCursor))
	},
}

func init() {
	for _, c := range []*cobra.Command{profileAddCmd, profileUpdateCmd} {
		c.Flags().StringVar(&profileInput.Username, "username", "", "username")
		c.Flags().StringVar(&profileInput.Fullname, "fullname", "", "full name")
		c.Flags().StringVar(&profileInput.Description, "description", "", "description")
		c.Flags().StringVar(&socialFirst, "social-primary", "", "primary social link")
		c.Flags().StringVar(&socialSecond, "social-second", "", "second social link")
		c.Flags().StringVar(&avatarFile, "avatar", "", "avatar file")
		_ = c.MarkFlagRequired("username")
	}

	for _, c := range []*cobra.Command{profileAddCmd, profileUpdateCmd, profileRemoveCmd} {
		c.Flags().StringVar(&owner, "owner", "", "owner address of the profile")
		_ = c.MarkFlagRequired("owner")
	}

	profileGetCmd.Flags().Bool("by-owner", false, "treat argument as owner address")

	pageFlags(followersCmd)
	pageFlags(followedCmd)

	profileCmd.AddCommand(profileAddCmd, profileUpdateCmd, profileRemoveCmd, profileGetCmd, profileAvatarCmd,
		followersCmd, followedCmd)
}

func readProfile(cmd *cobra.Command) error {
	if cmd.Flags().Changed("social-primary") {
		profileInput.SocialLinkPrimary = &socialFirst
	}
	if cmd.Flags().Changed("social-second") {
		profileInput.SocialLinkSecond = &socialSecond
	}

	if avatarFile == "" {
		return nil
	}

	b, err := os.ReadFile(avatarFile)
	if err != nil {
		return fmt.Errorf("failed to read avatar: %w", err)
	}

	profileInput.Avatar = b
	profileInput.AvatarContentType = http.DetectContentType(b)

	return nil
}
