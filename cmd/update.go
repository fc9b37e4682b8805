package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/api"
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace the title and content of a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().String("title", "", "new title (required)")
	updateCmd.Flags().String("content", "", "new content (required)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")
	draft := api.Draft{Title: title, Content: content}
	if draft.Title == "" || draft.Content == "" {
		return api.ErrMissingFields
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	post, err := client.Update(context.Background(), api.ID(args[0]), draft)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Post updated: %s\n", post.ID)
	printPost(os.Stdout, *post)
	return nil
}
