package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/api"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post",
	Args:  cobra.NoArgs,
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().String("title", "", "post title")
	createCmd.Flags().String("content", "", "post content")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	post, err := client.Create(context.Background(), api.Draft{Title: title, Content: content})
	if err != nil {
		return fmt.Errorf("create failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Post added: %s\n", post.ID)
	printPost(os.Stdout, *post)
	return nil
}
