package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/api"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search posts by title and/or content",
	Long:  `Runs a case-insensitive substring search on the API. At least one of --title or --content is required.`,
	Args:  cobra.NoArgs,
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().String("title", "", "term to look for in titles")
	searchCmd.Flags().String("content", "", "term to look for in content")
	searchCmd.Flags().Bool("json", false, "output posts as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	q := api.SearchQuery{Title: title, Content: content}
	if q.Empty() {
		return api.ErrEmptySearch
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	posts, err := client.Search(context.Background(), q)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return printPosts(posts, jsonOutput)
}
