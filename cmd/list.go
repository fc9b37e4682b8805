package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/api"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, optionally sorted by title or content",
	Long: `Fetches all posts from the API. With --sort the API orders them by the
given field; without it the configured default_sort applies, or the API's
own order when none is configured.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("sort", "", "sort field: title or content")
	listCmd.Flags().String("direction", "", "sort direction: asc or desc (default asc)")
	listCmd.Flags().Bool("json", false, "output posts as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	order := api.SortOrder{
		Field:     cfg.DefaultSort.Field,
		Direction: string(cfg.DefaultSort.Direction),
	}
	if cmd.Flags().Changed("sort") {
		order.Field, _ = cmd.Flags().GetString("sort")
	}
	if cmd.Flags().Changed("direction") {
		order.Direction, _ = cmd.Flags().GetString("direction")
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	posts, err := client.Sort(context.Background(), order)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}
	return printPosts(posts, jsonOutput)
}
