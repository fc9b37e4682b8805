package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/api"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	id := api.ID(args[0])
	if err := client.Delete(context.Background(), id); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Post deleted: %s\n", id)
	return nil
}
