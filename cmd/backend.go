package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/audit"
	"github.com/ziadkadry99/postboard/internal/db"
	"github.com/ziadkadry99/postboard/internal/posts"
	"github.com/ziadkadry99/postboard/internal/server"
)

var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Run the reference posts API",
	Long: `Starts a posts REST API under /api backed by SQLite, with an audit trail
of every change under /api/audit. Useful for trying the front-end locally.`,
	Args: cobra.NoArgs,
	RunE: runBackend,
}

func init() {
	backendCmd.Flags().Int("port", 0, "port to listen on (overrides backend.port)")
	backendCmd.Flags().String("db", "", "SQLite database path (overrides backend.database)")
	backendCmd.Flags().Bool("no-seed", false, "do not insert the sample posts into an empty database")
	rootCmd.AddCommand(backendCmd)
}

func runBackend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	port := cfg.Backend.Port
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		port = p
	}
	dbPath := cfg.Backend.Database
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		dbPath = p
	}
	noSeed, _ := cmd.Flags().GetBool("no-seed")

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	auditStore := audit.NewStore(database)
	postStore := posts.NewStore(database, auditStore)
	if cfg.Backend.Seed && !noSeed {
		if err := postStore.Seed(context.Background()); err != nil {
			return err
		}
	}

	srv := server.New(server.Config{
		Name:     "backend",
		Port:     port,
		AllowAll: true,
		Quiet:    !verbose,
	})
	posts.RegisterRoutes(srv.Router(), postStore)
	audit.RegisterRoutes(srv.Router(), auditStore)

	fmt.Fprintf(os.Stderr, "postboard backend %s on http://localhost:%d/api\n", Version, port)
	fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())
	return serveUntilSignal(srv)
}
