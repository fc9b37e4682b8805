package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/api"
	"github.com/ziadkadry99/postboard/internal/server"
	"github.com/ziadkadry99/postboard/internal/web"
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser front-end",
	Long: `Starts the browser front-end. The API base URL entered on the page is
kept in a cookie; until one is entered the configured base_url is used.`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().Int("port", 0, "port to listen on (overrides web.port)")
	rootCmd.AddCommand(webCmd)
}

func runWeb(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	port := cfg.Web.Port
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		port = p
	}

	front, err := web.New(api.NewClient(cfg.BaseURL, api.WithTimeout(cfg.Timeout())), web.Options{
		DefaultBaseURL: cfg.BaseURL,
		Markdown:       cfg.Web.Markdown,
	})
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Name:     "web",
		Port:     port,
		AllowAll: cfg.Web.AllowAllOrigins,
		Quiet:    !verbose,
	})
	front.RegisterRoutes(srv.Router())

	fmt.Fprintf(os.Stderr, "postboard web %s on http://localhost:%d\n", Version, port)
	if cfg.BaseURL != "" {
		fmt.Fprintf(os.Stderr, "  Default API: %s\n", cfg.BaseURL)
	}
	return serveUntilSignal(srv)
}

// serveUntilSignal runs srv until SIGINT or SIGTERM, then shuts it down.
func serveUntilSignal(srv *server.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	return srv.Start()
}
