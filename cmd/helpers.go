package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ziadkadry99/postboard/internal/api"
	"github.com/ziadkadry99/postboard/internal/config"
)

// loadConfig loads and validates the config. A --base-url flag replaces the
// configured base URL and is written back to the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `postboard init` to create a config file", err)
	}
	if rootCmd.PersistentFlags().Changed("base-url") {
		if err := applyBaseURL(cfg, cfgFile, baseURLFlag); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// applyBaseURL sets cfg.BaseURL and persists it to path.
func applyBaseURL(cfg *config.Config, path, raw string) error {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if err := config.ValidateBaseURL(base); err != nil {
		return err
	}
	if base == cfg.BaseURL {
		return nil
	}
	cfg.BaseURL = base
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("saving base URL: %w", err)
	}
	debugf("saved base URL %s to %s", base, path)
	return nil
}

// newClient builds an API client from cfg. It fails when no base URL is set.
func newClient(cfg *config.Config) (*api.Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: pass --base-url or run `postboard init`", api.ErrNoBaseURL)
	}
	debugf("using API %s (timeout %s)", cfg.BaseURL, cfg.Timeout())
	return api.NewClient(cfg.BaseURL, api.WithTimeout(cfg.Timeout())), nil
}

func debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

func printPostsJSON(w io.Writer, posts []api.Post) error {
	if posts == nil {
		posts = []api.Post{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(posts)
}

func printPostsTable(w io.Writer, posts []api.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts.")
		return
	}
	fmt.Fprintf(w, "%d post(s):\n\n", len(posts))
	for _, p := range posts {
		printPost(w, p)
	}
}

func printPost(w io.Writer, p api.Post) {
	fmt.Fprintf(w, "  [%s] %s\n", p.ID, p.Title)
	fmt.Fprintf(w, "      %s\n\n", truncate(oneLine(p.Content), 120))
}

func printPosts(posts []api.Post, asJSON bool) error {
	if asJSON {
		return printPostsJSON(os.Stdout, posts)
	}
	printPostsTable(os.Stdout, posts)
	return nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
