package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/importer"
	"github.com/ziadkadry99/postboard/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import [pattern...]",
	Short: "Create posts from Markdown files",
	Long: `Walks a directory and creates one post per matching Markdown file. The
first "# " heading becomes the title, the rest of the file the content.
Patterns are globs relative to --dir and support **; the default is all
.md and .markdown files. Posts are created one request at a time.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("dir", ".", "directory to import from")
	importCmd.Flags().Bool("dry-run", false, "list the posts that would be created without calling the API")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	docs, err := importer.Collect(dir, args)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Println("No matching files found.")
		return nil
	}

	if dryRun {
		fmt.Printf("Would create %d post(s):\n\n", len(docs))
		for _, d := range docs {
			fmt.Printf("  %s -> %q (%d bytes)\n", d.RelPath, d.Draft.Title, len(d.Draft.Content))
		}
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	reporter := progress.NewReporter("Importing posts")
	reporter.Start(len(docs))

	failed := 0
	for i, d := range docs {
		post, err := client.Create(ctx, d.Draft)
		if err != nil {
			failed++
			log.Printf("import: %s: %v", d.RelPath, err)
		} else {
			debugf("import: %s -> post %s", d.RelPath, post.ID)
		}
		reporter.Update(i+1, d.RelPath)
	}
	reporter.Finish()

	fmt.Fprintf(os.Stderr, "Imported %d of %d post(s)\n", len(docs)-failed, len(docs))
	if failed > 0 {
		return fmt.Errorf("%d post(s) failed to import", failed)
	}
	return nil
}
