package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/takak2166/markdown2wordpress/internal/config"
	"github.com/takak2166/markdown2wordpress/internal/logger"
	"github.com/takak2166/markdown2wordpress/internal/models"
	"github.com/takak2166/markdown2wordpress/internal/parser"
	"github.com/takak2166/markdown2wordpress/internal/publisher"
)

// errPublishFailed signals a failure whose details were already printed as JSON
var errPublishFailed = errors.New("publish failed")

func main() {
	if err := newRootCmd(os.Stdout, os.LookupEnv).Execute(); err != nil {
		if !errors.Is(err, errPublishFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer, lookup config.LookupFunc) *cobra.Command {
	var (
		tags    string
		envDir  string
		publish bool
	)

	cmd := &cobra.Command{
		Use:   "publish <markdown_file>",
		Short: "Save a markdown file to WordPress as a draft post",
		Long: `Converts a markdown file to WordPress blocks and saves it as a draft.

Environment variables required (or set in .env.local / .env next to the binary):
  WORDPRESS_URL           Your WordPress site URL
  WORDPRESS_USERNAME      WordPress username
  WORDPRESS_APP_PASSWORD  WordPress Application Password

Posts are always saved as drafts. You can publish them from WordPress admin.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if envDir == "" {
				dir, err := config.ExecutableDir()
				if err != nil {
					return writeResult(stdout, models.Failure(err.Error()))
				}
				envDir = dir
			}

			cfg, err := config.Load(lookup, config.DefaultEnvFiles(envDir)...)
			if err != nil {
				return writeResult(stdout, models.Failure(err.Error()))
			}

			if err := logger.Init(cfg.LogLevel); err != nil {
				fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
				_ = logger.Init(config.DefaultLogLevel)
			}
			if publish {
				logger.Info("Ignoring --publish, posts are always saved as drafts")
			}

			result := publisher.New(cfg).Publish(cmd.Context(), args[0], parser.SplitTags(tags))
			return writeResult(stdout, result)
		},
	}

	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated list of tags to add to the post")
	cmd.Flags().StringVar(&envDir, "env-dir", "", "Directory holding .env.local and .env (default: the binary's directory)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Accepted for compatibility; posts are always saved as drafts")
	_ = cmd.Flags().MarkHidden("publish")

	return cmd
}

// writeResult prints result as indented JSON and reports failure through the returned error
func writeResult(w io.Writer, result *models.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(w, string(data))

	if !result.Success {
		return errPublishFailed
	}
	return nil
}
