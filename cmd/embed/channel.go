package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"transcript-search/internal/app"
	"transcript-search/internal/config"
)

var (
	interval  int
	batchSize int
	replace   bool
)

var channelCmd = &cobra.Command{
	Use:   "channel [channel_id]",
	Short: "Embed every subtitle segment of a channel",
	Long: `Embed every subtitle segment of a channel.

This command:
1. Loads each video's subtitles from the subtitle database
2. Groups them into windows of --interval seconds
3. Requests embeddings in batches of --batch-size texts
4. Writes the records to the vector store

Videos without subtitles or shorter than one window are skipped.

Examples:
  embed channel UCsBjURrPoezykLs9EqgamOA
  embed channel UCsBjURrPoezykLs9EqgamOA --interval 30 --replace`,
	Args: cobra.ExactArgs(1),
	RunE: runChannel,
}

func init() {
	rootCmd.AddCommand(channelCmd)
	channelCmd.Flags().IntVar(&interval, "interval", 0, "Segment width in seconds (default SEGMENT_INTERVAL or 10)")
	channelCmd.Flags().IntVar(&batchSize, "batch-size", 0, "Texts per embedding request (default EMBEDDING_BATCH_SIZE or 100)")
	channelCmd.Flags().BoolVar(&replace, "replace", false, "Delete the channel's existing records before writing")
}

func runChannel(cmd *cobra.Command, args []string) error {
	channelID := args[0]

	if interval < 0 || batchSize < 0 {
		return fmt.Errorf("--interval and --batch-size must be positive")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.SetupLogging(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	if err := a.Embedder.Validate(ctx); err != nil {
		return err
	}

	reporter := newConsoleReporter(cmd.OutOrStdout())
	pipeline := a.Pipeline(app.PipelineOverrides{
		Interval:           interval,
		EmbeddingBatchSize: batchSize,
		Replace:            replace,
		Reporter:           reporter,
	})

	reporter.Start(channelID, pipeline.Collection())
	stats, err := pipeline.IngestChannel(ctx, channelID)
	reporter.Summary(stats, err)
	if err != nil {
		return fmt.Errorf("%s %w", reporter.styles.err.Render("Error:"), err)
	}
	return nil
}
