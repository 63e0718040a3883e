package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "embed",
	Short: "Build the semantic search index of channel transcripts",
	Long: `embed splits stored subtitles into fixed time windows, embeds each
window together with its video and channel context, and writes the vectors
to the configured vector store (Qdrant or Milvus).

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
