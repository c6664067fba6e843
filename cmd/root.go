package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "skim",
	Short: "Extractive text summarizer",
	Long: `Skim condenses a body of text by selecting the sentences that best
represent the whole. It never generates new prose: every sentence in the
output appears verbatim in the input, re-assembled in reading order.

Scoring blends TF-IDF term weight, a TextRank-style graph rank, paragraph
position, and sentence length.

Typical usage:
  skim summarize article.txt
  cat article.txt | skim summarize --ratio 0.2 --dedupe`,
}

// Execute runs the root command. Called once from main.main().
func Execute() error {
	return rootCmd.Execute()
}
