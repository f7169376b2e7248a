package cli

import (
	"github.com/spf13/cobra"

	"github.com/scribe-labs/scribe-cli/internal/adapters/driven/discovery/trends"
)

var keywordsLimit int

var keywordsCmd = &cobra.Command{
	Use:   "keywords [topic]",
	Short: "Show trending keywords related to a topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeywords,
}

func init() {
	keywordsCmd.Flags().IntVarP(&keywordsLimit, "limit", "n", 10, "maximum number of keywords")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	finder := trends.NewFinder(trends.Config{})

	keywords, err := finder.RelatedKeywords(cmd.Context(), args[0], keywordsLimit)
	if err != nil {
		return err
	}

	if len(keywords) == 0 {
		cmd.Println("No related keywords found.")
		return nil
	}
	for _, keyword := range keywords {
		cmd.Println(keyword)
	}
	return nil
}
