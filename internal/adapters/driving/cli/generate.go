package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scribe-labs/scribe-cli/internal/core/ports/driving"
)

var (
	generateStream      bool
	generateSave        bool
	generateTemperature float64
)

var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Generate a researched article for a topic",
	Long: `Runs the full pipeline for a topic: keyword discovery, URL discovery,
crawling, indexing, retrieval, and article generation.

Examples:
  scribe generate "coffee roasting at home"
  scribe generate "kubernetes cost optimisation" --stream --save`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateStream, "stream", false, "print the article as it is generated")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "save the article and metadata to the output directory")
	generateCmd.Flags().Float64VarP(&generateTemperature, "temperature", "t", 0, "sampling temperature override")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := initServices(ctx); err != nil {
		return err
	}

	req := driving.GenerateRequest{
		Topic:       args[0],
		Temperature: generateTemperature,
		Save:        generateSave,
	}

	if generateStream {
		deltas, err := generatorService.GenerateStream(ctx, req)
		if err != nil {
			return err
		}

		var streamErr error
		for delta := range deltas {
			if delta.Err != nil {
				streamErr = delta.Err
				continue
			}
			cmd.Print(delta.Content)
		}
		cmd.Println()
		if streamErr != nil {
			return fmt.Errorf("generation interrupted: %w", streamErr)
		}
		return nil
	}

	article, err := generatorService.Generate(ctx, req)
	if err != nil {
		return err
	}

	cmd.Println(article.Content)
	if article.RelevantKeyword != article.Topic {
		cmd.Printf("\n(angled at trending keyword: %s)\n", article.RelevantKeyword)
	}
	return nil
}
