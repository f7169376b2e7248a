package cli

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show retrieval store status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := initServices(ctx); err != nil {
		return err
	}

	cmd.Printf("State:           %s\n", retrievalService.State())

	count, err := vectorIndex.Count(ctx)
	if err == nil {
		cmd.Printf("Indexed chunks:  %d\n", count)
	}

	cmd.Printf("Embedding model: %s\n", aiServices.EmbeddingService.ModelName())
	cmd.Printf("LLM model:       %s\n", aiServices.LLMService.ModelName())
	if aiServices.DemoMode {
		cmd.Println("Mode:            demo (no credentials configured)")
	}
	return nil
}
