package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	retrieveTopK int
	retrieveJSON bool
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Retrieve indexed content relevant to a query",
	Long: `Performs semantic search over the persisted vector index and prints
the most relevant chunks. When the index is empty or retrieval has
degraded, a generic outline is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runRetrieve,
}

func init() {
	retrieveCmd.Flags().IntVarP(&retrieveTopK, "top-k", "k", 0, "number of chunks to retrieve (default 3)")
	retrieveCmd.Flags().BoolVar(&retrieveJSON, "json", false, "output scored chunks as JSON")
	rootCmd.AddCommand(retrieveCmd)
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := initServices(ctx); err != nil {
		return err
	}
	query := args[0]

	if retrieveJSON {
		results := retrievalService.SimilaritySearch(ctx, query, retrieveTopK)

		type scoredOut struct {
			ID         string  `json:"id"`
			Content    string  `json:"content"`
			Similarity float64 `json:"similarity"`
		}
		out := make([]scoredOut, len(results))
		for i, r := range results {
			out[i] = scoredOut{
				ID:         r.Chunk.ID,
				Content:    r.Chunk.Content,
				Similarity: float64(r.Similarity),
			}
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	content, err := retrievalService.RetrieveRelevantContent(ctx, query, retrieveTopK)
	if err != nil {
		return err
	}
	cmd.Println(content)
	return nil
}
