package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file...]",
	Short: "Index local text files into the vector store",
	Long: `Reads the given files (or stdin when no files are passed), chunks and
embeds their content, and appends the chunks to the persisted index.
Subsequent retrieve and generate runs draw on this content.`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := initServices(ctx); err != nil {
		return err
	}

	var texts []string
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		texts = append(texts, string(data))
	} else {
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			texts = append(texts, string(data))
		}
	}

	chunks := retrievalService.AddDocuments(ctx, texts)
	if retrievalService.State() == domain.StateDegraded {
		return fmt.Errorf("ingest: %w", domain.ErrStoreDegraded)
	}
	cmd.Printf("Indexed %d chunks from %d input(s).\n", len(chunks), len(texts))
	return nil
}
