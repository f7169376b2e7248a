package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var articlesJSON bool

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "List previously generated articles",
	RunE:  runArticles,
}

func init() {
	articlesCmd.Flags().BoolVar(&articlesJSON, "json", false, "output article metadata as JSON")
	rootCmd.AddCommand(articlesCmd)
}

func runArticles(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := initServices(ctx); err != nil {
		return err
	}

	articles, err := articleStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list articles: %w", err)
	}

	if articlesJSON {
		data, err := json.MarshalIndent(articles, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal articles: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(articles) == 0 {
		cmd.Println("No articles generated yet.")
		return nil
	}

	for _, a := range articles {
		cmd.Printf("  %s  %s\n", a.GeneratedAt.Format("2006-01-02 15:04"), a.Topic)
		cmd.Printf("      %s\n", a.Filename)
	}
	return nil
}
