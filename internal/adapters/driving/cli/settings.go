package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	configfile "github.com/scribe-labs/scribe-cli/internal/adapters/driven/config/file"
	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure AI providers, discovery, crawling, and storage
options. Settings persist to ~/.scribe/config.toml; API keys are never
written to disk and come from the environment.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value by its dotted key, for example:

  scribe settings set llm.provider ollama
  scribe settings set llm.model llama3
  scribe settings set chunking.size 800
  scribe settings set storage.output_dir ~/articles`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func loadSettingsStore() (*configfile.ConfigStore, domain.AppSettings, error) {
	store, err := configfile.NewConfigStore(flagConfig)
	if err != nil {
		return nil, domain.AppSettings{}, fmt.Errorf("open config: %w", err)
	}
	return store, configfile.LoadSettings(store), nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	store, settings, err := loadSettingsStore()
	if err != nil {
		return err
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Embedding]")
	printProvider(cmd, settings.Embedding.Provider, settings.Embedding.Model)
	cmd.Println()

	cmd.Println("[LLM]")
	printProvider(cmd, settings.LLM.Provider, settings.LLM.Model)
	cmd.Printf("  Temperature: %.2f\n", settings.LLM.Temperature)
	cmd.Println()

	cmd.Println("[Discovery]")
	if settings.Discovery.IsConfigured() {
		cmd.Printf("  Search:      configured (%d results per query)\n", settings.Discovery.ResultsPerQuery)
	} else {
		cmd.Println("  Search:      not configured (set GOOGLE_SEARCH_API and GOOGLE_CX)")
	}
	cmd.Printf("  Keywords:    up to %d per topic\n", settings.Discovery.MaxKeywords)
	cmd.Println()

	cmd.Println("[Crawler]")
	cmd.Printf("  Timeout:     %ds\n", settings.Crawler.TimeoutSeconds)
	cmd.Printf("  Delay:       %ds\n", settings.Crawler.DelaySeconds)
	cmd.Println()

	cmd.Println("[Chunking]")
	cmd.Printf("  Size:        %d characters\n", settings.Chunking.Size)
	cmd.Printf("  Overlap:     %d characters\n", settings.Chunking.Overlap)
	cmd.Println()

	cmd.Println("[Storage]")
	if settings.Storage.DataDir != "" {
		cmd.Printf("  Data:        %s\n", settings.Storage.DataDir)
	} else {
		cmd.Println("  Data:        ~/.scribe/data")
	}
	cmd.Printf("  Articles:    %s\n", settings.Storage.OutputDir)
	cmd.Println()

	cmd.Printf("Config file: %s\n", store.Path())
	return nil
}

func printProvider(cmd *cobra.Command, provider domain.AIProvider, model string) {
	if !provider.IsValid() {
		cmd.Println("  Provider:    not configured (demo mode)")
		return
	}
	cmd.Printf("  Provider:    %s\n", provider.Description())
	if model != "" {
		cmd.Printf("  Model:       %s\n", model)
	}
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	store, _, err := loadSettingsStore()
	if err != nil {
		return err
	}
	key, raw := args[0], args[1]

	// Store numbers as numbers so typed getters round-trip.
	var value any = raw
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		value = n
	} else if f, err := strconv.ParseFloat(raw, 64); err == nil {
		value = f
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	cmd.Printf("%s = %s\n", key, raw)
	return nil
}
