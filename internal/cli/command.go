package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/polyglot/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "polyglot [target-language]",
		Short: "Directory translator for text and code files",
		Long: `polyglot translates every file of a directory tree into a target
language using a local Ollama-compatible model service, preserving file
formatting. Each invocation writes into a fresh run directory and
rewrites language codes embedded in filenames.

Examples:
  polyglot german -i ./docs              # Translate ./docs to German
  polyglot de -i ./src --model llama3:8b # Different model
  polyglot --list-models                 # Show installed models
  polyglot de -i ./docs --watch          # Keep translating on change`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Output defaults to a dated directory below the working directory,
	// like output/2025-06-01.
	defaultOutputDir := filepath.Join("output", time.Now().Format("2006-01-02"))

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.polyglot.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.InputDir, "input", "i", "", "Input directory to translate (prompted when omitted)")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Base output directory")
	cmd.Flags().StringVar(&flags.RunName, "run-name", "", "Custom name for the run directory (default: target language)")
	cmd.Flags().StringVar(&flags.LogDir, "log-dir", flags.LogDir, "Directory for run log files")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate only files matching patterns from file (one per line)")
	cmd.Flags().BoolVar(&flags.Pull, "pull", false, "Automatically pull the model if not installed")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List models installed on the local service")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move existing run directories into an archive and exit")
	cmd.Flags().BoolVar(&flags.Watch, "watch", false, "Keep running and re-translate files as they change")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Skip the persistent translation cache")

	// Model service flags
	cmd.Flags().StringVar(&flags.Host, "host", flags.Host, "Base URL of the local model service")
	cmd.Flags().StringVarP(&flags.Model, "model", "m", flags.Model, "Model to use for translation")
	cmd.Flags().Float64Var(&flags.Temperature, "temperature", flags.Temperature, "Sampling temperature for translation")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("service.host", cmd.Flags().Lookup("host"))
	viper.BindPFlag("service.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("service.temperature", cmd.Flags().Lookup("temperature"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.log_dir", cmd.Flags().Lookup("log-dir"))
	viper.BindPFlag("output.run_name", cmd.Flags().Lookup("run-name"))
	viper.BindPFlag("cache.disabled", cmd.Flags().Lookup("no-cache"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".polyglot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".polyglot")
	}

	// Environment variables
	viper.SetEnvPrefix("POLYGLOT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetHost returns the model service host, preferring the environment
// over the config file over the flag default.
func GetHost(flags *Flags) string {
	if host := os.Getenv("OLLAMA_HOST"); host != "" {
		return host
	}
	if host := viper.GetString("service.host"); host != "" {
		return host
	}
	return flags.Host
}
