package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/polyglot/internal/archive"
	"codeberg.org/snonux/polyglot/internal/cli"
	"codeberg.org/snonux/polyglot/internal/models"
	"codeberg.org/snonux/polyglot/internal/processor"
	"codeberg.org/snonux/polyglot/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	host := cli.GetHost(flags)

	// Handle --archive flag
	if flags.Archive {
		archivePath, err := archive.ArchiveRuns(flags.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to archive runs: %w", err)
		}
		if archivePath == "" {
			fmt.Println("No run directories to archive")
		} else {
			fmt.Printf("Runs archived to: %s\n", archivePath)
		}
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		return models.NewLister(host).PrintAvailableModels(ctx)
	}

	// Resolve target language and input directory, prompting for
	// whatever is missing
	targetLang, err := resolveLanguage(args)
	if err != nil {
		return err
	}
	if flags.InputDir == "" {
		inputDir, err := cli.PromptForInputDir(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		flags.InputDir = inputDir
	}
	if info, err := os.Stat(flags.InputDir); err != nil || !info.IsDir() {
		return fmt.Errorf("input directory does not exist: %s", flags.InputDir)
	}

	// Make sure the model is installed before the run starts
	if err := models.EnsureModel(ctx, host, flags.Model, flags.Pull); err != nil {
		return err
	}

	// Create processor
	translator := translation.New(translation.Config{
		Host:        host,
		Model:       flags.Model,
		Temperature: float32(flags.Temperature),
		RetryDelay:  2 * time.Second,
	})
	proc, err := processor.New(flags, targetLang, translator)
	if err != nil {
		return err
	}
	defer proc.Close()

	if err := proc.Run(ctx); err != nil {
		return err
	}

	// Keep watching when requested
	if flags.Watch {
		if err := proc.Watch(ctx); err != nil {
			return err
		}
	}

	fmt.Printf("\nDone! Translations saved to: %s\n", proc.RunDir())
	return nil
}

func resolveLanguage(args []string) (string, error) {
	if len(args) > 0 {
		if err := cli.ValidateLanguage(args[0]); err != nil {
			return "", err
		}
		return args[0], nil
	}
	return cli.PromptForLanguage(os.Stdin, os.Stdout)
}
