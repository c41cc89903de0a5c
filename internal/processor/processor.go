package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/polyglot/internal"
	"codeberg.org/snonux/polyglot/internal/batch"
	"codeberg.org/snonux/polyglot/internal/cache"
	"codeberg.org/snonux/polyglot/internal/cli"
	"codeberg.org/snonux/polyglot/internal/output"
	"codeberg.org/snonux/polyglot/internal/runlog"
	"codeberg.org/snonux/polyglot/internal/scan"
	"codeberg.org/snonux/polyglot/internal/translation"
	"codeberg.org/snonux/polyglot/internal/watch"
)

// Translator is the translation backend used per file.
type Translator interface {
	TranslateContent(ctx context.Context, content, targetLang string) (string, error)
}

type fileResult int

const (
	resultTranslated fileResult = iota
	resultFromCache
)

// Processor runs a translation pass over an input directory
type Processor struct {
	flags      *cli.Flags
	targetLang string
	translator Translator
	runCache   *translation.Cache
	store      *cache.Store // nil when the persistent cache is disabled
	logger     *runlog.Logger
	runDir     string
	manifest   output.Manifest
}

// New creates a new processor. The persistent cache lives under the
// base output directory unless disabled.
func New(flags *cli.Flags, targetLang string, translator Translator) (*Processor, error) {
	p := &Processor{
		flags:      flags,
		targetLang: targetLang,
		translator: translator,
		runCache:   translation.NewCache(),
	}

	if !flags.NoCache {
		store, err := cache.Open(filepath.Join(flags.OutputDir, cache.DefaultFileName))
		if err != nil {
			return nil, err
		}
		p.store = store
	}

	return p, nil
}

// Close releases the processor's resources.
func (p *Processor) Close() error {
	if p.store != nil {
		if err := p.store.Close(); err != nil {
			return err
		}
	}
	if p.logger != nil {
		return p.logger.Close()
	}
	return nil
}

// RunDir returns the run directory of the current run. Empty before
// Run has been called.
func (p *Processor) RunDir() string {
	return p.runDir
}

// Run performs one full translation pass over the input directory.
func (p *Processor) Run(ctx context.Context) error {
	logger, err := runlog.New(p.flags.LogDir)
	if err != nil {
		return err
	}
	p.logger = logger

	logger.Info("starting translation",
		"input", p.flags.InputDir, "language", p.targetLang, "model", p.flags.Model)

	runDir, err := output.CreateRunDirectory(p.flags.OutputDir, p.targetLang, p.flags.RunName)
	if err != nil {
		return err
	}
	p.runDir = runDir
	logger.Info("created run directory", "path", runDir)

	p.manifest = output.Manifest{
		TargetLanguage: p.targetLang,
		Model:          p.flags.Model,
		InputDir:       p.flags.InputDir,
		StartedAt:      time.Now(),
	}

	entries, err := scan.Files(p.flags.InputDir)
	if err != nil {
		return err
	}

	if p.flags.BatchFile != "" {
		patterns, err := batch.ReadSelectionFile(p.flags.BatchFile)
		if err != nil {
			return err
		}
		entries, err = scan.Filter(entries, patterns)
		if err != nil {
			return err
		}
	}

	if len(entries) == 0 {
		logger.Warn("no files found in input directory", "input", p.flags.InputDir)
		return p.writeManifest()
	}

	p.manifest.TotalFiles = len(entries)
	for i, entry := range entries {
		fmt.Printf("Translating %d/%d: %s\n", i+1, len(entries), entry.RelPath)

		result, err := p.processFile(ctx, entry)
		switch {
		case err != nil:
			p.manifest.Errors++
			logger.Error("failed to process file", "file", entry.RelPath, "error", err)
			if ctx.Err() != nil {
				return ctx.Err()
			}
		case result == resultFromCache:
			p.manifest.FromCache++
		default:
			p.manifest.Translated++
		}
	}

	p.printSummary()
	logger.Info("translation complete",
		"translated", p.manifest.Translated, "cached", p.manifest.FromCache, "errors", p.manifest.Errors)

	return p.writeManifest()
}

// Watch keeps translating files as they change, until the context is
// canceled. Must be called after Run; changed files land in the same
// run directory with collision suffixes.
func (p *Processor) Watch(ctx context.Context) error {
	if p.runDir == "" {
		return fmt.Errorf("watch requires a completed run")
	}

	watcher, err := watch.New(p.flags.InputDir)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	p.logger.Info("watching for changes", "input", p.flags.InputDir)
	fmt.Printf("Watching %s for changes (Ctrl-C to stop)...\n", p.flags.InputDir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case absPath := <-watcher.Events():
			rel, err := filepath.Rel(p.flags.InputDir, absPath)
			if err != nil {
				continue
			}
			fmt.Printf("Changed: %s\n", rel)
			entry := scan.FileEntry{RelPath: rel, AbsPath: absPath}
			if _, err := p.processFile(ctx, entry); err != nil {
				p.logger.Error("failed to process changed file", "file", rel, "error", err)
			}
		}
	}
}

// processFile translates a single file and saves the result, going
// through the in-memory and persistent caches first.
func (p *Processor) processFile(ctx context.Context, entry scan.FileEntry) (fileResult, error) {
	data, err := os.ReadFile(entry.AbsPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}
	content := string(data)
	contentHash := internal.ContentHash(content)

	translated, result, err := p.lookupOrTranslate(ctx, content, contentHash)
	if err != nil {
		return 0, err
	}

	savedPath, err := output.SaveTranslation(p.runDir, entry.RelPath, translated, p.targetLang)
	if err != nil {
		return 0, err
	}
	p.logger.Info("saved translated file", "path", savedPath)

	return result, nil
}

func (p *Processor) lookupOrTranslate(ctx context.Context, content, contentHash string) (string, fileResult, error) {
	if translated, ok := p.runCache.Get(contentHash); ok {
		return translated, resultFromCache, nil
	}

	if p.store != nil {
		translated, ok, err := p.store.Get(contentHash, p.flags.Model, p.targetLang)
		if err != nil {
			p.logger.Warn("cache lookup failed", "error", err)
		} else if ok {
			p.runCache.Add(contentHash, translated)
			return translated, resultFromCache, nil
		}
	}

	translated, err := p.translator.TranslateContent(ctx, content, p.targetLang)
	if err != nil {
		return "", 0, err
	}

	p.runCache.Add(contentHash, translated)
	if p.store != nil {
		if err := p.store.Put(contentHash, p.flags.Model, p.targetLang, translated); err != nil {
			p.logger.Warn("failed to persist translation in cache", "error", err)
		}
	}

	return translated, resultTranslated, nil
}

func (p *Processor) writeManifest() error {
	p.manifest.FinishedAt = time.Now()
	return output.WriteManifest(p.runDir, &p.manifest)
}

func (p *Processor) printSummary() {
	fmt.Printf("\n=== Translation Summary ===\n")
	fmt.Printf("Total files: %d\n", p.manifest.TotalFiles)
	fmt.Printf("Translated: %d\n", p.manifest.Translated)
	fmt.Printf("From cache: %d\n", p.manifest.FromCache)
	if p.manifest.Errors > 0 {
		fmt.Printf("Errors: %d\n", p.manifest.Errors)
	}
	fmt.Printf("Output: %s\n", p.runDir)
	fmt.Printf("===========================\n")
}
