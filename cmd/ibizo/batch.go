package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temporal-IPA/ibizo/pkg/lexicon"
	"github.com/temporal-IPA/ibizo/pkg/noun"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		encoding string
		merge    string
		format   string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Strip every noun of one or more noun lists",
		Long: `Load noun lists (one noun per line, "noun<TAB>class" lines, or gob
files written by ibizo), merge them and print the base of every entry.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if encoding != "" {
				cfg.Input.Encoding = encoding
			}
			if merge != "" {
				cfg.Input.MergeMode = merge
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts, err := cfg.LoadOptions()
			if err != nil {
				return err
			}
			opts.OnSource = func(info lexicon.SourceInfo) {
				a.logger.Debug("loaded source",
					zap.String("path", info.Name),
					zap.String("kind", string(info.Kind)),
					zap.Int("entries", info.Entries))
			}
			f, err := a.format(format)
			if err != nil {
				return err
			}

			lex, err := loadFiles(opts, args)
			if err != nil {
				return err
			}
			a.logger.Debug("loaded lexicon",
				zap.Strings("files", args),
				zap.Stringer("merge", opts.Mode),
				zap.Int("entries", lex.Len()))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			results, err := runBatch(ctx, noun.NewExtractorWithOptions(cfg.ExtractionOptions()), lex.Entries())
			if err != nil {
				return err
			}
			a.logger.Info("batch done", zap.Int("entries", len(results)), zap.Int("matched", countMatched(results)))

			if outPath == "" {
				return writeResults(cmd.OutOrStdout(), f, results)
			}
			return writeFile(outPath, f, results)
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "Source encoding (utf-8, latin1, cp1252, utf-16le, ...)")
	cmd.Flags().StringVar(&merge, "merge", "", "Merge mode across files (append, no-override, replace)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, tsv, json, yaml, msgpack)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write results to this file instead of stdout")
	return cmd
}

// loadFiles merges the given files, in order, into one lexicon.
func loadFiles(opts lexicon.LoadOptions, paths []string) (*lexicon.Lexicon, error) {
	lex := lexicon.New()
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		dir, name := filepath.Split(abs)
		if err := lexicon.LoadInto(os.DirFS(dir), lex, opts, name); err != nil {
			return nil, err
		}
	}
	return lex, nil
}

// writeFile renders results into a new file at path. Close errors are
// reported since they may hide a failed write.
func writeFile(path, format string, results []noun.Result) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if err := writeResults(file, format, results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// runBatch drains StreamApply. An interrupted run returns the context error.
func runBatch(ctx context.Context, p noun.CancellableProcessor, entries []noun.Entry) ([]noun.Result, error) {
	results := make([]noun.Result, 0, len(entries))
	for res := range p.StreamApply(ctx, entries) {
		results = append(results, res)
	}
	if err := ctx.Err(); err != nil && len(results) < len(entries) {
		return nil, fmt.Errorf("batch interrupted after %d of %d entries: %w", len(results), len(entries), err)
	}
	return results, nil
}

func countMatched(results []noun.Result) int {
	n := 0
	for _, r := range results {
		if r.Matched() {
			n++
		}
	}
	return n
}
