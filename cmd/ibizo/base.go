package main

import (
	"context"
	"io"

	"github.com/benoit-pereira-da-silva/textual/pkg/textual"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temporal-IPA/ibizo/pkg/conversion"
	"github.com/temporal-IPA/ibizo/pkg/noun"
)

func newBaseCmd(a *app) *cobra.Command {
	var (
		classLabel string
		encoding   string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "base [noun...]",
		Short: "Print the base of each noun",
		Long: `Print the base of each noun given as argument, or of each line read
from standard input when no argument is given. Input lines may carry a
class column ("noun<TAB>class"); '#' starts a comment.`,
		Example: `  ibizo base izinkomo abantu
  ibizo base --class 7 isitsha
  cat nouns.txt | ibizo base --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			class := noun.Unknown
			if classLabel != "" {
				c, err := noun.ParseLabel(classLabel)
				if err != nil {
					return err
				}
				class = c
			}
			f, err := a.format(format)
			if err != nil {
				return err
			}
			if encoding == "" {
				encoding = a.cfg.Input.Encoding
			}
			enc, err := conversion.ParseEncoding(encoding)
			if err != nil {
				return err
			}

			ext := noun.NewExtractorWithOptions(a.cfg.ExtractionOptions())

			var results []noun.Result
			if len(args) > 0 {
				results = make([]noun.Result, 0, len(args))
				for _, n := range args {
					results = append(results, ext.Apply(noun.Entry{Noun: n, Class: class}))
				}
			} else {
				src, err := conversion.NewReader(cmd.InOrStdin(), enc)
				if err != nil {
					return err
				}
				if results, err = streamLines(cmd.Context(), noun.NewTextualProcessor(ext, class), src); err != nil {
					return err
				}
			}
			a.logger.Debug("extracted", zap.Int("nouns", len(results)), zap.Stringer("class", class))

			return writeResults(cmd.OutOrStdout(), f, results)
		},
	}

	cmd.Flags().StringVar(&classLabel, "class", "", "Noun class label (\"10\", \"1a\") or name (\"Izin\")")
	cmd.Flags().StringVar(&encoding, "encoding", "", "Encoding of standard input (utf-8, latin1, cp1252, utf-16le, ...)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, tsv, json, yaml, msgpack)")
	return cmd
}

// streamLines runs every line of r through p and collects the noun results
// in input order. The first line error stops the stream.
func streamLines(ctx context.Context, p *noun.TextualProcessor, r io.Reader) ([]noun.Result, error) {
	ioProc := textual.NewIOReaderProcessor(p, r)
	ioProc.SetContext(ctx)
	defer ioProc.Stop()

	results := make([]noun.Result, 0)
	for tr := range ioProc.Start() {
		if tr.Error != nil {
			return nil, tr.Error
		}
		if res, ok := p.Result(tr); ok {
			results = append(results, res)
		}
	}
	return results, nil
}
