package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/temporal-IPA/ibizo/pkg/config"
	"github.com/temporal-IPA/ibizo/pkg/noun"
)

var errUnknownFormat = errors.New("unknown output format")

// writeResults renders results in the given output format.
//
// The tsv header is a '#' comment so that the output loads back as a
// tabbed noun list.
func writeResults(w io.Writer, format string, results []noun.Result) error {
	switch format {
	case config.FormatText:
		return writeLines(w, results, func(r noun.Result) string {
			return r.Noun + "\t" + r.Base
		})
	case config.FormatTSV:
		if _, err := io.WriteString(w, "# noun\tclass\tprefix\tbase\n"); err != nil {
			return err
		}
		return writeLines(w, results, func(r noun.Result) string {
			return strings.Join([]string{r.Noun, classColumn(r.Class), r.Prefix, r.Base}, "\t")
		})
	}
	return writeStructured(w, format, results)
}

func writeClasses(w io.Writer, format string, rows []classRow) error {
	switch format {
	case config.FormatText, config.FormatTSV:
		return writeLines(w, rows, func(r classRow) string {
			return fmt.Sprintf("%s\t%s\t%s", r.Number, r.Name, strings.Join(r.Forms, ","))
		})
	}
	return writeStructured(w, format, rows)
}

func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(v)
	}
	return fmt.Errorf("%w: %q", errUnknownFormat, format)
}

func writeLines[T any](w io.Writer, items []T, line func(T) string) error {
	bw := bufio.NewWriter(w)
	for _, it := range items {
		if _, err := bw.WriteString(line(it) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func classColumn(c noun.NounClass) string {
	if n := c.Number(); n != "" {
		return n
	}
	return "?"
}
