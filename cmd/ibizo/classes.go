package main

import (
	"github.com/spf13/cobra"

	"github.com/temporal-IPA/ibizo/pkg/noun"
)

// classRow is the rendered form of one catalog entry.
type classRow struct {
	Tag    uint8    `json:"tag" yaml:"tag" msgpack:"tag"`
	Number string   `json:"number" yaml:"number" msgpack:"number"`
	Name   string   `json:"name" yaml:"name" msgpack:"name"`
	Forms  []string `json:"forms" yaml:"forms" msgpack:"forms"`
}

func newClassesCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the noun classes and their prefix forms",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(format)
			if err != nil {
				return err
			}
			return writeClasses(cmd.OutOrStdout(), f, catalogRows())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, tsv, json, yaml, msgpack)")
	return cmd
}

func catalogRows() []classRow {
	classes := noun.Classes()
	rows := make([]classRow, 0, len(classes))
	for _, c := range classes {
		rows = append(rows, classRow{
			Tag:    c.Tag(),
			Number: c.Number(),
			Name:   c.String(),
			Forms:  c.Prefix().Forms,
		})
	}
	return rows
}
