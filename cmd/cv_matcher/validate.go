package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-matcher/internal/schemas"
)

func newValidateCmd(_ *appState) *cobra.Command {
	var schemaName, file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON file against an embedded schema",
		Long:  fmt.Sprintf("Validate a JSON file against one of the embedded schemas (%s).", strings.Join(schemas.Names(), ", ")),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(schemas.Names(), schemaName) {
				return fmt.Errorf("unknown schema %q (expected one of %s)", schemaName, strings.Join(schemas.Names(), ", "))
			}
			if err := schemas.ValidateFile(schemaName, file); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid %s\n", file, schemaName)
			return err
		},
	}

	cmd.Flags().StringVar(&schemaName, "schema", schemas.AnalysisResult, "Schema name")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the JSON file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
