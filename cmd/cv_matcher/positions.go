package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-matcher/internal/catalog"
	"github.com/jonathan/cv-matcher/internal/observability"
	"github.com/jonathan/cv-matcher/internal/types"
)

func newPositionsCmd(_ *appState) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "positions",
		Short: "List the job positions of the catalog",
		Long:  "List the job positions of the catalog grouped by category, optionally restricted to one category.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			positions := catalog.All()
			if category != "" {
				c := types.Category(category)
				if !c.Valid() {
					return &types.InvalidCategoryError{Category: c}
				}
				positions = catalog.ByCategory(c)
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintPositions(positions)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list positions of this category (tech, marketing, finance, ...)")
	return cmd
}
