// ABOUTME: search command runs one product search from the command line
// ABOUTME: Prints the shopping results as JSON on stdout

package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"shopthelook-api/core/domain"
	"shopthelook-api/core/interfaces"
	"shopthelook-api/pkg/featureflags"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <image_url>",
		Short: "Find shopping links for an image",
		Long: `Runs the same product search as GET /api/search/products and prints
the results as JSON. Example:
  shopthelook search https://i.pinimg.com/originals/ab/cd/ef.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			a, err := newApp(ctx, cfg, featureflags.NewEnvManager(""))
			if err != nil {
				return err
			}
			defer a.Close()

			return runSearch(ctx, a.search, args[0], cmd.OutOrStdout())
		},
	}
}

func runSearch(ctx context.Context, searcher interfaces.ProductSearcher, imageURL string, out io.Writer) error {
	results, err := searcher.SearchProducts(ctx, imageURL)
	if err != nil {
		return err
	}
	if results == nil {
		results = []domain.ShoppingResult{}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Results []domain.ShoppingResult `json:"results"`
	}{Results: results})
}
