package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"portfolio/internal/cms"
)

type documentFetcher interface {
	Fetch(ctx context.Context, query string, params map[string]any, out any) error
}

var cmsLintCmd = &cobra.Command{
	Use:   "cms-lint",
	Short: "Fetch every CMS document type and report documents the API cannot read",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := cms.New(appConfig.CMS)
		if !client.Configured() {
			return cms.ErrNotConfigured
		}

		invalid, err := lintDocuments(cmd.Context(), client, cms.Schemas, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if invalid > 0 {
			return fmt.Errorf("%d invalid documents", invalid)
		}
		return nil
	},
}

// lintDocuments validates every document of every schema and returns how
// many failed.
func lintDocuments(ctx context.Context, source documentFetcher, schemas []cms.Schema, w io.Writer) (int, error) {
	invalid := 0
	for _, schema := range schemas {
		var docs []json.RawMessage
		if err := source.Fetch(ctx, schema.Query, nil, &docs); err != nil {
			return invalid, fmt.Errorf("fetch %s: %w", schema.Name, err)
		}

		bad := 0
		for i, raw := range docs {
			if err := cms.ValidateDocument(schema, raw); err != nil {
				bad++
				fmt.Fprintf(w, "%s[%d]: %v\n", schema.Name, i, err)
			}
		}
		fmt.Fprintf(w, "%s: %d documents, %d invalid\n", schema.Name, len(docs), bad)
		invalid += bad
	}
	return invalid, nil
}
