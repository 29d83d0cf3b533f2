package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"portfolio/internal/models"
	"portfolio/internal/static"
)

var staticCmd = &cobra.Command{
	Use:   "static",
	Short: "List the bundled static posts in resolution order",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := static.Load()
		if err != nil {
			return err
		}
		return printPosts(cmd.OutOrStdout(), set.Posts())
	},
}

func printPosts(w io.Writer, posts []models.Post) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tPUBLISHED\tFEATURED\tCATEGORY\tDATE")
	for _, p := range posts {
		date := "-"
		if p.PublishedAt != nil {
			date = p.PublishedAt.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%t\t%t\t%s\t%s\n", p.Slug, p.Published, p.Featured, p.Category, date)
	}
	return tw.Flush()
}
