package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saturnines/gqlclient/pkg/query"
)

func newBuildCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Print the query text for a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := f.loadDocument()
			if err != nil {
				return err
			}
			text, err := query.Build(doc.Fields, doc.Args, f.buildOptions()...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}
