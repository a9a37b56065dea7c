package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saturnines/gqlclient/pkg/config"
	"github.com/saturnines/gqlclient/pkg/query"
)

type rootFlags struct {
	envFile  string
	verbose  bool
	document string

	conventional bool
	allSiblings  bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gqlq",
		Short:         "Build GraphQL queries from YAML field trees and send them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnv(f.envFile)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.envFile, "env-file", ".env", "dotenv file loaded before reading configs; a missing file is ignored")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log requests to stderr")
	pf.StringVarP(&f.document, "document", "d", "", "query document (YAML with fields and args)")
	pf.BoolVar(&f.conventional, "conventional", false, "indent closing braces at the depth of their opening line")
	pf.BoolVar(&f.allSiblings, "all-siblings", false, "keep emitting fields after the argumented one")

	cmd.AddCommand(newBuildCmd(f), newQueryCmd(f))
	return cmd
}

func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (f *rootFlags) logger() (*zap.Logger, error) {
	if !f.verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func (f *rootFlags) buildOptions() []query.BuildOption {
	var opts []query.BuildOption
	if f.conventional {
		opts = append(opts, query.WithConventionalIndent())
	}
	if f.allSiblings {
		opts = append(opts, query.WithAllSiblings())
	}
	return opts
}

func (f *rootFlags) loadDocument() (*config.Document, error) {
	if f.document == "" {
		return nil, errors.New("--document is required")
	}
	return config.NewDocumentLoader(&config.EnvExpander{}).Load(f.document)
}
